package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/gagliardetto/solana-go"
	"go.uber.org/zap"

	"github.com/solanakit/pumpfun-go/internal/config"
	"github.com/solanakit/pumpfun-go/internal/logger"
	"github.com/solanakit/pumpfun-go/pkg/pumpfun"
	"github.com/solanakit/pumpfun-go/pkg/solbc"
	"github.com/solanakit/pumpfun-go/pkg/wallet"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	command := os.Args[1]
	args := os.Args[2:]

	var err error
	switch command {
	case "create":
		err = runCreate(args)
	case "buy":
		err = runBuy(args)
	case "sell":
		err = runSell(args)
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: pumpcli <command> [flags]

commands:
  create   launch a new token with metadata
  buy      buy tokens with SOL
  sell     sell tokens for SOL`)
}

type app struct {
	cfg    *config.Config
	logger *zap.Logger
	client *pumpfun.Client
	rpc    *solbc.Client
	payer  *wallet.Wallet
}

func newApp(configPath string) (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	log, err := logger.New(&logger.Config{
		LogFile:     cfg.LogFile,
		MaxSize:     100,
		MaxAge:      7,
		MaxBackups:  3,
		Compress:    true,
		Development: cfg.DebugLogging,
	})
	if err != nil {
		return nil, err
	}

	payer, err := wallet.New(cfg.PrivateKey)
	if err != nil {
		return nil, err
	}

	rpcClient := solbc.NewClient(cfg.RPCURL, log)
	client := pumpfun.NewClient(rpcClient, payer, pumpfun.WithLogger(log))

	return &app{cfg: cfg, logger: log, client: client, rpc: rpcClient, payer: payer}, nil
}

func (a *app) context() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), time.Duration(a.cfg.RequestTimeout)*time.Second)
}

// retrySignature retries the whole operation: each attempt re-derives and
// re-fetches everything, so a retry never reuses stale pricing.
func (a *app) retrySignature(ctx context.Context, op func() (solana.Signature, error)) (solana.Signature, error) {
	return backoff.Retry(ctx, op,
		backoff.WithBackOff(backoff.NewExponentialBackOff()),
		backoff.WithMaxTries(uint(a.cfg.MaxRetries)),
		backoff.WithNotify(func(err error, next time.Duration) {
			a.logger.Warn("Retrying operation", zap.Error(err), zap.Duration("backoff", next))
		}),
	)
}

func runCreate(args []string) error {
	fs := flag.NewFlagSet("create", flag.ExitOnError)
	configPath := fs.String("config", "configs/config.yaml", "path to config file")
	name := fs.String("name", "", "token name")
	symbol := fs.String("symbol", "", "token symbol")
	description := fs.String("description", "", "token description")
	imagePath := fs.String("image", "", "path to token image")
	twitter := fs.String("twitter", "", "twitter link")
	telegram := fs.String("telegram", "", "telegram link")
	website := fs.String("website", "", "website link")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *name == "" || *symbol == "" {
		return fmt.Errorf("create requires -name and -symbol")
	}

	a, err := newApp(*configPath)
	if err != nil {
		return err
	}
	defer a.logger.Sync()

	meta := pumpfun.CreateTokenMetadata{
		Name:        *name,
		Symbol:      *symbol,
		Description: *description,
		Twitter:     *twitter,
		Telegram:    *telegram,
		Website:     *website,
	}
	if *imagePath != "" {
		image, err := os.ReadFile(*imagePath)
		if err != nil {
			return fmt.Errorf("failed to read image: %w", err)
		}
		meta.Image = image
		meta.ImageName = *imagePath
	}

	mint, err := wallet.NewRandom()
	if err != nil {
		return err
	}
	a.logger.Info("Creating token",
		zap.String("name", *name),
		zap.String("symbol", *symbol),
		zap.String("mint", mint.PublicKey.String()))

	ctx, cancel := a.context()
	defer cancel()

	sig, err := a.retrySignature(ctx, func() (solana.Signature, error) {
		return a.client.Create(ctx, mint, meta)
	})
	if err != nil {
		return err
	}

	a.logger.Info("Token created",
		zap.String("mint", mint.PublicKey.String()),
		zap.String("signature", sig.String()))
	fmt.Println("mint:", mint.PublicKey.String())
	fmt.Println("signature:", sig.String())
	return nil
}

func runBuy(args []string) error {
	fs := flag.NewFlagSet("buy", flag.ExitOnError)
	configPath := fs.String("config", "configs/config.yaml", "path to config file")
	mintStr := fs.String("mint", "", "token mint address")
	lamports := fs.Uint64("lamports", 0, "SOL to spend, in lamports")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *mintStr == "" || *lamports == 0 {
		return fmt.Errorf("buy requires -mint and -lamports")
	}
	mint, err := solana.PublicKeyFromBase58(*mintStr)
	if err != nil {
		return fmt.Errorf("invalid mint address: %w", err)
	}

	a, err := newApp(*configPath)
	if err != nil {
		return err
	}
	defer a.logger.Sync()

	ctx, cancel := a.context()
	defer cancel()

	sig, err := a.retrySignature(ctx, func() (solana.Signature, error) {
		return a.client.Buy(ctx, mint, *lamports, a.cfg.SlippageBps)
	})
	if err != nil {
		return err
	}

	a.logger.Info("Buy transaction sent", zap.String("signature", sig.String()))
	fmt.Println("signature:", sig.String())
	return nil
}

func runSell(args []string) error {
	fs := flag.NewFlagSet("sell", flag.ExitOnError)
	configPath := fs.String("config", "configs/config.yaml", "path to config file")
	mintStr := fs.String("mint", "", "token mint address")
	amount := fs.Uint64("amount", 0, "tokens to sell in raw units; 0 sells the full balance")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *mintStr == "" {
		return fmt.Errorf("sell requires -mint")
	}
	mint, err := solana.PublicKeyFromBase58(*mintStr)
	if err != nil {
		return fmt.Errorf("invalid mint address: %w", err)
	}

	a, err := newApp(*configPath)
	if err != nil {
		return err
	}
	defer a.logger.Sync()

	ctx, cancel := a.context()
	defer cancel()

	tokens := *amount
	if tokens == 0 {
		ata, err := a.payer.GetATA(mint)
		if err != nil {
			return err
		}
		tokens, err = a.rpc.GetTokenAccountBalance(ctx, ata)
		if err != nil {
			return fmt.Errorf("failed to get token balance: %w", err)
		}
		if tokens == 0 {
			return fmt.Errorf("nothing to sell: token balance is zero")
		}
		a.logger.Info("Selling full balance", zap.Uint64("tokens", tokens))
	}

	sig, err := a.retrySignature(ctx, func() (solana.Signature, error) {
		return a.client.Sell(ctx, mint, tokens, a.cfg.SlippageBps)
	})
	if err != nil {
		return err
	}

	a.logger.Info("Sell transaction sent", zap.String("signature", sig.String()))
	fmt.Println("signature:", sig.String())
	return nil
}
