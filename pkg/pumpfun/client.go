package pumpfun

import (
	"context"
	"fmt"

	"github.com/gagliardetto/solana-go"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/solanakit/pumpfun-go/pkg/wallet"
)

// RPCClient is the transport collaborator. solbc.Client implements it; tests
// substitute fakes.
type RPCClient interface {
	GetAccountDataWithOwner(ctx context.Context, pubkey solana.PublicKey) ([]byte, solana.PublicKey, error)
	GetRecentBlockhash(ctx context.Context) (solana.Hash, error)
	SendTransaction(ctx context.Context, tx *solana.Transaction) (solana.Signature, error)
}

// Client executes create, buy and sell operations against the bonding curve
// program. Each operation is a single linear pipeline: derive addresses,
// fetch fresh state, price, submit. There is no cache and no shared mutable
// state, so a Client is safe for concurrent use; nothing is retried
// internally and every failure surfaces to the caller typed and wrapped.
type Client struct {
	rpc      RPCClient
	payer    *wallet.Wallet
	uploader MetadataUploader
	logger   *zap.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithLogger attaches a logger. Defaults to a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// WithMetadataUploader replaces the default Pump.fun IPFS uploader.
func WithMetadataUploader(uploader MetadataUploader) Option {
	return func(c *Client) { c.uploader = uploader }
}

// NewClient creates a client that signs with payer and talks through rpc.
func NewClient(rpc RPCClient, payer *wallet.Wallet, opts ...Option) *Client {
	c := &Client{
		rpc:    rpc,
		payer:  payer,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.uploader == nil {
		c.uploader = NewIPFSUploader(c.logger)
	}
	c.logger = c.logger.Named("pumpfun")
	return c
}

// Create launches a new token: uploads its metadata, then submits the
// create instruction signed by both the fee payer and the mint keypair.
func (c *Client) Create(ctx context.Context, mint *wallet.Wallet, meta CreateTokenMetadata) (solana.Signature, error) {
	bondingCurve, _, err := DeriveBondingCurveAddress(mint.PublicKey)
	if err != nil {
		return solana.Signature{}, err
	}
	associatedBondingCurve, err := DeriveAssociatedBondingCurve(mint.PublicKey)
	if err != nil {
		return solana.Signature{}, err
	}
	global, _, err := DeriveGlobalAddress()
	if err != nil {
		return solana.Signature{}, err
	}
	mintAuthority, _, err := DeriveMintAuthorityAddress()
	if err != nil {
		return solana.Signature{}, err
	}
	metadata, _, err := DeriveMetadataAddress(mint.PublicKey)
	if err != nil {
		return solana.Signature{}, err
	}

	uploaded, err := c.uploader.Upload(ctx, meta)
	if err != nil {
		return solana.Signature{}, err
	}

	c.logger.Debug("Creating token",
		zap.String("mint", mint.PublicKey.String()),
		zap.String("bonding_curve", bondingCurve.String()),
		zap.String("metadata_uri", uploaded.MetadataURI))

	ix, err := BuildCreateInstruction(CreateInstructionAccounts{
		Mint:                   mint.PublicKey,
		MintAuthority:          mintAuthority,
		BondingCurve:           bondingCurve,
		AssociatedBondingCurve: associatedBondingCurve,
		Global:                 global,
		Metadata:               metadata,
		User:                   c.payer.PublicKey,
	}, meta.Name, meta.Symbol, uploaded.MetadataURI)
	if err != nil {
		return solana.Signature{}, err
	}

	return c.sendInstructions(ctx, []solana.Instruction{ix}, c.payer, mint)
}

// Buy spends lamports SOL on tokens from the mint's bonding curve. The
// optional slippage tolerance is in basis points and defaults to
// DefaultSlippageBasisPoints; it widens the SOL cost ceiling upward.
func (c *Client) Buy(ctx context.Context, mint solana.PublicKey, lamports uint64, slippageBps ...uint64) (solana.Signature, error) {
	toleranceBps, err := resolveTolerance(slippageBps)
	if err != nil {
		return solana.Signature{}, err
	}

	bondingCurve, _, err := DeriveBondingCurveAddress(mint)
	if err != nil {
		return solana.Signature{}, err
	}
	associatedBondingCurve, err := DeriveAssociatedBondingCurve(mint)
	if err != nil {
		return solana.Signature{}, err
	}

	global, curve, err := c.fetchTradeState(ctx, bondingCurve)
	if err != nil {
		return solana.Signature{}, err
	}

	tokensOut, err := curve.GetBuyPrice(lamports)
	if err != nil {
		return solana.Signature{}, err
	}
	maxSolCost := ApplyBuySlippage(lamports, toleranceBps)

	associatedUser, err := c.payer.GetATA(mint)
	if err != nil {
		return solana.Signature{}, err
	}

	c.logger.Debug("Buying tokens",
		zap.String("mint", mint.String()),
		zap.Uint64("lamports_in", lamports),
		zap.Uint64("tokens_out", tokensOut),
		zap.Uint64("max_sol_cost", maxSolCost),
		zap.Uint64("slippage_bps", toleranceBps))

	// The buy fails if the payer has no token account yet, so an idempotent
	// create-ATA instruction always precedes it.
	createATA := wallet.CreateAssociatedTokenAccountIdempotentInstruction(
		c.payer.PublicKey, c.payer.PublicKey, mint, associatedUser)
	buyIx := BuildBuyInstruction(TradeInstructionAccounts{
		Global:                 mustGlobalAddress(),
		FeeRecipient:           global.FeeRecipient,
		Mint:                   mint,
		BondingCurve:           bondingCurve,
		AssociatedBondingCurve: associatedBondingCurve,
		AssociatedUser:         associatedUser,
		User:                   c.payer.PublicKey,
	}, tokensOut, maxSolCost)

	return c.sendInstructions(ctx, []solana.Instruction{createATA, buyIx}, c.payer)
}

// Sell sells tokens back to the mint's bonding curve. The optional slippage
// tolerance is in basis points and defaults to DefaultSlippageBasisPoints;
// it narrows the SOL output floor downward.
func (c *Client) Sell(ctx context.Context, mint solana.PublicKey, tokens uint64, slippageBps ...uint64) (solana.Signature, error) {
	toleranceBps, err := resolveTolerance(slippageBps)
	if err != nil {
		return solana.Signature{}, err
	}

	bondingCurve, _, err := DeriveBondingCurveAddress(mint)
	if err != nil {
		return solana.Signature{}, err
	}
	associatedBondingCurve, err := DeriveAssociatedBondingCurve(mint)
	if err != nil {
		return solana.Signature{}, err
	}

	global, curve, err := c.fetchTradeState(ctx, bondingCurve)
	if err != nil {
		return solana.Signature{}, err
	}

	expectedOutput, err := curve.GetSellPrice(tokens, global.FeeBasisPoints)
	if err != nil {
		return solana.Signature{}, err
	}
	minSolOutput, err := ApplySellSlippage(expectedOutput, toleranceBps)
	if err != nil {
		return solana.Signature{}, err
	}

	associatedUser, err := c.payer.GetATA(mint)
	if err != nil {
		return solana.Signature{}, err
	}

	c.logger.Debug("Selling tokens",
		zap.String("mint", mint.String()),
		zap.Uint64("tokens_in", tokens),
		zap.Uint64("expected_output", expectedOutput),
		zap.Uint64("min_sol_output", minSolOutput),
		zap.Uint64("slippage_bps", toleranceBps))

	sellIx := BuildSellInstruction(TradeInstructionAccounts{
		Global:                 mustGlobalAddress(),
		FeeRecipient:           global.FeeRecipient,
		Mint:                   mint,
		BondingCurve:           bondingCurve,
		AssociatedBondingCurve: associatedBondingCurve,
		AssociatedUser:         associatedUser,
		User:                   c.payer.PublicKey,
	}, tokens, minSolOutput)

	return c.sendInstructions(ctx, []solana.Instruction{sellIx}, c.payer)
}

// GetGlobalAccount fetches and decodes the program's global configuration.
// State is fetched fresh on every call; nothing is cached.
func (c *Client) GetGlobalAccount(ctx context.Context) (*GlobalAccount, error) {
	global, _, err := DeriveGlobalAddress()
	if err != nil {
		return nil, err
	}
	data, owner, err := c.rpc.GetAccountDataWithOwner(ctx, global)
	if err != nil {
		return nil, fmt.Errorf("failed to get global account: %w", err)
	}
	if !owner.Equals(ProgramID) {
		return nil, fmt.Errorf("global account has incorrect owner: expected %s, got %s",
			ProgramID.String(), owner.String())
	}
	return DecodeGlobalAccount(data)
}

// GetBondingCurveAccount fetches and decodes the bonding curve state for a
// mint. State is fetched fresh on every call; nothing is cached.
func (c *Client) GetBondingCurveAccount(ctx context.Context, mint solana.PublicKey) (*BondingCurveAccount, error) {
	bondingCurve, _, err := DeriveBondingCurveAddress(mint)
	if err != nil {
		return nil, err
	}
	return c.fetchBondingCurve(ctx, bondingCurve)
}

// fetchTradeState loads the global and bonding curve snapshots used by a
// buy or sell. The two reads are independent, so they run concurrently.
func (c *Client) fetchTradeState(ctx context.Context, bondingCurve solana.PublicKey) (*GlobalAccount, *BondingCurveAccount, error) {
	var (
		global *GlobalAccount
		curve  *BondingCurveAccount
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		global, err = c.GetGlobalAccount(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		curve, err = c.fetchBondingCurve(gctx, bondingCurve)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return global, curve, nil
}

func (c *Client) fetchBondingCurve(ctx context.Context, bondingCurve solana.PublicKey) (*BondingCurveAccount, error) {
	data, owner, err := c.rpc.GetAccountDataWithOwner(ctx, bondingCurve)
	if err != nil {
		return nil, fmt.Errorf("failed to get bonding curve account: %w", err)
	}
	if !owner.Equals(ProgramID) {
		return nil, fmt.Errorf("bonding curve account has incorrect owner: expected %s, got %s",
			ProgramID.String(), owner.String())
	}
	return DecodeBondingCurveAccount(data)
}

// sendInstructions assembles, signs and submits one transaction. Transport
// failures propagate wrapped; resubmission is the caller's concern.
func (c *Client) sendInstructions(ctx context.Context, instructions []solana.Instruction, signers ...*wallet.Wallet) (solana.Signature, error) {
	blockhash, err := c.rpc.GetRecentBlockhash(ctx)
	if err != nil {
		return solana.Signature{}, fmt.Errorf("failed to get recent blockhash: %w", err)
	}

	tx, err := solana.NewTransaction(instructions, blockhash, solana.TransactionPayer(c.payer.PublicKey))
	if err != nil {
		return solana.Signature{}, fmt.Errorf("failed to create transaction: %w", err)
	}

	if err := wallet.SignTransaction(tx, signers...); err != nil {
		return solana.Signature{}, err
	}

	sig, err := c.rpc.SendTransaction(ctx, tx)
	if err != nil {
		return solana.Signature{}, fmt.Errorf("failed to send transaction: %w", err)
	}

	c.logger.Debug("Transaction sent", zap.String("signature", sig.String()))
	return sig, nil
}

func resolveTolerance(slippageBps []uint64) (uint64, error) {
	if len(slippageBps) == 0 {
		return DefaultSlippageBasisPoints, nil
	}
	bps := slippageBps[0]
	if bps > basisPointDenominator {
		return 0, ErrInvalidTolerance
	}
	return bps, nil
}

// mustGlobalAddress returns the global PDA. The derivation is over fixed
// seeds and a fixed program id, so it cannot fail at runtime.
func mustGlobalAddress() solana.PublicKey {
	addr, _, err := DeriveGlobalAddress()
	if err != nil {
		panic(err)
	}
	return addr
}
