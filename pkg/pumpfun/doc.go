// Package pumpfun implements a client for the Pump.fun bonding curve
// program on Solana.
//
// The package covers:
//   - Deterministic PDA derivation for the program's accounts (addresses.go).
//   - Decoding and re-encoding of the Global and BondingCurve account
//     layouts (global_account.go, bonding_curve.go).
//   - Integer-only buy/sell pricing against the constant-product curve and
//     slippage-bounded worst cases (bonding_curve.go, slippage.go).
//   - The create, buy and sell operations, assembled with the exact
//     order-sensitive account lists the program validates (instructions.go,
//     client.go).
//   - Token metadata upload to the Pump.fun IPFS gateway (metadata.go).
//
// Every operation fetches on-chain state fresh, performs all pricing with
// wide integer intermediates, and submits a single signed transaction. The
// client never retries: operations have no persisted intermediate state and
// are safe to retry whole from the call site.
//
// Usage:
//
//	rpcClient := solbc.NewClient(rpcURL, logger)
//	payer, err := wallet.New(privateKeyBase58)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	client := pumpfun.NewClient(rpcClient, payer, pumpfun.WithLogger(logger))
//	sig, err := client.Buy(ctx, mint, 1_000_000) // 0.001 SOL, default slippage
package pumpfun
