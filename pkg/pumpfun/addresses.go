package pumpfun

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
)

// The address derivation functions below are pure: no I/O, no client
// instance. Addresses are needed before the accounts they refer to exist,
// so every derivation is exposed as a free function.

// DeriveGlobalAddress returns the PDA of the program-wide global state
// account and its bump.
func DeriveGlobalAddress() (solana.PublicKey, uint8, error) {
	addr, bump, err := solana.FindProgramAddress([][]byte{GlobalSeed}, ProgramID)
	if err != nil {
		return solana.PublicKey{}, 0, fmt.Errorf("failed to derive global account: %w", err)
	}
	return addr, bump, nil
}

// DeriveMintAuthorityAddress returns the PDA that acts as mint authority
// for every token launched through the program.
func DeriveMintAuthorityAddress() (solana.PublicKey, uint8, error) {
	addr, bump, err := solana.FindProgramAddress([][]byte{MintAuthoritySeed}, ProgramID)
	if err != nil {
		return solana.PublicKey{}, 0, fmt.Errorf("failed to derive mint authority: %w", err)
	}
	return addr, bump, nil
}

// DeriveBondingCurveAddress returns the PDA of the bonding curve account for
// the given mint. Returns ErrBondingCurveNotFound when no off-curve bump
// exists within the probe range.
func DeriveBondingCurveAddress(mint solana.PublicKey) (solana.PublicKey, uint8, error) {
	addr, bump, err := solana.FindProgramAddress(
		[][]byte{BondingCurveSeed, mint.Bytes()},
		ProgramID,
	)
	if err != nil {
		return solana.PublicKey{}, 0, ErrBondingCurveNotFound
	}
	return addr, bump, nil
}

// DeriveMetadataAddress returns the token metadata PDA for the given mint.
// The derivation runs against the MPL token metadata program, not against
// the bonding curve program.
func DeriveMetadataAddress(mint solana.PublicKey) (solana.PublicKey, uint8, error) {
	addr, bump, err := solana.FindProgramAddress(
		[][]byte{MetadataSeed, MPLTokenMetadataID.Bytes(), mint.Bytes()},
		MPLTokenMetadataID,
	)
	if err != nil {
		return solana.PublicKey{}, 0, fmt.Errorf("failed to derive metadata account: %w", err)
	}
	return addr, bump, nil
}

// DeriveAssociatedBondingCurve returns the associated token account that
// holds the bonding curve's token reserve for the given mint.
func DeriveAssociatedBondingCurve(mint solana.PublicKey) (solana.PublicKey, error) {
	bondingCurve, _, err := DeriveBondingCurveAddress(mint)
	if err != nil {
		return solana.PublicKey{}, err
	}
	ata, _, err := solana.FindAssociatedTokenAddress(bondingCurve, mint)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("failed to derive associated bonding curve: %w", err)
	}
	return ata, nil
}
