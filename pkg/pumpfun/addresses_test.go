package pumpfun

import (
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveGlobalAddress(t *testing.T) {
	addr, _, err := DeriveGlobalAddress()
	require.NoError(t, err)

	// Well-known mainnet global account of the program.
	assert.Equal(t, "4wTV1YmiEkRvAtNtsSGPtUrqRYQMe5SKy2uB4Jjaxnjf", addr.String())

	again, _, err := DeriveGlobalAddress()
	require.NoError(t, err)
	assert.Equal(t, addr, again, "derivation must be deterministic")
}

func TestDeriveMintAuthorityAddress(t *testing.T) {
	addr, _, err := DeriveMintAuthorityAddress()
	require.NoError(t, err)
	assert.False(t, addr.IsZero())

	again, _, err := DeriveMintAuthorityAddress()
	require.NoError(t, err)
	assert.Equal(t, addr, again)

	global, _, err := DeriveGlobalAddress()
	require.NoError(t, err)
	assert.NotEqual(t, global, addr, "different seeds must derive different addresses")
}

func TestDeriveBondingCurveAddress(t *testing.T) {
	mintA := solana.NewWallet().PublicKey()
	mintB := solana.NewWallet().PublicKey()

	curveA, _, err := DeriveBondingCurveAddress(mintA)
	require.NoError(t, err)
	curveB, _, err := DeriveBondingCurveAddress(mintB)
	require.NoError(t, err)

	assert.NotEqual(t, curveA, curveB, "distinct mints must derive distinct curves")

	againA, _, err := DeriveBondingCurveAddress(mintA)
	require.NoError(t, err)
	assert.Equal(t, curveA, againA, "derivation must be deterministic per mint")
}

func TestDeriveMetadataAddressUsesMetadataProgram(t *testing.T) {
	mint := solana.NewWallet().PublicKey()

	metadata, _, err := DeriveMetadataAddress(mint)
	require.NoError(t, err)

	// The metadata PDA is derived against the MPL program. Deriving the
	// same seeds against the bonding curve program must give a different
	// address; confusing the two is a known integration bug.
	sameSeedsOwnProgram, _, err := solana.FindProgramAddress(
		[][]byte{MetadataSeed, MPLTokenMetadataID.Bytes(), mint.Bytes()},
		ProgramID,
	)
	require.NoError(t, err)
	assert.NotEqual(t, sameSeedsOwnProgram, metadata)
}

func TestDeriveAssociatedBondingCurve(t *testing.T) {
	mint := solana.NewWallet().PublicKey()

	ata, err := DeriveAssociatedBondingCurve(mint)
	require.NoError(t, err)

	bondingCurve, _, err := DeriveBondingCurveAddress(mint)
	require.NoError(t, err)

	expected, _, err := solana.FindAssociatedTokenAddress(bondingCurve, mint)
	require.NoError(t, err)
	assert.Equal(t, expected, ata)
}
