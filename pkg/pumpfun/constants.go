package pumpfun

import "github.com/gagliardetto/solana-go"

// Seeds used for PDA derivation. These byte strings are part of the on-chain
// program's address scheme and must match it exactly.
var (
	GlobalSeed        = []byte("global")
	MintAuthoritySeed = []byte("mint-authority")
	BondingCurveSeed  = []byte("bonding-curve")
	MetadataSeed      = []byte("metadata")
)

// Known Pump.fun protocol addresses.
var (
	// ProgramID is the Pump.fun bonding curve program.
	ProgramID = solana.MustPublicKeyFromBase58("6EF8rrecthR5Dkzon8Nwu78hRvfCKubJ14M5uBEwF6P")

	// EventAuthority is the fixed authority used for instruction introspection.
	EventAuthority = solana.MustPublicKeyFromBase58("Ce6TQqeHC9p8KetsN6JsjHK7UTZk7nasjjnr7XxXp9F1")

	// MPLTokenMetadataID is the Metaplex token metadata registry program.
	// Metadata PDAs are derived against this program, not against ProgramID.
	MPLTokenMetadataID = solana.MustPublicKeyFromBase58("metaqbxxUerdq28cj1RbAWkYQm3ybzjb6a8bt518x1s")
)

// Anchor instruction discriminators (sha256("global:<name>")[0:8]).
var (
	createInstructionDiscriminator = [8]byte{24, 30, 200, 40, 5, 28, 7, 119}
	buyInstructionDiscriminator    = [8]byte{102, 6, 61, 18, 1, 218, 235, 234}
	sellInstructionDiscriminator   = [8]byte{51, 230, 133, 164, 1, 127, 131, 173}
)

// Anchor account discriminators (sha256("account:<Name>")[0:8]).
var (
	globalAccountDiscriminator = [8]byte{167, 232, 232, 177, 200, 108, 114, 127}
	bondingCurveDiscriminator  = [8]byte{23, 183, 248, 55, 96, 216, 172, 96}
)
