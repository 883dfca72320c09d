// Package wallet holds the signing material used by the client. Keys are
// supplied by the caller; nothing here generates or persists them.
package wallet

import (
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/mr-tron/base58"
)

// Wallet wraps one Solana keypair.
type Wallet struct {
	PrivateKey solana.PrivateKey
	PublicKey  solana.PublicKey
}

// New creates a wallet from a base58-encoded 64-byte private key.
func New(privateKeyBase58 string) (*Wallet, error) {
	privateKeyBytes, err := base58.Decode(privateKeyBase58)
	if err != nil {
		return nil, fmt.Errorf("failed to decode private key: %w", err)
	}
	if len(privateKeyBytes) != 64 {
		return nil, fmt.Errorf("invalid private key length: expected 64 bytes, got %d", len(privateKeyBytes))
	}
	privateKey := solana.PrivateKey(privateKeyBytes)
	return &Wallet{
		PrivateKey: privateKey,
		PublicKey:  privateKey.PublicKey(),
	}, nil
}

// FromPrivateKey wraps an existing private key.
func FromPrivateKey(privateKey solana.PrivateKey) *Wallet {
	return &Wallet{
		PrivateKey: privateKey,
		PublicKey:  privateKey.PublicKey(),
	}
}

// NewRandom generates an ephemeral keypair. Used for fresh token mints.
func NewRandom() (*Wallet, error) {
	privateKey, err := solana.NewRandomPrivateKey()
	if err != nil {
		return nil, fmt.Errorf("failed to generate keypair: %w", err)
	}
	return FromPrivateKey(privateKey), nil
}

// GetATA returns the associated token account address for the given mint.
func (w *Wallet) GetATA(mint solana.PublicKey) (solana.PublicKey, error) {
	ata, _, err := solana.FindAssociatedTokenAddress(w.PublicKey, mint)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("failed to derive associated token account: %w", err)
	}
	return ata, nil
}

// SignTransaction signs tx with every wallet in signers that the transaction
// requires. The ordered signer list makes multi-signer submissions (such as
// a fee payer plus a new mint keypair) explicit.
func SignTransaction(tx *solana.Transaction, signers ...*Wallet) error {
	_, err := tx.Sign(func(key solana.PublicKey) *solana.PrivateKey {
		for _, signer := range signers {
			if key.Equals(signer.PublicKey) {
				return &signer.PrivateKey
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to sign transaction: %w", err)
	}
	return nil
}

// CreateAssociatedTokenAccountIdempotentInstruction builds an instruction
// that creates the owner's associated token account for mint, succeeding
// even when the account already exists. The caller supplies the ata it
// already derived (see GetATA), so derivation cannot fail here.
func CreateAssociatedTokenAccountIdempotentInstruction(payer, owner, mint, ata solana.PublicKey) solana.Instruction {
	keys := []*solana.AccountMeta{
		{PublicKey: payer, IsSigner: true, IsWritable: true},
		{PublicKey: ata, IsSigner: false, IsWritable: true},
		{PublicKey: owner, IsSigner: false, IsWritable: false},
		{PublicKey: mint, IsSigner: false, IsWritable: false},
		{PublicKey: solana.SystemProgramID, IsSigner: false, IsWritable: false},
		{PublicKey: solana.TokenProgramID, IsSigner: false, IsWritable: false},
	}

	// Instruction 1 is CreateIdempotent on the associated token program.
	return solana.NewInstruction(solana.SPLAssociatedTokenAccountProgramID, keys, []byte{1})
}
