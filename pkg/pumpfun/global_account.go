package pumpfun

import (
	"bytes"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
)

// GlobalAccount is a decoded snapshot of the program-wide configuration
// account. The field order and widths mirror the on-chain layout exactly
// and are a protocol contract.
type GlobalAccount struct {
	Discriminator               [8]byte
	Initialized                 bool
	Authority                   solana.PublicKey
	FeeRecipient                solana.PublicKey
	InitialVirtualTokenReserves uint64
	InitialVirtualSolReserves   uint64
	InitialRealTokenReserves    uint64
	TokenTotalSupply            uint64
	FeeBasisPoints              uint64
}

// DecodeGlobalAccount deserializes a global account from raw account bytes.
func DecodeGlobalAccount(data []byte) (*GlobalAccount, error) {
	account := &GlobalAccount{}
	decoder := bin.NewBorshDecoder(data)
	if err := decoder.Decode(account); err != nil {
		return nil, &DecodeError{Account: "global", Reason: "malformed layout", Err: err}
	}
	if decoder.Remaining() != 0 {
		return nil, &DecodeError{Account: "global", Reason: "trailing bytes"}
	}
	if account.Discriminator != globalAccountDiscriminator {
		return nil, &DecodeError{Account: "global", Reason: "unexpected discriminator"}
	}
	return account, nil
}

// Encode serializes the account back to its on-chain byte layout. Decoding
// a well-formed buffer and re-encoding it reproduces the input exactly.
func (g *GlobalAccount) Encode() ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := bin.NewBorshEncoder(buf).Encode(g); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
