package pumpfun

import (
	"bytes"

	bin "github.com/gagliardetto/binary"
	"lukechampine.com/uint128"
)

// BondingCurveAccount is a decoded snapshot of one token's bonding curve
// state. Field order and widths mirror the on-chain layout exactly.
type BondingCurveAccount struct {
	Discriminator        [8]byte
	VirtualTokenReserves uint64
	VirtualSolReserves   uint64
	RealTokenReserves    uint64
	RealSolReserves      uint64
	TokenTotalSupply     uint64
	Complete             bool
}

// DecodeBondingCurveAccount deserializes a bonding curve account from raw
// account bytes.
func DecodeBondingCurveAccount(data []byte) (*BondingCurveAccount, error) {
	account := &BondingCurveAccount{}
	decoder := bin.NewBorshDecoder(data)
	if err := decoder.Decode(account); err != nil {
		return nil, &DecodeError{Account: "bonding curve", Reason: "malformed layout", Err: err}
	}
	if decoder.Remaining() != 0 {
		return nil, &DecodeError{Account: "bonding curve", Reason: "trailing bytes"}
	}
	if account.Discriminator != bondingCurveDiscriminator {
		return nil, &DecodeError{Account: "bonding curve", Reason: "unexpected discriminator"}
	}
	return account, nil
}

// Encode serializes the account back to its on-chain byte layout.
func (b *BondingCurveAccount) Encode() ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := bin.NewBorshEncoder(buf).Encode(b); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// GetBuyPrice returns the number of tokens obtainable for lamportsIn under
// the constant-product invariant. All arithmetic is integer-only on 128-bit
// intermediates so the result matches the on-chain computation bit for bit.
// The output is monotonic non-decreasing in lamportsIn.
func (b *BondingCurveAccount) GetBuyPrice(lamportsIn uint64) (uint64, error) {
	if b.Complete {
		return 0, ErrBondingCurveComplete
	}
	if lamportsIn == 0 {
		return 0, nil
	}

	// k = virtualSol * virtualToken; a 64x64 multiply always fits in 128 bits.
	product := uint128.From64(b.VirtualSolReserves).Mul64(b.VirtualTokenReserves)
	newSolReserves := uint128.From64(b.VirtualSolReserves).Add64(lamportsIn)

	newTokenReserves := product.Div(newSolReserves).Add64(1)
	virtualTokens := uint128.From64(b.VirtualTokenReserves)
	if newTokenReserves.Cmp(virtualTokens) > 0 {
		return 0, ErrCalculationOverflow
	}

	tokensOut := b.VirtualTokenReserves - newTokenReserves.Lo
	if tokensOut > b.RealTokenReserves {
		tokensOut = b.RealTokenReserves
	}
	return tokensOut, nil
}

// GetSellPrice returns the lamports received for selling tokensIn, net of a
// protocol fee of feeBasisPoints/10000 deducted from the gross proceeds.
// The fee rounds down, so the seller keeps the remainder. The output is
// monotonic non-decreasing in tokensIn.
func (b *BondingCurveAccount) GetSellPrice(tokensIn, feeBasisPoints uint64) (uint64, error) {
	if b.Complete {
		return 0, ErrBondingCurveComplete
	}
	if tokensIn == 0 {
		return 0, nil
	}

	gross := uint128.From64(tokensIn).
		Mul64(b.VirtualSolReserves).
		Div(uint128.From64(b.VirtualTokenReserves).Add64(tokensIn))
	if gross.Hi != 0 {
		return 0, ErrCalculationOverflow
	}

	fee := gross.Mul64(feeBasisPoints).Div64(basisPointDenominator)
	if fee.Cmp(gross) > 0 {
		return 0, ErrCalculationOverflow
	}
	return gross.Sub(fee).Lo, nil
}
