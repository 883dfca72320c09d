package pumpfun

import (
	"bytes"
	"encoding/binary"
	"fmt"

	bin "github.com/gagliardetto/binary"
	"github.com/gagliardetto/solana-go"
)

// CreateInstructionAccounts holds the resolved account set for a create
// instruction.
type CreateInstructionAccounts struct {
	Mint                   solana.PublicKey
	MintAuthority          solana.PublicKey
	BondingCurve           solana.PublicKey
	AssociatedBondingCurve solana.PublicKey
	Global                 solana.PublicKey
	Metadata               solana.PublicKey
	User                   solana.PublicKey
}

// TradeInstructionAccounts holds the resolved account set shared by buy and
// sell instructions.
type TradeInstructionAccounts struct {
	Global                 solana.PublicKey
	FeeRecipient           solana.PublicKey
	Mint                   solana.PublicKey
	BondingCurve           solana.PublicKey
	AssociatedBondingCurve solana.PublicKey
	AssociatedUser         solana.PublicKey
	User                   solana.PublicKey
}

type createArgs struct {
	Name   string
	Symbol string
	URI    string
}

// BuildCreateInstruction builds the instruction that launches a new token
// and its bonding curve.
func BuildCreateInstruction(accounts CreateInstructionAccounts, name, symbol, uri string) (solana.Instruction, error) {
	buf := new(bytes.Buffer)
	buf.Write(createInstructionDiscriminator[:])
	if err := bin.NewBorshEncoder(buf).Encode(createArgs{Name: name, Symbol: symbol, URI: uri}); err != nil {
		return nil, fmt.Errorf("failed to encode create arguments: %w", err)
	}

	// Account list must be in the exact order expected by the program.
	insAccounts := []*solana.AccountMeta{
		{PublicKey: accounts.Mint, IsSigner: true, IsWritable: true},
		{PublicKey: accounts.MintAuthority, IsSigner: false, IsWritable: false},
		{PublicKey: accounts.BondingCurve, IsSigner: false, IsWritable: true},
		{PublicKey: accounts.AssociatedBondingCurve, IsSigner: false, IsWritable: true},
		{PublicKey: accounts.Global, IsSigner: false, IsWritable: false},
		{PublicKey: MPLTokenMetadataID, IsSigner: false, IsWritable: false},
		{PublicKey: accounts.Metadata, IsSigner: false, IsWritable: true},
		{PublicKey: accounts.User, IsSigner: true, IsWritable: true},
		{PublicKey: solana.SystemProgramID, IsSigner: false, IsWritable: false},
		{PublicKey: solana.TokenProgramID, IsSigner: false, IsWritable: false},
		{PublicKey: solana.SPLAssociatedTokenAccountProgramID, IsSigner: false, IsWritable: false},
		{PublicKey: solana.SysVarRentPubkey, IsSigner: false, IsWritable: false},
		{PublicKey: EventAuthority, IsSigner: false, IsWritable: false},
		{PublicKey: ProgramID, IsSigner: false, IsWritable: false},
	}

	return solana.NewInstruction(ProgramID, insAccounts, buf.Bytes()), nil
}

// BuildBuyInstruction builds a buy instruction with the given token amount
// and SOL cost ceiling.
func BuildBuyInstruction(accounts TradeInstructionAccounts, amount, maxSolCost uint64) solana.Instruction {
	data := make([]byte, 0, 24)
	data = append(data, buyInstructionDiscriminator[:]...)

	amountBytes := make([]byte, 8)
	binary.LittleEndian.PutUint64(amountBytes, amount)
	data = append(data, amountBytes...)

	maxSolBytes := make([]byte, 8)
	binary.LittleEndian.PutUint64(maxSolBytes, maxSolCost)
	data = append(data, maxSolBytes...)

	// Account list must be in the exact order expected by the program.
	insAccounts := []*solana.AccountMeta{
		{PublicKey: accounts.Global, IsSigner: false, IsWritable: false},
		{PublicKey: accounts.FeeRecipient, IsSigner: false, IsWritable: true},
		{PublicKey: accounts.Mint, IsSigner: false, IsWritable: false},
		{PublicKey: accounts.BondingCurve, IsSigner: false, IsWritable: true},
		{PublicKey: accounts.AssociatedBondingCurve, IsSigner: false, IsWritable: true},
		{PublicKey: accounts.AssociatedUser, IsSigner: false, IsWritable: true},
		{PublicKey: accounts.User, IsSigner: true, IsWritable: true},
		{PublicKey: solana.SystemProgramID, IsSigner: false, IsWritable: false},
		{PublicKey: solana.TokenProgramID, IsSigner: false, IsWritable: false},
		{PublicKey: solana.SysVarRentPubkey, IsSigner: false, IsWritable: false},
		{PublicKey: EventAuthority, IsSigner: false, IsWritable: false},
		{PublicKey: ProgramID, IsSigner: false, IsWritable: false},
	}

	return solana.NewInstruction(ProgramID, insAccounts, data)
}

// BuildSellInstruction builds a sell instruction with the given token amount
// and SOL output floor.
func BuildSellInstruction(accounts TradeInstructionAccounts, amount, minSolOutput uint64) solana.Instruction {
	data := make([]byte, 0, 24)
	data = append(data, sellInstructionDiscriminator[:]...)

	amountBytes := make([]byte, 8)
	binary.LittleEndian.PutUint64(amountBytes, amount)
	data = append(data, amountBytes...)

	minSolBytes := make([]byte, 8)
	binary.LittleEndian.PutUint64(minSolBytes, minSolOutput)
	data = append(data, minSolBytes...)

	// Account list must be in the exact order expected by the program. Note
	// the associated token program precedes the token program here, unlike
	// the buy instruction.
	insAccounts := []*solana.AccountMeta{
		{PublicKey: accounts.Global, IsSigner: false, IsWritable: false},
		{PublicKey: accounts.FeeRecipient, IsSigner: false, IsWritable: true},
		{PublicKey: accounts.Mint, IsSigner: false, IsWritable: false},
		{PublicKey: accounts.BondingCurve, IsSigner: false, IsWritable: true},
		{PublicKey: accounts.AssociatedBondingCurve, IsSigner: false, IsWritable: true},
		{PublicKey: accounts.AssociatedUser, IsSigner: false, IsWritable: true},
		{PublicKey: accounts.User, IsSigner: true, IsWritable: true},
		{PublicKey: solana.SystemProgramID, IsSigner: false, IsWritable: false},
		{PublicKey: solana.SPLAssociatedTokenAccountProgramID, IsSigner: false, IsWritable: false},
		{PublicKey: solana.TokenProgramID, IsSigner: false, IsWritable: false},
		{PublicKey: EventAuthority, IsSigner: false, IsWritable: false},
		{PublicKey: ProgramID, IsSigner: false, IsWritable: false},
	}

	return solana.NewInstruction(ProgramID, insAccounts, data)
}
