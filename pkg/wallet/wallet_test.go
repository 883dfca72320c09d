package wallet

import (
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFromBase58(t *testing.T) {
	key, err := solana.NewRandomPrivateKey()
	require.NoError(t, err)

	w, err := New(key.String())
	require.NoError(t, err)
	assert.Equal(t, key.PublicKey(), w.PublicKey)
	assert.Equal(t, key, w.PrivateKey)
}

func TestNewRejectsBadInput(t *testing.T) {
	_, err := New("not-base58-!!!")
	assert.Error(t, err)

	// Valid base58 but wrong length.
	_, err = New("3yZe7d")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid private key length")
}

func TestNewRandomIsUnique(t *testing.T) {
	a, err := NewRandom()
	require.NoError(t, err)
	b, err := NewRandom()
	require.NoError(t, err)
	assert.NotEqual(t, a.PublicKey, b.PublicKey)
}

func TestGetATA(t *testing.T) {
	w, err := NewRandom()
	require.NoError(t, err)
	mint := solana.NewWallet().PublicKey()

	ata, err := w.GetATA(mint)
	require.NoError(t, err)

	expected, _, err := solana.FindAssociatedTokenAddress(w.PublicKey, mint)
	require.NoError(t, err)
	assert.Equal(t, expected, ata)

	// Deterministic across calls.
	again, err := w.GetATA(mint)
	require.NoError(t, err)
	assert.Equal(t, ata, again)
}

func TestSignTransactionMultiSigner(t *testing.T) {
	payer, err := NewRandom()
	require.NoError(t, err)
	mint, err := NewRandom()
	require.NoError(t, err)

	ix := solana.NewInstruction(solana.SystemProgramID, []*solana.AccountMeta{
		{PublicKey: payer.PublicKey, IsSigner: true, IsWritable: true},
		{PublicKey: mint.PublicKey, IsSigner: true, IsWritable: true},
	}, []byte{0})

	tx, err := solana.NewTransaction([]solana.Instruction{ix}, solana.Hash{1},
		solana.TransactionPayer(payer.PublicKey))
	require.NoError(t, err)

	require.NoError(t, SignTransaction(tx, payer, mint))
	assert.Len(t, tx.Signatures, 2)
	require.NoError(t, tx.VerifySignatures())
}

func TestSignTransactionMissingSigner(t *testing.T) {
	payer, err := NewRandom()
	require.NoError(t, err)
	other, err := NewRandom()
	require.NoError(t, err)

	ix := solana.NewInstruction(solana.SystemProgramID, []*solana.AccountMeta{
		{PublicKey: payer.PublicKey, IsSigner: true, IsWritable: true},
	}, []byte{0})

	tx, err := solana.NewTransaction([]solana.Instruction{ix}, solana.Hash{1},
		solana.TransactionPayer(payer.PublicKey))
	require.NoError(t, err)

	err = SignTransaction(tx, other)
	assert.Error(t, err)
}

func TestCreateAssociatedTokenAccountIdempotentInstruction(t *testing.T) {
	payer := solana.NewWallet().PublicKey()
	owner := solana.NewWallet().PublicKey()
	mint := solana.NewWallet().PublicKey()

	ata, _, err := solana.FindAssociatedTokenAddress(owner, mint)
	require.NoError(t, err)

	ix := CreateAssociatedTokenAccountIdempotentInstruction(payer, owner, mint, ata)
	assert.Equal(t, solana.SPLAssociatedTokenAccountProgramID, ix.ProgramID())

	data, err := ix.Data()
	require.NoError(t, err)
	assert.Equal(t, []byte{1}, data)

	metas := ix.Accounts()
	require.Len(t, metas, 6)
	assert.Equal(t, payer, metas[0].PublicKey)
	assert.True(t, metas[0].IsSigner)
	assert.True(t, metas[0].IsWritable)
	assert.Equal(t, ata, metas[1].PublicKey)
	assert.True(t, metas[1].IsWritable)
	assert.Equal(t, owner, metas[2].PublicKey)
	assert.Equal(t, mint, metas[3].PublicKey)
	assert.Equal(t, solana.SystemProgramID, metas[4].PublicKey)
	assert.Equal(t, solana.TokenProgramID, metas[5].PublicKey)
}
