package solana

import (
	"crypto/ed25519"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pratik-codes/solana-gateway/pkg/errors"
)

const (
	tokenProgramID  = "TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA"
	systemProgramID = "11111111111111111111111111111111"

	// Any well-formed 32-byte base58 strings work for instruction building;
	// the gateway never checks on-chain existence.
	pubkeyA = "11111111111111111111111111111112"
	pubkeyB = "11111111111111111111111111111113"
	pubkeyC = "11111111111111111111111111111114"
)

func newTestService() *Service {
	return NewService(zap.NewNop())
}

func TestGenerateKeypair(t *testing.T) {
	svc := newTestService()

	resp, err := svc.GenerateKeypair()
	require.NoError(t, err)
	assert.NotEmpty(t, resp.PublicKey)
	assert.NotEmpty(t, resp.SecretKey)

	// The secret must round-trip through the service's own validation.
	assert.True(t, svc.IsValidPublicKey(resp.PublicKey))
	assert.True(t, svc.IsValidSecretKey(resp.SecretKey))
}

func TestGenerateKeypair_Distinct(t *testing.T) {
	svc := newTestService()

	first, err := svc.GenerateKeypair()
	require.NoError(t, err)
	second, err := svc.GenerateKeypair()
	require.NoError(t, err)

	assert.NotEqual(t, first.PublicKey, second.PublicKey)
}

func TestCreateTokenMint(t *testing.T) {
	svc := newTestService()

	resp, err := svc.CreateTokenMint(pubkeyA, pubkeyB, 9)
	require.NoError(t, err)

	assert.Equal(t, tokenProgramID, resp.ProgramID)
	assert.NotEmpty(t, resp.Accounts)
	assert.NotEmpty(t, resp.InstructionData)

	// InitializeMint touches the mint account and the rent sysvar.
	assert.Equal(t, pubkeyB, resp.Accounts[0].Pubkey)
	assert.True(t, resp.Accounts[0].IsWritable)
	assert.False(t, resp.Accounts[0].IsSigner)

	_, err = base64.StdEncoding.DecodeString(resp.InstructionData)
	assert.NoError(t, err)
}

func TestCreateTokenMint_InvalidPubkey(t *testing.T) {
	svc := newTestService()

	_, err := svc.CreateTokenMint("not-a-key", pubkeyB, 9)
	require.Error(t, err)

	var appErr *errors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "InvalidPublicKey", appErr.Kind)
	assert.Equal(t, 400, appErr.StatusCode())
}

func TestMintToken(t *testing.T) {
	svc := newTestService()

	resp, err := svc.MintToken(pubkeyA, pubkeyB, pubkeyC, 1_000_000)
	require.NoError(t, err)

	assert.Equal(t, tokenProgramID, resp.ProgramID)
	require.Len(t, resp.Accounts, 3)

	// mint, destination writable; authority is the signer
	assert.Equal(t, pubkeyA, resp.Accounts[0].Pubkey)
	assert.True(t, resp.Accounts[0].IsWritable)
	assert.Equal(t, pubkeyB, resp.Accounts[1].Pubkey)
	assert.True(t, resp.Accounts[1].IsWritable)
	assert.Equal(t, pubkeyC, resp.Accounts[2].Pubkey)
	assert.True(t, resp.Accounts[2].IsSigner)
}

func TestTransferSol(t *testing.T) {
	svc := newTestService()

	resp, err := svc.TransferSol(pubkeyA, pubkeyB, 5000)
	require.NoError(t, err)

	assert.Equal(t, systemProgramID, resp.ProgramID)
	require.Len(t, resp.Accounts, 2)
	assert.Equal(t, pubkeyA, resp.Accounts[0].Pubkey)
	assert.True(t, resp.Accounts[0].IsSigner)
	assert.True(t, resp.Accounts[0].IsWritable)
	assert.Equal(t, pubkeyB, resp.Accounts[1].Pubkey)
	assert.False(t, resp.Accounts[1].IsSigner)
	assert.True(t, resp.Accounts[1].IsWritable)
}

func TestTransferToken(t *testing.T) {
	svc := newTestService()

	resp, err := svc.TransferToken(pubkeyA, pubkeyB, pubkeyC, 250)
	require.NoError(t, err)

	assert.Equal(t, tokenProgramID, resp.ProgramID)
	require.Len(t, resp.Accounts, 3)

	// Source and destination are derived ATAs, not the wallet addresses.
	assert.NotEqual(t, pubkeyC, resp.Accounts[0].Pubkey)
	assert.NotEqual(t, pubkeyA, resp.Accounts[1].Pubkey)
	assert.Equal(t, pubkeyC, resp.Accounts[2].Pubkey)
	assert.True(t, resp.Accounts[2].IsSigner)
}

func TestSignAndVerifyMessage(t *testing.T) {
	svc := newTestService()

	keypair, err := svc.GenerateKeypair()
	require.NoError(t, err)

	message := "Hello, Solana!"
	signResp, err := svc.SignMessage(message, keypair.SecretKey)
	require.NoError(t, err)

	assert.Equal(t, message, signResp.Message)
	assert.Equal(t, keypair.PublicKey, signResp.PublicKey)

	verifyResp, err := svc.VerifyMessage(message, signResp.Signature, signResp.PublicKey)
	require.NoError(t, err)
	assert.True(t, verifyResp.Valid)
}

func TestVerifyMessage_TamperedMessage(t *testing.T) {
	svc := newTestService()

	keypair, err := svc.GenerateKeypair()
	require.NoError(t, err)

	signResp, err := svc.SignMessage("original", keypair.SecretKey)
	require.NoError(t, err)

	verifyResp, err := svc.VerifyMessage("tampered", signResp.Signature, keypair.PublicKey)
	require.NoError(t, err)
	assert.False(t, verifyResp.Valid)
}

func TestVerifyMessage_NonMatchingSignature(t *testing.T) {
	svc := newTestService()

	keypair, err := svc.GenerateKeypair()
	require.NoError(t, err)

	// Well-formed 64-byte signature that matches nothing: not an error,
	// just valid=false.
	zeroSig := base64.StdEncoding.EncodeToString(make([]byte, ed25519.SignatureSize))
	verifyResp, err := svc.VerifyMessage("test message", zeroSig, keypair.PublicKey)
	require.NoError(t, err)
	assert.False(t, verifyResp.Valid)
}

func TestVerifyMessage_MalformedSignature(t *testing.T) {
	svc := newTestService()

	keypair, err := svc.GenerateKeypair()
	require.NoError(t, err)

	_, err = svc.VerifyMessage("test", "!!!not-base64!!!", keypair.PublicKey)
	require.Error(t, err)
	assert.Equal(t, 400, errors.StatusOf(err))

	// Decodes fine but is not 64 bytes.
	short := base64.StdEncoding.EncodeToString([]byte("too short"))
	_, err = svc.VerifyMessage("test", short, keypair.PublicKey)
	require.Error(t, err)
	assert.Equal(t, 400, errors.StatusOf(err))
}

func TestSignMessage_InvalidSecret(t *testing.T) {
	svc := newTestService()

	_, err := svc.SignMessage("msg", "0OIl") // characters outside the base58 alphabet
	require.Error(t, err)
	assert.Equal(t, 400, errors.StatusOf(err))

	// Valid base58, wrong length.
	_, err = svc.SignMessage("msg", pubkeyA)
	require.Error(t, err)
	assert.Equal(t, 400, errors.StatusOf(err))
}

func TestIsValidPublicKey(t *testing.T) {
	svc := newTestService()

	assert.True(t, svc.IsValidPublicKey(pubkeyA))
	assert.False(t, svc.IsValidPublicKey("invalid_pubkey"))
	assert.False(t, svc.IsValidPublicKey(""))
}
