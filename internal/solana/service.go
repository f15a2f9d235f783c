// Package solana is the delegation layer between the HTTP surface and the
// Solana SDK. Every method validates its inputs shallowly and makes a single
// call into solana-go; no instruction layout or cryptography lives here.
package solana

import (
	"crypto/ed25519"
	"encoding/base64"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/system"
	"github.com/gagliardetto/solana-go/programs/token"
	"github.com/mr-tron/base58"
	"go.uber.org/zap"

	"github.com/pratik-codes/solana-gateway/pkg/errors"
	"github.com/pratik-codes/solana-gateway/pkg/models"
)

// Solana keypairs are 64 bytes: 32-byte seed followed by the public key.
const keypairLen = 64

// Service exposes keypair, instruction and signature operations backed by the
// Solana SDK. It is stateless and safe for concurrent use.
type Service struct {
	logger *zap.Logger
}

// NewService creates a new Solana service
func NewService(logger *zap.Logger) *Service {
	return &Service{logger: logger}
}

// GenerateKeypair creates a fresh Ed25519 keypair. The secret is the base58
// encoding of the full 64-byte keypair, matching the Solana CLI format.
func (s *Service) GenerateKeypair() (*models.KeypairResponse, error) {
	key, err := solana.NewRandomPrivateKey()
	if err != nil {
		return nil, errors.TokenOperation(err)
	}

	return &models.KeypairResponse{
		PublicKey: key.PublicKey().String(),
		SecretKey: key.String(),
	}, nil
}

// CreateTokenMint builds an SPL token InitializeMint instruction. The mint
// authority doubles as the freeze authority.
func (s *Service) CreateTokenMint(mintAuthority, mint string, decimals uint8) (*models.InstructionResponse, error) {
	authorityKey, err := solana.PublicKeyFromBase58(mintAuthority)
	if err != nil {
		return nil, errors.InvalidPublicKey(mintAuthority)
	}
	mintKey, err := solana.PublicKeyFromBase58(mint)
	if err != nil {
		return nil, errors.InvalidPublicKey(mint)
	}

	inst, err := token.NewInitializeMintInstructionBuilder().
		SetDecimals(decimals).
		SetMintAuthority(authorityKey).
		SetFreezeAuthority(authorityKey).
		SetMintAccount(mintKey).
		SetSysVarRentPubkeyAccount(solana.SysVarRentPubkey).
		ValidateAndBuild()
	if err != nil {
		return nil, errors.TokenOperation(err)
	}

	return instructionResponse(inst)
}

// MintToken builds an SPL token MintTo instruction with no multisig signers.
func (s *Service) MintToken(mint, destination, authority string, amount uint64) (*models.InstructionResponse, error) {
	mintKey, err := solana.PublicKeyFromBase58(mint)
	if err != nil {
		return nil, errors.InvalidPublicKey(mint)
	}
	destinationKey, err := solana.PublicKeyFromBase58(destination)
	if err != nil {
		return nil, errors.InvalidPublicKey(destination)
	}
	authorityKey, err := solana.PublicKeyFromBase58(authority)
	if err != nil {
		return nil, errors.InvalidPublicKey(authority)
	}

	inst, err := token.NewMintToInstructionBuilder().
		SetAmount(amount).
		SetMintAccount(mintKey).
		SetDestinationAccount(destinationKey).
		SetAuthorityAccount(authorityKey).
		ValidateAndBuild()
	if err != nil {
		return nil, errors.TokenOperation(err)
	}

	return instructionResponse(inst)
}

// TransferSol builds a system-program transfer instruction moving lamports
// between two wallets.
func (s *Service) TransferSol(from, to string, lamports uint64) (*models.InstructionResponse, error) {
	fromKey, err := solana.PublicKeyFromBase58(from)
	if err != nil {
		return nil, errors.InvalidPublicKey(from)
	}
	toKey, err := solana.PublicKeyFromBase58(to)
	if err != nil {
		return nil, errors.InvalidPublicKey(to)
	}

	inst, err := system.NewTransferInstructionBuilder().
		SetLamports(lamports).
		SetFundingAccount(fromKey).
		SetRecipientAccount(toKey).
		ValidateAndBuild()
	if err != nil {
		return nil, errors.TokenOperation(err)
	}

	return instructionResponse(inst)
}

// TransferToken builds an SPL token Transfer instruction between the
// associated token accounts of the owner and destination wallets.
func (s *Service) TransferToken(destination, mint, owner string, amount uint64) (*models.InstructionResponse, error) {
	destinationKey, err := solana.PublicKeyFromBase58(destination)
	if err != nil {
		return nil, errors.InvalidPublicKey(destination)
	}
	mintKey, err := solana.PublicKeyFromBase58(mint)
	if err != nil {
		return nil, errors.InvalidPublicKey(mint)
	}
	ownerKey, err := solana.PublicKeyFromBase58(owner)
	if err != nil {
		return nil, errors.InvalidPublicKey(owner)
	}

	sourceATA, _, err := solana.FindAssociatedTokenAddress(ownerKey, mintKey)
	if err != nil {
		return nil, errors.TokenOperation(err)
	}
	destinationATA, _, err := solana.FindAssociatedTokenAddress(destinationKey, mintKey)
	if err != nil {
		return nil, errors.TokenOperation(err)
	}

	inst, err := token.NewTransferInstructionBuilder().
		SetAmount(amount).
		SetSourceAccount(sourceATA).
		SetDestinationAccount(destinationATA).
		SetOwnerAccount(ownerKey).
		ValidateAndBuild()
	if err != nil {
		return nil, errors.TokenOperation(err)
	}

	return instructionResponse(inst)
}

// SignMessage signs the UTF-8 bytes of message with the base58-encoded
// 64-byte secret key and returns the signature as base64.
func (s *Service) SignMessage(message, secret string) (*models.SignMessageResponse, error) {
	secretBytes, err := base58.Decode(secret)
	if err != nil {
		return nil, errors.Base58Decode(err)
	}
	if len(secretBytes) != keypairLen {
		return nil, errors.InvalidSecretKey("invalid secret key length: expected %d bytes, got %d", keypairLen, len(secretBytes))
	}

	key := solana.PrivateKey(secretBytes)
	signature, err := key.Sign([]byte(message))
	if err != nil {
		return nil, errors.InvalidSecretKey("failed to sign message").Cause(err)
	}

	return &models.SignMessageResponse{
		Signature: base64.StdEncoding.EncodeToString(signature[:]),
		PublicKey: key.PublicKey().String(),
		Message:   message,
	}, nil
}

// VerifyMessage checks a base64 Ed25519 signature over the UTF-8 bytes of
// message against a base58 public key. A well-formed signature that simply
// does not match is not an error: the response carries valid=false.
func (s *Service) VerifyMessage(message, signatureB64, publicKey string) (*models.VerifyMessageResponse, error) {
	signatureBytes, err := base64.StdEncoding.DecodeString(signatureB64)
	if err != nil {
		return nil, errors.Base64Decode(err)
	}
	if len(signatureBytes) != ed25519.SignatureSize {
		return nil, errors.InvalidSignature("invalid signature length: expected %d bytes, got %d", ed25519.SignatureSize, len(signatureBytes))
	}

	pubKey, err := solana.PublicKeyFromBase58(publicKey)
	if err != nil {
		return nil, errors.InvalidPublicKey(publicKey)
	}

	valid := ed25519.Verify(ed25519.PublicKey(pubKey[:]), []byte(message), signatureBytes)

	return &models.VerifyMessageResponse{Valid: valid}, nil
}

// IsValidPublicKey reports whether the string parses as a base58 32-byte key.
func (s *Service) IsValidPublicKey(key string) bool {
	_, err := solana.PublicKeyFromBase58(key)
	return err == nil
}

// IsValidSecretKey reports whether the string base58-decodes to a 64-byte keypair.
func (s *Service) IsValidSecretKey(secret string) bool {
	decoded, err := base58.Decode(secret)
	return err == nil && len(decoded) == keypairLen
}

// instructionResponse flattens an SDK instruction into the wire shape:
// program id and accounts in base58, instruction data in base64.
func instructionResponse(inst solana.Instruction) (*models.InstructionResponse, error) {
	data, err := inst.Data()
	if err != nil {
		return nil, errors.TokenOperation(err)
	}

	accounts := make([]models.AccountMeta, 0, len(inst.Accounts()))
	for _, acc := range inst.Accounts() {
		accounts = append(accounts, models.AccountMeta{
			Pubkey:     acc.PublicKey.String(),
			IsSigner:   acc.IsSigner,
			IsWritable: acc.IsWritable,
		})
	}

	return &models.InstructionResponse{
		ProgramID:       inst.ProgramID().String(),
		Accounts:        accounts,
		InstructionData: base64.StdEncoding.EncodeToString(data),
	}, nil
}
