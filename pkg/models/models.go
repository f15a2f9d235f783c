// Package models defines the wire-level request and response shapes of the
// gateway. Field names follow the public API contract; mintAuthority is
// camelCase on the wire for compatibility with existing clients.
package models

// APIResponse is the envelope for successful responses.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
}

// APIErrorResponse is the envelope for error responses.
type APIErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// Success wraps data in the success envelope.
func Success(data interface{}) APIResponse {
	return APIResponse{Success: true, Data: data}
}

// Failure wraps an error message in the error envelope.
func Failure(message string) APIErrorResponse {
	return APIErrorResponse{Success: false, Error: message}
}

// KeypairResponse is the data payload for POST /keypair.
type KeypairResponse struct {
	PublicKey string `json:"public_key"`
	SecretKey string `json:"secret_key"`
}

// CreateTokenRequest is the body of POST /token/create.
type CreateTokenRequest struct {
	MintAuthority string `json:"mintAuthority"`
	Mint          string `json:"mint"`
	Decimals      uint8  `json:"decimals"`
}

// MintTokenRequest is the body of POST /token/mint.
type MintTokenRequest struct {
	Mint        string `json:"mint"`
	Destination string `json:"destination"`
	Authority   string `json:"authority"`
	Amount      uint64 `json:"amount"`
}

// SendSolRequest is the body of POST /send/sol.
type SendSolRequest struct {
	From     string `json:"from"`
	To       string `json:"to"`
	Lamports uint64 `json:"lamports"`
}

// SendTokenRequest is the body of POST /send/token.
type SendTokenRequest struct {
	Destination string `json:"destination"`
	Mint        string `json:"mint"`
	Owner       string `json:"owner"`
	Amount      uint64 `json:"amount"`
}

// AccountMeta describes one account an instruction touches.
type AccountMeta struct {
	Pubkey     string `json:"pubkey"`
	IsSigner   bool   `json:"is_signer"`
	IsWritable bool   `json:"is_writable"`
}

// InstructionResponse is the data payload for every endpoint that returns an
// unsigned instruction: the owning program, the account list in instruction
// order, and the base64-encoded instruction data.
type InstructionResponse struct {
	ProgramID       string        `json:"program_id"`
	Accounts        []AccountMeta `json:"accounts"`
	InstructionData string        `json:"instruction_data"`
}

// SignMessageRequest is the body of POST /message/sign.
type SignMessageRequest struct {
	Message string `json:"message"`
	Secret  string `json:"secret"`
}

// SignMessageResponse is the data payload for POST /message/sign.
type SignMessageResponse struct {
	Signature string `json:"signature"`
	PublicKey string `json:"public_key"`
	Message   string `json:"message"`
}

// VerifyMessageRequest is the body of POST /message/verify.
type VerifyMessageRequest struct {
	Message   string `json:"message"`
	Signature string `json:"signature"`
	PublicKey string `json:"public_key"`
}

// VerifyMessageResponse is the data payload for POST /message/verify.
type VerifyMessageResponse struct {
	Valid bool `json:"valid"`
}
