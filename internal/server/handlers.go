package server

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pratik-codes/solana-gateway/pkg/errors"
	"github.com/pratik-codes/solana-gateway/pkg/models"
)

// handleGenerateKeypair handles POST /keypair
func (s *Server) handleGenerateKeypair(c *gin.Context) {
	resp, err := s.solanaSvc.GenerateKeypair()
	if err != nil {
		s.logger.Error("failed to generate keypair", zap.Error(err))
		s.writeError(c, err)
		return
	}

	s.logger.Info("generated new keypair", zap.String("public_key", resp.PublicKey))
	s.writeData(c, resp)
}

// handleCreateToken handles POST /token/create
func (s *Server) handleCreateToken(c *gin.Context) {
	var req models.CreateTokenRequest
	if !s.bindJSON(c, &req) {
		return
	}

	if req.MintAuthority == "" {
		s.writeError(c, errors.Validation("mintAuthority is required"))
		return
	}
	if req.Mint == "" {
		s.writeError(c, errors.Validation("mint is required"))
		return
	}
	if !s.solanaSvc.IsValidPublicKey(req.MintAuthority) {
		s.writeError(c, errors.InvalidPublicKey(req.MintAuthority))
		return
	}
	if !s.solanaSvc.IsValidPublicKey(req.Mint) {
		s.writeError(c, errors.InvalidPublicKey(req.Mint))
		return
	}

	resp, err := s.solanaSvc.CreateTokenMint(req.MintAuthority, req.Mint, req.Decimals)
	if err != nil {
		s.logger.Error("failed to create token mint instruction", zap.String("mint", req.Mint), zap.Error(err))
		s.writeError(c, err)
		return
	}

	s.logger.Info("created token mint instruction", zap.String("mint", req.Mint))
	s.writeData(c, resp)
}

// handleMintToken handles POST /token/mint
func (s *Server) handleMintToken(c *gin.Context) {
	var req models.MintTokenRequest
	if !s.bindJSON(c, &req) {
		return
	}

	if req.Mint == "" {
		s.writeError(c, errors.Validation("mint is required"))
		return
	}
	if req.Destination == "" {
		s.writeError(c, errors.Validation("destination is required"))
		return
	}
	if req.Authority == "" {
		s.writeError(c, errors.Validation("authority is required"))
		return
	}
	if req.Amount == 0 {
		s.writeError(c, errors.Validation("amount must be greater than 0"))
		return
	}
	for _, key := range []string{req.Mint, req.Destination, req.Authority} {
		if !s.solanaSvc.IsValidPublicKey(key) {
			s.writeError(c, errors.InvalidPublicKey(key))
			return
		}
	}

	resp, err := s.solanaSvc.MintToken(req.Mint, req.Destination, req.Authority, req.Amount)
	if err != nil {
		s.logger.Error("failed to create mint_to instruction", zap.String("mint", req.Mint), zap.Error(err))
		s.writeError(c, err)
		return
	}

	s.logger.Info("created mint_to instruction",
		zap.String("mint", req.Mint),
		zap.Uint64("amount", req.Amount))
	s.writeData(c, resp)
}

// handleSignMessage handles POST /message/sign
func (s *Server) handleSignMessage(c *gin.Context) {
	var req models.SignMessageRequest
	if !s.bindJSON(c, &req) {
		return
	}

	if req.Message == "" {
		s.writeError(c, errors.Validation("message is required"))
		return
	}
	if req.Secret == "" {
		s.writeError(c, errors.Validation("secret is required"))
		return
	}
	if !s.solanaSvc.IsValidSecretKey(req.Secret) {
		s.writeError(c, errors.InvalidSecretKey("invalid secret key format"))
		return
	}

	resp, err := s.solanaSvc.SignMessage(req.Message, req.Secret)
	if err != nil {
		s.logger.Error("failed to sign message", zap.Error(err))
		s.writeError(c, err)
		return
	}

	s.logger.Info("signed message", zap.String("public_key", resp.PublicKey))
	s.writeData(c, resp)
}

// handleVerifyMessage handles POST /message/verify
func (s *Server) handleVerifyMessage(c *gin.Context) {
	var req models.VerifyMessageRequest
	if !s.bindJSON(c, &req) {
		return
	}

	if req.Message == "" {
		s.writeError(c, errors.Validation("message is required"))
		return
	}
	if req.Signature == "" {
		s.writeError(c, errors.Validation("signature is required"))
		return
	}
	if req.PublicKey == "" {
		s.writeError(c, errors.Validation("public_key is required"))
		return
	}
	if !s.solanaSvc.IsValidPublicKey(req.PublicKey) {
		s.writeError(c, errors.InvalidPublicKey(req.PublicKey))
		return
	}

	resp, err := s.solanaSvc.VerifyMessage(req.Message, req.Signature, req.PublicKey)
	if err != nil {
		s.logger.Error("failed to verify message signature", zap.Error(err))
		s.writeError(c, err)
		return
	}

	s.logger.Info("verified message signature", zap.Bool("valid", resp.Valid))
	s.writeData(c, resp)
}

// handleSendSol handles POST /send/sol
func (s *Server) handleSendSol(c *gin.Context) {
	var req models.SendSolRequest
	if !s.bindJSON(c, &req) {
		return
	}

	if req.From == "" {
		s.writeError(c, errors.Validation("from is required"))
		return
	}
	if req.To == "" {
		s.writeError(c, errors.Validation("to is required"))
		return
	}
	if req.Lamports == 0 {
		s.writeError(c, errors.Validation("lamports must be greater than 0"))
		return
	}
	if req.From == req.To {
		s.writeError(c, errors.Validation("from and to must be different accounts"))
		return
	}
	for _, key := range []string{req.From, req.To} {
		if !s.solanaSvc.IsValidPublicKey(key) {
			s.writeError(c, errors.InvalidPublicKey(key))
			return
		}
	}

	resp, err := s.solanaSvc.TransferSol(req.From, req.To, req.Lamports)
	if err != nil {
		s.logger.Error("failed to create transfer instruction", zap.Error(err))
		s.writeError(c, err)
		return
	}

	s.logger.Info("created sol transfer instruction", zap.Uint64("lamports", req.Lamports))
	s.writeData(c, resp)
}

// handleSendToken handles POST /send/token
func (s *Server) handleSendToken(c *gin.Context) {
	var req models.SendTokenRequest
	if !s.bindJSON(c, &req) {
		return
	}

	if req.Destination == "" {
		s.writeError(c, errors.Validation("destination is required"))
		return
	}
	if req.Mint == "" {
		s.writeError(c, errors.Validation("mint is required"))
		return
	}
	if req.Owner == "" {
		s.writeError(c, errors.Validation("owner is required"))
		return
	}
	if req.Amount == 0 {
		s.writeError(c, errors.Validation("amount must be greater than 0"))
		return
	}
	for _, key := range []string{req.Destination, req.Mint, req.Owner} {
		if !s.solanaSvc.IsValidPublicKey(key) {
			s.writeError(c, errors.InvalidPublicKey(key))
			return
		}
	}

	resp, err := s.solanaSvc.TransferToken(req.Destination, req.Mint, req.Owner, req.Amount)
	if err != nil {
		s.logger.Error("failed to create token transfer instruction", zap.String("mint", req.Mint), zap.Error(err))
		s.writeError(c, err)
		return
	}

	s.logger.Info("created token transfer instruction",
		zap.String("mint", req.Mint),
		zap.Uint64("amount", req.Amount))
	s.writeData(c, resp)
}
