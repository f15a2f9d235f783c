// Package server wires the HTTP surface of the gateway: route registration,
// middleware, and the per-endpoint handlers.
package server

import (
	"net/http"

	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pratik-codes/solana-gateway/internal/solana"
	"github.com/pratik-codes/solana-gateway/pkg/errors"
	"github.com/pratik-codes/solana-gateway/pkg/models"
)

// Server represents the HTTP server
type Server struct {
	logger    *zap.Logger
	solanaSvc *solana.Service
}

// NewServer creates a new HTTP server
func NewServer(logger *zap.Logger, solanaSvc *solana.Service) *Server {
	return &Server{
		logger:    logger,
		solanaSvc: solanaSvc,
	}
}

// Router creates a new HTTP router
func (s *Server) Router() *gin.Engine {
	router := gin.New()

	router.Use(ginzap.Ginzap(s.logger, "2006-01-02T15:04:05Z07:00", true))
	router.Use(ginzap.RecoveryWithZap(s.logger, true))
	router.Use(cors.Default())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.POST("/keypair", s.handleGenerateKeypair)

	token := router.Group("/token")
	{
		token.POST("/create", s.handleCreateToken)
		token.POST("/mint", s.handleMintToken)
	}

	message := router.Group("/message")
	{
		message.POST("/sign", s.handleSignMessage)
		message.POST("/verify", s.handleVerifyMessage)
	}

	send := router.Group("/send")
	{
		send.POST("/sol", s.handleSendSol)
		send.POST("/token", s.handleSendToken)
	}

	return router
}

// writeData writes a 200 response in the success envelope.
func (s *Server) writeData(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, models.Success(data))
}

// writeError maps the error to its HTTP status and writes the error envelope.
func (s *Server) writeError(c *gin.Context, err error) {
	c.JSON(errors.StatusOf(err), models.Failure(err.Error()))
}

// bindJSON decodes the request body, writing a 400 in the error envelope on
// malformed JSON. Returns false when the request has already been answered.
func (s *Server) bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		s.logger.Debug("rejecting malformed request body", zap.Error(err))
		c.JSON(http.StatusBadRequest, models.Failure("invalid request body: "+err.Error()))
		return false
	}
	return true
}
