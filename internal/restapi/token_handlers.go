package restapi

import (
	"net/http"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nftshinessy/montoks/internal/service"
)

// TokenHandler handles the token analysis endpoints.
type TokenHandler struct {
	tokenService *service.TokenService
	logger       *zap.Logger
}

// NewTokenHandler creates a new TokenHandler.
func NewTokenHandler(tokenService *service.TokenService, logger *zap.Logger) *TokenHandler {
	return &TokenHandler{
		tokenService: tokenService,
		logger:       logger.Named("TokenHandler"),
	}
}

// isValidContractAddress reports whether the address is a 0x-prefixed
// 20-byte hex string.
func isValidContractAddress(address string) bool {
	return strings.HasPrefix(address, "0x") && common.IsHexAddress(address)
}

// GetTokenHandler serves GET /api/token/:contractAddress. Internal failures
// are encoded as sentinel field values in the record, the response status is
// 200 for anything but a malformed address.
func (h *TokenHandler) GetTokenHandler(c *gin.Context) {
	contractAddress := c.Param("contractAddress")
	if !isValidContractAddress(contractAddress) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid contract address format"})
		return
	}

	record := h.tokenService.AnalyzeToken(c.Request.Context(), contractAddress)
	c.JSON(http.StatusOK, record)
}

// GetHoldersCountHandler serves GET /api/token/:contractAddress/holders/count.
func (h *TokenHandler) GetHoldersCountHandler(c *gin.Context) {
	contractAddress := c.Param("contractAddress")
	if !isValidContractAddress(contractAddress) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid contract address format"})
		return
	}

	totalHolders := h.tokenService.CountHolders(c.Request.Context(), contractAddress)
	c.JSON(http.StatusOK, gin.H{"totalHolders": totalHolders})
}
