package restapi

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nftshinessy/montoks/internal/client"
	"github.com/nftshinessy/montoks/internal/service"
)

var allowedCategories = map[string]bool{
	"wallet":   true,
	"verified": true,
	"stable":   true,
	"lst":      true,
	"bridged":  true,
	"meme":     true,
}

// ProxyHandler handles the price endpoints and the raw pass-throughs to the
// upstream APIs. These are direct forwards, failures surface as 500s rather
// than sentinel values.
type ProxyHandler struct {
	monorail    client.MonorailClient
	blockvision client.BlockvisionClient
	prices      *service.PriceService
	logger      *zap.Logger
}

// NewProxyHandler creates a new ProxyHandler.
func NewProxyHandler(monorail client.MonorailClient, blockvision client.BlockvisionClient, prices *service.PriceService, logger *zap.Logger) *ProxyHandler {
	return &ProxyHandler{
		monorail:    monorail,
		blockvision: blockvision,
		prices:      prices,
		logger:      logger.Named("ProxyHandler"),
	}
}

// GasPriceHandler serves GET /api/gas-price.
func (h *ProxyHandler) GasPriceHandler(c *gin.Context) {
	quote, err := h.prices.GasPrice(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch gas price"})
		return
	}
	c.JSON(http.StatusOK, quote)
}

// MonPriceHandler serves GET /api/mon-price.
func (h *ProxyHandler) MonPriceHandler(c *gin.Context) {
	price, err := h.prices.MonPriceUSD(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch MON price"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"price": price})
}

// CategoryTokensHandler serves GET /api/tokens/category/:category.
func (h *ProxyHandler) CategoryTokensHandler(c *gin.Context) {
	category := c.Param("category")
	if !allowedCategories[category] {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category"})
		return
	}

	data, err := h.monorail.RawTokensByCategory(c.Request.Context(), category, c.Query("address"))
	if err != nil {
		h.logger.Error("Failed to fetch tokens by category", zap.String("category", category), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch tokens by category"})
		return
	}
	c.Data(http.StatusOK, "application/json", data)
}

// BlockvisionHoldersHandler serves GET /api/blockvision/token/:address/holders.
func (h *ProxyHandler) BlockvisionHoldersHandler(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}

	data, err := h.blockvision.RawTokenHolders(c.Request.Context(), c.Param("address"), page, limit)
	if err != nil {
		h.logger.Error("Blockvision token holders proxy failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch token holders"})
		return
	}
	c.Data(http.StatusOK, "application/json", data)
}

// BlockvisionDetailHandler serves GET /api/blockvision/token/:address/detail.
func (h *ProxyHandler) BlockvisionDetailHandler(c *gin.Context) {
	data, err := h.blockvision.RawTokenDetail(c.Request.Context(), c.Param("address"))
	if err != nil {
		h.logger.Error("Blockvision token detail proxy failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch token detail"})
		return
	}
	c.Data(http.StatusOK, "application/json", data)
}

// BlockvisionGatingHandler serves GET /api/blockvision/token/gating.
func (h *ProxyHandler) BlockvisionGatingHandler(c *gin.Context) {
	accountAddress := c.Query("accountAddress")
	tokenAddress := c.Query("tokenAddress")
	if accountAddress == "" || tokenAddress == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing accountAddress or tokenAddress parameters"})
		return
	}

	data, err := h.blockvision.RawTokenGating(c.Request.Context(), accountAddress, tokenAddress)
	if err != nil {
		h.logger.Error("Blockvision token gating proxy failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch token gating data"})
		return
	}
	c.Data(http.StatusOK, "application/json", data)
}
