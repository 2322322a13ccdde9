package restapi

import (
	"net/http"
	"net/http/pprof"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/nftshinessy/montoks/internal/config"
)

// SetupRouter configures and returns the Gin router with all application
// routes, CORS, logging and recovery middleware.
func SetupRouter(tokenHandler *TokenHandler, proxyHandler *ProxyHandler, cfg *config.Config, logger *zap.Logger) *gin.Engine {
	router := gin.New()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.Cors.AllowedOrigins
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	corsConfig.AllowCredentials = true
	router.Use(cors.New(corsConfig))

	router.Use(ZapLoggerMiddleware(logger))
	router.Use(gin.Recovery())

	api := router.Group("/api")
	{
		api.GET("/token/:contractAddress", tokenHandler.GetTokenHandler)
		api.GET("/token/:contractAddress/holders/count", tokenHandler.GetHoldersCountHandler)
		api.GET("/gas-price", proxyHandler.GasPriceHandler)
		api.GET("/mon-price", proxyHandler.MonPriceHandler)
		api.GET("/tokens/category/:category", proxyHandler.CategoryTokensHandler)

		blockvision := api.Group("/blockvision")
		{
			blockvision.GET("/token/gating", proxyHandler.BlockvisionGatingHandler)
			blockvision.GET("/token/:address/holders", proxyHandler.BlockvisionHoldersHandler)
			blockvision.GET("/token/:address/detail", proxyHandler.BlockvisionDetailHandler)
		}
	}

	router.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	pprofRouter := router.Group("/debug/pprof")
	{
		pprofRouter.GET("/", gin.WrapF(pprof.Index))
		pprofRouter.GET("/cmdline", gin.WrapF(pprof.Cmdline))
		pprofRouter.GET("/profile", gin.WrapF(pprof.Profile))
		pprofRouter.GET("/symbol", gin.WrapF(pprof.Symbol))
		pprofRouter.GET("/trace", gin.WrapF(pprof.Trace))
		pprofRouter.GET("/heap", gin.WrapH(pprof.Handler("heap")))
		pprofRouter.GET("/goroutine", gin.WrapH(pprof.Handler("goroutine")))
	}

	return router
}
