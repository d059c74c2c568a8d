package handler

import (
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"wallet-ledger/internal/adapter/http/middleware"
	"wallet-ledger/internal/importer"
	"wallet-ledger/internal/service"
	"wallet-ledger/pkg/response"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	Ledger   *service.Ledger
	Importer *importer.Importer
	Logger   zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
// One mutex serializes every ledger-touching handler: the core is written
// for a single logical caller and the HTTP layer honors that.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))

	r.GET("/health", func(c *gin.Context) {
		response.OK(c, gin.H{"status": "ok"})
	})

	var mu sync.Mutex
	walletHandler := NewWalletHandler(&mu, deps.Ledger)
	reportHandler := NewReportHandler(&mu, deps.Ledger)
	importHandler := NewImportHandler(&mu, deps.Importer)

	v1 := r.Group("/api/v1")

	wallets := v1.Group("/wallets")
	{
		wallets.POST("", walletHandler.Create)
		wallets.GET("", walletHandler.List)
		wallets.GET("/:name", walletHandler.Get)
		wallets.GET("/:name/report", reportHandler.MonthlyReport)
		wallets.GET("/:name/expenses/top", reportHandler.TopExpenses)
	}

	v1.POST("/import", importHandler.Import)

	return r
}
