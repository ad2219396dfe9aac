package server

import (
	"context"
	"net/http"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/fogonlabs/fogon/internal/auth"
	authdomain "github.com/fogonlabs/fogon/internal/auth/domain"
	"github.com/fogonlabs/fogon/internal/auth/session"
	"github.com/fogonlabs/fogon/internal/category"
	categorydomain "github.com/fogonlabs/fogon/internal/category/domain"
	"github.com/fogonlabs/fogon/internal/claim"
	claimdomain "github.com/fogonlabs/fogon/internal/claim/domain"
	"github.com/fogonlabs/fogon/internal/config"
	"github.com/fogonlabs/fogon/internal/events"
	"github.com/fogonlabs/fogon/internal/legalpage"
	legalpagedomain "github.com/fogonlabs/fogon/internal/legalpage/domain"
	"github.com/fogonlabs/fogon/internal/observability"
	"github.com/fogonlabs/fogon/internal/product"
	productdomain "github.com/fogonlabs/fogon/internal/product/domain"
	"github.com/fogonlabs/fogon/internal/providers/pdf"
	"github.com/fogonlabs/fogon/internal/ratelimit"
	"github.com/fogonlabs/fogon/internal/sitesettings"
	sitesettingsdomain "github.com/fogonlabs/fogon/internal/sitesettings/domain"
	"github.com/fogonlabs/fogon/internal/storage"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var Module = fx.Module("http.server",
	events.Module,
	observability.Module,
	auth.Module,
	category.Module,
	product.Module,
	claim.Module,
	sitesettings.Module,
	legalpage.Module,
	pdf.Module,
	storage.Module,
	ratelimit.Module,
	fx.Provide(registerGin),
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

func NewEngine(log *zap.Logger, metrics *observability.Metrics) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogger(log))
	r.Use(ErrorHandlingMiddleware())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(metrics.Registry(), promhttp.HandlerOpts{})))

	return r
}

func registerGin(log *zap.Logger, metrics *observability.Metrics) *gin.Engine {
	return NewEngine(log, metrics)
}

func run(lc fx.Lifecycle, cfg config.Config, r *gin.Engine, log *zap.Logger) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Info("http server listening", zap.String("addr", cfg.HTTPAddr))
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					panic(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine      *gin.Engine
	cfg         config.Config
	db          *gorm.DB
	log         *zap.Logger
	genID       *snowflake.Node
	sessions    *session.Manager
	metrics     *observability.Metrics
	hub         *events.Hub
	authSvc     authdomain.Service
	claimSvc    claimdomain.Service
	categorySvc categorydomain.Service
	productSvc  productdomain.Service
	settingsSvc sitesettingsdomain.Service
	legalSvc    legalpagedomain.Service
	pdfProvider pdf.Provider
	store       storage.Store
	limiter     *ratelimit.ClaimSubmitLimiter
}

type ServerParams struct {
	fx.In

	Engine      *gin.Engine
	Cfg         config.Config
	DB          *gorm.DB
	Log         *zap.Logger
	GenID       *snowflake.Node
	Sessions    *session.Manager
	Metrics     *observability.Metrics
	Hub         *events.Hub
	AuthSvc     authdomain.Service
	ClaimSvc    claimdomain.Service
	CategorySvc categorydomain.Service
	ProductSvc  productdomain.Service
	SettingsSvc sitesettingsdomain.Service
	LegalSvc    legalpagedomain.Service
	PDFProvider pdf.Provider
	Store       storage.Store
	Limiter     *ratelimit.ClaimSubmitLimiter
}

func NewServer(p ServerParams) *Server {
	s := &Server{
		engine:      p.Engine,
		cfg:         p.Cfg,
		db:          p.DB,
		log:         p.Log.Named("http.server"),
		genID:       p.GenID,
		sessions:    p.Sessions,
		metrics:     p.Metrics,
		hub:         p.Hub,
		authSvc:     p.AuthSvc,
		claimSvc:    p.ClaimSvc,
		categorySvc: p.CategorySvc,
		productSvc:  p.ProductSvc,
		settingsSvc: p.SettingsSvc,
		legalSvc:    p.LegalSvc,
		pdfProvider: p.PDFProvider,
		store:       p.Store,
		limiter:     p.Limiter,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	r := s.engine

	r.Static("/uploads", s.store.Dir())

	api := r.Group("/api")
	{
		api.GET("/settings", s.GetSettings)
		api.GET("/categories", s.ListCategories)
		api.GET("/products", s.ListProducts)
		api.GET("/products/:slug", s.GetProductBySlug)
		api.GET("/legal/:slug", s.GetLegalPage)
		api.GET("/events/content", s.StreamContentEvents)

		api.POST("/claims", s.RateLimitClaims(), s.SubmitClaim)
		api.GET("/claims/constancia/:id", s.GetConstancia)
		api.GET("/claims/constancia/:id/pdf", s.DownloadConstanciaPDF)

		api.POST("/auth/login", s.Login)
		api.POST("/auth/logout", s.Logout)
	}

	admin := api.Group("/admin", s.AuthRequired(), s.RequireAdmin())
	{
		admin.GET("/me", s.Me)

		admin.GET("/claims", s.ListClaims)
		admin.GET("/claims/:id", s.GetClaim)
		admin.PATCH("/claims/:id", s.UpdateClaim)

		admin.GET("/categories", s.ListAllCategories)
		admin.POST("/categories", s.CreateCategory)
		admin.PATCH("/categories/:id", s.UpdateCategory)
		admin.POST("/categories/:id/move", s.MoveCategory)
		admin.DELETE("/categories/:id", s.DeleteCategory)

		admin.GET("/products", s.ListAllProducts)
		admin.POST("/products", s.CreateProduct)
		admin.PATCH("/products/:id", s.UpdateProduct)
		admin.POST("/products/:id/move", s.MoveProduct)
		admin.DELETE("/products/:id", s.DeleteProduct)

		admin.GET("/settings", s.GetRawSettings)
		admin.PUT("/settings", s.UpdateSettings)

		admin.GET("/legal", s.ListLegalPages)
		admin.PUT("/legal/:slug", s.PutLegalPage)
		admin.DELETE("/legal/:slug", s.DeleteLegalPage)

		admin.POST("/uploads", s.UploadImage)
		admin.DELETE("/uploads", s.DeleteImage)
	}
}
