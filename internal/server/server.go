// Package server exposes the invoicing HTTP API.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/codkage/facture/internal/client"
	clientdomain "github.com/codkage/facture/internal/client/domain"
	"github.com/codkage/facture/internal/company"
	companydomain "github.com/codkage/facture/internal/company/domain"
	"github.com/codkage/facture/internal/config"
	"github.com/codkage/facture/internal/invoice"
	invoicedomain "github.com/codkage/facture/internal/invoice/domain"
	"github.com/codkage/facture/internal/logging"
	"github.com/codkage/facture/internal/providers"
	"github.com/codkage/facture/internal/providers/pdf"
)

var Module = fx.Module("http.server",
	fx.Provide(registerGin),
	company.Module,
	client.Module,
	invoice.Module,
	providers.Module,
	fx.Provide(NewServer),
	fx.Invoke(registerRoutes),
	fx.Invoke(run),
)

func NewEngine(log *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logging.GinMiddleware(log))
	r.Use(MetricsMiddleware())
	r.Use(CORSMiddleware())
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func registerGin(log *zap.Logger) *gin.Engine {
	return NewEngine(log)
}

func run(lc fx.Lifecycle, r *gin.Engine, cfg config.Config) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
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
	engine     *gin.Engine
	cfg        config.Config
	db         *gorm.DB
	companySvc companydomain.Service
	clientSvc  clientdomain.Service
	invoiceSvc invoicedomain.Service
	pdfSvc     pdf.Provider
}

type ServerParams struct {
	fx.In

	Gin        *gin.Engine
	Cfg        config.Config
	DB         *gorm.DB
	CompanySvc companydomain.Service
	ClientSvc  clientdomain.Service
	InvoiceSvc invoicedomain.Service
	PDFSvc     pdf.Provider
}

func NewServer(p ServerParams) *Server {
	return &Server{
		engine:     p.Gin,
		cfg:        p.Cfg,
		db:         p.DB,
		companySvc: p.CompanySvc,
		clientSvc:  p.ClientSvc,
		invoiceSvc: p.InvoiceSvc,
		pdfSvc:     p.PDFSvc,
	}
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// RegisterAPIRoutes mounts the action-dispatched API endpoint. Every
// operation shares the /api path and selects behaviour through the action
// query parameter, so the route accepts any method and dispatches itself.
func (s *Server) RegisterAPIRoutes() {
	s.engine.Any("/api", s.Dispatch)
}

func registerRoutes(s *Server) {
	s.RegisterAPIRoutes()
}
