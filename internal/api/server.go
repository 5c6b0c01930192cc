package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/ppcl2025/campaign-change-tracker/internal/api/handler"
	"github.com/ppcl2025/campaign-change-tracker/internal/api/handler/router"
	"github.com/ppcl2025/campaign-change-tracker/internal/config"
	"github.com/ppcl2025/campaign-change-tracker/internal/prompt"
	"github.com/ppcl2025/campaign-change-tracker/internal/usecases/tracking"
	"github.com/ppcl2025/campaign-change-tracker/pkg/middleware"
	"github.com/sirupsen/logrus"
)

const shutdownTimeout = 15 * time.Second

type Server struct {
	httpServer *http.Server
	onShutdown []func() error
}

// Dependencies agrupa os serviços expostos pela API
type Dependencies struct {
	Tracker       tracking.Tracker
	PromptBuilder *prompt.Builder
	PromptCache   *prompt.Cache
	CronJobs      handler.CronJobServices
	Storage       handler.Pinger // nil com o armazenamento em arquivos
}

func New(cfg *config.Config, deps Dependencies) (*Server, error) {
	if deps.Tracker == nil {
		return nil, fmt.Errorf("tracker é obrigatório")
	}

	rt := router.New(
		router.WithRoutes(handler.Healthcheck(deps.Storage)...),
		router.WithRoutes(handler.Snapshots(deps.Tracker)...),
		router.WithRoutes(handler.ChangeLog(deps.Tracker)...),
		router.WithRoutes(handler.CronJobs(deps.CronJobs)...),
	)
	if deps.PromptBuilder != nil && deps.PromptCache != nil {
		rt.AddRoutes(handler.Prompts(deps.PromptBuilder, deps.PromptCache, deps.Tracker)...)
	}

	if cfg.Auth.Secret == "" {
		logrus.Warn("AUTH_SECRET vazio: autenticação desabilitada")
	}

	chain := alice.New(
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(cfg.Server.AllowedOrigins),
		middleware.AuthMiddleware(cfg.Auth.Secret),
	)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:           chain.Then(rt),
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

// OnShutdown registra uma limpeza executada depois que o HTTP para de aceitar requisições
func (s *Server) OnShutdown(fn func() error) {
	s.onShutdown = append(s.onShutdown, fn)
}

// Handler expõe a cadeia completa de middlewares e rotas
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s *Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithField("address", s.httpServer.Addr).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logrus.WithField("timeout", shutdownTimeout.String()).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}
	logrus.Info("Servidor HTTP desligado com sucesso")

	for _, fn := range s.onShutdown {
		if err := fn(); err != nil {
			logrus.WithError(err).Warn("Erro em rotina de limpeza")
		}
	}

	return nil
}
