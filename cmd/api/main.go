package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/ppcl2025/campaign-change-tracker/infrastructure/database/postgres"
	"github.com/ppcl2025/campaign-change-tracker/infrastructure/integrator/ads"
	"github.com/ppcl2025/campaign-change-tracker/infrastructure/integrator/ads/adsclient"
	"github.com/ppcl2025/campaign-change-tracker/infrastructure/repository"
	"github.com/ppcl2025/campaign-change-tracker/infrastructure/storage"
	"github.com/ppcl2025/campaign-change-tracker/infrastructure/storage/file"
	pgstorage "github.com/ppcl2025/campaign-change-tracker/infrastructure/storage/postgres"
	"github.com/ppcl2025/campaign-change-tracker/internal/api"
	"github.com/ppcl2025/campaign-change-tracker/internal/api/handler"
	"github.com/ppcl2025/campaign-change-tracker/internal/config"
	"github.com/ppcl2025/campaign-change-tracker/internal/prompt"
	"github.com/ppcl2025/campaign-change-tracker/internal/scheduler"
	"github.com/ppcl2025/campaign-change-tracker/internal/usecases/tracking"
	"github.com/sirupsen/logrus"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	snapshotStore, changelogStore, pgConn := stores(ctx, cfg)

	snapshotRepo := repository.NewSnapshotRepository(snapshotStore)
	changelogRepo := repository.NewChangeLogRepository(changelogStore)

	adsClient := adsclient.NewClient(&cfg.Ads)
	adsIntegrator := ads.New(adsClient)

	trackingService := tracking.NewService(
		snapshotRepo,
		changelogRepo,
		adsIntegrator,
		cfg.Storage.RecentWindowPeriods,
	)

	pages, err := prompt.LoadPages(cfg.Prompt.PagesFile)
	if err != nil {
		logrus.WithError(err).Warn("Erro ao ler configuração de páginas de prompt, usando padrão")
		pages = prompt.DefaultPages
	}
	promptCache := prompt.NewCache(cfg.Prompt.ModulesDir)
	promptBuilder := prompt.NewBuilder(promptCache, pages)

	changeTrackingSyncService := scheduler.NewChangeTrackingSyncService(trackingService, cfg)
	if err := changeTrackingSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de captura de snapshots")
	} else {
		logrus.Info("Agendador de captura de snapshots iniciado com sucesso")
	}

	deps := api.Dependencies{
		Tracker:       trackingService,
		PromptBuilder: promptBuilder,
		PromptCache:   promptCache,
		CronJobs: handler.CronJobServices{
			ChangeTrackingSyncService: changeTrackingSyncService,
		},
	}
	if pgConn != nil {
		deps.Storage = pgConn
	}

	server, err := api.New(cfg, deps)
	if err != nil {
		logrus.Fatal(err)
	}
	if pgConn != nil {
		server.OnShutdown(pgConn.Close)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// stores escolhe o backend de snapshots e changelogs pelo STORAGE_DRIVER.
// A conexão só é devolvida com o driver postgres.
func stores(ctx context.Context, cfg *config.Config) (storage.Store, storage.Store, *postgres.Connection) {
	switch cfg.Storage.Driver {
	case config.StorageDriverPostgres:
		conn := pgconn(ctx, cfg.Database)
		if err := conn.EnsureSchema(ctx); err != nil {
			logrus.WithError(err).Fatal("Erro ao criar tabela de documentos")
		}
		return pgstorage.NewStore(conn, pgstorage.NamespaceSnapshots),
			pgstorage.NewStore(conn, pgstorage.NamespaceChangelogs),
			conn
	case config.StorageDriverFile, "":
		logrus.WithFields(logrus.Fields{
			"snapshot_dir":  cfg.Storage.SnapshotDir,
			"changelog_dir": cfg.Storage.ChangelogDir,
		}).Info("Usando armazenamento em arquivos")
		return file.NewStore(cfg.Storage.SnapshotDir, file.SnapshotExt),
			file.NewStore(cfg.Storage.ChangelogDir, file.ChangelogExt),
			nil
	default:
		logrus.Fatalf("STORAGE_DRIVER inválido: %s", cfg.Storage.Driver)
		return nil, nil, nil
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
