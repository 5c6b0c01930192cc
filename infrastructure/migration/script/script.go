package main

import (
	"context"
	"flag"
	"time"

	"github.com/ppcl2025/campaign-change-tracker/infrastructure/database/postgres"
	"github.com/ppcl2025/campaign-change-tracker/infrastructure/storage/file"
	pgstorage "github.com/ppcl2025/campaign-change-tracker/infrastructure/storage/postgres"
	"github.com/ppcl2025/campaign-change-tracker/internal/config"
	"github.com/sirupsen/logrus"
)

// keyLister é o lado de origem da migração
type keyLister interface {
	Keys() ([]string, error)
	Get(key string) ([]byte, error)
}

type putter interface {
	Put(key string, content []byte) error
}

type migrationResult struct {
	copied int
	failed int
}

func setupLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
	logrus.Info("Iniciando script de migração de snapshots e changelogs para o PostgreSQL...")
}

// migrate copia todas as chaves de from para to; erros em uma chave não interrompem as demais
func migrate(name string, from keyLister, to putter, dryRun bool) migrationResult {
	var result migrationResult
	startTime := time.Now()

	keys, err := from.Keys()
	if err != nil {
		logrus.WithError(err).Errorf("ERRO ao listar documentos de %s", name)
		return result
	}

	logrus.Infof("Iniciando cópia de %d documentos de %s...", len(keys), name)

	for i, key := range keys {
		content, err := from.Get(key)
		if err != nil {
			logrus.WithError(err).WithField("storage_key", key).Error("ERRO ao ler documento")
			result.failed++
			continue
		}

		if !dryRun {
			if err := to.Put(key, content); err != nil {
				logrus.WithError(err).WithField("storage_key", key).Error("ERRO ao gravar documento")
				result.failed++
				continue
			}
		}
		result.copied++

		if (i+1)%100 == 0 {
			logrus.Infof("Progresso %s: %d/%d", name, i+1, len(keys))
		}
	}

	logrus.WithFields(logrus.Fields{
		"copied":   result.copied,
		"failed":   result.failed,
		"duration": time.Since(startTime).String(),
		"dry_run":  dryRun,
	}).Infof("Migração de %s concluída", name)

	return result
}

func main() {
	dryRun := flag.Bool("dry-run", false, "apenas lê os arquivos, sem gravar no banco")
	flag.Parse()

	setupLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("ERRO ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	if err := conn.EnsureSchema(ctx); err != nil {
		logrus.WithError(err).Fatal("ERRO ao criar tabela de documentos")
	}

	snapshots := migrate(
		pgstorage.NamespaceSnapshots,
		file.NewStore(cfg.Storage.SnapshotDir, file.SnapshotExt),
		pgstorage.NewStore(conn, pgstorage.NamespaceSnapshots),
		*dryRun,
	)
	changelogs := migrate(
		pgstorage.NamespaceChangelogs,
		file.NewStore(cfg.Storage.ChangelogDir, file.ChangelogExt),
		pgstorage.NewStore(conn, pgstorage.NamespaceChangelogs),
		*dryRun,
	)

	if snapshots.failed+changelogs.failed > 0 {
		logrus.Fatalf("Migração terminou com %d falhas", snapshots.failed+changelogs.failed)
	}
	logrus.Info("Migração finalizada com sucesso")
}
