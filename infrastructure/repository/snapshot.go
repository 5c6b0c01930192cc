package repository

import (
	"errors"

	jsoniter "github.com/json-iterator/go"
	"github.com/ppcl2025/campaign-change-tracker/infrastructure/storage"
	"github.com/ppcl2025/campaign-change-tracker/internal/domain"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// SnapshotRepository guarda um único snapshot por chave.
// Falhas de I/O nunca chegam ao chamador: Save devolve false e Load devolve nil.
type SnapshotRepository interface {
	Save(key string, snapshot domain.Snapshot) bool
	Load(key string) (*domain.Snapshot, bool)
}

type snapshotRepository struct {
	store storage.Store
}

func NewSnapshotRepository(store storage.Store) SnapshotRepository {
	return &snapshotRepository{
		store: store,
	}
}

func (r *snapshotRepository) Save(key string, snapshot domain.Snapshot) bool {
	content, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		logrus.WithField("storage_key", key).WithError(err).Error("Erro ao serializar snapshot")
		return false
	}

	if err := r.store.Put(key, content); err != nil {
		logrus.WithField("storage_key", key).WithError(err).Error("Erro ao salvar snapshot")
		return false
	}

	logrus.WithFields(logrus.Fields{
		"storage_key": key,
		"campaigns":   len(snapshot.Campaigns),
		"ad_groups":   len(snapshot.AdGroups),
		"keywords":    len(snapshot.Keywords),
	}).Debug("Snapshot salvo")

	return true
}

func (r *snapshotRepository) Load(key string) (*domain.Snapshot, bool) {
	content, err := r.store.Get(key)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			logrus.WithField("storage_key", key).WithError(err).Warn("Erro ao ler snapshot, tratando como inexistente")
		}
		return nil, false
	}

	var snapshot domain.Snapshot
	if err := json.Unmarshal(content, &snapshot); err != nil {
		logrus.WithField("storage_key", key).WithError(err).Warn("Snapshot corrompido, tratando como inexistente")
		return nil, false
	}

	return &snapshot, true
}
