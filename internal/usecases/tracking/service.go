package tracking

import (
	"context"
	"strings"
	"time"

	"github.com/ppcl2025/campaign-change-tracker/infrastructure/repository"
	"github.com/ppcl2025/campaign-change-tracker/internal/domain"
	"github.com/ppcl2025/campaign-change-tracker/pkg/apiErrors"
	"github.com/ppcl2025/campaign-change-tracker/pkg/log"
	"github.com/ppcl2025/campaign-change-tracker/pkg/utils"
)

type Service struct {
	snapshots     repository.SnapshotRepository
	changelogs    repository.ChangeLogRepository
	source        RecordsSource
	recentPeriods int
	now           func() time.Time
}

// NewService cria o serviço de rastreamento. source pode ser nil quando os
// registros sempre chegam no corpo da requisição.
func NewService(
	snapshots repository.SnapshotRepository,
	changelogs repository.ChangeLogRepository,
	source RecordsSource,
	recentPeriods int,
) *Service {
	if recentPeriods <= 0 {
		recentPeriods = repository.DefaultRecentPeriods
	}

	return &Service{
		snapshots:     snapshots,
		changelogs:    changelogs,
		source:        source,
		recentPeriods: recentPeriods,
		now:           time.Now,
	}
}

// WithClock substitui o relógio usado nas capturas
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Capture executa o ciclo completo: diff contra o snapshot anterior, entrada no
// changelog (somente quando havia base de comparação) e por fim a troca do snapshot.
// Falhas de armazenamento não interrompem o ciclo; ficam registradas no resultado.
func (s *Service) Capture(ctx context.Context, req CaptureRequest) (*CaptureResult, error) {
	if err := validateScope(req.Scope); err != nil {
		return nil, err
	}

	key := domain.DeriveStorageKey(req.Scope)
	logger := log.ForContext(ctx).WithField("storage_key", key)

	records, err := s.records(ctx, req)
	if err != nil {
		logger.WithError(err).Error("Erro ao obter registros para captura")
		return nil, err
	}

	now := s.now()
	periodDate := req.PeriodDate
	if periodDate.IsZero() {
		periodDate = now
	}

	current := Normalize(req.Scope, records, now)
	current.CaptureID = utils.GenerateID()

	baseline, hasBaseline := s.snapshots.Load(key)
	changes := Diff(baseline, current)
	summary := Format(changes)

	result := &CaptureResult{
		Key:       key,
		CaptureID: current.CaptureID,
		Baseline:  hasBaseline,
		Changes:   changes,
		Summary:   summary,
	}

	if hasBaseline {
		result.ChangeLogWritten = s.changelogs.AppendEntryWithPerformance(key, summary, periodDate, req.Performance)
		if !result.ChangeLogWritten {
			logger.Warn("Não foi possível gravar o changelog; snapshot e changelog podem ficar dessincronizados")
		}
	}

	result.SnapshotSaved = s.snapshots.Save(key, current)
	if !result.SnapshotSaved {
		logger.Warn("Não foi possível salvar o snapshot atual")
	}

	logger.WithFields(log.Fields{
		"changes":     len(changes),
		"snapshot_id": current.CaptureID,
	}).Info("Captura concluída")

	return result, nil
}

func (s *Service) records(ctx context.Context, req CaptureRequest) (domain.RawRecords, error) {
	if req.Records != nil {
		return *req.Records, nil
	}

	if s.source == nil {
		return domain.RawRecords{}, NewTrackingError(ErrRecordsSourceUnavailable, apiErrors.ErrCommunication, "", "")
	}

	records, err := s.source.FetchRecords(ctx, req.Scope)
	if err != nil {
		return domain.RawRecords{}, NewTrackingError(ErrFetchRecords, apiErrors.ErrExternalService, "", err.Error())
	}

	return records, nil
}

func (s *Service) CurrentSnapshot(scope domain.StorageScope) (*domain.Snapshot, error) {
	if err := validateScope(scope); err != nil {
		return nil, err
	}

	key := domain.DeriveStorageKey(scope)
	snapshot, ok := s.snapshots.Load(key)
	if !ok {
		return nil, NewTrackingError(ErrSnapshotNotFound, apiErrors.ErrSnapshotNotFound, key, "")
	}

	return snapshot, nil
}

func (s *Service) ChangeLog(scope domain.StorageScope) string {
	return s.changelogs.ReadAll(domain.DeriveStorageKey(scope))
}

func (s *Service) RecentChanges(scope domain.StorageScope, maxPeriods int) string {
	if maxPeriods <= 0 {
		maxPeriods = s.recentPeriods
	}
	return s.changelogs.ReadRecentWindow(domain.DeriveStorageKey(scope), maxPeriods)
}

// RecordManualChanges grava no changelog mudanças informadas pelo operador
func (s *Service) RecordManualChanges(scope domain.StorageScope, entry ManualEntry) error {
	if err := validateScope(scope); err != nil {
		return err
	}
	if strings.TrimSpace(entry.Text) == "" {
		return NewTrackingError(ErrEmptyManualEntry, apiErrors.ErrMissingRequiredData, "", "")
	}

	periodDate := entry.PeriodDate
	if periodDate.IsZero() {
		periodDate = s.now()
	}

	key := domain.DeriveStorageKey(scope)
	if !s.changelogs.AppendEntryWithPerformance(key, entry.Text, periodDate, entry.Performance) {
		return NewTrackingError(ErrChangeLogWrite, apiErrors.ErrStorageOperation, key, "")
	}

	return nil
}

func validateScope(scope domain.StorageScope) error {
	if strings.TrimSpace(scope.AccountID) == "" && strings.TrimSpace(scope.AccountName) == "" {
		return NewTrackingError(ErrScopeRequired, apiErrors.ErrMissingRequiredData, "", "")
	}
	return nil
}
