package scheduler

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/ppcl2025/campaign-change-tracker/internal/config"
	"github.com/ppcl2025/campaign-change-tracker/internal/domain"
	"github.com/ppcl2025/campaign-change-tracker/internal/usecases/tracking"
	"github.com/sirupsen/logrus"
)

// ChangeTrackingSyncConfig representa a configuração da captura agendada de snapshots
type ChangeTrackingSyncConfig struct {
	CronSchedule        string
	RequestDelaySeconds int
	SyncEnabled         bool
	Scopes              []domain.StorageScope
}

// ScopeSyncResult guarda o resultado da última captura de um escopo
type ScopeSyncResult struct {
	Key        string    `json:"key"`
	Changes    int       `json:"changes"`
	Baseline   bool      `json:"baseline"`
	Error      string    `json:"error,omitempty"`
	CapturedAt time.Time `json:"captured_at"`
}

// ChangeTrackingSyncService captura periodicamente os escopos configurados
type ChangeTrackingSyncService struct {
	scheduler           *gocron.Scheduler
	config              ChangeTrackingSyncConfig
	tracker             tracking.Tracker
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastResults         map[string]ScopeSyncResult
}

func NewChangeTrackingSyncService(tracker tracking.Tracker, appConfig *config.Config) *ChangeTrackingSyncService {
	syncConfig := ChangeTrackingSyncConfig{
		CronSchedule:        appConfig.ChangeTrackingSync.CronSchedule,
		RequestDelaySeconds: appConfig.ChangeTrackingSync.RequestDelaySeconds,
		SyncEnabled:         appConfig.ChangeTrackingSync.Enabled,
		Scopes:              ParseTrackedScopes(appConfig.ChangeTrackingSync.TrackedScopes),
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":         syncConfig.CronSchedule,
		"request_delay_seconds": syncConfig.RequestDelaySeconds,
		"sync_enabled":          syncConfig.SyncEnabled,
		"tracked_scopes":        len(syncConfig.Scopes),
	}).Info("Configuração do agendador de captura de snapshots carregada")

	return &ChangeTrackingSyncService{
		scheduler:   gocron.NewScheduler(time.Local),
		config:      syncConfig,
		tracker:     tracker,
		lastResults: make(map[string]ScopeSyncResult),
	}
}

// ParseTrackedScopes converte entradas "conta[:campanha[:nome da conta[:nome da campanha]]]"
// em escopos. Os nomes levam a captura para a mesma chave usada pela API quando
// ela recebe account_name/campaign_name. Entradas vazias são ignoradas.
func ParseTrackedScopes(entries []string) []domain.StorageScope {
	var scopes []domain.StorageScope
	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}

		parts := make([]string, 4)
		copy(parts, strings.SplitN(entry, ":", 4))
		for i := range parts {
			parts[i] = strings.TrimSpace(parts[i])
		}
		if parts[0] == "" {
			logrus.WithField("entry", entry).Warn("Escopo rastreado sem conta, ignorando")
			continue
		}

		scopes = append(scopes, domain.StorageScope{
			AccountID:   parts[0],
			ScopeID:     parts[1],
			AccountName: parts[2],
			ScopeName:   parts[3],
		})
	}
	return scopes
}

// Start inicia o agendador
func (s *ChangeTrackingSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Captura agendada de snapshots desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de captura de snapshots")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncAllScopes(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar captura de snapshots: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de captura de snapshots")
		s.scheduler.Stop()
	}()

	return nil
}

// syncAllScopes captura todos os escopos configurados, um de cada vez
func (s *ChangeTrackingSyncService) syncAllScopes(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Captura de snapshots já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	if len(s.config.Scopes) == 0 {
		logrus.Info("Nenhum escopo configurado para captura de snapshots")
		return
	}

	startTime := time.Now()
	for i, scope := range s.config.Scopes {
		if ctx.Err() != nil {
			logrus.Info("Captura de snapshots interrompida pelo contexto")
			return
		}

		s.captureScope(ctx, scope)

		// Aguardar antes do próximo escopo para evitar sobrecarga na API
		if i < len(s.config.Scopes)-1 && s.config.RequestDelaySeconds > 0 {
			time.Sleep(time.Duration(s.config.RequestDelaySeconds) * time.Second)
		}
	}

	s.syncMutex.Lock()
	s.lastSyncCompletedAt = time.Now()
	s.syncMutex.Unlock()

	logrus.WithFields(logrus.Fields{
		"duration": time.Since(startTime).String(),
		"scopes":   len(s.config.Scopes),
	}).Info("Captura de snapshots concluída")
}

func (s *ChangeTrackingSyncService) captureScope(ctx context.Context, scope domain.StorageScope) {
	key := domain.DeriveStorageKey(scope)
	syncResult := ScopeSyncResult{Key: key, CapturedAt: time.Now()}

	result, err := s.tracker.Capture(ctx, tracking.CaptureRequest{Scope: scope})
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id":  scope.AccountID,
			"campaign_id": scope.ScopeID,
			"error":       err.Error(),
		}).Error("Erro ao capturar snapshot do escopo")
		syncResult.Error = err.Error()
	} else {
		syncResult.Changes = len(result.Changes)
		syncResult.Baseline = result.Baseline
		logrus.WithFields(logrus.Fields{
			"storage_key": key,
			"changes":     len(result.Changes),
		}).Info("Snapshot do escopo capturado")
	}

	s.syncMutex.Lock()
	s.lastResults[key] = syncResult
	s.syncMutex.Unlock()
}

// TriggerManualSync inicia manualmente uma captura de todos os escopos
func (s *ChangeTrackingSyncService) TriggerManualSync() bool {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Captura de snapshots já em andamento, ignorando solicitação manual")
		return false
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando captura manual de snapshots")
	go s.syncAllScopes(context.Background())
	return true
}

// GetStatus retorna o status atual do agendador
func (s *ChangeTrackingSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	results := make(map[string]ScopeSyncResult, len(s.lastResults))
	for k, v := range s.lastResults {
		results[k] = v
	}

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_request_delay_s":   s.config.RequestDelaySeconds,
		"tracked_scopes":         len(s.config.Scopes),
		"sync_running":           s.syncRunning,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_results":           results,
	}
}
