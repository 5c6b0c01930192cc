package tracking

import (
	"context"
	"time"

	"github.com/ppcl2025/campaign-change-tracker/internal/domain"
)

// RecordsSource entrega os registros brutos de campanhas, grupos e palavras-chave
type RecordsSource interface {
	FetchRecords(ctx context.Context, scope domain.StorageScope) (domain.RawRecords, error)
}

// Tracker é a interface do serviço de rastreamento de mudanças
type Tracker interface {
	// Capture normaliza o estado atual, compara com o snapshot anterior,
	// registra as mudanças no changelog e substitui o snapshot
	Capture(ctx context.Context, req CaptureRequest) (*CaptureResult, error)

	// CurrentSnapshot retorna o último snapshot salvo do escopo
	CurrentSnapshot(scope domain.StorageScope) (*domain.Snapshot, error)

	// ChangeLog retorna o texto completo do changelog do escopo
	ChangeLog(scope domain.StorageScope) string

	// RecentChanges retorna a janela com os períodos mais recentes
	RecentChanges(scope domain.StorageScope, maxPeriods int) string

	// RecordManualChanges adiciona ao changelog uma entrada escrita pelo operador
	RecordManualChanges(scope domain.StorageScope, entry ManualEntry) error
}

type CaptureRequest struct {
	Scope       domain.StorageScope
	Records     *domain.RawRecords
	Performance *domain.PeriodPerformance
	PeriodDate  time.Time
}

type CaptureResult struct {
	Key              string           `json:"key"`
	CaptureID        string           `json:"capture_id"`
	Baseline         bool             `json:"baseline"`
	Changes          domain.ChangeSet `json:"changes"`
	Summary          string           `json:"summary"`
	SnapshotSaved    bool             `json:"snapshot_saved"`
	ChangeLogWritten bool             `json:"changelog_written"`
}

type ManualEntry struct {
	Text        string
	PeriodDate  time.Time
	Performance *domain.PeriodPerformance
}
