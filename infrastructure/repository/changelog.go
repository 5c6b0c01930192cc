package repository

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ppcl2025/campaign-change-tracker/infrastructure/storage"
	"github.com/ppcl2025/campaign-change-tracker/internal/domain"
	"github.com/sirupsen/logrus"
)

const (
	DefaultRecentPeriods = 3

	periodDateLayout = "2006-01-02"
	timestampLayout  = "2006-01-02 15:04:05"
	periodPrefix     = "PERIOD:"

	WindowStartMarker = "=== PREVIOUS CHANGES & CONTEXT ==="
	WindowEndMarker   = "=== END OF PREVIOUS CHANGES ==="
)

// PeriodSeparator delimita os blocos de período no changelog
var PeriodSeparator = strings.Repeat("=", 80)

// ChangeLogRepository mantém um texto por chave onde novos períodos são
// inseridos no topo. Entradas nunca são editadas nem removidas.
type ChangeLogRepository interface {
	AppendEntry(key, text string, periodDate time.Time) bool
	AppendEntryWithPerformance(key, text string, periodDate time.Time, performance *domain.PeriodPerformance) bool
	ReadAll(key string) string
	ReadRecentWindow(key string, maxPeriods int) string
}

type changeLogRepository struct {
	store storage.Store
	now   func() time.Time
}

func NewChangeLogRepository(store storage.Store) ChangeLogRepository {
	return &changeLogRepository{
		store: store,
		now:   time.Now,
	}
}

func (r *changeLogRepository) AppendEntry(key, text string, periodDate time.Time) bool {
	return r.AppendEntryWithPerformance(key, text, periodDate, nil)
}

// AppendEntryWithPerformance lê o texto atual, monta o novo bloco e grava tudo de volta.
// Leitura e escrita não são atômicas entre si: o último a escrever vence.
func (r *changeLogRepository) AppendEntryWithPerformance(key, text string, periodDate time.Time, performance *domain.PeriodPerformance) bool {
	existing, err := r.read(key)
	if err != nil {
		logrus.WithField("storage_key", key).WithError(err).Error("Erro ao ler changelog existente")
		return false
	}

	entry := buildEntry(text, periodDate, r.now(), performance)

	if err := r.store.Put(key, []byte(entry+existing)); err != nil {
		logrus.WithField("storage_key", key).WithError(err).Error("Erro ao gravar changelog")
		return false
	}

	logrus.WithFields(logrus.Fields{
		"storage_key": key,
		"period":      periodDate.Format(periodDateLayout),
	}).Debug("Entrada adicionada ao changelog")

	return true
}

func (r *changeLogRepository) ReadAll(key string) string {
	content, err := r.read(key)
	if err != nil {
		logrus.WithField("storage_key", key).WithError(err).Warn("Erro ao ler changelog")
		return ""
	}
	return content
}

// ReadRecentWindow devolve os maxPeriods blocos mais recentes entre os marcadores
// de contexto anterior. Sem nenhum período devolve texto vazio.
func (r *changeLogRepository) ReadRecentWindow(key string, maxPeriods int) string {
	if maxPeriods <= 0 {
		maxPeriods = DefaultRecentPeriods
	}

	periods := SplitPeriods(r.ReadAll(key))
	if len(periods) == 0 {
		return ""
	}
	if len(periods) > maxPeriods {
		periods = periods[:maxPeriods]
	}

	var sb strings.Builder
	sb.WriteString(WindowStartMarker)
	sb.WriteString("\n\n")
	sb.WriteString(strings.Join(periods, "\n\n"))
	sb.WriteString("\n\n")
	sb.WriteString(WindowEndMarker)
	sb.WriteString("\n")

	return sb.String()
}

func (r *changeLogRepository) read(key string) (string, error) {
	content, err := r.store.Get(key)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return "", nil
		}
		return "", err
	}
	return string(content), nil
}

func buildEntry(text string, periodDate, createdAt time.Time, performance *domain.PeriodPerformance) string {
	lines := []string{
		PeriodSeparator,
		periodPrefix + " " + periodDate.Format(periodDateLayout),
		PeriodSeparator,
	}

	if performance != nil {
		lines = append(lines, "", "Performance Summary:")
		if performance.Leads != nil {
			lines = append(lines, fmt.Sprintf("  - Leads: %d", *performance.Leads))
		}
		if performance.CPA != nil {
			lines = append(lines, fmt.Sprintf("  - CPA: $%.2f", *performance.CPA))
		}
		if performance.Spend != nil {
			lines = append(lines, fmt.Sprintf("  - Spend: $%.2f", *performance.Spend))
		}
		if performance.ConversionRate != nil {
			lines = append(lines, fmt.Sprintf("  - Conversion Rate: %.2f%%", *performance.ConversionRate))
		}
	}

	if strings.TrimSpace(text) != "" {
		lines = append(lines, "", fmt.Sprintf("Changes Made (%s):", createdAt.Format(timestampLayout)))
		for _, line := range strings.Split(text, "\n") {
			line = stripBullet(line)
			if line != "" {
				lines = append(lines, "  • "+line)
			}
		}
	}

	// bloco termina com uma linha em branco antes do período anterior
	return strings.Join(lines, "\n") + "\n\n"
}

// stripBullet remove só o marcador "•" já presente; o restante do texto
// do operador é mantido
func stripBullet(line string) string {
	line = strings.TrimSpace(line)
	return strings.TrimSpace(strings.TrimPrefix(line, "•"))
}

// SplitPeriods separa o texto do changelog em blocos de período, do mais recente
// ao mais antigo. Um bloco começa em um separador seguido da linha "PERIOD:".
// Texto anterior ao primeiro bloco é ignorado.
func SplitPeriods(content string) []string {
	lines := strings.Split(content, "\n")

	var periods []string
	start := -1
	for i := 0; i < len(lines); i++ {
		isStart := lines[i] == PeriodSeparator &&
			i+1 < len(lines) &&
			strings.HasPrefix(lines[i+1], periodPrefix)
		if !isStart {
			continue
		}
		if start >= 0 {
			periods = append(periods, strings.TrimRight(strings.Join(lines[start:i], "\n"), "\n "))
		}
		start = i
	}
	if start >= 0 {
		periods = append(periods, strings.TrimRight(strings.Join(lines[start:], "\n"), "\n "))
	}

	return periods
}
