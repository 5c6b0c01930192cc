package tracking

import (
	"errors"
	"fmt"
)

// Erros específicos do rastreamento de mudanças
var (
	// Erros de validação
	ErrScopeRequired    = errors.New("account id or account name is required")
	ErrEmptyManualEntry = errors.New("manual change entry is empty")
	ErrSnapshotNotFound = errors.New("snapshot not found")

	// Erros de serviços externos
	ErrRecordsSourceUnavailable = errors.New("ads records source is not configured")
	ErrFetchRecords             = errors.New("error fetching records from ads source")

	// Erros de armazenamento
	ErrChangeLogWrite = errors.New("error writing changelog entry")
)

// TrackingError é um erro com contexto adicional para o rastreamento
type TrackingError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Key     string // Chave de armazenamento envolvida (quando aplicável)
	Details string // Detalhes adicionais
}

func (e *TrackingError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *TrackingError) Unwrap() error {
	return e.Err
}

func NewTrackingError(err error, code string, key string, details string) *TrackingError {
	return &TrackingError{
		Err:     err,
		Code:    code,
		Key:     key,
		Details: details,
	}
}
