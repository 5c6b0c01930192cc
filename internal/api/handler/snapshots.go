package handler

import (
	"net/http"

	"github.com/ppcl2025/campaign-change-tracker/internal/domain"
	"github.com/ppcl2025/campaign-change-tracker/internal/usecases/tracking"
	"github.com/ppcl2025/campaign-change-tracker/pkg/apiErrors"
	"github.com/ppcl2025/campaign-change-tracker/pkg/log"
	"github.com/ppcl2025/campaign-change-tracker/pkg/utils"
	"github.com/sirupsen/logrus"
)

// captureRequest é o corpo opcional da captura. Sem records os registros
// são buscados na integração de anúncios.
type captureRequest struct {
	Records     *domain.RawRecords        `json:"records"`
	Performance *domain.PeriodPerformance `json:"performance"`
	PeriodDate  string                    `json:"period_date"`
}

// CaptureSnapshot executa uma captura do escopo e devolve as mudanças detectadas
func CaptureSnapshot(tracker tracking.Tracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		scope := scopeFromRequest(r)
		if !authorizeScope(w, r, scope) {
			return
		}

		var body captureRequest
		if err := decodeOptionalBody(r, &body); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", err.Error())
			return
		}

		periodDate, err := utils.ParseDate(body.PeriodDate)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "period_date deve estar no formato AAAA-MM-DD", nil)
			return
		}

		result, err := tracker.Capture(r.Context(), tracking.CaptureRequest{
			Scope:       scope,
			Records:     body.Records,
			Performance: body.Performance,
			PeriodDate:  periodDate,
		})
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao capturar snapshot")
			writeTrackingError(w, err, "Erro ao capturar snapshot")
			return
		}

		writeJSON(w, http.StatusOK, result)
	})
}

func GetCurrentSnapshot(tracker tracking.Tracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		scope := scopeFromRequest(r)
		if !authorizeScope(w, r, scope) {
			return
		}

		snapshot, err := tracker.CurrentSnapshot(scope)
		if err != nil {
			logrus.WithField("account_id", scope.AccountID).WithError(err).Debug("Snapshot não encontrado")
			writeTrackingError(w, err, "Erro ao carregar snapshot")
			return
		}

		writeJSON(w, http.StatusOK, snapshot)
	})
}
