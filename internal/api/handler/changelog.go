package handler

import (
	"net/http"
	"strings"

	"github.com/ppcl2025/campaign-change-tracker/internal/domain"
	"github.com/ppcl2025/campaign-change-tracker/internal/usecases/tracking"
	"github.com/ppcl2025/campaign-change-tracker/pkg/apiErrors"
	"github.com/ppcl2025/campaign-change-tracker/pkg/log"
	"github.com/ppcl2025/campaign-change-tracker/pkg/utils"
	"github.com/spf13/cast"
)

type changeLogResponse struct {
	Key     string `json:"key"`
	Content string `json:"content"`
}

type manualEntryRequest struct {
	Text        string                    `json:"text"`
	PeriodDate  string                    `json:"period_date"`
	Performance *domain.PeriodPerformance `json:"performance"`
}

// GetChangeLog devolve o texto completo do changelog do escopo
func GetChangeLog(tracker tracking.Tracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		scope := scopeFromRequest(r)
		if !authorizeScope(w, r, scope) {
			return
		}

		writeJSON(w, http.StatusOK, changeLogResponse{
			Key:     domain.DeriveStorageKey(scope),
			Content: tracker.ChangeLog(scope),
		})
	})
}

// GetRecentChanges devolve a janela dos últimos períodos; max_periods é opcional
func GetRecentChanges(tracker tracking.Tracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		scope := scopeFromRequest(r)
		if !authorizeScope(w, r, scope) {
			return
		}

		maxPeriods := 0
		if raw := r.URL.Query().Get("max_periods"); raw != "" {
			parsed, err := cast.ToIntE(raw)
			if err != nil || parsed < 0 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "max_periods deve ser um inteiro positivo", nil)
				return
			}
			maxPeriods = parsed
		}

		writeJSON(w, http.StatusOK, changeLogResponse{
			Key:     domain.DeriveStorageKey(scope),
			Content: tracker.RecentChanges(scope, maxPeriods),
		})
	})
}

// RecordManualChanges grava no changelog mudanças feitas fora da captura
func RecordManualChanges(tracker tracking.Tracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		scope := scopeFromRequest(r)
		if !authorizeScope(w, r, scope) {
			return
		}

		var body manualEntryRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", err.Error())
			return
		}
		if strings.TrimSpace(body.Text) == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "O campo text é obrigatório", nil)
			return
		}

		periodDate, err := utils.ParseDate(body.PeriodDate)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "period_date deve estar no formato AAAA-MM-DD", nil)
			return
		}

		err = tracker.RecordManualChanges(scope, tracking.ManualEntry{
			Text:        body.Text,
			PeriodDate:  periodDate,
			Performance: body.Performance,
		})
		if err != nil {
			log.ForContext(r.Context()).WithError(err).Error("Erro ao gravar mudanças manuais")
			writeTrackingError(w, err, "Erro ao gravar mudanças no changelog")
			return
		}

		writeJSON(w, http.StatusCreated, map[string]any{
			"key":     domain.DeriveStorageKey(scope),
			"message": "Mudanças registradas no changelog",
		})
	})
}
