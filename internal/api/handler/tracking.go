package handler

import (
	"errors"
	"io"
	"net/http"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/julienschmidt/httprouter"
	"github.com/ppcl2025/campaign-change-tracker/internal/domain"
	"github.com/ppcl2025/campaign-change-tracker/internal/usecases/tracking"
	"github.com/ppcl2025/campaign-change-tracker/pkg/apiErrors"
	"github.com/ppcl2025/campaign-change-tracker/pkg/middleware"
	"github.com/sirupsen/logrus"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// scopeFromRequest monta o escopo a partir do :id da rota e dos parâmetros
// campaign_id, account_name e campaign_name
func scopeFromRequest(r *http.Request) domain.StorageScope {
	query := r.URL.Query()
	return domain.StorageScope{
		AccountID:   httprouter.ParamsFromContext(r.Context()).ByName("id"),
		ScopeID:     strings.TrimSpace(query.Get("campaign_id")),
		AccountName: strings.TrimSpace(query.Get("account_name")),
		ScopeName:   strings.TrimSpace(query.Get("campaign_name")),
	}
}

// authorizeScope recusa tokens restritos a outras contas. Como a chave de
// armazenamento prefere os nomes aos IDs, tokens com lista de contas só
// podem usar escopos por ID.
func authorizeScope(w http.ResponseWriter, r *http.Request, scope domain.StorageScope) bool {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok || !claims.CanAccessAccount(scope.AccountID) {
		apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Token sem acesso a esta conta", nil)
		return false
	}
	if len(claims.Accounts) > 0 && (scope.AccountName != "" || scope.ScopeName != "") {
		apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Token restrito não pode usar escopo por nome", map[string]string{
			"account_name":  scope.AccountName,
			"campaign_name": scope.ScopeName,
		})
		return false
	}
	return true
}

// decodeOptionalBody aceita corpo vazio sem erro
func decodeOptionalBody(r *http.Request, v any) error {
	if r.Body == nil {
		return nil
	}
	err := json.NewDecoder(r.Body).Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logrus.WithError(err).Error("Erro ao codificar resposta")
	}
}

func writeTrackingError(w http.ResponseWriter, err error, fallback string) {
	var trackingErr *tracking.TrackingError
	if errors.As(err, &trackingErr) {
		var details any
		if trackingErr.Key != "" {
			details = map[string]any{"storage_key": trackingErr.Key}
		}
		apiErrors.WriteError(w, trackingErr.Code, trackingErr.Error(), details)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, fallback, nil)
}
