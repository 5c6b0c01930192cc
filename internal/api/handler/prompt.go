package handler

import (
	"net/http"
	"strings"

	"github.com/ppcl2025/campaign-change-tracker/internal/domain"
	"github.com/ppcl2025/campaign-change-tracker/internal/prompt"
	"github.com/ppcl2025/campaign-change-tracker/internal/usecases/tracking"
	"github.com/ppcl2025/campaign-change-tracker/pkg/apiErrors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
)

type promptResponse struct {
	Page    string   `json:"page"`
	Modules []string `json:"modules"`
	Key     string   `json:"key"`
	Prompt  string   `json:"prompt"`
}

type invalidateCacheRequest struct {
	Module string `json:"module"`
}

// GetPrompt monta o prompt da página com as mudanças recentes do escopo.
// Parâmetros: page, question, include_keyword_planner, modules (separados por vírgula).
func GetPrompt(builder *prompt.Builder, tracker tracking.Tracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		scope := scopeFromRequest(r)
		if !authorizeScope(w, r, scope) {
			return
		}

		query := r.URL.Query()
		page := query.Get("page")
		if page == "" {
			page = prompt.PageFull
		}

		opts := prompt.Options{
			Question:              query.Get("question"),
			IncludeKeywordPlanner: cast.ToBool(query.Get("include_keyword_planner")),
		}
		for _, module := range strings.Split(query.Get("modules"), ",") {
			if module = strings.TrimSpace(module); module != "" {
				opts.AdditionalModules = append(opts.AdditionalModules, module)
			}
		}

		text := builder.Compose(page, opts, tracker.RecentChanges(scope, 0))
		if text == "" {
			apiErrors.WriteError(w, apiErrors.ErrPromptNotFound, "Nenhum módulo de prompt encontrado para a página", map[string]any{"page": page})
			return
		}

		writeJSON(w, http.StatusOK, promptResponse{
			Page:    page,
			Modules: builder.Modules(page, opts),
			Key:     domain.DeriveStorageKey(scope),
			Prompt:  text,
		})
	})
}

// InvalidatePromptCache descarta um módulo do cache ou todos quando nenhum é informado
func InvalidatePromptCache(cache *prompt.Cache) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body invalidateCacheRequest
		if err := decodeOptionalBody(r, &body); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", err.Error())
			return
		}

		if body.Module == "" {
			cache.InvalidateAll()
			logrus.Info("Cache de módulos de prompt limpo")
		} else {
			cache.Invalidate(body.Module)
			logrus.WithField("module", body.Module).Info("Módulo de prompt removido do cache")
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"message": "Cache invalidado",
			"module":  body.Module,
		})
	})
}
