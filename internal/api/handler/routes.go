package handler

import (
	"net/http"

	"github.com/ppcl2025/campaign-change-tracker/internal/api/handler/router"
	"github.com/ppcl2025/campaign-change-tracker/internal/prompt"
	"github.com/ppcl2025/campaign-change-tracker/internal/usecases/tracking"
	"github.com/ppcl2025/campaign-change-tracker/pkg/middleware"
)

func Healthcheck(storage Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(storage),
		},
	}
}

func Snapshots(tracker tracking.Tracker) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/accounts/:id/snapshots",
			Method:      http.MethodPost,
			Handler:     CaptureSnapshot(tracker),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrOperator()},
		},
		{
			Path:        "/v1/accounts/:id/snapshots",
			Method:      http.MethodGet,
			Handler:     GetCurrentSnapshot(tracker),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func ChangeLog(tracker tracking.Tracker) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/accounts/:id/changelog",
			Method:      http.MethodGet,
			Handler:     GetChangeLog(tracker),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/accounts/:id/changelog/recent",
			Method:      http.MethodGet,
			Handler:     GetRecentChanges(tracker),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/accounts/:id/changelog",
			Method:      http.MethodPost,
			Handler:     RecordManualChanges(tracker),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrOperator()},
		},
	}
}

func Prompts(builder *prompt.Builder, cache *prompt.Cache, tracker tracking.Tracker) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/accounts/:id/prompt",
			Method:      http.MethodGet,
			Handler:     GetPrompt(builder, tracker),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/prompts/cache/invalidate",
			Method:      http.MethodPost,
			Handler:     InvalidatePromptCache(cache),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
