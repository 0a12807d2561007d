package handler

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vfg2006/traffic-sync-engine/infrastructure/repository"
	"github.com/vfg2006/traffic-sync-engine/internal/api/handler/router"
	"github.com/vfg2006/traffic-sync-engine/internal/daterange"
	"github.com/vfg2006/traffic-sync-engine/internal/scheduler"
	"github.com/vfg2006/traffic-sync-engine/internal/usecases/syncing"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Metrics() []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: promhttp.Handler(),
		},
	}
}

func Accounts(repo repository.AccountRepository) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/accounts",
			Method:  http.MethodGet,
			Handler: ListAccounts(repo),
		},
		{
			Path:    "/v1/accounts",
			Method:  http.MethodPost,
			Handler: CreateAccount(repo),
		},
		{
			Path:    "/v1/accounts/:id",
			Method:  http.MethodGet,
			Handler: GetAccount(repo),
		},
		{
			Path:    "/v1/accounts/:id",
			Method:  http.MethodPut,
			Handler: UpdateAccount(repo),
		},
	}
}

func Sync(syncer syncing.Syncer, syncService *scheduler.InsightSyncService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/accounts/:id/sync",
			Method:  http.MethodPost,
			Handler: TriggerAccountSync(syncer),
		},
		{
			Path:    "/v1/sync/run",
			Method:  http.MethodPost,
			Handler: TriggerFleetSync(syncer),
		},
		{
			Path:    "/v1/sync/status",
			Method:  http.MethodGet,
			Handler: GetSyncStatus(syncService),
		},
	}
}

func Facts(repo repository.FactRepository, resolver *daterange.Resolver) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/accounts/:id/facts",
			Method:  http.MethodGet,
			Handler: GetAccountFacts(repo, resolver),
		},
	}
}
