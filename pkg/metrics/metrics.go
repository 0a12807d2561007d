package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// AccountSyncs conta execuções de sincronização por desfecho (success/failed/skipped)
	AccountSyncs = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sync_account_runs_total",
		Help: "Total de sincronizações de conta executadas, por desfecho",
	}, []string{"outcome"})

	// AccountSyncDuration mede a duração de uma sincronização completa de conta
	AccountSyncDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "sync_account_duration_seconds",
		Help:    "Duração da sincronização de uma conta em segundos",
		Buckets: []float64{1, 5, 15, 30, 60, 120, 300, 600},
	})

	// EntitiesUpserted conta registros gravados no warehouse por tipo de entidade
	EntitiesUpserted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sync_entities_upserted_total",
		Help: "Total de registros gravados no warehouse, por tipo de entidade",
	}, []string{"entity"})

	// PartialFailures conta falhas não fatais de listagem toleradas durante a pipeline
	PartialFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sync_partial_failures_total",
		Help: "Total de falhas parciais de listagem toleradas, por estágio",
	}, []string{"stage"})

	// UnrecognizedActionTypes conta action_types fora do conjunto mapeado.
	// Crescimento contínuo indica vocabulário novo da API upstream
	UnrecognizedActionTypes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sync_unrecognized_action_types_total",
		Help: "Total de action_types não reconhecidos vistos na transformação",
	}, []string{"action_type"})

	// UpstreamPages conta páginas buscadas na API upstream por recurso
	UpstreamPages = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "sync_upstream_pages_total",
		Help: "Total de páginas buscadas na API upstream, por recurso",
	}, []string{"resource"})
)
