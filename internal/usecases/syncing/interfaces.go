package syncing

import (
	"context"

	"github.com/vfg2006/traffic-sync-engine/internal/daterange"
	"github.com/vfg2006/traffic-sync-engine/internal/domain"
)

// Syncer define a interface do orquestrador de sincronização
type Syncer interface {
	// ProcessAccount executa a pipeline completa de sincronização para uma
	// conta e uma janela de datas já resolvida
	ProcessAccount(ctx context.Context, accountID string, window daterange.Range) (*domain.SyncRun, error)

	// RunFullSync resolve a expressão de datas (preset ou intervalo custom)
	// e sincroniza uma conta específica
	RunFullSync(ctx context.Context, accountID, dateExpression string) (*domain.SyncRun, error)

	// RunSyncForAllAccounts sincroniza toda a frota de contas ativas com a
	// janela de lookback padrão
	RunSyncForAllAccounts(ctx context.Context) (*domain.BatchSummary, error)
}
