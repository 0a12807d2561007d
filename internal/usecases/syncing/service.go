package syncing

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/traffic-sync-engine/infrastructure/integrator/meta"
	metadomain "github.com/vfg2006/traffic-sync-engine/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/traffic-sync-engine/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/traffic-sync-engine/infrastructure/repository"
	"github.com/vfg2006/traffic-sync-engine/internal/config"
	"github.com/vfg2006/traffic-sync-engine/internal/daterange"
	"github.com/vfg2006/traffic-sync-engine/internal/domain"
	"github.com/vfg2006/traffic-sync-engine/pkg/metrics"
)

// Limite de erros parciais gravados em sync_error, para a coluna não crescer
// sem controle em contas com muitas campanhas
const maxRecordedErrors = 5

// Service orquestra a pipeline de sincronização: info da conta, campanhas,
// conjuntos, anúncios e insights, nessa ordem. Estágios 1 e 5 são fatais;
// falhas nos estágios intermediários são coletadas e a execução continua
type Service struct {
	cfg           *config.Config
	accountRepo   repository.AccountRepository
	entityRepo    repository.EntityRepository
	factRepo      repository.FactRepository
	clientFactory metaclient.Factory
	resolver      *daterange.Resolver

	// Guarda de concorrência: no máximo uma sincronização em voo por conta
	inFlightMu sync.Mutex
	inFlight   map[string]struct{}

	// Protege a lista de erros da execução durante o fan-out dos estágios
	partialMu sync.Mutex
}

func NewService(
	cfg *config.Config,
	accountRepo repository.AccountRepository,
	entityRepo repository.EntityRepository,
	factRepo repository.FactRepository,
	clientFactory metaclient.Factory,
	resolver *daterange.Resolver,
) Syncer {
	return &Service{
		cfg:           cfg,
		accountRepo:   accountRepo,
		entityRepo:    entityRepo,
		factRepo:      factRepo,
		clientFactory: clientFactory,
		resolver:      resolver,
		inFlight:      make(map[string]struct{}),
	}
}

// RunFullSync resolve a expressão de datas e sincroniza a conta
func (s *Service) RunFullSync(ctx context.Context, accountID, dateExpression string) (*domain.SyncRun, error) {
	if accountID == "" {
		return nil, ErrAccountIDRequired
	}

	window, err := s.resolver.Resolve(dateExpression)
	if err != nil {
		return nil, err
	}

	return s.ProcessAccount(ctx, accountID, window)
}

// ProcessAccount executa a pipeline de sincronização para uma conta.
// A conta transita para "syncing" antes de qualquer chamada ao upstream e
// termina em "success" ou "failed", inclusive quando o contexto expira
func (s *Service) ProcessAccount(ctx context.Context, accountID string, window daterange.Range) (*domain.SyncRun, error) {
	if accountID == "" {
		return nil, ErrAccountIDRequired
	}

	// Janelas também chegam montadas campo a campo por chamadores externos,
	// então a validação de ordem e de span acontece aqui e não só no Resolve
	if err := daterange.Validate(window); err != nil {
		return nil, err
	}

	if !s.acquire(accountID) {
		return nil, fmt.Errorf("%w: %s", ErrSyncInProgress, accountID)
	}
	defer s.release(accountID)

	account, err := s.accountRepo.GetByID(accountID)
	if err != nil {
		return nil, err
	}

	if account == nil {
		return nil, fmt.Errorf("%w: %s", ErrAccountNotFound, accountID)
	}

	if !account.Active {
		return nil, fmt.Errorf("%w: %s", ErrAccountInactive, accountID)
	}

	if account.AccessToken == "" {
		return nil, fmt.Errorf("%w: %s", ErrMissingCredential, accountID)
	}

	run := &domain.SyncRun{
		AccountID:  account.ID,
		ExternalID: account.ExternalID,
		DateStart:  window.StartDate,
		DateEnd:    window.EndDate,
		Errors:     []string{},
		StartedAt:  time.Now(),
	}

	if err := s.accountRepo.UpdateSyncStatus(account.ID, domain.SyncStatusSyncing, nil); err != nil {
		return nil, fmt.Errorf("erro ao marcar conta como syncing: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"account_id": account.ID,
		"date_start": window.StartDate,
		"date_end":   window.EndDate,
	}).Info("Iniciando sincronização da conta")

	// Timeout por conta: uma conta lenta não pode segurar a frota inteira
	timeout := time.Duration(s.cfg.InsightSync.AccountTimeoutSeconds) * time.Second
	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client := s.clientFactory.ForAccount(account.ExternalID, account.AccessToken)

	fatalErr := s.runPipeline(runCtx, client, account, window, run)

	run.CompletedAt = time.Now()
	run.Success = fatalErr == nil

	s.finish(run, fatalErr)

	return run, nil
}

// runPipeline executa os cinco estágios em ordem. Retorna o erro fatal que
// interrompeu a pipeline, ou nil quando ela chegou ao fim
func (s *Service) runPipeline(
	ctx context.Context,
	client metaclient.Client,
	account *domain.ClientAccount,
	window daterange.Range,
	run *domain.SyncRun,
) error {
	// Estágio 1 (fatal): metadados da conta. Também valida a credencial
	// antes de qualquer trabalho pesado
	info, err := client.GetAccountInfo(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrAccountInfoStage, err)
	}

	if err := s.accountRepo.UpdateUpstreamInfo(account.ID, info.Name, info.Currency, info.Timezone); err != nil {
		return fmt.Errorf("erro ao atualizar metadados da conta: %w", err)
	}

	// Estágios 2 a 4 (não fatais): espelho estrutural de campanhas,
	// conjuntos e anúncios
	campaigns := s.syncCampaigns(ctx, client, account.ID, run)
	adSets := s.syncAdSets(ctx, client, account.ID, campaigns, run)
	s.syncAds(ctx, client, account.ID, adSets, run)

	// Estágio 5 (fatal): a carga de fatos é a razão de existir da pipeline
	if err := s.syncInsights(ctx, client, account.ID, window, run); err != nil {
		return fmt.Errorf("%w: %v", ErrInsightsStage, err)
	}

	return nil
}

func (s *Service) syncCampaigns(ctx context.Context, client metaclient.Client, accountID string, run *domain.SyncRun) []*domain.Campaign {
	raw, err := client.GetCampaigns(ctx)
	if err != nil {
		s.recordPartial(run, "campaigns", fmt.Sprintf("campanhas: %v", err))
		return nil
	}

	campaigns := meta.TransformCampaigns(accountID, raw)
	if len(campaigns) == 0 {
		return nil
	}

	if err := s.entityRepo.SaveOrUpdateCampaigns(campaigns); err != nil {
		s.recordPartial(run, "campaigns", fmt.Sprintf("gravação de campanhas: %v", err))
		return campaigns
	}

	run.Campaigns = len(campaigns)
	return campaigns
}

// syncAdSets busca os conjuntos de cada campanha com fan-out limitado.
// Cada campanha que falha gera exatamente uma entrada de erro; as demais
// seguem normalmente
func (s *Service) syncAdSets(ctx context.Context, client metaclient.Client, accountID string, campaigns []*domain.Campaign, run *domain.SyncRun) []*domain.AdSet {
	if len(campaigns) == 0 {
		return nil
	}

	var (
		mu     sync.Mutex
		all    []*domain.AdSet
		wg     sync.WaitGroup
		tokens = s.stageTokens()
	)

	for _, campaign := range campaigns {
		wg.Add(1)
		tokens <- struct{}{}

		go func(campaign *domain.Campaign) {
			defer wg.Done()
			defer func() { <-tokens }()

			raw, err := client.GetAdSets(ctx, campaign.ID)
			if err != nil {
				s.recordPartial(run, "ad_sets", fmt.Sprintf("conjuntos da campanha %s: %v", campaign.ID, err))
				return
			}

			adSets := meta.TransformAdSets(accountID, raw)

			mu.Lock()
			all = append(all, adSets...)
			mu.Unlock()
		}(campaign)
	}

	wg.Wait()

	if len(all) == 0 {
		return nil
	}

	if err := s.entityRepo.SaveOrUpdateAdSets(all); err != nil {
		s.recordPartial(run, "ad_sets", fmt.Sprintf("gravação de conjuntos: %v", err))
		return all
	}

	run.AdSets = len(all)
	return all
}

func (s *Service) syncAds(ctx context.Context, client metaclient.Client, accountID string, adSets []*domain.AdSet, run *domain.SyncRun) {
	if len(adSets) == 0 {
		return
	}

	var (
		mu     sync.Mutex
		all    []*domain.Ad
		wg     sync.WaitGroup
		tokens = s.stageTokens()
	)

	for _, adSet := range adSets {
		wg.Add(1)
		tokens <- struct{}{}

		go func(adSet *domain.AdSet) {
			defer wg.Done()
			defer func() { <-tokens }()

			raw, err := client.GetAds(ctx, adSet.ID)
			if err != nil {
				s.recordPartial(run, "ads", fmt.Sprintf("anúncios do conjunto %s: %v", adSet.ID, err))
				return
			}

			ads := meta.TransformAds(accountID, raw)

			mu.Lock()
			all = append(all, ads...)
			mu.Unlock()
		}(adSet)
	}

	wg.Wait()

	if len(all) == 0 {
		return
	}

	if err := s.entityRepo.SaveOrUpdateAds(all); err != nil {
		s.recordPartial(run, "ads", fmt.Sprintf("gravação de anúncios: %v", err))
		return
	}

	run.Ads = len(all)
}

func (s *Service) syncInsights(ctx context.Context, client metaclient.Client, accountID string, window daterange.Range, run *domain.SyncRun) error {
	raw, err := client.GetAllInsights(ctx, metadomain.InsightFilters{
		DateStart: window.StartDate,
		DateEnd:   window.EndDate,
		Level:     "ad",
	})
	if err != nil {
		return err
	}

	rows := meta.FilterValidInsights(meta.TransformInsights(raw))
	if len(rows) == 0 {
		logrus.WithFields(logrus.Fields{
			"account_id": accountID,
			"date_start": window.StartDate,
			"date_end":   window.EndDate,
		}).Info("Nenhuma linha de insight para a janela solicitada")
		return nil
	}

	if err := s.factRepo.SaveOrUpdateBatch(rows); err != nil {
		return err
	}

	run.FactRows = len(rows)
	return nil
}

// finish registra a transição terminal da conta e as métricas da execução.
// A escrita de status não depende do contexto da execução, então acontece
// mesmo quando a pipeline foi interrompida por timeout
func (s *Service) finish(run *domain.SyncRun, fatalErr error) {
	metrics.AccountSyncDuration.Observe(run.CompletedAt.Sub(run.StartedAt).Seconds())

	if fatalErr == nil {
		metrics.AccountSyncs.WithLabelValues("success").Inc()

		if err := s.accountRepo.UpdateSyncStatus(run.AccountID, domain.SyncStatusSuccess, nil); err != nil {
			logrus.WithError(err).WithField("account_id", run.AccountID).Error("Erro ao marcar conta como success")
		}

		logrus.WithFields(logrus.Fields{
			"account_id":       run.AccountID,
			"campaigns":        run.Campaigns,
			"ad_sets":          run.AdSets,
			"ads":              run.Ads,
			"fact_rows":        run.FactRows,
			"partial_failures": len(run.Errors),
		}).Info("Sincronização da conta concluída")
		return
	}

	run.Errors = append(run.Errors, fatalErr.Error())
	metrics.AccountSyncs.WithLabelValues("failed").Inc()

	syncError := summarizeErrors(run.Errors)
	if err := s.accountRepo.UpdateSyncStatus(run.AccountID, domain.SyncStatusFailed, &syncError); err != nil {
		logrus.WithError(err).WithField("account_id", run.AccountID).Error("Erro ao marcar conta como failed")
	}

	logrus.WithFields(logrus.Fields{
		"account_id": run.AccountID,
		"error":      fatalErr.Error(),
	}).Error("Sincronização da conta falhou")
}

// RunSyncForAllAccounts sincroniza a frota de contas ativas com a janela de
// lookback configurada, com concorrência limitada entre contas. O rate limit
// por credencial garante que contas concorrentes não disputam o mesmo limite
func (s *Service) RunSyncForAllAccounts(ctx context.Context) (*domain.BatchSummary, error) {
	accounts, err := s.accountRepo.ListActive()
	if err != nil {
		return nil, fmt.Errorf("erro ao listar contas ativas: %w", err)
	}

	lookback := s.cfg.InsightSync.LookbackDays
	if lookback < 1 {
		lookback = 7
	}
	window := s.resolver.Lookback(lookback)

	summary := &domain.BatchSummary{
		TotalAccounts:  len(accounts),
		AccountResults: make([]*domain.SyncRun, 0, len(accounts)),
		StartedAt:      time.Now(),
	}

	if len(accounts) == 0 {
		summary.CompletedAt = time.Now()
		return summary, nil
	}

	logrus.WithFields(logrus.Fields{
		"accounts":   len(accounts),
		"date_start": window.StartDate,
		"date_end":   window.EndDate,
	}).Info("Iniciando sincronização da frota")

	concurrency := s.cfg.InsightSync.MaxConcurrentAccounts
	if concurrency < 1 {
		concurrency = 1
	}

	var (
		mu     sync.Mutex
		wg     sync.WaitGroup
		tokens = make(chan struct{}, concurrency)
	)

	for _, account := range accounts {
		wg.Add(1)
		tokens <- struct{}{}

		go func(accountID string) {
			defer wg.Done()
			defer func() { <-tokens }()

			run, err := s.ProcessAccount(ctx, accountID, window)

			mu.Lock()
			defer mu.Unlock()

			switch {
			case err != nil:
				// Conta pulada (sync em andamento, inativa, sem credencial):
				// não conta como falha da frota
				summary.SkippedCount++
				metrics.AccountSyncs.WithLabelValues("skipped").Inc()
				logrus.WithError(err).WithField("account_id", accountID).Warn("Conta pulada na sincronização da frota")
			case run.Success:
				summary.SuccessCount++
				summary.TotalFactRows += run.FactRows
				summary.AccountResults = append(summary.AccountResults, run)
			default:
				summary.FailedCount++
				summary.AccountResults = append(summary.AccountResults, run)
			}
		}(account.ID)
	}

	wg.Wait()
	summary.CompletedAt = time.Now()

	logrus.WithFields(logrus.Fields{
		"accounts":  summary.TotalAccounts,
		"success":   summary.SuccessCount,
		"failed":    summary.FailedCount,
		"skipped":   summary.SkippedCount,
		"fact_rows": summary.TotalFactRows,
	}).Info("Sincronização da frota concluída")

	return summary, nil
}

func (s *Service) stageTokens() chan struct{} {
	workers := s.cfg.InsightSync.StageWorkers
	if workers < 1 {
		workers = 1
	}

	return make(chan struct{}, workers)
}

func (s *Service) recordPartial(run *domain.SyncRun, stage, message string) {
	metrics.PartialFailures.WithLabelValues(stage).Inc()

	logrus.WithFields(logrus.Fields{
		"account_id": run.AccountID,
		"stage":      stage,
	}).Warn(message)

	s.partialMu.Lock()
	defer s.partialMu.Unlock()
	run.Errors = append(run.Errors, message)
}

func (s *Service) acquire(accountID string) bool {
	s.inFlightMu.Lock()
	defer s.inFlightMu.Unlock()

	if _, busy := s.inFlight[accountID]; busy {
		return false
	}

	s.inFlight[accountID] = struct{}{}
	return true
}

func (s *Service) release(accountID string) {
	s.inFlightMu.Lock()
	defer s.inFlightMu.Unlock()
	delete(s.inFlight, accountID)
}

// summarizeErrors compacta a lista de erros da execução para caber na coluna
// sync_error, preservando os primeiros e o total
func summarizeErrors(errors []string) string {
	if len(errors) <= maxRecordedErrors {
		return strings.Join(errors, "; ")
	}

	head := strings.Join(errors[:maxRecordedErrors], "; ")
	return fmt.Sprintf("%s; (+%d erros)", head, len(errors)-maxRecordedErrors)
}
