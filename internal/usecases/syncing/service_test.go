package syncing

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metadomain "github.com/vfg2006/traffic-sync-engine/infrastructure/integrator/meta/domain"
	clientmocks "github.com/vfg2006/traffic-sync-engine/infrastructure/integrator/meta/metaclient/mocks"
	"github.com/vfg2006/traffic-sync-engine/infrastructure/repository/mocks"
	"github.com/vfg2006/traffic-sync-engine/internal/config"
	"github.com/vfg2006/traffic-sync-engine/internal/daterange"
	"github.com/vfg2006/traffic-sync-engine/internal/domain"
	"go.uber.org/mock/gomock"
)

func newTestService(
	accountRepo *mocks.MockAccountRepository,
	entityRepo *mocks.MockEntityRepository,
	factRepo *mocks.MockFactRepository,
	factory *clientmocks.MockFactory,
) *Service {
	cfg := &config.Config{
		InsightSync: config.InsightSync{
			LookbackDays:          7,
			MaxConcurrentAccounts: 2,
			AccountTimeoutSeconds: 30,
			StageWorkers:          2,
		},
	}

	// Relógio fixo: quarta-feira, 15 de janeiro de 2025
	resolver := daterange.NewResolver(time.UTC).WithClock(func() time.Time {
		return time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)
	})

	return &Service{
		cfg:           cfg,
		accountRepo:   accountRepo,
		entityRepo:    entityRepo,
		factRepo:      factRepo,
		clientFactory: factory,
		resolver:      resolver,
		inFlight:      make(map[string]struct{}),
	}
}

func activeAccount(id string) *domain.ClientAccount {
	return &domain.ClientAccount{
		ID:          id,
		Name:        "Loja Teste",
		ExternalID:  "act_" + id,
		AccessToken: "token-" + id,
		Active:      true,
		SyncStatus:  domain.SyncStatusPending,
	}
}

func testWindow() daterange.Range {
	return daterange.Range{StartDate: "2025-01-08", EndDate: "2025-01-14"}
}

func TestProcessAccount_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	accountRepo := mocks.NewMockAccountRepository(ctrl)
	entityRepo := mocks.NewMockEntityRepository(ctrl)
	factRepo := mocks.NewMockFactRepository(ctrl)
	factory := clientmocks.NewMockFactory(ctrl)
	client := clientmocks.NewMockClient(ctrl)

	service := newTestService(accountRepo, entityRepo, factRepo, factory)
	account := activeAccount("acc1")

	accountRepo.EXPECT().GetByID("acc1").Return(account, nil)
	accountRepo.EXPECT().UpdateSyncStatus("acc1", domain.SyncStatusSyncing, nil).Return(nil)
	factory.EXPECT().ForAccount("act_acc1", "token-acc1").Return(client)

	client.EXPECT().GetAccountInfo(gomock.Any()).Return(&metadomain.AccountInfo{
		ID:       "act_acc1",
		Name:     "Loja Teste",
		Currency: "BRL",
		Timezone: "America/Sao_Paulo",
	}, nil)
	accountRepo.EXPECT().UpdateUpstreamInfo("acc1", "Loja Teste", "BRL", "America/Sao_Paulo").Return(nil)

	client.EXPECT().GetCampaigns(gomock.Any()).Return([]metadomain.RawCampaign{
		{ID: "c1", Name: "Campanha 1", Status: "ACTIVE", Objective: "OUTCOME_SALES"},
		{ID: "c2", Name: "Campanha 2", Status: "PAUSED", Objective: "OUTCOME_TRAFFIC"},
	}, nil)
	entityRepo.EXPECT().SaveOrUpdateCampaigns(gomock.Len(2)).Return(nil)

	client.EXPECT().GetAdSets(gomock.Any(), "c1").Return([]metadomain.RawAdSet{
		{ID: "s1", CampaignID: "c1", Name: "Conjunto 1", Status: "ACTIVE"},
	}, nil)
	client.EXPECT().GetAdSets(gomock.Any(), "c2").Return([]metadomain.RawAdSet{
		{ID: "s2", CampaignID: "c2", Name: "Conjunto 2", Status: "PAUSED"},
	}, nil)
	entityRepo.EXPECT().SaveOrUpdateAdSets(gomock.Len(2)).Return(nil)

	client.EXPECT().GetAds(gomock.Any(), "s1").Return([]metadomain.RawAd{
		{ID: "a1", AdSetID: "s1", CampaignID: "c1", Name: "Anúncio 1", Status: "ACTIVE"},
	}, nil)
	client.EXPECT().GetAds(gomock.Any(), "s2").Return(nil, nil)
	entityRepo.EXPECT().SaveOrUpdateAds(gomock.Len(1)).Return(nil)

	client.EXPECT().GetAllInsights(gomock.Any(), metadomain.InsightFilters{
		DateStart: "2025-01-08",
		DateEnd:   "2025-01-14",
		Level:     "ad",
	}).Return([]metadomain.RawInsight{
		{DateStart: "2025-01-10", AccountID: "act_acc1", CampaignID: "c1", AdSetID: "s1", AdID: "a1", Impressions: "100", Clicks: "5", Spend: "1.50"},
	}, nil)
	factRepo.EXPECT().SaveOrUpdateBatch(gomock.Len(1)).Return(nil)

	accountRepo.EXPECT().UpdateSyncStatus("acc1", domain.SyncStatusSuccess, nil).Return(nil)

	run, err := service.ProcessAccount(context.Background(), "acc1", testWindow())

	require.NoError(t, err)
	assert.True(t, run.Success)
	assert.Equal(t, 2, run.Campaigns)
	assert.Equal(t, 2, run.AdSets)
	assert.Equal(t, 1, run.Ads)
	assert.Equal(t, 1, run.FactRows)
	assert.Empty(t, run.Errors)
}

func TestProcessAccount_PartialFailureOnAdSets(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	accountRepo := mocks.NewMockAccountRepository(ctrl)
	entityRepo := mocks.NewMockEntityRepository(ctrl)
	factRepo := mocks.NewMockFactRepository(ctrl)
	factory := clientmocks.NewMockFactory(ctrl)
	client := clientmocks.NewMockClient(ctrl)

	service := newTestService(accountRepo, entityRepo, factRepo, factory)
	account := activeAccount("acc1")

	accountRepo.EXPECT().GetByID("acc1").Return(account, nil)
	accountRepo.EXPECT().UpdateSyncStatus("acc1", domain.SyncStatusSyncing, nil).Return(nil)
	factory.EXPECT().ForAccount("act_acc1", "token-acc1").Return(client)

	client.EXPECT().GetAccountInfo(gomock.Any()).Return(&metadomain.AccountInfo{Name: "Loja", Currency: "BRL", Timezone: "America/Sao_Paulo"}, nil)
	accountRepo.EXPECT().UpdateUpstreamInfo("acc1", "Loja", "BRL", "America/Sao_Paulo").Return(nil)

	client.EXPECT().GetCampaigns(gomock.Any()).Return([]metadomain.RawCampaign{
		{ID: "c1", Status: "ACTIVE", Objective: "OUTCOME_SALES"},
		{ID: "c2", Status: "ACTIVE", Objective: "OUTCOME_SALES"},
		{ID: "c3", Status: "ACTIVE", Objective: "OUTCOME_SALES"},
	}, nil)
	entityRepo.EXPECT().SaveOrUpdateCampaigns(gomock.Len(3)).Return(nil)

	// Uma campanha falha; as outras duas seguem normalmente
	client.EXPECT().GetAdSets(gomock.Any(), "c1").Return([]metadomain.RawAdSet{{ID: "s1", CampaignID: "c1"}}, nil)
	client.EXPECT().GetAdSets(gomock.Any(), "c2").Return(nil, assert.AnError)
	client.EXPECT().GetAdSets(gomock.Any(), "c3").Return([]metadomain.RawAdSet{{ID: "s3", CampaignID: "c3"}}, nil)
	entityRepo.EXPECT().SaveOrUpdateAdSets(gomock.Len(2)).Return(nil)

	client.EXPECT().GetAds(gomock.Any(), "s1").Return(nil, nil)
	client.EXPECT().GetAds(gomock.Any(), "s3").Return(nil, nil)

	client.EXPECT().GetAllInsights(gomock.Any(), gomock.Any()).Return(nil, nil)

	// Falha parcial não derruba a execução
	accountRepo.EXPECT().UpdateSyncStatus("acc1", domain.SyncStatusSuccess, nil).Return(nil)

	run, err := service.ProcessAccount(context.Background(), "acc1", testWindow())

	require.NoError(t, err)
	assert.True(t, run.Success)
	assert.Equal(t, 2, run.AdSets)
	require.Len(t, run.Errors, 1)
	assert.Contains(t, run.Errors[0], "c2")
}

func TestProcessAccount_AccountInfoFailureIsFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	accountRepo := mocks.NewMockAccountRepository(ctrl)
	entityRepo := mocks.NewMockEntityRepository(ctrl)
	factRepo := mocks.NewMockFactRepository(ctrl)
	factory := clientmocks.NewMockFactory(ctrl)
	client := clientmocks.NewMockClient(ctrl)

	service := newTestService(accountRepo, entityRepo, factRepo, factory)
	account := activeAccount("acc1")

	accountRepo.EXPECT().GetByID("acc1").Return(account, nil)
	accountRepo.EXPECT().UpdateSyncStatus("acc1", domain.SyncStatusSyncing, nil).Return(nil)
	factory.EXPECT().ForAccount("act_acc1", "token-acc1").Return(client)

	client.EXPECT().GetAccountInfo(gomock.Any()).Return(nil, assert.AnError)

	var recorded string
	accountRepo.EXPECT().
		UpdateSyncStatus("acc1", domain.SyncStatusFailed, gomock.Any()).
		Do(func(_ string, _ domain.SyncStatus, syncError *string) {
			require.NotNil(t, syncError)
			recorded = *syncError
		}).
		Return(nil)

	run, err := service.ProcessAccount(context.Background(), "acc1", testWindow())

	require.NoError(t, err)
	assert.False(t, run.Success)
	require.Len(t, run.Errors, 1)
	assert.Contains(t, run.Errors[0], "account info")
	assert.Contains(t, recorded, "account info")
}

func TestProcessAccount_InsightsFailureKeepsStructuralRows(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	accountRepo := mocks.NewMockAccountRepository(ctrl)
	entityRepo := mocks.NewMockEntityRepository(ctrl)
	factRepo := mocks.NewMockFactRepository(ctrl)
	factory := clientmocks.NewMockFactory(ctrl)
	client := clientmocks.NewMockClient(ctrl)

	service := newTestService(accountRepo, entityRepo, factRepo, factory)
	account := activeAccount("acc1")

	accountRepo.EXPECT().GetByID("acc1").Return(account, nil)
	accountRepo.EXPECT().UpdateSyncStatus("acc1", domain.SyncStatusSyncing, nil).Return(nil)
	factory.EXPECT().ForAccount("act_acc1", "token-acc1").Return(client)

	client.EXPECT().GetAccountInfo(gomock.Any()).Return(&metadomain.AccountInfo{Name: "Loja", Currency: "BRL", Timezone: "UTC"}, nil)
	accountRepo.EXPECT().UpdateUpstreamInfo("acc1", "Loja", "BRL", "UTC").Return(nil)

	client.EXPECT().GetCampaigns(gomock.Any()).Return([]metadomain.RawCampaign{
		{ID: "c1", Status: "ACTIVE", Objective: "OUTCOME_SALES"},
	}, nil)
	entityRepo.EXPECT().SaveOrUpdateCampaigns(gomock.Len(1)).Return(nil)

	client.EXPECT().GetAdSets(gomock.Any(), "c1").Return([]metadomain.RawAdSet{{ID: "s1", CampaignID: "c1"}}, nil)
	entityRepo.EXPECT().SaveOrUpdateAdSets(gomock.Len(1)).Return(nil)

	client.EXPECT().GetAds(gomock.Any(), "s1").Return(nil, nil)

	client.EXPECT().GetAllInsights(gomock.Any(), gomock.Any()).Return(nil, assert.AnError)

	accountRepo.EXPECT().UpdateSyncStatus("acc1", domain.SyncStatusFailed, gomock.Any()).Return(nil)

	run, err := service.ProcessAccount(context.Background(), "acc1", testWindow())

	require.NoError(t, err)
	assert.False(t, run.Success)

	// As linhas estruturais já gravadas permanecem válidas
	assert.Equal(t, 1, run.Campaigns)
	assert.Equal(t, 1, run.AdSets)
	assert.Equal(t, 0, run.FactRows)
}

func TestProcessAccount_ZeroCampaignsIsSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	accountRepo := mocks.NewMockAccountRepository(ctrl)
	entityRepo := mocks.NewMockEntityRepository(ctrl)
	factRepo := mocks.NewMockFactRepository(ctrl)
	factory := clientmocks.NewMockFactory(ctrl)
	client := clientmocks.NewMockClient(ctrl)

	service := newTestService(accountRepo, entityRepo, factRepo, factory)
	account := activeAccount("acc1")

	accountRepo.EXPECT().GetByID("acc1").Return(account, nil)
	accountRepo.EXPECT().UpdateSyncStatus("acc1", domain.SyncStatusSyncing, nil).Return(nil)
	factory.EXPECT().ForAccount("act_acc1", "token-acc1").Return(client)

	client.EXPECT().GetAccountInfo(gomock.Any()).Return(&metadomain.AccountInfo{Name: "Loja", Currency: "BRL", Timezone: "UTC"}, nil)
	accountRepo.EXPECT().UpdateUpstreamInfo("acc1", "Loja", "BRL", "UTC").Return(nil)

	// Conta recém criada, sem campanhas nem insights
	client.EXPECT().GetCampaigns(gomock.Any()).Return(nil, nil)
	client.EXPECT().GetAllInsights(gomock.Any(), gomock.Any()).Return(nil, nil)

	accountRepo.EXPECT().UpdateSyncStatus("acc1", domain.SyncStatusSuccess, nil).Return(nil)

	run, err := service.ProcessAccount(context.Background(), "acc1", testWindow())

	require.NoError(t, err)
	assert.True(t, run.Success)
	assert.Zero(t, run.Campaigns)
	assert.Zero(t, run.FactRows)
	assert.Empty(t, run.Errors)
}

func TestProcessAccount_Validations(t *testing.T) {
	tests := []struct {
		name      string
		accountID string
		account   *domain.ClientAccount
		wantErr   error
	}{
		{
			name:      "conta não encontrada",
			accountID: "missing",
			account:   nil,
			wantErr:   ErrAccountNotFound,
		},
		{
			name:      "conta inativa",
			accountID: "acc1",
			account: &domain.ClientAccount{
				ID:          "acc1",
				AccessToken: "token",
				Active:      false,
			},
			wantErr: ErrAccountInactive,
		},
		{
			name:      "conta sem credencial",
			accountID: "acc1",
			account: &domain.ClientAccount{
				ID:     "acc1",
				Active: true,
			},
			wantErr: ErrMissingCredential,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			accountRepo := mocks.NewMockAccountRepository(ctrl)
			entityRepo := mocks.NewMockEntityRepository(ctrl)
			factRepo := mocks.NewMockFactRepository(ctrl)
			factory := clientmocks.NewMockFactory(ctrl)

			service := newTestService(accountRepo, entityRepo, factRepo, factory)

			accountRepo.EXPECT().GetByID(tt.accountID).Return(tt.account, nil)

			run, err := service.ProcessAccount(context.Background(), tt.accountID, testWindow())

			assert.Nil(t, run)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestProcessAccount_RejectsConcurrentRunForSameAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	accountRepo := mocks.NewMockAccountRepository(ctrl)
	entityRepo := mocks.NewMockEntityRepository(ctrl)
	factRepo := mocks.NewMockFactRepository(ctrl)
	factory := clientmocks.NewMockFactory(ctrl)

	service := newTestService(accountRepo, entityRepo, factRepo, factory)

	// Simula uma sincronização em voo para a mesma conta
	service.inFlight["acc1"] = struct{}{}

	run, err := service.ProcessAccount(context.Background(), "acc1", testWindow())

	assert.Nil(t, run)
	assert.ErrorIs(t, err, ErrSyncInProgress)
}

func TestProcessAccount_RejectsInvalidWindow(t *testing.T) {
	tests := []struct {
		name   string
		window daterange.Range
	}{
		{
			name:   "data inicial posterior à final",
			window: daterange.Range{StartDate: "2025-12-31", EndDate: "2020-01-01"},
		},
		{
			name:   "intervalo maior que o span máximo",
			window: daterange.Range{StartDate: "2020-01-01", EndDate: "2025-12-31"},
		},
		{
			name:   "data malformada",
			window: daterange.Range{StartDate: "01/01/2025", EndDate: "2025-01-31"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			accountRepo := mocks.NewMockAccountRepository(ctrl)
			entityRepo := mocks.NewMockEntityRepository(ctrl)
			factRepo := mocks.NewMockFactRepository(ctrl)
			factory := clientmocks.NewMockFactory(ctrl)

			// Nenhuma expectativa nos mocks: a janela inválida precisa ser
			// barrada antes de qualquer acesso ao registro ou ao upstream
			service := newTestService(accountRepo, entityRepo, factRepo, factory)

			run, err := service.ProcessAccount(context.Background(), "acc1", tt.window)

			assert.Nil(t, run)
			var rangeErr *daterange.DateRangeError
			assert.ErrorAs(t, err, &rangeErr)
		})
	}
}

func TestProcessAccount_TimeoutTransitionsToFailed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	accountRepo := mocks.NewMockAccountRepository(ctrl)
	entityRepo := mocks.NewMockEntityRepository(ctrl)
	factRepo := mocks.NewMockFactRepository(ctrl)
	factory := clientmocks.NewMockFactory(ctrl)
	client := clientmocks.NewMockClient(ctrl)

	service := newTestService(accountRepo, entityRepo, factRepo, factory)
	// Timeout zero: o contexto da execução já nasce expirado
	service.cfg.InsightSync.AccountTimeoutSeconds = 0

	account := activeAccount("acc1")

	accountRepo.EXPECT().GetByID("acc1").Return(account, nil)
	accountRepo.EXPECT().UpdateSyncStatus("acc1", domain.SyncStatusSyncing, nil).Return(nil)
	factory.EXPECT().ForAccount("act_acc1", "token-acc1").Return(client)

	// Estágio lento: só retorna quando o contexto da conta expira
	client.EXPECT().
		GetAccountInfo(gomock.Any()).
		DoAndReturn(func(ctx context.Context) (*metadomain.AccountInfo, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		})

	var recorded string
	accountRepo.EXPECT().
		UpdateSyncStatus("acc1", domain.SyncStatusFailed, gomock.Any()).
		Do(func(_ string, _ domain.SyncStatus, syncError *string) {
			require.NotNil(t, syncError)
			recorded = *syncError
		}).
		Return(nil)

	run, err := service.ProcessAccount(context.Background(), "acc1", testWindow())

	// A conta nunca fica presa em "syncing": o timeout termina em "failed"
	require.NoError(t, err)
	assert.False(t, run.Success)
	require.Len(t, run.Errors, 1)
	assert.Contains(t, recorded, context.DeadlineExceeded.Error())
}

func TestRunFullSync_InvalidDateExpression(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	accountRepo := mocks.NewMockAccountRepository(ctrl)
	entityRepo := mocks.NewMockEntityRepository(ctrl)
	factRepo := mocks.NewMockFactRepository(ctrl)
	factory := clientmocks.NewMockFactory(ctrl)

	service := newTestService(accountRepo, entityRepo, factRepo, factory)

	run, err := service.RunFullSync(context.Background(), "acc1", "2025-01-31,2025-01-01")

	assert.Nil(t, run)
	var rangeErr *daterange.DateRangeError
	assert.ErrorAs(t, err, &rangeErr)
}

func TestRunSyncForAllAccounts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	accountRepo := mocks.NewMockAccountRepository(ctrl)
	entityRepo := mocks.NewMockEntityRepository(ctrl)
	factRepo := mocks.NewMockFactRepository(ctrl)
	factory := clientmocks.NewMockFactory(ctrl)
	okClient := clientmocks.NewMockClient(ctrl)
	badClient := clientmocks.NewMockClient(ctrl)

	service := newTestService(accountRepo, entityRepo, factRepo, factory)

	accountRepo.EXPECT().ListActive().Return([]*domain.AccountSummary{
		{ID: "ok"},
		{ID: "bad"},
	}, nil)

	// Conta "ok": pipeline completa sem linhas
	accountRepo.EXPECT().GetByID("ok").Return(activeAccount("ok"), nil)
	accountRepo.EXPECT().UpdateSyncStatus("ok", domain.SyncStatusSyncing, nil).Return(nil)
	factory.EXPECT().ForAccount("act_ok", "token-ok").Return(okClient)
	okClient.EXPECT().GetAccountInfo(gomock.Any()).Return(&metadomain.AccountInfo{Name: "OK", Currency: "BRL", Timezone: "UTC"}, nil)
	accountRepo.EXPECT().UpdateUpstreamInfo("ok", "OK", "BRL", "UTC").Return(nil)
	okClient.EXPECT().GetCampaigns(gomock.Any()).Return(nil, nil)
	okClient.EXPECT().GetAllInsights(gomock.Any(), gomock.Any()).Return([]metadomain.RawInsight{
		{DateStart: "2025-01-10", AccountID: "act_ok", CampaignID: "c", AdSetID: "s", AdID: "a", Spend: "1.00"},
	}, nil)
	factRepo.EXPECT().SaveOrUpdateBatch(gomock.Len(1)).Return(nil)
	accountRepo.EXPECT().UpdateSyncStatus("ok", domain.SyncStatusSuccess, nil).Return(nil)

	// Conta "bad": credencial expirada no primeiro estágio
	accountRepo.EXPECT().GetByID("bad").Return(activeAccount("bad"), nil)
	accountRepo.EXPECT().UpdateSyncStatus("bad", domain.SyncStatusSyncing, nil).Return(nil)
	factory.EXPECT().ForAccount("act_bad", "token-bad").Return(badClient)
	badClient.EXPECT().GetAccountInfo(gomock.Any()).Return(nil, assert.AnError)
	accountRepo.EXPECT().UpdateSyncStatus("bad", domain.SyncStatusFailed, gomock.Any()).Return(nil)

	summary, err := service.RunSyncForAllAccounts(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, summary.TotalAccounts)
	assert.Equal(t, 1, summary.SuccessCount)
	assert.Equal(t, 1, summary.FailedCount)
	assert.Equal(t, 0, summary.SkippedCount)
	assert.Equal(t, 1, summary.TotalFactRows)
	assert.Len(t, summary.AccountResults, 2)
}

func TestRunSyncForAllAccounts_EmptyFleet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	accountRepo := mocks.NewMockAccountRepository(ctrl)
	entityRepo := mocks.NewMockEntityRepository(ctrl)
	factRepo := mocks.NewMockFactRepository(ctrl)
	factory := clientmocks.NewMockFactory(ctrl)

	service := newTestService(accountRepo, entityRepo, factRepo, factory)

	accountRepo.EXPECT().ListActive().Return(nil, nil)

	summary, err := service.RunSyncForAllAccounts(context.Background())

	require.NoError(t, err)
	assert.Zero(t, summary.TotalAccounts)
	assert.Empty(t, summary.AccountResults)
}
