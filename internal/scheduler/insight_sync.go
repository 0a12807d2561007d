package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/traffic-sync-engine/internal/config"
	"github.com/vfg2006/traffic-sync-engine/internal/usecases/syncing"
)

// InsightSyncService gerencia o agendamento da sincronização periódica da
// frota. A execução em si é delegada ao orquestrador, que já garante uma
// sincronização por conta e o limite de concorrência entre contas
type InsightSyncService struct {
	scheduler *gocron.Scheduler
	cfg       config.InsightSync
	syncer    syncing.Syncer

	// Protege os horários abaixo: escritos pela goroutine do cron e lidos
	// pelo handler de status
	statusMu            sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// NewInsightSyncService cria uma nova instância do serviço de sincronização agendada
func NewInsightSyncService(syncer syncing.Syncer, appConfig *config.Config) *InsightSyncService {
	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":           appConfig.InsightSync.CronSchedule,
		"lookback_days":           appConfig.InsightSync.LookbackDays,
		"max_concurrent_accounts": appConfig.InsightSync.MaxConcurrentAccounts,
		"sync_enabled":            appConfig.InsightSync.Enabled,
	}).Info("Configuração do agendador de sincronização carregada")

	return &InsightSyncService{
		scheduler: scheduler,
		cfg:       appConfig.InsightSync,
		syncer:    syncer,
	}
}

// Start inicia o agendador
func (s *InsightSyncService) Start(ctx context.Context) error {
	if !s.cfg.Enabled {
		logrus.Info("Sincronização agendada desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.cfg.CronSchedule).Info("Iniciando agendador de sincronização")

	_, err := s.scheduler.Cron(s.cfg.CronSchedule).Do(func() {
		s.runFleetSync(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização da frota: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de sincronização")
		s.scheduler.Stop()
	}()

	return nil
}

// runFleetSync dispara a sincronização da frota inteira. O orquestrador pula
// contas que já estiverem com sincronização em voo, então uma execução longa
// não acumula com a próxima janela do cron
func (s *InsightSyncService) runFleetSync(ctx context.Context) {
	startedAt := time.Now()

	s.statusMu.Lock()
	s.lastSyncStartedAt = startedAt
	s.statusMu.Unlock()

	summary, err := s.syncer.RunSyncForAllAccounts(ctx)
	if err != nil {
		logrus.WithError(err).Error("Erro na sincronização agendada da frota")
		return
	}

	completedAt := time.Now()

	s.statusMu.Lock()
	s.lastSyncCompletedAt = completedAt
	s.statusMu.Unlock()

	logrus.WithFields(logrus.Fields{
		"duration":  completedAt.Sub(startedAt).String(),
		"accounts":  summary.TotalAccounts,
		"success":   summary.SuccessCount,
		"failed":    summary.FailedCount,
		"skipped":   summary.SkippedCount,
		"fact_rows": summary.TotalFactRows,
	}).Info("Sincronização agendada da frota concluída")
}

// Status retorna os horários da última execução agendada, para o endpoint de cron
func (s *InsightSyncService) Status() (startedAt, completedAt time.Time) {
	s.statusMu.Lock()
	defer s.statusMu.Unlock()

	return s.lastSyncStartedAt, s.lastSyncCompletedAt
}
