package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/traffic-sync-engine/internal/daterange"
	"github.com/vfg2006/traffic-sync-engine/internal/scheduler"
	"github.com/vfg2006/traffic-sync-engine/internal/usecases/syncing"
	"github.com/vfg2006/traffic-sync-engine/pkg/apiErrors"
)

// TriggerAccountSync dispara a sincronização de uma conta específica e
// aguarda o resultado. A expressão de datas vem no parâmetro "range"
// (preset ou intervalo custom); ausente, usa a janela padrão de 7 dias
func TriggerAccountSync(syncer syncing.Syncer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - TriggerAccountSync")

		w.Header().Set("Content-Type", "application/json")

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da conta é obrigatório", nil)
			return
		}

		dateExpression := r.URL.Query().Get("range")
		if dateExpression == "" {
			dateExpression = "last_7d"
		}

		run, err := syncer.RunFullSync(r.Context(), id, dateExpression)
		if err != nil {
			writeSyncError(w, id, dateExpression, err)
			return
		}

		if err := json.NewEncoder(w).Encode(run); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

// TriggerFleetSync dispara a sincronização da frota inteira em background e
// responde imediatamente. O progresso é acompanhado pelos status das contas
// e pelas métricas
func TriggerFleetSync(syncer syncing.Syncer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - TriggerFleetSync")

		go func() {
			// Desacoplado do contexto da requisição: a sincronização segue
			// mesmo depois da resposta
			summary, err := syncer.RunSyncForAllAccounts(context.Background())
			if err != nil {
				logrus.WithError(err).Error("Erro na sincronização da frota disparada via API")
				return
			}

			logrus.WithFields(logrus.Fields{
				"accounts": summary.TotalAccounts,
				"success":  summary.SuccessCount,
				"failed":   summary.FailedCount,
			}).Info("Sincronização da frota disparada via API concluída")
		}()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		json.NewEncoder(w).Encode(map[string]string{
			"status": "accepted",
		})
	})
}

// GetSyncStatus expõe os horários da última execução agendada
func GetSyncStatus(syncService *scheduler.InsightSyncService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		startedAt, completedAt := syncService.Status()

		response := map[string]interface{}{
			"last_sync_started_at":   formatSyncTime(startedAt),
			"last_sync_completed_at": formatSyncTime(completedAt),
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(response); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func formatSyncTime(t time.Time) *string {
	if t.IsZero() {
		return nil
	}

	formatted := t.Format(time.RFC3339)
	return &formatted
}

func writeSyncError(w http.ResponseWriter, accountID, dateExpression string, err error) {
	logrus.Error("Error syncing account:", err)

	var rangeErr *daterange.DateRangeError
	if errors.As(err, &rangeErr) {
		apiErrors.WriteError(w, apiErrors.ErrInvalidDateRange, rangeErr.Error(), map[string]interface{}{
			"range": dateExpression,
		})
		return
	}

	switch {
	case errors.Is(err, syncing.ErrSyncInProgress):
		apiErrors.WriteError(w, apiErrors.ErrSyncInProgress, "Sincronização já em andamento para esta conta", map[string]interface{}{
			"account_id": accountID,
		})

	case errors.Is(err, syncing.ErrAccountNotFound):
		apiErrors.WriteError(w, apiErrors.ErrAccountNotFound, "Conta não encontrada", map[string]interface{}{
			"account_id": accountID,
		})

	case errors.Is(err, syncing.ErrAccountInactive):
		apiErrors.WriteError(w, apiErrors.ErrAccountInactive, "Conta desativada", map[string]interface{}{
			"account_id": accountID,
		})

	case errors.Is(err, syncing.ErrMissingCredential):
		apiErrors.WriteError(w, apiErrors.ErrCredentialExpired, "Conta sem credencial configurada", map[string]interface{}{
			"account_id": accountID,
		})

	default:
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao sincronizar conta", nil)
	}
}
