package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/traffic-sync-engine/infrastructure/repository"
	"github.com/vfg2006/traffic-sync-engine/internal/daterange"
	"github.com/vfg2006/traffic-sync-engine/pkg/apiErrors"
)

// GetAccountFacts retorna as linhas de fato já sincronizadas de uma conta
// para uma janela de datas. Leitura pura do warehouse, sem tocar o upstream
func GetAccountFacts(repo repository.FactRepository, resolver *daterange.Resolver) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da conta é obrigatório", nil)
			return
		}

		dateExpression := r.URL.Query().Get("range")
		if dateExpression == "" {
			dateExpression = "last_7d"
		}

		window, err := resolver.Resolve(dateExpression)
		if err != nil {
			var rangeErr *daterange.DateRangeError
			if errors.As(err, &rangeErr) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidDateRange, rangeErr.Error(), map[string]interface{}{
					"range": dateExpression,
				})
				return
			}

			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Expressão de datas inválida", nil)
			return
		}

		facts, err := repo.GetByAccountAndDateRange(id, window.StartDate, window.EndDate)
		if err != nil {
			logrus.Error("Error fetching facts:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar métricas no banco de dados", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		response := map[string]interface{}{
			"account_id": id,
			"start_date": window.StartDate,
			"end_date":   window.EndDate,
			"rows":       facts,
		}

		if err := json.NewEncoder(w).Encode(response); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}
