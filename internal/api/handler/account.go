package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/traffic-sync-engine/infrastructure/repository"
	"github.com/vfg2006/traffic-sync-engine/internal/domain"
	"github.com/vfg2006/traffic-sync-engine/pkg/apiErrors"
)

func ListAccounts(repo repository.AccountRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		accounts, err := repo.ListActive()
		if err != nil {
			logrus.Error("Error listing accounts:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar contas no banco de dados", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")

		if err := json.NewEncoder(w).Encode(accounts); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func GetAccount(repo repository.AccountRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da conta é obrigatório", nil)
			return
		}

		account, err := repo.GetByID(id)
		if err != nil {
			logrus.Error("Error fetching account:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao consultar conta no banco de dados", nil)
			return
		}

		if account == nil {
			apiErrors.WriteError(w, apiErrors.ErrAccountNotFound, "Conta não encontrada", map[string]interface{}{
				"account_id": id,
			})
			return
		}

		w.Header().Set("Content-Type", "application/json")

		// A credencial decriptada nunca sai na resposta (campos excluídos da
		// serialização)
		if err := json.NewEncoder(w).Encode(account); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func CreateAccount(repo repository.AccountRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateAccount")

		w.Header().Set("Content-Type", "application/json")

		var createRequest domain.CreateAccountRequest
		if err := json.NewDecoder(r.Body).Decode(&createRequest); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		if createRequest.ExternalID == "" || createRequest.AccessToken == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "external_id e access_token são obrigatórios", nil)
			return
		}

		account, err := repo.Create(&createRequest)
		if err != nil {
			logrus.Error("Error creating account:", err)

			if errors.Is(err, repository.ErrDuplicateAccount) {
				apiErrors.WriteError(w, apiErrors.ErrDuplicateAccount, "Conta já registrada com este external_id", map[string]interface{}{
					"external_id": createRequest.ExternalID,
				})
				return
			}

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao registrar conta", nil)
			return
		}

		w.WriteHeader(http.StatusCreated)

		if err := json.NewEncoder(w).Encode(account); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao codificar resposta", nil)
		}
	})
}

func UpdateAccount(repo repository.AccountRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateAccount")

		w.Header().Set("Content-Type", "application/json")

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID da conta é obrigatório", nil)
			return
		}

		var updateRequest domain.UpdateAccountRequest
		if err := json.NewDecoder(r.Body).Decode(&updateRequest); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido: "+err.Error(), nil)
			return
		}

		// Garante que o ID da URL seja usado
		updateRequest.ID = id

		if err := repo.Update(&updateRequest); err != nil {
			logrus.Error("Error updating account:", err)

			if errors.Is(err, repository.ErrAccountNotFound) {
				apiErrors.WriteError(w, apiErrors.ErrAccountNotFound, "Conta não encontrada", map[string]interface{}{
					"account_id": id,
				})
				return
			}

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao atualizar conta no banco de dados", nil)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}
