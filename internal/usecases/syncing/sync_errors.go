package syncing

import (
	"errors"
)

// Erros específicos para o contexto de sincronização
var (
	// Erros de validação
	ErrAccountIDRequired = errors.New("account ID is required")
	ErrAccountNotFound   = errors.New("account not found")
	ErrAccountInactive   = errors.New("account is inactive")
	ErrMissingCredential = errors.New("account has no access token configured")

	// Erros de concorrência: no máximo uma sincronização em voo por conta
	ErrSyncInProgress = errors.New("sync already in progress for this account")

	// Erros de estágio fatal
	ErrAccountInfoStage = errors.New("error fetching account info from upstream")
	ErrInsightsStage    = errors.New("error ingesting insights from upstream")
)
