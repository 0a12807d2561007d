package domain

import (
	"time"
)

// SyncStatus representa o ciclo de vida de sincronização de uma conta.
// Transições acontecem exclusivamente pelo orquestrador:
// pending/success/failed -> syncing -> {success, failed}
type SyncStatus string

const (
	SyncStatusPending SyncStatus = "pending"
	SyncStatusSyncing SyncStatus = "syncing"
	SyncStatusSuccess SyncStatus = "success"
	SyncStatusFailed  SyncStatus = "failed"
)

// ClientAccount é uma conta de anunciante (um tenant). O AccessToken aqui
// já está decriptado; o blob em repouso vive apenas no banco
type ClientAccount struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	ExternalID     string     `json:"external_id"`
	AccessToken    string     `json:"-"`
	RefreshToken   *string    `json:"-"`
	TokenExpiresAt *time.Time `json:"token_expires_at"`
	Timezone       string     `json:"timezone"`
	Currency       string     `json:"currency"`
	Active         bool       `json:"active"`
	SyncStatus     SyncStatus `json:"sync_status"`
	SyncError      *string    `json:"sync_error"`
	LastSyncAt     *time.Time `json:"last_sync_at"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// AccountSummary é a projeção usada na listagem de contas ativas,
// sem material de credencial
type AccountSummary struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	ExternalID string     `json:"external_id"`
	Timezone   string     `json:"timezone"`
	Currency   string     `json:"currency"`
	SyncStatus SyncStatus `json:"sync_status"`
	LastSyncAt *time.Time `json:"last_sync_at"`
}

type CreateAccountRequest struct {
	Name         string  `json:"name"`
	ExternalID   string  `json:"external_id"`
	AccessToken  string  `json:"access_token"`
	RefreshToken *string `json:"refresh_token"`
	Timezone     string  `json:"timezone"`
	Currency     string  `json:"currency"`
}

type UpdateAccountRequest struct {
	ID          string  `json:"-"`
	Name        *string `json:"name"`
	AccessToken *string `json:"access_token"`
	Timezone    *string `json:"timezone"`
	Currency    *string `json:"currency"`
	Active      *bool   `json:"active"`
}
