package domain

import (
	"time"
)

// SyncRun acumula o resultado de uma execução de sincronização para uma
// conta e uma janela de datas. Efêmero: existe só durante a passada do
// orquestrador e é dobrado no sync_status/sync_error da conta ao final
type SyncRun struct {
	AccountID   string    `json:"account_id"`
	ExternalID  string    `json:"external_id"`
	DateStart   string    `json:"date_start"`
	DateEnd     string    `json:"date_end"`
	Campaigns   int       `json:"campaigns"`
	AdSets      int       `json:"ad_sets"`
	Ads         int       `json:"ads"`
	FactRows    int       `json:"fact_rows"`
	Errors      []string  `json:"errors"`
	StartedAt   time.Time `json:"started_at"`
	CompletedAt time.Time `json:"completed_at"`
	Success     bool      `json:"success"`
}

// BatchSummary agrega o resultado de uma sincronização da frota inteira
type BatchSummary struct {
	TotalAccounts  int        `json:"total_accounts"`
	SuccessCount   int        `json:"success_count"`
	FailedCount    int        `json:"failed_count"`
	SkippedCount   int        `json:"skipped_count"`
	TotalFactRows  int        `json:"total_fact_rows"`
	AccountResults []*SyncRun `json:"account_results"`
	StartedAt      time.Time  `json:"started_at"`
	CompletedAt    time.Time  `json:"completed_at"`
}
