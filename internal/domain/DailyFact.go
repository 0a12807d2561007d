package domain

// DailyFactRow é a unidade atômica de performance ingerida: uma linha por
// (anúncio, dia). Chave natural (ad_id, date): reprocessar a mesma janela
// sobrescreve, nunca duplica
type DailyFactRow struct {
	Date       string `json:"date"`
	AccountID  string `json:"account_id"`
	CampaignID string `json:"campaign_id"`
	AdSetID    string `json:"ad_set_id"`
	AdID       string `json:"ad_id"`

	// Contadores brutos
	Impressions int64   `json:"impressions"`
	Clicks      int64   `json:"clicks"`
	LinkClicks  int64   `json:"link_clicks"`
	Reach       int64   `json:"reach"`
	Frequency   float64 `json:"frequency"`
	Spend       float64 `json:"spend"`

	// Conversões separadas por tipo, com os valores monetários pareados
	Purchases          int64   `json:"purchases"`
	PurchaseValues     float64 `json:"purchase_values"`
	Leads              int64   `json:"leads"`
	LeadValues         float64 `json:"lead_values"`
	Registrations      int64   `json:"registrations"`
	RegistrationValues float64 `json:"registration_values"`
	AddToCarts         int64   `json:"add_to_carts"`

	// Métricas derivadas, calculadas uma única vez na escrita
	CTR             float64 `json:"ctr"`
	CPC             float64 `json:"cpc"`
	CPM             float64 `json:"cpm"`
	CostPerPurchase float64 `json:"cost_per_purchase"`
	PurchaseROAS    float64 `json:"purchase_roas"`
}
