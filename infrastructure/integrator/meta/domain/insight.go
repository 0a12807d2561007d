package metadomain

// Action é o par (action_type, value) dos arrays heterogêneos de
// conversão do upstream. Value vem como string numérica
type Action struct {
	ActionType string `json:"action_type"`
	Value      string `json:"value"`
}

// RawInsight é uma linha bruta de performance no nível de anúncio, uma por
// (ad, dia). Todos os contadores chegam como strings; a transformação é
// responsável pela coerção numérica
type RawInsight struct {
	DateStart        string   `json:"date_start"`
	DateStop         string   `json:"date_stop"`
	AccountID        string   `json:"account_id"`
	CampaignID       string   `json:"campaign_id"`
	AdSetID          string   `json:"adset_id"`
	AdID             string   `json:"ad_id"`
	Impressions      string   `json:"impressions"`
	Clicks           string   `json:"clicks"`
	InlineLinkClicks string   `json:"inline_link_clicks"`
	Reach            string   `json:"reach"`
	Frequency        string   `json:"frequency"`
	Spend            string   `json:"spend"`
	Actions          []Action `json:"actions"`
	ActionValues     []Action `json:"action_values"`

	// Campo legado de conversão combinada, anterior ao split por tipo.
	// Nunca é somado aos buckets: o split por action_type é autoritativo
	Conversions string `json:"conversions,omitempty"`
}

// InsightFilters parametriza a busca de insights: janela de datas
// (inclusiva, YYYY-MM-DD) e nível de agregação
type InsightFilters struct {
	DateStart string
	DateEnd   string
	Level     string
}
