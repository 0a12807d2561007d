package metadomain

// RawCampaign é a campanha como retornada pelo upstream, antes de qualquer
// normalização. Budgets vêm como strings em centavos
type RawCampaign struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Status         string `json:"status"`
	Objective      string `json:"objective"`
	DailyBudget    string `json:"daily_budget,omitempty"`
	LifetimeBudget string `json:"lifetime_budget,omitempty"`
	CreatedTime    string `json:"created_time"`
	UpdatedTime    string `json:"updated_time"`
}

type RawAdSet struct {
	ID             string `json:"id"`
	CampaignID     string `json:"campaign_id"`
	Name           string `json:"name"`
	Status         string `json:"status"`
	DailyBudget    string `json:"daily_budget,omitempty"`
	LifetimeBudget string `json:"lifetime_budget,omitempty"`
	CreatedTime    string `json:"created_time"`
	UpdatedTime    string `json:"updated_time"`
}

type RawAd struct {
	ID          string `json:"id"`
	AdSetID     string `json:"adset_id"`
	CampaignID  string `json:"campaign_id"`
	Name        string `json:"name"`
	Status      string `json:"status"`
	Creative    *AdCreative `json:"creative,omitempty"`
	CreatedTime string `json:"created_time"`
	UpdatedTime string `json:"updated_time"`
}

type AdCreative struct {
	ID string `json:"id"`
}
