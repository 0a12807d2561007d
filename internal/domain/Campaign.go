package domain

import (
	"time"

	"github.com/vfg2006/traffic-sync-engine/pkg/log"
)

// EntityStatus é a enumeração fechada do warehouse para status de
// campanha/conjunto/anúncio
type EntityStatus string

const (
	EntityStatusActive   EntityStatus = "ACTIVE"
	EntityStatusPaused   EntityStatus = "PAUSED"
	EntityStatusDeleted  EntityStatus = "DELETED"
	EntityStatusArchived EntityStatus = "ARCHIVED"
)

// Objective é a enumeração fechada do warehouse para objetivos de campanha
type Objective string

const (
	ObjectiveTraffic    Objective = "OUTCOME_TRAFFIC"
	ObjectiveSales      Objective = "OUTCOME_SALES"
	ObjectiveLeads      Objective = "OUTCOME_LEADS"
	ObjectiveEngagement Objective = "OUTCOME_ENGAGEMENT"
	ObjectiveAwareness  Objective = "OUTCOME_AWARENESS"
	ObjectiveAppPromo   Objective = "OUTCOME_APP_PROMOTION"
)

var entityStatusByUpstream = map[string]EntityStatus{
	"ACTIVE":   EntityStatusActive,
	"PAUSED":   EntityStatusPaused,
	"DELETED":  EntityStatusDeleted,
	"ARCHIVED": EntityStatusArchived,
	// Estados transitórios da API são tratados como pausado
	"IN_PROCESS":  EntityStatusPaused,
	"WITH_ISSUES": EntityStatusPaused,
}

var objectiveByUpstream = map[string]Objective{
	"OUTCOME_TRAFFIC":       ObjectiveTraffic,
	"OUTCOME_SALES":         ObjectiveSales,
	"OUTCOME_LEADS":         ObjectiveLeads,
	"OUTCOME_ENGAGEMENT":    ObjectiveEngagement,
	"OUTCOME_AWARENESS":     ObjectiveAwareness,
	"OUTCOME_APP_PROMOTION": ObjectiveAppPromo,
	// Vocabulário antigo da API, anterior aos objetivos "OUTCOME_*"
	"LINK_CLICKS":     ObjectiveTraffic,
	"CONVERSIONS":     ObjectiveSales,
	"LEAD_GENERATION": ObjectiveLeads,
	"POST_ENGAGEMENT": ObjectiveEngagement,
	"BRAND_AWARENESS": ObjectiveAwareness,
	"REACH":           ObjectiveAwareness,
	"APP_INSTALLS":    ObjectiveAppPromo,
}

// MapEntityStatus converte o status do upstream para a enumeração do warehouse.
// Valores desconhecidos degradam para PAUSED em vez de bloquear a ingestão,
// mas são logados para visibilidade
func MapEntityStatus(upstream string) EntityStatus {
	if status, ok := entityStatusByUpstream[upstream]; ok {
		return status
	}

	log.L.WithField("status", upstream).Warn("Status de entidade não mapeado, usando PAUSED")
	return EntityStatusPaused
}

// MapObjective converte o objetivo do upstream para a enumeração do warehouse.
// Valores desconhecidos degradam para OUTCOME_TRAFFIC
func MapObjective(upstream string) Objective {
	if objective, ok := objectiveByUpstream[upstream]; ok {
		return objective
	}

	log.L.WithField("objective", upstream).Warn("Objetivo não mapeado, usando OUTCOME_TRAFFIC")
	return ObjectiveTraffic
}

// Campaign é o registro estrutural de campanha espelhado do upstream
type Campaign struct {
	ID             string       `json:"id"`
	AccountID      string       `json:"account_id"`
	Name           string       `json:"name"`
	Status         EntityStatus `json:"status"`
	Objective      Objective    `json:"objective"`
	DailyBudget    float64      `json:"daily_budget"`
	LifetimeBudget float64      `json:"lifetime_budget"`
	CreatedTime    time.Time    `json:"created_time"`
	UpdatedTime    time.Time    `json:"updated_time"`
}

// AdSet é o conjunto de anúncios, filho de uma campanha
type AdSet struct {
	ID             string       `json:"id"`
	CampaignID     string       `json:"campaign_id"`
	AccountID      string       `json:"account_id"`
	Name           string       `json:"name"`
	Status         EntityStatus `json:"status"`
	DailyBudget    float64      `json:"daily_budget"`
	LifetimeBudget float64      `json:"lifetime_budget"`
	CreatedTime    time.Time    `json:"created_time"`
	UpdatedTime    time.Time    `json:"updated_time"`
}

// Ad é o anúncio individual, filho de um conjunto
type Ad struct {
	ID          string       `json:"id"`
	AdSetID     string       `json:"ad_set_id"`
	CampaignID  string       `json:"campaign_id"`
	AccountID   string       `json:"account_id"`
	Name        string       `json:"name"`
	Status      EntityStatus `json:"status"`
	CreativeID  *string      `json:"creative_id"`
	CreatedTime time.Time    `json:"created_time"`
	UpdatedTime time.Time    `json:"updated_time"`
}
