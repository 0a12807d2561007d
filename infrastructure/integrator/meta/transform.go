package meta

import (
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/traffic-sync-engine/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/traffic-sync-engine/internal/domain"
	"github.com/vfg2006/traffic-sync-engine/pkg/metrics"
	"github.com/vfg2006/traffic-sync-engine/pkg/utils"
)

// Formato de timestamp da Graph API (ex.: 2025-01-15T10:25:19-0300)
const upstreamTimeLayout = "2006-01-02T15:04:05-0700"

// Conjuntos fechados de action_types reconhecidos, por bucket de conversão.
// Tags fora destes conjuntos NÃO são somadas em bucket nenhum, para manter
// os totais atribuíveis; são apenas contadas para observabilidade
var (
	purchaseActionTypes = map[string]struct{}{
		"purchase":                             {},
		"omni_purchase":                        {},
		"offsite_conversion.fb_pixel_purchase": {},
		"onsite_web_purchase":                  {},
	}

	leadActionTypes = map[string]struct{}{
		"lead":                             {},
		"offsite_conversion.fb_pixel_lead": {},
		"onsite_conversion.lead_grouped":   {},
	}

	registrationActionTypes = map[string]struct{}{
		"complete_registration":                             {},
		"omni_complete_registration":                        {},
		"offsite_conversion.fb_pixel_complete_registration": {},
	}

	cartActionTypes = map[string]struct{}{
		"add_to_cart":                             {},
		"omni_add_to_cart":                        {},
		"offsite_conversion.fb_pixel_add_to_cart": {},
	}
)

// TransformInsights converte linhas brutas do upstream em linhas de fato
// normalizadas. Função pura e determinística: rodar duas vezes sobre o mesmo
// lote produz linhas idênticas. Contadores não parseáveis viram zero em vez
// de derrubar a linha; métricas derivadas nunca produzem NaN/Inf: divisor
// zero resulta em zero
func TransformInsights(raw []metadomain.RawInsight) []*domain.DailyFactRow {
	rows := make([]*domain.DailyFactRow, 0, len(raw))

	for i := range raw {
		insight := &raw[i]

		row := &domain.DailyFactRow{
			Date:        insight.DateStart,
			AccountID:   insight.AccountID,
			CampaignID:  insight.CampaignID,
			AdSetID:     insight.AdSetID,
			AdID:        insight.AdID,
			Impressions: parseCount(insight.Impressions),
			Clicks:      parseCount(insight.Clicks),
			LinkClicks:  parseCount(insight.InlineLinkClicks),
			Reach:       parseCount(insight.Reach),
			Frequency:   parseAmount(insight.Frequency),
			Spend:       parseAmount(insight.Spend),
		}

		unpackActions(row, insight.Actions, insight.ActionValues)
		deriveMetrics(row)

		rows = append(rows, row)
	}

	return rows
}

// FilterValidInsights descarta linhas sem alguma das chaves identificadoras
// obrigatórias (data e ids da hierarquia), que violariam as foreign keys do
// warehouse
func FilterValidInsights(rows []*domain.DailyFactRow) []*domain.DailyFactRow {
	valid := make([]*domain.DailyFactRow, 0, len(rows))

	for _, row := range rows {
		if row.Date == "" || row.AccountID == "" || row.CampaignID == "" || row.AdSetID == "" || row.AdID == "" {
			logrus.WithFields(logrus.Fields{
				"date":  row.Date,
				"ad_id": row.AdID,
			}).Debug("Linha de insight descartada por chave identificadora ausente")
			continue
		}

		valid = append(valid, row)
	}

	return valid
}

// unpackActions distribui os arrays action/action_value nos buckets de
// conversão nomeados. O split por action_type é autoritativo; o campo legado
// de conversão combinada nunca é considerado
func unpackActions(row *domain.DailyFactRow, actions, actionValues []metadomain.Action) {
	for _, action := range actions {
		count := parseCount(action.Value)

		switch {
		case inSet(purchaseActionTypes, action.ActionType):
			row.Purchases += count
		case inSet(leadActionTypes, action.ActionType):
			row.Leads += count
		case inSet(registrationActionTypes, action.ActionType):
			row.Registrations += count
		case inSet(cartActionTypes, action.ActionType):
			row.AddToCarts += count
		default:
			metrics.UnrecognizedActionTypes.WithLabelValues(action.ActionType).Inc()
			logrus.WithField("action_type", action.ActionType).Debug("action_type não reconhecido, ignorando")
		}
	}

	for _, value := range actionValues {
		amount := parseAmount(value.Value)

		switch {
		case inSet(purchaseActionTypes, value.ActionType):
			row.PurchaseValues += amount
		case inSet(leadActionTypes, value.ActionType):
			row.LeadValues += amount
		case inSet(registrationActionTypes, value.ActionType):
			row.RegistrationValues += amount
		}
	}
}

// deriveMetrics calcula as métricas derivadas uma única vez, na escrita.
// Todo divisor zero resulta em zero, nunca NaN ou infinito
func deriveMetrics(row *domain.DailyFactRow) {
	if row.Impressions > 0 {
		row.CTR = utils.RoundWithTwoDecimalPlace(float64(row.Clicks) / float64(row.Impressions) * 100)
		row.CPM = utils.RoundWithTwoDecimalPlace(row.Spend / float64(row.Impressions) * 1000)
	}

	if row.Clicks > 0 {
		row.CPC = utils.RoundWithTwoDecimalPlace(row.Spend / float64(row.Clicks))
	}

	if row.Purchases > 0 {
		row.CostPerPurchase = utils.RoundWithTwoDecimalPlace(row.Spend / float64(row.Purchases))
	}

	if row.Spend > 0 {
		row.PurchaseROAS = utils.RoundWithTwoDecimalPlace(row.PurchaseValues / row.Spend)
	}
}

// TransformCampaigns converte campanhas brutas em registros do warehouse
func TransformCampaigns(accountID string, raw []metadomain.RawCampaign) []*domain.Campaign {
	campaigns := make([]*domain.Campaign, 0, len(raw))

	for _, campaign := range raw {
		campaigns = append(campaigns, &domain.Campaign{
			ID:             campaign.ID,
			AccountID:      accountID,
			Name:           campaign.Name,
			Status:         domain.MapEntityStatus(campaign.Status),
			Objective:      domain.MapObjective(campaign.Objective),
			DailyBudget:    parseBudget(campaign.DailyBudget),
			LifetimeBudget: parseBudget(campaign.LifetimeBudget),
			CreatedTime:    parseUpstreamTime(campaign.CreatedTime),
			UpdatedTime:    parseUpstreamTime(campaign.UpdatedTime),
		})
	}

	return campaigns
}

// TransformAdSets converte conjuntos brutos em registros do warehouse
func TransformAdSets(accountID string, raw []metadomain.RawAdSet) []*domain.AdSet {
	adSets := make([]*domain.AdSet, 0, len(raw))

	for _, adSet := range raw {
		adSets = append(adSets, &domain.AdSet{
			ID:             adSet.ID,
			CampaignID:     adSet.CampaignID,
			AccountID:      accountID,
			Name:           adSet.Name,
			Status:         domain.MapEntityStatus(adSet.Status),
			DailyBudget:    parseBudget(adSet.DailyBudget),
			LifetimeBudget: parseBudget(adSet.LifetimeBudget),
			CreatedTime:    parseUpstreamTime(adSet.CreatedTime),
			UpdatedTime:    parseUpstreamTime(adSet.UpdatedTime),
		})
	}

	return adSets
}

// TransformAds converte anúncios brutos em registros do warehouse
func TransformAds(accountID string, raw []metadomain.RawAd) []*domain.Ad {
	ads := make([]*domain.Ad, 0, len(raw))

	for _, ad := range raw {
		normalized := &domain.Ad{
			ID:          ad.ID,
			AdSetID:     ad.AdSetID,
			CampaignID:  ad.CampaignID,
			AccountID:   accountID,
			Name:        ad.Name,
			Status:      domain.MapEntityStatus(ad.Status),
			CreatedTime: parseUpstreamTime(ad.CreatedTime),
			UpdatedTime: parseUpstreamTime(ad.UpdatedTime),
		}

		if ad.Creative != nil && ad.Creative.ID != "" {
			creativeID := ad.Creative.ID
			normalized.CreativeID = &creativeID
		}

		ads = append(ads, normalized)
	}

	return ads
}

func inSet(set map[string]struct{}, key string) bool {
	_, ok := set[key]
	return ok
}

func parseCount(value string) int64 {
	if value == "" {
		return 0
	}

	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0
	}

	return parsed
}

func parseAmount(value string) float64 {
	if value == "" {
		return 0
	}

	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}

	return parsed
}

// parseBudget converte budgets do upstream (strings em centavos) para a
// unidade monetária da conta
func parseBudget(value string) float64 {
	cents := parseCount(value)
	return float64(cents) / 100
}

func parseUpstreamTime(value string) time.Time {
	if value == "" {
		return time.Time{}
	}

	parsed, err := time.Parse(upstreamTimeLayout, value)
	if err != nil {
		return time.Time{}
	}

	return parsed
}
