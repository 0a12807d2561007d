package meta

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metadomain "github.com/vfg2006/traffic-sync-engine/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/traffic-sync-engine/internal/domain"
)

func TestTransformInsights(t *testing.T) {
	raw := []metadomain.RawInsight{
		{
			DateStart:        "2025-01-10",
			AccountID:        "act_1",
			CampaignID:       "c1",
			AdSetID:          "s1",
			AdID:             "a1",
			Impressions:      "1000",
			Clicks:           "50",
			InlineLinkClicks: "40",
			Reach:            "800",
			Frequency:        "1.25",
			Spend:            "25.50",
			Actions: []metadomain.Action{
				{ActionType: "purchase", Value: "3"},
				{ActionType: "offsite_conversion.fb_pixel_purchase", Value: "2"},
				{ActionType: "lead", Value: "4"},
				{ActionType: "add_to_cart", Value: "10"},
				{ActionType: "post_reaction", Value: "99"},
			},
			ActionValues: []metadomain.Action{
				{ActionType: "purchase", Value: "300.00"},
				{ActionType: "offsite_conversion.fb_pixel_purchase", Value: "210.00"},
				{ActionType: "lead", Value: "40.00"},
			},
		},
	}

	rows := TransformInsights(raw)
	require.Len(t, rows, 1)

	row := rows[0]
	assert.Equal(t, "2025-01-10", row.Date)
	assert.Equal(t, int64(1000), row.Impressions)
	assert.Equal(t, int64(50), row.Clicks)
	assert.Equal(t, int64(40), row.LinkClicks)
	assert.Equal(t, int64(800), row.Reach)
	assert.Equal(t, 1.25, row.Frequency)
	assert.Equal(t, 25.50, row.Spend)

	// Buckets somam todas as tags reconhecidas do mesmo tipo;
	// "post_reaction" não entra em bucket nenhum
	assert.Equal(t, int64(5), row.Purchases)
	assert.Equal(t, 510.00, row.PurchaseValues)
	assert.Equal(t, int64(4), row.Leads)
	assert.Equal(t, 40.00, row.LeadValues)
	assert.Equal(t, int64(10), row.AddToCarts)

	assert.Equal(t, 5.0, row.CTR)
	assert.Equal(t, 0.51, row.CPC)
	assert.Equal(t, 25.5, row.CPM)
	assert.Equal(t, 5.1, row.CostPerPurchase)
	assert.Equal(t, 20.0, row.PurchaseROAS)
}

func TestTransformInsightsZeroDivisors(t *testing.T) {
	raw := []metadomain.RawInsight{
		{
			DateStart:  "2025-01-10",
			AccountID:  "act_1",
			CampaignID: "c1",
			AdSetID:    "s1",
			AdID:       "a1",
			// Nenhuma entrega no dia: tudo zero
		},
	}

	rows := TransformInsights(raw)
	require.Len(t, rows, 1)

	row := rows[0]
	for name, value := range map[string]float64{
		"ctr":  row.CTR,
		"cpc":  row.CPC,
		"cpm":  row.CPM,
		"cpa":  row.CostPerPurchase,
		"roas": row.PurchaseROAS,
	} {
		assert.Zerof(t, value, "métrica %s deveria ser zero", name)
		assert.Falsef(t, math.IsNaN(value) || math.IsInf(value, 0), "métrica %s produziu NaN/Inf", name)
	}
}

func TestTransformInsightsMalformedCounters(t *testing.T) {
	raw := []metadomain.RawInsight{
		{
			DateStart:   "2025-01-10",
			AccountID:   "act_1",
			CampaignID:  "c1",
			AdSetID:     "s1",
			AdID:        "a1",
			Impressions: "not-a-number",
			Clicks:      "",
			Spend:       "12.34",
			Actions: []metadomain.Action{
				{ActionType: "purchase", Value: "abc"},
			},
		},
	}

	rows := TransformInsights(raw)
	require.Len(t, rows, 1)

	// Contadores não parseáveis degradam para zero sem derrubar a linha
	assert.Equal(t, int64(0), rows[0].Impressions)
	assert.Equal(t, int64(0), rows[0].Clicks)
	assert.Equal(t, int64(0), rows[0].Purchases)
	assert.Equal(t, 12.34, rows[0].Spend)
}

func TestTransformInsightsIgnoresLegacyConversions(t *testing.T) {
	raw := []metadomain.RawInsight{
		{
			DateStart:   "2025-01-10",
			AccountID:   "act_1",
			CampaignID:  "c1",
			AdSetID:     "s1",
			AdID:        "a1",
			Conversions: "42",
			Actions: []metadomain.Action{
				{ActionType: "purchase", Value: "2"},
			},
		},
	}

	rows := TransformInsights(raw)
	require.Len(t, rows, 1)
	assert.Equal(t, int64(2), rows[0].Purchases)
}

func TestTransformInsightsDeterministic(t *testing.T) {
	raw := []metadomain.RawInsight{
		{
			DateStart:   "2025-01-10",
			AccountID:   "act_1",
			CampaignID:  "c1",
			AdSetID:     "s1",
			AdID:        "a1",
			Impressions: "500",
			Clicks:      "10",
			Spend:       "7.77",
			Actions: []metadomain.Action{
				{ActionType: "lead", Value: "1"},
			},
		},
	}

	first := TransformInsights(raw)
	second := TransformInsights(raw)

	require.Len(t, second, len(first))
	for i := range first {
		assert.Equal(t, *first[i], *second[i])
	}
}

func TestFilterValidInsights(t *testing.T) {
	rows := []*domain.DailyFactRow{
		{Date: "2025-01-10", AccountID: "act_1", CampaignID: "c1", AdSetID: "s1", AdID: "a1"},
		{Date: "", AccountID: "act_1", CampaignID: "c1", AdSetID: "s1", AdID: "a2"},
		{Date: "2025-01-10", AccountID: "act_1", CampaignID: "c1", AdSetID: "", AdID: "a3"},
	}

	valid := FilterValidInsights(rows)

	require.Len(t, valid, 1)
	assert.Equal(t, "a1", valid[0].AdID)
}

func TestTransformCampaigns(t *testing.T) {
	raw := []metadomain.RawCampaign{
		{
			ID:          "c1",
			Name:        "Campanha Verão",
			Status:      "ACTIVE",
			Objective:   "OUTCOME_SALES",
			DailyBudget: "15000",
			CreatedTime: "2025-01-02T10:25:19-0300",
		},
		{
			ID:        "c2",
			Name:      "Campanha legada",
			Status:    "SOMETHING_NEW",
			Objective: "LINK_CLICKS",
		},
	}

	campaigns := TransformCampaigns("acc_1", raw)
	require.Len(t, campaigns, 2)

	assert.Equal(t, "acc_1", campaigns[0].AccountID)
	assert.Equal(t, domain.EntityStatusActive, campaigns[0].Status)
	assert.Equal(t, domain.ObjectiveSales, campaigns[0].Objective)
	assert.Equal(t, 150.0, campaigns[0].DailyBudget)
	assert.Equal(t, time.Date(2025, 1, 2, 10, 25, 19, 0, campaigns[0].CreatedTime.Location()), campaigns[0].CreatedTime)

	// Vocabulário desconhecido/legado degrada em vez de falhar
	assert.Equal(t, domain.EntityStatusPaused, campaigns[1].Status)
	assert.Equal(t, domain.ObjectiveTraffic, campaigns[1].Objective)
	assert.True(t, campaigns[1].CreatedTime.IsZero())
}

func TestTransformAds(t *testing.T) {
	raw := []metadomain.RawAd{
		{
			ID:         "a1",
			AdSetID:    "s1",
			CampaignID: "c1",
			Name:       "Anúncio 1",
			Status:     "PAUSED",
			Creative:   &metadomain.AdCreative{ID: "cr_9"},
		},
		{
			ID:         "a2",
			AdSetID:    "s1",
			CampaignID: "c1",
			Name:       "Anúncio sem criativo",
			Status:     "ACTIVE",
		},
	}

	ads := TransformAds("acc_1", raw)
	require.Len(t, ads, 2)

	require.NotNil(t, ads[0].CreativeID)
	assert.Equal(t, "cr_9", *ads[0].CreativeID)
	assert.Nil(t, ads[1].CreativeID)
}
