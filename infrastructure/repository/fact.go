package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/traffic-sync-engine/infrastructure/database/postgres"
	"github.com/vfg2006/traffic-sync-engine/internal/domain"
	"github.com/vfg2006/traffic-sync-engine/pkg/metrics"
)

const (
	adDailyFactsTable = "ad_daily_facts adf"

	// Postgres limita uma query a 65535 parâmetros; cada fato usa 25 colunas
	factBatchSize = 500
)

// FactRepository grava as linhas de fato diárias. Chave natural
// (ad_id, date): reingerir a mesma janela sobrescreve, nunca duplica
type FactRepository interface {
	SaveOrUpdateBatch(facts []*domain.DailyFactRow) error
	GetByAccountAndDateRange(accountID, dateStart, dateEnd string) ([]*domain.DailyFactRow, error)
}

type factRepository struct {
	conn *postgres.Connection
}

func NewFactRepository(conn *postgres.Connection) FactRepository {
	return &factRepository{
		conn: conn,
	}
}

func (r *factRepository) SaveOrUpdateBatch(facts []*domain.DailyFactRow) error {
	if len(facts) == 0 {
		return nil
	}

	for start := 0; start < len(facts); start += factBatchSize {
		end := start + factBatchSize
		if end > len(facts) {
			end = len(facts)
		}

		if err := r.saveChunk(facts[start:end]); err != nil {
			return err
		}
	}

	metrics.EntitiesUpserted.WithLabelValues("fact_row").Add(float64(len(facts)))

	return nil
}

func (r *factRepository) saveChunk(facts []*domain.DailyFactRow) error {
	query := squirrel.StatementBuilder.
		Insert("ad_daily_facts").
		Columns(
			"date", "account_id", "campaign_id", "ad_set_id", "ad_id",
			"impressions", "clicks", "link_clicks", "reach", "frequency", "spend",
			"purchases", "purchase_values", "leads", "lead_values",
			"registrations", "registration_values", "add_to_carts",
			"ctr", "cpc", "cpm", "cost_per_purchase", "purchase_roas",
		).
		PlaceholderFormat(squirrel.Dollar)

	for _, fact := range facts {
		query = query.Values(
			fact.Date,
			fact.AccountID,
			fact.CampaignID,
			fact.AdSetID,
			fact.AdID,
			fact.Impressions,
			fact.Clicks,
			fact.LinkClicks,
			fact.Reach,
			fact.Frequency,
			fact.Spend,
			fact.Purchases,
			fact.PurchaseValues,
			fact.Leads,
			fact.LeadValues,
			fact.Registrations,
			fact.RegistrationValues,
			fact.AddToCarts,
			fact.CTR,
			fact.CPC,
			fact.CPM,
			fact.CostPerPurchase,
			fact.PurchaseROAS,
		)
	}

	query = query.Suffix(`
		ON CONFLICT (ad_id, date) DO UPDATE SET
			account_id = EXCLUDED.account_id,
			campaign_id = EXCLUDED.campaign_id,
			ad_set_id = EXCLUDED.ad_set_id,
			impressions = EXCLUDED.impressions,
			clicks = EXCLUDED.clicks,
			link_clicks = EXCLUDED.link_clicks,
			reach = EXCLUDED.reach,
			frequency = EXCLUDED.frequency,
			spend = EXCLUDED.spend,
			purchases = EXCLUDED.purchases,
			purchase_values = EXCLUDED.purchase_values,
			leads = EXCLUDED.leads,
			lead_values = EXCLUDED.lead_values,
			registrations = EXCLUDED.registrations,
			registration_values = EXCLUDED.registration_values,
			add_to_carts = EXCLUDED.add_to_carts,
			ctr = EXCLUDED.ctr,
			cpc = EXCLUDED.cpc,
			cpm = EXCLUDED.cpm,
			cost_per_purchase = EXCLUDED.cost_per_purchase,
			purchase_roas = EXCLUDED.purchase_roas,
			updated_at = NOW()
	`)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(sqlQuery, args...); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *factRepository) GetByAccountAndDateRange(accountID, dateStart, dateEnd string) ([]*domain.DailyFactRow, error) {
	query, args, err := squirrel.
		Select(`adf.date, adf.account_id, adf.campaign_id, adf.ad_set_id, adf.ad_id,
			adf.impressions, adf.clicks, adf.link_clicks, adf.reach, adf.frequency, adf.spend,
			adf.purchases, adf.purchase_values, adf.leads, adf.lead_values,
			adf.registrations, adf.registration_values, adf.add_to_carts,
			adf.ctr, adf.cpc, adf.cpm, adf.cost_per_purchase, adf.purchase_roas`).
		From(adDailyFactsTable).
		Where(squirrel.Eq{"adf.account_id": accountID}).
		Where(squirrel.GtOrEq{"adf.date": dateStart}).
		Where(squirrel.LtOrEq{"adf.date": dateEnd}).
		OrderBy("adf.date ASC, adf.ad_id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	facts := make([]*domain.DailyFactRow, 0)

	for rows.Next() {
		fact := &domain.DailyFactRow{}
		if err := rows.Scan(
			&fact.Date,
			&fact.AccountID,
			&fact.CampaignID,
			&fact.AdSetID,
			&fact.AdID,
			&fact.Impressions,
			&fact.Clicks,
			&fact.LinkClicks,
			&fact.Reach,
			&fact.Frequency,
			&fact.Spend,
			&fact.Purchases,
			&fact.PurchaseValues,
			&fact.Leads,
			&fact.LeadValues,
			&fact.Registrations,
			&fact.RegistrationValues,
			&fact.AddToCarts,
			&fact.CTR,
			&fact.CPC,
			&fact.CPM,
			&fact.CostPerPurchase,
			&fact.PurchaseROAS,
		); err != nil {
			return nil, fmt.Errorf("erro ao deserializar linha de fato: %w", err)
		}

		facts = append(facts, fact)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return facts, nil
}
