package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/traffic-sync-engine/infrastructure/database/postgres"
	"github.com/vfg2006/traffic-sync-engine/internal/domain"
	"github.com/vfg2006/traffic-sync-engine/pkg/metrics"
)

// EntityRepository grava os registros estruturais (campanha, conjunto,
// anúncio) espelhados do upstream. A ordem de escrita campanha -> conjunto
// -> anúncio é responsabilidade do orquestrador; aqui cada upsert é
// idempotente pela chave natural (id)
type EntityRepository interface {
	SaveOrUpdateCampaigns(campaigns []*domain.Campaign) error
	SaveOrUpdateAdSets(adSets []*domain.AdSet) error
	SaveOrUpdateAds(ads []*domain.Ad) error
}

type entityRepository struct {
	conn *postgres.Connection
}

func NewEntityRepository(conn *postgres.Connection) EntityRepository {
	return &entityRepository{
		conn: conn,
	}
}

func (r *entityRepository) SaveOrUpdateCampaigns(campaigns []*domain.Campaign) error {
	if len(campaigns) == 0 {
		return nil
	}

	query := squirrel.StatementBuilder.
		Insert("campaigns").
		Columns("id", "account_id", "name", "status", "objective", "daily_budget", "lifetime_budget", "created_time", "updated_time").
		PlaceholderFormat(squirrel.Dollar)

	for _, campaign := range campaigns {
		query = query.Values(
			campaign.ID,
			campaign.AccountID,
			campaign.Name,
			campaign.Status,
			campaign.Objective,
			campaign.DailyBudget,
			campaign.LifetimeBudget,
			campaign.CreatedTime,
			campaign.UpdatedTime,
		)
	}

	query = query.Suffix(`
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			status = EXCLUDED.status,
			objective = EXCLUDED.objective,
			daily_budget = EXCLUDED.daily_budget,
			lifetime_budget = EXCLUDED.lifetime_budget,
			updated_time = EXCLUDED.updated_time
	`)

	if err := r.execBatch(query); err != nil {
		return fmt.Errorf("erro ao gravar campanhas: %w", err)
	}

	metrics.EntitiesUpserted.WithLabelValues("campaign").Add(float64(len(campaigns)))

	return nil
}

func (r *entityRepository) SaveOrUpdateAdSets(adSets []*domain.AdSet) error {
	if len(adSets) == 0 {
		return nil
	}

	query := squirrel.StatementBuilder.
		Insert("ad_sets").
		Columns("id", "campaign_id", "account_id", "name", "status", "daily_budget", "lifetime_budget", "created_time", "updated_time").
		PlaceholderFormat(squirrel.Dollar)

	for _, adSet := range adSets {
		query = query.Values(
			adSet.ID,
			adSet.CampaignID,
			adSet.AccountID,
			adSet.Name,
			adSet.Status,
			adSet.DailyBudget,
			adSet.LifetimeBudget,
			adSet.CreatedTime,
			adSet.UpdatedTime,
		)
	}

	query = query.Suffix(`
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			status = EXCLUDED.status,
			daily_budget = EXCLUDED.daily_budget,
			lifetime_budget = EXCLUDED.lifetime_budget,
			updated_time = EXCLUDED.updated_time
	`)

	if err := r.execBatch(query); err != nil {
		return fmt.Errorf("erro ao gravar conjuntos de anúncios: %w", err)
	}

	metrics.EntitiesUpserted.WithLabelValues("ad_set").Add(float64(len(adSets)))

	return nil
}

func (r *entityRepository) SaveOrUpdateAds(ads []*domain.Ad) error {
	if len(ads) == 0 {
		return nil
	}

	query := squirrel.StatementBuilder.
		Insert("ads").
		Columns("id", "ad_set_id", "campaign_id", "account_id", "name", "status", "creative_id", "created_time", "updated_time").
		PlaceholderFormat(squirrel.Dollar)

	for _, ad := range ads {
		query = query.Values(
			ad.ID,
			ad.AdSetID,
			ad.CampaignID,
			ad.AccountID,
			ad.Name,
			ad.Status,
			ad.CreativeID,
			ad.CreatedTime,
			ad.UpdatedTime,
		)
	}

	query = query.Suffix(`
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			status = EXCLUDED.status,
			creative_id = EXCLUDED.creative_id,
			updated_time = EXCLUDED.updated_time
	`)

	if err := r.execBatch(query); err != nil {
		return fmt.Errorf("erro ao gravar anúncios: %w", err)
	}

	metrics.EntitiesUpserted.WithLabelValues("ad").Add(float64(len(ads)))

	return nil
}

func (r *entityRepository) execBatch(query squirrel.InsertBuilder) error {
	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	if _, err := r.conn.Exec(sqlQuery, args...); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}
