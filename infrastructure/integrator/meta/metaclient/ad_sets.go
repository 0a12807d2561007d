package metaclient

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/traffic-sync-engine/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/traffic-sync-engine/pkg/metrics"
)

type responseAdSets struct {
	Data   []metadomain.RawAdSet `json:"data"`
	Paging metadomain.Paging     `json:"paging"`
}

// GetAdSets lista os conjuntos de anúncios de uma campanha, seguindo os
// cursores de paginação até esgotar
func (c *MetaClient) GetAdSets(ctx context.Context, campaignID string) ([]metadomain.RawAdSet, error) {
	baseURL := fmt.Sprintf("%s/%s/adsets", c.cfg.Meta.URL, campaignID)

	params := url.Values{}
	params.Add("fields", "id,campaign_id,name,status,daily_budget,lifetime_budget,created_time,updated_time")
	params.Add("limit", strconv.Itoa(c.cfg.Meta.PageSize))
	params.Add("access_token", c.accessToken)

	adSets := make([]metadomain.RawAdSet, 0)
	after := ""
	pages := 0

	for {
		pageParams := cloneValues(params)
		if after != "" {
			pageParams.Set("after", after)
		}

		body, err := c.doGet(ctx, baseURL+"?"+pageParams.Encode())
		if err != nil {
			return nil, err
		}

		var response responseAdSets
		if err := json.Unmarshal(body, &response); err != nil {
			logrus.WithError(err).Error("Erro ao decodificar JSON")
			return nil, err
		}

		adSets = append(adSets, response.Data...)
		metrics.UpstreamPages.WithLabelValues("ad_sets").Inc()
		pages++

		after = response.Paging.Cursors.After
		if after == "" || len(response.Data) == 0 {
			break
		}

		if c.cfg.Meta.MaxPagesPerResource > 0 && pages >= c.cfg.Meta.MaxPagesPerResource {
			logrus.WithFields(logrus.Fields{
				"campaign_id": campaignID,
				"pages":       pages,
			}).Warn("Limite de páginas atingido ao listar conjuntos de anúncios")
			break
		}
	}

	return adSets, nil
}
