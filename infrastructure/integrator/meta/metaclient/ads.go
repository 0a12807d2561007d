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

type responseAds struct {
	Data   []metadomain.RawAd `json:"data"`
	Paging metadomain.Paging  `json:"paging"`
}

// GetAds lista os anúncios de um conjunto, seguindo os cursores de
// paginação até esgotar
func (c *MetaClient) GetAds(ctx context.Context, adSetID string) ([]metadomain.RawAd, error) {
	baseURL := fmt.Sprintf("%s/%s/ads", c.cfg.Meta.URL, adSetID)

	params := url.Values{}
	params.Add("fields", "id,adset_id,campaign_id,name,status,creative{id},created_time,updated_time")
	params.Add("limit", strconv.Itoa(c.cfg.Meta.PageSize))
	params.Add("access_token", c.accessToken)

	ads := make([]metadomain.RawAd, 0)
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

		var response responseAds
		if err := json.Unmarshal(body, &response); err != nil {
			logrus.WithError(err).Error("Erro ao decodificar JSON")
			return nil, err
		}

		ads = append(ads, response.Data...)
		metrics.UpstreamPages.WithLabelValues("ads").Inc()
		pages++

		after = response.Paging.Cursors.After
		if after == "" || len(response.Data) == 0 {
			break
		}

		if c.cfg.Meta.MaxPagesPerResource > 0 && pages >= c.cfg.Meta.MaxPagesPerResource {
			logrus.WithFields(logrus.Fields{
				"ad_set_id": adSetID,
				"pages":     pages,
			}).Warn("Limite de páginas atingido ao listar anúncios")
			break
		}
	}

	return ads, nil
}
