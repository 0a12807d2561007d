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

type responseCampaigns struct {
	Data   []metadomain.RawCampaign `json:"data"`
	Paging metadomain.Paging        `json:"paging"`
}

// GetCampaigns lista todas as campanhas da conta, seguindo os cursores de
// paginação até esgotar
func (c *MetaClient) GetCampaigns(ctx context.Context) ([]metadomain.RawCampaign, error) {
	baseURL := fmt.Sprintf("%s/act_%s/campaigns", c.cfg.Meta.URL, c.externalID)

	params := url.Values{}
	params.Add("fields", "id,name,status,objective,daily_budget,lifetime_budget,created_time,updated_time")
	params.Add("limit", strconv.Itoa(c.cfg.Meta.PageSize))
	params.Add("access_token", c.accessToken)

	campaigns := make([]metadomain.RawCampaign, 0)
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

		var response responseCampaigns
		if err := json.Unmarshal(body, &response); err != nil {
			logrus.WithError(err).Error("Erro ao decodificar JSON")
			return nil, err
		}

		campaigns = append(campaigns, response.Data...)
		metrics.UpstreamPages.WithLabelValues("campaigns").Inc()
		pages++

		after = response.Paging.Cursors.After
		if after == "" || len(response.Data) == 0 {
			break
		}

		if c.cfg.Meta.MaxPagesPerResource > 0 && pages >= c.cfg.Meta.MaxPagesPerResource {
			logrus.WithFields(logrus.Fields{
				"external_id": c.externalID,
				"pages":       pages,
			}).Warn("Limite de páginas atingido ao listar campanhas")
			break
		}
	}

	return campaigns, nil
}

func cloneValues(values url.Values) url.Values {
	cloned := url.Values{}
	for key, list := range values {
		for _, value := range list {
			cloned.Add(key, value)
		}
	}
	return cloned
}
