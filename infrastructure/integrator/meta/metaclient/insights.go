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

type responseInsights struct {
	Data   []metadomain.RawInsight `json:"data"`
	Paging metadomain.Paging       `json:"paging"`
}

// GetAllInsights busca as linhas brutas de performance da janela inteira,
// com quebra diária (time_increment=1), seguindo os cursores de paginação
// até esgotar. O rate limiter da credencial espaça as páginas; o tamanho de
// página vem da configuração. Falha aqui é fatal para a sincronização da
// conta: sem insights a execução não tem valor
func (c *MetaClient) GetAllInsights(ctx context.Context, filters metadomain.InsightFilters) ([]metadomain.RawInsight, error) {
	baseURL := fmt.Sprintf("%s/act_%s/insights", c.cfg.Meta.URL, c.externalID)

	level := filters.Level
	if level == "" {
		level = "ad"
	}

	timeRange := fmt.Sprintf("{\"since\":\"%s\",\"until\":\"%s\"}", filters.DateStart, filters.DateEnd)

	params := url.Values{}
	params.Add("fields", "date_start,date_stop,account_id,campaign_id,adset_id,ad_id,"+
		"impressions,clicks,inline_link_clicks,reach,frequency,spend,actions,action_values")
	params.Add("level", level)
	params.Add("time_range", timeRange)
	params.Add("time_increment", "1")
	params.Add("limit", strconv.Itoa(c.cfg.Meta.PageSize))
	params.Add("access_token", c.accessToken)

	insights := make([]metadomain.RawInsight, 0)
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

		var response responseInsights
		if err := json.Unmarshal(body, &response); err != nil {
			logrus.WithError(err).Error("Erro ao decodificar JSON")
			return nil, err
		}

		insights = append(insights, response.Data...)
		metrics.UpstreamPages.WithLabelValues("insights").Inc()
		pages++

		after = response.Paging.Cursors.After
		if after == "" || len(response.Data) == 0 {
			break
		}

		if c.cfg.Meta.MaxPagesPerResource > 0 && pages >= c.cfg.Meta.MaxPagesPerResource {
			logrus.WithFields(logrus.Fields{
				"external_id": c.externalID,
				"pages":       pages,
				"date_start":  filters.DateStart,
				"date_end":    filters.DateEnd,
			}).Warn("Limite de páginas atingido ao buscar insights")
			break
		}
	}

	logrus.WithFields(logrus.Fields{
		"external_id": c.externalID,
		"rows":        len(insights),
		"pages":       pages,
	}).Debug("Insights buscados do upstream")

	return insights, nil
}
