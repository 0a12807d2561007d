package metaclient

import (
	"context"
	"fmt"
	"net/url"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/traffic-sync-engine/infrastructure/integrator/meta/domain"
)

// GetAccountInfo busca os metadados da conta de anúncio. Falha aqui é fatal
// para a sincronização da conta: sem os metadados não há estágio 1
func (c *MetaClient) GetAccountInfo(ctx context.Context) (*metadomain.AccountInfo, error) {
	baseURL := fmt.Sprintf("%s/act_%s", c.cfg.Meta.URL, c.externalID)

	params := url.Values{}
	params.Add("fields", "id,name,currency,timezone_name,account_status")
	params.Add("access_token", c.accessToken)

	body, err := c.doGet(ctx, baseURL+"?"+params.Encode())
	if err != nil {
		return nil, err
	}

	info := &metadomain.AccountInfo{}
	if err := json.Unmarshal(body, info); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, err
	}

	return info, nil
}
