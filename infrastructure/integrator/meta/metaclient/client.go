package metaclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/traffic-sync-engine/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/traffic-sync-engine/internal/config"
	"golang.org/x/time/rate"
)

// Páginas de insights podem ser grandes; jsoniter decodifica mais rápido que
// a stdlib mantendo compatibilidade
var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrCredentialExpired indica token expirado ou revogado no upstream.
// A conta precisa de rotação de credencial antes da próxima sincronização
var ErrCredentialExpired = errors.New("credencial da conta expirada ou revogada no upstream")

// ErrRateLimited indica throttling do upstream mesmo após o rate limit local
var ErrRateLimited = errors.New("limite de requisições do upstream atingido")

// Client é o contrato do cliente upstream, escopado à credencial de UMA
// conta. Listagens (campanhas, conjuntos, anúncios) seguem cursores de
// paginação até esgotar; GetAllInsights adicionalmente limita o tamanho de
// página e espaça requisições para respeitar o rate limit da credencial
type Client interface {
	GetAccountInfo(ctx context.Context) (*metadomain.AccountInfo, error)
	GetCampaigns(ctx context.Context) ([]metadomain.RawCampaign, error)
	GetAdSets(ctx context.Context, campaignID string) ([]metadomain.RawAdSet, error)
	GetAds(ctx context.Context, adSetID string) ([]metadomain.RawAd, error)
	GetAllInsights(ctx context.Context, filters metadomain.InsightFilters) ([]metadomain.RawInsight, error)
}

// Factory constrói um Client por conta, imediatamente após a decriptação da
// credencial. O token vive apenas no client construído
type Factory interface {
	ForAccount(externalID, accessToken string) Client
}

type clientFactory struct {
	cfg *config.Config
}

func NewFactory(cfg *config.Config) Factory {
	return &clientFactory{cfg: cfg}
}

func (f *clientFactory) ForAccount(externalID, accessToken string) Client {
	return &MetaClient{
		cfg:         f.cfg,
		externalID:  externalID,
		accessToken: accessToken,
		httpClient: &http.Client{
			Timeout: time.Duration(f.cfg.Meta.TimeoutSeconds) * time.Second,
		},
		// Rate limit por credencial: o limite de uma conta não se soma ao de outra
		limiter: rate.NewLimiter(rate.Limit(f.cfg.Meta.RequestsPerSecond), 1),
	}
}

type MetaClient struct {
	cfg         *config.Config
	externalID  string
	accessToken string
	httpClient  *http.Client
	limiter     *rate.Limiter
}

// doGet executa uma requisição GET respeitando o rate limiter da credencial,
// com uma retentativa para erros de transporte (leituras são idempotentes)
func (c *MetaClient) doGet(ctx context.Context, url string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	body, err := c.tryGet(ctx, url)
	if err == nil {
		return body, nil
	}

	// Erros de credencial e de rate limit não são transitórios
	if errors.Is(err, ErrCredentialExpired) || errors.Is(err, ErrRateLimited) {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"external_id": c.externalID,
		"error":       err.Error(),
	}).Warn("Erro de transporte na requisição ao upstream, tentando novamente")

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	return c.tryGet(ctx, url)
}

func (c *MetaClient) tryGet(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao fazer a requisição: %w", err)
	}
	defer resp.Body.Close()

	return c.handleResponse(resp)
}

// handleResponse lê o corpo e traduz erros da API em erros tipados
func (c *MetaClient) handleResponse(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler o corpo da resposta: %w", err)
	}

	if resp.StatusCode == http.StatusOK {
		return body, nil
	}

	var errorResponse metadomain.ErrorResponse
	if err := json.Unmarshal(body, &errorResponse); err == nil {
		if errorResponse.IsTokenExpired() {
			return nil, fmt.Errorf("%w (code: %d)", ErrCredentialExpired, errorResponse.Error.Code)
		}

		if errorResponse.IsRateLimited() {
			return nil, fmt.Errorf("%w (code: %d)", ErrRateLimited, errorResponse.Error.Code)
		}

		return nil, fmt.Errorf("erro da API upstream: %s (code: %d, fbtrace_id: %s)",
			errorResponse.Error.Message, errorResponse.Error.Code, errorResponse.Error.FBTraceID)
	}

	return nil, fmt.Errorf("resposta inesperada do upstream: status %d", resp.StatusCode)
}
