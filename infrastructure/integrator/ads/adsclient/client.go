package adsclient

import (
	"context"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/ppcl2025/campaign-change-tracker/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Client interface {
	GetEntities(ctx context.Context, params EntitiesParams) (EntitiesResponse, error)
}

type AdsClient struct {
	httpClient *http.Client
	config     *config.Ads
}

// NewClient cria o cliente HTTP do serviço de dados de anúncios
func NewClient(cfg *config.Ads) Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &AdsClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		config: cfg,
	}
}
