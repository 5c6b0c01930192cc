package adsclient

import (
	"context"
	"net/http"
	"net/url"
	"path"

	"github.com/pkg/errors"
)

type EntitiesParams struct {
	AccountID  string
	CampaignID string
}

// EntitiesResponse traz os registros sem esquema fixo; a normalização fica com o rastreamento
type EntitiesResponse struct {
	Campaigns []map[string]any `json:"campaigns"`
	AdGroups  []map[string]any `json:"ad_groups"`
	Keywords  []map[string]any `json:"keywords"`
}

func (c *AdsClient) GetEntities(ctx context.Context, params EntitiesParams) (EntitiesResponse, error) {
	var response EntitiesResponse

	endpoint, err := url.Parse(c.config.BaseURL)
	if err != nil {
		return response, errors.Wrap(err, "erro ao analisar a URL base")
	}
	endpoint.Path = path.Join(endpoint.Path, "/v1/accounts", params.AccountID, "entities")

	if params.CampaignID != "" {
		query := endpoint.Query()
		query.Set("campaign_id", params.CampaignID)
		endpoint.RawQuery = query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return response, errors.Wrap(err, "erro ao criar a requisição")
	}

	if c.config.AccessToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.config.AccessToken)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return response, errors.Wrap(err, "erro ao executar a requisição")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return response, errors.Errorf("requisição falhou com status: %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return response, errors.Wrap(err, "erro ao decodificar a resposta")
	}

	return response, nil
}
