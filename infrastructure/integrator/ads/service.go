package ads

import (
	"context"

	"github.com/pkg/errors"
	"github.com/ppcl2025/campaign-change-tracker/infrastructure/integrator/ads/adsclient"
	"github.com/ppcl2025/campaign-change-tracker/internal/domain"
	"github.com/sirupsen/logrus"
)

type AdsIntegrator interface {
	FetchRecords(ctx context.Context, scope domain.StorageScope) (domain.RawRecords, error)
}

type AdsService struct {
	Client adsclient.Client
}

func New(client adsclient.Client) AdsIntegrator {
	return &AdsService{
		Client: client,
	}
}

// FetchRecords busca campanhas, grupos de anúncios e palavras-chave do escopo
func (s *AdsService) FetchRecords(ctx context.Context, scope domain.StorageScope) (domain.RawRecords, error) {
	if scope.AccountID == "" {
		return domain.RawRecords{}, errors.New("account id é obrigatório para buscar registros")
	}

	resp, err := s.Client.GetEntities(ctx, adsclient.EntitiesParams{
		AccountID:  scope.AccountID,
		CampaignID: scope.ScopeID,
	})
	if err != nil {
		return domain.RawRecords{}, errors.Wrapf(err, "erro ao buscar registros da conta %s", scope.AccountID)
	}

	logrus.WithFields(logrus.Fields{
		"account_id":  scope.AccountID,
		"campaign_id": scope.ScopeID,
		"campaigns":   len(resp.Campaigns),
		"ad_groups":   len(resp.AdGroups),
		"keywords":    len(resp.Keywords),
	}).Debug("Registros obtidos do serviço de anúncios")

	return domain.RawRecords{
		Campaigns: resp.Campaigns,
		AdGroups:  resp.AdGroups,
		Keywords:  resp.Keywords,
	}, nil
}
