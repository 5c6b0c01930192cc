package ads

import (
	"context"
	"errors"
	"testing"

	"github.com/ppcl2025/campaign-change-tracker/infrastructure/integrator/ads/adsclient"
	"github.com/ppcl2025/campaign-change-tracker/infrastructure/integrator/ads/mocks"
	"github.com/ppcl2025/campaign-change-tracker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAdsService_FetchRecords(t *testing.T) {
	tests := []struct {
		name        string
		scope       domain.StorageScope
		setupMock   func(client *mocks.MockClient)
		expectError bool
		expected    domain.RawRecords
	}{
		{
			name:  "Conta com campanha - deve repassar os registros",
			scope: domain.StorageScope{AccountID: "123", ScopeID: "987"},
			setupMock: func(client *mocks.MockClient) {
				client.EXPECT().
					GetEntities(gomock.Any(), adsclient.EntitiesParams{AccountID: "123", CampaignID: "987"}).
					Return(adsclient.EntitiesResponse{
						Campaigns: []map[string]any{{"campaign_id": "987"}},
						Keywords:  []map[string]any{{"keyword_id": "K1", "ad_group_id": "AG1"}},
					}, nil)
			},
			expected: domain.RawRecords{
				Campaigns: []map[string]any{{"campaign_id": "987"}},
				Keywords:  []map[string]any{{"keyword_id": "K1", "ad_group_id": "AG1"}},
			},
		},
		{
			name:        "Sem account id - deve retornar erro sem chamar o cliente",
			scope:       domain.StorageScope{AccountName: "Titan"},
			setupMock:   func(client *mocks.MockClient) {},
			expectError: true,
		},
		{
			name:  "Erro no cliente - deve propagar o erro",
			scope: domain.StorageScope{AccountID: "123"},
			setupMock: func(client *mocks.MockClient) {
				client.EXPECT().GetEntities(gomock.Any(), gomock.Any()).Return(adsclient.EntitiesResponse{}, errors.New("503"))
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			client := mocks.NewMockClient(ctrl)
			tt.setupMock(client)

			records, err := New(client).FetchRecords(context.Background(), tt.scope)

			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, records)
		})
	}
}
