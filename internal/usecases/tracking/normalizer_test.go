package tracking

import (
	"testing"
	"time"

	"github.com/ppcl2025/campaign-change-tracker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_Defaults(t *testing.T) {
	capturedAt := time.Date(2025, 1, 6, 12, 0, 0, 0, time.UTC)
	scope := domain.StorageScope{AccountID: "123", AccountName: "Titan Realty"}

	snapshot := Normalize(scope, domain.RawRecords{
		Campaigns: []map[string]any{{"campaign_id": "C1"}},
		AdGroups:  []map[string]any{{"ad_group_id": "AG1"}},
		Keywords:  []map[string]any{{"keyword_id": "K1", "ad_group_id": "AG1"}},
	}, capturedAt)

	assert.Equal(t, "123", snapshot.AccountID)
	assert.Equal(t, "Titan Realty", snapshot.AccountName)
	assert.Equal(t, capturedAt, snapshot.CapturedAt)
	assert.Empty(t, snapshot.CaptureID)

	require.Len(t, snapshot.Campaigns, 1)
	assert.Equal(t, domain.CampaignState{ID: "C1"}, snapshot.Campaigns[0])
	require.Len(t, snapshot.AdGroups, 1)
	assert.Equal(t, domain.AdGroupState{ID: "AG1"}, snapshot.AdGroups[0])
	require.Len(t, snapshot.Keywords, 1)
	assert.Equal(t, domain.KeywordState{ID: "K1", AdGroupID: "AG1"}, snapshot.Keywords[0])
}

func TestNormalize_EmptyInput(t *testing.T) {
	snapshot := Normalize(domain.StorageScope{AccountID: "123"}, domain.RawRecords{}, time.Time{})

	assert.NotNil(t, snapshot.Campaigns)
	assert.NotNil(t, snapshot.AdGroups)
	assert.NotNil(t, snapshot.Keywords)
	assert.Empty(t, snapshot.Campaigns)
}

func TestNormalize_Campaign(t *testing.T) {
	tests := []struct {
		name     string
		raw      map[string]any
		expected domain.CampaignState
	}{
		{
			name: "Valores em micros - deve converter para unidade de moeda",
			raw: map[string]any{
				"campaign_id":       int64(987),
				"campaign_name":     "Central",
				"status":            "ENABLED",
				"budget_micros":     int64(125_500_000),
				"bidding_strategy":  "TARGET_CPA",
				"is_smart_bidding":  "true",
				"target_cpa_micros": "45000000",
				"channel_type":      "SEARCH",
			},
			expected: domain.CampaignState{
				ID:              "987",
				Name:            "Central",
				Status:          "ENABLED",
				DailyBudget:     125.5,
				BiddingStrategy: "TARGET_CPA",
				IsSmartBidding:  true,
				TargetCPA:       floatPtr(45),
				ChannelType:     "SEARCH",
			},
		},
		{
			name: "Campo em moeda presente - deve ter prioridade sobre micros",
			raw: map[string]any{
				"id":            "C1",
				"name":          "Sellers",
				"budget":        "80.25",
				"budget_micros": 1,
				"target_roas":   3.5,
				"start_date":    "2025-01-01",
				"end_date":      nil,
			},
			expected: domain.CampaignState{
				ID:          "C1",
				Name:        "Sellers",
				DailyBudget: 80.25,
				TargetROAS:  floatPtr(3.5),
				StartDate:   "2025-01-01",
			},
		},
		{
			name: "Tipos inválidos - deve usar valores padrão",
			raw: map[string]any{
				"campaign_id":      "C2",
				"budget":           "muito",
				"is_smart_bidding": []string{"x"},
				"target_cpa":       "n/a",
			},
			expected: domain.CampaignState{ID: "C2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snapshot := Normalize(domain.StorageScope{AccountID: "123"}, domain.RawRecords{
				Campaigns: []map[string]any{tt.raw},
			}, time.Time{})

			require.Len(t, snapshot.Campaigns, 1)
			assert.Equal(t, tt.expected, snapshot.Campaigns[0])
		})
	}
}

func TestNormalize_KeywordsAndAdGroups(t *testing.T) {
	snapshot := Normalize(domain.StorageScope{AccountID: "123"}, domain.RawRecords{
		AdGroups: []map[string]any{
			{"ad_group_id": "AG1", "ad_group_name": "Cash", "campaign_id": "C1", "status": "ENABLED", "cpc_bid_micros": 1_500_000},
		},
		Keywords: []map[string]any{
			{"keyword_id": "K1", "keyword_text": "cash buyer", "ad_group_id": "AG1", "campaign_id": "C1", "match_type": "PHRASE", "status": "ENABLED", "cpc_bid": 2.25, "quality_score": "7"},
			{"keyword_id": "K1", "keyword_text": "cash buyer", "ad_group_id": "AG2", "match_type": "PHRASE"},
		},
	}, time.Time{})

	require.Len(t, snapshot.AdGroups, 1)
	assert.Equal(t, domain.AdGroupState{ID: "AG1", Name: "Cash", CampaignID: "C1", Status: "ENABLED", DefaultBid: 1.5}, snapshot.AdGroups[0])

	require.Len(t, snapshot.Keywords, 2)
	quality := 7
	assert.Equal(t, domain.KeywordState{
		ID:           "K1",
		Text:         "cash buyer",
		AdGroupID:    "AG1",
		CampaignID:   "C1",
		MatchType:    "PHRASE",
		Status:       "ENABLED",
		Bid:          2.25,
		QualityScore: &quality,
	}, snapshot.Keywords[0])
	assert.Equal(t, "AG2", snapshot.Keywords[1].AdGroupID)
	assert.Nil(t, snapshot.Keywords[1].QualityScore)
}

func TestNormalize_SkipsMissingAndDuplicateIdentities(t *testing.T) {
	snapshot := Normalize(domain.StorageScope{AccountID: "123"}, domain.RawRecords{
		Campaigns: []map[string]any{
			{"campaign_id": "C1", "budget": 10},
			{"campaign_name": "sem id"},
			{"campaign_id": "C1", "budget": 99},
		},
		Keywords: []map[string]any{
			{"keyword_id": "K1", "ad_group_id": "AG1", "cpc_bid": 1},
			{"keyword_id": "K1", "ad_group_id": "AG1", "cpc_bid": 5},
			{"keyword_text": "sem id"},
		},
	}, time.Time{})

	require.Len(t, snapshot.Campaigns, 1)
	assert.Equal(t, 10.0, snapshot.Campaigns[0].DailyBudget)
	require.Len(t, snapshot.Keywords, 1)
	assert.Equal(t, 1.0, snapshot.Keywords[0].Bid)
}
