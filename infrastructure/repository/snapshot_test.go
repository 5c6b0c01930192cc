package repository

import (
	"errors"
	"testing"
	"time"

	"github.com/ppcl2025/campaign-change-tracker/infrastructure/storage"
	"github.com/ppcl2025/campaign-change-tracker/infrastructure/storage/file"
	"github.com/ppcl2025/campaign-change-tracker/infrastructure/storage/mocks"
	"github.com/ppcl2025/campaign-change-tracker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func floatPtr(f float64) *float64 { return &f }

func intPtr(i int) *int { return &i }

func sampleSnapshot() domain.Snapshot {
	return domain.Snapshot{
		AccountID:    "123-456-7890",
		CampaignID:   "987",
		AccountName:  "Titan Realty",
		CampaignName: "Central",
		CaptureID:    "abc123DEF456",
		Campaigns: []domain.CampaignState{
			{
				ID:              "987",
				Name:            "Central",
				Status:          "ENABLED",
				DailyBudget:     100,
				BiddingStrategy: "TARGET_CPA",
				IsSmartBidding:  true,
				TargetCPA:       floatPtr(45.5),
				ChannelType:     "SEARCH",
				StartDate:       "2025-01-01",
			},
		},
		AdGroups: []domain.AdGroupState{
			{ID: "AG1", Name: "Sellers", CampaignID: "987", Status: "ENABLED", DefaultBid: 1.25},
		},
		Keywords: []domain.KeywordState{
			{ID: "K1", Text: "cash buyer", AdGroupID: "AG1", CampaignID: "987", MatchType: "PHRASE", Status: "ENABLED", Bid: 2.5, QualityScore: intPtr(7)},
			{ID: "K2", Text: "sell fast", AdGroupID: "AG1", CampaignID: "987", MatchType: "EXACT", Status: "PAUSED"},
		},
		CapturedAt: time.Date(2025, 1, 6, 10, 30, 0, 0, time.UTC),
	}
}

func TestSnapshotRepository_RoundTrip(t *testing.T) {
	repo := NewSnapshotRepository(file.NewStore(t.TempDir(), ".json"))
	snapshot := sampleSnapshot()

	require.True(t, repo.Save("Titan_Realty_Central", snapshot))

	loaded, ok := repo.Load("Titan_Realty_Central")
	require.True(t, ok)
	assert.Equal(t, snapshot, *loaded)
}

func TestSnapshotRepository_SaveOverwrites(t *testing.T) {
	repo := NewSnapshotRepository(file.NewStore(t.TempDir(), ".json"))

	first := sampleSnapshot()
	second := sampleSnapshot()
	second.Campaigns[0].DailyBudget = 150
	second.CaptureID = "segunda"

	require.True(t, repo.Save("acct", first))
	require.True(t, repo.Save("acct", second))

	loaded, ok := repo.Load("acct")
	require.True(t, ok)
	assert.Equal(t, 150.0, loaded.Campaigns[0].DailyBudget)
	assert.Equal(t, "segunda", loaded.CaptureID)
}

func TestSnapshotRepository_Load(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(store *mocks.MockStore)
	}{
		{
			name: "Chave inexistente - deve retornar nil",
			setupMock: func(store *mocks.MockStore) {
				store.EXPECT().Get("acct").Return(nil, storage.ErrNotFound)
			},
		},
		{
			name: "Conteúdo corrompido - deve tratar como inexistente",
			setupMock: func(store *mocks.MockStore) {
				store.EXPECT().Get("acct").Return([]byte(`{"account_id": "123", "campaigns": [`), nil)
			},
		},
		{
			name: "Falha de leitura - deve tratar como inexistente",
			setupMock: func(store *mocks.MockStore) {
				store.EXPECT().Get("acct").Return(nil, errors.New("permission denied"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := mocks.NewMockStore(ctrl)
			tt.setupMock(store)

			snapshot, ok := NewSnapshotRepository(store).Load("acct")

			assert.False(t, ok)
			assert.Nil(t, snapshot)
		})
	}
}

func TestSnapshotRepository_SaveFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mocks.NewMockStore(ctrl)
	store.EXPECT().Put("acct", gomock.Any()).Return(errors.New("disk full"))

	assert.False(t, NewSnapshotRepository(store).Save("acct", sampleSnapshot()))
}
