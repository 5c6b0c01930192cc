package scheduler

import (
	"context"
	"errors"
	"testing"

	"github.com/ppcl2025/campaign-change-tracker/internal/config"
	"github.com/ppcl2025/campaign-change-tracker/internal/domain"
	"github.com/ppcl2025/campaign-change-tracker/internal/usecases/tracking"
	"github.com/ppcl2025/campaign-change-tracker/internal/usecases/tracking/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestParseTrackedScopes(t *testing.T) {
	tests := []struct {
		name     string
		entries  []string
		expected []domain.StorageScope
	}{
		{
			name:    "Conta e conta com campanha",
			entries: []string{"123", " 456:789 "},
			expected: []domain.StorageScope{
				{AccountID: "123"},
				{AccountID: "456", ScopeID: "789"},
			},
		},
		{
			name:    "Conta com nomes - deve preencher nomes da conta e da campanha",
			entries: []string{"123:987:Titan Realty:Central: Leads", "456::Acme Co"},
			expected: []domain.StorageScope{
				{AccountID: "123", ScopeID: "987", AccountName: "Titan Realty", ScopeName: "Central: Leads"},
				{AccountID: "456", AccountName: "Acme Co"},
			},
		},
		{
			name:     "Entradas vazias ou sem conta - devem ser ignoradas",
			entries:  []string{"", "  ", ":789"},
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseTrackedScopes(tt.entries))
		})
	}
}

func TestChangeTrackingSyncService_syncAllScopes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockTracker := mocks.NewMockTracker(ctrl)

	cfg := &config.Config{}
	cfg.ChangeTrackingSync.TrackedScopes = []string{"123", "456:789"}
	service := NewChangeTrackingSyncService(mockTracker, cfg)

	gomock.InOrder(
		mockTracker.EXPECT().
			Capture(gomock.Any(), tracking.CaptureRequest{Scope: domain.StorageScope{AccountID: "123"}}).
			Return(&tracking.CaptureResult{
				Key:      "123",
				Baseline: true,
				Changes:  domain.ChangeSet{domain.BudgetChange{EntityID: "C1", OldValue: 10, NewValue: 20, Delta: 10}},
			}, nil),
		mockTracker.EXPECT().
			Capture(gomock.Any(), tracking.CaptureRequest{Scope: domain.StorageScope{AccountID: "456", ScopeID: "789"}}).
			Return(nil, errors.New("ads indisponível")),
	)

	service.syncAllScopes(context.Background())

	status := service.GetStatus()
	results, ok := status["last_results"].(map[string]ScopeSyncResult)
	require.True(t, ok)
	require.Len(t, results, 2)

	assert.Equal(t, 1, results["123"].Changes)
	assert.True(t, results["123"].Baseline)
	assert.Empty(t, results["123"].Error)
	assert.Equal(t, "ads indisponível", results["456_789"].Error)
	assert.False(t, status["sync_running"].(bool))
}

func TestChangeTrackingSyncService_StartDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewChangeTrackingSyncService(mocks.NewMockTracker(ctrl), &config.Config{})

	assert.NoError(t, service.Start(context.Background()))
	assert.Equal(t, false, service.GetStatus()["sync_enabled"])
}
