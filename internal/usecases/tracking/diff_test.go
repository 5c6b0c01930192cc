package tracking

import (
	"testing"
	"time"

	"github.com/ppcl2025/campaign-change-tracker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(f float64) *float64 { return &f }

func baseSnapshot() domain.Snapshot {
	return domain.Snapshot{
		AccountID: "123",
		Campaigns: []domain.CampaignState{
			{ID: "C1", Name: "Sellers", Status: "ENABLED", DailyBudget: 100, BiddingStrategy: "MAXIMIZE_CONVERSIONS"},
			{ID: "C2", Name: "Buyers", Status: "ENABLED", DailyBudget: 50, BiddingStrategy: "TARGET_CPA", TargetCPA: floatPtr(40)},
		},
		AdGroups: []domain.AdGroupState{
			{ID: "AG1", Name: "Cash", CampaignID: "C1", Status: "ENABLED", DefaultBid: 1.5},
			{ID: "AG2", Name: "Fast", CampaignID: "C1", Status: "ENABLED", DefaultBid: 1.0},
		},
		Keywords: []domain.KeywordState{
			{ID: "K1", Text: "cash buyer", AdGroupID: "AG1", CampaignID: "C1", MatchType: "PHRASE", Status: "ENABLED", Bid: 2},
			{ID: "K1", Text: "cash buyer", AdGroupID: "AG2", CampaignID: "C1", MatchType: "PHRASE", Status: "ENABLED", Bid: 2},
			{ID: "K3", Text: "we buy houses", AdGroupID: "AG1", CampaignID: "C1", MatchType: "BROAD", Status: "ENABLED"},
		},
		CapturedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func clone(s domain.Snapshot) domain.Snapshot {
	out := s
	out.Campaigns = append([]domain.CampaignState(nil), s.Campaigns...)
	out.AdGroups = append([]domain.AdGroupState(nil), s.AdGroups...)
	out.Keywords = append([]domain.KeywordState(nil), s.Keywords...)
	return out
}

func TestDiff_NoBaseline(t *testing.T) {
	changes := Diff(nil, baseSnapshot())

	assert.NotNil(t, changes)
	assert.Empty(t, changes)
}

func TestDiff_Idempotence(t *testing.T) {
	s := baseSnapshot()
	other := clone(s)
	other.CapturedAt = s.CapturedAt.Add(24 * time.Hour)
	other.CaptureID = "outro"

	assert.Empty(t, Diff(&s, s))
	assert.Empty(t, Diff(&s, other))
}

func TestDiff_Scenarios(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(s *domain.Snapshot)
		expected domain.ChangeSet
	}{
		{
			name: "Orçamento de 100 para 120 - deve gerar BudgetChange",
			mutate: func(s *domain.Snapshot) {
				s.Campaigns[0].DailyBudget = 120
			},
			expected: domain.ChangeSet{
				domain.BudgetChange{EntityID: "C1", EntityName: "Sellers", OldValue: 100, NewValue: 120, Delta: 20},
			},
		},
		{
			name: "Palavra-chave removida - deve gerar KeywordRemoved",
			mutate: func(s *domain.Snapshot) {
				s.Keywords = s.Keywords[1:]
			},
			expected: domain.ChangeSet{
				domain.KeywordRemoved{KeywordID: "K1", AdGroupID: "AG1", KeywordText: "cash buyer", MatchType: "PHRASE"},
			},
		},
		{
			name: "Palavra-chave nova - deve gerar KeywordAdded",
			mutate: func(s *domain.Snapshot) {
				s.Keywords = append(s.Keywords, domain.KeywordState{ID: "K2", Text: "sell fast", AdGroupID: "AG1", MatchType: "EXACT", Status: "ENABLED"})
			},
			expected: domain.ChangeSet{
				domain.KeywordAdded{KeywordID: "K2", AdGroupID: "AG1", KeywordText: "sell fast", MatchType: "EXACT"},
			},
		},
		{
			name: "Variação de 0.009 no orçamento - não deve gerar mudança",
			mutate: func(s *domain.Snapshot) {
				s.Campaigns[0].DailyBudget = 100.009
			},
			expected: domain.ChangeSet{},
		},
		{
			name: "Variação de 0.02 no orçamento - deve gerar exatamente uma mudança",
			mutate: func(s *domain.Snapshot) {
				s.Campaigns[0].DailyBudget = 100.02
			},
			expected: domain.ChangeSet{
				domain.BudgetChange{EntityID: "C1", EntityName: "Sellers", OldValue: 100, NewValue: 100.02, Delta: 0.02},
			},
		},
		{
			name: "Orçamento e status na mesma campanha - deve gerar um registro por categoria",
			mutate: func(s *domain.Snapshot) {
				s.Campaigns[0].DailyBudget = 80
				s.Campaigns[0].Status = "PAUSED"
			},
			expected: domain.ChangeSet{
				domain.BudgetChange{EntityID: "C1", EntityName: "Sellers", OldValue: 100, NewValue: 80, Delta: -20},
				domain.StatusChange{EntityKind: domain.EntityCampaign, EntityID: "C1", EntityName: "Sellers", OldStatus: "ENABLED", NewStatus: "PAUSED"},
			},
		},
		{
			name: "Estratégia e CPA alvo - deve gerar um único BiddingStrategyChange",
			mutate: func(s *domain.Snapshot) {
				s.Campaigns[1].BiddingStrategy = "MAXIMIZE_CONVERSIONS"
				s.Campaigns[1].TargetCPA = floatPtr(55)
				s.Campaigns[1].TargetROAS = floatPtr(3)
			},
			expected: domain.ChangeSet{
				domain.BiddingStrategyChange{
					CampaignID:    "C2",
					CampaignName:  "Buyers",
					OldStrategy:   "TARGET_CPA",
					NewStrategy:   "MAXIMIZE_CONVERSIONS",
					OldTargetCPA:  floatPtr(40),
					NewTargetCPA:  floatPtr(55),
					NewTargetROAS: floatPtr(3),
				},
			},
		},
		{
			name: "CPA alvo removido - deve gerar BiddingStrategyChange",
			mutate: func(s *domain.Snapshot) {
				s.Campaigns[1].TargetCPA = nil
			},
			expected: domain.ChangeSet{
				domain.BiddingStrategyChange{
					CampaignID:   "C2",
					CampaignName: "Buyers",
					OldStrategy:  "TARGET_CPA",
					NewStrategy:  "TARGET_CPA",
					OldTargetCPA: floatPtr(40),
				},
			},
		},
		{
			name: "Lance da palavra-chave - deve gerar KeywordBidChange apenas no grupo alterado",
			mutate: func(s *domain.Snapshot) {
				s.Keywords[1].Bid = 2.5
			},
			expected: domain.ChangeSet{
				domain.KeywordBidChange{KeywordID: "K1", AdGroupID: "AG2", KeywordText: "cash buyer", MatchType: "PHRASE", OldBid: 2, NewBid: 2.5, Delta: 0.5},
			},
		},
		{
			name: "Lance passando a herdar do grupo - não deve gerar mudança de lance",
			mutate: func(s *domain.Snapshot) {
				s.Keywords[0].Bid = 0
				s.Keywords[2].Bid = 3
			},
			expected: domain.ChangeSet{},
		},
		{
			name: "Status de grupo e palavra-chave - deve gerar StatusChange por entidade",
			mutate: func(s *domain.Snapshot) {
				s.AdGroups[1].Status = "PAUSED"
				s.Keywords[2].Status = "PAUSED"
			},
			expected: domain.ChangeSet{
				domain.StatusChange{EntityKind: domain.EntityAdGroup, EntityID: "AG2", EntityName: "Fast", OldStatus: "ENABLED", NewStatus: "PAUSED"},
				domain.StatusChange{EntityKind: domain.EntityKeyword, EntityID: "K3/AG1", EntityName: "we buy houses", OldStatus: "ENABLED", NewStatus: "PAUSED"},
			},
		},
		{
			name: "Campanha e grupo novos e removidos - deve gerar EntityAdded e EntityRemoved",
			mutate: func(s *domain.Snapshot) {
				s.Campaigns = append(s.Campaigns[:1], domain.CampaignState{ID: "C3", Name: "Probate"})
				s.AdGroups = append(s.AdGroups, domain.AdGroupState{ID: "AG3", Name: "Heirs"})
			},
			expected: domain.ChangeSet{
				domain.EntityRemoved{EntityKind: domain.EntityCampaign, EntityID: "C2", EntityName: "Buyers"},
				domain.EntityAdded{EntityKind: domain.EntityCampaign, EntityID: "C3", EntityName: "Probate"},
				domain.EntityAdded{EntityKind: domain.EntityAdGroup, EntityID: "AG3", EntityName: "Heirs"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			old := baseSnapshot()
			current := clone(old)
			tt.mutate(&current)

			assert.Equal(t, tt.expected, Diff(&old, current))
		})
	}
}

func TestDiff_AddRemoveSymmetry(t *testing.T) {
	a := baseSnapshot()
	b := clone(a)
	b.Keywords = append(b.Keywords[1:], domain.KeywordState{ID: "K9", Text: "sell my house", AdGroupID: "AG2", MatchType: "EXACT"})

	forward := Diff(&a, b)
	backward := Diff(&b, a)

	added := forward.OfKind(domain.ChangeKeywordAdded)
	removed := backward.OfKind(domain.ChangeKeywordRemoved)
	require.Len(t, added, 1)
	require.Len(t, removed, 1)
	assert.Equal(t, domain.KeywordAdded(removed[0].(domain.KeywordRemoved)), added[0])

	removedForward := forward.OfKind(domain.ChangeKeywordRemoved)
	addedBackward := backward.OfKind(domain.ChangeKeywordAdded)
	require.Len(t, removedForward, 1)
	require.Len(t, addedBackward, 1)
	assert.Equal(t, domain.KeywordRemoved(addedBackward[0].(domain.KeywordAdded)), removedForward[0])
}

func TestDiff_DeterministicOrdering(t *testing.T) {
	a := baseSnapshot()
	b := clone(a)
	b.Campaigns[0].DailyBudget = 150
	b.Campaigns[1].Status = "PAUSED"
	b.AdGroups[0].Status = "REMOVED"
	b.Keywords[0].Bid = 3
	b.Keywords = append(b.Keywords, domain.KeywordState{ID: "K0", Text: "house buyer", AdGroupID: "AG1"})

	// ordem das coleções de entrada não deve alterar a saída
	reversed := clone(b)
	for i, j := 0, len(reversed.Keywords)-1; i < j; i, j = i+1, j-1 {
		reversed.Keywords[i], reversed.Keywords[j] = reversed.Keywords[j], reversed.Keywords[i]
	}
	reversed.Campaigns[0], reversed.Campaigns[1] = reversed.Campaigns[1], reversed.Campaigns[0]

	first := Diff(&a, b)
	second := Diff(&a, b)
	third := Diff(&a, reversed)

	assert.Equal(t, first, second)
	assert.Equal(t, first, third)

	var kinds []domain.EntityKind
	for _, c := range first {
		kinds = append(kinds, c.Entity())
	}
	assert.Equal(t, []domain.EntityKind{
		domain.EntityCampaign,
		domain.EntityCampaign,
		domain.EntityAdGroup,
		domain.EntityKeyword,
		domain.EntityKeyword,
	}, kinds)
}
