package tracking

import (
	"math"
	"sort"

	"github.com/ppcl2025/campaign-change-tracker/internal/domain"
	"github.com/ppcl2025/campaign-change-tracker/pkg/utils"
)

// Tolerance é a diferença mínima (em unidade de moeda) considerada mudança
const Tolerance = 0.01

func moneyChanged(old, new float64) bool {
	return math.Abs(old-new) > Tolerance
}

func optionalChanged(old, new *float64) bool {
	if old == nil || new == nil {
		return (old == nil) != (new == nil)
	}
	return moneyChanged(*old, *new)
}

// Diff compara dois snapshots pela identidade das entidades.
// Sem snapshot anterior não há base de comparação e o resultado é vazio.
func Diff(old *domain.Snapshot, new domain.Snapshot) domain.ChangeSet {
	if old == nil {
		return domain.ChangeSet{}
	}

	changes := domain.ChangeSet{}
	changes = append(changes, diffCampaigns(old.Campaigns, new.Campaigns)...)
	changes = append(changes, diffAdGroups(old.AdGroups, new.AdGroups)...)
	changes = append(changes, diffKeywords(old.Keywords, new.Keywords)...)

	sort.SliceStable(changes, func(i, j int) bool {
		a, b := changes[i], changes[j]
		if a.Entity().Rank() != b.Entity().Rank() {
			return a.Entity().Rank() < b.Entity().Rank()
		}
		if a.IdentityKey() != b.IdentityKey() {
			return a.IdentityKey() < b.IdentityKey()
		}
		return a.Kind().Rank() < b.Kind().Rank()
	})

	return changes
}

func diffCampaigns(old, new []domain.CampaignState) domain.ChangeSet {
	var changes domain.ChangeSet

	oldByID := make(map[string]domain.CampaignState, len(old))
	for _, c := range old {
		oldByID[c.ID] = c
	}
	newByID := make(map[string]domain.CampaignState, len(new))
	for _, c := range new {
		newByID[c.ID] = c
	}

	for _, current := range new {
		previous, ok := oldByID[current.ID]
		if !ok {
			changes = append(changes, domain.EntityAdded{
				EntityKind: domain.EntityCampaign,
				EntityID:   current.ID,
				EntityName: current.Name,
			})
			continue
		}

		if moneyChanged(previous.DailyBudget, current.DailyBudget) {
			changes = append(changes, domain.BudgetChange{
				EntityID:   current.ID,
				EntityName: previous.Name,
				OldValue:   previous.DailyBudget,
				NewValue:   current.DailyBudget,
				Delta:      utils.RoundCents(current.DailyBudget - previous.DailyBudget),
			})
		}

		if previous.Status != current.Status {
			changes = append(changes, domain.StatusChange{
				EntityKind: domain.EntityCampaign,
				EntityID:   current.ID,
				EntityName: previous.Name,
				OldStatus:  previous.Status,
				NewStatus:  current.Status,
			})
		}

		if previous.BiddingStrategy != current.BiddingStrategy ||
			optionalChanged(previous.TargetCPA, current.TargetCPA) ||
			optionalChanged(previous.TargetROAS, current.TargetROAS) {
			changes = append(changes, domain.BiddingStrategyChange{
				CampaignID:    current.ID,
				CampaignName:  previous.Name,
				OldStrategy:   previous.BiddingStrategy,
				NewStrategy:   current.BiddingStrategy,
				OldTargetCPA:  previous.TargetCPA,
				NewTargetCPA:  current.TargetCPA,
				OldTargetROAS: previous.TargetROAS,
				NewTargetROAS: current.TargetROAS,
			})
		}
	}

	for _, previous := range old {
		if _, ok := newByID[previous.ID]; !ok {
			changes = append(changes, domain.EntityRemoved{
				EntityKind: domain.EntityCampaign,
				EntityID:   previous.ID,
				EntityName: previous.Name,
			})
		}
	}

	return changes
}

func diffAdGroups(old, new []domain.AdGroupState) domain.ChangeSet {
	var changes domain.ChangeSet

	oldByID := make(map[string]domain.AdGroupState, len(old))
	for _, ag := range old {
		oldByID[ag.ID] = ag
	}
	newByID := make(map[string]domain.AdGroupState, len(new))
	for _, ag := range new {
		newByID[ag.ID] = ag
	}

	for _, current := range new {
		previous, ok := oldByID[current.ID]
		if !ok {
			changes = append(changes, domain.EntityAdded{
				EntityKind: domain.EntityAdGroup,
				EntityID:   current.ID,
				EntityName: current.Name,
			})
			continue
		}

		if previous.Status != current.Status {
			changes = append(changes, domain.StatusChange{
				EntityKind: domain.EntityAdGroup,
				EntityID:   current.ID,
				EntityName: previous.Name,
				OldStatus:  previous.Status,
				NewStatus:  current.Status,
			})
		}
	}

	for _, previous := range old {
		if _, ok := newByID[previous.ID]; !ok {
			changes = append(changes, domain.EntityRemoved{
				EntityKind: domain.EntityAdGroup,
				EntityID:   previous.ID,
				EntityName: previous.Name,
			})
		}
	}

	return changes
}

func diffKeywords(old, new []domain.KeywordState) domain.ChangeSet {
	var changes domain.ChangeSet

	oldByKey := make(map[domain.KeywordKey]domain.KeywordState, len(old))
	for _, kw := range old {
		oldByKey[kw.Key()] = kw
	}
	newByKey := make(map[domain.KeywordKey]domain.KeywordState, len(new))
	for _, kw := range new {
		newByKey[kw.Key()] = kw
	}

	for _, current := range new {
		previous, ok := oldByKey[current.Key()]
		if !ok {
			changes = append(changes, domain.KeywordAdded{
				KeywordID:   current.ID,
				AdGroupID:   current.AdGroupID,
				KeywordText: current.Text,
				MatchType:   current.MatchType,
			})
			continue
		}

		if previous.Status != current.Status {
			changes = append(changes, domain.StatusChange{
				EntityKind: domain.EntityKeyword,
				EntityID:   current.Key().String(),
				EntityName: previous.Text,
				OldStatus:  previous.Status,
				NewStatus:  current.Status,
			})
		}

		// lance 0 significa que a palavra-chave herda o lance do grupo
		if previous.Bid > 0 && current.Bid > 0 && moneyChanged(previous.Bid, current.Bid) {
			changes = append(changes, domain.KeywordBidChange{
				KeywordID:   current.ID,
				AdGroupID:   current.AdGroupID,
				KeywordText: previous.Text,
				MatchType:   previous.MatchType,
				OldBid:      previous.Bid,
				NewBid:      current.Bid,
				Delta:       utils.RoundCents(current.Bid - previous.Bid),
			})
		}
	}

	for _, previous := range old {
		if _, ok := newByKey[previous.Key()]; !ok {
			changes = append(changes, domain.KeywordRemoved{
				KeywordID:   previous.ID,
				AdGroupID:   previous.AdGroupID,
				KeywordText: previous.Text,
				MatchType:   previous.MatchType,
			})
		}
	}

	return changes
}
