package domain

import jsoniter "github.com/json-iterator/go"

type EntityKind string

const (
	EntityCampaign EntityKind = "Campaign"
	EntityAdGroup  EntityKind = "AdGroup"
	EntityKeyword  EntityKind = "Keyword"
)

// Rank define a ordem das coleções na saída do diff
func (k EntityKind) Rank() int {
	switch k {
	case EntityCampaign:
		return 0
	case EntityAdGroup:
		return 1
	case EntityKeyword:
		return 2
	default:
		return 3
	}
}

type ChangeKind string

const (
	ChangeBudget          ChangeKind = "budget"
	ChangeBiddingStrategy ChangeKind = "bidding_strategy"
	ChangeStatus          ChangeKind = "status"
	ChangeKeywordAdded    ChangeKind = "keyword_added"
	ChangeKeywordRemoved  ChangeKind = "keyword_removed"
	ChangeKeywordBid      ChangeKind = "keyword_bid"
	ChangeEntityAdded     ChangeKind = "entity_added"
	ChangeEntityRemoved   ChangeKind = "entity_removed"
)

// Rank define a ordem das categorias, usada no desempate do diff e na formatação
func (k ChangeKind) Rank() int {
	switch k {
	case ChangeBudget:
		return 0
	case ChangeBiddingStrategy:
		return 1
	case ChangeStatus:
		return 2
	case ChangeKeywordAdded:
		return 3
	case ChangeKeywordRemoved:
		return 4
	case ChangeKeywordBid:
		return 5
	case ChangeEntityAdded:
		return 6
	case ChangeEntityRemoved:
		return 7
	default:
		return 8
	}
}

// ChangeRecord é uma diferença classificada entre dois snapshots.
// A interface é fechada: apenas os tipos deste pacote a implementam.
type ChangeRecord interface {
	Kind() ChangeKind
	Entity() EntityKind
	IdentityKey() string
	isChangeRecord()
}

type BudgetChange struct {
	EntityID   string  `json:"entity_id"`
	EntityName string  `json:"entity_name"`
	OldValue   float64 `json:"old_value"`
	NewValue   float64 `json:"new_value"`
	Delta      float64 `json:"delta"`
}

type StatusChange struct {
	EntityKind EntityKind `json:"entity_kind"`
	EntityID   string     `json:"entity_id"`
	EntityName string     `json:"entity_name"`
	OldStatus  string     `json:"old_status"`
	NewStatus  string     `json:"new_status"`
}

type BiddingStrategyChange struct {
	CampaignID    string   `json:"campaign_id"`
	CampaignName  string   `json:"campaign_name"`
	OldStrategy   string   `json:"old_strategy"`
	NewStrategy   string   `json:"new_strategy"`
	OldTargetCPA  *float64 `json:"old_target_cpa"`
	NewTargetCPA  *float64 `json:"new_target_cpa"`
	OldTargetROAS *float64 `json:"old_target_roas"`
	NewTargetROAS *float64 `json:"new_target_roas"`
}

type KeywordBidChange struct {
	KeywordID   string  `json:"keyword_id"`
	AdGroupID   string  `json:"ad_group_id"`
	KeywordText string  `json:"keyword_text"`
	MatchType   string  `json:"match_type"`
	OldBid      float64 `json:"old_bid"`
	NewBid      float64 `json:"new_bid"`
	Delta       float64 `json:"delta"`
}

type KeywordAdded struct {
	KeywordID   string `json:"keyword_id"`
	AdGroupID   string `json:"ad_group_id"`
	KeywordText string `json:"keyword_text"`
	MatchType   string `json:"match_type"`
}

type KeywordRemoved struct {
	KeywordID   string `json:"keyword_id"`
	AdGroupID   string `json:"ad_group_id"`
	KeywordText string `json:"keyword_text"`
	MatchType   string `json:"match_type"`
}

// EntityAdded registra campanhas e grupos de anúncios novos
type EntityAdded struct {
	EntityKind EntityKind `json:"entity_kind"`
	EntityID   string     `json:"entity_id"`
	EntityName string     `json:"entity_name"`
}

// EntityRemoved registra campanhas e grupos de anúncios que sumiram
type EntityRemoved struct {
	EntityKind EntityKind `json:"entity_kind"`
	EntityID   string     `json:"entity_id"`
	EntityName string     `json:"entity_name"`
}

func (BudgetChange) Kind() ChangeKind      { return ChangeBudget }
func (BudgetChange) Entity() EntityKind    { return EntityCampaign }
func (c BudgetChange) IdentityKey() string { return c.EntityID }
func (BudgetChange) isChangeRecord()       {}

func (StatusChange) Kind() ChangeKind      { return ChangeStatus }
func (c StatusChange) Entity() EntityKind  { return c.EntityKind }
func (c StatusChange) IdentityKey() string { return c.EntityID }
func (StatusChange) isChangeRecord()       {}

func (BiddingStrategyChange) Kind() ChangeKind      { return ChangeBiddingStrategy }
func (BiddingStrategyChange) Entity() EntityKind    { return EntityCampaign }
func (c BiddingStrategyChange) IdentityKey() string { return c.CampaignID }
func (BiddingStrategyChange) isChangeRecord()       {}

func (KeywordBidChange) Kind() ChangeKind   { return ChangeKeywordBid }
func (KeywordBidChange) Entity() EntityKind { return EntityKeyword }
func (c KeywordBidChange) IdentityKey() string {
	return KeywordKey{KeywordID: c.KeywordID, AdGroupID: c.AdGroupID}.String()
}
func (KeywordBidChange) isChangeRecord() {}

func (KeywordAdded) Kind() ChangeKind   { return ChangeKeywordAdded }
func (KeywordAdded) Entity() EntityKind { return EntityKeyword }
func (c KeywordAdded) IdentityKey() string {
	return KeywordKey{KeywordID: c.KeywordID, AdGroupID: c.AdGroupID}.String()
}
func (KeywordAdded) isChangeRecord() {}

func (KeywordRemoved) Kind() ChangeKind   { return ChangeKeywordRemoved }
func (KeywordRemoved) Entity() EntityKind { return EntityKeyword }
func (c KeywordRemoved) IdentityKey() string {
	return KeywordKey{KeywordID: c.KeywordID, AdGroupID: c.AdGroupID}.String()
}
func (KeywordRemoved) isChangeRecord() {}

func (EntityAdded) Kind() ChangeKind      { return ChangeEntityAdded }
func (c EntityAdded) Entity() EntityKind  { return c.EntityKind }
func (c EntityAdded) IdentityKey() string { return c.EntityID }
func (EntityAdded) isChangeRecord()       {}

func (EntityRemoved) Kind() ChangeKind      { return ChangeEntityRemoved }
func (c EntityRemoved) Entity() EntityKind  { return c.EntityKind }
func (c EntityRemoved) IdentityKey() string { return c.EntityID }
func (EntityRemoved) isChangeRecord()       {}

// ChangeSet é a lista ordenada de mudanças produzida pelo diff
type ChangeSet []ChangeRecord

// OfKind filtra as mudanças de uma categoria preservando a ordem
func (cs ChangeSet) OfKind(kind ChangeKind) ChangeSet {
	var out ChangeSet
	for _, c := range cs {
		if c.Kind() == kind {
			out = append(out, c)
		}
	}
	return out
}

type taggedChange struct {
	Kind   ChangeKind   `json:"kind"`
	Change ChangeRecord `json:"change"`
}

// MarshalJSON serializa cada mudança com sua categoria para consumo da API
func (cs ChangeSet) MarshalJSON() ([]byte, error) {
	tagged := make([]taggedChange, 0, len(cs))
	for _, c := range cs {
		tagged = append(tagged, taggedChange{Kind: c.Kind(), Change: c})
	}
	return jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(tagged)
}
