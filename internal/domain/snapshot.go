package domain

import "time"

// Snapshot representa o estado de configuração de uma conta/campanha em um instante
type Snapshot struct {
	AccountID    string          `json:"account_id"`
	CampaignID   string          `json:"campaign_id,omitempty"`
	AccountName  string          `json:"account_name,omitempty"`
	CampaignName string          `json:"campaign_name,omitempty"`
	CaptureID    string          `json:"capture_id"`
	Campaigns    []CampaignState `json:"campaigns"`
	AdGroups     []AdGroupState  `json:"ad_groups"`
	Keywords     []KeywordState  `json:"keywords"`
	CapturedAt   time.Time       `json:"captured_at"`
}

type CampaignState struct {
	ID              string   `json:"campaign_id"`
	Name            string   `json:"campaign_name"`
	Status          string   `json:"status"`
	DailyBudget     float64  `json:"budget"`
	BiddingStrategy string   `json:"bidding_strategy"`
	IsSmartBidding  bool     `json:"is_smart_bidding"`
	TargetCPA       *float64 `json:"target_cpa"`
	TargetROAS      *float64 `json:"target_roas"`
	ChannelType     string   `json:"channel_type"`
	StartDate       string   `json:"start_date"`
	EndDate         string   `json:"end_date"`
}

type AdGroupState struct {
	ID         string  `json:"ad_group_id"`
	Name       string  `json:"ad_group_name"`
	CampaignID string  `json:"campaign_id"`
	Status     string  `json:"status"`
	DefaultBid float64 `json:"cpc_bid"`
}

type KeywordState struct {
	ID           string  `json:"keyword_id"`
	Text         string  `json:"keyword_text"`
	AdGroupID    string  `json:"ad_group_id"`
	CampaignID   string  `json:"campaign_id"`
	MatchType    string  `json:"match_type"`
	Status       string  `json:"status"`
	Bid          float64 `json:"cpc_bid"`
	QualityScore *int    `json:"quality_score"`
}

// KeywordKey é a identidade composta de uma palavra-chave.
// O ID sozinho não é único entre grupos de anúncios.
type KeywordKey struct {
	KeywordID string
	AdGroupID string
}

func (k KeywordState) Key() KeywordKey {
	return KeywordKey{KeywordID: k.ID, AdGroupID: k.AdGroupID}
}

// String retorna a chave no formato "keyword_id/ad_group_id"
func (k KeywordKey) String() string {
	return k.KeywordID + "/" + k.AdGroupID
}

// Scope retorna o escopo de armazenamento ao qual o snapshot pertence
func (s *Snapshot) Scope() StorageScope {
	return StorageScope{
		AccountID:   s.AccountID,
		ScopeID:     s.CampaignID,
		AccountName: s.AccountName,
		ScopeName:   s.CampaignName,
	}
}

// RawRecords são os registros brutos devolvidos pelo cliente de anúncios,
// um mapa chave-valor por entidade. Qualquer campo além da identidade pode faltar.
type RawRecords struct {
	Campaigns []map[string]any `json:"campaigns"`
	AdGroups  []map[string]any `json:"ad_groups"`
	Keywords  []map[string]any `json:"keywords"`
}

// PeriodPerformance resume o desempenho do período registrado no changelog
type PeriodPerformance struct {
	Leads          *int     `json:"leads,omitempty"`
	CPA            *float64 `json:"cpa,omitempty"`
	Spend          *float64 `json:"spend,omitempty"`
	ConversionRate *float64 `json:"conversion_rate,omitempty"`
}
