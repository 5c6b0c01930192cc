package tracking

import (
	"time"

	"github.com/ppcl2025/campaign-change-tracker/internal/domain"
	"github.com/ppcl2025/campaign-change-tracker/pkg/log"
	"github.com/spf13/cast"
)

const microsPerUnit = 1_000_000.0

type record map[string]any

// lookup devolve o primeiro alias presente e não nulo
func (r record) lookup(keys ...string) (any, bool) {
	for _, k := range keys {
		if v, ok := r[k]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

func (r record) str(keys ...string) string {
	v, ok := r.lookup(keys...)
	if !ok {
		return ""
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return ""
	}
	return s
}

func (r record) float(keys ...string) float64 {
	v, ok := r.lookup(keys...)
	if !ok {
		return 0
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return 0
	}
	return f
}

func (r record) boolean(keys ...string) bool {
	v, ok := r.lookup(keys...)
	if !ok {
		return false
	}
	b, err := cast.ToBoolE(v)
	if err != nil {
		return false
	}
	return b
}

// money lê um valor monetário em unidade de moeda.
// O campo simples tem prioridade; senão usa a variante "_micros".
func (r record) money(key string) float64 {
	if _, ok := r.lookup(key); ok {
		return r.float(key)
	}
	return r.float(key+"_micros") / microsPerUnit
}

func (r record) optionalMoney(key string) *float64 {
	if v, ok := r.lookup(key); ok {
		f, err := cast.ToFloat64E(v)
		if err != nil {
			return nil
		}
		return &f
	}
	if v, ok := r.lookup(key + "_micros"); ok {
		f, err := cast.ToFloat64E(v)
		if err != nil {
			return nil
		}
		f = f / microsPerUnit
		return &f
	}
	return nil
}

func (r record) optionalFloat(key string) *float64 {
	v, ok := r.lookup(key)
	if !ok {
		return nil
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return nil
	}
	return &f
}

func (r record) optionalInt(key string) *int {
	v, ok := r.lookup(key)
	if !ok {
		return nil
	}
	i, err := cast.ToIntE(v)
	if err != nil {
		return nil
	}
	return &i
}

// Normalize converte os registros brutos do cliente de anúncios em um Snapshot.
// Campos ausentes viram valores padrão; registros sem identidade são ignorados.
func Normalize(scope domain.StorageScope, raw domain.RawRecords, capturedAt time.Time) domain.Snapshot {
	snapshot := domain.Snapshot{
		AccountID:    scope.AccountID,
		CampaignID:   scope.ScopeID,
		AccountName:  scope.AccountName,
		CampaignName: scope.ScopeName,
		Campaigns:    make([]domain.CampaignState, 0, len(raw.Campaigns)),
		AdGroups:     make([]domain.AdGroupState, 0, len(raw.AdGroups)),
		Keywords:     make([]domain.KeywordState, 0, len(raw.Keywords)),
		CapturedAt:   capturedAt,
	}

	seenCampaigns := make(map[string]bool)
	for _, item := range raw.Campaigns {
		c := normalizeCampaign(record(item))
		if c.ID == "" || seenCampaigns[c.ID] {
			log.L.Debugf("Campanha ignorada na normalização (id vazio ou duplicado): %q", c.ID)
			continue
		}
		seenCampaigns[c.ID] = true
		snapshot.Campaigns = append(snapshot.Campaigns, c)
	}

	seenAdGroups := make(map[string]bool)
	for _, item := range raw.AdGroups {
		ag := normalizeAdGroup(record(item))
		if ag.ID == "" || seenAdGroups[ag.ID] {
			log.L.Debugf("Grupo de anúncios ignorado na normalização (id vazio ou duplicado): %q", ag.ID)
			continue
		}
		seenAdGroups[ag.ID] = true
		snapshot.AdGroups = append(snapshot.AdGroups, ag)
	}

	seenKeywords := make(map[domain.KeywordKey]bool)
	for _, item := range raw.Keywords {
		kw := normalizeKeyword(record(item))
		if kw.ID == "" || seenKeywords[kw.Key()] {
			log.L.Debugf("Palavra-chave ignorada na normalização (id vazio ou duplicado): %q", kw.Key().String())
			continue
		}
		seenKeywords[kw.Key()] = true
		snapshot.Keywords = append(snapshot.Keywords, kw)
	}

	return snapshot
}

func normalizeCampaign(r record) domain.CampaignState {
	return domain.CampaignState{
		ID:              r.str("campaign_id", "id"),
		Name:            r.str("campaign_name", "name"),
		Status:          r.str("status"),
		DailyBudget:     r.money("budget"),
		BiddingStrategy: r.str("bidding_strategy", "bidding_strategy_type"),
		IsSmartBidding:  r.boolean("is_smart_bidding"),
		TargetCPA:       r.optionalMoney("target_cpa"),
		TargetROAS:      r.optionalFloat("target_roas"),
		ChannelType:     r.str("channel_type", "advertising_channel_type"),
		StartDate:       r.str("start_date"),
		EndDate:         r.str("end_date"),
	}
}

func normalizeAdGroup(r record) domain.AdGroupState {
	return domain.AdGroupState{
		ID:         r.str("ad_group_id", "id"),
		Name:       r.str("ad_group_name", "name"),
		CampaignID: r.str("campaign_id"),
		Status:     r.str("status"),
		DefaultBid: r.money("cpc_bid"),
	}
}

func normalizeKeyword(r record) domain.KeywordState {
	return domain.KeywordState{
		ID:           r.str("keyword_id", "criterion_id", "id"),
		Text:         r.str("keyword_text", "text"),
		AdGroupID:    r.str("ad_group_id"),
		CampaignID:   r.str("campaign_id"),
		MatchType:    r.str("match_type"),
		Status:       r.str("status"),
		Bid:          r.money("cpc_bid"),
		QualityScore: r.optionalInt("quality_score"),
	}
}
