package tracking

import (
	"fmt"
	"strings"

	"github.com/ppcl2025/campaign-change-tracker/internal/domain"
)

const (
	NoChangesText      = "No structural changes detected."
	maxLinesPerSection = 10
)

type section struct {
	title     string
	withCount bool
	match     func(domain.ChangeRecord) bool
	line      func(domain.ChangeRecord) string
}

func ofKind(kind domain.ChangeKind) func(domain.ChangeRecord) bool {
	return func(c domain.ChangeRecord) bool { return c.Kind() == kind }
}

func ofKindAndEntity(kind domain.ChangeKind, entity domain.EntityKind) func(domain.ChangeRecord) bool {
	return func(c domain.ChangeRecord) bool { return c.Kind() == kind && c.Entity() == entity }
}

// Ordem fixa das seções no texto
var sections = []section{
	{title: "Budget Changes", match: ofKind(domain.ChangeBudget), line: budgetLine},
	{title: "Bidding Strategy Changes", match: ofKind(domain.ChangeBiddingStrategy), line: biddingLine},
	{title: "Status Changes", match: ofKind(domain.ChangeStatus), line: statusLine},
	{title: "New Keywords Added", withCount: true, match: ofKind(domain.ChangeKeywordAdded), line: keywordLine},
	{title: "Keywords Removed", withCount: true, match: ofKind(domain.ChangeKeywordRemoved), line: keywordLine},
	{title: "Keyword Bid Changes", withCount: true, match: ofKind(domain.ChangeKeywordBid), line: keywordBidLine},
	{title: "Campaigns Added", withCount: true, match: ofKindAndEntity(domain.ChangeEntityAdded, domain.EntityCampaign), line: entityLine},
	{title: "Campaigns Removed", withCount: true, match: ofKindAndEntity(domain.ChangeEntityRemoved, domain.EntityCampaign), line: entityLine},
	{title: "Ad Groups Added", withCount: true, match: ofKindAndEntity(domain.ChangeEntityAdded, domain.EntityAdGroup), line: entityLine},
	{title: "Ad Groups Removed", withCount: true, match: ofKindAndEntity(domain.ChangeEntityRemoved, domain.EntityAdGroup), line: entityLine},
}

// Format agrupa as mudanças por categoria em um texto legível.
// Cada categoria lista no máximo 10 itens seguidos de "... and N more".
func Format(changes domain.ChangeSet) string {
	if len(changes) == 0 {
		return NoChangesText
	}

	var lines []string
	for _, s := range sections {
		var matched []domain.ChangeRecord
		for _, c := range changes {
			if s.match(c) {
				matched = append(matched, c)
			}
		}
		if len(matched) == 0 {
			continue
		}

		if s.withCount {
			lines = append(lines, fmt.Sprintf("%s (%d):", s.title, len(matched)))
		} else {
			lines = append(lines, s.title+":")
		}

		for i, c := range matched {
			if i == maxLinesPerSection {
				lines = append(lines, fmt.Sprintf("  ... and %d more", len(matched)-maxLinesPerSection))
				break
			}
			lines = append(lines, "  • "+s.line(c))
		}
	}

	if len(lines) == 0 {
		return NoChangesText
	}

	return strings.Join(lines, "\n")
}

func orID(name, id string) string {
	if name == "" {
		return id
	}
	return name
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func budgetLine(c domain.ChangeRecord) string {
	b := c.(domain.BudgetChange)
	return fmt.Sprintf("%s: $%.2f/day → $%.2f/day (%+.2f)", orID(b.EntityName, b.EntityID), b.OldValue, b.NewValue, b.Delta)
}

func biddingLine(c domain.ChangeRecord) string {
	b := c.(domain.BiddingStrategyChange)
	text := fmt.Sprintf("%s: %s → %s", orID(b.CampaignName, b.CampaignID), orNA(b.OldStrategy), orNA(b.NewStrategy))
	if b.NewTargetCPA != nil && *b.NewTargetCPA != 0 {
		text += fmt.Sprintf(" (Target CPA: $%.2f)", *b.NewTargetCPA)
	}
	if b.NewTargetROAS != nil && *b.NewTargetROAS != 0 {
		text += fmt.Sprintf(" (Target ROAS: %.2f)", *b.NewTargetROAS)
	}
	return text
}

func statusLine(c domain.ChangeRecord) string {
	s := c.(domain.StatusChange)
	return fmt.Sprintf("[%s] %s: %s → %s", s.EntityKind, orID(s.EntityName, s.EntityID), orNA(s.OldStatus), orNA(s.NewStatus))
}

func keywordLine(c domain.ChangeRecord) string {
	switch kw := c.(type) {
	case domain.KeywordAdded:
		return fmt.Sprintf("%s (%s)", orID(kw.KeywordText, kw.KeywordID), orNA(kw.MatchType))
	case domain.KeywordRemoved:
		return fmt.Sprintf("%s (%s)", orID(kw.KeywordText, kw.KeywordID), orNA(kw.MatchType))
	}
	return c.IdentityKey()
}

func keywordBidLine(c domain.ChangeRecord) string {
	kw := c.(domain.KeywordBidChange)
	return fmt.Sprintf("%s (%s): $%.2f → $%.2f (%+.2f)", orID(kw.KeywordText, kw.KeywordID), orNA(kw.MatchType), kw.OldBid, kw.NewBid, kw.Delta)
}

func entityLine(c domain.ChangeRecord) string {
	switch e := c.(type) {
	case domain.EntityAdded:
		return orID(e.EntityName, e.EntityID)
	case domain.EntityRemoved:
		return orID(e.EntityName, e.EntityID)
	}
	return c.IdentityKey()
}
