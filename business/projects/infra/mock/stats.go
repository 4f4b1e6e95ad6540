// Package mock provides the placeholder statistics shown until a real
// metrics source is wired.
package mock

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/fd1az/project-tracker/business/projects/app"
	"github.com/fd1az/project-tracker/business/projects/domain"
)

const (
	WalletIncrease      = 120
	WalletInactive      = 50
	MentionImpressions  = 12000
	MentionLikes        = 340
	MentionComments     = 45
	TVLComparisonLabel  = "Ethereum"
	tvlPercentChange    = "4.2"
	tvlComparisonAmount = 50_000_000
)

var (
	FirstCommit = time.Date(2023, time.January, 15, 0, 0, 0, 0, time.UTC)
	LastCommit  = time.Date(2024, time.June, 30, 0, 0, 0, 0, time.UTC)
)

// Stats returns fixed placeholder values. Only the mention count and the
// commit total depend on the project; the timeframe is ignored.
type Stats struct{}

var _ app.StatsDeriver = Stats{}

// NewStats returns the placeholder deriver.
func NewStats() Stats {
	return Stats{}
}

func (Stats) Derive(metric domain.MetricKey, _ domain.Timeframe, p domain.Project) domain.Stats {
	switch metric {
	case domain.MetricWallets:
		return domain.WalletStats{Increase: WalletIncrease, Inactive: WalletInactive}
	case domain.MetricTVL:
		return domain.TVLStats{
			PercentChange:   decimal.RequireFromString(tvlPercentChange),
			ComparisonLabel: TVLComparisonLabel,
			ComparisonValue: decimal.NewFromInt(tvlComparisonAmount),
		}
	case domain.MetricMentions:
		return domain.MentionStats{
			Impressions: MentionImpressions,
			Count:       p.MentionCount(),
			Likes:       MentionLikes,
			Comments:    MentionComments,
		}
	case domain.MetricCommits:
		return domain.CommitStats{First: FirstCommit, Last: LastCommit, Total: p.Commits}
	}
	return nil
}
