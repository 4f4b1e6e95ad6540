package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stats is the derived record shown for one metric. It is one of
// WalletStats, TVLStats, MentionStats or CommitStats.
type Stats interface {
	Metric() MetricKey
}

// WalletStats summarizes wallet activity over a timeframe.
type WalletStats struct {
	Increase int64 // wallets added in the timeframe
	Inactive int64
}

func (WalletStats) Metric() MetricKey { return MetricWallets }

// TVLStats summarizes TVL movement and a reference chain for comparison.
type TVLStats struct {
	PercentChange   decimal.Decimal
	ComparisonLabel string
	ComparisonValue decimal.Decimal
}

func (TVLStats) Metric() MetricKey { return MetricTVL }

// MentionStats summarizes social engagement.
type MentionStats struct {
	Impressions int64
	Count       int64
	Likes       int64
	Comments    int64
}

func (MentionStats) Metric() MetricKey { return MetricMentions }

// CommitStats summarizes repository activity.
type CommitStats struct {
	First time.Time
	Last  time.Time
	Total int64
}

func (CommitStats) Metric() MetricKey { return MetricCommits }

// Comparison is a labeled reference value.
type Comparison struct {
	Label string
	Value decimal.Decimal
}

// MetricSnapshot is what a real metrics source returns for
// (metric, timeframe, project).
type MetricSnapshot struct {
	Metric        MetricKey
	Timeframe     Timeframe
	Value         decimal.Decimal
	ChangePercent decimal.Decimal
	Comparison    *Comparison
}
