package domain

import (
	"github.com/fd1az/project-tracker/internal/apperror"
)

// MetricKey selects one of the four tracked metrics.
type MetricKey string

const (
	MetricTVL      MetricKey = "tvl"
	MetricWallets  MetricKey = "wallets"
	MetricMentions MetricKey = "mentions"
	MetricCommits  MetricKey = "commits"
)

// MetricKeys lists the metrics in display order.
func MetricKeys() []MetricKey {
	return []MetricKey{MetricTVL, MetricWallets, MetricMentions, MetricCommits}
}

// Valid reports whether k is one of the four known metrics.
func (k MetricKey) Valid() bool {
	_, ok := descriptors[k]
	return ok
}

// ParseMetricKey validates a raw metric name.
func ParseMetricKey(s string) (MetricKey, error) {
	k := MetricKey(s)
	if !k.Valid() {
		return "", apperror.Validation(apperror.CodeUnknownMetric, s)
	}
	return k, nil
}

// Descriptor is the static explanatory text for a metric.
type Descriptor struct {
	Title       string
	Description string
}

var descriptors = map[MetricKey]Descriptor{
	MetricTVL: {
		Title:       "Total Value Locked (TVL)",
		Description: "TVL represents the total value of assets locked in the protocol. It is a key indicator of trust and adoption. Higher TVL means more users are depositing assets into the protocol.",
	},
	MetricWallets: {
		Title:       "Active Wallets",
		Description: "Active wallets shows the number of unique wallets interacting with the project. It reflects user adoption and community growth.",
	},
	MetricMentions: {
		Title:       "Social Mentions",
		Description: "Social mentions count the number of times this project was mentioned on social media (e.g., Twitter) in the last 24 hours. It is a measure of community engagement and hype.",
	},
	MetricCommits: {
		Title:       "GitHub Commits",
		Description: "Development activity is measured by the number of code commits in the last 30 days. More commits usually means more active development and innovation.",
	},
}

// Lookup returns the descriptor for k.
func Lookup(k MetricKey) (Descriptor, bool) {
	d, ok := descriptors[k]
	return d, ok
}

// Heading is the title shown in the drawer header and above the metric content.
// It differs from the descriptor title for commits.
func Heading(k MetricKey) string {
	switch k {
	case MetricWallets:
		return "Active Wallets"
	case MetricTVL:
		return "Total Value Locked (TVL)"
	case MetricMentions:
		return "Social Mentions"
	case MetricCommits:
		return "Development Activity"
	}
	return ""
}

// Details is the one-line summary of a metric for a project.
func Details(k MetricKey, p Project) string {
	switch k {
	case MetricTVL:
		return "Current TVL: $" + FormatDecimal(p.TVL)
	case MetricWallets:
		return "Active Wallets: " + FormatInt(p.Wallets)
	case MetricMentions:
		return "Mentions (24h): " + FormatInt(p.MentionCount())
	case MetricCommits:
		return "Commits (30d): " + FormatInt(p.Commits)
	}
	return ""
}
