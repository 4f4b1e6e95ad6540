package fixture

import (
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/fd1az/project-tracker/business/projects/domain"
	"github.com/fd1az/project-tracker/internal/apperror"
)

// document is the on-disk layout shared by the JSON and YAML fixtures.
type document struct {
	Projects []projectRecord `json:"projects" yaml:"projects"`
}

type projectRecord struct {
	ID       string          `json:"id" yaml:"id"`
	Name     string          `json:"name" yaml:"name"`
	Contract string          `json:"contract,omitempty" yaml:"contract,omitempty"`
	TVL      amount          `json:"tvl" yaml:"tvl"`
	Wallets  int64           `json:"wallets" yaml:"wallets"`
	Commits  int64           `json:"commits" yaml:"commits"`
	Mentions []mentionRecord `json:"mentions,omitempty" yaml:"mentions,omitempty"`
}

type mentionRecord struct {
	Source   string    `json:"source" yaml:"source"`
	Author   string    `json:"author" yaml:"author"`
	Text     string    `json:"text" yaml:"text"`
	URL      string    `json:"url,omitempty" yaml:"url,omitempty"`
	PostedAt time.Time `json:"posted_at" yaml:"posted_at"`
}

// amount accepts a TVL written as a number or a quoted string. JSON decoding
// goes through the embedded decimal's UnmarshalJSON.
type amount struct {
	decimal.Decimal
}

func (a *amount) UnmarshalYAML(node *yaml.Node) error {
	d, err := decimal.NewFromString(strings.TrimSpace(node.Value))
	if err != nil {
		return err
	}
	a.Decimal = d
	return nil
}

func (r projectRecord) toDomain() (domain.Project, error) {
	p := domain.Project{
		ID:      r.ID,
		Name:    r.Name,
		TVL:     r.TVL.Decimal,
		Wallets: r.Wallets,
		Commits: r.Commits,
	}

	if r.Contract != "" {
		if !common.IsHexAddress(r.Contract) {
			return domain.Project{}, apperror.Validation(apperror.CodeInvalidContractAddr, r.ID+": "+r.Contract)
		}
		p.Contract = common.HexToAddress(r.Contract)
	}

	if len(r.Mentions) > 0 {
		p.Mentions = make([]domain.Mention, len(r.Mentions))
		for i, m := range r.Mentions {
			p.Mentions[i] = domain.Mention{
				Source:   m.Source,
				Author:   m.Author,
				Text:     m.Text,
				URL:      m.URL,
				PostedAt: m.PostedAt,
			}
		}
	}

	if err := p.Validate(); err != nil {
		return domain.Project{}, err
	}
	return p, nil
}
