// Package domain contains the tracked-project entities, metric descriptors and derived statistics.
package domain

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"

	"github.com/fd1az/project-tracker/internal/apperror"
)

// Mention is a social-media post referencing a project.
type Mention struct {
	Source   string
	Author   string
	Text     string
	URL      string
	PostedAt time.Time
}

// Project is a tracked protocol as supplied by the caller. The drawer reads it
// but never owns or mutates it.
type Project struct {
	ID       string
	Name     string
	Contract common.Address // zero when the project has no on-chain contract
	TVL      decimal.Decimal
	Wallets  int64
	Mentions []Mention
	Commits  int64
}

// HasContract reports whether a contract address is set.
func (p Project) HasContract() bool {
	return p.Contract != (common.Address{})
}

// MentionCount returns the number of mentions. A nil sequence counts as zero.
func (p Project) MentionCount() int64 {
	return int64(len(p.Mentions))
}

// DisplayName returns Name, falling back to ID.
func (p Project) DisplayName() string {
	if p.Name == "" {
		return p.ID
	}
	return p.Name
}

// Validate checks the invariants a loaded project must hold.
func (p Project) Validate() error {
	if p.ID == "" {
		return apperror.Validation(apperror.CodeInvalidProject, "id is required")
	}
	if p.TVL.IsNegative() {
		return apperror.Validation(apperror.CodeInvalidProject, p.ID+": tvl cannot be negative")
	}
	if p.Wallets < 0 {
		return apperror.Validation(apperror.CodeInvalidProject, p.ID+": wallets cannot be negative")
	}
	if p.Commits < 0 {
		return apperror.Validation(apperror.CodeInvalidProject, p.ID+": commits cannot be negative")
	}
	return nil
}
