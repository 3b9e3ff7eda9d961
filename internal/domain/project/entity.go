package project

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status enum
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// Project is a cost center the dashboard calls an "object". Spend is
// never stored here; it is always derived from approved payroll.
type Project struct {
	ID          string
	Name        string
	TotalBudget decimal.Decimal // zero means unbudgeted, track spend only
	Status      Status
	CreatedAt   time.Time
	UpdatedAt   time.Time

	IncomeHistory []IncomeEntry
}

// IncomeEntry is an append-only budget top-up.
type IncomeEntry struct {
	ID        string
	ProjectID string
	Amount    decimal.Decimal
	Comment   string
	CreatedAt time.Time
}

func (p *Project) IsBudgeted() bool {
	return p.TotalBudget.IsPositive()
}
