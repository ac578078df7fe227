package taxtable

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateTaxTableRequest struct {
	Year               int             `json:"year" binding:"required,min=2000,max=2100"`
	Month              int             `json:"month" binding:"required,min=1,max=12"`
	Description        string          `json:"description" binding:"max=255"`
	Active             *bool           `json:"active"`
	Brackets           []Bracket       `json:"brackets"`
	FgtsRates          []FgtsRate      `json:"fgtsRates"`
	DependentDeduction decimal.Decimal `json:"dependentDeduction"`
}

type UpdateTaxTableRequest struct {
	Description        *string          `json:"description" binding:"omitempty,max=255"`
	Active             *bool            `json:"active"`
	Brackets           []Bracket        `json:"brackets"`
	FgtsRates          []FgtsRate       `json:"fgtsRates"`
	DependentDeduction *decimal.Decimal `json:"dependentDeduction"`
}

type ListFilter struct {
	Year   *int
	Active *bool
}

type SimulateRequest struct {
	Year       int             `json:"year" binding:"required,min=2000,max=2100"`
	Month      int             `json:"month" binding:"required,min=1,max=12"`
	Amount     decimal.Decimal `json:"amount"`
	Dependents int             `json:"dependents" binding:"min=0"`
	Category   string          `json:"category"`
}

type SimulateResponse struct {
	TableID string      `json:"tableId"`
	Kind    Kind        `json:"kind"`
	Year    int         `json:"year"`
	Month   int         `json:"month"`
	Inss    *InssResult `json:"inss,omitempty"`
	Irrf    *IrrfResult `json:"irrf,omitempty"`
	Fgts    *FgtsResult `json:"fgts,omitempty"`
}

type TaxTableResponse struct {
	ID                 string          `json:"id"`
	Kind               Kind            `json:"kind"`
	Year               int             `json:"year"`
	Month              int             `json:"month"`
	Active             bool            `json:"active"`
	Description        string          `json:"description"`
	Brackets           []Bracket       `json:"brackets"`
	FgtsRates          []FgtsRate      `json:"fgtsRates,omitempty"`
	DependentDeduction decimal.Decimal `json:"dependentDeduction"`
	CreatedAt          time.Time       `json:"createdAt"`
	UpdatedAt          time.Time       `json:"updatedAt"`
}

func mapTableToResponse(t TaxTable) TaxTableResponse {
	return TaxTableResponse{
		ID:                 t.ID.String(),
		Kind:               t.Kind,
		Year:               t.Year,
		Month:              t.Month,
		Active:             t.Active,
		Description:        t.Description,
		Brackets:           []Bracket(t.Brackets),
		FgtsRates:          []FgtsRate(t.FgtsRates),
		DependentDeduction: t.DependentDeduction,
		CreatedAt:          t.CreatedAt,
		UpdatedAt:          t.UpdatedAt,
	}
}
