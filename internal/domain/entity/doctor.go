package entity

import "github.com/shopspring/decimal"

// Doctor is one practitioner record as published by the directory source.
// Records are never modified after they are fetched.
type Doctor struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Specialties []string        `json:"specialties"`
	Experience  int             `json:"experience"`
	Fees        decimal.Decimal `json:"fees"`
	Image       string          `json:"image,omitempty"`
}
