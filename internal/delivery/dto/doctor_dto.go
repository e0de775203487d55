package dto

import (
	"github.com/shopspring/decimal"
)

// Response DTOs

type DoctorResponse struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Specialties []string        `json:"specialties"`
	Experience  int             `json:"experience"`
	Fees        decimal.Decimal `json:"fees"`
	Image       string          `json:"image,omitempty"`
}

type SpecialtyListResponse struct {
	Specialties []string `json:"specialties"`
	Total       int      `json:"total"`
}

type SuggestionListResponse struct {
	Search      string   `json:"search"`
	Suggestions []string `json:"suggestions"`
}
