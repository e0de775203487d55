package repository

import (
	"context"

	"doctor-directory/internal/domain/entity"
)

type DoctorRepository interface {
	// FetchAll returns every published record in source order. It never
	// fails: an unreachable or malformed source yields an empty slice.
	FetchAll(ctx context.Context) []entity.Doctor
}
