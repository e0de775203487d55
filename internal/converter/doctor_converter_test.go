package converter

import (
	"testing"

	"doctor-directory/internal/domain/entity"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDoctorToResponse(t *testing.T) {
	assert.Nil(t, DoctorToResponse(nil))

	doctor := &entity.Doctor{
		ID:          4,
		Name:        "Dee",
		Specialties: []string{"Dentist"},
		Experience:  12,
		Fees:        decimal.NewFromInt(450),
		Image:       "https://example.com/dee.png",
	}

	resp := DoctorToResponse(doctor)

	assert.Equal(t, 4, resp.ID)
	assert.Equal(t, "Dee", resp.Name)
	assert.Equal(t, []string{"Dentist"}, resp.Specialties)
	assert.Equal(t, 12, resp.Experience)
	assert.True(t, decimal.NewFromInt(450).Equal(resp.Fees))
	assert.Equal(t, "https://example.com/dee.png", resp.Image)

	resp.Specialties[0] = "changed"
	assert.Equal(t, "Dentist", doctor.Specialties[0], "response must not alias the record")
}

func TestDoctorsToResponses_NilSpecialtiesBecomeEmpty(t *testing.T) {
	responses := DoctorsToResponses([]entity.Doctor{{ID: 1, Name: "Ann"}})

	assert.Len(t, responses, 1)
	assert.NotNil(t, responses[0].Specialties)
	assert.Empty(t, responses[0].Specialties)
}

func TestFilterStateToResponse(t *testing.T) {
	resp := FilterStateToResponse(entity.FilterState{
		Search:           "ann",
		ConsultationMode: entity.ConsultationModeVideo,
		SortBy:           entity.SortByFees,
	})

	assert.Equal(t, "ann", resp.Search)
	assert.Equal(t, "Video Consult", resp.ConsultationMode)
	assert.Equal(t, "fees", resp.SortBy)
	assert.Equal(t, []string{}, resp.Specialties)
}
