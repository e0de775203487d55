package usecase

import (
	"context"
	"errors"
	"slices"
	"sync/atomic"

	"doctor-directory/internal/converter"
	"doctor-directory/internal/delivery/dto"
	"doctor-directory/internal/domain/entity"
	"doctor-directory/internal/domain/repository"
	"doctor-directory/internal/infrastructure/metrics"

	"github.com/sirupsen/logrus"
)

var (
	ErrDoctorNotFound     = errors.New("doctor not found")
	ErrInvalidFilterField = errors.New("invalid filter field")
)

const (
	MessageNoDoctors = "No doctors found"
	HintNoDoctors    = "Try adjusting your filters or search term"
)

type DirectoryUsecase interface {
	Load(ctx context.Context) int
	Browse(ctx context.Context, state entity.DirectoryState) *dto.DirectoryResponse
	UpdateFilter(ctx context.Context, state entity.DirectoryState, req *dto.FilterUpdateRequest) (*dto.DirectoryResponse, error)
	GetDoctor(ctx context.Context, doctorID int) (*dto.DoctorResponse, error)
	GetSpecialties(ctx context.Context) *dto.SpecialtyListResponse
	GetSuggestions(ctx context.Context, search string) *dto.SuggestionListResponse
}

// snapshot is the loaded directory. It is built once and never mutated.
type snapshot struct {
	doctors     []entity.Doctor
	specialties []string
	known       map[string]struct{}
}

func newSnapshot(doctors []entity.Doctor) *snapshot {
	specialties := AllSpecialties(doctors)
	known := make(map[string]struct{}, len(specialties))
	for _, s := range specialties {
		known[s] = struct{}{}
	}

	return &snapshot{
		doctors:     slices.Clone(doctors),
		specialties: specialties,
		known:       known,
	}
}

func (s *snapshot) isKnownSpecialty(specialty string) bool {
	_, ok := s.known[specialty]
	return ok
}

type directoryUsecase struct {
	log        *logrus.Logger
	doctorRepo repository.DoctorRepository
	metrics    *metrics.Metrics
	current    atomic.Pointer[snapshot]
}

func NewDirectoryUsecase(
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	m *metrics.Metrics,
) DirectoryUsecase {
	u := &directoryUsecase{
		log:        log,
		doctorRepo: doctorRepo,
		metrics:    m,
	}
	u.current.Store(newSnapshot(nil))
	return u
}

// Load fetches the records and installs them as the directory snapshot.
// It is meant to run once, before traffic is accepted.
func (u *directoryUsecase) Load(ctx context.Context) int {
	snap := newSnapshot(u.doctorRepo.FetchAll(ctx))
	u.current.Store(snap)

	u.metrics.DoctorsLoaded.Set(float64(len(snap.doctors)))
	u.metrics.SpecialtiesLoaded.Set(float64(len(snap.specialties)))
	u.log.Infof("Directory loaded: %d doctors, %d specialties", len(snap.doctors), len(snap.specialties))

	return len(snap.doctors)
}

// Browse computes the visible page for state. The returned state is
// normalized: unknown specialties are dropped and a page past the end
// falls back to the first page.
func (u *directoryUsecase) Browse(ctx context.Context, state entity.DirectoryState) *dto.DirectoryResponse {
	snap := u.current.Load()

	state.Filter = state.Filter.RestrictSpecialties(snap.isKnownSpecialty)

	filtered := ApplyFilters(snap.doctors, state.Filter)
	totalPages := TotalPages(len(filtered), PageSize)
	if state.Page.CurrentPage < 1 || state.Page.CurrentPage > totalPages {
		state = state.WithPage(1)
	}

	page := Paginate(filtered, PageSize, state.Page.CurrentPage)

	result := &dto.DirectoryResponse{
		Doctors:    converter.DoctorsToResponses(page),
		Filters:    converter.FilterStateToResponse(state.Filter),
		Page:       state.Page.CurrentPage,
		PageSize:   PageSize,
		TotalPages: totalPages,
		Total:      len(filtered),
		Showing:    ComputePageRange(state.Page.CurrentPage, PageSize, len(filtered)),
		Query:      converter.EncodeDirectoryState(state),
	}
	if len(filtered) == 0 {
		result.Hint = HintNoDoctors
	}

	u.log.WithFields(logrus.Fields{
		"query": result.Query,
		"total": result.Total,
		"page":  result.Page,
	}).Debug("Directory browsed")

	return result
}

// UpdateFilter applies one field-level change to state and browses the
// result. Every change except page navigation returns to the first page.
func (u *directoryUsecase) UpdateFilter(ctx context.Context, state entity.DirectoryState, req *dto.FilterUpdateRequest) (*dto.DirectoryResponse, error) {
	filter := state.Filter

	switch req.Field {
	case dto.FilterFieldSearch:
		state = state.ApplyFilter(filter.WithSearch(req.Value))
	case dto.FilterFieldMode:
		state = state.ApplyFilter(filter.WithConsultationMode(entity.ParseConsultationMode(req.Value)))
	case dto.FilterFieldSpecialties:
		state = state.ApplyFilter(filter.WithSpecialties(req.Values))
	case dto.FilterFieldToggleSpecialty:
		state = state.ApplyFilter(filter.ToggleSpecialty(req.Value))
	case dto.FilterFieldSort:
		state = state.ApplyFilter(filter.WithSortBy(entity.ParseSortOption(req.Value)))
	case dto.FilterFieldPage:
		state = state.WithPage(req.Page)
	default:
		u.log.Warnf("Failed to update filter: %+v", req.Field)
		return nil, ErrInvalidFilterField
	}

	return u.Browse(ctx, state), nil
}

func (u *directoryUsecase) GetDoctor(ctx context.Context, doctorID int) (*dto.DoctorResponse, error) {
	snap := u.current.Load()

	idx := slices.IndexFunc(snap.doctors, func(d entity.Doctor) bool {
		return d.ID == doctorID
	})
	if idx < 0 {
		return nil, ErrDoctorNotFound
	}

	return converter.DoctorToResponse(&snap.doctors[idx]), nil
}

func (u *directoryUsecase) GetSpecialties(ctx context.Context) *dto.SpecialtyListResponse {
	snap := u.current.Load()

	return &dto.SpecialtyListResponse{
		Specialties: slices.Clone(snap.specialties),
		Total:       len(snap.specialties),
	}
}

func (u *directoryUsecase) GetSuggestions(ctx context.Context, search string) *dto.SuggestionListResponse {
	snap := u.current.Load()

	return &dto.SuggestionListResponse{
		Search:      search,
		Suggestions: Suggestions(snap.doctors, search),
	}
}
