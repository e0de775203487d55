package dto

// Filter fields accepted by FilterUpdateRequest.Field.
const (
	FilterFieldSearch          = "search"
	FilterFieldMode            = "mode"
	FilterFieldSpecialties     = "specialties"
	FilterFieldToggleSpecialty = "toggle_specialty"
	FilterFieldSort            = "sort"
	FilterFieldPage            = "page"
)

// Request DTOs

// FilterUpdateRequest is one discrete change to the directory state.
// Value carries search, mode, sort and toggle_specialty; Values carries a
// full specialties selection; Page carries page navigation.
type FilterUpdateRequest struct {
	Field  string   `json:"field" validate:"required,oneof=search mode specialties toggle_specialty sort page"`
	Value  string   `json:"value" validate:"max=200"`
	Values []string `json:"values" validate:"omitempty,max=100,dive,max=200"`
	Page   int      `json:"page" validate:"omitempty,gte=1"`
}

// Response DTOs

type FilterStateResponse struct {
	Search           string   `json:"search"`
	ConsultationMode string   `json:"mode"`
	Specialties      []string `json:"specialties"`
	SortBy           string   `json:"sort"`
}

// PageRange is the 1-based "Showing Start - End of Total" window.
// Both bounds are zero when the page is empty.
type PageRange struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

type DirectoryResponse struct {
	Doctors    []DoctorResponse    `json:"doctors"`
	Filters    FilterStateResponse `json:"filters"`
	Page       int                 `json:"page"`
	PageSize   int                 `json:"page_size"`
	TotalPages int                 `json:"total_pages"`
	Total      int                 `json:"total"`
	Showing    PageRange           `json:"showing"`
	Query      string              `json:"query"`
	URL        string              `json:"url"`
	Hint       string              `json:"hint,omitempty"`
}
