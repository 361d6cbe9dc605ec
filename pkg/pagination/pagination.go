package pagination

const (
	// DefaultPageSize is the standard page size when a size is not configured.
	DefaultPageSize = 50
	// MaxPageSize caps how many rows any paged query can request.
	MaxPageSize = 200
)

// Params holds offset pagination inputs from controllers or services.
type Params struct {
	Page     int
	PageSize int
}

// Page describes one page of a listing along with navigation metadata.
type Page struct {
	CurrentPage     int   `json:"currentPage"`
	TotalPages      int   `json:"totalPages"`
	TotalItems      int64 `json:"totalItems"`
	ItemsPerPage    int   `json:"itemsPerPage"`
	HasNextPage     bool  `json:"hasNextPage"`
	HasPreviousPage bool  `json:"hasPreviousPage"`
}

// Normalize clamps the page to 1..n and the page size to the configured bounds.
func Normalize(params Params) Params {
	if params.Page < 1 {
		params.Page = 1
	}
	if params.PageSize <= 0 {
		params.PageSize = DefaultPageSize
	}
	if params.PageSize > MaxPageSize {
		params.PageSize = MaxPageSize
	}
	return params
}

// Offset returns the row offset for the normalized params.
func (p Params) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// NewPage computes navigation metadata for a listing of totalItems rows.
// A page past the end still reports its requested number with an empty body.
func NewPage(params Params, totalItems int64) Page {
	params = Normalize(params)

	totalPages := int(totalItems) / params.PageSize
	if int(totalItems)%params.PageSize != 0 {
		totalPages++
	}

	return Page{
		CurrentPage:     params.Page,
		TotalPages:      totalPages,
		TotalItems:      totalItems,
		ItemsPerPage:    params.PageSize,
		HasNextPage:     params.Page < totalPages,
		HasPreviousPage: params.Page > 1,
	}
}
