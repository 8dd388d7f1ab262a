package pagination

// Metadata is the pagination block embedded in list responses.
type Metadata struct {
	Page  int   `json:"page"`  // Current page number (1-based)
	Limit int   `json:"limit"` // Items per page
	Total int64 `json:"total"` // Total number of items across all pages
	Pages int   `json:"pages"` // Total number of pages
}

// NewMetadata builds the metadata block for a page of results.
func NewMetadata(params Params, total int64) Metadata {
	return Metadata{
		Page:  params.Page,
		Limit: params.Limit,
		Total: total,
		Pages: CalculateTotalPages(total, params.Limit),
	}
}
