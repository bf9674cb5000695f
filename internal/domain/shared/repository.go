package shared

// Filter represents query filter options for paged reads
type Filter struct {
	Page     int
	PageSize int
	OrderBy  string
	OrderDir string
}

// Offset returns the row offset for the filter's page
func (f Filter) Offset() int {
	page := f.Page
	if page < 1 {
		page = 1
	}
	return (page - 1) * f.PageSize
}
