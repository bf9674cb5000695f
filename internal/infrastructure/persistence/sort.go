package persistence

import (
	"strings"

	"github.com/agile/ecommerce-backend/internal/domain/shared"
	"gorm.io/gorm"
)

// orderClause builds a safe ORDER BY clause from the filter. Only columns in
// the allow-list are accepted; anything else falls back to insertion (id)
// order so listings stay stable.
func orderClause(filter shared.Filter, allowed map[string]bool) string {
	column := filter.OrderBy
	if column == "" || !allowed[column] {
		return "id ASC"
	}

	dir := "ASC"
	if strings.EqualFold(filter.OrderDir, "desc") {
		dir = "DESC"
	}
	return column + " " + dir
}

// applyPaging applies pagination from the filter
func applyPaging(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.PageSize > 0 {
		query = query.Offset(filter.Offset()).Limit(filter.PageSize)
	}
	return query
}
