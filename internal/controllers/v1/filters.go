package v1

import (
	"fmt"
	"slices"

	"gorm.io/gorm"
)

// stringFilters applies the name, description and search filters that
// all named resources support.
func stringFilters(db, query *gorm.DB, setFields []string, name, description, search string) *gorm.DB {
	if name != "" {
		query = query.Where("name LIKE ?", fmt.Sprintf("%%%s%%", name))
	} else if slices.Contains(setFields, "Name") {
		query = query.Where("name = ''")
	}

	if description != "" {
		query = query.Where("description LIKE ?", fmt.Sprintf("%%%s%%", description))
	} else if slices.Contains(setFields, "Description") {
		query = query.Where("description = ''")
	}

	if search != "" {
		query = query.Where(
			db.Where("description LIKE ?", fmt.Sprintf("%%%s%%", search)).Or(
				db.Where("name LIKE ?", fmt.Sprintf("%%%s%%", search)),
			),
		)
	}

	return query
}
