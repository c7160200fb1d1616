package v4

import (
	"fmt"

	"golang.org/x/exp/slices"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gorm.io/gorm"
)

// stringFilters adds LIKE filters for the name and description columns.
//
// nameColumn is the column holding the name of the resource. A filter that is
// set to the empty string matches resources where the column is empty.
func stringFilters(db, query *gorm.DB, setFields []string, nameColumn, name, description, search string) *gorm.DB {
	nameField := cases.Title(language.Und).String(nameColumn)

	if name != "" {
		query = query.Where(fmt.Sprintf("%s LIKE ?", nameColumn), fmt.Sprintf("%%%s%%", name))
	} else if slices.Contains(setFields, nameField) {
		query = query.Where(fmt.Sprintf("%s = ''", nameColumn))
	}

	if description != "" {
		query = query.Where("description LIKE ?", fmt.Sprintf("%%%s%%", description))
	} else if slices.Contains(setFields, "Description") {
		query = query.Where("description = '' OR description IS NULL")
	}

	if search != "" {
		query = query.Where(
			db.Where("description LIKE ?", fmt.Sprintf("%%%s%%", search)).Or(
				db.Where(fmt.Sprintf("%s LIKE ?", nameColumn), fmt.Sprintf("%%%s%%", search)),
			),
		)
	}

	return query
}
