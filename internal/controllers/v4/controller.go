package v4

import (
	"github.com/twigs-app/backend/internal/overview"
)

// Controller holds what the v4 handlers share besides the database.
//
// Every write to a budget, category or transaction drops the stored
// overviews of the budgets it affects, so that stale overviews never predate
// the last change.
type Controller struct {
	Overviews *overview.Refresher
}
