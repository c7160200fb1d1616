package types

import (
	"errors"
	"fmt"
	"time"
)

var ErrPeriodInvalid = errors.New("the end of a period must be after its start")

// Period is the half-open time range [Start, End) that ledger totals are
// computed for.
type Period struct {
	Start time.Time `json:"start" example:"2024-01-01T00:00:00Z"`
	End   time.Time `json:"end" example:"2024-02-01T00:00:00Z"`
}

// NewPeriod returns the period between start and end, both converted to UTC.
func NewPeriod(start, end time.Time) (Period, error) {
	if !end.After(start) {
		return Period{}, fmt.Errorf("%w: %s - %s", ErrPeriodInvalid, start.Format(time.RFC3339), end.Format(time.RFC3339))
	}

	return Period{Start: start.In(time.UTC), End: end.In(time.UTC)}, nil
}

// Contains reports whether t lies within the period.
func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.Start) && t.Before(p.End)
}

// Key returns a stable string identifying the period.
func (p Period) Key() string {
	return p.Start.UTC().Format(time.RFC3339) + "/" + p.End.UTC().Format(time.RFC3339)
}
