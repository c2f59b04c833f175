// Package status defines the two naming conventions for maintenance
// request statuses and the total mapping between them.
//
// The API stores statuses in title case ("In Progress") while board
// columns and routes use the lowercase hyphenated display form
// ("in-progress"). Anything outside the four known statuses is rejected
// outright; there is no case-folding fallback.
package status

import "fmt"

// Storage-form statuses, exactly as persisted by the API.
const (
	New        = "New"
	InProgress = "In Progress"
	Repaired   = "Repaired"
	Scrap      = "Scrap"
)

// Display-form statuses, used for column and route identifiers.
const (
	DisplayNew        = "new"
	DisplayInProgress = "in-progress"
	DisplayRepaired   = "repaired"
	DisplayScrap      = "scrap"
)

var ErrUnknown = fmt.Errorf("unknown maintenance status")

// All lists the storage-form statuses in board column order.
var All = []string{New, InProgress, Repaired, Scrap}

// AllDisplay lists the display-form statuses in board column order.
var AllDisplay = []string{DisplayNew, DisplayInProgress, DisplayRepaired, DisplayScrap}

var toDisplay = map[string]string{
	New:        DisplayNew,
	InProgress: DisplayInProgress,
	Repaired:   DisplayRepaired,
	Scrap:      DisplayScrap,
}

var toStorage = map[string]string{
	DisplayNew:        New,
	DisplayInProgress: InProgress,
	DisplayRepaired:   Repaired,
	DisplayScrap:      Scrap,
}

// ToDisplay maps a storage-form status to its display form.
func ToDisplay(s string) (string, error) {
	d, ok := toDisplay[s]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknown, s)
	}
	return d, nil
}

// ToStorage maps a display-form status to its storage form.
func ToStorage(d string) (string, error) {
	s, ok := toStorage[d]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknown, d)
	}
	return s, nil
}

// IsValid reports whether s is one of the four storage-form statuses.
func IsValid(s string) bool {
	_, ok := toDisplay[s]
	return ok
}

// IsValidDisplay reports whether d is one of the four display-form statuses.
func IsValidDisplay(d string) bool {
	_, ok := toStorage[d]
	return ok
}

// IsTerminal reports whether a storage-form status closes the request.
// Terminal requests are never overdue.
func IsTerminal(s string) bool {
	return s == Repaired || s == Scrap
}

// Label returns the human-readable column title for a storage-form status.
// For this vocabulary it is the storage form itself.
func Label(s string) string {
	return s
}
