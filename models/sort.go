package models

import "strings"

// SortDirection selects the order of the card list.
type SortDirection int

const (
	// SortAscending orders users A to Z by first name. It is the zero value.
	SortAscending SortDirection = iota
	// SortDescending orders users Z to A by first name.
	SortDescending
)

// Labels of the sort selector options.
const (
	SortLabelDefault = "Default order"
	SortLabelReverse = "Reverse order"
)

// ParseSortDirection maps a selector value to a direction. Only the reverse
// option label (or "desc") selects descending order; any other value falls
// back to ascending.
func ParseSortDirection(value string) SortDirection {
	switch strings.TrimSpace(value) {
	case SortLabelReverse, "desc":
		return SortDescending
	default:
		return SortAscending
	}
}

// Label returns the selector option text for d.
func (d SortDirection) Label() string {
	if d == SortDescending {
		return SortLabelReverse
	}
	return SortLabelDefault
}

// Toggle returns the opposite direction.
func (d SortDirection) Toggle() SortDirection {
	if d == SortDescending {
		return SortAscending
	}
	return SortDescending
}

func (d SortDirection) String() string {
	if d == SortDescending {
		return "desc"
	}
	return "asc"
}
