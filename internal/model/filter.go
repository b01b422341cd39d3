package model

import (
	"fmt"
	"strings"
)

// Filter selects clinics by appointment availability.
type Filter string

const (
	FilterAll  Filter = "all"
	FilterHas  Filter = "has"
	FilterNone Filter = "none"
)

// ParseFilter accepts "all", "has" or "none" (case-insensitive). Empty means all.
func ParseFilter(s string) (Filter, error) {
	switch f := Filter(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FilterAll, nil
	case FilterAll, FilterHas, FilterNone:
		return f, nil
	default:
		return "", fmt.Errorf("unknown availability filter %q (want all, has or none)", s)
	}
}

// Apply returns the clinics matching f, in their original order. The result
// never aliases the input slice.
func (f Filter) Apply(clinics []Clinic) []Clinic {
	out := make([]Clinic, 0, len(clinics))
	for _, c := range clinics {
		switch f {
		case FilterHas:
			if !c.HasQuota {
				continue
			}
		case FilterNone:
			if c.HasQuota {
				continue
			}
		}
		out = append(out, c)
	}
	return out
}

// AvailabilityCounts are the totals shown next to each filter option.
type AvailabilityCounts struct {
	All  int `json:"all"`
	Has  int `json:"has"`
	None int `json:"none"`
}

// CountAvailability tallies clinics with and without open slots.
func CountAvailability(clinics []Clinic) AvailabilityCounts {
	var c AvailabilityCounts
	for _, cl := range clinics {
		c.All++
		if cl.HasQuota {
			c.Has++
		} else {
			c.None++
		}
	}
	return c
}
