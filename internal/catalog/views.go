package catalog

import (
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Filter identifies one of the shaped catalog views.
type Filter string

const (
	FilterRecent     Filter = "recent"
	FilterNearby     Filter = "nearby"
	FilterPrepared   Filter = "prepared"
	FilterEndingSoon Filter = "endingSoon"
	FilterBakery     Filter = "bakery"
)

// ParseFilter validates a raw filter value against the known set.
func ParseFilter(s string) (Filter, bool) {
	switch Filter(s) {
	case FilterRecent, FilterNearby, FilterPrepared, FilterEndingSoon, FilterBakery:
		return Filter(s), true
	}
	return "", false
}

var (
	pickupTimeRe = regexp.MustCompile(`(\d{2}):(\d{2})`)
	distanceRe   = regexp.MustCompile(`^\d+(\.\d+)?`)
)

// endOfDay is the sort key for pickup labels with no HH:MM cutoff.
const endOfDay = 24 * 60

// PickupMinutes extracts the HH:MM cutoff from a pickup label as
// minutes since midnight. Unparsable labels sort as end of day.
func PickupMinutes(label string) int {
	m := pickupTimeRe.FindStringSubmatch(label)
	if m == nil {
		return endOfDay
	}
	hours, _ := strconv.Atoi(m[1])
	minutes, _ := strconv.Atoi(m[2])
	return hours*60 + minutes
}

// DistanceKm reads the leading decimal of a distance label, ignoring the
// unit suffix. Labels without a leading number sort last.
func DistanceKm(label string) float64 {
	m := distanceRe.FindString(strings.TrimSpace(label))
	if m == "" {
		return math.MaxFloat64
	}
	km, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return math.MaxFloat64
	}
	return km
}

// Search keeps items whose title or seller name contains the term,
// case-insensitively. An empty term keeps everything.
func Search(items []Item, term string) []Item {
	if term == "" {
		return items
	}
	term = strings.ToLower(term)
	var out []Item
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Title), term) ||
			strings.Contains(strings.ToLower(item.Seller.Name), term) {
			out = append(out, item)
		}
	}
	return out
}

// Recent returns the catalog reversed: insertion order proxies recency.
func Recent(items []Item) []Item {
	out := make([]Item, len(items))
	for i, item := range items {
		out[len(items)-1-i] = item
	}
	return out
}

// Nearby sorts ascending by parsed distance, stable among equal keys.
func Nearby(items []Item) []Item {
	out := make([]Item, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool {
		return DistanceKm(out[i].Distance) < DistanceKm(out[j].Distance)
	})
	return out
}

// EndingSoon sorts ascending by pickup cutoff, stable among equal keys.
func EndingSoon(items []Item) []Item {
	out := make([]Item, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool {
		return PickupMinutes(out[i].PickupTime) < PickupMinutes(out[j].PickupTime)
	})
	return out
}

func Prepared(items []Item) []Item {
	return withTag(items, TagPrepared)
}

func Bakery(items []Item) []Item {
	return withTag(items, TagBakery)
}

func withTag(items []Item, tag string) []Item {
	var out []Item
	for _, item := range items {
		if item.HasTag(tag) {
			out = append(out, item)
		}
	}
	return out
}

// View shapes the catalog for the given filter.
func View(items []Item, f Filter) []Item {
	switch f {
	case FilterRecent:
		return Recent(items)
	case FilterNearby:
		return Nearby(items)
	case FilterPrepared:
		return Prepared(items)
	case FilterEndingSoon:
		return EndingSoon(items)
	case FilterBakery:
		return Bakery(items)
	default:
		return items
	}
}
