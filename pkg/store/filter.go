package store

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"

	"github.com/artem13815/resumeboard/pkg/resume"
)

// Filter is the combined state of the three filter controls. Every field is optional.
type Filter struct {
	Search   string `json:"search" form:"search" query:"search"`
	Category string `json:"category" form:"category" query:"category"`
	Sort     string `json:"sort" form:"sort" query:"sort"`
}

// IsZero reports whether no control narrows or orders the list.
func (f Filter) IsZero() bool {
	return f.Search == "" && f.Category == "" && f.Sort == ""
}

// Apply derives the visible subset: search, then position/category, then a stable sort.
// items is never modified; the result shares no backing array with it.
func Apply(items []resume.Record, f Filter) []resume.Record {
	fold := cases.Fold()
	list := slices.Clone(items)

	if f.Search != "" {
		q := fold.String(f.Search)
		list = slices.DeleteFunc(list, func(r resume.Record) bool {
			hay := fold.String(r.Name + r.Overview + strings.Join(r.Categories, " "))
			return !strings.Contains(hay, q)
		})
	}

	if f.Category != "" {
		want := fold.String(f.Category)
		// the value names a position if any record in the whole collection has it
		byPosition := slices.ContainsFunc(items, func(r resume.Record) bool {
			return r.HasPosition() && fold.String(*r.Position) == want
		})
		if byPosition {
			list = slices.DeleteFunc(list, func(r resume.Record) bool {
				return !r.HasPosition() || fold.String(*r.Position) != want
			})
		} else {
			list = slices.DeleteFunc(list, func(r resume.Record) bool {
				return !slices.ContainsFunc(r.Categories, func(c string) bool {
					return fold.String(c) == want
				})
			})
		}
	}

	if key, desc, ok := parseSort(f.Sort); ok {
		slices.SortStableFunc(list, func(a, b resume.Record) int {
			return compareValues(sortValueOf(a, key, fold), sortValueOf(b, key, fold), desc)
		})
	}
	return list
}

// parseSort splits "<field> <ASC|DESC>"; the direction defaults to ASC.
func parseSort(s string) (key string, desc bool, ok bool) {
	parts := strings.Fields(s)
	if len(parts) == 0 {
		return "", false, false
	}
	if len(parts) > 1 {
		desc = strings.EqualFold(parts[1], "DESC")
	}
	return strings.ToLower(parts[0]), desc, true
}

type sortValue struct {
	missing bool
	numeric bool
	num     int
	str     string
}

func sortValueOf(r resume.Record, key string, fold cases.Caser) sortValue {
	str := func(s string) sortValue {
		if s == "" {
			return sortValue{missing: true}
		}
		return sortValue{str: fold.String(s)}
	}
	switch key {
	case "score":
		if r.Score == nil {
			return sortValue{missing: true}
		}
		return sortValue{numeric: true, num: *r.Score}
	case "position":
		if !r.HasPosition() {
			return sortValue{missing: true}
		}
		return str(*r.Position)
	case "date":
		// ISO-8601 strings order lexically
		return str(r.Date)
	case "id":
		return str(r.ID)
	case "name":
		return str(r.Name)
	case "overview":
		return str(r.Overview)
	case "status":
		return str(string(r.Status))
	case "image":
		return str(r.Image)
	default:
		return sortValue{missing: true}
	}
}

// compareValues orders missing values after present ones in both directions.
func compareValues(a, b sortValue, desc bool) int {
	switch {
	case a.missing && b.missing:
		return 0
	case a.missing:
		return 1
	case b.missing:
		return -1
	}
	var c int
	switch {
	case a.numeric && b.numeric:
		c = cmpInt(a.num, b.num)
	default:
		c = strings.Compare(a.str, b.str)
	}
	if desc {
		return -c
	}
	return c
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
