package filter

import (
	"strings"

	"github.com/cleared-dev/dre/internal/model"
)

// NormalizeUnitCode canonicalizes a unit code for comparison. Numeric codes
// lose surrounding whitespace and leading zeros ("007" -> "7"); other codes
// are only trimmed, and stay case-sensitive.
func NormalizeUnitCode(code string) string {
	code = strings.TrimSpace(code)
	if code == "" || !isDigits(code) {
		return code
	}
	trimmed := strings.TrimLeft(code, "0")
	if trimmed == "" {
		return "0"
	}
	return trimmed
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// UnitSet is the set of normalized unit codes a record must belong to.
// The zero value places no restriction.
type UnitSet struct {
	restricted bool
	codes      map[string]struct{}
}

// AllUnits matches every record.
func AllUnits() UnitSet {
	return UnitSet{}
}

// NewUnitSet selects the catalog units that satisfy f. With an empty catalog
// or an inactive filter the set matches everything.
func NewUnitSet(catalog []model.OrgUnit, f model.UnitFilter) UnitSet {
	if len(catalog) == 0 || !f.Active() {
		return AllUnits()
	}

	groups := make(map[string]struct{}, len(f.Groups))
	for _, g := range f.Groups {
		groups[strings.TrimSpace(g)] = struct{}{}
	}
	units := make(map[string]struct{}, len(f.Units))
	for _, u := range f.Units {
		units[NormalizeUnitCode(u)] = struct{}{}
	}

	codes := make(map[string]struct{})
	for _, u := range catalog {
		if len(groups) > 0 {
			if _, ok := groups[strings.TrimSpace(u.Group)]; !ok {
				continue
			}
		}
		if len(units) > 0 {
			_, byCode := units[NormalizeUnitCode(u.Code)]
			_, byName := units[strings.TrimSpace(u.Name)]
			if !byCode && !byName {
				continue
			}
		}
		codes[NormalizeUnitCode(u.Code)] = struct{}{}
	}
	return UnitSet{restricted: true, codes: codes}
}

// Contains reports whether unit belongs to the set.
func (s UnitSet) Contains(unit string) bool {
	if !s.restricted {
		return true
	}
	_, ok := s.codes[NormalizeUnitCode(unit)]
	return ok
}

// All reports whether the set places no restriction.
func (s UnitSet) All() bool {
	return !s.restricted
}

// Len returns the number of selected codes, or -1 when unrestricted.
func (s UnitSet) Len() int {
	if !s.restricted {
		return -1
	}
	return len(s.codes)
}
