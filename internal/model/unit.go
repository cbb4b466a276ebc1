package model

// OrgUnit is a row of the organizational-unit catalog.
type OrgUnit struct {
	Code  string
	Name  string
	Group string
}

// UnitFilter is the group/unit selection made in the dashboard.
type UnitFilter struct {
	Groups []string
	Units  []string // codes or names
}

// Active reports whether any group or unit is selected.
func (f UnitFilter) Active() bool {
	return len(f.Groups) > 0 || len(f.Units) > 0
}
