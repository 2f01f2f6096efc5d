// Package registry holds the static configuration of every user-extensible
// lookup table. All generic CRUD routing is keyed by these entries; adding a
// lookup kind is a data change here, not a new handler.
package registry

// DependentRef names the table/column that may reference rows of a kind.
// Deleting a referenced row is rejected with Message, verbatim.
type DependentRef struct {
	Table   string
	Column  string
	Message string
}

// EntityKind is the configuration of one lookup category. Key is stable and
// immutable; all requests for the kind are routed by it.
type EntityKind struct {
	Key         string
	DisplayName string
	NameField   string // column holding the display value
	APIField    string // field name on the wire
	Table       string
	Dependent   *DependentRef
}

var kinds = []EntityKind{
	{
		Key:         "venue-types",
		DisplayName: "Venue Types",
		NameField:   "name",
		APIField:    "name",
		Table:       "venue_types",
		Dependent: &DependentRef{
			Table:   "events",
			Column:  "venue_type_id",
			Message: "This venue type is used by events and cannot be deleted",
		},
	},
	{
		Key:         "talent-categories",
		DisplayName: "Talent Categories",
		NameField:   "category",
		APIField:    "name",
		Table:       "talent_categories",
		Dependent: &DependentRef{
			Table:   "talent",
			Column:  "category_id",
			Message: "This category is assigned to talent and cannot be deleted",
		},
	},
	{
		Key:         "trip-status",
		DisplayName: "Trip Status",
		NameField:   "status",
		APIField:    "name",
		Table:       "trip_statuses",
		Dependent: &DependentRef{
			Table:   "trips",
			Column:  "status_id",
			Message: "This status is used by trips and cannot be deleted",
		},
	},
	{
		Key:         "location-types",
		DisplayName: "Location Types",
		NameField:   "name",
		APIField:    "name",
		Table:       "location_types",
		Dependent: &DependentRef{
			Table:   "locations",
			Column:  "location_type_id",
			Message: "This location type is used by locations and cannot be deleted",
		},
	},
	{
		Key:         "charter-companies",
		DisplayName: "Charter Companies",
		NameField:   "name",
		APIField:    "name",
		Table:       "charter_companies",
		Dependent: &DependentRef{
			Table:   "trips",
			Column:  "charter_company_id",
			Message: "This charter company is used by trips and cannot be deleted",
		},
	},
}

var byKey = func() map[string]EntityKind {
	m := make(map[string]EntityKind, len(kinds))
	for _, k := range kinds {
		m[k.Key] = k
	}
	return m
}()

// Get returns the configuration for a kind key.
func Get(key string) (EntityKind, bool) {
	k, ok := byKey[key]
	return k, ok
}

// MustGet is for call sites where the key is a compile-time constant.
// An unknown key there is a programming error.
func MustGet(key string) EntityKind {
	k, ok := byKey[key]
	if !ok {
		panic("unknown entity kind: " + key)
	}
	return k
}

// All returns every registered kind in declaration order.
func All() []EntityKind {
	out := make([]EntityKind, len(kinds))
	copy(out, kinds)
	return out
}
