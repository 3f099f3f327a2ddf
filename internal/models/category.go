package models

// Category is a process group referenced by clients.
type Category struct {
	// ID is the unique identifier for the category (UUID format).
	ID string `json:"id"`

	// Name is the display name of the category.
	Name string `json:"name"`

	// Subgroups is the ordered list of Subgroup ids under this category.
	// A subgroup id should appear in at most one category's list once a
	// reassignment completes; this is maintained by the service layer, not
	// enforced by the store.
	Subgroups []string `json:"subgroups"`

	// Hidden is the global visibility flag, independent of any per-user
	// override.
	Hidden bool `json:"hidden"`
}
