package models

// Subgroup is a subdivision of a category holding an ordered list of
// processes. Insertion order is display order.
type Subgroup struct {
	// ID is the unique identifier for the subgroup (UUID format).
	ID string `json:"id"`

	// Name is the display name of the subgroup.
	Name string `json:"name"`

	// Processes is the ordered list of Process ids under this subgroup.
	Processes []string `json:"processes"`

	// Hidden is the global visibility flag.
	Hidden bool `json:"hidden"`
}
