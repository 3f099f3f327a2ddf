package models

// Process is a leaf entity of the hierarchy. By convention a process is
// referenced by exactly one subgroup at a time, though batch attachment can
// leave it listed under several (a known, accepted inconsistency).
type Process struct {
	// ID is the unique identifier for the process (UUID format).
	ID string `json:"id"`

	// Name is the display name of the process.
	Name string `json:"name"`

	// Hidden is the global visibility flag.
	Hidden bool `json:"hidden"`
}
