package models

// Entity types that can be hidden through a visibility override.
const (
	EntityTypeCategory = "Category"
	EntityTypeSubgroup = "Subgroup"
	EntityTypeProcess  = "Process"
)

// ValidEntityType reports whether t names an entity type that can appear in a
// visibility override.
func ValidEntityType(t string) bool {
	switch t {
	case EntityTypeCategory, EntityTypeSubgroup, EntityTypeProcess:
		return true
	}
	return false
}

// HiddenEntity is one visibility override entry. The (EntityID, EntityType)
// pair is unique within a settings record.
type HiddenEntity struct {
	// EntityID references the hidden entity.
	EntityID string `json:"entityId"`

	// EntityType is one of Category, Subgroup or Process.
	EntityType string `json:"entityType"`

	// Hidden marks the entity as suppressed for this (user, client) pair.
	// The write path only ever sets it to true; the field exists so a later
	// unhide operation can reuse the same entries.
	Hidden bool `json:"hidden"`
}

// ClientSettings is the per-(user, client) visibility override record. It is
// scoped to exactly one (UserID, ClientID) pair and suppresses entities beyond
// their own global Hidden flag.
type ClientSettings struct {
	// ID is the unique identifier for the record (UUID format).
	ID string `json:"id"`

	// UserID references the user the overrides belong to.
	UserID string `json:"userId"`

	// ClientID references the client the overrides apply to.
	ClientID string `json:"clientId"`

	// HiddenEntities is the list of override entries.
	HiddenEntities []HiddenEntity `json:"hiddenEntities"`
}

// FindHiddenEntity returns the index of the entry matching (entityID,
// entityType), or -1 if none exists.
func (s *ClientSettings) FindHiddenEntity(entityID, entityType string) int {
	for i, he := range s.HiddenEntities {
		if he.EntityID == entityID && he.EntityType == entityType {
			return i
		}
	}
	return -1
}
