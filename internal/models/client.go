package models

// Client represents an organization the hierarchy is maintained for.
// Categories are shared: the same category id may legitimately appear in the
// ProcessGroups list of several clients.
type Client struct {
	// ID is the unique identifier for the client (UUID format).
	ID string `json:"id"`

	// Name is the display name of the client.
	Name string `json:"name"`

	// TaxID is the client's tax identifier, if known.
	TaxID string `json:"taxId"`

	// Description is optional free text about the client.
	Description string `json:"description"`

	// ProcessGroups is the ordered list of Category ids attached to this
	// client. Duplicates are tolerated; attach operations do not dedupe.
	ProcessGroups []string `json:"processGroups"`

	// IsFavorite marks the client as globally highlighted.
	IsFavorite bool `json:"isFavorite"`
}
