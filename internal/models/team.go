package models

// Team is a named group of users. Every team has exactly one leader, and a
// user may lead at most one team; creating a team removes its leader from any
// other team's member list.
type Team struct {
	// ID is the unique identifier for the team (UUID format).
	ID string `json:"id"`

	// TeamName is the display name of the team (unique).
	TeamName string `json:"teamName"`

	// Subsidiary is the organizational unit the team belongs to.
	Subsidiary string `json:"subsidiary"`

	// LeaderID references the User leading this team.
	LeaderID string `json:"leaderId"`

	// Members is the list of member User ids. The leader is always a member.
	Members []string `json:"members"`

	// Clients is the list of Client ids assigned to this team.
	Clients []string `json:"clients"`
}
