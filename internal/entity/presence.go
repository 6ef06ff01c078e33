package entity

type PresenceStatus string

const (
	PresenceOnline  PresenceStatus = "ONLINE"
	PresenceOffline PresenceStatus = "OFFLINE"
	PresenceAway    PresenceStatus = "AWAY"
)

// Member is a directory entry with its current presence.
type Member struct {
	Identity
	Presence PresenceStatus `json:"presence"`
}
