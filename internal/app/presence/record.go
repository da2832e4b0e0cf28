package presence

import "time"

// DefaultLocation is reported when the platform gives no last location.
const DefaultLocation = "Unknown"

// Presence types reported by the platform.
const (
	TypeOffline   = 0
	TypeOnline    = 1
	TypeInGame    = 2
	TypeInStudio  = 3
	TypeInvisible = 4
)

// Record is the normalized presence of one user. It lives for a single request.
type Record struct {
	UserID           int64  `json:"userId"`
	UserPresenceType int    `json:"userPresenceType"`
	LastLocation     string `json:"lastLocation"`
	PlaceID          *int64 `json:"placeId"`
	RootPlaceID      *int64 `json:"rootPlaceId"`
	UniverseID       *int64 `json:"universeId"`

	// GameID is the server instance id. It is only populated when the gateway holds a
	// session credential and the upstream reported one.
	GameID            *string `json:"gameId"`
	HasServerInstance bool    `json:"hasServerInstance"`

	LastOnline *time.Time `json:"lastOnline"`
}

// Creator is the owner of a universe.
type Creator struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// Universe is the result of a universe to place resolution.
type Universe struct {
	UniverseID  int64   `json:"universeId"`
	RootPlaceID int64   `json:"rootPlaceId"`
	Name        string  `json:"name"`
	Creator     Creator `json:"creator"`
}
