package upstream

import (
	"encoding/json"
	"time"
)

// UserPresence is one entry of the presence service's userPresences array.
// Pointer fields are null or absent upstream when the user is not in an experience.
type UserPresence struct {
	UserPresenceType int          `json:"userPresenceType"`
	LastLocation     string       `json:"lastLocation"`
	PlaceID          *int64       `json:"placeId"`
	RootPlaceID      *int64       `json:"rootPlaceId"`
	GameID           *string      `json:"gameId"`
	UniverseID       *int64       `json:"universeId"`
	UserID           int64        `json:"userId"`
	LastOnline       OptionalTime `json:"lastOnline"`
}

var lastOnlineLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
}

// OptionalTime is a timestamp that decodes to the zero value instead of failing
// when the upstream sends null, a non-string, or an unknown layout.
// Timestamps without a zone are read as UTC.
type OptionalTime struct {
	time.Time
}

// UnmarshalJSON implements json.Unmarshaler. It never returns an error.
func (o *OptionalTime) UnmarshalJSON(b []byte) error {
	o.Time = time.Time{}

	var s string
	if err := json.Unmarshal(b, &s); err != nil || s == "" {
		return nil
	}

	for _, layout := range lastOnlineLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			o.Time = t
			return nil
		}
	}
	return nil
}

// Ptr returns nil for the zero time.
func (o OptionalTime) Ptr() *time.Time {
	if o.IsZero() {
		return nil
	}
	t := o.Time
	return &t
}

type presenceRequest struct {
	UserIDs []int64 `json:"userIds"`
}

type presenceResponse struct {
	UserPresences []UserPresence `json:"userPresences"`
}

// Creator is the owner of a universe.
type Creator struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// Game is one entry of the games service's data array. ID is the universe id.
type Game struct {
	ID          int64   `json:"id"`
	RootPlaceID int64   `json:"rootPlaceId"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Creator     Creator `json:"creator"`
	Playing     int64   `json:"playing"`
	Visits      int64   `json:"visits"`
}

type gamesResponse struct {
	Data []Game `json:"data"`
}

type apiErrorBody struct {
	Errors []struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"errors"`
}
