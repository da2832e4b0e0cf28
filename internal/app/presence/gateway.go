/*
Package presence implements the presence lookup gateway.

A lookup fetches the user's presence from the platform, fills a missing place id from the
universe's root place when possible, and exposes the server instance id only when the
gateway runs with a session credential.
*/
package presence

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"rbxpresence/internal/app/upstream"
	"rbxpresence/internal/pkg/logx"
)

var (
	ErrInvalidUserID     = errors.New("invalid user id")
	ErrInvalidUniverseID = errors.New("invalid universe id")
	ErrUserNotFound      = errors.New("user not found")
	ErrUniverseNotFound  = errors.New("universe not found")
)

// Upstream is the subset of the platform client used by the gateway.
type Upstream interface {
	FetchPresences(ctx context.Context, userIDs []int64, sessionCookie string) ([]upstream.UserPresence, error)
	FetchGames(ctx context.Context, universeIDs []int64) ([]upstream.Game, error)
}

// Gateway answers presence and universe lookups. It holds no per-request state and is
// safe for concurrent use.
type Gateway struct {
	api           Upstream
	sessionCookie string
}

// NewGateway returns a Gateway using api. An empty sessionCookie disables the server
// instance field.
func NewGateway(api Upstream, sessionCookie string) *Gateway {
	return &Gateway{api: api, sessionCookie: sessionCookie}
}

// HasSessionCredential reports whether lookups are made with a session cookie.
func (g *Gateway) HasSessionCredential() bool {
	return g.sessionCookie != ""
}

// GetPresence looks up the presence of userID.
// Upstream failures are returned unwrapped and unlogged; the caller reports them.
func (g *Gateway) GetPresence(ctx context.Context, userID int64) (*Record, error) {
	if userID < 0 {
		return nil, ErrInvalidUserID
	}

	lookupID := uuid.NewString()
	ctx = upstream.WithCorrelationID(ctx, lookupID)
	log := logx.Ctx(ctx).With().
		Str("lookup_id", lookupID).
		Int64("user_id", userID).
		Logger()

	log.Debug().Bool("authenticated", g.HasSessionCredential()).Msg("Looking up presence")

	presences, err := g.api.FetchPresences(ctx, []int64{userID}, g.sessionCookie)
	if err != nil {
		return nil, err
	}
	if len(presences) == 0 {
		return nil, ErrUserNotFound
	}

	entry := presences[0]
	record := &Record{
		UserID:           entry.UserID,
		UserPresenceType: entry.UserPresenceType,
		LastLocation:     entry.LastLocation,
		PlaceID:          nonZero(entry.PlaceID),
		RootPlaceID:      nonZero(entry.RootPlaceID),
		UniverseID:       nonZero(entry.UniverseID),
		LastOnline:       entry.LastOnline.Ptr(),
	}
	if record.LastLocation == "" {
		record.LastLocation = DefaultLocation
	}

	if g.HasSessionCredential() && entry.GameID != nil && *entry.GameID != "" {
		gameID := *entry.GameID
		record.GameID = &gameID
		record.HasServerInstance = true
	}

	if record.PlaceID == nil && record.UniverseID != nil {
		universe, err := g.ResolveUniverseToPlace(ctx, *record.UniverseID)
		if err != nil {
			log.Warn().Err(err).Int64("universe_id", *record.UniverseID).Msg("Place resolution failed, leaving placeId empty")
		} else {
			placeID := universe.RootPlaceID
			record.PlaceID = &placeID
			log.Debug().Int64("place_id", placeID).Msg("Resolved placeId from universe")
		}
	}

	return record, nil
}

// ResolveUniverseToPlace translates universeID into its root place. It makes exactly one
// upstream call.
func (g *Gateway) ResolveUniverseToPlace(ctx context.Context, universeID int64) (*Universe, error) {
	if universeID <= 0 {
		return nil, ErrInvalidUniverseID
	}

	games, err := g.api.FetchGames(ctx, []int64{universeID})
	if err != nil {
		return nil, err
	}
	if len(games) == 0 || games[0].RootPlaceID == 0 {
		return nil, ErrUniverseNotFound
	}

	game := games[0]
	return &Universe{
		UniverseID:  universeID,
		RootPlaceID: game.RootPlaceID,
		Name:        game.Name,
		Creator: Creator{
			ID:   game.Creator.ID,
			Name: game.Creator.Name,
			Type: game.Creator.Type,
		},
	}, nil
}

// nonZero treats 0 as absent; the platform uses both null and 0 for "no value".
func nonZero(v *int64) *int64 {
	if v == nil || *v == 0 {
		return nil
	}
	out := *v
	return &out
}
