package presence

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rbxpresence/internal/app/upstream"
)

type fakeUpstream struct {
	presences   []upstream.UserPresence
	presenceErr error
	games       []upstream.Game
	gamesErr    error

	presenceCalls int
	gamesCalls    int
	lastCookie    string
	lastUniverses []int64
}

func (f *fakeUpstream) FetchPresences(_ context.Context, _ []int64, cookie string) ([]upstream.UserPresence, error) {
	f.presenceCalls++
	f.lastCookie = cookie
	return f.presences, f.presenceErr
}

func (f *fakeUpstream) FetchGames(_ context.Context, universeIDs []int64) ([]upstream.Game, error) {
	f.gamesCalls++
	f.lastUniverses = universeIDs
	return f.games, f.gamesErr
}

func ptr[T any](v T) *T { return &v }

func TestGetPresenceRejectsNegativeID(t *testing.T) {
	api := &fakeUpstream{}
	_, err := NewGateway(api, "").GetPresence(context.Background(), -1)

	assert.ErrorIs(t, err, ErrInvalidUserID)
	assert.Zero(t, api.presenceCalls)
}

func TestGetPresenceNotFoundSkipsResolver(t *testing.T) {
	api := &fakeUpstream{presences: []upstream.UserPresence{}}
	_, err := NewGateway(api, "").GetPresence(context.Background(), 1)

	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.Equal(t, 1, api.presenceCalls)
	assert.Zero(t, api.gamesCalls)
}

func TestGetPresenceKeepsDirectPlaceID(t *testing.T) {
	api := &fakeUpstream{presences: []upstream.UserPresence{{
		UserID:           1,
		UserPresenceType: TypeInGame,
		PlaceID:          ptr(int64(555)),
		UniverseID:       ptr(int64(999)),
	}}}

	record, err := NewGateway(api, "").GetPresence(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, int64(1), record.UserID)
	assert.Equal(t, TypeInGame, record.UserPresenceType)
	assert.Equal(t, DefaultLocation, record.LastLocation)
	assert.Equal(t, int64(555), *record.PlaceID)
	assert.Equal(t, int64(999), *record.UniverseID)
	assert.Zero(t, api.gamesCalls)
}

func TestGetPresenceResolvesPlaceFromUniverse(t *testing.T) {
	api := &fakeUpstream{
		presences: []upstream.UserPresence{{UserID: 1, UserPresenceType: TypeInGame, UniverseID: ptr(int64(999))}},
		games:     []upstream.Game{{ID: 999, RootPlaceID: 4242, Name: "Obby"}},
	}

	record, err := NewGateway(api, "").GetPresence(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, 1, api.gamesCalls)
	assert.Equal(t, []int64{999}, api.lastUniverses)
	require.NotNil(t, record.PlaceID)
	assert.Equal(t, int64(4242), *record.PlaceID)
}

func TestGetPresenceTreatsZeroPlaceAsAbsent(t *testing.T) {
	api := &fakeUpstream{
		presences: []upstream.UserPresence{{UserID: 1, PlaceID: ptr(int64(0)), UniverseID: ptr(int64(999))}},
		games:     []upstream.Game{{ID: 999, RootPlaceID: 4242}},
	}

	record, err := NewGateway(api, "").GetPresence(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(4242), *record.PlaceID)
}

func TestGetPresenceSwallowsResolverFailure(t *testing.T) {
	cases := map[string]*fakeUpstream{
		"upstream error": {gamesErr: errors.New("games down")},
		"empty data":     {games: []upstream.Game{}},
	}

	for name, api := range cases {
		t.Run(name, func(t *testing.T) {
			api.presences = []upstream.UserPresence{{UserID: 1, LastLocation: "Obby", UniverseID: ptr(int64(999))}}

			record, err := NewGateway(api, "").GetPresence(context.Background(), 1)
			require.NoError(t, err)

			assert.Equal(t, 1, api.gamesCalls)
			assert.Nil(t, record.PlaceID)
			assert.Equal(t, "Obby", record.LastLocation)
		})
	}
}

func TestGetPresencePropagatesUpstreamError(t *testing.T) {
	upstreamErr := &upstream.StatusError{Endpoint: "presence", Status: 503, Message: "Service unavailable"}
	api := &fakeUpstream{presenceErr: upstreamErr}

	_, err := NewGateway(api, "").GetPresence(context.Background(), 1)
	assert.Same(t, upstreamErr, err)
	assert.Zero(t, api.gamesCalls)
}

func TestServerInstanceHiddenWithoutCredential(t *testing.T) {
	api := &fakeUpstream{presences: []upstream.UserPresence{{
		UserID:  1,
		PlaceID: ptr(int64(555)),
		GameID:  ptr("8d3c1a4e-instance"),
	}}}

	record, err := NewGateway(api, "").GetPresence(context.Background(), 1)
	require.NoError(t, err)

	assert.Empty(t, api.lastCookie)
	assert.Nil(t, record.GameID)
	assert.False(t, record.HasServerInstance)
}

func TestServerInstanceExposedWithCredential(t *testing.T) {
	api := &fakeUpstream{presences: []upstream.UserPresence{{
		UserID:  1,
		PlaceID: ptr(int64(555)),
		GameID:  ptr("8d3c1a4e-instance"),
	}}}

	gateway := NewGateway(api, "cookie")
	record, err := gateway.GetPresence(context.Background(), 1)
	require.NoError(t, err)

	assert.True(t, gateway.HasSessionCredential())
	assert.Equal(t, "cookie", api.lastCookie)
	require.NotNil(t, record.GameID)
	assert.Equal(t, "8d3c1a4e-instance", *record.GameID)
	assert.True(t, record.HasServerInstance)
}

func TestServerInstanceAbsentUpstreamWithCredential(t *testing.T) {
	api := &fakeUpstream{presences: []upstream.UserPresence{{UserID: 1}}}

	record, err := NewGateway(api, "cookie").GetPresence(context.Background(), 1)
	require.NoError(t, err)

	assert.Nil(t, record.GameID)
	assert.False(t, record.HasServerInstance)
}

func TestResolveUniverseToPlace(t *testing.T) {
	api := &fakeUpstream{games: []upstream.Game{{
		ID:          999,
		RootPlaceID: 4242,
		Name:        "Obby",
		Creator:     upstream.Creator{ID: 5, Name: "Builder", Type: "Group"},
	}}}

	universe, err := NewGateway(api, "").ResolveUniverseToPlace(context.Background(), 999)
	require.NoError(t, err)

	assert.Equal(t, &Universe{
		UniverseID:  999,
		RootPlaceID: 4242,
		Name:        "Obby",
		Creator:     Creator{ID: 5, Name: "Builder", Type: "Group"},
	}, universe)
}

func TestResolveUniverseToPlaceErrors(t *testing.T) {
	gateway := NewGateway(&fakeUpstream{}, "")

	_, err := gateway.ResolveUniverseToPlace(context.Background(), 0)
	assert.ErrorIs(t, err, ErrInvalidUniverseID)

	_, err = gateway.ResolveUniverseToPlace(context.Background(), 5)
	assert.ErrorIs(t, err, ErrUniverseNotFound)

	upstreamErr := errors.New("boom")
	_, err = NewGateway(&fakeUpstream{gamesErr: upstreamErr}, "").ResolveUniverseToPlace(context.Background(), 5)
	assert.Same(t, upstreamErr, err)
}
