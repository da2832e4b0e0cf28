/*
Package handler provides HTTP handler functions for presence and universe lookups.
*/
package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"rbxpresence/internal/app/presence"
	"rbxpresence/internal/pkg/errs"
	"rbxpresence/internal/pkg/logx"
	"rbxpresence/internal/pkg/req"
	"rbxpresence/internal/pkg/resp"
)

// presenceInput is the POST /api/presence body. userId may be a number or a numeric string.
type presenceInput struct {
	UserID *req.ID `json:"userId" validate:"required,min=0"`
}

// HandleGetPresence serves GET /api/presence/{userId}.
func HandleGetPresence(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw := chi.URLParam(r, "userId")

		userID, err := parseID(raw)
		if err != nil {
			logx.Ctx(r.Context()).Warn().Str("user_id", raw).Msg("Rejected invalid userId")
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidUserID))
			return
		}

		respondPresence(w, r, deps, userID)
	}
}

// HandlePostPresence serves POST /api/presence with a {"userId": ...} body.
func HandlePostPresence(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input presenceInput
		if customErr := req.BindJSON(w, r, &input); customErr != nil {
			event := logx.Ctx(r.Context()).Warn().Int("code", customErr.Code)
			if input.UserID != nil {
				event = event.Int64("user_id", int64(*input.UserID))
			}
			event.Msg("Rejected presence request body")

			if customErr.Code == errs.ErrInvalidParams {
				customErr = errs.NewError(errs.ErrInvalidUserID)
			}
			resp.RespondError(w, r, customErr)
			return
		}

		userID := int64(*input.UserID)
		respondPresence(w, r, deps, userID)
	}
}

func respondPresence(w http.ResponseWriter, r *http.Request, deps *AppDeps, userID int64) {
	record, err := deps.Gateway.GetPresence(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, presence.ErrInvalidUserID):
			logx.Ctx(r.Context()).Warn().Int64("user_id", userID).Msg("Rejected invalid userId")
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidUserID))
		case errors.Is(err, presence.ErrUserNotFound):
			logx.Ctx(r.Context()).Info().Int64("user_id", userID).Msg("User not found")
			resp.RespondError(w, r, errs.NewError(errs.ErrUserNotFound))
		default:
			logx.Ctx(r.Context()).Error().Err(err).Int64("user_id", userID).Msg("Presence request failed")
			resp.RespondError(w, r, errs.Upstream(err))
		}
		return
	}

	resp.RespondSuccess(w, r, record)
}

// HandleGetUniverse serves GET /api/universe/{universeId}.
func HandleGetUniverse(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		raw := chi.URLParam(r, "universeId")

		universeID, err := parseID(raw)
		if err != nil {
			logx.Ctx(r.Context()).Warn().Str("universe_id", raw).Msg("Rejected invalid universeId")
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidUniverseID))
			return
		}

		universe, err := deps.Gateway.ResolveUniverseToPlace(r.Context(), universeID)
		if err != nil {
			switch {
			case errors.Is(err, presence.ErrInvalidUniverseID):
				logx.Ctx(r.Context()).Warn().Int64("universe_id", universeID).Msg("Rejected invalid universeId")
				resp.RespondError(w, r, errs.NewError(errs.ErrInvalidUniverseID))
			case errors.Is(err, presence.ErrUniverseNotFound):
				logx.Ctx(r.Context()).Info().Int64("universe_id", universeID).Msg("Universe not found")
				resp.RespondError(w, r, errs.NewError(errs.ErrUniverseNotFound))
			default:
				logx.Ctx(r.Context()).Error().Err(err).Int64("universe_id", universeID).Msg("Universe request failed")
				resp.RespondError(w, r, errs.Upstream(err))
			}
			return
		}

		resp.RespondSuccess(w, r, universe)
	}
}

// parseID accepts base-10 integers only.
func parseID(raw string) (int64, error) {
	return strconv.ParseInt(raw, 10, 64)
}
