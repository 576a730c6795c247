package controllers

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/soundreel/admin-backend/api/responses"
	"github.com/soundreel/admin-backend/api/validators"
	"github.com/soundreel/admin-backend/internal/appusers"
	"github.com/soundreel/admin-backend/pkg/enums"
	"github.com/soundreel/admin-backend/pkg/logger"
	"github.com/soundreel/admin-backend/pkg/pagination"
)

type saveUserBody struct {
	ID       *uuid.UUID `json:"id"`
	Username string     `json:"username" validate:"required"`
	Name     string     `json:"name" validate:"required"`
	Device   string     `json:"device"`
}

// UserList returns unblocked end users, oldest first.
func UserList(svc appusers.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := svc.ListUsers(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, rows)
	}
}

// UserSearch matches the query against usernames and display names.
func UserSearch(svc appusers.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit, err := validators.ParseQueryInt(r, "limit", pagination.DefaultLimit, 1, pagination.MaxLimit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		rows, err := svc.SearchUsers(r.Context(), strings.TrimSpace(r.URL.Query().Get("q")), limit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, rows)
	}
}

// UserSave creates an end user, or updates one when the body carries an id.
func UserSave(svc appusers.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, err := actorID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body saveUserBody
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		dto, err := svc.SaveUser(r.Context(), caller, appusers.SaveUserInput{
			ID:       body.ID,
			Username: body.Username,
			Name:     body.Name,
			Device:   enums.Device(body.Device),
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		status := http.StatusOK
		if body.ID == nil {
			status = http.StatusCreated
		}
		responses.WriteSuccessStatus(w, status, dto)
	}
}

// UserBlock hides the user from listings while keeping the row addressable.
func UserBlock(svc appusers.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, err := actorID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		id, err := pathUUID(r, "userId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.BlockUser(r.Context(), caller, id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "blocked"})
	}
}

// UserUnblock restores a blocked user.
func UserUnblock(svc appusers.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, err := actorID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		id, err := pathUUID(r, "userId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.UnblockUser(r.Context(), caller, id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "unblocked"})
	}
}
