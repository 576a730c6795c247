package controllers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/soundreel/admin-backend/api/responses"
	"github.com/soundreel/admin-backend/api/validators"
	"github.com/soundreel/admin-backend/internal/admins"
	"github.com/soundreel/admin-backend/pkg/enums"
	"github.com/soundreel/admin-backend/pkg/logger"
)

type saveAdminBody struct {
	ID        *uuid.UUID `json:"id"`
	Email     string     `json:"email" validate:"required,email"`
	Password  string     `json:"password"`
	FirstName string     `json:"first_name" validate:"required"`
	LastName  string     `json:"last_name" validate:"required"`
	Role      string     `json:"role" validate:"required"`
}

// AdminList returns every admin account except the caller.
func AdminList(svc admins.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, err := actorID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		rows, err := svc.ListAdmins(r.Context(), caller)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, rows)
	}
}

// AdminSave creates an admin account, or updates one when the body carries
// an id.
func AdminSave(svc admins.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		caller, err := actorID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var body saveAdminBody
		if err := validators.DecodeJSONBody(r, &body); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		dto, err := svc.SaveAdmin(r.Context(), caller, admins.SaveAdminInput{
			ID:        body.ID,
			Email:     body.Email,
			Password:  body.Password,
			FirstName: body.FirstName,
			LastName:  body.LastName,
			Role:      enums.AdminRole(body.Role),
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
