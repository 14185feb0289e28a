package api

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/UdayRajVadeghar/synera-backend/errs"
	"github.com/UdayRajVadeghar/synera-backend/models"
)

type interestHandler struct {
	responder Responder
	logger    zerolog.Logger
	projects  ProjectStore
	interests InterestStore
}

func newInterestHandler(projects ProjectStore, interests InterestStore) interestHandler {
	logger := log.With().Str("handlerName", "interestHandler").Logger()

	return interestHandler{
		responder: NewResponder(logger),
		logger:    logger,
		projects:  projects,
		interests: interests,
	}
}

type expressInterestRequest struct {
	ProjectID string `json:"projectId"`
}

// expressInterest records that the caller wants to join a project
// @Summary Express interest
// @Description Records the caller's interest in a project; at most once per (user, project), and never in the caller's own project
// @Tags Interest
// @Accept json
// @Produce json
// @Param body body expressInterestRequest true "Project reference"
// @Success 200 {object} map[string]string "Confirmation message"
// @Failure 400 {object} ErrorResponse "Bad Request - Missing project ID or own project"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Not Found - Project not found"
// @Failure 409 {object} ErrorResponse "Conflict - Interest already expressed"
// @Router /projects/interest [post]
func (h interestHandler) expressInterest() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		callerID, ok := ctxGetUserID(r.Context())
		if !ok {
			h.responder.WriteError(w, errs.NewUnauthorizedError("authentication required"))
			return
		}

		var req expressInterestRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode interest request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("interest", err))
			return
		}

		if req.ProjectID == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("projectId"))
			return
		}

		projectID, err := uuid.Parse(req.ProjectID)
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid projectId"))
			return
		}

		project, err := h.projects.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if project.CreatorID == callerID {
			h.responder.WriteError(w, errs.NewBadRequestError("you cannot express interest in your own project"))
			return
		}

		exists, err := h.interests.Exists(callerID, projectID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if exists {
			h.responder.WriteError(w, errs.NewConflictError("you have already expressed interest in this project"))
			return
		}

		interest := models.ProjectInterest{
			UserID:    callerID,
			ProjectID: projectID,
		}
		// A concurrent duplicate slips past the existence check; the
		// store's unique index reports it as a conflict.
		if err := h.interests.Add(&interest); err != nil {
			if errs.IsAlreadyExists(err) {
				h.responder.WriteError(w, errs.NewConflictError("you have already expressed interest in this project"))
				return
			}
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"message": "Interest expressed successfully",
		})
	}
}

// checkInterest reports whether the caller has already expressed
// interest in a project. Anonymous callers get false, not an error.
func (h interestHandler) checkInterest() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		callerID, ok := ctxGetUserID(r.Context())
		if !ok {
			h.responder.WriteJSON(w, map[string]bool{"hasInterest": false})
			return
		}

		projectID, err := uuid.Parse(r.URL.Query().Get("projectId"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid projectId"))
			return
		}

		hasInterest, err := h.interests.Exists(callerID, projectID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]bool{"hasInterest": hasInterest})
	}
}
