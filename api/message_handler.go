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

type messageHandler struct {
	responder Responder
	logger    zerolog.Logger
	projects  ProjectStore
	messages  MessageStore
	users     UserStore
}

func newMessageHandler(projects ProjectStore, messages MessageStore, users UserStore) messageHandler {
	logger := log.With().Str("handlerName", "messageHandler").Logger()

	return messageHandler{
		responder: NewResponder(logger),
		logger:    logger,
		projects:  projects,
		messages:  messages,
		users:     users,
	}
}

type sendMessageRequest struct {
	ProjectID string `json:"projectId"`
	Message   string `json:"message"`
}

// sendMessage delivers a contact message to a project's creator
// @Summary Send contact message
// @Description Persists a message from the caller to the project's creator; the creator cannot message their own project
// @Tags Messages
// @Accept json
// @Produce json
// @Param body body sendMessageRequest true "Project reference and message text"
// @Success 200 {object} map[string]interface{} "Confirmation with recipient identity"
// @Failure 400 {object} ErrorResponse "Bad Request - Missing fields or own project"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Not Found - Project or sender not found"
// @Router /messages [post]
func (h messageHandler) sendMessage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		callerID, ok := ctxGetUserID(r.Context())
		if !ok {
			h.responder.WriteError(w, errs.NewUnauthorizedError("authentication required"))
			return
		}

		var req sendMessageRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode message request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("message", err))
			return
		}

		if req.ProjectID == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("projectId"))
			return
		}
		if req.Message == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("message"))
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
			h.responder.WriteError(w, errs.NewBadRequestError("you cannot message your own project"))
			return
		}

		sender, err := h.users.FindByID(callerID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		message := models.ProjectMessage{
			Content:     req.Message,
			ProjectID:   projectID,
			SenderID:    sender.ID,
			RecipientID: project.CreatorID,
		}
		if err := h.messages.Add(&message); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		// No email or real-time delivery happens here; the message only
		// lands in the recipient's stored inbox.
		recipientName := ""
		if project.Creator != nil {
			recipientName = project.Creator.Email
		}

		h.responder.WriteJSON(w, map[string]interface{}{
			"message": "Message sent successfully. The team leader will contact you soon.",
			"data": map[string]interface{}{
				"messageId":     message.ID,
				"projectTitle":  project.Title,
				"recipientName": recipientName,
			},
		})
	}
}
