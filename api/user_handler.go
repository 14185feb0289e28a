package api

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"

	"github.com/UdayRajVadeghar/synera-backend/auth"
	"github.com/UdayRajVadeghar/synera-backend/errs"
	"github.com/UdayRajVadeghar/synera-backend/models"
)

type userHandler struct {
	responder Responder
	logger    zerolog.Logger
	users     UserStore
}

func newUserHandler(users UserStore) userHandler {
	logger := log.With().Str("handlerName", "userHandler").Logger()

	return userHandler{
		responder: NewResponder(logger),
		logger:    logger,
		users:     users,
	}
}

type registerRequest struct {
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	Password       string  `json:"password"`
	GithubUsername *string `json:"githubUsername"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// profileResponse is the account owner's view of their own record.
type profileResponse struct {
	ID             string                                  `json:"id"`
	Name           string                                  `json:"name"`
	Email          string                                  `json:"email"`
	GithubUsername *string                                 `json:"githubUsername"`
	Bio            *string                                 `json:"bio"`
	Links          datatypes.JSONSlice[models.ProfileLink] `json:"links"`
}

func newProfileResponse(u *models.User) profileResponse {
	return profileResponse{
		ID:             u.ID.String(),
		Name:           u.Name,
		Email:          u.Email,
		GithubUsername: u.GithubUsername,
		Bio:            u.Bio,
		Links:          u.Links,
	}
}

// register creates a new account
// @Summary Register
// @Description Creates a new user account with a bcrypt-hashed password
// @Tags Users
// @Accept json
// @Produce json
// @Param body body registerRequest true "Account details"
// @Success 201 {object} map[string]interface{} "Created account"
// @Failure 400 {object} ErrorResponse "Bad Request - Missing field"
// @Failure 409 {object} ErrorResponse "Conflict - Email already registered"
// @Router /auth/register [post]
func (h userHandler) register() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req registerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode register request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("register", err))
			return
		}

		switch {
		case req.Name == "":
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("name"))
			return
		case req.Email == "":
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("email"))
			return
		case req.Password == "":
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("password"))
			return
		}

		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalErrorWithCause("failed to hash password", err))
			return
		}

		user := models.User{
			Name:           req.Name,
			Email:          req.Email,
			PasswordHash:   hash,
			GithubUsername: req.GithubUsername,
		}
		if err := h.users.Add(&user); err != nil {
			if errs.IsAlreadyExists(err) {
				h.responder.WriteError(w, errs.NewConflictError("an account with this email already exists"))
				return
			}
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSONStatus(w, http.StatusCreated, map[string]interface{}{
			"message": "Account created successfully",
			"user":    newProfileResponse(&user),
		})
	}
}

// login verifies credentials and issues a session token
// @Summary Login
// @Description Verifies email and password and returns a signed session token
// @Tags Users
// @Accept json
// @Produce json
// @Param body body loginRequest true "Credentials"
// @Success 200 {object} map[string]interface{} "Token and account"
// @Failure 401 {object} ErrorResponse "Unauthorized - Bad credentials"
// @Router /auth/login [post]
func (h userHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode login request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("login", err))
			return
		}

		if req.Email == "" || req.Password == "" {
			h.responder.WriteError(w, errs.NewUnauthorizedError("invalid email or password"))
			return
		}

		user, err := h.users.FindByEmail(req.Email)
		if err != nil || !auth.CheckPassword(req.Password, user.PasswordHash) {
			// Same response whether the account exists or the password
			// is wrong.
			h.responder.WriteError(w, errs.NewUnauthorizedError("invalid email or password"))
			return
		}

		token, err := auth.GenerateToken(user)
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalErrorWithCause("failed to issue token", err))
			return
		}

		h.responder.WriteJSON(w, map[string]interface{}{
			"token": token,
			"user":  newProfileResponse(user),
		})
	}
}

// getProfile returns the caller's own profile
func (h userHandler) getProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		callerID, ok := ctxGetUserID(r.Context())
		if !ok {
			h.responder.WriteError(w, errs.NewUnauthorizedError("authentication required"))
			return
		}

		user, err := h.users.FindByID(callerID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, newProfileResponse(user))
	}
}

type updateProfileRequest struct {
	Name           string               `json:"name"`
	Bio            *string              `json:"bio"`
	GithubUsername *string              `json:"githubUsername"`
	Links          []models.ProfileLink `json:"links"`
}

// updateProfile mutates the caller's own name, bio, GitHub handle and
// links. Email and password stay as they are.
func (h userHandler) updateProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		callerID, ok := ctxGetUserID(r.Context())
		if !ok {
			h.responder.WriteError(w, errs.NewUnauthorizedError("authentication required"))
			return
		}

		user, err := h.users.FindByID(callerID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var req updateProfileRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode profile request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("profile", err))
			return
		}

		if req.Name != "" {
			user.Name = req.Name
		}
		user.Bio = req.Bio
		user.GithubUsername = req.GithubUsername
		user.Links = datatypes.JSONSlice[models.ProfileLink](req.Links)

		if err := h.users.Update(user); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]interface{}{
			"message": "Profile updated successfully",
			"user":    newProfileResponse(user),
		})
	}
}
