package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"

	"github.com/UdayRajVadeghar/synera-backend/errs"
	"github.com/UdayRajVadeghar/synera-backend/models"
)

type projectHandler struct {
	responder Responder
	logger    zerolog.Logger
	projects  ProjectStore
}

func newProjectHandler(projects ProjectStore) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder: NewResponder(logger),
		logger:    logger,
		projects:  projects,
	}
}

// projectPayload is the create/update request body. Field names match
// the form the frontend submits.
type projectPayload struct {
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	Requirements   string   `json:"requirements"`
	TechStack      []string `json:"techStack"`
	TeamSize       int      `json:"teamSize"`
	Timeframe      string   `json:"timeframe"`
	Difficulty     string   `json:"difficulty"`
	Category       string   `json:"category"`
	Commitment     string   `json:"commitment"`
	Communication  string   `json:"communication"`
	GithubRequired bool     `json:"githubRequired"`
}

// validate checks the payload's required fields, reporting the first
// missing one by name.
func (p projectPayload) validate() error {
	switch {
	case p.Title == "":
		return errs.NewMissingRequiredFieldError("title")
	case p.Description == "":
		return errs.NewMissingRequiredFieldError("description")
	case p.Requirements == "":
		return errs.NewMissingRequiredFieldError("requirements")
	case len(p.TechStack) == 0:
		return errs.NewMissingRequiredFieldError("techStack")
	case p.TeamSize <= 0:
		return errs.NewMissingRequiredFieldError("teamSize")
	case p.Timeframe == "":
		return errs.NewMissingRequiredFieldError("timeframe")
	case p.Difficulty == "":
		return errs.NewMissingRequiredFieldError("difficulty")
	case p.Category == "":
		return errs.NewMissingRequiredFieldError("category")
	}
	return nil
}

// apply copies the payload onto a project record, filling optional
// fields with their defaults when absent.
func (p projectPayload) apply(project *models.Project) {
	project.Title = p.Title
	project.Description = p.Description
	project.Requirements = p.Requirements
	project.TechStack = datatypes.JSONSlice[string](p.TechStack)
	project.TeamSize = p.TeamSize
	project.Timeframe = p.Timeframe
	project.Difficulty = p.Difficulty
	project.Category = p.Category
	project.Commitment = p.Commitment
	if project.Commitment == "" {
		project.Commitment = models.DefaultCommitment
	}
	project.Communication = p.Communication
	if project.Communication == "" {
		project.Communication = models.DefaultCommunication
	}
	project.GithubRequired = p.GithubRequired
}

// projectResponse is a project with its creator's public profile joined
// in. List responses carry the listing-safe subset; single fetches also
// carry email and GitHub handle.
type projectResponse struct {
	models.Project
	Creator *models.PublicUser `json:"creator,omitempty"`
}

func listProjectResponse(p *models.Project) projectResponse {
	resp := projectResponse{Project: *p}
	if p.Creator != nil {
		pub := p.Creator.Public()
		resp.Creator = &pub
	}
	return resp
}

func fullProjectResponse(p *models.Project) projectResponse {
	resp := projectResponse{Project: *p}
	if p.Creator != nil {
		pub := p.Creator.PublicWithContact()
		resp.Creator = &pub
	}
	return resp
}

// listProjects retrieves listings matching the optional filters
// @Summary List projects
// @Description Retrieves project listings filtered by category, difficulty, title substring or free-text search, newest first
// @Tags Projects
// @Produce json
// @Param category query string false "Exact category match"
// @Param difficulty query string false "Exact difficulty match"
// @Param title query string false "Case-insensitive title substring"
// @Param search query string false "Free-text search over title, description and tech stack"
// @Success 200 {object} map[string][]projectResponse "Matching projects"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Router /projects [get]
func (h projectHandler) listProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		filter := models.ProjectFilter{
			Category:   query.Get("category"),
			Difficulty: query.Get("difficulty"),
			Title:      query.Get("title"),
			Search:     query.Get("search"),
		}

		projects, err := h.projects.FindAll(filter)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		responses := make([]projectResponse, 0, len(projects))
		for _, project := range projects {
			responses = append(responses, listProjectResponse(project))
		}

		h.responder.WriteJSON(w, map[string][]projectResponse{"projects": responses})
	}
}

// getProject retrieves a single listing with its creator's profile
// @Summary Get project
// @Description Retrieves a project by ID, including the creator's public profile
// @Tags Projects
// @Produce json
// @Param projectID path string true "Project ID" format(uuid)
// @Success 200 {object} projectResponse "Project with creator"
// @Failure 400 {object} ErrorResponse "Bad Request - Invalid projectID"
// @Failure 404 {object} ErrorResponse "Not Found - Project not found"
// @Router /projects/{projectID} [get]
func (h projectHandler) getProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := uuid.Parse(chi.URLParam(r, "projectID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid projectID"))
			return
		}

		project, err := h.projects.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, fullProjectResponse(project))
	}
}

// createProject creates a new listing owned by the caller
// @Summary Create project
// @Description Creates a new project listing; the authenticated caller becomes its permanent owner
// @Tags Projects
// @Accept json
// @Produce json
// @Param project body projectPayload true "Project data"
// @Success 201 {object} projectResponse "Created project"
// @Failure 400 {object} ErrorResponse "Bad Request - Missing required field"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Router /projects [post]
func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		callerID, ok := ctxGetUserID(r.Context())
		if !ok {
			h.responder.WriteError(w, errs.NewUnauthorizedError("authentication required"))
			return
		}

		var payload projectPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode project request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("project", err))
			return
		}

		if err := payload.validate(); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var project models.Project
		payload.apply(&project)
		project.CreatorID = callerID

		if err := h.projects.Add(&project); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSONStatus(w, http.StatusCreated, map[string]interface{}{
			"message": "Project created successfully",
			"project": project,
		})
	}
}

// updateProject replaces a listing's mutable fields wholesale
// @Summary Update project
// @Description Updates a project; only its owner may do so
// @Tags Projects
// @Accept json
// @Produce json
// @Param projectID path string true "Project ID" format(uuid)
// @Param project body projectPayload true "Updated project data"
// @Success 200 {object} projectResponse "Updated project"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden - Caller is not the owner"
// @Failure 404 {object} ErrorResponse "Not Found - Project not found"
// @Router /projects/{projectID} [put]
func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		callerID, ok := ctxGetUserID(r.Context())
		if !ok {
			h.responder.WriteError(w, errs.NewUnauthorizedError("authentication required"))
			return
		}

		projectID, err := uuid.Parse(chi.URLParam(r, "projectID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid projectID"))
			return
		}

		project, err := h.projects.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if project.CreatorID != callerID {
			h.responder.WriteError(w, errs.NewForbiddenError("you do not have permission to update this project"))
			return
		}

		var payload projectPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode project request body")
			h.responder.WriteError(w, errs.NewMalformedPayloadError("project", err))
			return
		}

		payload.apply(project)

		if err := h.projects.Update(project); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]interface{}{
			"message": "Project updated successfully",
			"project": project,
		})
	}
}

// deleteProject removes a listing permanently
// @Summary Delete project
// @Description Deletes a project; only its owner may do so
// @Tags Projects
// @Produce json
// @Param projectID path string true "Project ID" format(uuid)
// @Success 200 {object} map[string]string "Success message"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden - Caller is not the owner"
// @Failure 404 {object} ErrorResponse "Not Found - Project not found"
// @Router /projects/{projectID} [delete]
func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		callerID, ok := ctxGetUserID(r.Context())
		if !ok {
			h.responder.WriteError(w, errs.NewUnauthorizedError("authentication required"))
			return
		}

		projectID, err := uuid.Parse(chi.URLParam(r, "projectID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid projectID"))
			return
		}

		project, err := h.projects.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if project.CreatorID != callerID {
			h.responder.WriteError(w, errs.NewForbiddenError("you do not have permission to delete this project"))
			return
		}

		if err := h.projects.Delete(projectID); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"message": "Project deleted successfully",
		})
	}
}

// listCategories returns the categories currently offered: the seed set
// unioned with every category already in use. Never a closed enum.
func (h projectHandler) listCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		inUse, err := h.projects.DistinctCategories()
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string][]string{
			"categories": unionCategories(models.SeedCategories, inUse),
		})
	}
}

// unionCategories merges the seed list with the in-use set, seed order
// first, preserving the store's order for novel categories.
func unionCategories(seed, inUse []string) []string {
	seen := make(map[string]struct{}, len(seed)+len(inUse))
	merged := make([]string, 0, len(seed)+len(inUse))
	for _, c := range seed {
		if _, ok := seen[c]; !ok {
			seen[c] = struct{}{}
			merged = append(merged, c)
		}
	}
	for _, c := range inUse {
		if _, ok := seen[c]; !ok {
			seen[c] = struct{}{}
			merged = append(merged, c)
		}
	}
	return merged
}
