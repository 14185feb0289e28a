package api

import (
	"net/http"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/UdayRajVadeghar/synera-backend/models"
)

// Facet bounds for the suggestion endpoint.
const (
	maxTitleSuggestions    = 5
	maxTechSuggestions     = 5
	maxCategorySuggestions = 3
	minSuggestionQueryLen  = 2
)

type searchHandler struct {
	responder Responder
	logger    zerolog.Logger
	projects  ProjectStore
}

func newSearchHandler(projects ProjectStore) searchHandler {
	logger := log.With().Str("handlerName", "searchHandler").Logger()

	return searchHandler{
		responder: NewResponder(logger),
		logger:    logger,
		projects:  projects,
	}
}

// suggestions returns bounded candidates in three independent facets
// @Summary Search suggestions
// @Description Returns up to 5 title, 5 tech-stack and 3 category candidates for a query fragment; fragments shorter than 2 characters return empty facets
// @Tags Search
// @Produce json
// @Param q query string true "Query fragment"
// @Success 200 {object} map[string]models.Suggestions "Suggestion facets"
// @Failure 500 {object} ErrorResponse "Internal Server Error"
// @Router /search/suggestions [get]
func (h searchHandler) suggestions() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := strings.TrimSpace(r.URL.Query().Get("q"))
		if len(query) < minSuggestionQueryLen {
			h.responder.WriteJSON(w, map[string]models.Suggestions{
				"suggestions": models.EmptySuggestions(),
			})
			return
		}

		titles, err := h.projects.TitlesMatching(query, maxTitleSuggestions)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		stacks, err := h.projects.TechStacksContaining(query, maxTechSuggestions)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		categories, err := h.projects.CategoriesMatching(query, maxCategorySuggestions)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		suggestions := models.Suggestions{
			Titles:     nonNil(titles),
			TechStacks: matchingTechTokens(stacks, query, maxTechSuggestions),
			Categories: nonNil(categories),
		}

		h.responder.WriteJSON(w, map[string]models.Suggestions{"suggestions": suggestions})
	}
}

// matchingTechTokens flattens the matched projects' tech stacks,
// keeping the tokens that contain the query case-insensitively,
// deduplicated in first-seen order and truncated to limit.
func matchingTechTokens(stacks [][]string, query string, limit int) []string {
	lowered := strings.ToLower(query)
	seen := make(map[string]struct{})
	tokens := []string{}
	for _, stack := range stacks {
		for _, tech := range stack {
			if !strings.Contains(strings.ToLower(tech), lowered) {
				continue
			}
			if _, ok := seen[tech]; ok {
				continue
			}
			seen[tech] = struct{}{}
			tokens = append(tokens, tech)
			if len(tokens) == limit {
				return tokens
			}
		}
	}
	return tokens
}

// nonNil keeps JSON facets as [] rather than null.
func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
