package database

import (
	"encoding/json"
	"strings"

	"gorm.io/gorm"

	"github.com/UdayRajVadeghar/synera-backend/models"
)

// escapeLike escapes LIKE metacharacters so user input is matched
// literally inside a %...% pattern.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}

// containsPattern builds the %substring% argument for an ILIKE match.
func containsPattern(s string) string {
	return "%" + escapeLike(s) + "%"
}

// techTokenJSON encodes a single token as a one-element JSON array for a
// jsonb containment check against the tech_stack column. Containment on
// jsonb arrays gives exact-member semantics, matching tokens verbatim.
func techTokenJSON(token string) string {
	b, _ := json.Marshal([]string{token})
	return string(b)
}

// projectFilterScope translates a ProjectFilter into query constraints.
// Zero-valued fields add nothing; distinct fields AND together; the
// free-text search expands to a disjunction over title, description and
// tech-stack membership.
func projectFilterScope(f models.ProjectFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if f.Category != "" {
			db = db.Where("category = ?", f.Category)
		}
		if f.Difficulty != "" {
			db = db.Where("difficulty = ?", f.Difficulty)
		}
		if f.Title != "" {
			db = db.Where("title ILIKE ?", containsPattern(f.Title))
		}
		if f.Search != "" {
			pattern := containsPattern(f.Search)
			db = db.Where(
				db.Session(&gorm.Session{NewDB: true}).
					Where("title ILIKE ?", pattern).
					Or("description ILIKE ?", pattern).
					Or("tech_stack @> ?::jsonb", techTokenJSON(f.Search)),
			)
		}
		return db
	}
}
