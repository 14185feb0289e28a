package database

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/UdayRajVadeghar/synera-backend/errs"
	"github.com/UdayRajVadeghar/synera-backend/models"
)

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

// FindAll returns projects matching the filter, newest first, with the
// creator preloaded. Id breaks ties between equal creation timestamps so
// the order is deterministic.
func (r *ProjectRepo) FindAll(filter models.ProjectFilter) ([]*models.Project, error) {
	var projects []*models.Project
	err := r.db.
		Scopes(projectFilterScope(filter)).
		Preload("Creator").
		Order("created_at DESC, id DESC").
		Find(&projects).Error
	if err != nil {
		return nil, errs.NewDatabaseError("find", "projects", err)
	}
	return projects, nil
}

// FindByID returns a project by its ID with the creator preloaded.
func (r *ProjectRepo) FindByID(id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := r.db.Preload("Creator").First(&project, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewNotFound("project")
		}
		return nil, errs.NewDatabaseError("find", "project", err)
	}
	return &project, nil
}

// Add inserts a new project into the database
func (r *ProjectRepo) Add(project *models.Project) error {
	if err := r.db.Create(project).Error; err != nil {
		return errs.NewDatabaseError("create", "project", err)
	}
	return nil
}

// Update replaces an existing project's fields wholesale
func (r *ProjectRepo) Update(project *models.Project) error {
	if err := r.db.Save(project).Error; err != nil {
		return errs.NewDatabaseError("update", "project", err)
	}
	return nil
}

// Delete removes a project from the database by id. Interest and
// message rows referencing it go with it via ON DELETE CASCADE.
func (r *ProjectRepo) Delete(id uuid.UUID) error {
	if err := r.db.Delete(&models.Project{}, "id = ?", id).Error; err != nil {
		return errs.NewDatabaseError("delete", "project", err)
	}
	return nil
}

// DistinctCategories returns the category values currently in use.
func (r *ProjectRepo) DistinctCategories() ([]string, error) {
	var categories []string
	err := r.db.Model(&models.Project{}).
		Distinct("category").
		Pluck("category", &categories).Error
	if err != nil {
		return nil, errs.NewDatabaseError("find", "categories", err)
	}
	return categories, nil
}

// TitlesMatching returns up to limit project titles containing q,
// case-insensitively.
func (r *ProjectRepo) TitlesMatching(q string, limit int) ([]string, error) {
	var titles []string
	err := r.db.Model(&models.Project{}).
		Where("title ILIKE ?", containsPattern(q)).
		Limit(limit).
		Pluck("title", &titles).Error
	if err != nil {
		return nil, errs.NewDatabaseError("find", "project titles", err)
	}
	return titles, nil
}

// TechStacksContaining returns the tech stacks of up to limit projects
// whose stack contains the token as an exact member.
func (r *ProjectRepo) TechStacksContaining(token string, limit int) ([][]string, error) {
	var projects []*models.Project
	err := r.db.
		Select("tech_stack").
		Where("tech_stack @> ?::jsonb", techTokenJSON(token)).
		Limit(limit).
		Find(&projects).Error
	if err != nil {
		return nil, errs.NewDatabaseError("find", "project tech stacks", err)
	}
	stacks := make([][]string, 0, len(projects))
	for _, p := range projects {
		stacks = append(stacks, []string(p.TechStack))
	}
	return stacks, nil
}

// CategoriesMatching returns up to limit distinct categories containing
// q, case-insensitively.
func (r *ProjectRepo) CategoriesMatching(q string, limit int) ([]string, error) {
	var categories []string
	err := r.db.Model(&models.Project{}).
		Distinct("category").
		Where("category ILIKE ?", containsPattern(q)).
		Limit(limit).
		Pluck("category", &categories).Error
	if err != nil {
		return nil, errs.NewDatabaseError("find", "categories", err)
	}
	return categories, nil
}
