package api

import (
	"github.com/google/uuid"

	"github.com/UdayRajVadeghar/synera-backend/models"
)

// Store interfaces consumed by the handlers. The database package's
// repos satisfy them; tests substitute in-memory fakes.

type ProjectStore interface {
	FindAll(filter models.ProjectFilter) ([]*models.Project, error)
	FindByID(id uuid.UUID) (*models.Project, error)
	Add(project *models.Project) error
	Update(project *models.Project) error
	Delete(id uuid.UUID) error
	DistinctCategories() ([]string, error)
	TitlesMatching(q string, limit int) ([]string, error)
	TechStacksContaining(token string, limit int) ([][]string, error)
	CategoriesMatching(q string, limit int) ([]string, error)
}

type InterestStore interface {
	Add(interest *models.ProjectInterest) error
	Exists(userID, projectID uuid.UUID) (bool, error)
}

type MessageStore interface {
	Add(message *models.ProjectMessage) error
}

type UserStore interface {
	Add(user *models.User) error
	FindByID(id uuid.UUID) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	Update(user *models.User) error
}
