package database

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/UdayRajVadeghar/synera-backend/errs"
	"github.com/UdayRajVadeghar/synera-backend/models"
)

type ProjectInterestRepo struct {
	db *gorm.DB
}

func NewProjectInterestRepo(db *gorm.DB) *ProjectInterestRepo {
	return &ProjectInterestRepo{db}
}

// Add inserts an interest record. The (user_id, project_id) unique
// index arbitrates concurrent duplicates; a violation comes back as a
// conflict rather than a storage failure.
func (r *ProjectInterestRepo) Add(interest *models.ProjectInterest) error {
	if err := r.db.Create(interest).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewAlreadyExists("interest")
		}
		return errs.NewDatabaseError("create", "interest", err)
	}
	return nil
}

// Exists reports whether the user has already expressed interest in the
// project.
func (r *ProjectInterestRepo) Exists(userID, projectID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.ProjectInterest{}).
		Where("user_id = ? AND project_id = ?", userID, projectID).
		Count(&count).Error
	if err != nil {
		return false, errs.NewDatabaseError("find", "interest", err)
	}
	return count > 0, nil
}
