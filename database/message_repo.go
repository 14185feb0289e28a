package database

import (
	"gorm.io/gorm"

	"github.com/UdayRajVadeghar/synera-backend/errs"
	"github.com/UdayRajVadeghar/synera-backend/models"
)

type ProjectMessageRepo struct {
	db *gorm.DB
}

func NewProjectMessageRepo(db *gorm.DB) *ProjectMessageRepo {
	return &ProjectMessageRepo{db}
}

// Add inserts a contact message into the database
func (r *ProjectMessageRepo) Add(message *models.ProjectMessage) error {
	if err := r.db.Create(message).Error; err != nil {
		return errs.NewDatabaseError("create", "message", err)
	}
	return nil
}
