package database

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/UdayRajVadeghar/synera-backend/errs"
	"github.com/UdayRajVadeghar/synera-backend/models"
)

type UserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *UserRepo {
	return &UserRepo{db}
}

// Add inserts a new user. Emails are unique; a duplicate surfaces as a
// conflict.
func (r *UserRepo) Add(user *models.User) error {
	if err := r.db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewAlreadyExists("user")
		}
		return errs.NewDatabaseError("create", "user", err)
	}
	return nil
}

// FindByID returns a user by its ID
func (r *UserRepo) FindByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewNotFound("user")
		}
		return nil, errs.NewDatabaseError("find", "user", err)
	}
	return &user, nil
}

// FindByEmail returns a user by email
func (r *UserRepo) FindByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewNotFound("user")
		}
		return nil, errs.NewDatabaseError("find", "user", err)
	}
	return &user, nil
}

// Update saves profile changes for an existing user
func (r *UserRepo) Update(user *models.User) error {
	if err := r.db.Save(user).Error; err != nil {
		return errs.NewDatabaseError("update", "user", err)
	}
	return nil
}
