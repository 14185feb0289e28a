package database

import (
	"gorm.io/gorm"
)

type Database struct {
	userRepo     *UserRepo
	projectRepo  *ProjectRepo
	interestRepo *ProjectInterestRepo
	messageRepo  *ProjectMessageRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		userRepo:     NewUserRepo(db),
		projectRepo:  NewProjectRepo(db),
		interestRepo: NewProjectInterestRepo(db),
		messageRepo:  NewProjectMessageRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) UserRepo() *UserRepo {
	return d.userRepo
}

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) InterestRepo() *ProjectInterestRepo {
	return d.interestRepo
}

func (d Database) MessageRepo() *ProjectMessageRepo {
	return d.messageRepo
}
