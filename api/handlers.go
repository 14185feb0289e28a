package api

import (
	"github.com/UdayRajVadeghar/synera-backend/database"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(database database.Database) *routeHandlers {
	return &routeHandlers{
		projectHandler:  newProjectHandler(database.ProjectRepo()),
		interestHandler: newInterestHandler(database.ProjectRepo(), database.InterestRepo()),
		messageHandler:  newMessageHandler(database.ProjectRepo(), database.MessageRepo(), database.UserRepo()),
		searchHandler:   newSearchHandler(database.ProjectRepo()),
		userHandler:     newUserHandler(database.UserRepo()),
	}
}
