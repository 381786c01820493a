package main

import (
	"os"

	"github.com/deniz/campusreg/internal/pkg/logger"
	"github.com/deniz/campusreg/internal/server"
)

// @title CampusReg API
// @version 1.0
// @description Record-management service for students, courses, and enrollments

// @host localhost:8080
// @BasePath /api/v1
// @schemes http

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
