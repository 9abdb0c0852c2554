package main

import (
	"os"

	"github.com/namalnexus/backend/internal/pkg/logger"
	"github.com/namalnexus/backend/internal/server"
)

// @title Namal Nexus API
// @version 1.0
// @description Backend API for the Namal Nexus alumni portal

// @contact.name API Support
// @contact.email alumni@namal.edu.pk

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:3001
// @BasePath /
// @schemes http https

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
