package main

import (
	"os"

	"backend/config"
	"backend/routes"
	"backend/services"

	"github.com/sirupsen/logrus"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	cfg := config.Load()
	db, err := config.InitDB(cfg)
	if err != nil {
		logger.Fatalf("Failed to initialize database: %v", err)
	}

	authSvc := services.NewAuthService(db, logger)
	fridgeSvc := services.NewFridgeService(db, logger)
	recipeSvc := services.NewRecipeService(fridgeSvc, cfg.SpoonacularAPIKey, cfg.SpoonacularBaseURL, logger)

	r := routes.SetupRouter(authSvc, fridgeSvc, recipeSvc)

	logger.Infof("listening on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatalf("Server exited: %v", err)
	}
}
