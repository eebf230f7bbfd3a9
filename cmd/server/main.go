package main

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"crew-planner/internal/config"
	"crew-planner/internal/database"
	"crew-planner/internal/handlers"
	"crew-planner/internal/repository"
	"crew-planner/internal/server"
	"crew-planner/internal/service"
)

func main() {
	cfg := config.Load()
	database.Init(cfg.DBDSN)

	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	workerRepo := repository.NewGormWorkerRepository(database.DB)
	projectRepo := repository.NewGormProjectRepository(database.DB)
	assignmentRepo := repository.NewGormAssignmentRepository(database.DB, logger)

	planningService := service.NewPlanningService(workerRepo, projectRepo, assignmentRepo, database.CreateAuditLog, logger)
	planning := handlers.NewPlanning(planningService)

	r := server.NewRouter(cfg, planning)

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	logger.Infof("starting server on %s", addr)
	if err := r.Run(addr); err != nil {
		logger.Fatalf("server error: %v", err)
	}
}
