// @title TIL Trivia API
// @description API for the daily trivia game "TIL Trivia"
// @BasePath /api/v1
// @schemes http
package main

import (
	"log"

	"github.com/aaronparryphoto/til-demo/internal/api"
	"github.com/aaronparryphoto/til-demo/internal/repository"
	"github.com/aaronparryphoto/til-demo/internal/service"
	"github.com/aaronparryphoto/til-demo/pkg/cleanup"
	"github.com/aaronparryphoto/til-demo/pkg/config"
	jwtservice "github.com/aaronparryphoto/til-demo/pkg/jwt_service"
)

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()
	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}
	attemptsRepo := repository.NewAttemptsRepo(&dbCfg)
	userService := service.NewUserService(repository.NewUsersRepo(&dbCfg))
	quizService := service.NewQuizService(repository.NewQuestionsRepo(&dbCfg), attemptsRepo)
	statsService := service.NewStatsService(attemptsRepo, repository.NewStatsSnapshotRepo(&dbCfg))
	serv := api.New(&api.ServicesList{
		UserService:  userService,
		QuizService:  quizService,
		StatsService: statsService,
		JwtService:   jwtservice.New(cfg.GetString("JWT_SECRET")),
	})
	defer cleanup.CleanUp()
	err := serv.Run(cfg.GetStringOrDefault("API_ADDRESS", ":8080"))
	if err != nil {
		log.Println("Server error: " + err.Error())
	}
}
