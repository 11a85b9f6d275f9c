package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aaronparryphoto/til-demo/internal/service"
)

type Server struct {
	mx           *chi.Mux
	userService  service.UserServiceI
	quizService  service.QuizServiceI
	statsService service.StatsServiceI
	jwtService   JWTServiceI
}

type ServicesList struct {
	UserService  service.UserServiceI
	QuizService  service.QuizServiceI
	StatsService service.StatsServiceI
	JwtService   JWTServiceI
}

func New(servicesOptions *ServicesList) *Server {
	s := &Server{
		mx:           chi.NewMux(),
		userService:  servicesOptions.UserService,
		quizService:  servicesOptions.QuizService,
		statsService: servicesOptions.StatsService,
		jwtService:   servicesOptions.JwtService,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mx.Use(s.RequestIDMiddleware, s.SettingUpLoggerMiddleware)
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Post("/register", s.Register)
		r.Post("/login", s.Login)
		r.Get("/quiz/daily", s.GetDailyQuiz)
		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware, s.LoggerExtensionMiddleware)
			r.Post("/quiz/attempts", s.SubmitAttempt)
			r.Get("/quiz/attempts/{date}", s.GetAttempt)
			r.Get("/quiz/attempts/{date}/share", s.GetShareText)
			r.Get("/quiz/today/status", s.GetTodayStatus)
			r.Get("/stats", s.GetStats)
			r.Put("/profile", s.UpdateProfile)
			r.Delete("/account", s.DeleteAccount)
		})
	})
}

func (s *Server) Run(address string) error {
	return http.ListenAndServe(address, s.mx)
}

// Handler exposes the router, for tests.
func (s *Server) Handler() http.Handler {
	return s.mx
}
