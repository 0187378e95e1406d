package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"interest-calculator/service"
)

type Dependencies struct {
	Interest    *service.InterestService
	Calculator  *service.CalculatorService
	RateLimiter *RateLimiter
	Logger      zerolog.Logger
}

func NewRouter(deps Dependencies) http.Handler {
	interestHandler := NewInterestHandler(deps.Interest)
	sessionHandler := NewSessionHandler(deps.Calculator)

	router := chi.NewRouter()
	router.Use(Logger(&deps.Logger))
	router.Use(middleware.Recoverer)
	if deps.RateLimiter != nil {
		router.Use(RateLimit(deps.RateLimiter))
	}

	router.Route("/interest", func(r chi.Router) {
		r.Post("/calculate", interestHandler.CalculateInterest)
		r.Post("/format", interestHandler.FormatAmount)
		r.Get("/frequencies", interestHandler.ListFrequencies)
	})

	router.Route("/sessions", func(r chi.Router) {
		r.Post("/", sessionHandler.Start)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", sessionHandler.Get)
			r.Delete("/", sessionHandler.Delete)
			r.Put("/fields/{field}", sessionHandler.SetField)
			r.Post("/calculate", sessionHandler.Calculate)
			r.Post("/reset", sessionHandler.Reset)
		})
	})

	return router
}
