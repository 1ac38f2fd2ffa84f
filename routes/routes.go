package routes

import (
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/bhorvath/fixturegen/handlers"
	"github.com/bhorvath/fixturegen/middleware"
)

// SetupRoutes mounts the full API. Reads are public; everything that changes
// a tournament requires a valid token.
func SetupRoutes(
	router *chi.Mux,
	jwtSecret string,
	authHandler *handlers.AuthHandler,
	tournamentHandler *handlers.TournamentHandler,
	teamHandler *handlers.TeamHandler,
	refereeHandler *handlers.RefereeHandler,
	venueHandler *handlers.VenueHandler,
	scheduleHandler *handlers.ScheduleHandler,
	matchHandler *handlers.MatchHandler,
	webSocketHandler *handlers.WebSocketHandler,
) {
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.RealIP)
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	authenticate := middleware.Authenticator([]byte(jwtSecret))

	router.Post("/auth/signup", authHandler.SignUp)
	router.Post("/auth/signin", authHandler.SignIn)
	router.With(authenticate).Get("/auth/me", authHandler.Me)

	router.Route("/tournaments", func(r chi.Router) {
		r.Get("/{tournamentID}", tournamentHandler.Get)
		r.Get("/{tournamentID}/teams", teamHandler.List)
		r.Get("/{tournamentID}/referees", refereeHandler.List)
		r.Get("/{tournamentID}/venues", venueHandler.List)
		r.Get("/{tournamentID}/schedule", scheduleHandler.Get)
		r.Get("/{tournamentID}/matches", matchHandler.List)
		r.Get("/{tournamentID}/matches/exist", matchHandler.Exists)

		r.Group(func(r chi.Router) {
			r.Use(authenticate)

			r.Get("/", tournamentHandler.List)
			r.Post("/", tournamentHandler.Create)
			r.Patch("/{tournamentID}", tournamentHandler.Update)
			r.Delete("/{tournamentID}", tournamentHandler.Delete)
			r.Post("/{tournamentID}/logo", tournamentHandler.UploadLogo)

			r.Post("/{tournamentID}/teams", teamHandler.Create)
			r.Put("/{tournamentID}/teams/{teamID}", teamHandler.Update)
			r.Delete("/{tournamentID}/teams", teamHandler.DeleteBatch)
			r.Put("/{tournamentID}/teams/{teamID}/stadium", teamHandler.SetStadium)
			r.Delete("/{tournamentID}/teams/{teamID}/stadium", teamHandler.RemoveStadium)
			r.Post("/{tournamentID}/teams/{teamID}/crest", teamHandler.UploadCrest)

			r.Post("/{tournamentID}/referees", refereeHandler.Create)
			r.Put("/{tournamentID}/referees/{refereeID}", refereeHandler.Update)
			r.Delete("/{tournamentID}/referees/{refereeID}", refereeHandler.Delete)

			r.Post("/{tournamentID}/venues", venueHandler.Create)
			r.Put("/{tournamentID}/venues/{venueID}", venueHandler.Update)
			r.Delete("/{tournamentID}/venues/{venueID}", venueHandler.Delete)

			r.Put("/{tournamentID}/schedule", scheduleHandler.Replace)

			r.Post("/{tournamentID}/generate", matchHandler.Generate)
			r.Delete("/{tournamentID}/matches", matchHandler.DeleteAll)
		})
	})

	router.With(authenticate).Post("/matches/{matchID}/result", matchHandler.SubmitResult)

	router.Get("/ws/tournaments/{tournamentID}", webSocketHandler.ServeWs)
}
