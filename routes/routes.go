package routes

import (
	"log/slog"
	"net/http"

	"github.com/Dosada05/tournament-draws/handlers"
	"github.com/Dosada05/tournament-draws/middleware"
	"github.com/Dosada05/tournament-draws/services"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/Dosada05/tournament-draws/docs"
)

type Handlers struct {
	Auth      *handlers.AuthHandler
	Draw      *handlers.DrawHandler
	Score     *handlers.ScoreHandler
	Format    *handlers.FormatHandler
	WebSocket *handlers.WebSocketHandler
}

type Options struct {
	JWTSecret      string
	AllowedOrigins []string
	Logger         *slog.Logger
}

func SetupRoutes(router *chi.Mux, h Handlers, opts Options) {
	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.RealIP)
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"status":"ok"}` + "\n"))
	})
	router.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	organizerOnly := func(r chi.Router) {
		r.Use(middleware.Authenticate(opts.JWTSecret))
		r.Use(middleware.Authorize(services.RoleOrganizer, services.RoleAdmin))
		r.Use(middleware.Audit(opts.Logger))
	}

	router.Post("/auth/token", h.Auth.IssueToken)

	router.Route("/matchup-formats", func(r chi.Router) {
		r.Get("/", h.Format.ListFormats)
		r.Get("/validate", h.Format.ValidateFormat)
		r.Post("/parse", h.Format.ParseFormat)
		r.Post("/stringify", h.Format.StringifyFormat)
	})

	router.Route("/draws", func(r chi.Router) {
		r.Get("/", h.Draw.ListDraws)
		r.Get("/{drawID}", h.Draw.GetDraw)
		r.Get("/{drawID}/structures/{structureID}/tally", h.Score.GetStructureTally)
		r.Get("/{drawID}/matchups/{matchUpID}/score-string", h.Score.GetScoreString)
		r.Get("/{drawID}/matchups/{matchUpID}/score-history", h.Score.GetScoreHistory)

		r.Group(func(r chi.Router) {
			organizerOnly(r)
			r.Post("/", h.Draw.CreateDraw)
			r.Delete("/{drawID}", h.Draw.DeleteDraw)
			r.Post("/{drawID}/links/qualifying", h.Draw.AddQualifyingLink)
			r.Post("/{drawID}/snapshots", h.Draw.CreateSnapshot)
			r.Post("/{drawID}/structures/{structureID}/adhoc-matchups", h.Draw.AddAdHocMatchUps)
			r.Put("/{drawID}/matchups/{matchUpID}/score", h.Score.SetMatchUpScore)
			r.Patch("/{drawID}/matchups/{matchUpID}/sets/{setNumber}", h.Score.SetSetValue)
			r.Delete("/{drawID}/matchups/{matchUpID}/score-history", h.Score.UndoScore)
		})
	})

	router.Get("/ws/draws/{drawID}", h.WebSocket.ServeWs)
}
