package rest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	core_port "github.com/nasser0p/realestate/internal/core/port"
)

// Server is the REST API server for the discovery frontend.
type Server struct {
	httpServer *http.Server
	logger     core_port.LoggerPort
}

func NewServer(
	port string,
	allowedOrigins []string,
	properties *PropertiesHandler,
	favorites *FavoritesHandler,
	tokenService core_port.TokenServicePort,
	baseLogger core_port.LoggerPort,
) *Server {
	r := chi.NewRouter()

	r.Use(middleware.RealIP, LoggerMiddleware(baseLogger), middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Trace-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Route("/api/v1", func(r chi.Router) {
		// Public discovery surface.
		r.Group(func(r chi.Router) {
			r.Get("/properties", properties.FindProperties)
			r.Get("/properties/filter-options", properties.GetFilterOptions)
			r.Get("/properties/{propertyID}", properties.GetProperty)
		})

		// Listing management, admins only.
		r.Group(func(r chi.Router) {
			r.Use(RequireAuthMiddleware(tokenService))
			r.Use(RequireAdminMiddleware)

			r.Post("/properties", properties.CreateProperty)
			r.Put("/properties/{propertyID}", properties.UpdateProperty)
			r.Delete("/properties/{propertyID}", properties.DeleteProperty)
			r.Post("/properties/{propertyID}/media", properties.UploadMedia)
			r.Post("/properties/generate-description", properties.GenerateDescription)
		})

		// Favorites. Anonymous callers are allowed everywhere: toggle
		// no-ops for them and the reads come back empty.
		r.Route("/favorites", func(r chi.Router) {
			r.Use(OptionalAuthMiddleware(tokenService))

			r.Get("/", favorites.GetUserFavorites)
			r.Get("/ids", favorites.GetUserFavoriteIDs)
			r.Get("/{propertyID}", favorites.IsFavorite)
			r.Post("/{propertyID}/toggle", favorites.ToggleFavorite)
		})
	})

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	return &Server{
		httpServer: srv,
		logger:     baseLogger,
	}
}

// Start runs the HTTP server and blocks until shutdown.
func (s *Server) Start() error {
	s.logger.Info("Starting REST API server", core_port.Fields{"address": s.httpServer.Addr})
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		s.logger.Error("Could not start server", err, nil)
		return fmt.Errorf("could not start server: %w", err)
	}
	return nil
}

// Stop gracefully shuts the server down.
func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Stopping REST API server...", nil)
	return s.httpServer.Shutdown(ctx)
}
