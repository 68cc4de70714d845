package server

import (
	"fmt"
	"net/http"
	"time"

	httpLogger "github.com/chi-middleware/logrus-logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/jwtauth/v5"

	"github.com/revmark/revmark/internal"
	"github.com/revmark/revmark/pkg/auth"
	"github.com/revmark/revmark/pkg/models"
	"github.com/revmark/revmark/pkg/web"
	"github.com/revmark/revmark/pkg/web/webhandlers"
)

var log = internal.GetLogger()

const ReadHeaderTimeout = 5 * time.Second

// Create creates a new HTTP server with the given app state
func Create(appState *models.AppState) *http.Server {
	host := appState.Config.Server.Host
	port := appState.Config.Server.Port
	router := setupRouter(appState)
	return &http.Server{
		Addr:              fmt.Sprintf("%s:%d", host, port),
		Handler:           router,
		ReadHeaderTimeout: ReadHeaderTimeout,
	}
}

func setupRouter(appState *models.AppState) *chi.Mux {
	router := chi.NewRouter()
	router.Use(httpLogger.Logger("router", log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(SendVersion)
	router.Use(middleware.Heartbeat("/healthz"))

	if appState.Config.Auth.Required {
		log.Info("JWT authentication required")
		router.Use(auth.JWTVerifier(appState.Config))
		router.Use(jwtauth.Authenticator)
	}

	router.Route("/api/v1", func(r chi.Router) {
		// Stateless annotation of caller-supplied text
		r.Post("/annotate", AnnotateHandler())

		// Review-related routes
		r.Route("/reviews", func(r chi.Router) {
			r.Get("/", ListReviewsHandler(appState))
			r.Post("/", CreateReviewHandler(appState))
			r.Route("/{reviewUUID}", func(r chi.Router) {
				r.Get("/", GetReviewHandler(appState))
				r.Patch("/", UpdateReviewMetadataHandler(appState))
				r.Delete("/", DeleteReviewHandler(appState))
				// Annotation is computed per request, never stored
				r.Get("/annotation", GetReviewAnnotationHandler(appState))
				r.Post("/extract", ExtractReviewPhrasesHandler(appState))
			})
		})

		// Pattern-set-related routes
		r.Route("/patternsets", func(r chi.Router) {
			r.Get("/", ListPatternSetsHandler(appState))
			r.Post("/", CreatePatternSetHandler(appState))
			r.Route("/{patternSetName}", func(r chi.Router) {
				r.Get("/", GetPatternSetHandler(appState))
				r.Delete("/", DeletePatternSetHandler(appState))
			})
		})
	})

	// Admin dashboard
	router.Route("/admin", func(r chi.Router) {
		r.Get("/", webhandlers.GetDashboardHandler(appState))
		r.Get("/reviews", webhandlers.GetReviewListHandler(appState))
		r.Get("/reviews/{reviewUUID}", webhandlers.GetReviewDetailsHandler(appState))
		r.NotFound(webhandlers.NotFoundHandler())
	})
	router.Handle("/static/*", http.FileServer(http.FS(web.StaticFS)))

	return router
}
