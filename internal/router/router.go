package router

import (
	"net/http"
	"os"
	"strings"

	"animal-facts/internal/adapters/providers/catfact"
	"animal-facts/internal/adapters/providers/dogfact"
	"animal-facts/internal/domain/facts"
	"animal-facts/internal/middleware"
	"animal-facts/internal/platform/httpclient"
	"animal-facts/internal/platform/logger"
	"animal-facts/internal/ports/provider"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	Logger logger.Logger // nil => NewFromEnv

	// HTTPClient compartido para todos los upstreams. Nil => uno nuevo
	// con defaults (tests suelen inyectar el suyo).
	HTTPClient *httpclient.Client

	// Endpoints upstream. Si vienen vacíos se intenta por env
	// (CAT_API_URL / DOG_API_URL) y si no, el default público.
	CatURL string
	DogURL string

	// Origin permitido para CORS. Vacío => env CORS_ALLOW_ORIGIN.
	CORSAllowOrigin string
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.NewFromEnv()
	}

	hc := opts.HTTPClient
	if hc == nil {
		hc = httpclient.New(httpclient.DefaultTimeout)
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.AccessLog(log))
	r.Use(chimw.Recoverer)
	r.Use(middleware.CORS(orEnv(opts.CORSAllowOrigin, "CORS_ALLOW_ORIGIN")))

	r.Get("/health-check", healthCheckHandler())

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	// Registry especie -> provider. Read-only después del arranque;
	// agregar un animal es una entrada acá más su adapter.
	providers := map[facts.Animal]provider.FactProvider{
		facts.AnimalCat: catfact.NewClient(catfact.Config{URL: orEnv(opts.CatURL, "CAT_API_URL")}, hc),
		facts.AnimalDog: dogfact.NewClient(dogfact.Config{URL: orEnv(opts.DogURL, "DOG_API_URL")}, hc),
	}

	facts.RegisterRoutes(r, facts.NewService(providers), log)

	return r
}

// healthCheckHandler godoc
// @Summary      Liveness check
// @Description  Responde 200 con body vacío.
// @Tags         health
// @Success      200
// @Router       /health-check [get]
func healthCheckHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}
}

func orEnv(v, key string) string {
	if strings.TrimSpace(v) != "" {
		return v
	}
	return strings.TrimSpace(os.Getenv(key))
}
