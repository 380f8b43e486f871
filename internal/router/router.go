package router

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"os"

	mem "pet-store/internal/adapters/storage/memory"
	pg "pet-store/internal/adapters/storage/postgres"
	"pet-store/internal/domain/pets"
	"pet-store/internal/middleware"

	_ "pet-store/docs"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

type Options struct {
	// Opcional: si viene, usa Postgres. Si no, in-memory.
	DB *sql.DB

	// Opcional: nil = no-op (útil en tests).
	Logger *zap.Logger
}

func NewRouter(opts Options) http.Handler {
	lg := opts.Logger
	if lg == nil {
		lg = zap.NewNop()
	}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(lg))
	r.Use(chimw.Recoverer)

	r.Get("/", indexHandler)
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	// Si no te pasan DB explícita, intenta por env (para dev/handoff)
	db := opts.DB
	if db == nil {
		if dsn := os.Getenv("DATABASE_DSN"); dsn != "" {
			opened, err := pg.Open(dsn)
			if err != nil {
				lg.Warn("db open failed, using in-memory storage", zap.Error(err))
			} else if err := pg.Migrate(opened); err != nil {
				lg.Warn("db migrate failed, using in-memory storage", zap.Error(err))
				_ = opened.Close()
			} else {
				db = opened
			}
		}
	}

	var petRepo pets.Repository
	if db != nil {
		petRepo = pg.NewPetsRepo(db)
	} else {
		petRepo = mem.NewPetRepo()
	}

	petsSvc := pets.NewService(petRepo)
	pets.RegisterRoutes(r, petsSvc)

	return r
}

func indexHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"service": "pet-store",
		"docs":    "/swagger/index.html",
	})
}
