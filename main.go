package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"Vitals/internal/auth"
	"Vitals/internal/calc/bac"
	"Vitals/internal/calc/bmi"
	"Vitals/internal/calc/bodyfat"
	"Vitals/internal/calc/bodytype"
	"Vitals/internal/calc/calorie"
	"Vitals/internal/calc/healthyweight"
	"Vitals/internal/calc/leanmass"
	"Vitals/internal/calc/premium/assessment"
	"Vitals/internal/calc/premium/batch"
	"Vitals/internal/calc/premium/importer"
	"Vitals/internal/calc/premium/recommend"
	"Vitals/internal/calc/report"
	"Vitals/internal/config"
	"Vitals/internal/metrics"
	"Vitals/internal/profile"
	"Vitals/internal/repo"
	"github.com/gorilla/mux"
	"golang.org/x/time/rate"
)

var wg sync.WaitGroup

func CORS(mux *mux.Router) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		mux.ServeHTTP(w, r)
	})
}

type calculator interface {
	Calc(http.ResponseWriter, *http.Request)
	PDF(http.ResponseWriter, *http.Request)
}

// HandleList wires every route. Account routes are only added when a repository is given.
func HandleList(mux *mux.Router, cfg config.Config, store repo.Repository) {
	mux.Handle("/metrics", metrics.Handler()).Methods("GET")
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	}).Methods("GET")

	limiter := auth.NewIPRateLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst)
	api := mux.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)

	calorieH := &calorie.Handler{}
	api.HandleFunc("/calc/calorie/options", calorieH.Options).Methods("GET")

	calculators := map[string]calculator{
		"bmi":           &bmi.Handler{},
		"bac":           &bac.Handler{},
		"bodyfat":       &bodyfat.Handler{},
		"calorie":       calorieH,
		"leanmass":      &leanmass.Handler{},
		"bodytype":      &bodytype.Handler{},
		"healthyweight": &healthyweight.Handler{},
	}
	for name, h := range calculators {
		api.HandleFunc("/calc/"+name, h.Calc).Methods("POST")
		api.HandleFunc("/calc/"+name+"/pdf", h.PDF).Methods("POST")
	}

	reportH := &report.Handler{}
	api.HandleFunc("/report/pdf", reportH.Generate).Methods("POST")

	batchH := &batch.Handler{}
	importH := &importer.Handler{}
	recommendH := &recommend.Handler{}
	assessH := &assessment.Handler{}
	api.HandleFunc("/premium/calorie/batch", batchH.Plans).Methods("POST")
	api.HandleFunc("/premium/calorie/import", importH.Import).Methods("POST")
	api.HandleFunc("/premium/calorie/export", importH.Export).Methods("POST")
	api.HandleFunc("/premium/bac/max-drinks", recommendH.Drinks).Methods("POST")
	api.HandleFunc("/premium/assessment", assessH.Assess).Methods("POST")
	api.HandleFunc("/premium/assessment/pdf", assessH.PDF).Methods("POST")

	if store == nil {
		return
	}
	authEnv := &auth.Authenv{JWTkey: []byte(cfg.TokenKey), Repo: store}
	profileH := &profile.ProfileHandler{Repo: store}

	api.HandleFunc("/login", authEnv.AuthHandler).Methods("POST")
	api.HandleFunc("/register", authEnv.RegisterHandler).Methods("POST")

	secureApi := api.PathPrefix("/user").Subrouter()
	secureApi.Use(authEnv.AuthMiddleware)

	secureApi.HandleFunc("/profile", profileH.GetProfile).Methods("GET")
	secureApi.HandleFunc("/profile", profileH.UpdateProfile).Methods("PATCH", "PUT")
	secureApi.HandleFunc("/profile/assess", profileH.Assess).Methods("POST")
	secureApi.HandleFunc("/history", profileH.History).Methods("GET")
}

func openStore(ctx context.Context, cfg config.Config) (*sql.DB, repo.Repository) {
	if !cfg.Accounts() {
		log.Println("DATABASE_URL not set, accounts and history are disabled")
		return nil, nil
	}
	db, err := repo.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Database unavailable: ", err)
	}
	if err := repo.EnsureSchema(ctx, db); err != nil {
		log.Fatal("Schema setup failed: ", err)
	}
	return db, repo.NewPostgres(db)
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Config error: ", err)
	}
	metrics.Register()

	db, store := openStore(ctx, cfg)
	if db != nil {
		defer db.Close()
	}

	mux := mux.NewRouter()
	HandleList(mux, cfg, store)

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           CORS(mux),
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Println("Starting server on", cfg.Addr)
	wg.Add(1)
	go func() {
		defer wg.Done()
		var err error
		if cfg.TLS() {
			err = server.ListenAndServeTLS(cfg.TLSCert, cfg.TLSKey)
		} else {
			err = server.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("Server error: %v", err)
			cancel()
		}
	}()

	<-ctx.Done()
	log.Println("Shutdown signal received, closing active connections")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}
	log.Println("Server stopped")

	wg.Wait()
}
