package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/estivensal7/Moment-API/internal/auth"
	"github.com/estivensal7/Moment-API/internal/config"
	"github.com/estivensal7/Moment-API/internal/middleware"
	"github.com/estivensal7/Moment-API/internal/post"
	"github.com/estivensal7/Moment-API/internal/social"
	"github.com/estivensal7/Moment-API/internal/store"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	if cfg.SecretKey == "" {
		log.Fatal("SECRET_KEY must be set")
	}

	// ── MongoDB ──────────────────────────────────────────────
	mongoClient, err := store.Connect(ctx, cfg.MongoURI)
	if err != nil {
		log.Fatalf("mongo connect: %v", err)
	}
	defer mongoClient.Disconnect(ctx)
	db := mongoClient.Database(cfg.MongoDB)

	users := store.NewMongoUserStore(db)
	if err := users.EnsureIndexes(ctx); err != nil {
		log.Fatalf("mongo indexes: %v", err)
	}
	posts := store.NewMongoPostStore(db)

	// ── Redis ────────────────────────────────────────────────
	rdb, err := store.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword)
	if err != nil {
		log.Fatalf("redis connect: %v", err)
	}
	defer rdb.Close()
	followLocks := store.NewPairLock(rdb)

	// ── Services ─────────────────────────────────────────────
	tokens := auth.NewTokenManager([]byte(cfg.SecretKey), cfg.TokenTTL)
	socialSvc := social.NewService(users, followLocks)
	postSvc := post.NewService(posts, users)

	// ── Handlers ─────────────────────────────────────────────
	authHandler := auth.NewHandler(users, tokens)
	socialHandler := social.NewHandler(socialSvc)
	postHandler := post.NewHandler(postSvc)

	// ── Router ───────────────────────────────────────────────
	r := chi.NewRouter()
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.RealIP)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://localhost:3000"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"ok"}`))
	})

	requireAuth := middleware.RequireAuth(tokens)

	// Auth routes (public except /me)
	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)
		r.With(requireAuth).Get("/me", authHandler.Me)
	})

	// User / follow-graph routes (protected)
	r.Route("/api/users", func(r chi.Router) {
		r.Use(requireAuth)
		r.Get("/me/followings", socialHandler.Followings)
		r.Get("/me/followers", socialHandler.Followers)
		r.Post("/me/privacy", socialHandler.Privacy)
		r.Post("/{id}/follow", socialHandler.Follow)
		r.Get("/{username}", socialHandler.Profile)
	})

	// Post routes (protected)
	r.Route("/api/posts", func(r chi.Router) {
		r.Use(requireAuth)
		r.Post("/", postHandler.Create)
		r.Get("/", postHandler.List)
		r.Get("/user/{username}", postHandler.ListByUser)
		r.Get("/{id}", postHandler.Get)
		r.Delete("/{id}", postHandler.Delete)
		r.Post("/{id}/like", postHandler.Like)
		r.Post("/{id}/comments", postHandler.CreateComment)
		r.Delete("/{id}/comments/{commentID}", postHandler.DeleteComment)
	})

	r.With(requireAuth).Get("/api/timeline", postHandler.Timeline)

	// ── Server ───────────────────────────────────────────────
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		log.Printf("Moment API listening on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down...")
	shutCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	srv.Shutdown(shutCtx)
}
