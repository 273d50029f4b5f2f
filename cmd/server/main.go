package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"alcyxob/adaptive-coach/internal/api"
	"alcyxob/adaptive-coach/internal/catalog"
	"alcyxob/adaptive-coach/internal/config"
	"alcyxob/adaptive-coach/internal/engine"
	"alcyxob/adaptive-coach/internal/repository/mongo"
	"alcyxob/adaptive-coach/internal/service"
	"alcyxob/adaptive-coach/internal/storage"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func main() {
	log.SetFormatter(&log.JSONFormatter{})
	log.Info("starting adaptive coach server")

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.WithError(err).Fatal("could not load config")
	}

	// --- Database Connection ---
	dbClient, err := mongo.ConnectDB(cfg.Database.URI)
	if err != nil {
		log.WithError(err).Fatal("could not connect to MongoDB")
	}
	defer func() {
		if err := mongo.DisconnectDB(dbClient); err != nil {
			log.WithError(err).Error("failed to disconnect MongoDB")
		}
	}()
	appDB := dbClient.Database(cfg.Database.Name)
	log.Info("database connection established")

	// --- Repositories ---
	userRepo := mongo.NewMongoUserRepository(appDB)
	programRepo := mongo.NewMongoProgramRepository(appDB)
	completionRepo := mongo.NewMongoCompletionRepository(appDB)
	exerciseRepo := mongo.NewMongoExerciseRepository(appDB)
	mediaRepo := mongo.NewMongoMediaRepository(appDB)

	// --- Indexes ---
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
		defer cancel()
		if err := mongo.EnsureUserIndexes(ctx, appDB.Collection("users")); err != nil {
			log.WithError(err).Warn("user index creation failed")
		}
		if err := mongo.EnsureProgramIndexes(ctx, appDB.Collection("programs")); err != nil {
			log.WithError(err).Warn("program index creation failed")
		}
		if err := mongo.EnsureCompletionIndexes(ctx, appDB.Collection("workout_completions")); err != nil {
			log.WithError(err).Warn("completion index creation failed")
		}
	}()

	// --- Exercise catalog ---
	// Seed the reference library on first boot, then hydrate the in-memory
	// catalog the engine reads from.
	seedCtx, seedCancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := exerciseRepo.SeedIfEmpty(seedCtx, catalog.SeedExercises()); err != nil {
		seedCancel()
		log.WithError(err).Fatal("could not seed exercise library")
	}
	exercises, err := exerciseRepo.GetAll(seedCtx)
	seedCancel()
	if err != nil {
		log.WithError(err).Fatal("could not load exercise library")
	}
	cat := catalog.New(exercises)
	log.WithField("exercises", len(exercises)).Info("exercise catalog loaded")

	// --- Progression engine ---
	// Template defects are fatal here rather than at generation time.
	templates, err := engine.NewTemplateRepository(engine.BuiltinTemplates(), cat)
	if err != nil {
		log.WithError(err).Fatal("template validation failed")
	}
	eng := engine.New(templates, cat, cfg.Engine)
	log.WithField("templates", len(templates.All())).Info("progression engine ready")

	// --- File storage ---
	fileStorage, err := storage.NewS3Storage(cfg.S3)
	if err != nil {
		log.WithError(err).Fatal("failed to initialize S3 storage")
	}

	// --- Services ---
	authService := service.NewAuthService(userRepo, cfg.JWT.Secret, cfg.JWT.Expiration)
	programService := service.NewProgramService(eng, programRepo, userRepo, completionRepo)
	mediaService := service.NewMediaService(mediaRepo, programRepo, fileStorage)

	// --- HTTP ---
	router := gin.Default()
	api.SetupRoutes(router, cfg.JWT.Secret, authService, programService, mediaService, cat, templates)

	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.WithField("address", cfg.Server.Address).Info("server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("listen and serve error")
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.WithError(err).Fatal("server forced to shutdown")
	}

	log.Info("server exiting")
}
