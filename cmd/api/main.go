package main

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"

	"github.com/rix-app/rix-backend/config"
	"github.com/rix-app/rix-backend/internal/assets"
	"github.com/rix-app/rix-backend/internal/assets/imagegen"
	"github.com/rix-app/rix-backend/internal/auth"
	"github.com/rix-app/rix-backend/internal/bootstrap"
	"github.com/rix-app/rix-backend/internal/dashboard"
	"github.com/rix-app/rix-backend/internal/janitor"
	"github.com/rix-app/rix-backend/internal/projects/repository"
	"github.com/rix-app/rix-backend/internal/projects/service"
	"github.com/rix-app/rix-backend/internal/storage"
	"github.com/rix-app/rix-backend/internal/users"
)

const serviceName = "rix-backend"

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	sqlDB, err := bootstrap.OpenSQL(cfg.Database.DSN)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer sqlDB.Close()

	if err := bootstrap.RunMigrations(ctx, sqlDB); err != nil {
		log.Fatalf("migrations: %v", err)
	}

	pool, err := bootstrap.OpenDB(ctx, bootstrap.DBOptions{DSN: cfg.Database.DSN})
	if err != nil {
		log.Fatalf("open pool: %v", err)
	}
	defer pool.Close()

	authClient, err := auth.InitializeFirebase(&cfg.Firebase)
	if err != nil {
		log.Fatalf("firebase: %v", err)
	}
	if authClient == nil {
		log.Println("[auth] WARNING: dev mode active, trusting X-User-Id headers")
	}

	store, err := storage.NewS3Store(ctx, storage.S3Options{
		Endpoint:      cfg.Storage.Endpoint,
		Region:        cfg.Storage.Region,
		AccessKey:     cfg.Storage.AccessKey,
		SecretKey:     cfg.Storage.SecretKey,
		Bucket:        cfg.Storage.Bucket,
		PublicBaseURL: cfg.Storage.PublicBaseURL,
	})
	if err != nil {
		log.Fatalf("object store: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
	})
	defer rdb.Close()

	images := imagegen.New(cfg.ImageGen.BaseURL, cfg.ImageGen.RequestsPerSecond, cfg.ImageGen.Burst)
	generator := assets.NewGenerator(images)

	projectRepo := repository.NewProjectRepository(sqlDB)
	projectSvc := service.New(projectRepo, store, generator)

	userRepo := users.NewRepo(pool)
	dashStore := dashboard.NewStore(rdb)

	if cfg.Janitor.Enabled {
		sweeper := janitor.New(store, projectRepo, cfg.Janitor.Grace)
		c := sweeper.Start()
		defer c.Stop()
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName:  serviceName,
		Version:      cfg.App.Version,
		AllowOrigins: cfg.Server.AllowOrigins,
		DB:           pool,
		Auth:         authClient,
		AuthDevMode:  cfg.Firebase.DevMode,
		Users:        userRepo,
		Projects:     projectSvc,
		Dashboard:    dashStore,
	})

	log.Printf("%s listening on :%s", serviceName, cfg.Server.Port)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server: %v", err)
	}
}
