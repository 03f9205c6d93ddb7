package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-redis/redis/v8"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/cedarbrook-wellness/content-service/docs"
	"github.com/cedarbrook-wellness/content-service/internal/cache"
	"github.com/cedarbrook-wellness/content-service/internal/config"
	"github.com/cedarbrook-wellness/content-service/internal/csvimport"
	"github.com/cedarbrook-wellness/content-service/internal/events"
	"github.com/cedarbrook-wellness/content-service/internal/http/handlers/admin"
	"github.com/cedarbrook-wellness/content-service/internal/http/handlers/content"
	"github.com/cedarbrook-wellness/content-service/internal/http/handlers/uploads"
	wshandler "github.com/cedarbrook-wellness/content-service/internal/http/handlers/websocket"
	"github.com/cedarbrook-wellness/content-service/internal/http/middleware"
	"github.com/cedarbrook-wellness/content-service/internal/storage/postgres"
	"github.com/cedarbrook-wellness/content-service/internal/upload/pipeline"
	"github.com/cedarbrook-wellness/content-service/internal/upload/session"
	"github.com/cedarbrook-wellness/content-service/internal/upload/store"
	"github.com/cedarbrook-wellness/content-service/internal/websocket"
)

// @title Cedarbrook Content Service API
// @version 1.0
// @description Upload pipeline and site content API for the wellness center backend
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// load config
	cfg := config.MustLoad()
	// database setup

	db, err := postgres.NewPostgres(cfg)
	if err != nil {
		log.Fatal("Failed to initialize database:", err)
	}
	slog.Info("Connected to Postgres database")

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}
	slog.Info("Connected to Redis")

	storage := cache.NewCacheService(db, redisClient)

	// asset store
	var assets store.AssetStore
	switch cfg.Uploads.Backend {
	case "minio":
		assets, err = store.NewObjectStore(cfg)
		if err != nil {
			log.Fatal("Failed to initialize object store:", err)
		}
		slog.Info("Using MinIO asset store", slog.String("bucket", cfg.MinIO.BucketName))
	default:
		assets, err = store.NewLocalStore(cfg.Uploads.Dir, cfg.Uploads.PublicBase)
		if err != nil {
			log.Fatal("Failed to initialize local store:", err)
		}
		slog.Info("Using local asset store", slog.String("dir", cfg.Uploads.Dir))
	}

	// websocket hub for upload progress
	hub := websocket.NewHub()
	go hub.Run()
	publisher := events.NewEventPublisher(hub)

	sessions := session.NewStore(time.Duration(cfg.Uploads.SessionTTLSeconds)*time.Second, cfg.Uploads.MaxCSVBytes)
	importer := csvimport.NewProcessor(storage)
	uploadHandlers := uploads.NewHandlers(storage, assets, sessions, importer, publisher)

	rateLimiter := middleware.NewRateLimitConfig(redisClient)
	auth := middleware.AuthMiddleware(cfg.JWTSecret)

	uploadTimeout := time.Duration(cfg.Uploads.TimeoutSeconds) * time.Second

	videoOpts := func(maxBytes int64) pipeline.Options {
		return pipeline.Options{
			MaxBytes:    maxBytes,
			Category:    store.CategoryVideos,
			Timeout:     uploadTimeout,
			StrictVideo: true,
		}
	}
	imageOpts := func(category string) pipeline.Options {
		return pipeline.Options{
			MaxBytes: cfg.Uploads.MaxImageBytes,
			Category: category,
			Timeout:  uploadTimeout,
		}
	}
	csvOpts := pipeline.Options{MaxBytes: cfg.Uploads.MaxCSVBytes, Timeout: uploadTimeout}

	// setup server
	router := http.NewServeMux()

	router.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Cedarbrook Content Service"))
	})

	// video uploads, three size tiers
	router.Handle("POST /api/center/video-upload",
		rateLimiter.RateLimitedHandler("video-upload", uploadHandlers.VideoUpload(videoOpts(cfg.Uploads.MaxVideoBytes))))
	router.Handle("POST /api/center/large-video-upload",
		rateLimiter.RateLimitedHandler("video-upload", uploadHandlers.VideoUpload(videoOpts(cfg.Uploads.MaxLargeVideoBytes))))
	router.Handle("POST /api/xl-video-upload",
		rateLimiter.RateLimitedHandler("video-upload", uploadHandlers.VideoUpload(videoOpts(cfg.Uploads.MaxXLVideoBytes))))

	// raw-body image uploads
	router.Handle("POST /api/direct-upload/image",
		rateLimiter.RateLimitedHandler("image-upload", uploadHandlers.ImageUpload(imageOpts(store.CategoryImages))))
	router.Handle("POST /api/raw-upload/image",
		rateLimiter.RateLimitedHandler("image-upload", uploadHandlers.ImageUpload(imageOpts(store.CategoryRawImages))))
	router.Handle("POST /api/simple-upload/image",
		rateLimiter.RateLimitedHandler("image-upload", uploadHandlers.ImageUpload(imageOpts(store.CategorySimpleImages))))

	// CSV imports
	router.Handle("POST /api/csv-import/csv",
		rateLimiter.RateLimitedHandler("csv-import", uploadHandlers.CSVImport(csvOpts)))
	router.Handle("POST /api/csv-import/csv-json",
		rateLimiter.RateLimitedHandler("csv-import", uploadHandlers.CSVImportChunked(csvOpts)))
	router.HandleFunc("GET /api/csv-import/{importId}", uploadHandlers.ImportStatus())

	// video slot management
	router.HandleFunc("GET /api/file/video-settings", uploadHandlers.VideoSettings())
	router.Handle("DELETE /api/file/delete-video", auth(uploadHandlers.DeleteVideo()))

	// site content
	router.HandleFunc("GET /api/content/{section}", content.GetSection(storage))
	router.HandleFunc("GET /api/content/{section}/{key}", content.GetByKey(storage))
	router.Handle("PUT /api/content/{section}/{key}", auth(content.Update(storage)))

	// admin auth
	router.HandleFunc("POST /api/admin/signup", admin.SignUp(storage))
	router.HandleFunc("POST /api/admin/login", admin.Login(storage, cfg.JWTSecret))

	// upload progress websocket
	router.HandleFunc("GET /ws", wshandler.WebSocketHandler(hub, cfg.JWTSecret))

	// cache monitoring
	router.Handle("GET /api/cache/stats", auth(cache.GetCacheStats(redisClient)))
	router.Handle("DELETE /api/cache/clear", auth(cache.ClearCache(redisClient)))

	// served assets and API docs
	router.Handle("GET "+cfg.Uploads.PublicBase+"/",
		http.StripPrefix(cfg.Uploads.PublicBase+"/", http.FileServer(http.Dir(cfg.Uploads.Dir))))
	router.Handle("GET /swagger/", httpSwagger.WrapHandler)

	server := http.Server{
		Addr:    cfg.HTTPServer.Address,
		Handler: router,
	}

	log.Println("server started on", cfg.HTTPServer.Address)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("failed to start server: %s", err)
		}
	}()

	<-done

	slog.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err = server.Shutdown(ctx)
	if err != nil {
		slog.Error("failed to gracefully shutdown server", slog.String("error", err.Error()))
		return
	}

	slog.Info("Server stopped")
}
