package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"

	"cvmaker/internal/config"
	"cvmaker/internal/database"
	"cvmaker/internal/metrics"
	"cvmaker/internal/objstore"
	"cvmaker/internal/pdf"
	"cvmaker/internal/store"
	"cvmaker/internal/tasks"
	"cvmaker/internal/worker"
)

func main() {
	cfg := config.MustLoad()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	db, err := database.InitDatabase(cfg.Database)
	if err != nil {
		log.Fatalf("init database: %v", err)
	}
	logger.Info("database ready for worker")

	objClient, err := objstore.NewClient(cfg.MinIO)
	if err != nil {
		log.Fatalf("init object store: %v", err)
	}
	logger.Info("object store ready", slog.String("bucket", cfg.MinIO.Bucket))

	redisAddr := cfg.Redis.Addr()
	redisClient := redis.NewClient(&redis.Options{Addr: redisAddr})
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.Error("close redis client failed", slog.Any("error", err))
		}
	}()

	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		log.Fatalf("ping redis: %v", err)
	}

	redisOpt := asynq.RedisClientOpt{Addr: redisAddr}
	server := asynq.NewServer(redisOpt, asynq.Config{
		Concurrency: 4,
	})

	cvStore := store.New(db)
	generator := pdf.NewGenerator(logger)
	exportHandler := worker.NewExportTaskHandler(cvStore, objClient, redisClient, generator, logger, cfg.Export.Timeout)
	thumbnailHandler := worker.NewThumbnailTaskHandler(objClient, generator, logger)

	mux := asynq.NewServeMux()
	mux.Use(metrics.AsynqMetricsMiddleware())
	mux.Handle(tasks.TypePDFExport, exportHandler)
	mux.Handle(tasks.TypeTemplateThumbnail, thumbnailHandler)

	logger.Info("worker service started", slog.String("redis_addr", redisAddr))
	if err := server.Run(mux); err != nil {
		logger.Error("worker server stopped", slog.Any("error", err))
	}
}
