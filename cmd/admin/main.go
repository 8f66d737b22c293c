package main

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"gorm.io/gorm"

	"cvmaker/internal/auth"
	"cvmaker/internal/config"
	"cvmaker/internal/database"
	"cvmaker/internal/locale"
	"cvmaker/internal/objstore"
	"cvmaker/internal/tasks"
	"cvmaker/internal/template"
)

// Operational chores that do not belong in the API: seeding the first
// account and regenerating template thumbnails after a catalogue change.
func main() {
	var (
		username        = flag.String("create-user", "", "create an account with a generated password")
		regenThumbnails = flag.Bool("regen-thumbnails", false, "enqueue thumbnail regeneration for every template and locale")
		purgeExports    = flag.Bool("purge-exports", false, "delete export objects no document references")
	)
	flag.Parse()

	if *username == "" && !*regenThumbnails && !*purgeExports {
		log.Fatal("nothing to do: pass --create-user, --regen-thumbnails or --purge-exports")
	}

	cfg := config.MustLoad()

	if u := strings.TrimSpace(*username); u != "" {
		if err := createUser(cfg, u); err != nil {
			log.Fatalf("create user: %v", err)
		}
	}
	if *regenThumbnails {
		if err := enqueueThumbnails(cfg); err != nil {
			log.Fatalf("regen thumbnails: %v", err)
		}
	}
	if *purgeExports {
		if err := purgeOrphanedExports(cfg); err != nil {
			log.Fatalf("purge exports: %v", err)
		}
	}
}

func createUser(cfg *config.Config, username string) error {
	db, err := database.InitDatabase(cfg.Database)
	if err != nil {
		return fmt.Errorf("init database: %w", err)
	}
	if err := database.Migrate(db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	var existing database.User
	switch err := db.Where("username = ?", username).First(&existing).Error; {
	case err == nil:
		return fmt.Errorf("user %q already exists", username)
	case errors.Is(err, gorm.ErrRecordNotFound):
	default:
		return fmt.Errorf("query user: %w", err)
	}

	password, err := generateRandomPassword(24)
	if err != nil {
		return err
	}
	hashed, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	user := database.User{
		Username:     username,
		PasswordHash: hashed,
	}
	if err := db.Create(&user).Error; err != nil {
		return fmt.Errorf("create user: %w", err)
	}

	fmt.Printf("created account:\n")
	fmt.Printf("username: %s\n", username)
	fmt.Printf("password: %s\n", password)
	fmt.Printf("note: this password is shown only once.\n")
	return nil
}

func enqueueThumbnails(cfg *config.Config) error {
	client := asynq.NewClient(asynq.RedisClientOpt{Addr: cfg.Redis.Addr()})
	defer client.Close()

	correlationID := uuid.NewString()
	count := 0
	for _, t := range template.List() {
		for _, tag := range locale.SupportedTags() {
			task, err := tasks.NewTemplateThumbnailTask(t.ID, tag, correlationID)
			if err != nil {
				return fmt.Errorf("build thumbnail task for %s/%s: %w", t.ID, tag, err)
			}
			if _, err := client.Enqueue(task, asynq.MaxRetry(2)); err != nil {
				return fmt.Errorf("enqueue thumbnail task for %s/%s: %w", t.ID, tag, err)
			}
			count++
		}
	}
	fmt.Printf("enqueued %d thumbnail tasks (correlation_id=%s)\n", count, correlationID)
	return nil
}

// purgeOrphanedExports removes PDF objects whose owning document was deleted
// or has since exported a newer artifact.
func purgeOrphanedExports(cfg *config.Config) error {
	db, err := database.InitDatabase(cfg.Database)
	if err != nil {
		return fmt.Errorf("init database: %w", err)
	}
	objClient, err := objstore.NewClient(cfg.MinIO)
	if err != nil {
		return fmt.Errorf("init object store: %w", err)
	}

	var referenced []string
	if err := db.Model(&database.CVDocument{}).
		Where("pdf_key <> ''").
		Pluck("pdf_key", &referenced).Error; err != nil {
		return fmt.Errorf("collect referenced keys: %w", err)
	}
	keep := make(map[string]struct{}, len(referenced))
	for _, key := range referenced {
		keep[key] = struct{}{}
	}

	ctx := context.Background()
	keys, err := objClient.ListKeys(ctx, "exports/")
	if err != nil {
		return err
	}

	removed := 0
	for _, key := range keys {
		if _, ok := keep[key]; ok {
			continue
		}
		if err := objClient.Delete(ctx, key); err != nil {
			return err
		}
		removed++
	}
	fmt.Printf("purged %d orphaned export objects (%d kept)\n", removed, len(keep))
	return nil
}

func generateRandomPassword(bytesLen int) (string, error) {
	buf := make([]byte, bytesLen)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
