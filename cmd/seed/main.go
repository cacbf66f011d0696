package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"inkwell/internal/model"
	"inkwell/pkg/cache"
	"inkwell/pkg/config"
	"inkwell/pkg/database"
	"inkwell/pkg/logger"
	"inkwell/pkg/s3"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.New()
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	s3Client, err := s3.NewClient(cfg)
	if err != nil {
		log.Warn("S3 unavailable, seeding with source image URLs: %v", err)
		s3Client = nil
	}

	if redisClient, err := cache.NewRedisClient(cfg); err == nil {
		// Drop any stale category aggregate from a previous run.
		cache.NewCountsCache(redisClient, 0).Invalidate(context.Background())
		redisClient.Close()
	}

	if err := seedDatabase(db, s3Client, log); err != nil {
		log.Error("Failed to seed database: %v", err)
		panic(err)
	}

	log.Info("Database seeded successfully!")
}

func seedDatabase(db *gorm.DB, s3Client *s3.Client, log *logger.Logger) error {
	adminID, err := ensureUser(db, log, envOr("ADMIN_USERNAME", "admin"), envOr("ADMIN_EMAIL", "admin@inkwell.local"), envOr("ADMIN_PASSWORD", "admin123"), "admin")
	if err != nil {
		return err
	}

	authors := []struct {
		username string
		email    string
	}{
		{"maya_writes", "maya@inkwell.local"},
		{"jordan_ink", "jordan@inkwell.local"},
	}

	authorIDs := make([]string, 0, len(authors))
	for _, a := range authors {
		id, err := ensureUser(db, log, a.username, a.email, "password123", "author")
		if err != nil {
			return err
		}
		authorIDs = append(authorIDs, id)
	}

	readerID, err := ensureUser(db, log, "sam_reads", "sam@inkwell.local", "password123", "user")
	if err != nil {
		return err
	}

	blogs := []struct {
		title    string
		content  string
		category string
	}{
		{"Getting Started with Sourdough", "A week-by-week starter guide for home bakers.", "food"},
		{"Trail Running in the Dolomites", "Routes, gear and altitude mistakes to avoid.", "travel"},
		{"Why Side Projects Stall", "The three traps that kill momentum after week two.", "tech"},
		{"Reading Slumps and How to Break Them", "Short books, rereads and permission to quit.", "books"},
	}

	httpClient := &http.Client{Timeout: 30 * time.Second}

	for i, b := range blogs {
		authorID := authorIDs[i%len(authorIDs)]

		var existing model.BlogModel
		if err := db.Where("title = ?", b.title).First(&existing).Error; err == nil {
			log.Info("Blog %q already exists, skipping", b.title)
			continue
		}

		imageURL := seedImage(httpClient, s3Client, i, log)

		blog := &model.BlogModel{
			AuthorID: authorID,
			Title:    b.title,
			Content:  b.content,
			Image:    imageURL,
			Category: b.category,
		}
		if err := db.Create(blog).Error; err != nil {
			log.Error("Failed to create blog %q: %v", b.title, err)
			continue
		}
		log.Info("Created blog: %s [%s]", blog.Title, blog.Category)

		comment := &model.CommentModel{
			BlogID: blog.ID,
			UserID: readerID,
			Text:   "Looking forward to the follow-up!",
		}
		if err := db.Create(comment).Error; err != nil {
			log.Error("Failed to create comment: %v", err)
		}

		like := &model.LikeModel{
			BlogID: blog.ID,
			UserID: adminID,
		}
		if err := db.Create(like).Error; err != nil {
			log.Error("Failed to create like: %v", err)
		}
	}

	return nil
}

func ensureUser(db *gorm.DB, log *logger.Logger, username, email, password, role string) (string, error) {
	var existing model.UserModel
	if err := db.Where("email = ? OR username = ?", email, username).First(&existing).Error; err == nil {
		log.Info("User %s already exists, skipping", username)
		return existing.ID, nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password for %s: %w", username, err)
	}

	user := &model.UserModel{
		Username: username,
		Email:    email,
		Password: string(hashedPassword),
		Role:     role,
	}
	if err := db.Create(user).Error; err != nil {
		return "", fmt.Errorf("failed to create user %s: %w", username, err)
	}

	log.Info("Created user: %s (%s, role=%s)", username, email, role)
	return user.ID, nil
}

// seedImage pulls a placeholder image and re-hosts it in object storage so
// seeded blogs look like real uploads. Falls back to the source URL when S3
// is not configured.
func seedImage(httpClient *http.Client, s3Client *s3.Client, index int, log *logger.Logger) string {
	sourceURL := fmt.Sprintf("https://picsum.photos/seed/inkwell-%d/1200/630", index)
	if s3Client == nil {
		return sourceURL
	}

	resp, err := httpClient.Get(sourceURL)
	if err != nil {
		log.Warn("Failed to fetch placeholder image: %v", err)
		return sourceURL
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Warn("Placeholder image API returned status %d", resp.StatusCode)
		return sourceURL
	}

	imageData, err := io.ReadAll(resp.Body)
	if err != nil || len(imageData) == 0 {
		log.Warn("Failed to read placeholder image: %v", err)
		return sourceURL
	}

	fileKey := fmt.Sprintf("blogs/seed_%d.jpg", index)
	url, err := s3Client.UploadFile(fileKey, bytes.NewReader(imageData), "image/jpeg")
	if err != nil {
		log.Warn("Failed to upload seed image to S3: %v", err)
		return sourceURL
	}
	return url
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
