// cmd/seed/main.go
package main

import (
	"context"
	"log/slog"
	"os"

	"gorm.io/gorm"

	"go_5_wordle_game/internal/config"
	"go_5_wordle_game/internal/model"
	"go_5_wordle_game/internal/repository"
)

// 初期投入する5文字の単語リスト
var seedWords = []string{
	"apple", "brave", "crane", "delta", "eager",
	"flame", "grape", "hover", "ivory", "jolly",
	"karma", "lemon", "mango", "noble", "ocean",
	"pride", "quake", "raven", "solar", "tiger",
	"ultra", "vivid", "whale", "xenon", "young",
	"zebra",
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	if err := config.LoadConfig("configs"); err != nil {
		slog.Error("Error loading configuration", slog.Any("error", err))
		os.Exit(1)
	}

	db, err := repository.NewDB(config.Cfg.Database.URL, logger)
	if err != nil {
		slog.Error("Error initializing database", slog.Any("error", err))
		os.Exit(1)
	}

	// スキーマを最新化してから単語を投入する
	if err := db.AutoMigrate(&model.Word{}, &model.GameSession{}, &model.Guess{}); err != nil {
		slog.Error("Error migrating schema", slog.Any("error", err))
		os.Exit(1)
	}

	ctx := context.Background()
	wordRepo := repository.NewGormWordRepository()

	created := 0
	skipped := 0
	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, text := range seedWords {
			exists, err := wordRepo.ExistsByTextAndLength(ctx, tx, text, len(text))
			if err != nil {
				return err
			}
			if exists {
				skipped++
				continue
			}
			word := &model.Word{Text: text, IsActive: true}
			if err := wordRepo.Create(ctx, tx, word); err != nil {
				return err
			}
			created++
		}
		return nil
	})
	if err != nil {
		slog.Error("Error seeding words", slog.Any("error", err))
		os.Exit(1)
	}

	slog.Info("Seeding complete",
		slog.Int("created", created),
		slog.Int("skipped", skipped),
		slog.Int("total", len(seedWords)),
	)
}
