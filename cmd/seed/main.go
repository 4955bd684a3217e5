// Command seed migrates the database and writes the built-in content into it,
// so that the site can run with content.source = "postgres".
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/go-pg/pg/v10"
	"github.com/joho/godotenv"
	"github.com/namsral/flag"

	"github.com/daniilsolovey/newshub/config"
	"github.com/daniilsolovey/newshub/internal/content"
	"github.com/daniilsolovey/newshub/internal/db"
)

var (
	flConfig = flag.String("config", "config.toml", "path to TOML configuration file")
	flDebug  = flag.Bool("debug", false, "log executed SQL queries")
	lg       *slog.Logger
)

func main() {
	_ = godotenv.Load()
	flag.Parse()

	logLevel := slog.LevelInfo
	if *flDebug {
		logLevel = slog.LevelDebug
	}
	lg = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))

	cfg, err := config.Load(*flConfig)
	exitOnError(err)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	exitOnError(db.Migrate(ctx, cfg.Database.URL))

	opts, err := cfg.Database.Options()
	exitOnError(err)

	conn := pg.Connect(opts)
	defer conn.Close()
	if *flDebug {
		conn.AddQueryHook(db.NewQueryHook(lg))
	}

	repo := db.New(conn)
	exitOnError(repo.Ping(ctx))

	categories, authors, articles := content.Seed(time.Now())
	inserted, err := repo.InsertContent(ctx, categories, authors, articles)
	exitOnError(err)

	total, err := repo.ArticlesCount(ctx)
	exitOnError(err)

	lg.Info("content seeded", "inserted", inserted, "articles", total)
}

func exitOnError(err error) {
	if err != nil {
		lg.Error("seed failed", "error", err)
		os.Exit(1)
	}
}
