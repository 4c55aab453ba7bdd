// Command main inserts generated demo posts into the configured database.
package main

import (
	"context"
	"flag"
	"log"

	"postboard/internal/bootstrap"
	"postboard/internal/config"
	"postboard/internal/database"
	"postboard/internal/seed"
)

func main() {
	count := flag.Int("count", 50, "Number of posts to create")
	clean := flag.Bool("clean", false, "Delete existing posts before seeding")
	dryRun := flag.Bool("dry-run", false, "Generate posts without writing to the database")
	seedValue := flag.Int64("seed", 0, "Random seed for generated content (0 = random)")
	flag.Parse()

	log.Printf("Target: %d posts, clean=%v, dry-run=%v", *count, *clean, *dryRun)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()
	db, redisClient, err := bootstrap.InitRuntime(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize runtime: %v", err)
	}
	defer func() { _ = database.Close(db) }()
	if redisClient != nil {
		_ = redisClient.Close()
	}

	posts, err := seed.Seed(ctx, db, seed.Options{
		Count:  *count,
		Clean:  *clean,
		DryRun: *dryRun,
		Seed:   *seedValue,
	})
	if err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Printf("Done: %d posts", len(posts))
}
