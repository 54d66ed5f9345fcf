package main

import (
	"context"
	"log"
	"os"

	"ventas-dashboard/internal/config"
	"ventas-dashboard/internal/db"
	"ventas-dashboard/internal/migrate"
)

// main brings the cart draft schema up to date. Only needed with CART_STORE=postgres.
func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[migrate] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	if cfg.CartStore != config.CartStorePostgres {
		logger.Printf("cart store is %q; drafts table only used with %q", cfg.CartStore, config.CartStorePostgres)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout*3)
	defer cancel()

	pool, err := db.Connect(ctx, cfg.DBConnString, logger)
	if err != nil {
		logger.Fatalf("cart drafts db: %v", err)
	}
	defer pool.Close()

	if err := migrate.Apply(ctx, pool, logger); err != nil {
		logger.Fatalf("cart drafts schema: %v", err)
	}
	logger.Println("cart drafts schema ready")
}
