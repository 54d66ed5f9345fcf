package main

import (
	"context"
	"flag"
	"log"
	"os"

	"ventas-dashboard/internal/backend"
	"ventas-dashboard/internal/config"
	"ventas-dashboard/internal/domain"
	categoryrepo "ventas-dashboard/internal/repository/category"
	productrepo "ventas-dashboard/internal/repository/product"
	userrepo "ventas-dashboard/internal/repository/user"
	"ventas-dashboard/internal/seed"
	usersvc "ventas-dashboard/internal/service/user"
)

func main() {
	var email, password string
	flag.StringVar(&email, "email", os.Getenv("API_EMAIL"), "Login email for the inventory API")
	flag.StringVar(&password, "password", os.Getenv("API_PASSWORD"), "Login password")
	flag.Parse()

	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[seed] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	client, err := backend.New(cfg.APIBaseURL, cfg.APITimeout, logger)
	if err != nil {
		logger.Fatalf("init api client: %v", err)
	}

	session, err := usersvc.New(userrepo.NewAPI(client, logger)).Login(ctx, domain.Credentials{Email: email, Password: password})
	if err != nil {
		logger.Fatalf("login: %v", err)
	}
	ctx = backend.WithToken(ctx, session.AccessToken)

	if err := seed.Apply(ctx, categoryrepo.NewAPI(client, logger), productrepo.NewAPI(client, logger), logger); err != nil {
		logger.Fatalf("seed apply: %v", err)
	}

	logger.Println("seed applied")
}
