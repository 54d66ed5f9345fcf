package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"ventas-dashboard/internal/backend"
	"ventas-dashboard/internal/config"
	"ventas-dashboard/internal/domain"
	"ventas-dashboard/internal/importer"
	categoryrepo "ventas-dashboard/internal/repository/category"
	productrepo "ventas-dashboard/internal/repository/product"
	userrepo "ventas-dashboard/internal/repository/user"
	categorysvc "ventas-dashboard/internal/service/category"
	productsvc "ventas-dashboard/internal/service/product"
	usersvc "ventas-dashboard/internal/service/user"
)

func main() {
	var (
		filePath string
		token    string
		email    string
		password string
	)
	flag.StringVar(&filePath, "file", "", "Path to product CSV")
	flag.StringVar(&token, "token", os.Getenv("API_TOKEN"), "Bearer token for the inventory API")
	flag.StringVar(&email, "email", os.Getenv("API_EMAIL"), "Login email, used when no token is given")
	flag.StringVar(&password, "password", os.Getenv("API_PASSWORD"), "Login password")
	flag.Parse()

	if filePath == "" || (token == "" && email == "") {
		flag.Usage()
		os.Exit(2)
	}

	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[importer] ", log.LstdFlags|log.LUTC|log.Lshortfile)
	ctx := context.Background()

	client, err := backend.New(cfg.APIBaseURL, cfg.APITimeout, logger)
	if err != nil {
		logger.Fatalf("init api client: %v", err)
	}

	if token == "" {
		session, err := usersvc.New(userrepo.NewAPI(client, logger)).Login(ctx, domain.Credentials{Email: email, Password: password})
		if err != nil {
			logger.Fatalf("login: %v", err)
		}
		token = session.AccessToken
	}
	ctx = backend.WithToken(ctx, token)

	f, err := os.Open(filePath)
	if err != nil {
		logger.Fatalf("open file: %v", err)
	}
	defer f.Close()

	imp := importer.NewCSVImporter(f,
		productsvc.New(productrepo.NewAPI(client, logger)),
		categorysvc.New(categoryrepo.NewAPI(client, logger)),
	)

	start := time.Now()
	count, err := imp.Run(ctx)
	if err != nil {
		logger.Fatalf("import failed after %d products: %v", count, err)
	}

	fmt.Printf("Imported %d products into %s in %s\n", count, cfg.APIBaseURL, time.Since(start).Truncate(time.Millisecond))
}
