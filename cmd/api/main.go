package main

import (
	"log"

	"github.com/andrefarias-dev/portfolio-backend/config"
	"github.com/andrefarias-dev/portfolio-backend/internal/bootstrap"
	"github.com/andrefarias-dev/portfolio-backend/internal/storage/supabase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	if cfg.Admin.Password == config.DefaultAdminPassword {
		log.Printf("WARNING: ADMIN_PASSWORD is set to the default %q. Change it in production!", config.DefaultAdminPassword)
	}

	backend := supabase.New(cfg.Supabase.URL, cfg.Supabase.Key)

	r := bootstrap.BuildRouter(bootstrap.RouterDeps{
		AdminPassword: cfg.Admin.Password,
		Backend:       backend,
	})

	log.Printf("portfolio api listening on :%s", cfg.Server.Port)
	log.Fatal(r.Run(":" + cfg.Server.Port))
}
