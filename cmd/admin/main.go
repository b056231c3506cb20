package main

import (
	"context"
	"log"

	"github.com/andrefarias-dev/portfolio-backend/config"
	"github.com/andrefarias-dev/portfolio-backend/internal/auth"
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

	rdb, err := bootstrap.OpenRedis(context.Background(), bootstrap.RedisOptions{
		Addr: cfg.Redis.Addr,
	})
	if err != nil {
		log.Fatalf("redis: %v", err)
	}
	defer rdb.Close()

	backend := supabase.New(cfg.Supabase.URL, cfg.Supabase.Key)

	r := bootstrap.BuildAdminRouter(bootstrap.AdminRouterDeps{
		AdminPassword: cfg.Admin.Password,
		Backend:       backend,
		Sessions:      auth.NewSessionStore(rdb, cfg.Admin.SessionSecret),
		TemplatesGlob: "templates/*.html",
	})

	log.Printf("portfolio admin listening on :%s", cfg.Server.AdminPort)
	log.Fatal(r.Run(":" + cfg.Server.AdminPort))
}
