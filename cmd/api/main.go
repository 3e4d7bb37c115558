package main

import (
	"log"

	"github.com/dekkov/personal-website/config"
	"github.com/dekkov/personal-website/internal/analytics"
	"github.com/dekkov/personal-website/internal/bootstrap"
	"github.com/dekkov/personal-website/internal/contact"
	"github.com/dekkov/personal-website/internal/content"
)

const serviceName = "personal-website"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	store, err := content.NewStore(cfg.Site.ContentDir)
	if err != nil {
		log.Fatalf("content store: %v", err)
	}

	// Experience and skills documents are required configuration, not
	// optional content: a missing or malformed file is fatal here
	// rather than a per-request surprise.
	if _, err := store.Experience(); err != nil {
		log.Fatalf("content store: %v", err)
	}
	if _, err := store.Skills(); err != nil {
		log.Fatalf("content store: %v", err)
	}

	sender := contact.NewSMTPSender(cfg.Mail)

	var tracker analytics.Tracker
	if cfg.Analytics.CollectorURL != "" {
		tracker = analytics.NewCollectorClient(cfg.Analytics.CollectorURL)
	} else {
		log.Println("ANALYTICS_URL not set, tracking events are logged only")
		tracker = analytics.LogTracker{}
	}

	r, err := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: serviceName,
		Cfg:         cfg,
		Store:       store,
		Sender:      sender,
		Tracker:     tracker,
	})
	if err != nil {
		log.Fatalf("router: %v", err)
	}

	log.Printf("listening on :%s", cfg.Server.Port)
	log.Fatal(r.Run(":" + cfg.Server.Port))
}
