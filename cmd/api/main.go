package main

import (
	"context"
	"strconv"

	"github.com/sendgrid/sendgrid-go"
	log "github.com/sirupsen/logrus"

	"leadership-academy-go/internal/assistant"
	"leadership-academy-go/internal/genai"
	"leadership-academy-go/internal/insights"
	"leadership-academy-go/internal/notifications"
	"leadership-academy-go/internal/store"
)

func main() {
	log.Println("starting leadership academy server")

	cfg, err := ReadConfig()
	if err != nil {
		log.Fatalf("reading config: %v", err)
	}

	port, err := strconv.Atoi(cfg.Port)
	if err != nil {
		log.Fatalf("converting port to integer: %v", err)
	}

	st := store.New()
	seedCourses(st)

	generator, err := genai.New(context.Background(), genai.Options{
		Provider: cfg.AIProvider,
		APIKey:   cfg.AIAPIKey,
		Model:    cfg.AIModel,
		BaseURL:  cfg.AIBaseURL,
	})
	if err != nil {
		log.Fatalf("creating generative backend: %v", err)
	}
	if generator == nil {
		log.Println("no generative backend configured, serving canned responses only")
	}

	var sender *notifications.Sender
	if cfg.SendGridKey != "" {
		sender = notifications.NewSender(sendgrid.NewSendClient(cfg.SendGridKey))
	}

	server := NewServer(port, st, assistant.NewResponder(generator), insights.NewService(st, generator), sender)

	log.Fatal(server.Run())
}
