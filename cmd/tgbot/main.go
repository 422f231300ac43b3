package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"Vitals/internal/bot"
	"Vitals/internal/config"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Config error: ", err)
	}
	if cfg.BotToken == "" {
		log.Fatal("TOKEN_BOT missing")
	}

	client := bot.NewClient(cfg.BotToken, cfg.BotPollTimeout)
	log.Println("Bot polling started")
	if err := client.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
	log.Println("Bot stopped")
}
