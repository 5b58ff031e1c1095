// cmd/discord/main.go
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	_ "rissy-bot/internal/command/core"
	_ "rissy-bot/internal/command/server"
	_ "rissy-bot/internal/command/user"
	_ "rissy-bot/internal/command/voice"

	"rissy-bot/internal/config"
	"rissy-bot/internal/discord"
	"rissy-bot/internal/health"
	v "rissy-bot/internal/version"
	"rissy-bot/pkg/cmd"
)

func main() {
	log.Printf("[INFO] Starting %v bot (%s)...", v.AppName, v.String())

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("[ERR] ", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	bot, err := discord.NewBot(cfg, cmd.DefaultRegistry)
	if err != nil {
		log.Fatal("[ERR] ", err)
	}

	if cfg.HealthAddr != "" {
		go health.RunServer(ctx, cfg.HealthAddr, bot)
	}

	errCh := make(chan error, 1)
	go func() {
		if err := bot.Run(ctx); err != nil {
			errCh <- err
		}
		close(errCh)
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	select {
	case s := <-sig:
		log.Printf("[INFO] Received signal %s, shutting down...\n", s)
		cancel()
		<-errCh
	case err := <-errCh:
		if err != nil {
			log.Println("[ERR] Discord bot error:", err)
			cancel()
			os.Exit(1)
		}
		cancel()
	}

	log.Println("[INFO] Discord bot exited cleanly")
}
