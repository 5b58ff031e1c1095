package discord

import (
	"context"
	"fmt"
	"log"
	"sync/atomic"
	"time"

	"rissy-bot/internal/command"
	"rissy-bot/internal/config"
	"rissy-bot/pkg/cmd"
	"rissy-bot/pkg/pacer"

	"github.com/bwmarrin/discordgo"
	"golang.org/x/time/rate"
)

// Bot is a Discord bot
type Bot struct {
	dg     *discordgo.Session
	cfg    *config.Config
	router *command.Router
	ctx    context.Context
	ready  atomic.Bool
}

// NewBot creates the session and wires the command router to it. Nothing is
// sent to Discord until Run.
func NewBot(cfg *config.Config, reg *cmd.Registry) (*Bot, error) {
	dg, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	p := pacer.New(rate.Limit(cfg.ReplyRate), rate.Limit(cfg.ReplyRateMin), rate.Limit(cfg.ReplyRateMax), 1, 0.5)
	gw := newSessionGateway(dg, p)

	return &Bot{
		dg:     dg,
		cfg:    cfg,
		router: command.NewRouter(reg, gw, gw, cfg.CallTimeout),
		ctx:    context.Background(),
	}, nil
}

// Run opens the gateway connection and blocks until ctx is cancelled.
func (b *Bot) Run(ctx context.Context) error {
	b.ctx = ctx

	b.configureIntents()
	b.dg.AddHandler(b.onReady)
	b.dg.AddHandler(b.onMessageCreate)
	b.dg.AddHandler(b.onDisconnect)
	b.dg.AddHandler(b.onResumed)

	if err := b.dg.Open(); err != nil {
		return fmt.Errorf("failed to open Discord session: %w", err)
	}
	defer b.dg.Close()

	<-ctx.Done()
	log.Println("[INFO] ❎ Shutdown signal received. Cleaning up...")
	b.ready.Store(false)
	return nil
}

// Ready reports whether the gateway has delivered READY and is still connected.
func (b *Bot) Ready() bool { return b.ready.Load() }

// Latency returns the last heartbeat round trip.
func (b *Bot) Latency() time.Duration { return b.dg.HeartbeatLatency() }

// configureIntents configures the Discord intents
func (b *Bot) configureIntents() {
	b.dg.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMembers |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsDirectMessages |
		discordgo.IntentsMessageContent |
		discordgo.IntentsGuildVoiceStates
}

// onReady is called when the bot is ready
func (b *Bot) onReady(s *discordgo.Session, r *discordgo.Ready) {
	b.ready.Store(true)
	log.Printf("[INFO] ✅ Bot is ready as %s (%d guilds)", r.User.String(), len(r.Guilds))
}

func (b *Bot) onDisconnect(s *discordgo.Session, d *discordgo.Disconnect) {
	b.ready.Store(false)
	log.Println("[WARN] Gateway disconnected, waiting for discordgo to reconnect")
}

func (b *Bot) onResumed(s *discordgo.Session, r *discordgo.Resumed) {
	b.ready.Store(true)
	log.Println("[INFO] Gateway session resumed")
}

// onMessageCreate runs on its own goroutine per event, so handlers for
// different messages may overlap.
func (b *Bot) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	b.router.Handle(b.ctx, m.Message)
}
