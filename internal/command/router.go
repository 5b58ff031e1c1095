package command

import (
	"context"
	"log"
	"time"

	"rissy-bot/pkg/cmd"

	"github.com/bwmarrin/discordgo"
)

// Prefix marks a message as a command.
const Prefix = "r!"

// Router turns inbound messages into command invocations. It holds no mutable
// state, so one Router serves every concurrent message handler.
type Router struct {
	registry    *cmd.Registry
	gateway     Gateway
	voice       VoiceJoiner
	callTimeout time.Duration
}

// NewRouter returns a router dispatching to commands in reg. The gateway and
// voice joiner are handed to every command through its MessageContext.
func NewRouter(reg *cmd.Registry, gw Gateway, voice VoiceJoiner, callTimeout time.Duration) *Router {
	return &Router{
		registry:    reg,
		gateway:     gw,
		voice:       voice,
		callTimeout: callTimeout,
	}
}

// Handle processes one inbound message. Messages without the prefix, from bot
// accounts, or naming an unknown command are dropped without a reply. Errors
// returned by a command are logged and never shown to the user.
func (r *Router) Handle(ctx context.Context, m *discordgo.Message) {
	if m == nil || m.Author == nil || m.Author.Bot {
		return
	}

	inv, ok := cmd.Parse(Prefix, m.Content)
	if !ok || inv.Name == "" {
		return
	}

	c := r.registry.Get(inv.Name)
	if c == nil {
		return
	}

	inv.Data = &MessageContext{
		Ctx:         ctx,
		Gateway:     r.gateway,
		Voice:       r.voice,
		Message:     m,
		Args:        inv.Args,
		Registry:    r.registry,
		CallTimeout: r.callTimeout,
	}

	if err := c.Run(ctx, inv); err != nil {
		log.Printf("[ERR] Error running command %s%s: %v", Prefix, inv.Name, err)
	}
}
