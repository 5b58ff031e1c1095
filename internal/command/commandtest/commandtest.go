// Package commandtest provides in-memory doubles for the Discord gateway and
// voice joiner, recording every call so tests can assert on side effects.
package commandtest

import (
	"context"
	"errors"
	"sync"
	"time"

	"rissy-bot/internal/command"
	"rissy-bot/pkg/cmd"

	"github.com/bwmarrin/discordgo"
)

// ErrUnknownGuild is returned by Gateway lookups for guilds it does not hold.
var ErrUnknownGuild = errors.New("unknown guild")

// InviteCall records one CreateInvite call.
type InviteCall struct {
	ChannelID string
	Invite    discordgo.Invite
}

// SentMessage records one Send call.
type SentMessage struct {
	ChannelID string
	Msg       *discordgo.MessageSend
}

// Gateway is a command.Gateway backed by maps.
type Gateway struct {
	mu sync.Mutex

	Guilds   map[string]*discordgo.Guild
	Channels map[string][]*discordgo.Channel

	// Invite is returned by CreateInvite unless InviteErr is set.
	Invite      *discordgo.Invite
	InviteErr   error
	InviteBlock bool // block until the call context is done

	SendErr error
	Ping    time.Duration

	invites      []InviteCall
	sent         []SentMessage
	channelCalls int
}

// NewGateway returns a Gateway holding guild and its channels.
func NewGateway(guild *discordgo.Guild, channels ...*discordgo.Channel) *Gateway {
	gw := &Gateway{
		Guilds:   map[string]*discordgo.Guild{},
		Channels: map[string][]*discordgo.Channel{},
	}
	if guild != nil {
		gw.Guilds[guild.ID] = guild
		gw.Channels[guild.ID] = channels
	}
	return gw
}

func (g *Gateway) Guild(guildID string) (*discordgo.Guild, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	guild, ok := g.Guilds[guildID]
	if !ok {
		return nil, ErrUnknownGuild
	}
	return guild, nil
}

func (g *Gateway) GuildChannels(guildID string) ([]*discordgo.Channel, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.channelCalls++
	channels, ok := g.Channels[guildID]
	if !ok {
		return nil, ErrUnknownGuild
	}
	return channels, nil
}

func (g *Gateway) CreateInvite(ctx context.Context, channelID string, invite discordgo.Invite) (*discordgo.Invite, error) {
	g.mu.Lock()
	g.invites = append(g.invites, InviteCall{ChannelID: channelID, Invite: invite})
	block, inv, err := g.InviteBlock, g.Invite, g.InviteErr
	g.mu.Unlock()

	if block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if err != nil {
		return nil, err
	}
	return inv, nil
}

func (g *Gateway) Send(_ context.Context, channelID string, msg *discordgo.MessageSend) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.SendErr != nil {
		return g.SendErr
	}
	g.sent = append(g.sent, SentMessage{ChannelID: channelID, Msg: msg})
	return nil
}

func (g *Gateway) Latency() time.Duration { return g.Ping }

// Sent returns every message sent so far.
func (g *Gateway) Sent() []SentMessage {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]SentMessage(nil), g.sent...)
}

// Invites returns every CreateInvite call so far.
func (g *Gateway) Invites() []InviteCall {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]InviteCall(nil), g.invites...)
}

// ChannelLookups returns how many times GuildChannels was called.
func (g *Gateway) ChannelLookups() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.channelCalls
}

// JoinCall records one JoinVoice call.
type JoinCall struct {
	GuildID   string
	ChannelID string
}

// Voice is a command.VoiceJoiner that records joins.
type Voice struct {
	mu    sync.Mutex
	Err   error
	Block bool // block until the call context is done
	joins []JoinCall
}

func (v *Voice) JoinVoice(ctx context.Context, guildID, channelID string) error {
	v.mu.Lock()
	v.joins = append(v.joins, JoinCall{GuildID: guildID, ChannelID: channelID})
	block, err := v.Block, v.Err
	v.mu.Unlock()

	if block {
		<-ctx.Done()
		return ctx.Err()
	}
	return err
}

// Joins returns every JoinVoice call so far.
func (v *Voice) Joins() []JoinCall {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]JoinCall(nil), v.joins...)
}

// Message builds an inbound guild message.
func Message(guildID, channelID string, author *discordgo.User, content string, mentions ...*discordgo.User) *discordgo.Message {
	return &discordgo.Message{
		ID:        "900",
		GuildID:   guildID,
		ChannelID: channelID,
		Author:    author,
		Content:   content,
		Mentions:  mentions,
	}
}

// Context builds the MessageContext a router would hand a command for m.
func Context(gw command.Gateway, voice command.VoiceJoiner, m *discordgo.Message) *command.MessageContext {
	inv, _ := cmd.Parse(command.Prefix, m.Content)
	args := []string{}
	if inv != nil {
		args = inv.Args
	}
	return &command.MessageContext{
		Ctx:         context.Background(),
		Gateway:     gw,
		Voice:       voice,
		Message:     m,
		Args:        args,
		Registry:    cmd.NewRegistry(),
		CallTimeout: time.Second,
	}
}
