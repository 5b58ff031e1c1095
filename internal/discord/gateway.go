package discord

import (
	"context"
	"errors"
	"fmt"
	"time"

	"rissy-bot/pkg/pacer"

	"github.com/bwmarrin/discordgo"
)

// sessionGateway serves command.Gateway and command.VoiceJoiner from a live
// session. Lookups hit the state cache first and fall back to REST.
type sessionGateway struct {
	s     *discordgo.Session
	pacer *pacer.Pacer
}

func newSessionGateway(s *discordgo.Session, p *pacer.Pacer) *sessionGateway {
	return &sessionGateway{s: s, pacer: p}
}

// Guild returns a copy of the cached guild, since discordgo keeps mutating the
// cached one as gateway events arrive.
func (g *sessionGateway) Guild(guildID string) (*discordgo.Guild, error) {
	if guild, err := g.s.State.Guild(guildID); err == nil && guild != nil {
		g.s.State.RLock()
		defer g.s.State.RUnlock()
		return snapshotGuild(guild), nil
	}
	guild, err := g.s.Guild(guildID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving guild: %w", err)
	}
	return guild, nil
}

// snapshotGuild copies guild and the slices commands read. Callers hold the
// state read lock.
func snapshotGuild(guild *discordgo.Guild) *discordgo.Guild {
	cp := *guild
	cp.Members = append([]*discordgo.Member(nil), guild.Members...)
	cp.Roles = append([]*discordgo.Role(nil), guild.Roles...)
	cp.Emojis = append([]*discordgo.Emoji(nil), guild.Emojis...)
	cp.Channels = append([]*discordgo.Channel(nil), guild.Channels...)
	return &cp
}

func (g *sessionGateway) GuildChannels(guildID string) ([]*discordgo.Channel, error) {
	if guild, err := g.s.State.Guild(guildID); err == nil && guild != nil {
		g.s.State.RLock()
		channels := append([]*discordgo.Channel(nil), guild.Channels...)
		g.s.State.RUnlock()
		if len(channels) > 0 {
			return channels, nil
		}
	}

	channels, err := g.s.GuildChannels(guildID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving channels: %w", err)
	}
	return channels, nil
}

func (g *sessionGateway) CreateInvite(ctx context.Context, channelID string, invite discordgo.Invite) (*discordgo.Invite, error) {
	return g.s.ChannelInviteCreate(channelID, invite, discordgo.WithContext(ctx))
}

func (g *sessionGateway) Send(ctx context.Context, channelID string, msg *discordgo.MessageSend) error {
	if err := g.pacer.Wait(ctx); err != nil {
		return err
	}
	_, err := g.s.ChannelMessageSendComplex(channelID, msg, discordgo.WithContext(ctx))
	g.pacer.Observe(withStatus(err))
	return err
}

func (g *sessionGateway) Latency() time.Duration {
	return g.s.HeartbeatLatency()
}

// JoinVoice joins deafened and unmuted. The join itself cannot be cancelled;
// when ctx ends first the caller gets an error and discordgo finishes or
// abandons the attempt on its own.
func (g *sessionGateway) JoinVoice(ctx context.Context, guildID, channelID string) error {
	done := make(chan error, 1)
	go func() {
		_, err := g.s.ChannelVoiceJoin(guildID, channelID, false, true)
		done <- err
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return fmt.Errorf("voice join to %s: %w", channelID, ctx.Err())
	}
}

// restStatus exposes the HTTP status of a discordgo REST error to the pacer.
type restStatus struct {
	*discordgo.RESTError
}

func (e restStatus) StatusCode() int {
	if e.Response == nil {
		return 0
	}
	return e.Response.StatusCode
}

func (e restStatus) Unwrap() error { return e.RESTError }

func withStatus(err error) error {
	var re *discordgo.RESTError
	if errors.As(err, &re) {
		return restStatus{re}
	}
	return err
}
