package discord

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"sync"
	"testing"

	"rissy-bot/pkg/pacer"

	"github.com/bwmarrin/discordgo"
)

func TestWithStatusExposesRESTStatus(t *testing.T) {
	re := &discordgo.RESTError{Response: &http.Response{StatusCode: http.StatusTooManyRequests}}

	if !pacer.IsRateLimited(withStatus(re)) {
		t.Fatal("429 REST error not reported as rate limited")
	}
	if !errors.Is(withStatus(re), re) {
		t.Fatal("wrapped error does not unwrap to the REST error")
	}

	forbidden := &discordgo.RESTError{Response: &http.Response{StatusCode: http.StatusForbidden}}
	if pacer.IsRateLimited(withStatus(forbidden)) {
		t.Fatal("403 reported as rate limited")
	}

	if pacer.IsRateLimited(withStatus(&discordgo.RESTError{})) {
		t.Fatal("REST error without response reported as rate limited")
	}

	plain := errors.New("dial tcp: timeout")
	if withStatus(plain) != plain {
		t.Fatal("non-REST error was rewrapped")
	}
	if withStatus(nil) != nil {
		t.Fatal("nil error was rewrapped")
	}
}

func TestGuildChannelsUsesStateCache(t *testing.T) {
	s, err := discordgo.New("Bot test")
	if err != nil {
		t.Fatal(err)
	}
	guild := &discordgo.Guild{
		ID:   "g1",
		Name: "Rissy Hub",
		Channels: []*discordgo.Channel{
			{ID: "v1", GuildID: "g1", Name: "lobby", Type: discordgo.ChannelTypeGuildVoice},
		},
	}
	if err := s.State.GuildAdd(guild); err != nil {
		t.Fatal(err)
	}

	gw := newSessionGateway(s, pacer.New(5, 1, 10, 1, 0.5))

	got, err := gw.Guild("g1")
	if err != nil || got.Name != "Rissy Hub" {
		t.Fatalf("Guild() = %v, %v", got, err)
	}
	channels, err := gw.GuildChannels("g1")
	if err != nil || len(channels) != 1 || channels[0].ID != "v1" {
		t.Fatalf("GuildChannels() = %v, %v", channels, err)
	}
}

func TestGuildReturnsSnapshotOfState(t *testing.T) {
	s, err := discordgo.New("Bot test")
	if err != nil {
		t.Fatal(err)
	}
	if err := s.State.GuildAdd(&discordgo.Guild{ID: "g1", Name: "Rissy Hub"}); err != nil {
		t.Fatal(err)
	}
	gw := newSessionGateway(s, pacer.New(5, 1, 10, 1, 0.5))

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 200; i++ {
			s.State.MemberAdd(&discordgo.Member{ //nolint:errcheck
				GuildID: "g1",
				User:    &discordgo.User{ID: strconv.Itoa(i), Bot: i%2 == 0},
			})
		}
	}()

	for i := 0; i < 200; i++ {
		guild, err := gw.Guild("g1")
		if err != nil {
			t.Fatal(err)
		}
		for _, m := range guild.Members {
			_ = m.User.Bot
		}
	}
	wg.Wait()

	snap, err := gw.Guild("g1")
	if err != nil {
		t.Fatal(err)
	}
	cached, _ := s.State.Guild("g1")
	if snap == cached {
		t.Fatal("Guild() returned the cached pointer")
	}
	if len(snap.Members) != 200 {
		t.Fatalf("members = %d, want 200", len(snap.Members))
	}
	snap.Members = snap.Members[:0]
	if len(cached.Members) != 200 {
		t.Fatal("changing the snapshot changed the cache")
	}
}

func TestSendStopsOnCancelledContext(t *testing.T) {
	s, err := discordgo.New("Bot test")
	if err != nil {
		t.Fatal(err)
	}
	gw := newSessionGateway(s, pacer.New(1, 1, 1, 1, 0.5))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := gw.Send(ctx, "c", &discordgo.MessageSend{Content: "hi"}); !errors.Is(err, context.Canceled) {
		t.Fatalf("Send() error = %v, want context.Canceled", err)
	}
}
