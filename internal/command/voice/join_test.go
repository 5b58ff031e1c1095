package voice

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"rissy-bot/internal/command"
	"rissy-bot/internal/command/commandtest"
	"rissy-bot/pkg/cmd"

	"github.com/bwmarrin/discordgo"
)

var author = &discordgo.User{ID: "42", Username: "rissy"}

func guildFixture() (*discordgo.Guild, []*discordgo.Channel) {
	g := &discordgo.Guild{ID: "g1", Name: "Rissy Hub"}
	return g, []*discordgo.Channel{
		{ID: "t1", GuildID: "g1", Name: "lobby", Type: discordgo.ChannelTypeGuildText},
		{ID: "v1", GuildID: "g1", Name: "lobby", Type: discordgo.ChannelTypeGuildVoice},
		{ID: "v2", GuildID: "g1", Name: "Music Room", Type: discordgo.ChannelTypeGuildVoice},
	}
}

func newGateway() *commandtest.Gateway {
	g, channels := guildFixture()
	return commandtest.NewGateway(g, channels...)
}

func run(t *testing.T, gw *commandtest.Gateway, v *commandtest.Voice, content string) string {
	t.Helper()
	m := commandtest.Message("g1", "c1", author, content)
	if err := (&JoinCommand{}).Run(commandtest.Context(gw, v, m)); err != nil {
		t.Fatalf("Run(%q) error = %v", content, err)
	}
	sent := gw.Sent()
	if len(sent) != 1 {
		t.Fatalf("sent %d replies, want 1", len(sent))
	}
	return sent[0].Msg.Content
}

func TestJoinWithoutNameRepliesUsage(t *testing.T) {
	gw := newGateway()
	v := &commandtest.Voice{}

	if got := run(t, gw, v, "r!join"); got != joinUsageText {
		t.Fatalf("reply = %q", got)
	}
	if gw.ChannelLookups() != 0 {
		t.Fatal("channel lookup performed without a name")
	}
	if len(v.Joins()) != 0 {
		t.Fatal("join invoked without a name")
	}
}

func TestJoinInDirectMessage(t *testing.T) {
	gw := commandtest.NewGateway(nil)
	v := &commandtest.Voice{}
	r := command.NewRouter(cmd.DefaultRegistry, gw, v, time.Second)

	r.Handle(context.Background(), commandtest.Message("", "dm1", author, "r!join"))

	sent := gw.Sent()
	if len(sent) != 1 || sent[0].Msg.Content != joinUsageText {
		t.Fatalf("sent = %+v, want usage hint", sent)
	}
	if gw.ChannelLookups() != 0 {
		t.Fatal("channel lookup performed without a name")
	}

	// With a name the lookup fails for lack of a guild and nothing is joined.
	r.Handle(context.Background(), commandtest.Message("", "dm1", author, "r!join lobby"))

	if gw.ChannelLookups() != 1 {
		t.Fatalf("channel lookups = %d, want 1", gw.ChannelLookups())
	}
	if len(v.Joins()) != 0 {
		t.Fatal("join invoked from a direct message")
	}
	if len(gw.Sent()) != 1 {
		t.Fatal("lookup error surfaced to the user")
	}
}

func TestJoinUnknownChannel(t *testing.T) {
	gw := newGateway()
	v := &commandtest.Voice{}

	got := run(t, gw, v, "r!join Foo")
	if got != `❌ Voice channel "Foo" tidak ditemukan.` {
		t.Fatalf("reply = %q", got)
	}
	if len(v.Joins()) != 0 {
		t.Fatal("join invoked for unknown channel")
	}
}

func TestJoinMatchesCaseInsensitively(t *testing.T) {
	gw := newGateway()
	v := &commandtest.Voice{}

	got := run(t, gw, v, "r!join Lobby")

	joins := v.Joins()
	if len(joins) != 1 {
		t.Fatalf("joins = %d, want 1", len(joins))
	}
	if joins[0].ChannelID != "v1" || joins[0].GuildID != "g1" {
		t.Fatalf("join = %+v, want voice channel v1 in g1", joins[0])
	}
	if !strings.Contains(got, "**lobby**") {
		t.Fatalf("reply = %q, want confirmation naming the channel", got)
	}
}

func TestJoinNameWithSpaces(t *testing.T) {
	gw := newGateway()
	v := &commandtest.Voice{}

	run(t, gw, v, "r!join   music    ROOM ")

	joins := v.Joins()
	if len(joins) != 1 || joins[0].ChannelID != "v2" {
		t.Fatalf("joins = %+v, want v2", joins)
	}
}

func TestJoinFailureRepliesFixedText(t *testing.T) {
	gw := newGateway()
	v := &commandtest.Voice{Err: errors.New("voice connection closed")}

	if got := run(t, gw, v, "r!join lobby"); got != joinFailedText {
		t.Fatalf("reply = %q", got)
	}
	if len(v.Joins()) != 1 {
		t.Fatal("join not attempted exactly once")
	}
}

func TestJoinTimesOut(t *testing.T) {
	gw := newGateway()
	v := &commandtest.Voice{Block: true}
	m := commandtest.Message("g1", "c1", author, "r!join lobby")
	mc := commandtest.Context(gw, v, m)
	mc.CallTimeout = 20 * time.Millisecond

	done := make(chan error, 1)
	go func() { done <- (&JoinCommand{}).Run(mc) }()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run() error = %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("join did not time out")
	}
	if sent := gw.Sent(); len(sent) != 1 || sent[0].Msg.Content != joinFailedText {
		t.Fatalf("sent = %+v", sent)
	}
}

func TestFindVoiceChannelIgnoresOtherTypes(t *testing.T) {
	_, channels := guildFixture()
	if ch := FindVoiceChannel(channels[:1], "lobby"); ch != nil {
		t.Fatalf("matched text channel %s", ch.ID)
	}
	if ch := FindVoiceChannel(nil, "lobby"); ch != nil {
		t.Fatal("matched in empty list")
	}
}
