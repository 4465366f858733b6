package command

import (
	"context"
	"errors"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/keshon/mcstatus-bot/internal/command/commandtest"
	"github.com/keshon/mcstatus-bot/internal/i18n"
	"github.com/keshon/mcstatus-bot/pkg/cmd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCommand struct {
	name, desc string
	def        *discordgo.ApplicationCommand
	run        func(ctx context.Context, ic *SlashInteractionContext) error
	calls      int
}

func (f *fakeCommand) Name() string        { return f.name }
func (f *fakeCommand) Description() string { return f.desc }

func (f *fakeCommand) SlashDefinition() *discordgo.ApplicationCommand {
	if f.def != nil {
		return f.def
	}
	return &discordgo.ApplicationCommand{Name: f.name, Description: f.desc}
}

func (f *fakeCommand) Run(ctx context.Context, ic *SlashInteractionContext) error {
	f.calls++
	if f.run == nil {
		return nil
	}
	return f.run(ctx, ic)
}

func registryWith(t *testing.T, cmds ...*fakeCommand) *cmd.Registry {
	t.Helper()
	reg := cmd.NewRegistry()
	for _, c := range cmds {
		require.NoError(t, reg.Register(&DiscordAdapter{Cmd: c}))
	}
	return reg
}

func dispatch(reg *cmd.Registry, name string) (*commandtest.Replier, error) {
	r := &commandtest.Replier{}
	ic := &SlashInteractionContext{Event: NewSlashEvent(name, nil), Reply: r}
	err := Dispatch(context.Background(), reg, ic, i18n.MustNew("en"))
	return r, err
}

func TestDispatch_RunsHandler(t *testing.T) {
	ping := &fakeCommand{name: "ping", desc: "pong", run: func(ctx context.Context, ic *SlashInteractionContext) error {
		assert.NotNil(t, ic.Registry)
		return ic.Reply.Reply("pong", nil, false)
	}}
	r, err := dispatch(registryWith(t, ping), "ping")

	require.NoError(t, err)
	assert.Equal(t, 1, ping.calls)
	require.Len(t, r.Messages, 1)
	assert.Equal(t, "pong", r.Last().Content)
}

func TestDispatch_UnknownIsSilent(t *testing.T) {
	r, err := dispatch(registryWith(t), "nope")
	require.NoError(t, err)
	assert.Empty(t, r.Messages)
}

func TestDispatch_ErrorBeforeReply(t *testing.T) {
	boom := &fakeCommand{name: "boom", desc: "x", run: func(ctx context.Context, ic *SlashInteractionContext) error {
		return errors.New("kaput")
	}}
	r, err := dispatch(registryWith(t, boom), "boom")

	require.EqualError(t, err, "kaput")
	require.Len(t, r.Messages, 1)
	assert.Equal(t, "reply", r.Last().Kind)
	assert.True(t, r.Last().Ephemeral)
	assert.Equal(t, "An error occurred while running the command: kaput", r.Last().Content)
}

func TestDispatch_ErrorAfterDefer(t *testing.T) {
	slow := &fakeCommand{name: "slow", desc: "x", run: func(ctx context.Context, ic *SlashInteractionContext) error {
		if err := ic.Reply.Defer(); err != nil {
			return err
		}
		return errors.New("late failure")
	}}
	r, err := dispatch(registryWith(t, slow), "slow")

	require.Error(t, err)
	assert.Equal(t, 1, r.Count("defer"))
	assert.Equal(t, 1, r.Count("followup"))
	assert.Equal(t, 0, r.Count("reply"))
	assert.True(t, r.Last().Ephemeral)
}

func TestDispatch_PanicBecomesOneReply(t *testing.T) {
	p := &fakeCommand{name: "panic", desc: "x", run: func(ctx context.Context, ic *SlashInteractionContext) error {
		panic("nil map")
	}}
	r, err := dispatch(registryWith(t, p), "panic")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "nil map")
	require.Len(t, r.Messages, 1)
	assert.Contains(t, r.Last().Content, "panic: nil map")
}

func TestDispatch_NonCommandEvent(t *testing.T) {
	reg := registryWith(t, &fakeCommand{name: "ping", desc: "x"})
	r := &commandtest.Replier{}
	ic := &SlashInteractionContext{
		Event: &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{Type: discordgo.InteractionMessageComponent}},
		Reply: r,
	}
	require.NoError(t, Dispatch(context.Background(), reg, ic, i18n.MustNew("en")))
	assert.Empty(t, r.Messages)
}

func TestAdapter_RejectsForeignInvocation(t *testing.T) {
	a := &DiscordAdapter{Cmd: &fakeCommand{name: "ping", desc: "x"}}
	err := a.Run(context.Background(), &cmd.Invocation{Data: "cli"})
	assert.Error(t, err)
}

func TestStringOption(t *testing.T) {
	ic := &SlashInteractionContext{Event: NewSlashEvent("mcstatus", map[string]string{"ip": " mc.local ", "port": ""})}

	v, ok := ic.StringOption("ip")
	assert.True(t, ok)
	assert.Equal(t, "mc.local", v)

	_, ok = ic.StringOption("port")
	assert.False(t, ok)
	_, ok = ic.StringOption("missing")
	assert.False(t, ok)
}
