package discord

import (
	"testing"
	"time"

	"github.com/KirkDiggler/lootwheel/internal/bosstimer"
	"github.com/KirkDiggler/lootwheel/internal/common/clock"
	"github.com/KirkDiggler/lootwheel/internal/models"
	engine "github.com/KirkDiggler/lootwheel/internal/rotation"
	"github.com/KirkDiggler/lootwheel/internal/services/messaging"
	rotationService "github.com/KirkDiggler/lootwheel/internal/services/rotation"
	rotationMocks "github.com/KirkDiggler/lootwheel/internal/services/rotation/mocks"
	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// recorder captures interaction responses
type recorder struct {
	responses []*discordgo.InteractionResponse
}

func (r *recorder) InteractionRespond(_ *discordgo.Interaction, resp *discordgo.InteractionResponse, _ ...discordgo.RequestOption) error {
	r.responses = append(r.responses, resp)
	return nil
}

func (r *recorder) last() *discordgo.InteractionResponse {
	if len(r.responses) == 0 {
		return nil
	}
	return r.responses[len(r.responses)-1]
}

type fixedBoard []bosstimer.Countdown

func (b fixedBoard) Countdowns(time.Time) []bosstimer.Countdown { return b }

type LootCommandTestSuite struct {
	suite.Suite
	mockCtrl     *gomock.Controller
	mockRotation *rotationMocks.MockService
	command      *LootCommand
	responder    *recorder
	testGuild    string
	testView     *engine.View
}

func (s *LootCommandTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRotation = rotationMocks.NewMockService(s.mockCtrl)
	s.responder = &recorder{}
	s.testGuild = "guild-1"
	s.testView = &engine.View{
		GuildID: s.testGuild,
		Items:   []*engine.ItemView{testItemView("item-1", "Crystal", 1, "Alice", "Bob", "Cara")},
	}

	msg, err := messaging.NewService(&messaging.ServiceConfig{Seed: 1})
	s.Require().NoError(err)

	cmd, err := NewLootCommand(&LootCommandConfig{
		RotationService: s.mockRotation,
		Messaging:       msg,
		Bosses: fixedBoard{
			{Name: "Evening boss", At: time.Date(2025, 6, 1, 21, 0, 0, 0, time.UTC), Remaining: 5 * time.Minute},
		},
		AdminRoleID: "role-admin",
		Clock:       clock.Fixed(time.Date(2025, 6, 1, 20, 55, 0, 0, time.UTC)),
	})
	s.Require().NoError(err)
	s.command = cmd
}

func (s *LootCommandTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestLootCommandTestSuite(t *testing.T) {
	suite.Run(t, new(LootCommandTestSuite))
}

func str(name, value string) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{Name: name, Type: discordgo.ApplicationCommandOptionString, Value: value}
}

func integer(name string, value int) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{Name: name, Type: discordgo.ApplicationCommandOptionInteger, Value: float64(value)}
}

func boolean(name string, value bool) *discordgo.ApplicationCommandInteractionDataOption {
	return &discordgo.ApplicationCommandInteractionDataOption{Name: name, Type: discordgo.ApplicationCommandOptionBoolean, Value: value}
}

func adminMember() *discordgo.Member {
	return &discordgo.Member{User: &discordgo.User{ID: "user-1"}, Roles: []string{"role-admin"}}
}

func plainMember() *discordgo.Member {
	return &discordgo.Member{User: &discordgo.User{ID: "user-2"}}
}

func (s *LootCommandTestSuite) slash(member *discordgo.Member, sub string, opts ...*discordgo.ApplicationCommandInteractionDataOption) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		Type:    discordgo.InteractionApplicationCommand,
		GuildID: s.testGuild,
		Member:  member,
		Data: discordgo.ApplicationCommandInteractionData{
			Name: "loot",
			Options: []*discordgo.ApplicationCommandInteractionDataOption{{
				Name:    sub,
				Type:    discordgo.ApplicationCommandOptionSubCommand,
				Options: opts,
			}},
		},
	}}
}

func (s *LootCommandTestSuite) button(member *discordgo.Member, customID string) *discordgo.InteractionCreate {
	return &discordgo.InteractionCreate{Interaction: &discordgo.Interaction{
		Type:    discordgo.InteractionMessageComponent,
		GuildID: s.testGuild,
		Member:  member,
		Data:    discordgo.MessageComponentInteractionData{CustomID: customID},
	}}
}

func (s *LootCommandTestSuite) TestCommandDefinition() {
	def := s.command.GetCommand()
	s.Equal("loot", def.Name)

	var names []string
	for _, o := range def.Options {
		names = append(names, o.Name)
	}
	s.Equal([]string{
		"status", "history", "loot", "skip", "swap", "advance", "reset", "randomize", "move", "delete",
		"add-item", "queue-item", "promote", "discard", "add-member", "remove-member", "rename-member", "bosses",
	}, names)
}

func (s *LootCommandTestSuite) TestLootAsAdmin() {
	s.mockRotation.EXPECT().
		Loot(gomock.Any(), &rotationService.TurnInput{GuildID: s.testGuild, Admin: true, ItemRef: "Crystal"}).
		Return(&rotationService.TurnOutput{
			Result:       &engine.TurnResult{Entry: &models.HistoryEntry{ItemID: "item-1"}},
			Announcement: "Alice looted Crystal! Next: Bob",
			View:         s.testView,
		}, nil)

	err := s.command.Handle(s.responder, s.slash(adminMember(), "loot", str("item", "Crystal")))
	s.Require().NoError(err)

	resp := s.responder.last()
	s.Equal(discordgo.InteractionResponseChannelMessageWithSource, resp.Type)
	s.Require().Len(resp.Data.Embeds, 1)
	s.Equal("Alice looted Crystal! Next: Bob", resp.Data.Embeds[0].Title)
	s.Equal("Up now: **Bob**", resp.Data.Embeds[0].Description)
}

func (s *LootCommandTestSuite) TestManageServerIsAdmin() {
	member := plainMember()
	member.Permissions = discordgo.PermissionManageServer

	s.mockRotation.EXPECT().
		Skip(gomock.Any(), &rotationService.TurnInput{GuildID: s.testGuild, Admin: true, ItemRef: "Crystal", ParticipantRef: "Bob"}).
		Return(&rotationService.TurnOutput{
			Result:       &engine.TurnResult{Entry: &models.HistoryEntry{ItemID: "item-1"}},
			Announcement: "Bob skipped Crystal. Next: Cara",
			View:         s.testView,
		}, nil)

	err := s.command.Handle(s.responder, s.slash(member, "skip", str("item", "Crystal"), str("member", "Bob")))
	s.Require().NoError(err)
}

func (s *LootCommandTestSuite) TestRejectedActionRespondsWithFriendlyError() {
	s.mockRotation.EXPECT().
		Swap(gomock.Any(), &rotationService.SwapInput{GuildID: s.testGuild, Admin: false, ItemRef: "Crystal", CounterpartRef: "Cara"}).
		Return(nil, engine.ErrPermissionDenied)

	err := s.command.Handle(s.responder, s.slash(plainMember(), "swap", str("item", "Crystal"), str("to", "Cara")))
	s.Require().NoError(err)

	resp := s.responder.last()
	s.Equal(discordgo.MessageFlagsEphemeral, resp.Data.Flags)
	s.Equal("Admins only", resp.Data.Embeds[0].Title)
	s.Equal(colorError, resp.Data.Embeds[0].Color)
}

func (s *LootCommandTestSuite) TestMoveUsesZeroBasedIndex() {
	s.mockRotation.EXPECT().
		Reorder(gomock.Any(), &rotationService.ReorderInput{
			GuildID:   s.testGuild,
			Admin:     true,
			ItemRef:   "Crystal",
			Index:     1,
			Direction: engine.DirectionUp,
		}).
		Return(&rotationService.OrderOutput{Names: []string{"Bob", "Alice", "Cara"}, View: s.testView}, nil)

	err := s.command.Handle(s.responder, s.slash(adminMember(), "move",
		str("item", "Crystal"), integer("position", 2), str("direction", "up")))
	s.Require().NoError(err)
	s.Equal("1. Bob\n2. Alice\n3. Cara\n", s.responder.last().Data.Embeds[0].Description)
}

func (s *LootCommandTestSuite) TestAdvanceWithoutItemAdvancesAll() {
	s.mockRotation.EXPECT().
		AdvanceAll(gomock.Any(), &rotationService.GuildInput{GuildID: s.testGuild, Admin: true}).
		Return(&rotationService.AdvanceAllOutput{Advanced: 3, View: s.testView}, nil)

	err := s.command.Handle(s.responder, s.slash(adminMember(), "advance"))
	s.Require().NoError(err)
	s.Equal("Advanced 3 rotation(s).", s.responder.last().Data.Content)
}

func (s *LootCommandTestSuite) TestAdvanceEmptyRotation() {
	s.mockRotation.EXPECT().
		Advance(gomock.Any(), &rotationService.ItemInput{GuildID: s.testGuild, Admin: true, ItemRef: "Feather"}).
		Return(&rotationService.AdvanceOutput{Advanced: false, View: s.testView}, nil)

	err := s.command.Handle(s.responder, s.slash(adminMember(), "advance", str("item", "Feather")))
	s.Require().NoError(err)
	s.Equal(discordgo.MessageFlagsEphemeral, s.responder.last().Data.Flags)
}

func (s *LootCommandTestSuite) TestAddMember() {
	s.mockRotation.EXPECT().
		AddParticipant(gomock.Any(), &rotationService.AddParticipantInput{
			GuildID:       s.testGuild,
			Admin:         true,
			Name:          "Dana",
			Role:          "officer",
			JoinRotations: true,
		}).
		Return(&rotationService.ParticipantOutput{Participant: &models.Participant{Name: "Dana"}, View: s.testView}, nil)

	err := s.command.Handle(s.responder, s.slash(adminMember(), "add-member",
		str("name", "Dana"), str("role", "officer"), boolean("join", true)))
	s.Require().NoError(err)
	s.Equal("Welcome Dana!", s.responder.last().Data.Content)
}

func (s *LootCommandTestSuite) TestStatus() {
	s.mockRotation.EXPECT().
		GetState(gomock.Any(), &rotationService.GetStateInput{GuildID: s.testGuild}).
		Return(&rotationService.GetStateOutput{View: s.testView}, nil)

	err := s.command.Handle(s.responder, s.slash(plainMember(), "status"))
	s.Require().NoError(err)

	resp := s.responder.last()
	s.Len(resp.Data.Embeds, 1)
	s.Len(resp.Data.Components, 2)
}

func (s *LootCommandTestSuite) TestBosses() {
	err := s.command.Handle(s.responder, s.slash(plainMember(), "bosses"))
	s.Require().NoError(err)

	embed := s.responder.last().Data.Embeds[0]
	s.Require().Len(embed.Fields, 1)
	s.Equal("Evening boss", embed.Fields[0].Name)
	s.Equal("in 5m 0s (21:00 UTC)", embed.Fields[0].Value)
}

func (s *LootCommandTestSuite) TestOutsideGuild() {
	i := s.slash(plainMember(), "status")
	i.GuildID = ""

	err := s.command.Handle(s.responder, i)
	s.Require().NoError(err)
	s.Equal(discordgo.MessageFlagsEphemeral, s.responder.last().Data.Flags)
}

func (s *LootCommandTestSuite) TestLootButtonUpdatesStatus() {
	gomock.InOrder(
		s.mockRotation.EXPECT().
			Loot(gomock.Any(), &rotationService.TurnInput{GuildID: s.testGuild, Admin: true, ItemRef: "item-1"}).
			Return(&rotationService.TurnOutput{}, nil),
		s.mockRotation.EXPECT().
			GetState(gomock.Any(), gomock.Any()).
			Return(&rotationService.GetStateOutput{View: s.testView}, nil),
	)

	err := s.command.HandleComponent(s.responder, s.button(adminMember(), "loot:item-1"))
	s.Require().NoError(err)
	s.Equal(discordgo.InteractionResponseUpdateMessage, s.responder.last().Type)
}

func (s *LootCommandTestSuite) TestSkipButtonWithoutAdmin() {
	s.mockRotation.EXPECT().
		Skip(gomock.Any(), &rotationService.TurnInput{GuildID: s.testGuild, Admin: false, ItemRef: "item-1"}).
		Return(nil, engine.ErrPermissionDenied)

	err := s.command.HandleComponent(s.responder, s.button(plainMember(), "skip:item-1"))
	s.Require().NoError(err)
	s.Equal("Admins only", s.responder.last().Data.Embeds[0].Title)
}

func (s *LootCommandTestSuite) TestUnknownButton() {
	err := s.command.HandleComponent(s.responder, s.button(plainMember(), "mystery"))
	s.Require().NoError(err)
	s.Contains(s.responder.last().Data.Content, "Unknown button")
}

func (s *LootCommandTestSuite) TestBotDispatch() {
	session, err := discordgo.New("Bot test-token")
	s.Require().NoError(err)

	bot, err := New(&Config{Session: session, LootCommand: s.command})
	s.Require().NoError(err)
	bot.commands[s.command.GetName()] = s.command

	s.mockRotation.EXPECT().
		GetState(gomock.Any(), gomock.Any()).
		Return(&rotationService.GetStateOutput{View: s.testView}, nil)

	bot.dispatch(s.responder, s.slash(plainMember(), "status"))
	s.Len(s.responder.responses, 1)
}
