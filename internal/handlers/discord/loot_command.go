package discord

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/KirkDiggler/lootwheel/internal/bosstimer"
	"github.com/KirkDiggler/lootwheel/internal/common/clock"
	"github.com/KirkDiggler/lootwheel/internal/models"
	engine "github.com/KirkDiggler/lootwheel/internal/rotation"
	"github.com/KirkDiggler/lootwheel/internal/services/messaging"
	rotationService "github.com/KirkDiggler/lootwheel/internal/services/rotation"
	"github.com/bwmarrin/discordgo"
	"go.uber.org/zap"
)

// BossBoard lists upcoming boss spawns
type BossBoard interface {
	Countdowns(now time.Time) []bosstimer.Countdown
}

// LootCommandConfig holds the collaborators of the /loot command
type LootCommandConfig struct {
	RotationService rotationService.Service
	Messaging       messaging.Service

	// Bosses is optional, /loot bosses reports no schedule without it
	Bosses BossBoard

	// AdminRoleID grants admin actions in addition to Manage Server
	AdminRoleID string

	Clock    clock.Clock
	Location *time.Location
	Logger   *zap.Logger
}

// LootCommand handles the /loot command and the status buttons
type LootCommand struct {
	BaseCommand
	rotation    rotationService.Service
	messaging   messaging.Service
	bosses      BossBoard
	adminRoleID string
	clock       clock.Clock
	location    *time.Location
	logger      *zap.Logger
}

func itemOption(required bool) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        "item",
		Description: "Item name",
		Required:    required,
	}
}

func memberOption(name, description string, required bool) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        name,
		Description: description,
		Required:    required,
	}
}

func rarityOption() *discordgo.ApplicationCommandOption {
	choices := make([]*discordgo.ApplicationCommandOptionChoice, 0, 5)
	for _, r := range []models.Rarity{models.RarityCommon, models.RarityUncommon, models.RarityRare, models.RarityEpic, models.RarityLegendary} {
		choices = append(choices, &discordgo.ApplicationCommandOptionChoice{Name: string(r), Value: string(r)})
	}
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        "rarity",
		Description: "Item rarity",
		Choices:     choices,
	}
}

func subCommand(name, description string, options ...*discordgo.ApplicationCommandOption) *discordgo.ApplicationCommandOption {
	return &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionSubCommand,
		Name:        name,
		Description: description,
		Options:     options,
	}
}

// NewLootCommand creates the /loot command handler
func NewLootCommand(cfg *LootCommandConfig) (*LootCommand, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if cfg.RotationService == nil {
		return nil, fmt.Errorf("rotation service cannot be nil")
	}
	if cfg.Messaging == nil {
		return nil, fmt.Errorf("messaging service cannot be nil")
	}

	clk := cfg.Clock
	if clk == nil {
		clk = &clock.DefaultClock{}
	}
	loc := cfg.Location
	if loc == nil {
		loc = time.UTC
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &LootCommand{
		BaseCommand: BaseCommand{
			Name:        "loot",
			Description: "Guild loot rotations",
			Options: []*discordgo.ApplicationCommandOption{
				subCommand("status", "Show whose turn it is on every item"),
				subCommand("history", "Show recent loot actions",
					itemOption(false),
					&discordgo.ApplicationCommandOption{
						Type:        discordgo.ApplicationCommandOptionInteger,
						Name:        "limit",
						Description: "How many entries to show",
					},
				),
				subCommand("loot", "Record that the current holder took the item",
					itemOption(true),
					memberOption("member", "Who is looting, must hold the turn", false),
				),
				subCommand("skip", "Defer the current holder's turn",
					itemOption(true),
					memberOption("member", "Who is skipping, must hold the turn", false),
				),
				subCommand("swap", "Hand the current turn's item to someone else",
					itemOption(true),
					memberOption("to", "Who receives the item", true),
					memberOption("member", "Who is swapping, must hold the turn", false),
				),
				subCommand("advance", "Move the turn on without recording an action",
					&discordgo.ApplicationCommandOption{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "item",
						Description: "Item name, every item when empty",
					},
				),
				subCommand("reset", "Start a rotation over",
					&discordgo.ApplicationCommandOption{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "item",
						Description: "Item name, every item when empty",
					},
				),
				subCommand("randomize", "Shuffle an item's rotation", itemOption(true)),
				subCommand("move", "Move one entry of a rotation up or down",
					itemOption(true),
					&discordgo.ApplicationCommandOption{
						Type:        discordgo.ApplicationCommandOptionInteger,
						Name:        "position",
						Description: "Position in the rotation, starting at 1",
						Required:    true,
						MinValue:    &minPosition,
					},
					&discordgo.ApplicationCommandOption{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "direction",
						Description: "Which way to move it",
						Required:    true,
						Choices: []*discordgo.ApplicationCommandOptionChoice{
							{Name: "up", Value: string(engine.DirectionUp)},
							{Name: "down", Value: string(engine.DirectionDown)},
						},
					},
				),
				subCommand("delete", "Delete an item and its rotation", itemOption(true)),
				subCommand("add-item", "Add an item with a rotation over the whole roster",
					&discordgo.ApplicationCommandOption{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "name",
						Description: "Item name",
						Required:    true,
					},
					rarityOption(),
					&discordgo.ApplicationCommandOption{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "category",
						Description: "Free-form category",
					},
				),
				subCommand("queue-item", "Stage an item to be promoted later",
					&discordgo.ApplicationCommandOption{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "name",
						Description: "Item name",
						Required:    true,
					},
					rarityOption(),
					&discordgo.ApplicationCommandOption{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "priority",
						Description: "Where it goes in the queue",
						Choices: []*discordgo.ApplicationCommandOptionChoice{
							{Name: "normal", Value: string(models.PriorityNormal)},
							{Name: "high", Value: string(models.PriorityHigh)},
							{Name: "urgent", Value: string(models.PriorityUrgent)},
						},
					},
				),
				subCommand("promote", "Promote a staged item into the rotations",
					memberOption("pending", "Staged item name", true),
				),
				subCommand("discard", "Drop a staged item",
					memberOption("pending", "Staged item name", true),
				),
				subCommand("add-member", "Add a member to the roster",
					memberOption("name", "Member name", true),
					memberOption("role", "Role, e.g. officer", false),
					&discordgo.ApplicationCommandOption{
						Type:        discordgo.ApplicationCommandOptionBoolean,
						Name:        "join",
						Description: "Add them to the end of every rotation",
					},
				),
				subCommand("remove-member", "Remove a member from the roster and every rotation",
					memberOption("member", "Member name", true),
				),
				subCommand("rename-member", "Rename a member",
					memberOption("member", "Current name", true),
					memberOption("name", "New name", true),
				),
				subCommand("bosses", "Show the time until the next boss spawns"),
			},
		},
		rotation:    cfg.RotationService,
		messaging:   cfg.Messaging,
		bosses:      cfg.Bosses,
		adminRoleID: cfg.AdminRoleID,
		clock:       clk,
		location:    loc,
		logger:      logger,
	}, nil
}

var minPosition = float64(1)

type optionMap map[string]*discordgo.ApplicationCommandInteractionDataOption

func newOptionMap(opts []*discordgo.ApplicationCommandInteractionDataOption) optionMap {
	m := make(optionMap, len(opts))
	for _, o := range opts {
		m[o.Name] = o
	}
	return m
}

func (m optionMap) str(name string) string {
	if o, ok := m[name]; ok {
		return strings.TrimSpace(o.StringValue())
	}
	return ""
}

func (m optionMap) integer(name string) int {
	if o, ok := m[name]; ok {
		return int(o.IntValue())
	}
	return 0
}

func (m optionMap) boolean(name string) bool {
	if o, ok := m[name]; ok {
		return o.BoolValue()
	}
	return false
}

// isAdmin reports whether the member may change rotations: they hold the
// configured admin role or can manage the server
func (c *LootCommand) isAdmin(member *discordgo.Member) bool {
	if member == nil {
		return false
	}
	if member.Permissions&(discordgo.PermissionAdministrator|discordgo.PermissionManageServer) != 0 {
		return true
	}
	return c.adminRoleID != "" && slices.Contains(member.Roles, c.adminRoleID)
}

// Handle processes a Discord interaction for the loot command
func (c *LootCommand) Handle(r Responder, i *discordgo.InteractionCreate) error {
	if i.Type != discordgo.InteractionApplicationCommand {
		return nil
	}

	data := i.ApplicationCommandData()
	if data.Name != c.Name || len(data.Options) == 0 {
		return nil
	}
	if i.GuildID == "" {
		return RespondWithEphemeralMessage(r, i, "Loot rotations only work inside a server.")
	}

	ctx := context.Background()
	sub := data.Options[0]
	opts := newOptionMap(sub.Options)
	guildID := i.GuildID
	admin := c.isAdmin(i.Member)

	switch sub.Name {
	case "status":
		return c.handleStatus(ctx, r, i, guildID)
	case "history":
		return c.handleHistory(ctx, r, i, guildID, opts)
	case "bosses":
		return RespondWithEmbeds(r, i, []*discordgo.MessageEmbed{c.bossEmbed()}, nil)
	case "loot":
		out, err := c.rotation.Loot(ctx, &rotationService.TurnInput{
			GuildID:        guildID,
			Admin:          admin,
			ItemRef:        opts.str("item"),
			ParticipantRef: opts.str("member"),
		})
		return c.respondTurn(r, i, sub.Name, out, err)
	case "skip":
		out, err := c.rotation.Skip(ctx, &rotationService.TurnInput{
			GuildID:        guildID,
			Admin:          admin,
			ItemRef:        opts.str("item"),
			ParticipantRef: opts.str("member"),
		})
		return c.respondTurn(r, i, sub.Name, out, err)
	case "swap":
		out, err := c.rotation.Swap(ctx, &rotationService.SwapInput{
			GuildID:        guildID,
			Admin:          admin,
			ItemRef:        opts.str("item"),
			ParticipantRef: opts.str("member"),
			CounterpartRef: opts.str("to"),
		})
		return c.respondTurn(r, i, sub.Name, out, err)
	case "advance":
		return c.handleAdvance(ctx, r, i, guildID, admin, opts.str("item"))
	case "reset":
		out, err := c.rotation.Reset(ctx, &rotationService.ResetInput{GuildID: guildID, Admin: admin, ItemRef: opts.str("item")})
		if err != nil {
			return c.fail(ctx, r, i, sub.Name, err)
		}
		return RespondWithMessage(r, i, out.Announcement)
	case "randomize":
		out, err := c.rotation.Randomize(ctx, &rotationService.ItemInput{GuildID: guildID, Admin: admin, ItemRef: opts.str("item")})
		if err != nil {
			return c.fail(ctx, r, i, sub.Name, err)
		}
		return RespondWithEmbeds(r, i, []*discordgo.MessageEmbed{renderOrder(opts.str("item"), out.Names)}, nil)
	case "move":
		out, err := c.rotation.Reorder(ctx, &rotationService.ReorderInput{
			GuildID:   guildID,
			Admin:     admin,
			ItemRef:   opts.str("item"),
			Index:     opts.integer("position") - 1,
			Direction: engine.Direction(opts.str("direction")),
		})
		if err != nil {
			return c.fail(ctx, r, i, sub.Name, err)
		}
		return RespondWithEmbeds(r, i, []*discordgo.MessageEmbed{renderOrder(opts.str("item"), out.Names)}, nil)
	case "delete":
		out, err := c.rotation.DeleteItem(ctx, &rotationService.ItemInput{GuildID: guildID, Admin: admin, ItemRef: opts.str("item")})
		if err != nil {
			return c.fail(ctx, r, i, sub.Name, err)
		}
		return RespondWithMessage(r, i, fmt.Sprintf("Deleted %s and its rotation.", out.Item.Name))
	case "add-item":
		out, err := c.rotation.AddItem(ctx, &rotationService.AddItemInput{
			GuildID:  guildID,
			Admin:    admin,
			Name:     opts.str("name"),
			Rarity:   models.Rarity(opts.str("rarity")),
			Category: opts.str("category"),
		})
		if err != nil {
			return c.fail(ctx, r, i, sub.Name, err)
		}
		return RespondWithEmbeds(r, i, []*discordgo.MessageEmbed{renderItem(out.View.Item(out.Item.ID))}, nil)
	case "queue-item":
		out, err := c.rotation.QueueItem(ctx, &rotationService.QueueItemInput{
			GuildID:  guildID,
			Admin:    admin,
			Name:     opts.str("name"),
			Rarity:   models.Rarity(opts.str("rarity")),
			Priority: models.Priority(opts.str("priority")),
		})
		if err != nil {
			return c.fail(ctx, r, i, sub.Name, err)
		}
		return RespondWithMessage(r, i, fmt.Sprintf("Queued %s at position %d.", out.Pending.Name, out.Position+1))
	case "promote":
		out, err := c.rotation.Promote(ctx, &rotationService.PromoteInput{GuildID: guildID, Admin: admin, PendingRef: opts.str("pending")})
		if err != nil {
			return c.fail(ctx, r, i, sub.Name, err)
		}
		return RespondWithEmbeds(r, i, []*discordgo.MessageEmbed{renderItem(out.View.Item(out.Item.ID))}, nil)
	case "discard":
		out, err := c.rotation.DiscardPending(ctx, &rotationService.PendingInput{GuildID: guildID, Admin: admin, PendingRef: opts.str("pending")})
		if err != nil {
			return c.fail(ctx, r, i, sub.Name, err)
		}
		return RespondWithMessage(r, i, fmt.Sprintf("Dropped %s from the queue.", out.Pending.Name))
	case "add-member":
		out, err := c.rotation.AddParticipant(ctx, &rotationService.AddParticipantInput{
			GuildID:       guildID,
			Admin:         admin,
			Name:          opts.str("name"),
			Role:          opts.str("role"),
			JoinRotations: opts.boolean("join"),
		})
		if err != nil {
			return c.fail(ctx, r, i, sub.Name, err)
		}
		return RespondWithMessage(r, i, fmt.Sprintf("Welcome %s!", out.Participant.Name))
	case "remove-member":
		out, err := c.rotation.RemoveParticipant(ctx, &rotationService.ParticipantInput{GuildID: guildID, Admin: admin, ParticipantRef: opts.str("member")})
		if err != nil {
			return c.fail(ctx, r, i, sub.Name, err)
		}
		return RespondWithMessage(r, i, fmt.Sprintf("%s was removed from the roster.", out.Participant.Name))
	case "rename-member":
		out, err := c.rotation.RenameParticipant(ctx, &rotationService.RenameParticipantInput{
			GuildID:        guildID,
			Admin:          admin,
			ParticipantRef: opts.str("member"),
			Name:           opts.str("name"),
		})
		if err != nil {
			return c.fail(ctx, r, i, sub.Name, err)
		}
		return RespondWithMessage(r, i, fmt.Sprintf("%s is now called %s.", opts.str("member"), out.Participant.Name))
	default:
		return RespondWithEphemeralMessage(r, i, fmt.Sprintf("Unknown subcommand: %s", sub.Name))
	}
}

func (c *LootCommand) handleStatus(ctx context.Context, r Responder, i *discordgo.InteractionCreate, guildID string) error {
	out, err := c.rotation.GetState(ctx, &rotationService.GetStateInput{GuildID: guildID})
	if err != nil {
		return c.fail(ctx, r, i, "status", err)
	}
	embeds, components := renderStatus(out.View)
	return RespondWithEmbeds(r, i, embeds, components)
}

func (c *LootCommand) handleHistory(ctx context.Context, r Responder, i *discordgo.InteractionCreate, guildID string, opts optionMap) error {
	out, err := c.rotation.GetHistory(ctx, &rotationService.GetHistoryInput{
		GuildID: guildID,
		ItemRef: opts.str("item"),
		Limit:   opts.integer("limit"),
	})
	if err != nil {
		return c.fail(ctx, r, i, "history", err)
	}
	return RespondWithEmbeds(r, i, []*discordgo.MessageEmbed{renderHistory(out.Entries, c.location)}, nil)
}

func (c *LootCommand) handleAdvance(ctx context.Context, r Responder, i *discordgo.InteractionCreate, guildID string, admin bool, itemRef string) error {
	if itemRef == "" {
		out, err := c.rotation.AdvanceAll(ctx, &rotationService.GuildInput{GuildID: guildID, Admin: admin})
		if err != nil {
			return c.fail(ctx, r, i, "advance", err)
		}
		return RespondWithMessage(r, i, fmt.Sprintf("Advanced %d rotation(s).", out.Advanced))
	}

	out, err := c.rotation.Advance(ctx, &rotationService.ItemInput{GuildID: guildID, Admin: admin, ItemRef: itemRef})
	if err != nil {
		return c.fail(ctx, r, i, "advance", err)
	}
	if !out.Advanced {
		return RespondWithEphemeralMessage(r, i, fmt.Sprintf("Nobody is in the %s rotation.", itemRef))
	}
	return RespondWithMessage(r, i, fmt.Sprintf("%s is up next on %s.", out.HolderName, itemRef))
}

func (c *LootCommand) respondTurn(r Responder, i *discordgo.InteractionCreate, op string, out *rotationService.TurnOutput, err error) error {
	if err != nil {
		return c.fail(context.Background(), r, i, op, err)
	}
	item := out.View.Item(out.Result.Entry.ItemID)
	if item == nil {
		return RespondWithMessage(r, i, out.Announcement)
	}
	return RespondWithEmbeds(r, i, []*discordgo.MessageEmbed{renderTurn(out.Announcement, item)}, nil)
}

func (c *LootCommand) bossEmbed() *discordgo.MessageEmbed {
	if c.bosses == nil {
		return renderBosses(nil)
	}
	return renderBosses(c.bosses.Countdowns(c.clock.Now().In(c.location)))
}

// HandleComponent processes the buttons on a status message
func (c *LootCommand) HandleComponent(r Responder, i *discordgo.InteractionCreate) error {
	ctx := context.Background()
	customID := i.MessageComponentData().CustomID
	admin := c.isAdmin(i.Member)

	var err error
	switch {
	case customID == ButtonRefresh:
	case strings.HasPrefix(customID, ButtonLootPrefix):
		_, err = c.rotation.Loot(ctx, &rotationService.TurnInput{
			GuildID: i.GuildID,
			Admin:   admin,
			ItemRef: strings.TrimPrefix(customID, ButtonLootPrefix),
		})
	case strings.HasPrefix(customID, ButtonSkipPrefix):
		_, err = c.rotation.Skip(ctx, &rotationService.TurnInput{
			GuildID: i.GuildID,
			Admin:   admin,
			ItemRef: strings.TrimPrefix(customID, ButtonSkipPrefix),
		})
	default:
		return RespondWithEphemeralMessage(r, i, fmt.Sprintf("Unknown button: %s", customID))
	}
	if err != nil {
		return c.fail(ctx, r, i, customID, err)
	}

	out, err := c.rotation.GetState(ctx, &rotationService.GetStateInput{GuildID: i.GuildID})
	if err != nil {
		return c.fail(ctx, r, i, "status", err)
	}
	embeds, components := renderStatus(out.View)
	return UpdateWithEmbeds(r, i, embeds, components)
}

// fail logs a rejected operation and tells the caller why in words
func (c *LootCommand) fail(ctx context.Context, r Responder, i *discordgo.InteractionCreate, op string, err error) error {
	c.logger.Info("loot command failed",
		zap.String("op", op),
		zap.String("guild_id", i.GuildID),
		zap.Error(err),
	)

	msg, mErr := c.messaging.GetErrorMessage(ctx, &messaging.GetErrorMessageInput{Err: err})
	if mErr != nil {
		return RespondWithError(r, i, "Error", err.Error())
	}
	return RespondWithError(r, i, msg.Title, msg.Message)
}
