package rotation

import (
	"context"
	"errors"
	"fmt"

	"github.com/KirkDiggler/lootwheel/internal/models"
	"github.com/KirkDiggler/lootwheel/internal/notify"
	stateRepo "github.com/KirkDiggler/lootwheel/internal/repositories/state"
	engine "github.com/KirkDiggler/lootwheel/internal/rotation"
	"github.com/KirkDiggler/lootwheel/internal/services/messaging"
	"go.uber.org/zap"
)

// service implements the Service interface
type service struct {
	repo         stateRepo.Repository
	engine       *engine.Engine
	messaging    messaging.Service
	notifier     notify.Notifier
	logger       *zap.Logger
	historyLimit int
	locks        *guildLocks
}

// New creates a new rotation service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.StateRepo == nil {
		return nil, ErrNilRepository
	}
	if cfg.Messaging == nil {
		return nil, ErrNilMessaging
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}
	if cfg.Shuffler == nil {
		return nil, ErrNilShuffler
	}

	eng, err := engine.New(&engine.Config{
		Clock:         cfg.Clock,
		UUIDGenerator: cfg.UUIDGenerator,
		Shuffler:      cfg.Shuffler,
	})
	if err != nil {
		return nil, err
	}

	notifier := cfg.Notifier
	if notifier == nil {
		notifier = notify.Nop{}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	limit := cfg.HistoryLimit
	if limit <= 0 {
		limit = engine.DefaultHistoryLimit
	}

	return &service{
		repo:         cfg.StateRepo,
		engine:       eng,
		messaging:    cfg.Messaging,
		notifier:     notifier,
		logger:       logger,
		historyLimit: limit,
		locks:        newGuildLocks(),
	}, nil
}

// load fetches a guild's state, starting an empty one for a new guild
func (s *service) load(ctx context.Context, guildID string) (*models.RotationState, error) {
	if guildID == "" {
		return nil, ErrGuildRequired
	}
	state, err := s.repo.GetState(ctx, &stateRepo.GetStateInput{GuildID: guildID})
	if err != nil {
		if errors.Is(err, stateRepo.ErrStateNotFound) {
			return engine.NewState(guildID), nil
		}
		return nil, fmt.Errorf("failed to load state: %w", err)
	}
	return state, nil
}

// mutate runs one write under the guild's lock: load, apply, save. The
// state is only saved when apply produced a new version.
func (s *service) mutate(ctx context.Context, op, guildID string, admin bool, apply func(*models.RotationState) (*models.RotationState, error)) (*models.RotationState, error) {
	log := s.logger.With(zap.String("op", op), zap.String("guild_id", guildID))
	if !admin {
		log.Info("rejected mutation without admin capability")
		return nil, engine.ErrPermissionDenied
	}
	if guildID == "" {
		return nil, ErrGuildRequired
	}

	unlock := s.locks.lock(guildID)
	defer unlock()

	state, err := s.load(ctx, guildID)
	if err != nil {
		log.Error("failed to load state", zap.Error(err))
		return nil, err
	}

	next, err := apply(state)
	if err != nil {
		log.Info("operation rejected", zap.Error(err))
		return nil, err
	}

	if next.Version != state.Version {
		if err := s.repo.SaveState(ctx, &stateRepo.SaveStateInput{State: next}); err != nil {
			log.Error("failed to save state", zap.Error(err))
			return nil, fmt.Errorf("failed to save state: %w", err)
		}
	}

	log.Debug("operation applied", zap.Int64("version", next.Version))
	return next, nil
}

// GetState returns the current rotations of a guild
func (s *service) GetState(ctx context.Context, input *GetStateInput) (*GetStateOutput, error) {
	if input == nil {
		return nil, engine.ErrNilInput
	}
	state, err := s.load(ctx, input.GuildID)
	if err != nil {
		return nil, err
	}
	return &GetStateOutput{State: state, View: engine.NewView(state)}, nil
}

// GetHistory returns the most recent actions of a guild
func (s *service) GetHistory(ctx context.Context, input *GetHistoryInput) (*GetHistoryOutput, error) {
	if input == nil {
		return nil, engine.ErrNilInput
	}
	state, err := s.load(ctx, input.GuildID)
	if err != nil {
		return nil, err
	}

	var itemID models.ItemID
	if input.ItemRef != "" {
		item, err := engine.FindItem(state, input.ItemRef)
		if err != nil {
			return nil, err
		}
		itemID = item.ID
	}
	limit := input.Limit
	if limit <= 0 {
		limit = s.historyLimit
	}

	return &GetHistoryOutput{Entries: engine.Recent(state, itemID, limit)}, nil
}

// Loot records that the current holder took an item
func (s *service) Loot(ctx context.Context, input *TurnInput) (*TurnOutput, error) {
	if input == nil {
		return nil, engine.ErrNilInput
	}
	return s.turn(ctx, "loot", input.GuildID, input.Admin, func(state *models.RotationState) (*models.RotationState, *engine.TurnResult, error) {
		itemID, participantID, err := resolveTurn(state, input.ItemRef, input.ParticipantRef)
		if err != nil {
			return nil, nil, err
		}
		return s.engine.Loot(state, &engine.TurnInput{ItemID: itemID, ParticipantID: participantID})
	})
}

// Skip defers the current holder's turn on an item
func (s *service) Skip(ctx context.Context, input *TurnInput) (*TurnOutput, error) {
	if input == nil {
		return nil, engine.ErrNilInput
	}
	return s.turn(ctx, "skip", input.GuildID, input.Admin, func(state *models.RotationState) (*models.RotationState, *engine.TurnResult, error) {
		itemID, participantID, err := resolveTurn(state, input.ItemRef, input.ParticipantRef)
		if err != nil {
			return nil, nil, err
		}
		return s.engine.Skip(state, &engine.TurnInput{ItemID: itemID, ParticipantID: participantID})
	})
}

// Swap records that the current holder handed an item to someone else
func (s *service) Swap(ctx context.Context, input *SwapInput) (*TurnOutput, error) {
	if input == nil {
		return nil, engine.ErrNilInput
	}
	return s.turn(ctx, "swap", input.GuildID, input.Admin, func(state *models.RotationState) (*models.RotationState, *engine.TurnResult, error) {
		itemID, participantID, err := resolveTurn(state, input.ItemRef, input.ParticipantRef)
		if err != nil {
			return nil, nil, err
		}
		counterpart, err := engine.FindParticipant(state, input.CounterpartRef)
		if err != nil {
			return nil, nil, err
		}
		return s.engine.Swap(state, &engine.SwapInput{
			ItemID:        itemID,
			ParticipantID: participantID,
			CounterpartID: counterpart.ID,
		})
	})
}

type turnFunc func(*models.RotationState) (*models.RotationState, *engine.TurnResult, error)

// turn runs a loot, skip or swap and announces it
func (s *service) turn(ctx context.Context, op, guildID string, admin bool, apply turnFunc) (*TurnOutput, error) {
	var result *engine.TurnResult
	next, err := s.mutate(ctx, op, guildID, admin, func(state *models.RotationState) (*models.RotationState, error) {
		n, r, err := apply(state)
		result = r
		return n, err
	})
	if err != nil {
		return nil, err
	}

	entry := result.Entry
	var rarity models.Rarity
	if item, err := engine.FindItem(next, string(entry.ItemID)); err == nil {
		rarity = item.Rarity
	}

	msg, err := s.messaging.GetActionMessage(ctx, &messaging.GetActionMessageInput{
		Kind:            entry.Kind,
		ParticipantName: entry.ParticipantName,
		ItemName:        entry.ItemName,
		CounterpartName: entry.CounterpartName,
		NextName:        entry.NextParticipantName,
		Removed:         result.Removed,
		NewCycle:        result.NewCycle,
		Rarity:          rarity,
	})
	if err != nil {
		s.logger.Warn("failed to build announcement", zap.String("op", op), zap.Error(err))
		return &TurnOutput{Result: result, View: engine.NewView(next)}, nil
	}

	s.announce(ctx, &notify.Announcement{
		GuildID: guildID,
		Title:   msg.Title,
		Message: msg.Message,
		Comment: msg.Comment,
		Color:   rarity.Color(),
	})

	s.logger.Info("turn recorded",
		zap.String("op", op),
		zap.String("guild_id", guildID),
		zap.String("item", entry.ItemName),
		zap.String("participant", entry.ParticipantName),
		zap.String("next", entry.NextParticipantName),
	)

	return &TurnOutput{
		Result:       result,
		Announcement: msg.Message,
		View:         engine.NewView(next),
	}, nil
}

// announce posts without failing the operation that triggered it
func (s *service) announce(ctx context.Context, announcement *notify.Announcement) {
	if err := s.notifier.Notify(ctx, announcement); err != nil {
		s.logger.Warn("failed to post announcement",
			zap.String("guild_id", announcement.GuildID),
			zap.Error(err),
		)
	}
}

// Advance moves an item's turn on without recording an action
func (s *service) Advance(ctx context.Context, input *ItemInput) (*AdvanceOutput, error) {
	if input == nil {
		return nil, engine.ErrNilInput
	}
	var result *engine.AdvanceResult
	next, err := s.mutate(ctx, "advance", input.GuildID, input.Admin, func(state *models.RotationState) (*models.RotationState, error) {
		item, err := engine.FindItem(state, input.ItemRef)
		if err != nil {
			return nil, err
		}
		n, r, err := s.engine.Advance(state, &engine.AdvanceInput{ItemID: item.ID})
		result = r
		return n, err
	})
	if err != nil {
		return nil, err
	}

	out := &AdvanceOutput{Advanced: result.Advanced, View: engine.NewView(next)}
	if result.Advanced {
		out.HolderName = engine.ParticipantName(next, result.Holder)
	}
	return out, nil
}

// AdvanceAll moves every item's turn on by one
func (s *service) AdvanceAll(ctx context.Context, input *GuildInput) (*AdvanceAllOutput, error) {
	if input == nil {
		return nil, engine.ErrNilInput
	}
	var result *engine.AdvanceAllResult
	next, err := s.mutate(ctx, "advance_all", input.GuildID, input.Admin, func(state *models.RotationState) (*models.RotationState, error) {
		n, r, err := s.engine.AdvanceAll(state, &engine.AdvanceAllInput{})
		result = r
		return n, err
	})
	if err != nil {
		return nil, err
	}
	return &AdvanceAllOutput{Advanced: result.Advanced, View: engine.NewView(next)}, nil
}

// Reorder moves one entry of an item's rotation up or down
func (s *service) Reorder(ctx context.Context, input *ReorderInput) (*OrderOutput, error) {
	if input == nil {
		return nil, engine.ErrNilInput
	}
	return s.order(ctx, "reorder", input.GuildID, input.Admin, func(state *models.RotationState) (*models.RotationState, *engine.OrderResult, error) {
		item, err := engine.FindItem(state, input.ItemRef)
		if err != nil {
			return nil, nil, err
		}
		return s.engine.Reorder(state, &engine.ReorderInput{ItemID: item.ID, Index: input.Index, Direction: input.Direction})
	})
}

// SetOrder replaces an item's rotation order
func (s *service) SetOrder(ctx context.Context, input *SetOrderInput) (*OrderOutput, error) {
	if input == nil {
		return nil, engine.ErrNilInput
	}
	return s.order(ctx, "set_order", input.GuildID, input.Admin, func(state *models.RotationState) (*models.RotationState, *engine.OrderResult, error) {
		item, err := engine.FindItem(state, input.ItemRef)
		if err != nil {
			return nil, nil, err
		}
		order, err := resolveParticipants(state, input.ParticipantRefs)
		if err != nil {
			return nil, nil, err
		}
		return s.engine.SetOrder(state, &engine.SetOrderInput{ItemID: item.ID, Order: order})
	})
}

// Randomize shuffles an item's rotation order
func (s *service) Randomize(ctx context.Context, input *ItemInput) (*OrderOutput, error) {
	if input == nil {
		return nil, engine.ErrNilInput
	}
	return s.order(ctx, "randomize", input.GuildID, input.Admin, func(state *models.RotationState) (*models.RotationState, *engine.OrderResult, error) {
		item, err := engine.FindItem(state, input.ItemRef)
		if err != nil {
			return nil, nil, err
		}
		return s.engine.Randomize(state, &engine.RandomizeInput{ItemID: item.ID})
	})
}

func (s *service) order(ctx context.Context, op, guildID string, admin bool, apply func(*models.RotationState) (*models.RotationState, *engine.OrderResult, error)) (*OrderOutput, error) {
	var result *engine.OrderResult
	next, err := s.mutate(ctx, op, guildID, admin, func(state *models.RotationState) (*models.RotationState, error) {
		n, r, err := apply(state)
		result = r
		return n, err
	})
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(result.Order))
	for _, id := range result.Order {
		names = append(names, engine.ParticipantName(next, id))
	}
	return &OrderOutput{Names: names, View: engine.NewView(next)}, nil
}

// Reset restores one item, or every item, to a fresh cycle
func (s *service) Reset(ctx context.Context, input *ResetInput) (*ResetOutput, error) {
	if input == nil {
		return nil, engine.ErrNilInput
	}
	var result *engine.ResetResult
	var itemName string
	next, err := s.mutate(ctx, "reset", input.GuildID, input.Admin, func(state *models.RotationState) (*models.RotationState, error) {
		var itemID models.ItemID
		if input.ItemRef != "" {
			item, err := engine.FindItem(state, input.ItemRef)
			if err != nil {
				return nil, err
			}
			itemID = item.ID
			itemName = item.Name
		}
		n, r, err := s.engine.Reset(state, &engine.ResetInput{ItemID: itemID})
		result = r
		return n, err
	})
	if err != nil {
		return nil, err
	}

	out := &ResetOutput{Result: result, View: engine.NewView(next)}
	msg, err := s.messaging.GetResetMessage(ctx, &messaging.GetResetMessageInput{ItemName: itemName, Restored: result.Restored})
	if err == nil {
		out.Announcement = msg.Message
		s.announce(ctx, &notify.Announcement{GuildID: input.GuildID, Title: "Rotation reset", Message: msg.Message})
	}
	return out, nil
}

// ResetDailyCounter clears a guild's count of actions taken today
func (s *service) ResetDailyCounter(ctx context.Context, input *GuildInput) (*ResetDailyCounterOutput, error) {
	if input == nil {
		return nil, engine.ErrNilInput
	}
	var result *engine.ResetDailyCounterResult
	_, err := s.mutate(ctx, "reset_daily_counter", input.GuildID, input.Admin, func(state *models.RotationState) (*models.RotationState, error) {
		n, r, err := s.engine.ResetDailyCounter(state, &engine.ResetDailyCounterInput{})
		result = r
		return n, err
	})
	if err != nil {
		return nil, err
	}
	return &ResetDailyCounterOutput{Previous: result.Previous}, nil
}

// ResetAllDailyCounters clears the daily counter of every stored guild. A
// failing guild does not stop the others.
func (s *service) ResetAllDailyCounters(ctx context.Context, input *ResetAllDailyCountersInput) (*ResetAllDailyCountersOutput, error) {
	if input == nil {
		return nil, engine.ErrNilInput
	}
	if !input.Admin {
		return nil, engine.ErrPermissionDenied
	}

	guilds, err := s.repo.ListGuilds(ctx, &stateRepo.ListGuildsInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to list guilds: %w", err)
	}

	out := &ResetAllDailyCountersOutput{}
	var errs []error
	for _, guildID := range guilds.GuildIDs {
		if _, err := s.ResetDailyCounter(ctx, &GuildInput{GuildID: guildID, Admin: true}); err != nil {
			errs = append(errs, fmt.Errorf("guild %s: %w", guildID, err))
			continue
		}
		out.Guilds++
	}
	return out, errors.Join(errs...)
}

// AddItem registers an item with its own rotation
func (s *service) AddItem(ctx context.Context, input *AddItemInput) (*ItemOutput, error) {
	if input == nil {
		return nil, engine.ErrNilInput
	}
	var result *engine.ItemResult
	next, err := s.mutate(ctx, "add_item", input.GuildID, input.Admin, func(state *models.RotationState) (*models.RotationState, error) {
		order, err := resolveParticipants(state, input.ParticipantRefs)
		if err != nil {
			return nil, err
		}
		n, r, err := s.engine.AddItem(state, &engine.AddItemInput{
			Name:     input.Name,
			Rarity:   input.Rarity,
			Category: input.Category,
			Order:    order,
		})
		result = r
		return n, err
	})
	if err != nil {
		return nil, err
	}
	return &ItemOutput{Item: result.Item, View: engine.NewView(next)}, nil
}

// DeleteItem removes an item and everything tied to it
func (s *service) DeleteItem(ctx context.Context, input *ItemInput) (*DeleteItemOutput, error) {
	if input == nil {
		return nil, engine.ErrNilInput
	}
	var result *engine.DeleteItemResult
	next, err := s.mutate(ctx, "delete_item", input.GuildID, input.Admin, func(state *models.RotationState) (*models.RotationState, error) {
		item, err := engine.FindItem(state, input.ItemRef)
		if err != nil {
			return nil, err
		}
		n, r, err := s.engine.DeleteItem(state, &engine.DeleteItemInput{ItemID: item.ID})
		result = r
		return n, err
	})
	if err != nil {
		return nil, err
	}
	return &DeleteItemOutput{Item: result.Item, DeferralsPurged: result.DeferralsPurged, View: engine.NewView(next)}, nil
}

// QueueItem stages an item for later promotion
func (s *service) QueueItem(ctx context.Context, input *QueueItemInput) (*QueueItemOutput, error) {
	if input == nil {
		return nil, engine.ErrNilInput
	}
	var result *engine.QueueItemResult
	next, err := s.mutate(ctx, "queue_item", input.GuildID, input.Admin, func(state *models.RotationState) (*models.RotationState, error) {
		n, r, err := s.engine.QueueItem(state, &engine.QueueItemInput{
			Name:     input.Name,
			Rarity:   input.Rarity,
			Category: input.Category,
			Priority: input.Priority,
		})
		result = r
		return n, err
	})
	if err != nil {
		return nil, err
	}
	return &QueueItemOutput{Pending: result.Pending, Position: result.Position, View: engine.NewView(next)}, nil
}

// Promote moves a staged item into the active rotations
func (s *service) Promote(ctx context.Context, input *PromoteInput) (*ItemOutput, error) {
	if input == nil {
		return nil, engine.ErrNilInput
	}
	var result *engine.ItemResult
	next, err := s.mutate(ctx, "promote", input.GuildID, input.Admin, func(state *models.RotationState) (*models.RotationState, error) {
		pending, err := engine.FindPending(state, input.PendingRef)
		if err != nil {
			return nil, err
		}
		order, err := resolveParticipants(state, input.ParticipantRefs)
		if err != nil {
			return nil, err
		}
		n, r, err := s.engine.Promote(state, &engine.PromoteInput{PendingID: pending.ID, Order: order})
		result = r
		return n, err
	})
	if err != nil {
		return nil, err
	}
	return &ItemOutput{Item: result.Item, View: engine.NewView(next)}, nil
}

// DiscardPending drops a staged item
func (s *service) DiscardPending(ctx context.Context, input *PendingInput) (*DiscardPendingOutput, error) {
	if input == nil {
		return nil, engine.ErrNilInput
	}
	var result *engine.DiscardPendingResult
	next, err := s.mutate(ctx, "discard_pending", input.GuildID, input.Admin, func(state *models.RotationState) (*models.RotationState, error) {
		pending, err := engine.FindPending(state, input.PendingRef)
		if err != nil {
			return nil, err
		}
		n, r, err := s.engine.DiscardPending(state, &engine.DiscardPendingInput{PendingID: pending.ID})
		result = r
		return n, err
	})
	if err != nil {
		return nil, err
	}
	return &DiscardPendingOutput{Pending: result.Pending, View: engine.NewView(next)}, nil
}

// AddParticipant adds a member to the roster
func (s *service) AddParticipant(ctx context.Context, input *AddParticipantInput) (*ParticipantOutput, error) {
	if input == nil {
		return nil, engine.ErrNilInput
	}
	var result *engine.ParticipantResult
	next, err := s.mutate(ctx, "add_participant", input.GuildID, input.Admin, func(state *models.RotationState) (*models.RotationState, error) {
		n, r, err := s.engine.AddParticipant(state, &engine.AddParticipantInput{
			Name:          input.Name,
			Role:          input.Role,
			JoinRotations: input.JoinRotations,
		})
		result = r
		return n, err
	})
	if err != nil {
		return nil, err
	}
	return &ParticipantOutput{Participant: result.Participant, View: engine.NewView(next)}, nil
}

// RemoveParticipant removes a member from the roster and every rotation
func (s *service) RemoveParticipant(ctx context.Context, input *ParticipantInput) (*ParticipantOutput, error) {
	if input == nil {
		return nil, engine.ErrNilInput
	}
	var result *engine.ParticipantResult
	next, err := s.mutate(ctx, "remove_participant", input.GuildID, input.Admin, func(state *models.RotationState) (*models.RotationState, error) {
		p, err := engine.FindParticipant(state, input.ParticipantRef)
		if err != nil {
			return nil, err
		}
		n, r, err := s.engine.RemoveParticipant(state, &engine.RemoveParticipantInput{ParticipantID: p.ID})
		result = r
		return n, err
	})
	if err != nil {
		return nil, err
	}
	return &ParticipantOutput{Participant: result.Participant, View: engine.NewView(next)}, nil
}

// RenameParticipant changes a member's display name
func (s *service) RenameParticipant(ctx context.Context, input *RenameParticipantInput) (*ParticipantOutput, error) {
	if input == nil {
		return nil, engine.ErrNilInput
	}
	var result *engine.ParticipantResult
	next, err := s.mutate(ctx, "rename_participant", input.GuildID, input.Admin, func(state *models.RotationState) (*models.RotationState, error) {
		p, err := engine.FindParticipant(state, input.ParticipantRef)
		if err != nil {
			return nil, err
		}
		n, r, err := s.engine.RenameParticipant(state, &engine.RenameParticipantInput{ParticipantID: p.ID, Name: input.Name})
		result = r
		return n, err
	})
	if err != nil {
		return nil, err
	}
	return &ParticipantOutput{Participant: result.Participant, View: engine.NewView(next)}, nil
}

// Export returns the guild's snapshot
func (s *service) Export(ctx context.Context, input *ExportInput) (*ExportOutput, error) {
	if input == nil {
		return nil, engine.ErrNilInput
	}
	state, err := s.load(ctx, input.GuildID)
	if err != nil {
		return nil, err
	}
	data, err := engine.Serialize(state)
	if err != nil {
		return nil, err
	}
	return &ExportOutput{Data: data}, nil
}

// Import replaces the guild's state with a snapshot. The imported state
// continues from the current version so it is always saved.
func (s *service) Import(ctx context.Context, input *ImportInput) (*ImportOutput, error) {
	if input == nil {
		return nil, engine.ErrNilInput
	}
	next, err := s.mutate(ctx, "import", input.GuildID, input.Admin, func(state *models.RotationState) (*models.RotationState, error) {
		imported, err := engine.Deserialize(input.Data)
		if err != nil {
			return nil, err
		}
		imported.GuildID = state.GuildID
		imported.Version = state.Version + 1
		return imported, nil
	})
	if err != nil {
		return nil, err
	}
	return &ImportOutput{View: engine.NewView(next)}, nil
}

// resolveTurn looks up the item and the optional acting participant
func resolveTurn(state *models.RotationState, itemRef, participantRef string) (models.ItemID, models.ParticipantID, error) {
	item, err := engine.FindItem(state, itemRef)
	if err != nil {
		return "", "", err
	}
	if participantRef == "" {
		return item.ID, "", nil
	}
	p, err := engine.FindParticipant(state, participantRef)
	if err != nil {
		return "", "", err
	}
	return item.ID, p.ID, nil
}

func resolveParticipants(state *models.RotationState, refs []string) ([]models.ParticipantID, error) {
	if len(refs) == 0 {
		return nil, nil
	}
	ids := make([]models.ParticipantID, 0, len(refs))
	for _, ref := range refs {
		p, err := engine.FindParticipant(state, ref)
		if err != nil {
			return nil, err
		}
		ids = append(ids, p.ID)
	}
	return ids, nil
}
