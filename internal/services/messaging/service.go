package messaging

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/KirkDiggler/lootwheel/internal/models"
	"github.com/KirkDiggler/lootwheel/internal/rotation"
)

// service implements the Service interface
type service struct {
	mu sync.Mutex

	// Random number generator for selecting random messages
	rand *rand.Rand
}

// NewService creates a new messaging service
func NewService(config *ServiceConfig) (Service, error) {
	seed := time.Now().UnixNano()
	if config != nil && config.Seed != 0 {
		seed = config.Seed
	}

	return &service{
		rand: rand.New(rand.NewSource(seed)),
	}, nil
}

func (s *service) pick(options []string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return options[s.rand.Intn(len(options))]
}

// GetActionMessage returns the announcement for a loot, skip or swap
func (s *service) GetActionMessage(ctx context.Context, input *GetActionMessageInput) (*GetActionMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	tone := input.PreferredTone
	if tone == "" {
		tone = ToneFunny
	}

	var title, message string
	var comments []string

	switch input.Kind {
	case models.HistoryKindLoot:
		title = "Looted!"
		message = fmt.Sprintf("%s looted %s!", input.ParticipantName, input.ItemName)
		comments = []string{
			"Another one for the vault.",
			"The loot council approves.",
			"Fair and square.",
			"Don't spend it all in one place.",
		}
		if input.Rarity == models.RarityLegendary {
			tone = ToneCelebration
			title = "Legendary drop!"
			comments = []string{
				"Screenshot it or it didn't happen.",
				"The whole guild saw that.",
				"Bow before the new owner.",
			}
		}
	case models.HistoryKindSwap:
		title = "Swapped!"
		message = fmt.Sprintf("%s swapped %s to %s!", input.ParticipantName, input.ItemName, input.CounterpartName)
		comments = []string{
			"Sharing is caring.",
			"What a team player.",
			"Generosity noted.",
		}
	case models.HistoryKindSkip:
		title = "Skipped"
		message = fmt.Sprintf("%s skipped %s.", input.ParticipantName, input.ItemName)
		comments = []string{
			"They'll be back for it.",
			"Saving it for later.",
			"A turn deferred is not a turn lost.",
		}
		if input.Removed {
			title = "Out of the rotation"
			message = fmt.Sprintf("%s skipped %s twice and sits out until the rotation resets.", input.ParticipantName, input.ItemName)
			comments = []string{
				"Two strikes.",
				"See you next cycle.",
			}
		}
	default:
		return nil, fmt.Errorf("unknown action %q", input.Kind)
	}

	if input.NextName != "" {
		message = fmt.Sprintf("%s Next: %s", message, input.NextName)
	}
	if input.NewCycle {
		message += fmt.Sprintf("\nEveryone has had a turn on %s, starting a new round.", input.ItemName)
	}

	comment := ""
	if tone != ToneNeutral {
		comment = s.pick(comments)
	}

	return &GetActionMessageOutput{
		Title:   title,
		Message: message,
		Comment: comment,
		Tone:    tone,
	}, nil
}

// GetErrorMessage returns a user-friendly message for a rejected operation
func (s *service) GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error) {
	if input == nil || input.Err == nil {
		return nil, errors.New("input and error cannot be nil")
	}

	err := input.Err
	switch {
	case errors.Is(err, rotation.ErrPermissionDenied):
		message := s.pick([]string{
			"Only loot admins can do that.",
			"Nice try. Ask an officer to do that for you.",
			"That button is for the loot council.",
		})
		return &GetErrorMessageOutput{Title: "Admins only", Message: message}, nil
	case errors.Is(err, rotation.ErrSkipLimitExceeded):
		return &GetErrorMessageOutput{
			Title:   "Skip limit reached",
			Message: "That member has already skipped this item twice. They are back in once the rotation resets.",
		}, nil
	case errors.Is(err, rotation.ErrEmptyRotation):
		return &GetErrorMessageOutput{
			Title:   "Nobody in rotation",
			Message: "This item has nobody in its rotation. Add members or reset it first.",
		}, nil
	case errors.Is(err, rotation.ErrNotTurnHolder):
		return &GetErrorMessageOutput{Title: "Not their turn", Message: err.Error()}, nil
	case errors.Is(err, rotation.ErrNotFound):
		return &GetErrorMessageOutput{Title: "Not found", Message: err.Error()}, nil
	case errors.Is(err, rotation.ErrItemExists), errors.Is(err, rotation.ErrParticipantExists):
		return &GetErrorMessageOutput{Title: "Already exists", Message: err.Error()}, nil
	case errors.Is(err, rotation.ErrInvalidPosition),
		errors.Is(err, rotation.ErrInvalidOrder),
		errors.Is(err, rotation.ErrInvalidName),
		errors.Is(err, rotation.ErrInvalidRarity),
		errors.Is(err, rotation.ErrInvalidPriority),
		errors.Is(err, rotation.ErrSelfSwap):
		return &GetErrorMessageOutput{Title: "Invalid request", Message: err.Error()}, nil
	default:
		return &GetErrorMessageOutput{
			Title:   "Something went wrong",
			Message: "The loot table is having a moment. Try again shortly.",
		}, nil
	}
}

// GetBossAlertMessage returns the alert posted before a boss spawns
func (s *service) GetBossAlertMessage(ctx context.Context, input *GetBossAlertMessageInput) (*GetBossAlertMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	lead := s.pick([]string{
		"Gear up!",
		"Buff up and get in position.",
		"Repair your gear and grab potions.",
	})

	return &GetBossAlertMessageOutput{
		Message: fmt.Sprintf("%s spawns %s. %s", input.BossName, input.Countdown, lead),
	}, nil
}

// GetResetMessage returns the announcement for a rotation reset
func (s *service) GetResetMessage(ctx context.Context, input *GetResetMessageInput) (*GetResetMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	message := "All rotations were reset."
	if input.ItemName != "" {
		message = fmt.Sprintf("The %s rotation was reset.", input.ItemName)
	}
	if input.Restored > 0 {
		message += fmt.Sprintf(" %d member(s) are back in.", input.Restored)
	}

	return &GetResetMessageOutput{Message: message}, nil
}
