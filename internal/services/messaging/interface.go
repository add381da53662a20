package messaging

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/lootwheel/internal/services/messaging Service

import "context"

// Service is the interface for the messaging service
type Service interface {
	// GetActionMessage returns the announcement for a loot, skip or swap
	GetActionMessage(ctx context.Context, input *GetActionMessageInput) (*GetActionMessageOutput, error)

	// GetErrorMessage returns a user-friendly message for a rejected operation
	GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error)

	// GetBossAlertMessage returns the alert posted before a boss spawns
	GetBossAlertMessage(ctx context.Context, input *GetBossAlertMessageInput) (*GetBossAlertMessageOutput, error)

	// GetResetMessage returns the announcement for a rotation reset
	GetResetMessage(ctx context.Context, input *GetResetMessageInput) (*GetResetMessageOutput, error)
}
