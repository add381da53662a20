package rotation

// RotationError is a custom error type for rotation engine errors
type RotationError string

// Error implements the error interface
func (e RotationError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrPermissionDenied  RotationError = "admin access required"
	ErrEmptyRotation     RotationError = "rotation has no participants"
	ErrSkipLimitExceeded RotationError = "skip limit reached for this item"
	ErrNotFound          RotationError = "not found"
	ErrNotTurnHolder     RotationError = "participant does not hold the current turn"
	ErrInvalidPosition   RotationError = "position is out of range"
	ErrInvalidOrder      RotationError = "rotation order is invalid"
	ErrInvalidName       RotationError = "name cannot be empty"
	ErrInvalidRarity     RotationError = "unknown rarity"
	ErrInvalidPriority   RotationError = "unknown priority"
	ErrItemExists        RotationError = "an item with this name already exists"
	ErrParticipantExists RotationError = "a member with this name already exists"
	ErrSelfSwap          RotationError = "cannot swap an item with yourself"
	ErrNilInput          RotationError = "input cannot be nil"
	ErrNilState          RotationError = "state cannot be nil"
	ErrNilClock          RotationError = "clock cannot be nil"
	ErrNilUUIDGenerator  RotationError = "UUID generator cannot be nil"
	ErrNilShuffler       RotationError = "shuffler cannot be nil"
	ErrInvalidSnapshot   RotationError = "snapshot is not valid"
)
