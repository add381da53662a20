package rotation

// ServiceError is a custom error type for rotation service errors
type ServiceError string

// Error implements the error interface
func (e ServiceError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig        ServiceError = "config cannot be nil"
	ErrNilRepository    ServiceError = "state repository cannot be nil"
	ErrNilMessaging     ServiceError = "messaging service cannot be nil"
	ErrNilClock         ServiceError = "clock cannot be nil"
	ErrNilUUIDGenerator ServiceError = "UUID generator cannot be nil"
	ErrNilShuffler      ServiceError = "shuffler cannot be nil"
	ErrGuildRequired    ServiceError = "guild ID is required"
)
