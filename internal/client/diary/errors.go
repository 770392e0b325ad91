package diary

// ValidationError is a local input rejection. It never reaches the network.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// ErrBlankContent rejects an entry that is empty after trimming whitespace.
var ErrBlankContent = &ValidationError{Field: "content", Message: "entry must not be blank"}
