package parsing

import "fmt"

// InvalidInputError indicates the resume text is empty or otherwise unusable.
// It is user-correctable; the HTTP layer surfaces it as a client error.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s", e.Reason)
}
