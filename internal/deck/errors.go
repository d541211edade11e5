package deck

import "fmt"

// ValidationError reports a card that cannot go where it was put: a hero
// added as a deck card, or a non-positive count.
type ValidationError struct {
	Card   string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Card == "" {
		return fmt.Sprintf("invalid deck operation: %s", e.Reason)
	}
	return fmt.Sprintf("cannot add %q: %s", e.Card, e.Reason)
}
