package zonk

import "fmt"

type NotStartedError struct {
	Player string
}

func (e NotStartedError) Error() string {
	return fmt.Sprintf("Hand for player %s is not started. Call Start before Roll", e.Player)
}
