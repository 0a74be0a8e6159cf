package observer

import "fmt"

type NotSubscribedError struct {
	Observer Observer
}

func (e NotSubscribedError) Error() string {
	return fmt.Sprintf("Observer %T is not subscribed", e.Observer)
}
