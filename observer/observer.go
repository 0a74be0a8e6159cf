package observer

import (
	"reflect"

	"go.uber.org/multierr"

	"voyager.com/zonk/logging"
	"voyager.com/zonk/util"
)

var observerLogger = logging.GetZeroLogger("observer::subject", nil)

// Observer is notified with no arguments whenever the subject it is attached
// to changes state.
type Observer interface {
	Update() error
}

// Func adapts a plain function to the Observer interface. Use it through a
// pointer so the same adapter can later be detached.
type Func struct {
	fn func() error
}

func NewFunc(fn func() error) *Func {
	return &Func{fn: fn}
}

func (f *Func) Update() error {
	return f.fn()
}

// Subject keeps an ordered list of observers. Concrete subjects embed it and
// call Notify after every state change.
type Subject struct {
	observers []Observer
}

// Attach appends the observer. Attaching the same observer twice notifies it
// twice per change.
func (s *Subject) Attach(o Observer) {
	s.observers = append(s.observers, o)
}

// Detach removes the first occurrence of the observer. Observers are matched
// with ==; an observer whose type is not comparable can never be detached.
func (s *Subject) Detach(o Observer) error {
	t := reflect.TypeOf(o)
	if t == nil || !t.Comparable() {
		return NotSubscribedError{Observer: o}
	}
	for i, attached := range s.observers {
		if attached == o {
			s.observers = append(s.observers[:i], s.observers[i+1:]...)
			return nil
		}
	}
	return NotSubscribedError{Observer: o}
}

func (s *Subject) Len() int {
	return len(s.observers)
}

// Notify calls every observer in attach order. An observer error does not
// stop the loop; all errors are combined into the returned one. Observers
// attached or detached while notifying take effect on the next call. Panics
// are not recovered.
func (s *Subject) Notify() error {
	observers := make([]Observer, len(s.observers))
	copy(observers, s.observers)

	var errs error
	for i, o := range observers {
		err := o.Update()
		util.Metrics.ObserverNotified()
		if err != nil {
			util.Metrics.ObserverFailed()
			observerLogger.Warn().Int("index", i).Msgf("Observer %T failed: %v", o, err)
			errs = multierr.Append(errs, err)
		}
	}
	return errs
}
