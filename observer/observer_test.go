package observer

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"voyager.com/zonk/util"
)

type recordingObserver struct {
	name  string
	calls *[]string
	err   error
}

func (r *recordingObserver) Update() error {
	*r.calls = append(*r.calls, r.name)
	return r.err
}

func TestNotifyInAttachOrder(t *testing.T) {
	var calls []string
	a := &recordingObserver{name: "a", calls: &calls}
	b := &recordingObserver{name: "b", calls: &calls}
	c := &recordingObserver{name: "c", calls: &calls}

	s := &Subject{}
	s.Attach(a)
	s.Attach(b)
	s.Attach(c)

	require.NoError(t, s.Notify())
	expected := []string{"a", "b", "c"}
	if !cmp.Equal(calls, expected) {
		t.Errorf("expected: %v, actual: %v", expected, calls)
	}
}

func TestAttachTwiceNotifiesTwice(t *testing.T) {
	var calls []string
	a := &recordingObserver{name: "a", calls: &calls}

	s := &Subject{}
	s.Attach(a)
	s.Attach(a)
	require.NoError(t, s.Notify())

	assert.Equal(t, []string{"a", "a"}, calls)
	assert.Equal(t, 2, s.Len())

	// Only the first occurrence goes away.
	require.NoError(t, s.Detach(a))
	calls = nil
	require.NoError(t, s.Notify())
	assert.Equal(t, []string{"a"}, calls)
}

func TestDetachStopsNotifications(t *testing.T) {
	var calls []string
	a := &recordingObserver{name: "a", calls: &calls}
	b := &recordingObserver{name: "b", calls: &calls}

	s := &Subject{}
	s.Attach(a)
	s.Attach(b)
	require.NoError(t, s.Detach(a))

	require.NoError(t, s.Notify())
	require.NoError(t, s.Notify())
	assert.Equal(t, []string{"b", "b"}, calls)

	s.Attach(a)
	calls = nil
	require.NoError(t, s.Notify())
	assert.Equal(t, []string{"b", "a"}, calls)
}

func TestDetachNotSubscribed(t *testing.T) {
	var calls []string
	a := &recordingObserver{name: "a", calls: &calls}

	s := &Subject{}
	err := s.Detach(a)
	require.Error(t, err)

	var notSubscribed NotSubscribedError
	require.True(t, errors.As(err, &notSubscribed))
	assert.Equal(t, Observer(a), notSubscribed.Observer)
}

func TestFailingObserverDoesNotStopOthers(t *testing.T) {
	var calls []string
	errA := errors.New("a failed")
	errC := errors.New("c failed")
	a := &recordingObserver{name: "a", calls: &calls, err: errA}
	b := &recordingObserver{name: "b", calls: &calls}
	c := &recordingObserver{name: "c", calls: &calls, err: errC}

	s := &Subject{}
	s.Attach(a)
	s.Attach(b)
	s.Attach(c)

	notifiedBefore := testutil.ToFloat64(util.Metrics.NotificationsCounter())
	failedBefore := testutil.ToFloat64(util.Metrics.ObserverFailuresCounter())

	err := s.Notify()
	require.Error(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, calls)
	assert.Equal(t, float64(3), testutil.ToFloat64(util.Metrics.NotificationsCounter())-notifiedBefore)
	assert.Equal(t, float64(2), testutil.ToFloat64(util.Metrics.ObserverFailuresCounter())-failedBefore)

	errs := multierr.Errors(err)
	require.Len(t, errs, 2)
	assert.True(t, errors.Is(errs[0], errA))
	assert.True(t, errors.Is(errs[1], errC))
}

func TestDetachDuringNotify(t *testing.T) {
	s := &Subject{}
	var calls []string
	b := &recordingObserver{name: "b", calls: &calls}

	a := NewFunc(func() error {
		calls = append(calls, "a")
		return s.Detach(b)
	})
	s.Attach(a)
	s.Attach(b)

	// b still runs in the notification that detached it.
	require.NoError(t, s.Notify())
	assert.Equal(t, []string{"a", "b"}, calls)

	calls = nil
	require.NoError(t, s.Detach(a))
	require.NoError(t, s.Notify())
	assert.Empty(t, calls)
}

func TestFuncObserverCanBeDetached(t *testing.T) {
	count := 0
	f := NewFunc(func() error {
		count++
		return nil
	})

	s := &Subject{}
	s.Attach(f)
	require.NoError(t, s.Notify())
	require.NoError(t, s.Detach(f))
	require.NoError(t, s.Notify())
	assert.Equal(t, 1, count)
	assert.Equal(t, 0, s.Len())
}

func TestNotifyWithoutObservers(t *testing.T) {
	s := &Subject{}
	assert.NoError(t, s.Notify())
}

// sliceObserver is not comparable, so == on two of them panics.
type sliceObserver []int

func (sliceObserver) Update() error {
	return nil
}

func TestDetachNotComparable(t *testing.T) {
	s := &Subject{}
	s.Attach(sliceObserver{1})
	require.NoError(t, s.Notify())

	var err error
	require.NotPanics(t, func() {
		err = s.Detach(sliceObserver{1})
	})
	var notSubscribed NotSubscribedError
	assert.True(t, errors.As(err, &notSubscribed))
	assert.Equal(t, 1, s.Len())

	assert.Error(t, s.Detach(nil))
}
