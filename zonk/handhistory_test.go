package zonk

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"voyager.com/zonk/dice"
	"voyager.com/zonk/observer"
)

// mutatingDice hands out its internal slice to check that stored hands are
// isolated from the roller.
type mutatingDice struct {
	faces []int
}

func (m *mutatingDice) Roll() {
	for i := range m.faces {
		m.faces[i]++
	}
}

func (m *mutatingDice) Dice() []int {
	return m.faces
}

func newScriptedHistory(t *testing.T, hands ...[]int) *HandHistory {
	d, err := dice.NewScriptedDice(hands)
	if err != nil {
		t.Fatal(err)
	}
	return NewHandHistory("yong", d)
}

func TestStartResetsHands(t *testing.T) {
	h := newScriptedHistory(t, []int{1, 2, 3}, []int{4, 5, 6}, []int{6, 6, 6})

	hand, err := h.Start()
	if err != nil {
		t.Fatal(err)
	}
	if !cmp.Equal(hand, Hand{1, 2, 3}) {
		t.Errorf("Start returned %v", hand)
	}

	if _, err := h.Roll(); err != nil {
		t.Fatal(err)
	}
	if len(h.Hands()) != 2 {
		t.Fatalf("expected 2 hands, got %d", len(h.Hands()))
	}

	hand, err = h.Start()
	if err != nil {
		t.Fatal(err)
	}
	expected := []Hand{{6, 6, 6}}
	if !cmp.Equal(h.Hands(), expected) {
		t.Errorf("expected: %v, actual: %v", expected, h.Hands())
	}
	if !cmp.Equal(hand, Hand{6, 6, 6}) {
		t.Errorf("Start returned %v", hand)
	}
}

func TestRollAppendsOneHand(t *testing.T) {
	h := newScriptedHistory(t, []int{1, 1}, []int{2, 2}, []int{3, 3})
	if _, err := h.Start(); err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 3; i++ {
		before := len(h.Hands())
		if _, err := h.Roll(); err != nil {
			t.Fatal(err)
		}
		if len(h.Hands()) != before+1 {
			t.Errorf("roll %d: expected %d hands, got %d", i, before+1, len(h.Hands()))
		}
	}

	expected := []Hand{{1, 1}, {2, 2}, {3, 3}, {3, 3}}
	if !cmp.Equal(h.Hands(), expected) {
		t.Errorf("expected: %v, actual: %v", expected, h.Hands())
	}
}

func TestRollBeforeStart(t *testing.T) {
	h := newScriptedHistory(t, []int{1, 2})
	notified := 0
	h.Attach(observer.NewFunc(func() error {
		notified++
		return nil
	}))

	hand, err := h.Roll()
	if hand != nil {
		t.Errorf("expected no hand, got %v", hand)
	}
	var notStarted NotStartedError
	if !errors.As(err, &notStarted) {
		t.Fatalf("expected NotStartedError, got %v", err)
	}
	if notStarted.Player != "yong" {
		t.Errorf("unexpected player %s", notStarted.Player)
	}
	if notified != 0 {
		t.Errorf("expected no notification, got %d", notified)
	}
	if h.Status() != NotStarted || h.Started() {
		t.Errorf("unexpected status %s", h.Status())
	}
	if len(h.Hands()) != 0 {
		t.Errorf("expected no hands, got %v", h.Hands())
	}
}

func TestNotifyOnEveryRoll(t *testing.T) {
	h := newScriptedHistory(t, []int{1, 2})
	var seen []int
	h.Attach(observer.NewFunc(func() error {
		seen = append(seen, len(h.Hands()))
		return nil
	}))

	if _, err := h.Start(); err != nil {
		t.Fatal(err)
	}
	if _, err := h.Roll(); err != nil {
		t.Fatal(err)
	}
	if _, err := h.Roll(); err != nil {
		t.Fatal(err)
	}

	// Observers see the new state.
	expected := []int{1, 2, 3}
	if !cmp.Equal(seen, expected) {
		t.Errorf("expected: %v, actual: %v", expected, seen)
	}
}

func TestObserverErrorKeepsState(t *testing.T) {
	h := newScriptedHistory(t, []int{1, 2}, []int{3, 4})
	failure := errors.New("sink down")
	h.Attach(observer.NewFunc(func() error {
		return failure
	}))

	hand, err := h.Start()
	if !errors.Is(err, failure) {
		t.Errorf("expected observer error, got %v", err)
	}
	if !cmp.Equal(hand, Hand{1, 2}) || !h.Started() {
		t.Errorf("Start should still record the hand, got %v", hand)
	}
}

func TestStoredHandsAreIsolated(t *testing.T) {
	h := NewHandHistory("brian", &mutatingDice{faces: []int{0, 0}})
	first, err := h.Start()
	if err != nil {
		t.Fatal(err)
	}
	if _, err := h.Roll(); err != nil {
		t.Fatal(err)
	}

	expected := []Hand{{1, 1}, {2, 2}}
	if !cmp.Equal(h.Hands(), expected) {
		t.Errorf("expected: %v, actual: %v", expected, h.Hands())
	}

	first[0] = 42
	h.Hands()[1][0] = 42
	if !cmp.Equal(h.Hands(), expected) {
		t.Errorf("hands changed through returned slices: %v", h.Hands())
	}
}

func TestHandHistoryIDs(t *testing.T) {
	h1 := newScriptedHistory(t, []int{1})
	h2 := newScriptedHistory(t, []int{1})
	if h1.ID == "" || h1.ID == h2.ID {
		t.Errorf("expected distinct ids, got %s and %s", h1.ID, h2.ID)
	}
}
