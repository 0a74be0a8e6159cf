package zonk

import (
	"github.com/google/uuid"

	"voyager.com/zonk/dice"
	"voyager.com/zonk/observer"
)

// Hand is the face values of one roll.
type Hand []int

type HandStatus int

const (
	NotStarted HandStatus = iota
	Started
)

func (s HandStatus) String() string {
	switch s {
	case NotStarted:
		return "NOT_STARTED"
	case Started:
		return "STARTED"
	}
	return "UNKNOWN"
}

// HandHistory tracks the rolls of one player's turn and notifies its
// observers after every roll.
type HandHistory struct {
	observer.Subject

	ID     string
	Player string

	roller dice.Roller
	hands  []Hand
	status HandStatus
}

func NewHandHistory(player string, roller dice.Roller) *HandHistory {
	return &HandHistory{
		ID:     uuid.New().String(),
		Player: player,
		roller: roller,
		status: NotStarted,
	}
}

// Start rolls the dice and resets the history to that single hand. Calling it
// again begins a new turn. The returned error comes from the observers; the
// history is updated either way.
func (h *HandHistory) Start() (Hand, error) {
	hand := h.rollDice()
	h.hands = []Hand{hand}
	h.status = Started
	return h.copyHand(hand), h.Notify()
}

// Roll appends a new roll to a started history.
func (h *HandHistory) Roll() (Hand, error) {
	if h.status != Started {
		return nil, NotStartedError{Player: h.Player}
	}
	hand := h.rollDice()
	h.hands = append(h.hands, hand)
	return h.copyHand(hand), h.Notify()
}

func (h *HandHistory) Status() HandStatus {
	return h.status
}

func (h *HandHistory) Started() bool {
	return h.status == Started
}

// Hands returns a deep copy of the rolls so far.
func (h *HandHistory) Hands() []Hand {
	hands := make([]Hand, len(h.hands))
	for i, hand := range h.hands {
		hands[i] = h.copyHand(hand)
	}
	return hands
}

func (h *HandHistory) rollDice() Hand {
	h.roller.Roll()
	// Rollers are not trusted to hand out a fresh slice.
	return h.copyHand(h.roller.Dice())
}

func (h *HandHistory) copyHand(hand Hand) Hand {
	c := make(Hand, len(hand))
	copy(c, hand)
	return c
}
