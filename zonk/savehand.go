package zonk

import (
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"voyager.com/zonk/util"
)

// HandRecord is what SaveHandObserver emits on every notification. Hands holds
// the full hand history serialized as JSON.
type HandRecord struct {
	HandID   string  `json:"handId"`
	Player   string  `json:"player"`
	Sequence int     `json:"sequence"`
	Hands    string  `json:"hands"`
	Time     float64 `json:"time"`
}

// SaveHandObserver writes a HandRecord to its sink each time the hand history
// it watches changes.
type SaveHandObserver struct {
	history *HandHistory
	sink    HandSink
	now     func() time.Time
	count   int
}

type SaveHandOption func(*SaveHandObserver)

// WithClock replaces time.Now as the source of record timestamps.
func WithClock(now func() time.Time) SaveHandOption {
	return func(s *SaveHandObserver) {
		s.now = now
	}
}

func NewSaveHandObserver(history *HandHistory, sink HandSink, opts ...SaveHandOption) *SaveHandObserver {
	s := &SaveHandObserver{
		history: history,
		sink:    sink,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *SaveHandObserver) Update() error {
	s.count++
	hands, err := jsoniter.MarshalToString(s.history.Hands())
	if err != nil {
		return errors.Wrapf(err, "Unable to serialize hands of player %s", s.history.Player)
	}

	record := &HandRecord{
		HandID:   s.history.ID,
		Player:   s.history.Player,
		Sequence: s.count,
		Hands:    hands,
		Time:     unixSeconds(s.now()),
	}
	err = s.sink.Save(record)
	if err != nil {
		return errors.Wrapf(err, "Unable to save hand record %d of player %s", s.count, s.history.Player)
	}
	util.Metrics.HandRecordSaved()
	return nil
}

// Count is the number of times the observer has been notified.
func (s *SaveHandObserver) Count() int {
	return s.count
}

func unixSeconds(t time.Time) float64 {
	return float64(t.UnixNano()) / float64(time.Second)
}
