package zonk

import (
	"github.com/rs/zerolog"
	"go.uber.org/multierr"

	"voyager.com/zonk/logging"
)

type HandSink interface {
	Save(record *HandRecord) error
}

// LogSink prints one structured line per record. The record is nested so its
// time field does not collide with the logger's own timestamp.
type LogSink struct {
	logger *zerolog.Logger
}

func NewLogSink(logger *zerolog.Logger) *LogSink {
	if logger == nil {
		logger = logging.GetZeroLogger("zonk::savehand", nil)
	}
	return &LogSink{logger: logger}
}

func (l *LogSink) Save(record *HandRecord) error {
	l.logger.Info().
		Dict("record", zerolog.Dict().
			Str(logging.PlayerKey, record.Player).
			Int(logging.SequenceKey, record.Sequence).
			Str(logging.HandsKey, record.Hands).
			Float64(logging.TimeKey, record.Time).
			Str(logging.HandIDKey, record.HandID)).
		Msg("SaveZonkHand")
	return nil
}

type MemorySink struct {
	records []*HandRecord
}

func NewMemorySink() *MemorySink {
	return &MemorySink{}
}

func (m *MemorySink) Save(record *HandRecord) error {
	r := *record
	m.records = append(m.records, &r)
	return nil
}

func (m *MemorySink) Records() []*HandRecord {
	records := make([]*HandRecord, len(m.records))
	copy(records, m.records)
	return records
}

// MultiSink saves to every sink even when some of them fail.
type MultiSink []HandSink

func (m MultiSink) Save(record *HandRecord) error {
	var errs error
	for _, sink := range m {
		errs = multierr.Append(errs, sink.Save(record))
	}
	return errs
}
