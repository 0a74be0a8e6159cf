package zonk

import (
	jsoniter "github.com/json-iterator/go"
	natsgo "github.com/nats-io/nats.go"
	"github.com/pkg/errors"
)

// NatsSink publishes each record on the player's hands subject.
type NatsSink struct {
	natsConn *natsgo.Conn
}

func NewNatsSink(nc *natsgo.Conn) *NatsSink {
	return &NatsSink{natsConn: nc}
}

func (n *NatsSink) Save(record *HandRecord) error {
	recordBytes, err := jsoniter.Marshal(record)
	if err != nil {
		return errors.Wrap(err, "Unable to marshal hand record")
	}
	subject := GetPlayerHandsSubject(record.Player)
	err = n.natsConn.Publish(subject, recordBytes)
	if err != nil {
		return errors.Wrapf(err, "Unable to publish hand record to %s", subject)
	}
	return nil
}
