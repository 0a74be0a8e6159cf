package zonk

import (
	"context"

	"github.com/go-redis/redis/v8"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

// RedisSink appends records to a per-hand list.
type RedisSink struct {
	rdclient *redis.Client
}

func NewRedisSink(redisURL string, redisPW string, redisDB int) *RedisSink {
	rdclient := redis.NewClient(&redis.Options{
		Addr:     redisURL,
		Password: redisPW,
		DB:       redisDB,
	})
	return &RedisSink{
		rdclient: rdclient,
	}
}

func (r *RedisSink) Save(record *HandRecord) error {
	recordBytes, err := jsoniter.Marshal(record)
	if err != nil {
		return errors.Wrap(err, "Unable to marshal hand record")
	}
	return r.rdclient.RPush(context.Background(), GetHandRecordsKey(record.HandID), recordBytes).Err()
}

// Records loads every record saved for the hand, oldest first.
func (r *RedisSink) Records(handID string) ([]*HandRecord, error) {
	values, err := r.rdclient.LRange(context.Background(), GetHandRecordsKey(handID), 0, -1).Result()
	if err != nil {
		return nil, err
	}
	records := make([]*HandRecord, 0, len(values))
	for _, v := range values {
		record := &HandRecord{}
		err = jsoniter.UnmarshalFromString(v, record)
		if err != nil {
			return nil, errors.Wrapf(err, "Invalid hand record for key %s", GetHandRecordsKey(handID))
		}
		records = append(records, record)
	}
	return records, nil
}

func (r *RedisSink) Remove(handID string) error {
	return r.rdclient.Del(context.Background(), GetHandRecordsKey(handID)).Err()
}

func (r *RedisSink) Close() error {
	return r.rdclient.Close()
}
