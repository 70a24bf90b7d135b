package redis

import (
	"github.com/mcoot/wordshop/internal/model"
)

// keyspace builds the Redis keys for one prefix
type keyspace string

func (k keyspace) session(id model.SessionID) string {
	return string(k) + ":session:" + string(id)
}

// sessions matches every session key
func (k keyspace) sessions() string {
	return string(k) + ":session:*"
}
