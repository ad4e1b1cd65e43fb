// Package storage mirrors live room rosters into Redis so the rest of the
// platform can answer "who is editing project X" over REST without holding a
// websocket. The mirror is best-effort: the in-process room directory stays
// authoritative, and every write here may fail without affecting the relay.
package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"

	redis2 "CollabProject/service/storage/redis"
)

var ctx = context.Background()

// RoomTTL bounds how stale a mirrored roster can get if the gateway dies
// without cleaning up. Every join refreshes it.
var RoomTTL = 2 * time.Minute

// Entry is one participant in a mirrored roster.
type Entry struct {
	UserID   string `json:"userId"`
	UserName string `json:"userName"`
	Color    string `json:"color"`
}

// presence key: collab:presence:<projectId>
// hash field: connection id -> JSON Entry
func presenceKey(projectID string) string { return "collab:presence:" + projectID }

// Enabled reports whether the mirror has a live Redis behind it.
func Enabled() bool { return redis2.Ready() }

// PresenceJoin records a participant and renews the room TTL.
func PresenceJoin(projectID, connID string, e Entry) error {
	if !redis2.Ready() {
		return fmt.Errorf("redis not initialized")
	}
	val, err := json.Marshal(e)
	if err != nil {
		return err
	}
	rdb := redis2.GetRedis()
	if err := rdb.HSet(ctx, presenceKey(projectID), connID, val).Err(); err != nil {
		return err
	}
	return rdb.Expire(ctx, presenceKey(projectID), RoomTTL).Err()
}

// PresenceLeave removes a participant from the mirrored roster.
func PresenceLeave(projectID, connID string) error {
	if !redis2.Ready() {
		return fmt.Errorf("redis not initialized")
	}
	return redis2.GetRedis().HDel(ctx, presenceKey(projectID), connID).Err()
}

// PresenceClear drops the whole roster; called when the room empties.
func PresenceClear(projectID string) error {
	if !redis2.Ready() {
		return fmt.Errorf("redis not initialized")
	}
	return redis2.GetRedis().Del(ctx, presenceKey(projectID)).Err()
}

// RoomPresence returns the mirrored roster. A missing key means an empty
// room, not an error.
func RoomPresence(projectID string) ([]Entry, error) {
	if !redis2.Ready() {
		return nil, fmt.Errorf("redis not initialized")
	}
	vals, err := redis2.GetRedis().HGetAll(ctx, presenceKey(projectID)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	out := make([]Entry, 0, len(vals))
	for _, raw := range vals {
		var e Entry
		if err := json.Unmarshal([]byte(raw), &e); err != nil {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}
