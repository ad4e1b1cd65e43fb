package config

import "time"

type AppConfig struct {
	NodeType string
	NodeID   string // gateway node id
	Port     int    // http listen port

	RedisAddr     string // empty disables the presence mirror
	RedisPassword string
	RedisDB       int

	PresenceTTL time.Duration // mirrored roster TTL
}
