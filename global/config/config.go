package config

import (
	"os"
	"strconv"
	"time"

	"CollabProject/logger"
	storage "CollabProject/service/storage"
	redis "CollabProject/service/storage/redis"
	ids "CollabProject/tools/ids"
)

const NodeTypeCollabGateway = "collabGateway" // realtime collaboration gateway node

var Global = AppConfig{
	NodeType:    NodeTypeCollabGateway,
	NodeID:      "collab_gw_1",
	Port:        8080,
	RedisAddr:   "", // opt-in via COLLAB_REDIS_ADDR
	PresenceTTL: 2 * time.Minute,
}

// LoadEnv applies environment overrides onto the defaults.
func LoadEnv() {
	if v := os.Getenv("GATEWAY_ID"); v != "" {
		Global.NodeID = v
	}
	if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			Global.Port = p
		}
	}
	if v := os.Getenv("COLLAB_REDIS_ADDR"); v != "" {
		Global.RedisAddr = v
	}
	if v := os.Getenv("COLLAB_REDIS_PASSWORD"); v != "" {
		Global.RedisPassword = v
	}
	if v := os.Getenv("COLLAB_REDIS_DB"); v != "" {
		if db, err := strconv.Atoi(v); err == nil {
			Global.RedisDB = db
		}
	}
}

func ConfigAll() {
	ConfigIds()
	ConfigRedis()
}

func ConfigIds() {
	ids.SetNodeID(100)
}

// ConfigRedis brings up the presence mirror. The relay runs fine without it;
// a failed init just leaves the mirror disabled.
func ConfigRedis() {
	if Global.RedisAddr == "" {
		logger.Infof("presence mirror disabled (no redis addr)")
		return
	}
	storage.RoomTTL = Global.PresenceTTL
	err := redis.InitRedis(redis.Config{
		Addr:     Global.RedisAddr,
		Password: Global.RedisPassword,
		DB:       Global.RedisDB,
	})
	if err != nil {
		logger.Warnf("presence mirror disabled, redis init failed: %v", err)
		return
	}
	logger.Infof("presence mirror enabled addr=%s", Global.RedisAddr)
}
