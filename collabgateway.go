package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	config "CollabProject/global/config"
	mid "CollabProject/middleware"
	"CollabProject/service/relay"
	redis "CollabProject/service/storage/redis"
)

func main() {
	config.LoadEnv()
	config.ConfigAll()

	s := relay.NewServer(config.Global.NodeID)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(mid.Origin())

	r.GET("/ws", s.HandleWS) // e.g. ws://localhost:8080/ws
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "node": s.NodeID()})
	})
	r.GET("/stats", func(c *gin.Context) {
		rooms, conns := s.Stats()
		c.JSON(http.StatusOK, gin.H{"rooms": rooms, "connections": conns})
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", config.Global.Port),
		Handler: r,
	}

	go func() {
		log.Printf("[HTTP] Listening on :%d", config.Global.Port)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("HTTP server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("[HTTP] shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("shutdown error: %v", err)
	}
	_ = redis.CloseRedis()
}
