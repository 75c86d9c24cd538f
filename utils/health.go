// File: utils/health.go
package utils

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

// HealthStatus is the dependency snapshot served by the /health route:
// the document store plus every Redis database the service runs on
// (overview cache, auth cache, reminder queue), keyed by role.
type HealthStatus struct {
	Mongo     bool            `json:"mongo"`
	Redis     map[string]bool `json:"redis"`
	CheckedAt time.Time       `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	healthMu      sync.RWMutex
)

// GetHealthStatus returns a copy of the latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	healthMu.RLock()
	defer healthMu.RUnlock()

	snapshot := currentHealth
	snapshot.Redis = make(map[string]bool, len(currentHealth.Redis))
	for role, ok := range currentHealth.Redis {
		snapshot.Redis[role] = ok
	}
	return snapshot
}

// StartHealthMonitor checks the named Redis clients and the Mongo
// client once immediately, then every minute, updating the in-memory
// snapshot.
func StartHealthMonitor(redisClients map[string]*redis.Client, mongoClient *mongo.Client) {
	go func() {
		probeDependencies(redisClients, mongoClient)

		ticker := time.NewTicker(60 * time.Second)
		defer ticker.Stop()
		for range ticker.C {
			probeDependencies(redisClients, mongoClient)
		}
	}()
}

func probeDependencies(redisClients map[string]*redis.Client, mongoClient *mongo.Client) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	redisHealth := make(map[string]bool, len(redisClients))
	for role, client := range redisClients {
		redisHealth[role] = client != nil && client.Ping(ctx).Err() == nil
	}
	mongoHealthy := mongoClient != nil && mongoClient.Ping(ctx, nil) == nil

	healthMu.Lock()
	currentHealth = HealthStatus{
		Mongo:     mongoHealthy,
		Redis:     redisHealth,
		CheckedAt: time.Now(),
	}
	healthMu.Unlock()
}
