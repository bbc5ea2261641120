package utils

import (
	"context"
	"sync"
	"time"

	"glowdesk/config"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

// HealthStatus is the payload served by GET /health. Redis entries are
// keyed by the client's role (cache, auth).
type HealthStatus struct {
	Status    string          `json:"status"`
	Mongo     bool            `json:"mongo"`
	Redis     map[string]bool `json:"redis"`
	CheckedAt time.Time       `json:"checked_at"`
}

const (
	healthStatusOK       = "ok"
	healthStatusDegraded = "degraded"

	healthProbeTimeout = 5 * time.Second
)

var (
	currentHealth HealthStatus
	healthMu      sync.RWMutex
)

// GetHealthStatus returns the latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	healthMu.RLock()
	defer healthMu.RUnlock()
	return currentHealth
}

// composeHealth derives the overall status from the individual checks.
func composeHealth(mongoOK bool, redisOK map[string]bool, at time.Time) HealthStatus {
	status := healthStatusOK
	if !mongoOK {
		status = healthStatusDegraded
	}
	for _, ok := range redisOK {
		if !ok {
			status = healthStatusDegraded
		}
	}
	return HealthStatus{
		Status:    status,
		Mongo:     mongoOK,
		Redis:     redisOK,
		CheckedAt: at,
	}
}

// StartHealthMonitor pings mongo and the named redis clients on the
// configured interval, updating the in-memory snapshot. The first probe
// runs immediately so /health never serves a zero snapshot for long.
func StartHealthMonitor(redisClients map[string]*redis.Client, mongoClient *mongo.Client) {
	interval := time.Duration(config.AppConfig.HealthCheckSeconds) * time.Second
	if interval <= 0 {
		interval = time.Minute
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			probeHealth(redisClients, mongoClient)
			<-ticker.C
		}
	}()
}

func probeHealth(redisClients map[string]*redis.Client, mongoClient *mongo.Client) {
	ctx, cancel := context.WithTimeout(context.Background(), healthProbeTimeout)
	defer cancel()

	redisOK := make(map[string]bool, len(redisClients))
	for name, client := range redisClients {
		redisOK[name] = client.Ping(ctx).Err() == nil
	}
	mongoOK := mongoClient.Ping(ctx, nil) == nil

	healthMu.Lock()
	currentHealth = composeHealth(mongoOK, redisOK, time.Now())
	healthMu.Unlock()
}
