package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Harshitduggal1/scheduling-software/internal/domain/events"
	"github.com/Harshitduggal1/scheduling-software/pkg/config"
	"github.com/Harshitduggal1/scheduling-software/pkg/logger"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var log = logger.NewLogger()

// Custom error types
var (
	ErrCacheNotFound   = errors.New("cache: key not found")
	ErrCacheConnection = errors.New("cache: connection error")
	ErrInvalidConfig   = errors.New("cache: invalid configuration")
)

// DashboardEventChannel is the Redis channel for dashboard events
const DashboardEventChannel = "dashboard:events"

// Config holds the configuration for Redis client
type Config struct {
	Addr             string
	Password         string
	DB               int
	PoolSize         int
	MinIdleConns     int
	MaxRetries       int
	ConnTimeout      time.Duration
	OperationTimeout time.Duration
	DefaultTTL       time.Duration
	MaxKeyLength     int
	KeyPrefix        string
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		PoolSize:         100,
		MinIdleConns:     10,
		MaxRetries:       3,
		ConnTimeout:      5 * time.Second,
		OperationTimeout: 2 * time.Second,
		DefaultTTL:       30 * time.Minute,
		MaxKeyLength:     256,
		KeyPrefix:        "calmarshal:",
	}
}

// NewConfigFromEnv creates a Redis config from project configuration
func NewConfigFromEnv(cfg *config.Config) *Config {
	c := DefaultConfig()
	c.Addr = fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port)
	c.Password = cfg.Redis.Password
	c.DB = cfg.Redis.DB
	if cfg.Server.Timeout > 0 {
		c.OperationTimeout = cfg.Server.Timeout
	}
	return c
}

// CacheMetrics tracks cache hit/miss statistics with atomic operations
type CacheMetrics struct {
	hits   atomic.Int64
	misses atomic.Int64
}

// RedisClient wraps the Redis client with additional functionality
type RedisClient struct {
	client    *redis.Client
	metrics   *CacheMetrics
	config    *Config
	closeOnce sync.Once
	health    int32 // 0 = healthy, 1 = unhealthy, using atomic operations
}

// NewRedisClient creates a new Redis client with the provided configuration
func NewRedisClient(cfg *Config) (*RedisClient, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	if cfg.Addr == "" {
		return nil, fmt.Errorf("%w: address is required", ErrInvalidConfig)
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     cfg.PoolSize,
		MinIdleConns: cfg.MinIdleConns,
		MaxRetries:   cfg.MaxRetries,
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnTimeout)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	r := &RedisClient{
		client:  client,
		config:  cfg,
		metrics: &CacheMetrics{},
	}

	// Start health check goroutine
	go r.healthCheckLoop()

	return r, nil
}

// healthCheckLoop periodically checks Redis health
func (r *RedisClient) healthCheckLoop() {
	ticker := time.NewTicker(10 * time.Second)
	defer ticker.Stop()

	for range ticker.C {
		ctx, cancel := context.WithTimeout(context.Background(), r.config.OperationTimeout)
		if err := r.HealthCheck(ctx); err != nil {
			atomic.StoreInt32(&r.health, 1)
			log.Error("Redis health check failed", zap.Error(err))
		} else {
			atomic.StoreInt32(&r.health, 0)
		}
		cancel()
	}
}

// IsHealthy returns whether Redis is currently healthy
func (r *RedisClient) IsHealthy() bool {
	return atomic.LoadInt32(&r.health) == 0
}

// withContext wraps the context with a timeout if none is set
func (r *RedisClient) withContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); !ok {
		return context.WithTimeout(ctx, r.config.OperationTimeout)
	}
	return ctx, func() {}
}

// validateKey checks if the key is valid
func (r *RedisClient) validateKey(key string) error {
	if len(key) == 0 {
		return fmt.Errorf("%w: empty key", ErrInvalidConfig)
	}
	if len(key) > r.config.MaxKeyLength {
		return fmt.Errorf("%w: key too long (max %d characters)", ErrInvalidConfig, r.config.MaxKeyLength)
	}
	return nil
}

// prefixKey adds the configured prefix to the key
func (r *RedisClient) prefixKey(key string) string {
	return r.config.KeyPrefix + key
}

// Get retrieves a value from the cache with proper context handling
func (r *RedisClient) Get(ctx context.Context, key string) (string, error) {
	if err := r.validateKey(key); err != nil {
		return "", err
	}

	if !r.IsHealthy() {
		return "", ErrCacheConnection
	}

	ctx, cancel := r.withContext(ctx)
	defer cancel()

	val, err := r.client.Get(ctx, r.prefixKey(key)).Result()
	if err != nil {
		if err == redis.Nil {
			r.metrics.misses.Add(1)
			return "", fmt.Errorf("%w: %s", ErrCacheNotFound, key)
		}
		return "", fmt.Errorf("%w: %v", ErrCacheConnection, err)
	}

	r.metrics.hits.Add(1)
	return val, nil
}

// Set stores a value in the cache
func (r *RedisClient) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if err := r.validateKey(key); err != nil {
		return err
	}

	if !r.IsHealthy() {
		return ErrCacheConnection
	}

	ctx, cancel := r.withContext(ctx)
	defer cancel()

	if ttl <= 0 {
		ttl = r.config.DefaultTTL
	}
	return r.client.Set(ctx, r.prefixKey(key), value, ttl).Err()
}

// Delete removes keys from the cache
func (r *RedisClient) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	ctx, cancel := r.withContext(ctx)
	defer cancel()

	prefixed := make([]string, len(keys))
	for i, key := range keys {
		prefixed[i] = r.prefixKey(key)
	}
	return r.client.Del(ctx, prefixed...).Err()
}

// ClearByPattern removes all keys matching the given pattern
func (r *RedisClient) ClearByPattern(ctx context.Context, pattern string) error {
	ctx, cancel := r.withContext(ctx)
	defer cancel()

	iter := r.client.Scan(ctx, 0, r.prefixKey(pattern), 100).Iterator()
	for iter.Next(ctx) {
		if err := r.client.Del(ctx, iter.Val()).Err(); err != nil {
			return fmt.Errorf("failed to delete key %s: %w", iter.Val(), err)
		}
	}
	return iter.Err()
}

// HealthCheck pings Redis
func (r *RedisClient) HealthCheck(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// GetMetrics returns cache hit/miss counters
func (r *RedisClient) GetMetrics() map[string]interface{} {
	hits := r.metrics.hits.Load()
	misses := r.metrics.misses.Load()
	total := hits + misses

	hitRate := 0.0
	if total > 0 {
		hitRate = float64(hits) / float64(total)
	}

	return map[string]interface{}{
		"hits":     hits,
		"misses":   misses,
		"hit_rate": hitRate,
	}
}

// GetClient returns the underlying Redis client
func (r *RedisClient) GetClient() *redis.Client {
	return r.client
}

// Close closes the Redis connection
func (r *RedisClient) Close() error {
	var err error
	r.closeOnce.Do(func() {
		err = r.client.Close()
	})
	return err
}

// PublishDashboardEvent publishes a dashboard event on the shared channel
func (r *RedisClient) PublishDashboardEvent(ctx context.Context, event *events.DashboardEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal dashboard event: %w", err)
	}

	ctx, cancel := r.withContext(ctx)
	defer cancel()

	return r.client.Publish(ctx, DashboardEventChannel, payload).Err()
}

// SubscribeToDashboardEvents listens for dashboard events until ctx ends
func (r *RedisClient) SubscribeToDashboardEvents(ctx context.Context, callback func(*events.DashboardEvent) error) error {
	pubsub := r.client.Subscribe(ctx, DashboardEventChannel)
	defer pubsub.Close()

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			var event events.DashboardEvent
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				log.Error("Failed to decode dashboard event", zap.Error(err))
				continue
			}
			if err := callback(&event); err != nil {
				log.Error("Dashboard event callback failed", zap.Error(err))
			}
		}
	}
}

// InvalidateDashboardCache clears a user's cached dashboard responses
func (r *RedisClient) InvalidateDashboardCache(ctx context.Context, userID uuid.UUID) error {
	return r.ClearByPattern(ctx, fmt.Sprintf("dashboard:*:%s", userID.String()))
}
