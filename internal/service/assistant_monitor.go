package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"hospital-dashboard/internal/assistant"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	// Redis keys for assistant health tracking
	RedisCooldownKey = "assistant:cooldown"
	RedisOutcomesKey = "assistant:outcomes"

	// Timeout for individual Redis operations
	redisMonitorTimeout = 2 * time.Second
)

// AssistantMonitor keeps the provider cooldown window and outcome counters
// in Redis so every API instance shares them. Redis failures are logged and
// never block a chat turn.
type AssistantMonitor struct {
	redisClient redis.UniversalClient
	log         *logrus.Logger
	cooldown    time.Duration
}

func NewAssistantMonitor(redisClient redis.UniversalClient, log *logrus.Logger, cooldown time.Duration) *AssistantMonitor {
	return &AssistantMonitor{
		redisClient: redisClient,
		log:         log,
		cooldown:    cooldown,
	}
}

// CoolingDown reports whether a quota error was seen within the cooldown
// window.
func (m *AssistantMonitor) CoolingDown(ctx context.Context) bool {
	if m.cooldown <= 0 {
		return false
	}
	ctx, cancel := context.WithTimeout(ctx, redisMonitorTimeout)
	defer cancel()

	n, err := m.redisClient.Exists(ctx, RedisCooldownKey).Result()
	if err != nil {
		m.log.Warnf("Failed to read assistant cooldown: %+v", err)
		return false
	}
	return n > 0
}

func (m *AssistantMonitor) StartCooldown(ctx context.Context) {
	if m.cooldown <= 0 {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, redisMonitorTimeout)
	defer cancel()

	since := strconv.FormatInt(time.Now().Unix(), 10)
	if err := m.redisClient.Set(ctx, RedisCooldownKey, since, m.cooldown).Err(); err != nil {
		m.log.Warnf("Failed to start assistant cooldown: %+v", err)
		return
	}
	m.log.Debugf("Assistant cooldown started for %v", m.cooldown)
}

// Record increments the state and reason counters in one transaction.
func (m *AssistantMonitor) Record(ctx context.Context, patientID int64, result *assistant.Result) {
	ctx, cancel := context.WithTimeout(ctx, redisMonitorTimeout)
	defer cancel()

	pipe := m.redisClient.TxPipeline()
	pipe.HIncrBy(ctx, RedisOutcomesKey, "state:"+string(result.State), 1)
	pipe.HIncrBy(ctx, RedisOutcomesKey, "reason:"+string(result.Reason), 1)

	if _, err := pipe.Exec(ctx); err != nil {
		m.log.Warnf("Failed to record assistant outcome for patient %d: %+v", patientID, err)
	}
}

// AssistantStats is the snapshot served by the stats endpoint.
type AssistantStats struct {
	Counters    map[string]int64 `json:"counters"`
	CoolingDown bool             `json:"cooling_down"`
}

func (m *AssistantMonitor) Stats(ctx context.Context) (*AssistantStats, error) {
	ctx, cancel := context.WithTimeout(ctx, redisMonitorTimeout)
	defer cancel()

	raw, err := m.redisClient.HGetAll(ctx, RedisOutcomesKey).Result()
	if err != nil {
		return nil, fmt.Errorf("read assistant outcomes: %w", err)
	}

	counters := make(map[string]int64, len(raw))
	for field, value := range raw {
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			continue
		}
		counters[field] = n
	}

	return &AssistantStats{
		Counters:    counters,
		CoolingDown: m.CoolingDown(ctx),
	}, nil
}
