package redis

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// IdleTimeout is how long a session survives without activity.
const IdleTimeout = 30 * time.Minute

// ISessions tracks the last-active mark of each user session. A session is
// considered expired once its key has not been refreshed within the idle
// window; the TTL on the key does the bookkeeping.
type ISessions interface {
	StartSession(ctx context.Context, userID string, idle time.Duration) error
	RefreshSession(ctx context.Context, userID string, idle time.Duration) (bool, error)
	EndSession(ctx context.Context, userID string) error
}

type sessionClient struct {
	client *redis.Client
}

func New() ISessions {
	db, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	redisAddr := os.Getenv("REDIS_ADDRESS")
	redisPassword := os.Getenv("REDIS_PASSWORD")

	logrus.Info(fmt.Sprintf("Connecting to Redis at %s...", redisAddr))

	client := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPassword,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		logrus.Error(fmt.Sprintf("Failed to connect to Redis: %v", err))
	} else {
		logrus.Info("Successfully connected to Redis")
	}

	return &sessionClient{client: client}
}

func sessionKey(userID string) string {
	return "session:" + userID
}

func (r *sessionClient) StartSession(ctx context.Context, userID string, idle time.Duration) error {
	err := r.client.Set(ctx, sessionKey(userID), time.Now().Unix(), idle).Err()
	if err != nil {
		logrus.Error(fmt.Sprintf("Error starting session for user %s: %v", userID, err))
		return err
	}
	return nil
}

// RefreshSession extends the idle window of an existing session. It returns
// false when the session has already expired or never existed.
func (r *sessionClient) RefreshSession(ctx context.Context, userID string, idle time.Duration) (bool, error) {
	key := sessionKey(userID)

	_, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	} else if err != nil {
		logrus.Error(fmt.Sprintf("Error reading session for user %s: %v", userID, err))
		return false, err
	}

	if err := r.client.Set(ctx, key, time.Now().Unix(), idle).Err(); err != nil {
		logrus.Error(fmt.Sprintf("Error refreshing session for user %s: %v", userID, err))
		return false, err
	}

	return true, nil
}

func (r *sessionClient) EndSession(ctx context.Context, userID string) error {
	if _, err := r.client.Del(ctx, sessionKey(userID)).Result(); err != nil {
		logrus.Error(fmt.Sprintf("Error ending session for user %s: %v", userID, err))
		return err
	}
	return nil
}
