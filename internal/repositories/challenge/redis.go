package challenge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Talha3818/gaming-site-sub001/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	challengeKeyPrefix      = "challenge:"
	userChallengesKeyPrefix = "user_challenges:"
	pendingByExpiryKey      = "pending_by_expiry"
)

// ErrChallengeNotFound is returned when a challenge is not found
var ErrChallengeNotFound = errors.New("challenge not found")

// updateStatusScript replaces the stored challenge only when its persisted
// status matches the expected one, and keeps the secondary indexes in step.
// The compare, the write and the index updates happen in a single Redis call,
// so racing transitions on the same challenge are resolved to one winner and
// a committed transition can never leave an index write behind.
var updateStatusScript = redis.NewScript(`
local current = redis.call('GET', KEYS[1])
if not current then
  return 0
end
local doc = cjson.decode(current)
if doc['status'] ~= ARGV[1] then
  return 0
end
redis.call('SET', KEYS[1], ARGV[2])
if ARGV[3] == 'pending' then
  redis.call('ZADD', KEYS[2], ARGV[5], ARGV[4])
else
  redis.call('ZREM', KEYS[2], ARGV[4])
end
if ARGV[6] ~= '' then
  redis.call('SADD', KEYS[3], ARGV[4])
end
return 1
`)

// Config holds configuration for the Redis challenge repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed challenge repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	// Validate config
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// SaveChallenge persists a challenge to Redis
func (r *redisRepository) SaveChallenge(ctx context.Context, input *SaveChallengeInput) error {
	if input == nil || input.Challenge == nil {
		return errors.New("input and challenge cannot be nil")
	}

	ch := input.Challenge

	if ch.ID == "" {
		return errors.New("challenge ID cannot be empty")
	}

	challengeJSON, err := json.Marshal(ch)
	if err != nil {
		return fmt.Errorf("failed to marshal challenge: %w", err)
	}

	// Create a Redis transaction
	pipe := r.client.Pipeline()

	challengeKey := fmt.Sprintf("%s%s", challengeKeyPrefix, ch.ID)
	pipe.Set(ctx, challengeKey, challengeJSON, 0)

	// Index the challenge under both participants
	challengerKey := fmt.Sprintf("%s%s", userChallengesKeyPrefix, ch.ChallengerID)
	pipe.SAdd(ctx, challengerKey, ch.ID)

	if ch.AccepterID != "" {
		accepterKey := fmt.Sprintf("%s%s", userChallengesKeyPrefix, ch.AccepterID)
		pipe.SAdd(ctx, accepterKey, ch.ID)
	}

	// Pending challenges are tracked by expiry for the sweep
	if ch.Status == models.ChallengeStatusPending {
		pipe.ZAdd(ctx, pendingByExpiryKey, redis.Z{
			Score:  float64(ch.ExpiresAt.Unix()),
			Member: ch.ID,
		})
	} else {
		pipe.ZRem(ctx, pendingByExpiryKey, ch.ID)
	}

	// Execute the transaction
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save challenge: %w", err)
	}

	return nil
}

// GetChallenge retrieves a challenge by ID from Redis
func (r *redisRepository) GetChallenge(ctx context.Context, input *GetChallengeInput) (*models.Challenge, error) {
	if input == nil || input.ChallengeID == "" {
		return nil, errors.New("input and challenge ID cannot be empty")
	}

	challengeKey := fmt.Sprintf("%s%s", challengeKeyPrefix, input.ChallengeID)
	challengeJSON, err := r.client.Get(ctx, challengeKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrChallengeNotFound
		}
		return nil, fmt.Errorf("failed to get challenge: %w", err)
	}

	var ch models.Challenge
	if err := json.Unmarshal([]byte(challengeJSON), &ch); err != nil {
		return nil, fmt.Errorf("failed to unmarshal challenge: %w", err)
	}

	return &ch, nil
}

// ListChallengesForUser retrieves all challenges a user participates in
func (r *redisRepository) ListChallengesForUser(ctx context.Context, input *ListChallengesForUserInput) (*ListChallengesForUserOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	challenges, err := r.fetchUserChallenges(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	return &ListChallengesForUserOutput{Challenges: challenges}, nil
}

// ListActiveForUser retrieves a user's accepted and in-progress challenges
func (r *redisRepository) ListActiveForUser(ctx context.Context, input *ListActiveForUserInput) (*ListActiveForUserOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errors.New("input and user ID cannot be empty")
	}

	challenges, err := r.fetchUserChallenges(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	active := make([]*models.Challenge, 0, len(challenges))
	for _, ch := range challenges {
		if ch.Active() {
			active = append(active, ch)
		}
	}

	return &ListActiveForUserOutput{Challenges: active}, nil
}

// ListExpiredPending retrieves pending challenges whose expiry has passed
func (r *redisRepository) ListExpiredPending(ctx context.Context, input *ListExpiredPendingInput) (*ListExpiredPendingOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	limit := input.Limit
	if limit <= 0 {
		limit = 100
	}

	ids, err := r.client.ZRangeByScore(ctx, pendingByExpiryKey, &redis.ZRangeBy{
		Min:   "-inf",
		Max:   fmt.Sprintf("%d", input.Now.Unix()),
		Count: limit,
	}).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get expired challenge IDs: %w", err)
	}

	if len(ids) == 0 {
		return &ListExpiredPendingOutput{Challenges: []*models.Challenge{}}, nil
	}

	challenges, err := r.fetchChallenges(ctx, ids)
	if err != nil {
		return nil, err
	}

	// The index can lag a transition briefly; only report true pendings
	expired := make([]*models.Challenge, 0, len(challenges))
	for _, ch := range challenges {
		if ch.Status == models.ChallengeStatusPending {
			expired = append(expired, ch)
		}
	}

	return &ListExpiredPendingOutput{Challenges: expired}, nil
}

// UpdateChallengeStatus conditionally replaces a challenge only when its
// persisted status still matches the expected one
func (r *redisRepository) UpdateChallengeStatus(ctx context.Context, input *UpdateChallengeStatusInput) (*UpdateChallengeStatusOutput, error) {
	if input == nil || input.Challenge == nil {
		return nil, errors.New("input and challenge cannot be nil")
	}

	ch := input.Challenge

	if ch.ID == "" {
		return nil, errors.New("challenge ID cannot be empty")
	}

	if input.ExpectedStatus == "" {
		return nil, errors.New("expected status cannot be empty")
	}

	challengeJSON, err := json.Marshal(ch)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal challenge: %w", err)
	}

	challengeKey := fmt.Sprintf("%s%s", challengeKeyPrefix, ch.ID)
	// The accepter index key is only touched by the script when an accepter is
	// set; the bare prefix passed otherwise is never written
	accepterKey := fmt.Sprintf("%s%s", userChallengesKeyPrefix, ch.AccepterID)
	result, err := updateStatusScript.Run(ctx, r.client,
		[]string{challengeKey, pendingByExpiryKey, accepterKey},
		string(input.ExpectedStatus),
		string(challengeJSON),
		string(ch.Status),
		ch.ID,
		ch.ExpiresAt.Unix(),
		ch.AccepterID,
	).Int64()
	if err != nil {
		return nil, fmt.Errorf("failed to update challenge status: %w", err)
	}

	return &UpdateChallengeStatusOutput{Updated: result == 1}, nil
}

// fetchUserChallenges loads all challenges indexed under a user
func (r *redisRepository) fetchUserChallenges(ctx context.Context, userID string) ([]*models.Challenge, error) {
	userKey := fmt.Sprintf("%s%s", userChallengesKeyPrefix, userID)
	ids, err := r.client.SMembers(ctx, userKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get challenge IDs for user: %w", err)
	}

	if len(ids) == 0 {
		return []*models.Challenge{}, nil
	}

	return r.fetchChallenges(ctx, ids)
}

// fetchChallenges loads challenge records by ID using a pipeline
func (r *redisRepository) fetchChallenges(ctx context.Context, ids []string) ([]*models.Challenge, error) {
	pipe := r.client.Pipeline()
	commands := make(map[string]*redis.StringCmd, len(ids))

	for _, id := range ids {
		challengeKey := fmt.Sprintf("%s%s", challengeKeyPrefix, id)
		commands[id] = pipe.Get(ctx, challengeKey)
	}

	if _, err := pipe.Exec(ctx); err != nil && err != redis.Nil {
		return nil, fmt.Errorf("failed to get challenges: %w", err)
	}

	challenges := make([]*models.Challenge, 0, len(ids))
	for id, cmd := range commands {
		challengeJSON, err := cmd.Result()
		if err != nil {
			if err == redis.Nil {
				// Challenge was deleted between getting the IDs and fetching it
				continue
			}
			return nil, fmt.Errorf("failed to get challenge %s: %w", id, err)
		}

		var ch models.Challenge
		if err := json.Unmarshal([]byte(challengeJSON), &ch); err != nil {
			return nil, fmt.Errorf("failed to unmarshal challenge %s: %w", id, err)
		}

		challenges = append(challenges, &ch)
	}

	return challenges, nil
}
