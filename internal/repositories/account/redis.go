package account

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/Talha3818/gaming-site-sub001/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefix for Redis
	accountKeyPrefix = "account:"
)

// ErrAccountNotFound is returned when an account is not found
var ErrAccountNotFound = errors.New("account not found")

// ErrInsufficientFunds is returned when a debit exceeds the balance
var ErrInsufficientFunds = errors.New("insufficient funds")

// Script return codes for missing accounts and short balances
const (
	scriptMissingAccount    = -2
	scriptInsufficientFunds = -1
)

// debitScript subtracts from the balance only when the account exists and
// holds enough funds, so the check and the write are one atomic step.
var debitScript = redis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 0 then
  return -2
end
local balance = tonumber(redis.call('HGET', KEYS[1], 'balance'))
if balance < tonumber(ARGV[1]) then
  return -1
end
redis.call('HSET', KEYS[1], 'updated_at', ARGV[2])
return redis.call('HINCRBY', KEYS[1], 'balance', -ARGV[1])
`)

// creditScript adds to the balance of an existing account
var creditScript = redis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 0 then
  return -2
end
redis.call('HSET', KEYS[1], 'updated_at', ARGV[2])
return redis.call('HINCRBY', KEYS[1], 'balance', ARGV[1])
`)

// incrementWinScript bumps the win count and earnings total together
var incrementWinScript = redis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 0 then
  return -2
end
redis.call('HINCRBY', KEYS[1], 'wins', 1)
redis.call('HINCRBY', KEYS[1], 'total_earnings', ARGV[1])
redis.call('HSET', KEYS[1], 'updated_at', ARGV[2])
return 1
`)

// incrementLossScript bumps the loss count
var incrementLossScript = redis.NewScript(`
if redis.call('EXISTS', KEYS[1]) == 0 then
  return -2
end
redis.call('HINCRBY', KEYS[1], 'losses', 1)
redis.call('HSET', KEYS[1], 'updated_at', ARGV[1])
return 1
`)

// Config holds configuration for the Redis account repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed account repository
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

// SaveAccount persists a new account record to Redis
func (r *redisRepository) SaveAccount(ctx context.Context, input *SaveAccountInput) error {
	if input == nil || input.Account == nil {
		return errors.New("input and account cannot be nil")
	}

	acct := input.Account

	if acct.ID == "" {
		return errors.New("account ID cannot be empty")
	}

	accountKey := fmt.Sprintf("%s%s", accountKeyPrefix, acct.ID)
	fields := map[string]interface{}{
		"id":             acct.ID,
		"name":           acct.Name,
		"balance":        acct.Balance,
		"wins":           acct.Wins,
		"losses":         acct.Losses,
		"total_earnings": acct.TotalEarnings,
		"created_at":     acct.CreatedAt.Format(time.RFC3339Nano),
		"updated_at":     acct.UpdatedAt.Format(time.RFC3339Nano),
	}

	if err := r.client.HSet(ctx, accountKey, fields).Err(); err != nil {
		return fmt.Errorf("failed to save account: %w", err)
	}

	return nil
}

// GetAccount retrieves an account by user ID from Redis
func (r *redisRepository) GetAccount(ctx context.Context, input *GetAccountInput) (*models.Account, error) {
	if input == nil || input.AccountID == "" {
		return nil, errors.New("input and account ID cannot be empty")
	}

	accountKey := fmt.Sprintf("%s%s", accountKeyPrefix, input.AccountID)
	fields, err := r.client.HGetAll(ctx, accountKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	if len(fields) == 0 {
		return nil, ErrAccountNotFound
	}

	return parseAccount(fields)
}

// Debit atomically subtracts amount from a balance
func (r *redisRepository) Debit(ctx context.Context, input *DebitInput) (*DebitOutput, error) {
	if input == nil || input.AccountID == "" {
		return nil, errors.New("input and account ID cannot be empty")
	}

	if input.Amount <= 0 {
		return nil, errors.New("debit amount must be positive")
	}

	accountKey := fmt.Sprintf("%s%s", accountKeyPrefix, input.AccountID)
	result, err := debitScript.Run(ctx, r.client, []string{accountKey},
		input.Amount, time.Now().UTC().Format(time.RFC3339Nano)).Int64()
	if err != nil {
		return nil, fmt.Errorf("failed to debit account: %w", err)
	}

	switch result {
	case scriptMissingAccount:
		return nil, ErrAccountNotFound
	case scriptInsufficientFunds:
		return nil, ErrInsufficientFunds
	}

	return &DebitOutput{Balance: result}, nil
}

// Credit atomically adds amount to a balance
func (r *redisRepository) Credit(ctx context.Context, input *CreditInput) (*CreditOutput, error) {
	if input == nil || input.AccountID == "" {
		return nil, errors.New("input and account ID cannot be empty")
	}

	if input.Amount <= 0 {
		return nil, errors.New("credit amount must be positive")
	}

	accountKey := fmt.Sprintf("%s%s", accountKeyPrefix, input.AccountID)
	result, err := creditScript.Run(ctx, r.client, []string{accountKey},
		input.Amount, time.Now().UTC().Format(time.RFC3339Nano)).Int64()
	if err != nil {
		return nil, fmt.Errorf("failed to credit account: %w", err)
	}

	if result == scriptMissingAccount {
		return nil, ErrAccountNotFound
	}

	return &CreditOutput{Balance: result}, nil
}

// IncrementWin atomically bumps the win count and earnings total
func (r *redisRepository) IncrementWin(ctx context.Context, input *IncrementWinInput) error {
	if input == nil || input.AccountID == "" {
		return errors.New("input and account ID cannot be empty")
	}

	accountKey := fmt.Sprintf("%s%s", accountKeyPrefix, input.AccountID)
	result, err := incrementWinScript.Run(ctx, r.client, []string{accountKey},
		input.Earnings, time.Now().UTC().Format(time.RFC3339Nano)).Int64()
	if err != nil {
		return fmt.Errorf("failed to increment wins: %w", err)
	}

	if result == scriptMissingAccount {
		return ErrAccountNotFound
	}

	return nil
}

// IncrementLoss atomically bumps the loss count
func (r *redisRepository) IncrementLoss(ctx context.Context, input *IncrementLossInput) error {
	if input == nil || input.AccountID == "" {
		return errors.New("input and account ID cannot be empty")
	}

	accountKey := fmt.Sprintf("%s%s", accountKeyPrefix, input.AccountID)
	result, err := incrementLossScript.Run(ctx, r.client, []string{accountKey},
		time.Now().UTC().Format(time.RFC3339Nano)).Int64()
	if err != nil {
		return fmt.Errorf("failed to increment losses: %w", err)
	}

	if result == scriptMissingAccount {
		return ErrAccountNotFound
	}

	return nil
}

// parseAccount converts a Redis hash into an account model
func parseAccount(fields map[string]string) (*models.Account, error) {
	acct := &models.Account{
		ID:   fields["id"],
		Name: fields["name"],
	}

	var err error
	if acct.Balance, err = parseIntField(fields, "balance"); err != nil {
		return nil, err
	}
	if acct.Wins, err = parseIntField(fields, "wins"); err != nil {
		return nil, err
	}
	if acct.Losses, err = parseIntField(fields, "losses"); err != nil {
		return nil, err
	}
	if acct.TotalEarnings, err = parseIntField(fields, "total_earnings"); err != nil {
		return nil, err
	}

	if raw := fields["created_at"]; raw != "" {
		if acct.CreatedAt, err = time.Parse(time.RFC3339Nano, raw); err != nil {
			return nil, fmt.Errorf("failed to parse created_at: %w", err)
		}
	}
	if raw := fields["updated_at"]; raw != "" {
		if acct.UpdatedAt, err = time.Parse(time.RFC3339Nano, raw); err != nil {
			return nil, fmt.Errorf("failed to parse updated_at: %w", err)
		}
	}

	return acct, nil
}

func parseIntField(fields map[string]string, name string) (int64, error) {
	raw, ok := fields[name]
	if !ok || raw == "" {
		return 0, nil
	}

	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse %s: %w", name, err)
	}

	return value, nil
}
