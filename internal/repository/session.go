package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-ledger-client/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-ledger-client/internal/entity"
)

const sessionKeyPrefix = "session:"

type SessionRepository interface {
	CreateOrUpdate(ctx context.Context, record *entity.SessionRecord) error
	GetByID(ctx context.Context, account string) (*entity.SessionRecord, error)
	DeleteByID(ctx context.Context, account string) error
}

type dbSession struct {
	client *redis.Client
}

func NewSessionRepository(client *redis.Client) SessionRepository {
	return &dbSession{
		client: client,
	}
}

func (that *dbSession) CreateOrUpdate(ctx context.Context, record *entity.SessionRecord) error {
	recordJSON, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("could not marshal session: %w", err)
	}

	if err = that.client.Set(ctx, sessionKeyPrefix+record.Account, recordJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to set session: %w", err)
	}

	return nil
}

func (that *dbSession) GetByID(ctx context.Context, account string) (*entity.SessionRecord, error) {
	response, err := that.client.Get(ctx, sessionKeyPrefix+account).Result()
	if errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("session of %s: %w", account, apperror.ErrNotFound)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get session by account: %w", err)
	}

	var record entity.SessionRecord
	if err = json.Unmarshal([]byte(response), &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	return &record, nil
}

func (that *dbSession) DeleteByID(ctx context.Context, account string) error {
	if err := that.client.Del(ctx, sessionKeyPrefix+account).Err(); err != nil {
		return fmt.Errorf("failed to delete session by account: %w", err)
	}

	return nil
}
