package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"ventas-dashboard/internal/domain"
)

const redisKeyPrefix = "ventas:cart:draft:"

// redisDraft is the stored form; OwnerID is hidden from the API JSON.
type redisDraft struct {
	ID        string                `json:"id"`
	OwnerID   string                `json:"ownerId"`
	UserID    string                `json:"userId"`
	Items     []domain.SaleLineItem `json:"items"`
	CreatedAt time.Time             `json:"createdAt"`
	UpdatedAt time.Time             `json:"updatedAt"`
}

type redisRepo struct {
	client *redis.Client
	ttl    time.Duration
	logger *log.Logger
}

// NewRedis returns a Repository storing each draft as a JSON value that
// expires ttl after its last write.
func NewRedis(client *redis.Client, ttl time.Duration, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &redisRepo{client: client, ttl: ttl, logger: logger}
}

// DialRedis parses url and verifies the server answers.
func DialRedis(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return client, nil
}

func (r *redisRepo) Create(ctx context.Context, ownerID string) (*domain.CartDraft, error) {
	now := time.Now().UTC()
	d := redisDraft{
		ID:        uuid.NewString(),
		OwnerID:   ownerID,
		Items:     []domain.SaleLineItem{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := r.write(ctx, d); err != nil {
		r.logger.Printf("cart repo: create owner_id=%s error=%v", ownerID, err)
		return nil, err
	}
	r.logger.Printf("cart repo: created id=%s owner_id=%s", d.ID, ownerID)
	return d.toDomain(), nil
}

func (r *redisRepo) Get(ctx context.Context, ownerID, id string) (*domain.CartDraft, error) {
	d, err := r.read(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	return d.toDomain(), nil
}

func (r *redisRepo) Save(ctx context.Context, draft *domain.CartDraft) error {
	stored, err := r.read(ctx, draft.OwnerID, draft.ID)
	if err != nil {
		return err
	}
	stored.UserID = draft.UserID
	stored.Items = draft.Items
	if stored.Items == nil {
		stored.Items = []domain.SaleLineItem{}
	}
	stored.UpdatedAt = time.Now().UTC()
	if err := r.write(ctx, *stored); err != nil {
		r.logger.Printf("cart repo: save id=%s error=%v", draft.ID, err)
		return err
	}
	draft.UpdatedAt = stored.UpdatedAt
	return nil
}

func (r *redisRepo) Delete(ctx context.Context, ownerID, id string) error {
	if _, err := r.read(ctx, ownerID, id); err != nil {
		return err
	}
	if err := r.client.Del(ctx, redisKeyPrefix+id).Err(); err != nil {
		r.logger.Printf("cart repo: delete id=%s error=%v", id, err)
		return err
	}
	r.logger.Printf("cart repo: deleted id=%s", id)
	return nil
}

func (r *redisRepo) read(ctx context.Context, ownerID, id string) (*redisDraft, error) {
	raw, err := r.client.Get(ctx, redisKeyPrefix+id).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	var d redisDraft
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("cart repo: decode draft %s: %w", id, err)
	}
	if d.OwnerID != ownerID {
		return nil, domain.ErrNotFound
	}
	return &d, nil
}

func (r *redisRepo) write(ctx context.Context, d redisDraft) error {
	raw, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("cart repo: encode draft %s: %w", d.ID, err)
	}
	return r.client.Set(ctx, redisKeyPrefix+d.ID, raw, r.ttl).Err()
}

func (d redisDraft) toDomain() *domain.CartDraft {
	return &domain.CartDraft{
		ID:        d.ID,
		OwnerID:   d.OwnerID,
		UserID:    d.UserID,
		Items:     d.Items,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}
