package redis

import (
	"context"
	"sort"

	"github.com/redis/go-redis/v9"

	"github.com/mcoot/hangman/internal/model"
	"github.com/mcoot/hangman/internal/storage"
)

// Storage is a Redis-backed word source.
// Category names live in a SET and each category's words in a LIST.
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis word source and verifies the connection
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ConnectTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis word source with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interfaces
var (
	_ storage.WordSource = (*Storage)(nil)
	_ storage.WordSink   = (*Storage)(nil)
)

// LoadCategories reads every category and its words, sorted by category name
func (s *Storage) LoadCategories(ctx context.Context) ([]model.CategoryRecord, error) {
	names, err := s.client.SMembers(ctx, categoriesKey(s.cfg.KeyPrefix)).Result()
	if err != nil {
		return nil, err
	}
	sort.Strings(names)

	pipe := s.client.Pipeline()
	cmds := make([]*redis.StringSliceCmd, len(names))
	for i, name := range names {
		cmds[i] = pipe.LRange(ctx, categoryKey(s.cfg.KeyPrefix, name), 0, -1)
	}
	if len(names) > 0 {
		if _, err := pipe.Exec(ctx); err != nil {
			return nil, err
		}
	}

	records := make([]model.CategoryRecord, 0, len(names))
	for i, name := range names {
		records = append(records, model.CategoryRecord{
			Category: name,
			Words:    cmds[i].Val(),
		})
	}
	return records, nil
}

// SaveCategories replaces all stored categories with records in one transaction
func (s *Storage) SaveCategories(ctx context.Context, records []model.CategoryRecord) error {
	setKey := categoriesKey(s.cfg.KeyPrefix)

	existing, err := s.client.SMembers(ctx, setKey).Result()
	if err != nil {
		return err
	}

	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, name := range existing {
			pipe.Del(ctx, categoryKey(s.cfg.KeyPrefix, name))
		}
		pipe.Del(ctx, setKey)

		for _, r := range records {
			if len(r.Words) == 0 {
				continue
			}
			key := categoryKey(s.cfg.KeyPrefix, r.Category)
			words := make([]any, len(r.Words))
			for i, w := range r.Words {
				words[i] = w
			}
			pipe.Del(ctx, key)
			pipe.RPush(ctx, key, words...)
			pipe.SAdd(ctx, setKey, r.Category)
		}
		return nil
	})
	return err
}
