package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"gigbook/internal/domain/booking"
	"gigbook/internal/domain/conflict"
	"gigbook/internal/pkg/config"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

const (
	bookingsKey    = "bookings"
	resolutionsKey = "resolutions"
)

// RedisConflictCache keeps short-lived JSON snapshots of bookings and
// resolutions. Any Redis failure is logged and reported as a miss.
type RedisConflictCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
	logger *slog.Logger
}

func NewRedisClient(cfg config.CacheConfig) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
}

func NewRedisConflictCache(client *redis.Client, cfg config.CacheConfig, logger *slog.Logger) *RedisConflictCache {
	return &RedisConflictCache{
		client: client,
		prefix: cfg.KeyPrefix,
		ttl:    cfg.TTL,
		logger: logger.With("component", "conflict_cache"),
	}
}

type bookingRecord struct {
	ID           int64     `json:"id"`
	ClientName   string    `json:"client_name"`
	Status       string    `json:"status"`
	EventDate    string    `json:"event_date"`
	EventTime    *string   `json:"event_time,omitempty"`
	EventEndTime *string   `json:"event_end_time,omitempty"`
	Venue        string    `json:"venue,omitempty"`
	VenueAddress string    `json:"venue_address,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type resolutionRecord struct {
	ID           uuid.UUID `json:"id"`
	BookingIDs   []int64   `json:"booking_ids"`
	ConflictDate string    `json:"conflict_date"`
	Notes        *string   `json:"notes,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func (c *RedisConflictCache) GetBookings(ctx context.Context) ([]booking.Booking, bool) {
	var records []bookingRecord
	if !c.get(ctx, bookingsKey, &records) {
		return nil, false
	}
	out := make([]booking.Booking, len(records))
	for i, r := range records {
		out[i] = booking.Booking{
			ID:           r.ID,
			ClientName:   r.ClientName,
			Status:       booking.Status(r.Status),
			EventDate:    r.EventDate,
			EventTime:    r.EventTime,
			EventEndTime: r.EventEndTime,
			Venue:        r.Venue,
			VenueAddress: r.VenueAddress,
			CreatedAt:    r.CreatedAt,
			UpdatedAt:    r.UpdatedAt,
		}
	}
	return out, true
}

func (c *RedisConflictCache) SetBookings(ctx context.Context, bookings []booking.Booking) {
	records := make([]bookingRecord, len(bookings))
	for i, b := range bookings {
		records[i] = bookingRecord{
			ID:           b.ID,
			ClientName:   b.ClientName,
			Status:       b.Status.String(),
			EventDate:    b.EventDate,
			EventTime:    b.EventTime,
			EventEndTime: b.EventEndTime,
			Venue:        b.Venue,
			VenueAddress: b.VenueAddress,
			CreatedAt:    b.CreatedAt,
			UpdatedAt:    b.UpdatedAt,
		}
	}
	c.set(ctx, bookingsKey, records)
}

func (c *RedisConflictCache) GetResolutions(ctx context.Context) ([]*conflict.Resolution, bool) {
	var records []resolutionRecord
	if !c.get(ctx, resolutionsKey, &records) {
		return nil, false
	}
	out := make([]*conflict.Resolution, 0, len(records))
	for _, r := range records {
		date, err := booking.ParseDate(r.ConflictDate)
		if err != nil {
			c.logger.Warn("discarding cached resolutions", slog.String("error", err.Error()))
			return nil, false
		}
		out = append(out, conflict.ReconstructResolution(r.ID, r.BookingIDs, date, r.Notes, r.CreatedAt))
	}
	return out, true
}

func (c *RedisConflictCache) SetResolutions(ctx context.Context, resolutions []*conflict.Resolution) {
	records := make([]resolutionRecord, len(resolutions))
	for i, r := range resolutions {
		records[i] = resolutionRecord{
			ID:           r.ID(),
			BookingIDs:   r.BookingIDs().IDs(),
			ConflictDate: r.ConflictDate().String(),
			Notes:        r.Notes(),
			CreatedAt:    r.CreatedAt(),
		}
	}
	c.set(ctx, resolutionsKey, records)
}

// Invalidate drops both snapshots. Booking mutations and new resolutions
// must call it after commit.
func (c *RedisConflictCache) Invalidate(ctx context.Context) {
	if err := c.client.Del(ctx, c.key(bookingsKey), c.key(resolutionsKey)).Err(); err != nil {
		c.logger.Error("cache invalidation failed", slog.String("error", err.Error()))
	}
}

func (c *RedisConflictCache) key(name string) string {
	return c.prefix + ":" + name
}

func (c *RedisConflictCache) get(ctx context.Context, name string, dst any) bool {
	raw, err := c.client.Get(ctx, c.key(name)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("cache read failed", slog.String("key", c.key(name)), slog.String("error", err.Error()))
		}
		return false
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		c.logger.Warn("cache entry is not valid json", slog.String("key", c.key(name)), slog.String("error", err.Error()))
		return false
	}
	return true
}

func (c *RedisConflictCache) set(ctx context.Context, name string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		c.logger.Warn("cache encode failed", slog.String("key", c.key(name)), slog.String("error", err.Error()))
		return
	}
	if err := c.client.Set(ctx, c.key(name), raw, c.ttl).Err(); err != nil {
		c.logger.Warn("cache write failed", slog.String("key", c.key(name)), slog.String("error", err.Error()))
	}
}
