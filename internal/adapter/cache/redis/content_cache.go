package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/srgjo27/epic_events/internal/core/domain"
	"github.com/srgjo27/epic_events/internal/core/ports"
)

const (
	KeyHero       = "content:hero_content"
	KeyGames      = "content:basic_game_cards"
	KeyCategories = "content:game_categories"
	KeyEvents     = "content:events"
	KeyFooter     = "content:footer_content"
	KeySocial     = "content:social_links"
	KeyContact    = "content:contact_info"
	KeyServices   = "content:other_services"
)

var allKeys = []string{KeyHero, KeyGames, KeyCategories, KeyEvents, KeyFooter, KeySocial, KeyContact, KeyServices}

const DefaultTTL = 5 * time.Minute

// ContentCache is a read-through cache in front of a ContentRepository. Redis
// errors never fail a read; the store is queried directly instead.
type ContentCache struct {
	next   ports.ContentRepository
	client *redis.Client
	ttl    time.Duration
}

func NewContentCache(next ports.ContentRepository, client *redis.Client, ttl time.Duration) *ContentCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &ContentCache{next: next, client: client, ttl: ttl}
}

func readThrough[T any](ctx context.Context, c *ContentCache, key string, load func(context.Context) (T, error)) (T, error) {
	var cached T

	raw, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		if jsonErr := json.Unmarshal(raw, &cached); jsonErr == nil {
			return cached, nil
		}
		log.Printf("Discarding corrupt cache entry %s", key)
	case !errors.Is(err, redis.Nil):
		log.Printf("Cache read failed for %s: %v", key, err)
	}

	value, err := load(ctx)
	if err != nil {
		return value, err
	}

	payload, err := json.Marshal(value)
	if err != nil {
		return value, nil
	}

	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		log.Printf("Cache write failed for %s: %v", key, err)
	}

	return value, nil
}

func (c *ContentCache) GetHero(ctx context.Context) (*domain.HeroContent, error) {
	return readThrough(ctx, c, KeyHero, c.next.GetHero)
}

func (c *ContentCache) ListGames(ctx context.Context) ([]domain.GameOffering, error) {
	return readThrough(ctx, c, KeyGames, c.next.ListGames)
}

func (c *ContentCache) ListCategories(ctx context.Context) ([]domain.GameCategory, error) {
	return readThrough(ctx, c, KeyCategories, c.next.ListCategories)
}

func (c *ContentCache) ListGalleryEvents(ctx context.Context) ([]domain.GalleryEvent, error) {
	return readThrough(ctx, c, KeyEvents, c.next.ListGalleryEvents)
}

func (c *ContentCache) GetFooter(ctx context.Context) (*domain.FooterContent, error) {
	return readThrough(ctx, c, KeyFooter, c.next.GetFooter)
}

func (c *ContentCache) ListSocialLinks(ctx context.Context) ([]domain.SocialLink, error) {
	return readThrough(ctx, c, KeySocial, c.next.ListSocialLinks)
}

func (c *ContentCache) GetContactInfo(ctx context.Context) (*domain.ContactInfo, error) {
	return readThrough(ctx, c, KeyContact, c.next.GetContactInfo)
}

func (c *ContentCache) ListOtherServices(ctx context.Context) ([]domain.OtherService, error) {
	return readThrough(ctx, c, KeyServices, c.next.ListOtherServices)
}

// Invalidate drops every cached content entry so the next reads go to the
// store.
func (c *ContentCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, allKeys...).Err(); err != nil {
		return fmt.Errorf("failed to invalidate content cache: %w", err)
	}

	return nil
}
