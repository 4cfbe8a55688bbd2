package ports

import (
	"context"

	"github.com/srgjo27/epic_events/internal/core/domain"
)

type ContentRepository interface {
	GetHero(ctx context.Context) (*domain.HeroContent, error)
	ListGames(ctx context.Context) ([]domain.GameOffering, error)
	ListCategories(ctx context.Context) ([]domain.GameCategory, error)
	ListGalleryEvents(ctx context.Context) ([]domain.GalleryEvent, error)
	GetFooter(ctx context.Context) (*domain.FooterContent, error)
	ListSocialLinks(ctx context.Context) ([]domain.SocialLink, error)
	GetContactInfo(ctx context.Context) (*domain.ContactInfo, error)
	ListOtherServices(ctx context.Context) ([]domain.OtherService, error)
}

type BookingRepository interface {
	CreateBookingRequest(ctx context.Context, req *domain.BookingRequest) error
}

// Notifier delivers a toast to the visitor who triggered an action.
type Notifier interface {
	Notify(n domain.Notification)
}

// BookingPublisher tells the business about a booking request that has been
// stored. Failures never affect the visitor's outcome.
type BookingPublisher interface {
	PublishBookingRequest(ctx context.Context, req domain.BookingRequest) error
}
