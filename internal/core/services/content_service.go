package services

import (
	"context"

	"github.com/srgjo27/epic_events/internal/core/domain"
	"github.com/srgjo27/epic_events/internal/core/ports"
)

type ContentService struct {
	repo ports.ContentRepository
}

func NewContentService(repo ports.ContentRepository) *ContentService {
	return &ContentService{repo: repo}
}

func listOrEmpty[T any](load func(ctx context.Context) ([]T, error)) LoadFunc[[]T] {
	return func(ctx context.Context) ([]T, error) {
		rows, err := load(ctx)
		if err != nil {
			return nil, err
		}

		if rows == nil {
			rows = []T{}
		}

		return rows, nil
	}
}

func (s *ContentService) HeroFetcher() *Fetcher[*domain.HeroContent] {
	return NewFetcher("hero_content", s.repo.GetHero)
}

func (s *ContentService) GamesFetcher() *Fetcher[[]domain.GameOffering] {
	return NewFetcher("basic_game_cards", listOrEmpty(s.repo.ListGames))
}

func (s *ContentService) CategoriesFetcher() *Fetcher[[]domain.GameCategory] {
	return NewFetcher("game_categories", listOrEmpty(s.repo.ListCategories))
}

func (s *ContentService) GalleryFetcher() *Fetcher[[]domain.GalleryEvent] {
	return NewFetcher("events", listOrEmpty(s.repo.ListGalleryEvents))
}

func (s *ContentService) FooterFetcher() *Fetcher[*domain.FooterContent] {
	return NewFetcher("footer_content", s.repo.GetFooter)
}

func (s *ContentService) SocialLinksFetcher() *Fetcher[[]domain.SocialLink] {
	return NewFetcher("social_links", listOrEmpty(s.repo.ListSocialLinks))
}

func (s *ContentService) ContactFetcher() *Fetcher[*domain.ContactInfo] {
	return NewFetcher("contact_info", s.repo.GetContactInfo)
}

func (s *ContentService) ServicesFetcher() *Fetcher[[]domain.OtherService] {
	return NewFetcher("other_services", listOrEmpty(s.repo.ListOtherServices))
}

// FindGame looks a game up in the catalog by its string ID.
func (s *ContentService) FindGame(ctx context.Context, id string) (*domain.GameOffering, error) {
	games, err := s.repo.ListGames(ctx)
	if err != nil {
		return nil, err
	}

	for i := range games {
		if games[i].ID.String() == id {
			return &games[i], nil
		}
	}

	return nil, domain.ErrNotFound
}

// PageView is everything the landing page renders from the content store.
type PageView struct {
	Hero       *Fetcher[*domain.HeroContent]
	Games      *Fetcher[[]domain.GameOffering]
	Categories *Fetcher[[]domain.GameCategory]
	Gallery    *Fetcher[[]domain.GalleryEvent]
	Footer     *Fetcher[*domain.FooterContent]
	Social     *Fetcher[[]domain.SocialLink]
	Contact    *Fetcher[*domain.ContactInfo]
	Services   *Fetcher[[]domain.OtherService]

	all         *View
	localized   *View
	mountCtx    context.Context
	unsubscribe func()
}

func (s *ContentService) NewPageView() *PageView {
	p := &PageView{
		Hero:       s.HeroFetcher(),
		Games:      s.GamesFetcher(),
		Categories: s.CategoriesFetcher(),
		Gallery:    s.GalleryFetcher(),
		Footer:     s.FooterFetcher(),
		Social:     s.SocialLinksFetcher(),
		Contact:    s.ContactFetcher(),
		Services:   s.ServicesFetcher(),
	}

	p.all = NewView(p.Hero, p.Games, p.Categories, p.Gallery, p.Footer, p.Social, p.Contact, p.Services)
	p.localized = NewView(p.Hero, p.Games, p.Categories, p.Footer, p.Services)
	return p
}

// Mount starts every fetch. When session is non-nil, the bilingual sections
// are fetched again each time the session language changes while mounted.
func (p *PageView) Mount(ctx context.Context, session *Session) {
	p.mountCtx = ctx
	p.all.Mount(ctx)

	if session != nil {
		p.unsubscribe = session.OnLanguageChange(func(domain.Language) {
			p.localized.Mount(p.mountCtx)
		})
	}
}

func (p *PageView) Wait(ctx context.Context) bool {
	return p.all.Wait(ctx)
}

func (p *PageView) Loading() bool {
	return p.all.Loading()
}

// BookingSection is the composite the booking form renders from.
func (p *PageView) BookingSection() *View {
	return NewView(p.Contact, p.Games)
}

func (p *PageView) Unmount() {
	if p.unsubscribe != nil {
		p.unsubscribe()
		p.unsubscribe = nil
	}

	p.all.Unmount()
}
