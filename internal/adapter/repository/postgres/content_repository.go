package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/srgjo27/epic_events/internal/core/domain"
)

type ContentRepository struct {
	db *sql.DB
}

func NewContentRepository(db *sql.DB) *ContentRepository {
	return &ContentRepository{db: db}
}

func localized(primary string, secondary sql.NullString) domain.LocalizedText {
	if !secondary.Valid {
		return domain.NewLocalizedText(primary, nil)
	}

	s := secondary.String
	return domain.NewLocalizedText(primary, &s)
}

func icon(table, name string) domain.IconTag {
	tag, ok := domain.ParseIcon(name)
	if !ok {
		log.Printf("Unknown icon %q in %s", name, table)
	}

	return tag
}

func (r *ContentRepository) GetHero(ctx context.Context) (*domain.HeroContent, error) {
	query := `
	SELECT id, title, title_ta, subtitle, subtitle_ta, background_image
	FROM hero_content
	ORDER BY created_at DESC
	LIMIT 1
	`

	var hero domain.HeroContent
	var title, subtitle string
	var titleTa, subtitleTa sql.NullString

	err := r.db.QueryRowContext(ctx, query).Scan(
		&hero.ID,
		&title,
		&titleTa,
		&subtitle,
		&subtitleTa,
		&hero.BackgroundImage,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("hero_content: %w", domain.ErrNotFound)
		}

		return nil, fmt.Errorf("failed to query hero_content: %w", err)
	}

	hero.Title = localized(title, titleTa)
	hero.Subtitle = localized(subtitle, subtitleTa)

	return &hero, nil
}

func (r *ContentRepository) ListGames(ctx context.Context) ([]domain.GameOffering, error) {
	query := `
	SELECT id, name, name_ta, description, description_ta, image, category_id
	FROM basic_game_cards
	ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query basic_game_cards: %w", err)
	}

	defer rows.Close()

	var games []domain.GameOffering
	for rows.Next() {
		var g domain.GameOffering
		var name, description string
		var nameTa, descriptionTa sql.NullString
		var categoryID uuid.NullUUID

		if err := rows.Scan(&g.ID, &name, &nameTa, &description, &descriptionTa, &g.Image, &categoryID); err != nil {
			return nil, err
		}

		g.Name = localized(name, nameTa)
		g.Description = localized(description, descriptionTa)
		if categoryID.Valid {
			id := categoryID.UUID
			g.CategoryID = &id
		}

		games = append(games, g)
	}

	return games, rows.Err()
}

func (r *ContentRepository) ListCategories(ctx context.Context) ([]domain.GameCategory, error) {
	query := `
	SELECT id, name, name_ta, slug
	FROM game_categories
	ORDER BY name
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query game_categories: %w", err)
	}

	defer rows.Close()

	var categories []domain.GameCategory
	for rows.Next() {
		var c domain.GameCategory
		var name string
		var nameTa sql.NullString

		if err := rows.Scan(&c.ID, &name, &nameTa, &c.Slug); err != nil {
			return nil, err
		}

		c.Name = localized(name, nameTa)
		categories = append(categories, c)
	}

	return categories, rows.Err()
}

func (r *ContentRepository) ListGalleryEvents(ctx context.Context) ([]domain.GalleryEvent, error) {
	query := `
	SELECT id, name, date, image
	FROM events
	ORDER BY date DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}

	defer rows.Close()

	var events []domain.GalleryEvent
	for rows.Next() {
		var e domain.GalleryEvent
		if err := rows.Scan(&e.ID, &e.Name, &e.Date, &e.Image); err != nil {
			return nil, err
		}

		events = append(events, e)
	}

	return events, rows.Err()
}

func (r *ContentRepository) GetFooter(ctx context.Context) (*domain.FooterContent, error) {
	query := `
	SELECT id, company_description, company_description_ta
	FROM footer_content
	ORDER BY created_at DESC
	LIMIT 1
	`

	var footer domain.FooterContent
	var description string
	var descriptionTa sql.NullString

	err := r.db.QueryRowContext(ctx, query).Scan(&footer.ID, &description, &descriptionTa)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("footer_content: %w", domain.ErrNotFound)
		}

		return nil, fmt.Errorf("failed to query footer_content: %w", err)
	}

	footer.CompanyDescription = localized(description, descriptionTa)

	return &footer, nil
}

func (r *ContentRepository) ListSocialLinks(ctx context.Context) ([]domain.SocialLink, error) {
	query := `
	SELECT id, platform, url, icon
	FROM social_links
	ORDER BY created_at
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query social_links: %w", err)
	}

	defer rows.Close()

	var links []domain.SocialLink
	for rows.Next() {
		var l domain.SocialLink
		var iconName string

		if err := rows.Scan(&l.ID, &l.Platform, &l.URL, &iconName); err != nil {
			return nil, err
		}

		l.Icon = icon("social_links", iconName)
		links = append(links, l)
	}

	return links, rows.Err()
}

func (r *ContentRepository) GetContactInfo(ctx context.Context) (*domain.ContactInfo, error) {
	query := `
	SELECT id, email, phone, phone_2
	FROM contact_info
	ORDER BY created_at DESC
	LIMIT 1
	`

	var contact domain.ContactInfo
	var phone2 sql.NullString

	err := r.db.QueryRowContext(ctx, query).Scan(&contact.ID, &contact.Email, &contact.Phone, &phone2)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("contact_info: %w", domain.ErrNotFound)
		}

		return nil, fmt.Errorf("failed to query contact_info: %w", err)
	}

	contact.Phone2 = phone2.String

	return &contact, nil
}

func (r *ContentRepository) ListOtherServices(ctx context.Context) ([]domain.OtherService, error) {
	query := `
	SELECT id, title, title_ta, description, description_ta, icon
	FROM other_services
	ORDER BY created_at ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query other_services: %w", err)
	}

	defer rows.Close()

	var services []domain.OtherService
	for rows.Next() {
		var s domain.OtherService
		var title, description, iconName string
		var titleTa, descriptionTa sql.NullString

		if err := rows.Scan(&s.ID, &title, &titleTa, &description, &descriptionTa, &iconName); err != nil {
			return nil, err
		}

		s.Title = localized(title, titleTa)
		s.Description = localized(description, descriptionTa)
		s.Icon = icon("other_services", iconName)
		services = append(services, s)
	}

	return services, rows.Err()
}
