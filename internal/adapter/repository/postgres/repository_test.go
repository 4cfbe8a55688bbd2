package postgres_test

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srgjo27/epic_events/internal/adapter/repository/postgres"
	"github.com/srgjo27/epic_events/internal/core/domain"
)

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})

	return db, mock
}

func TestCreateBookingRequest_Success(t *testing.T) {
	db, mock := newMock(t)
	repo := postgres.NewBookingRepository(db)

	people := 12
	slot := "evening"
	req := &domain.BookingRequest{
		Name:            "Kavin",
		Email:           "kavin@example.com",
		Phone:           "0771234567",
		Date:            "2026-12-20",
		EventType:       domain.EventCorporate,
		SelectedGameIDs: []uuid.UUID{uuid.New()},
		NumberOfPeople:  &people,
		TimeSlot:        &slot,
	}

	id := uuid.New()
	createdAt := time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO booking_requests")).
		WithArgs("Kavin", "kavin@example.com", "0771234567", "2026-12-20", "corporate",
			nil, sqlmock.AnyArg(), int64(12), "evening").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(id.String(), createdAt))

	err := repo.CreateBookingRequest(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, id, req.ID)
	assert.Equal(t, createdAt, req.CreatedAt)
}

func TestCreateBookingRequest_Fail(t *testing.T) {
	db, mock := newMock(t)
	repo := postgres.NewBookingRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO booking_requests")).
		WillReturnError(errors.New("permission denied"))

	err := repo.CreateBookingRequest(context.Background(), &domain.BookingRequest{EventType: domain.EventOther})

	assert.ErrorContains(t, err, "permission denied")
}

func TestMarkNotified_NotFound(t *testing.T) {
	db, mock := newMock(t)
	repo := postgres.NewBookingRepository(db)

	id := uuid.New()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE booking_requests")).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.MarkNotified(context.Background(), id)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListGames_MapsTranslationsAndCategory(t *testing.T) {
	db, mock := newMock(t)
	repo := postgres.NewContentRepository(db)

	withTa, withoutTa := uuid.New(), uuid.New()
	category := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta("FROM basic_game_cards")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "name_ta", "description", "description_ta", "image", "category_id"}).
			AddRow(withTa.String(), "Racing", "பந்தயம்", "Fast cars", nil, "racing.jpg", category.String()).
			AddRow(withoutTa.String(), "VR Arena", nil, "", nil, "vr.jpg", nil))

	games, err := repo.ListGames(context.Background())

	require.NoError(t, err)
	require.Len(t, games, 2)

	require.NotNil(t, games[0].Name.Secondary)
	assert.Equal(t, "பந்தயம்", *games[0].Name.Secondary)
	assert.Nil(t, games[0].Description.Secondary)
	require.NotNil(t, games[0].CategoryID)
	assert.Equal(t, category, *games[0].CategoryID)

	assert.Equal(t, "VR Arena", games[1].Name.Primary)
	assert.Nil(t, games[1].Name.Secondary)
	assert.Nil(t, games[1].CategoryID)
}

func TestListSocialLinks_UnknownIcon(t *testing.T) {
	db, mock := newMock(t)
	repo := postgres.NewContentRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM social_links")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "platform", "url", "icon"}).
			AddRow(uuid.NewString(), "Facebook", "https://facebook.com/epic", "Facebook").
			AddRow(uuid.NewString(), "TikTok", "https://tiktok.com/@epic", "tiktok"))

	links, err := repo.ListSocialLinks(context.Background())

	require.NoError(t, err)
	require.Len(t, links, 2)
	assert.Equal(t, domain.IconFacebook, links[0].Icon)
	assert.Equal(t, domain.IconUnknown, links[1].Icon)
}

func TestGetHero_NoRows(t *testing.T) {
	db, mock := newMock(t)
	repo := postgres.NewContentRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM hero_content")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "title_ta", "subtitle", "subtitle_ta", "background_image"}))

	hero, err := repo.GetHero(context.Background())

	assert.Nil(t, hero)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetContactInfo_SecondPhoneOptional(t *testing.T) {
	db, mock := newMock(t)
	repo := postgres.NewContentRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM contact_info")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "phone", "phone_2"}).
			AddRow(uuid.NewString(), "hello@epic.lk", "0771234567", nil))

	contact, err := repo.GetContactInfo(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "hello@epic.lk", contact.Email)
	assert.Empty(t, contact.Phone2)
}

func TestListGalleryEvents_QueryError(t *testing.T) {
	db, mock := newMock(t)
	repo := postgres.NewContentRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM events")).WillReturnError(sql.ErrConnDone)

	_, err := repo.ListGalleryEvents(context.Background())

	assert.ErrorIs(t, err, sql.ErrConnDone)
}
