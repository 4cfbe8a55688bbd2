package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/srgjo27/epic_events/internal/core/domain"
	"github.com/srgjo27/epic_events/internal/core/ports/mocks"
	"github.com/srgjo27/epic_events/internal/core/services"
)

func expectPage(repo *mocks.ContentRepository, localizedTimes int) {
	tamil := "விளையாட்டு"

	repo.On("GetHero", mock.Anything).Return(&domain.HeroContent{
		ID:    uuid.New(),
		Title: domain.NewLocalizedText("Epic Events", &tamil),
	}, nil).Times(localizedTimes)
	repo.On("ListGames", mock.Anything).Return([]domain.GameOffering{game("Racing")}, nil).Times(localizedTimes)
	repo.On("ListCategories", mock.Anything).Return(nil, nil).Times(localizedTimes)
	repo.On("GetFooter", mock.Anything).Return(&domain.FooterContent{ID: uuid.New()}, nil).Times(localizedTimes)
	repo.On("ListOtherServices", mock.Anything).Return(nil, nil).Times(localizedTimes)

	repo.On("ListGalleryEvents", mock.Anything).Return(nil, nil).Once()
	repo.On("ListSocialLinks", mock.Anything).Return(nil, nil).Once()
	repo.On("GetContactInfo", mock.Anything).Return(nil, errors.New("no rows")).Once()
}

func TestContentService_ListsNeverNil(t *testing.T) {
	mockRepo := mocks.NewContentRepository(t)
	mockRepo.On("ListGalleryEvents", mock.Anything).Return(nil, nil).Once()

	svc := services.NewContentService(mockRepo)
	f := svc.GalleryFetcher()
	f.Start(context.Background())

	res := f.Wait(waitCtx(t))

	assert.Equal(t, domain.FetchReady, res.Status)
	assert.NotNil(t, res.Data)
	assert.Empty(t, res.Data)
}

func TestContentService_FindGame(t *testing.T) {
	mockRepo := mocks.NewContentRepository(t)
	racing := game("Racing")
	mockRepo.On("ListGames", mock.Anything).Return([]domain.GameOffering{game("VR"), racing}, nil)

	svc := services.NewContentService(mockRepo)

	found, err := svc.FindGame(context.Background(), racing.ID.String())
	require.NoError(t, err)
	assert.Equal(t, racing.ID, found.ID)

	_, err = svc.FindGame(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPageView_MountResolvesEverySection(t *testing.T) {
	mockRepo := mocks.NewContentRepository(t)
	expectPage(mockRepo, 1)

	page := services.NewContentService(mockRepo).NewPageView()
	page.Mount(context.Background(), nil)
	defer page.Unmount()

	require.True(t, page.Wait(waitCtx(t)))
	assert.False(t, page.Loading())

	assert.True(t, page.Hero.Result().Ready())
	assert.True(t, page.Contact.Result().Failed())
	assert.Equal(t, domain.FetchReady, page.Categories.Status())
	assert.NotNil(t, page.Categories.Result().Data)

	assert.False(t, page.BookingSection().Loading())
}

func TestPageView_RefetchesLocalizedSectionsOnLanguageChange(t *testing.T) {
	mockRepo := mocks.NewContentRepository(t)
	expectPage(mockRepo, 2)

	manager := services.NewSessionManager(mocks.NewBookingRepository(t), nil, time.Minute)
	session := manager.Create()

	page := services.NewContentService(mockRepo).NewPageView()
	page.Mount(context.Background(), session)
	require.True(t, page.Wait(waitCtx(t)))

	session.SetLanguage(domain.LanguageTamil)
	require.True(t, page.Wait(waitCtx(t)))

	page.Unmount()

	// no further reads once the page is gone
	session.SetLanguage(domain.LanguageEnglish)
	mockRepo.AssertNumberOfCalls(t, "GetHero", 2)
}
