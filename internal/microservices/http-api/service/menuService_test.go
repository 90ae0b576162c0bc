package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"hostelhub/internal/microservices/http-api/dto"
	"hostelhub/internal/microservices/http-api/models"
	"hostelhub/internal/microservices/http-api/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type menuServiceMocks struct {
	windowRepo *MockVotingWindowRepository
	menuRepo   *MockMessMenuRepository
	recService *MockRecommendationService
	builder    *MockMenuBuilder
	cache      *MockMenuCache
}

func newTestMenuService() (*menuService, *menuServiceMocks) {
	m := &menuServiceMocks{
		windowRepo: new(MockVotingWindowRepository),
		menuRepo:   new(MockMessMenuRepository),
		recService: new(MockRecommendationService),
		builder:    new(MockMenuBuilder),
		cache:      new(MockMenuCache),
	}
	svc := NewMenuService(m.windowRepo, m.menuRepo, m.recService, m.builder, m.cache).(*menuService)
	svc.now = fixedClock(testNow)
	return svc, m
}

func closedWindow(active bool) *models.VotingWindow {
	return &models.VotingWindow{
		ID:       "w-1",
		HostelID: "hostel-1",
		Week:     5,
		IsActive: active,
		StartsAt: testNow.Add(-72 * time.Hour),
		EndsAt:   testNow.Add(-time.Hour),
	}
}

func TestGenerateMenu_NoWindow(t *testing.T) {
	svc, m := newTestMenuService()
	ctx := context.Background()
	m.windowRepo.On("Latest", ctx, "hostel-1").Return(nil, repository.ErrNotFound)

	_, err := svc.GenerateMenu(ctx, "hostel-1")

	assert.ErrorIs(t, err, ErrNoWindow)
}

func TestGenerateMenu_VotingStillOpen(t *testing.T) {
	svc, m := newTestMenuService()
	ctx := context.Background()
	open := &models.VotingWindow{ID: "w-1", Week: 5, IsActive: true, StartsAt: testNow.Add(-time.Hour), EndsAt: testNow.Add(time.Hour)}
	m.windowRepo.On("Latest", ctx, "hostel-1").Return(open, nil)

	_, err := svc.GenerateMenu(ctx, "hostel-1")

	assert.ErrorIs(t, err, ErrVotingStillOpen)
	m.recService.AssertNotCalled(t, "ComputeRecommendations", mock.Anything, mock.Anything)
}

func TestGenerateMenu_MenuExists(t *testing.T) {
	svc, m := newTestMenuService()
	ctx := context.Background()
	m.windowRepo.On("Latest", ctx, "hostel-1").Return(closedWindow(false), nil)
	m.menuRepo.On("ExistsForWeek", ctx, "hostel-1", 5).Return(true, nil)

	_, err := svc.GenerateMenu(ctx, "hostel-1")

	assert.ErrorIs(t, err, ErrMenuExists)
	m.recService.AssertNotCalled(t, "ComputeRecommendations", mock.Anything, mock.Anything)
}

func TestGenerateMenu_FlipsExpiredWindow(t *testing.T) {
	svc, m := newTestMenuService()
	ctx := context.Background()
	m.windowRepo.On("Latest", ctx, "hostel-1").Return(closedWindow(true), nil)
	m.menuRepo.On("ExistsForWeek", ctx, "hostel-1", 5).Return(false, nil)
	m.recService.On("ComputeRecommendations", ctx, "hostel-1").Return(30, nil)
	m.builder.On("BuildMenu", ctx, "hostel-1", 5).Return(&models.MessMenu{ID: "menu-1", Week: 5}, nil)
	m.windowRepo.On("Deactivate", ctx, "w-1").Return(nil)

	resp, err := svc.GenerateMenu(ctx, "hostel-1")

	require.NoError(t, err)
	assert.Equal(t, "menu-1", resp.MenuID)
	assert.Equal(t, 5, resp.Week)
	m.windowRepo.AssertExpectations(t)
}

func TestGenerateMenu_ManuallyClosedWindowNotTouched(t *testing.T) {
	svc, m := newTestMenuService()
	ctx := context.Background()
	m.windowRepo.On("Latest", ctx, "hostel-1").Return(closedWindow(false), nil)
	m.menuRepo.On("ExistsForWeek", ctx, "hostel-1", 5).Return(false, nil)
	m.recService.On("ComputeRecommendations", ctx, "hostel-1").Return(30, nil)
	m.builder.On("BuildMenu", ctx, "hostel-1", 5).Return(&models.MessMenu{ID: "menu-1", Week: 5}, nil)

	_, err := svc.GenerateMenu(ctx, "hostel-1")

	require.NoError(t, err)
	m.windowRepo.AssertNotCalled(t, "Deactivate", mock.Anything, mock.Anything)
}

func TestGenerateMenu_BuildFailureKeepsRecompute(t *testing.T) {
	svc, m := newTestMenuService()
	ctx := context.Background()
	m.windowRepo.On("Latest", ctx, "hostel-1").Return(closedWindow(true), nil)
	m.menuRepo.On("ExistsForWeek", ctx, "hostel-1", 5).Return(false, nil)
	m.recService.On("ComputeRecommendations", ctx, "hostel-1").Return(0, nil)
	m.builder.On("BuildMenu", ctx, "hostel-1", 5).Return(nil, ErrNoRecommendations)

	_, err := svc.GenerateMenu(ctx, "hostel-1")

	assert.ErrorIs(t, err, ErrNoRecommendations)
	m.recService.AssertExpectations(t)
	m.windowRepo.AssertNotCalled(t, "Deactivate", mock.Anything, mock.Anything)
}

func TestPreviewMenu(t *testing.T) {
	svc, m := newTestMenuService()
	ctx := context.Background()
	draft := &models.MessMenu{
		ID:   "menu-1",
		Week: 5,
		Items: []models.MessMenuItem{
			{Slot: models.SlotBreakfast, Position: 0, DishID: "d-1", Score: 9, Dish: models.Dish{Name: "Poha"}},
			{Slot: models.SlotDinner, Position: 0, DishID: "d-2", Score: 4, Dish: models.Dish{Name: "Dal"}},
		},
	}
	m.menuRepo.On("LatestDraft", ctx, "hostel-1").Return(draft, nil)

	resp, err := svc.PreviewMenu(ctx, "hostel-1")

	require.NoError(t, err)
	require.Len(t, resp.Breakfast, 1)
	assert.Equal(t, "Poha", resp.Breakfast[0].Name)
	assert.Empty(t, resp.Lunch)
	assert.Equal(t, "Dal", resp.Dinner[0].Name)
	assert.False(t, resp.Published)
}

func TestPreviewMenu_NoDraft(t *testing.T) {
	svc, m := newTestMenuService()
	ctx := context.Background()
	m.menuRepo.On("LatestDraft", ctx, "hostel-1").Return(nil, repository.ErrNotFound)

	_, err := svc.PreviewMenu(ctx, "hostel-1")

	assert.ErrorIs(t, err, ErrMenuNotFound)
}

func TestPublishMenu_OnceThenNotFound(t *testing.T) {
	svc, m := newTestMenuService()
	ctx := context.Background()
	published := &models.MessMenu{ID: "menu-1", Week: 5, Published: true, PublishedAt: &testNow}

	m.menuRepo.On("Publish", ctx, "hostel-1", 0, testNow).Return(published, nil).Once()
	m.menuRepo.On("Publish", ctx, "hostel-1", 0, testNow).Return(nil, repository.ErrNotFound).Once()
	m.menuRepo.On("PublishedByWeek", ctx, "hostel-1", 5).Return(published, nil)
	m.cache.On("InvalidatePublished", ctx, "hostel-1").Return().Once()

	resp, err := svc.PublishMenu(ctx, "hostel-1", 0)
	require.NoError(t, err)
	assert.True(t, resp.Published)

	_, err = svc.PublishMenu(ctx, "hostel-1", 0)
	assert.ErrorIs(t, err, ErrNoDraftMenu)
	m.cache.AssertExpectations(t)
}

func TestCurrentMenu_CacheHit(t *testing.T) {
	svc, m := newTestMenuService()
	ctx := context.Background()
	cached := &dto.MessMenuResponse{ID: "menu-1", Week: 5, Published: true}
	m.cache.On("GetPublished", ctx, "hostel-1").Return(cached, true)

	resp, err := svc.CurrentMenu(ctx, "hostel-1")

	require.NoError(t, err)
	assert.Same(t, cached, resp)
	m.menuRepo.AssertNotCalled(t, "LatestPublished", mock.Anything, mock.Anything)
}

func TestCurrentMenu_CacheMissFillsCache(t *testing.T) {
	svc, m := newTestMenuService()
	ctx := context.Background()
	m.cache.On("GetPublished", ctx, "hostel-1").Return(nil, false)
	m.menuRepo.On("LatestPublished", ctx, "hostel-1").Return(&models.MessMenu{ID: "menu-1", Week: 5, Published: true}, nil)
	m.cache.On("SetPublished", ctx, "hostel-1", mock.AnythingOfType("*dto.MessMenuResponse")).Return()

	resp, err := svc.CurrentMenu(ctx, "hostel-1")

	require.NoError(t, err)
	assert.Equal(t, "menu-1", resp.ID)
	m.cache.AssertExpectations(t)
}

func TestCurrentMenu_NothingPublished(t *testing.T) {
	svc, m := newTestMenuService()
	ctx := context.Background()
	m.cache.On("GetPublished", ctx, "hostel-1").Return(nil, false)
	m.menuRepo.On("LatestPublished", ctx, "hostel-1").Return(nil, repository.ErrNotFound)

	_, err := svc.CurrentMenu(ctx, "hostel-1")

	assert.ErrorIs(t, err, ErrMenuNotFound)
	m.cache.AssertNotCalled(t, "SetPublished", mock.Anything, mock.Anything, mock.Anything)
}

func TestMenuByWeek(t *testing.T) {
	svc, m := newTestMenuService()
	ctx := context.Background()
	m.menuRepo.On("PublishedByWeek", ctx, "hostel-1", 4).Return(nil, repository.ErrNotFound)
	m.menuRepo.On("PublishedByWeek", ctx, "hostel-1", 3).Return(nil, errors.New("db down"))

	_, err := svc.MenuByWeek(ctx, "hostel-1", 4)
	assert.ErrorIs(t, err, ErrMenuNotFound)

	_, err = svc.MenuByWeek(ctx, "hostel-1", 3)
	assert.ErrorContains(t, err, "db down")

	_, err = svc.MenuByWeek(ctx, "hostel-1", 0)
	assert.ErrorIs(t, err, ErrInvalidWeek)
}

func TestNewMenuService_NilCache(t *testing.T) {
	menuRepo := new(MockMessMenuRepository)
	svc := NewMenuService(new(MockVotingWindowRepository), menuRepo, new(MockRecommendationService), new(MockMenuBuilder), nil)
	ctx := context.Background()
	menuRepo.On("LatestPublished", ctx, "hostel-1").Return(&models.MessMenu{ID: "menu-1"}, nil)

	resp, err := svc.CurrentMenu(ctx, "hostel-1")

	require.NoError(t, err)
	assert.Equal(t, "menu-1", resp.ID)
}
