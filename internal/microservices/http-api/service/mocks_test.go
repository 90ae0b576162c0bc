package service

import (
	"context"
	"time"

	"hostelhub/internal/microservices/http-api/dto"
	"hostelhub/internal/microservices/http-api/models"
	"hostelhub/internal/microservices/http-api/repository"
	"hostelhub/internal/shared"

	"github.com/stretchr/testify/mock"
)

// MockVotingWindowRepository mocks the VotingWindowRepository interface
type MockVotingWindowRepository struct {
	mock.Mock
}

func (m *MockVotingWindowRepository) Open(ctx context.Context, w *models.VotingWindow) error {
	args := m.Called(ctx, w)
	return args.Error(0)
}

func (m *MockVotingWindowRepository) FindByWeek(ctx context.Context, hostelID string, week int) (*models.VotingWindow, error) {
	args := m.Called(ctx, hostelID, week)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.VotingWindow), args.Error(1)
}

func (m *MockVotingWindowRepository) FindActiveByWeek(ctx context.Context, hostelID string, week int) (*models.VotingWindow, error) {
	args := m.Called(ctx, hostelID, week)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.VotingWindow), args.Error(1)
}

func (m *MockVotingWindowRepository) Latest(ctx context.Context, hostelID string) (*models.VotingWindow, error) {
	args := m.Called(ctx, hostelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.VotingWindow), args.Error(1)
}

func (m *MockVotingWindowRepository) Deactivate(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockVoteRepository mocks the VoteRepository interface
type MockVoteRepository struct {
	mock.Mock
}

func (m *MockVoteRepository) HasVoted(ctx context.Context, hostelID, userID string, week int) (bool, error) {
	args := m.Called(ctx, hostelID, userID, week)
	return args.Bool(0), args.Error(1)
}

func (m *MockVoteRepository) CreateBatch(ctx context.Context, ballot *models.VoteBallot, votes []models.Vote) error {
	args := m.Called(ctx, ballot, votes)
	return args.Error(0)
}

func (m *MockVoteRepository) CountByDish(ctx context.Context, hostelID string, week int) (map[string]int64, error) {
	args := m.Called(ctx, hostelID, week)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int64), args.Error(1)
}

// MockDishRepository mocks the DishRepository interface
type MockDishRepository struct {
	mock.Mock
}

func (m *MockDishRepository) Create(ctx context.Context, dish *models.Dish) error {
	args := m.Called(ctx, dish)
	return args.Error(0)
}

func (m *MockDishRepository) GetByID(ctx context.Context, hostelID, dishID string) (*models.Dish, error) {
	args := m.Called(ctx, hostelID, dishID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Dish), args.Error(1)
}

func (m *MockDishRepository) FindByName(ctx context.Context, hostelID, name string) (*models.Dish, error) {
	args := m.Called(ctx, hostelID, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Dish), args.Error(1)
}

func (m *MockDishRepository) FindByIDs(ctx context.Context, hostelID string, ids []string) ([]models.Dish, error) {
	args := m.Called(ctx, hostelID, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Dish), args.Error(1)
}

func (m *MockDishRepository) List(ctx context.Context, hostelID string, status models.DishStatus) ([]models.Dish, error) {
	args := m.Called(ctx, hostelID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Dish), args.Error(1)
}

func (m *MockDishRepository) ListActive(ctx context.Context, hostelID string) ([]models.Dish, error) {
	args := m.Called(ctx, hostelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Dish), args.Error(1)
}

func (m *MockDishRepository) CountSuggestedSince(ctx context.Context, userID string, since time.Time) (int64, error) {
	args := m.Called(ctx, userID, since)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDishRepository) Review(ctx context.Context, hostelID, dishID string, updates map[string]any) (*models.Dish, error) {
	args := m.Called(ctx, hostelID, dishID, updates)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Dish), args.Error(1)
}

// MockMealReviewRepository mocks the MealReviewRepository interface
type MockMealReviewRepository struct {
	mock.Mock
}

func (m *MockMealReviewRepository) Create(ctx context.Context, review *models.MealReview) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *MockMealReviewRepository) List(ctx context.Context, hostelID string, filter repository.ReviewFilter) ([]models.MealReview, int64, error) {
	args := m.Called(ctx, hostelID, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.MealReview), args.Get(1).(int64), args.Error(2)
}

func (m *MockMealReviewRepository) FeedbackByDish(ctx context.Context, hostelID string) (map[string]repository.DishFeedback, error) {
	args := m.Called(ctx, hostelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]repository.DishFeedback), args.Error(1)
}

// MockRecommendationRepository mocks the RecommendationRepository interface
type MockRecommendationRepository struct {
	mock.Mock
}

func (m *MockRecommendationRepository) Replace(ctx context.Context, hostelID string, recs []models.MenuRecommendation) error {
	args := m.Called(ctx, hostelID, recs)
	return args.Error(0)
}

func (m *MockRecommendationRepository) ListRanked(ctx context.Context, hostelID string) ([]models.MenuRecommendation, error) {
	args := m.Called(ctx, hostelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MenuRecommendation), args.Error(1)
}

// MockMessMenuRepository mocks the MessMenuRepository interface
type MockMessMenuRepository struct {
	mock.Mock
}

func (m *MockMessMenuRepository) Create(ctx context.Context, menu *models.MessMenu) error {
	args := m.Called(ctx, menu)
	return args.Error(0)
}

func (m *MockMessMenuRepository) ExistsForWeek(ctx context.Context, hostelID string, week int) (bool, error) {
	args := m.Called(ctx, hostelID, week)
	return args.Bool(0), args.Error(1)
}

func (m *MockMessMenuRepository) LatestDraft(ctx context.Context, hostelID string) (*models.MessMenu, error) {
	args := m.Called(ctx, hostelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MessMenu), args.Error(1)
}

func (m *MockMessMenuRepository) LatestPublished(ctx context.Context, hostelID string) (*models.MessMenu, error) {
	args := m.Called(ctx, hostelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MessMenu), args.Error(1)
}

func (m *MockMessMenuRepository) PublishedByWeek(ctx context.Context, hostelID string, week int) (*models.MessMenu, error) {
	args := m.Called(ctx, hostelID, week)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MessMenu), args.Error(1)
}

func (m *MockMessMenuRepository) Publish(ctx context.Context, hostelID string, week int, at time.Time) (*models.MessMenu, error) {
	args := m.Called(ctx, hostelID, week, at)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MessMenu), args.Error(1)
}

// MockUserRepository mocks the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

// MockMenuCache mocks the MenuCache interface
type MockMenuCache struct {
	mock.Mock
}

func (m *MockMenuCache) GetPublished(ctx context.Context, hostelID string) (*dto.MessMenuResponse, bool) {
	args := m.Called(ctx, hostelID)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).(*dto.MessMenuResponse), args.Bool(1)
}

func (m *MockMenuCache) SetPublished(ctx context.Context, hostelID string, menu *dto.MessMenuResponse) {
	m.Called(ctx, hostelID, menu)
}

func (m *MockMenuCache) InvalidatePublished(ctx context.Context, hostelID string) {
	m.Called(ctx, hostelID)
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// MockRecommendationService mocks the RecommendationService interface
type MockRecommendationService struct {
	mock.Mock
}

func (m *MockRecommendationService) ComputeRecommendations(ctx context.Context, hostelID string) (int, error) {
	args := m.Called(ctx, hostelID)
	return args.Int(0), args.Error(1)
}

func (m *MockRecommendationService) Ranked(ctx context.Context, hostelID string) ([]models.MenuRecommendation, error) {
	args := m.Called(ctx, hostelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MenuRecommendation), args.Error(1)
}

// MockMenuBuilder mocks the MenuBuilder interface
type MockMenuBuilder struct {
	mock.Mock
}

func (m *MockMenuBuilder) BuildMenu(ctx context.Context, hostelID string, week int) (*models.MessMenu, error) {
	args := m.Called(ctx, hostelID, week)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MessMenu), args.Error(1)
}

func testClaims() shared.AuthClaims {
	return shared.AuthClaims{UserID: "user-1", Email: "asha@example.com", Role: models.RoleStudent, HostelID: "hostel-1"}
}
