package handler

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"

	"hostelhub/internal/microservices/http-api/dto"
	"hostelhub/internal/microservices/http-api/middleware"
	"hostelhub/internal/microservices/http-api/models"
	"hostelhub/internal/shared"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
)

type MockVotingService struct {
	mock.Mock
}

func (m *MockVotingService) OpenWindow(ctx context.Context, hostelID string, week, durationDays int, adminID string) (*dto.VotingWindowResponse, error) {
	args := m.Called(ctx, hostelID, week, durationDays, adminID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.VotingWindowResponse), args.Error(1)
}

func (m *MockVotingService) CloseWindow(ctx context.Context, hostelID string, week int, adminID string) (*dto.VotingWindowResponse, error) {
	args := m.Called(ctx, hostelID, week, adminID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.VotingWindowResponse), args.Error(1)
}

func (m *MockVotingService) GetStatus(ctx context.Context, hostelID string, week int) (*dto.VotingStatusResponse, error) {
	args := m.Called(ctx, hostelID, week)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.VotingStatusResponse), args.Error(1)
}

func (m *MockVotingService) IsOpen(ctx context.Context, hostelID string, week int) (bool, error) {
	args := m.Called(ctx, hostelID, week)
	return args.Bool(0), args.Error(1)
}

func (m *MockVotingService) Results(ctx context.Context, hostelID string, week int) (*dto.VotingResultsResponse, error) {
	args := m.Called(ctx, hostelID, week)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.VotingResultsResponse), args.Error(1)
}

type MockVoteService struct {
	mock.Mock
}

func (m *MockVoteService) SubmitVotes(ctx context.Context, hostelID, userID string, week int, votes dto.VoteSelection) (*dto.SubmitVotesResponse, error) {
	args := m.Called(ctx, hostelID, userID, week, votes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.SubmitVotesResponse), args.Error(1)
}

func (m *MockVoteService) HasVoted(ctx context.Context, hostelID, userID string, week int) (bool, error) {
	args := m.Called(ctx, hostelID, userID, week)
	return args.Bool(0), args.Error(1)
}

type MockMenuService struct {
	mock.Mock
}

func (m *MockMenuService) GenerateMenu(ctx context.Context, hostelID string) (*dto.GenerateMenuResponse, error) {
	args := m.Called(ctx, hostelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.GenerateMenuResponse), args.Error(1)
}

func (m *MockMenuService) PreviewMenu(ctx context.Context, hostelID string) (*dto.MessMenuResponse, error) {
	args := m.Called(ctx, hostelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.MessMenuResponse), args.Error(1)
}

func (m *MockMenuService) PublishMenu(ctx context.Context, hostelID string, week int) (*dto.MessMenuResponse, error) {
	args := m.Called(ctx, hostelID, week)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.MessMenuResponse), args.Error(1)
}

func (m *MockMenuService) CurrentMenu(ctx context.Context, hostelID string) (*dto.MessMenuResponse, error) {
	args := m.Called(ctx, hostelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.MessMenuResponse), args.Error(1)
}

func (m *MockMenuService) MenuByWeek(ctx context.Context, hostelID string, week int) (*dto.MessMenuResponse, error) {
	args := m.Called(ctx, hostelID, week)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.MessMenuResponse), args.Error(1)
}

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

type MockDishService struct {
	mock.Mock
}

func (m *MockDishService) SuggestDish(ctx context.Context, hostelID, userID string, req dto.SuggestDishRequest) (*dto.DishResponse, error) {
	args := m.Called(ctx, hostelID, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.DishResponse), args.Error(1)
}

func (m *MockDishService) ListDishes(ctx context.Context, hostelID string, status string) ([]dto.DishResponse, error) {
	args := m.Called(ctx, hostelID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.DishResponse), args.Error(1)
}

func (m *MockDishService) ApproveDish(ctx context.Context, hostelID, dishID, adminID string, priceScore, healthScore int) (*dto.DishResponse, error) {
	args := m.Called(ctx, hostelID, dishID, adminID, priceScore, healthScore)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.DishResponse), args.Error(1)
}

func (m *MockDishService) RejectDish(ctx context.Context, hostelID, dishID, adminID, reason string) (*dto.DishResponse, error) {
	args := m.Called(ctx, hostelID, dishID, adminID, reason)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.DishResponse), args.Error(1)
}

type MockReviewService struct {
	mock.Mock
}

func (m *MockReviewService) SubmitReview(ctx context.Context, hostelID, studentID string, req dto.SubmitReviewRequest) (*dto.ReviewResponse, error) {
	args := m.Called(ctx, hostelID, studentID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ReviewResponse), args.Error(1)
}

func (m *MockReviewService) ListReviews(ctx context.Context, hostelID string, query dto.ReviewQuery) (*dto.ReviewListResponse, error) {
	args := m.Called(ctx, hostelID, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ReviewListResponse), args.Error(1)
}

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*dto.AuthResponse, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AuthResponse), args.Error(1)
}

func (m *MockAuthService) ValidateToken(tokenString string) (*shared.AuthClaims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shared.AuthClaims), args.Error(1)
}

// --- SETUP ---

const testHostelID = "hostel-1"

func adminClaims() shared.AuthClaims {
	return shared.AuthClaims{UserID: "admin-1", Email: "admin@hostel.test", Role: models.RoleAdmin, HostelID: testHostelID}
}

func studentClaims() shared.AuthClaims {
	return shared.AuthClaims{UserID: "student-1", Email: "student@hostel.test", Role: models.RoleStudent, HostelID: testHostelID}
}

// mockAuthMiddleware stands in for token validation.
func mockAuthMiddleware(claims shared.AuthClaims) gin.HandlerFunc {
	return func(c *gin.Context) {
		middleware.SetClaims(c, claims)
		c.Next()
	}
}

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

// setupRouterWithAuth mounts register under /api behind the fake identity.
func setupRouterWithAuth(claims shared.AuthClaims, register func(*gin.RouterGroup)) *gin.Engine {
	router := setupRouter()
	api := router.Group("/api", mockAuthMiddleware(claims))
	register(api)
	return router
}

func performRequest(router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
