package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"hostelhub/internal/metrics"
	"hostelhub/internal/microservices/http-api/dto"
	"hostelhub/internal/microservices/http-api/models"
	"hostelhub/internal/microservices/http-api/repository"
)

// MenuCache holds the published menu per hostel. Implementations swallow their
// own failures; a miss falls back to the database.
type MenuCache interface {
	GetPublished(ctx context.Context, hostelID string) (*dto.MessMenuResponse, bool)
	SetPublished(ctx context.Context, hostelID string, menu *dto.MessMenuResponse)
	InvalidatePublished(ctx context.Context, hostelID string)
}

type noopMenuCache struct{}

func (noopMenuCache) GetPublished(context.Context, string) (*dto.MessMenuResponse, bool) {
	return nil, false
}
func (noopMenuCache) SetPublished(context.Context, string, *dto.MessMenuResponse) {}
func (noopMenuCache) InvalidatePublished(context.Context, string) {}

type MenuService interface {
	GenerateMenu(ctx context.Context, hostelID string) (*dto.GenerateMenuResponse, error)
	PreviewMenu(ctx context.Context, hostelID string) (*dto.MessMenuResponse, error)
	// PublishMenu publishes the latest draft, or the draft for week when week > 0.
	PublishMenu(ctx context.Context, hostelID string, week int) (*dto.MessMenuResponse, error)
	CurrentMenu(ctx context.Context, hostelID string) (*dto.MessMenuResponse, error)
	MenuByWeek(ctx context.Context, hostelID string, week int) (*dto.MessMenuResponse, error)
}

type menuService struct {
	windowRepo repository.VotingWindowRepository
	menuRepo   repository.MessMenuRepository
	recService RecommendationService
	builder    MenuBuilder
	cache      MenuCache
	logger     *slog.Logger
	now        func() time.Time
}

func NewMenuService(
	windowRepo repository.VotingWindowRepository,
	menuRepo repository.MessMenuRepository,
	recService RecommendationService,
	builder MenuBuilder,
	cache MenuCache,
) MenuService {
	if cache == nil {
		cache = noopMenuCache{}
	}
	return &menuService{
		windowRepo: windowRepo,
		menuRepo:   menuRepo,
		recService: recService,
		builder:    builder,
		cache:      cache,
		logger:     slog.Default(),
		now:        time.Now,
	}
}

// GenerateMenu runs recompute and build for the week of the hostel's latest
// window. Steps already completed are not rolled back when a later one fails.
func (s *menuService) GenerateMenu(ctx context.Context, hostelID string) (*dto.GenerateMenuResponse, error) {
	w, err := s.windowRepo.Latest(ctx, hostelID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNoWindow
		}
		return nil, fmt.Errorf("find latest voting window: %w", err)
	}

	if EvaluateWindow(w, s.now()).IsOpen() {
		return nil, ErrVotingStillOpen
	}

	exists, err := s.menuRepo.ExistsForWeek(ctx, hostelID, w.Week)
	if err != nil {
		return nil, fmt.Errorf("check existing menu: %w", err)
	}
	if exists {
		return nil, ErrMenuExists
	}

	if _, err := s.recService.ComputeRecommendations(ctx, hostelID); err != nil {
		return nil, err
	}

	menu, err := s.builder.BuildMenu(ctx, hostelID, w.Week)
	if err != nil {
		return nil, err
	}

	// expired but never read through status
	if w.IsActive {
		if err := s.windowRepo.Deactivate(ctx, w.ID); err != nil {
			return nil, fmt.Errorf("deactivate voting window: %w", err)
		}
	}

	s.logger.Info("menu generated", "hostel_id", hostelID, "week", w.Week, "menu_id", menu.ID)
	return &dto.GenerateMenuResponse{
		Message: "Mess menu generated successfully",
		MenuID:  menu.ID,
		Week:    w.Week,
	}, nil
}

func (s *menuService) PreviewMenu(ctx context.Context, hostelID string) (*dto.MessMenuResponse, error) {
	menu, err := s.menuRepo.LatestDraft(ctx, hostelID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrMenuNotFound
		}
		return nil, fmt.Errorf("load draft menu: %w", err)
	}
	return toMenuResponse(menu), nil
}

func (s *menuService) PublishMenu(ctx context.Context, hostelID string, week int) (*dto.MessMenuResponse, error) {
	if week < 0 {
		return nil, ErrInvalidWeek
	}

	published, err := s.menuRepo.Publish(ctx, hostelID, week, s.now())
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNoDraftMenu
		}
		return nil, fmt.Errorf("publish menu: %w", err)
	}
	s.cache.InvalidatePublished(ctx, hostelID)

	metrics.MenusPublished.Inc()
	s.logger.Info("menu published", "hostel_id", hostelID, "week", published.Week, "menu_id", published.ID)

	menu, err := s.menuRepo.PublishedByWeek(ctx, hostelID, published.Week)
	if err != nil {
		return nil, fmt.Errorf("reload published menu: %w", err)
	}
	return toMenuResponse(menu), nil
}

// CurrentMenu returns the latest published menu, served from cache when possible.
func (s *menuService) CurrentMenu(ctx context.Context, hostelID string) (*dto.MessMenuResponse, error) {
	if cached, ok := s.cache.GetPublished(ctx, hostelID); ok {
		metrics.MenuCacheLookups.WithLabelValues("hit").Inc()
		return cached, nil
	}
	metrics.MenuCacheLookups.WithLabelValues("miss").Inc()

	menu, err := s.menuRepo.LatestPublished(ctx, hostelID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrMenuNotFound
		}
		return nil, fmt.Errorf("load published menu: %w", err)
	}

	resp := toMenuResponse(menu)
	s.cache.SetPublished(ctx, hostelID, resp)
	return resp, nil
}

func (s *menuService) MenuByWeek(ctx context.Context, hostelID string, week int) (*dto.MessMenuResponse, error) {
	if week <= 0 {
		return nil, ErrInvalidWeek
	}
	menu, err := s.menuRepo.PublishedByWeek(ctx, hostelID, week)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrMenuNotFound
		}
		return nil, fmt.Errorf("load menu: %w", err)
	}
	return toMenuResponse(menu), nil
}

func toMenuResponse(menu *models.MessMenu) *dto.MessMenuResponse {
	return &dto.MessMenuResponse{
		ID:          menu.ID,
		Week:        menu.Week,
		Breakfast:   toMenuItems(menu.ItemsFor(models.SlotBreakfast)),
		Lunch:       toMenuItems(menu.ItemsFor(models.SlotLunch)),
		Dinner:      toMenuItems(menu.ItemsFor(models.SlotDinner)),
		GeneratedAt: menu.GeneratedAt,
		Published:   menu.Published,
		PublishedAt: menu.PublishedAt,
	}
}

func toMenuItems(items []models.MessMenuItem) []dto.MenuItemResponse {
	out := make([]dto.MenuItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, dto.MenuItemResponse{
			DishID:   item.DishID,
			Name:     item.Dish.Name,
			Category: item.Dish.Category,
			Score:    item.Score,
		})
	}
	return out
}
