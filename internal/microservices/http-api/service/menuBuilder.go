package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"hostelhub/internal/metrics"
	"hostelhub/internal/microservices/http-api/models"
	"hostelhub/internal/microservices/http-api/repository"
)

// DefaultSlotSize is the number of dishes placed in each meal slot.
const DefaultSlotSize = 7

// Allocator places ranked recommendations into menu slots.
type Allocator interface {
	Allocate(ranked []models.MenuRecommendation) []models.MessMenuItem
}

var menuSlots = []models.MenuSlot{models.SlotBreakfast, models.SlotLunch, models.SlotDinner}

// PositionalAllocator fills breakfast, lunch and dinner in rank order,
// SlotSize dishes each, ignoring the dishes' meal types.
type PositionalAllocator struct {
	SlotSize int
}

func (a PositionalAllocator) Allocate(ranked []models.MenuRecommendation) []models.MessMenuItem {
	size := a.SlotSize
	if size <= 0 {
		size = DefaultSlotSize
	}

	limit := size * len(menuSlots)
	if len(ranked) < limit {
		limit = len(ranked)
	}

	items := make([]models.MessMenuItem, 0, limit)
	for i := 0; i < limit; i++ {
		items = append(items, models.MessMenuItem{
			Slot:     menuSlots[i/size],
			Position: i % size,
			DishID:   ranked[i].DishID,
			Score:    ranked[i].FinalScore,
		})
	}
	return items
}

type MenuBuilder interface {
	BuildMenu(ctx context.Context, hostelID string, week int) (*models.MessMenu, error)
}

type menuBuilder struct {
	recService RecommendationService
	menuRepo   repository.MessMenuRepository
	allocator  Allocator
	logger     *slog.Logger
	now        func() time.Time
}

func NewMenuBuilder(recService RecommendationService, menuRepo repository.MessMenuRepository, allocator Allocator) MenuBuilder {
	if allocator == nil {
		allocator = PositionalAllocator{SlotSize: DefaultSlotSize}
	}
	return &menuBuilder{
		recService: recService,
		menuRepo:   menuRepo,
		allocator:  allocator,
		logger:     slog.Default(),
		now:        time.Now,
	}
}

// BuildMenu writes an unpublished menu for (hostelID, week) from the current
// recommendation snapshot.
func (b *menuBuilder) BuildMenu(ctx context.Context, hostelID string, week int) (*models.MessMenu, error) {
	ranked, err := b.recService.Ranked(ctx, hostelID)
	if err != nil {
		return nil, fmt.Errorf("load recommendations: %w", err)
	}
	if len(ranked) == 0 {
		return nil, ErrNoRecommendations
	}
	sortRanked(ranked)

	menu := &models.MessMenu{
		HostelID:    hostelID,
		Week:        week,
		GeneratedAt: b.now(),
		Published:   false,
		Items:       b.allocator.Allocate(ranked),
	}
	if err := b.menuRepo.Create(ctx, menu); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrMenuExists
		}
		return nil, fmt.Errorf("save menu: %w", err)
	}

	metrics.MenusGenerated.Inc()
	b.logger.Info("menu built", "hostel_id", hostelID, "week", week, "menu_id", menu.ID, "items", len(menu.Items))
	return menu, nil
}

// sortRanked orders by final score descending, dish id ascending on ties.
func sortRanked(recs []models.MenuRecommendation) {
	sort.SliceStable(recs, func(i, j int) bool {
		if recs[i].FinalScore != recs[j].FinalScore {
			return recs[i].FinalScore > recs[j].FinalScore
		}
		return recs[i].DishID < recs[j].DishID
	})
}
