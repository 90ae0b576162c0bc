package repository

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"hostelhub/internal/microservices/http-api/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a private in-memory sqlite database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// one connection keeps the shared in-memory database free of table locks
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&models.Hostel{},
		&models.User{},
		&models.Dish{},
		&models.VotingWindow{},
		&models.Vote{},
		&models.VoteBallot{},
		&models.MealReview{},
		&models.MenuRecommendation{},
		&models.MessMenu{},
		&models.MessMenuItem{},
	))
	return db
}

func intPtr(v int) *int { return &v }

func seedDish(t *testing.T, db *gorm.DB, hostelID, name string, meal models.MealType, status models.DishStatus) *models.Dish {
	t.Helper()
	dish := &models.Dish{
		HostelID: hostelID,
		Name:     name,
		MealType: meal,
		Category: "veg",
		Status:   status,
	}
	require.NoError(t, db.Create(dish).Error)
	return dish
}

var baseTime = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
