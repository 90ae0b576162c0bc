package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MenuSlot string

const (
	SlotBreakfast MenuSlot = "breakfast"
	SlotLunch     MenuSlot = "lunch"
	SlotDinner    MenuSlot = "dinner"
)

// MessMenu is a generated weekly menu. Published flips false -> true once.
type MessMenu struct {
	ID          string     `json:"id" gorm:"primaryKey;type:uuid"`
	HostelID    string     `json:"hostel_id" gorm:"type:uuid;not null;uniqueIndex:idx_mess_menus_hostel_week"`
	Week        int        `json:"week" gorm:"not null;uniqueIndex:idx_mess_menus_hostel_week"`
	GeneratedAt time.Time  `json:"generated_at" gorm:"not null"`
	Published   bool       `json:"published" gorm:"not null;default:false"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at" gorm:"autoCreateTime"`

	Items []MessMenuItem `json:"items" gorm:"foreignKey:MenuID;constraint:OnDelete:CASCADE;"`
}

func (m *MessMenu) BeforeCreate(tx *gorm.DB) (err error) {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	return
}

func (MessMenu) TableName() string {
	return "mess_menus"
}

// ItemsFor returns the slot's items in stored order.
func (m *MessMenu) ItemsFor(slot MenuSlot) []MessMenuItem {
	var out []MessMenuItem
	for _, item := range m.Items {
		if item.Slot == slot {
			out = append(out, item)
		}
	}
	return out
}

type MessMenuItem struct {
	ID       int64    `json:"-" gorm:"primaryKey;autoIncrement"`
	MenuID   string   `json:"-" gorm:"type:uuid;not null;index"`
	Slot     MenuSlot `json:"slot" gorm:"type:varchar(16);not null"`
	Position int      `json:"position" gorm:"not null"`
	DishID   string   `json:"dish_id" gorm:"type:uuid;not null"`
	Score    float64  `json:"score" gorm:"not null"`

	// Associations
	Dish Dish `json:"dish,omitempty" gorm:"foreignKey:DishID"`
}

func (MessMenuItem) TableName() string {
	return "mess_menu_items"
}
