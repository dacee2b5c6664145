package models

import (
	"time"

	"gorm.io/gorm"
)

type Product struct {
	ID          uint     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string   `gorm:"not null" json:"name"`
	Slug        string   `gorm:"uniqueIndex;not null" json:"slug"`
	Description string   `json:"description"`
	Price       float64  `gorm:"not null" json:"price"`
	Quantity    int      `json:"quantity"` // units in stock
	CategoryID  uint     `gorm:"index" json:"category_id"`
	Category    Category `json:"category"`
	CreatedBy   string   `gorm:"index" json:"created_by"` // admin user that owns the listing
	Photo       string   `json:"photo"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
