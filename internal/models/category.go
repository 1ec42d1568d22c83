package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category labels transactions for budgeting purposes
type Category struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	HouseholdID uuid.UUID `gorm:"type:uuid;not null;index" json:"household_id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

func (c *Category) TableName() string {
	return "categories"
}

// Counterparty is the external party of a transaction (merchant, employer, ...)
type Counterparty struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	HouseholdID uuid.UUID `gorm:"type:uuid;not null;index" json:"household_id"`
	Name        string    `gorm:"type:varchar(255);not null" json:"name"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`
}

func (c *Counterparty) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

func (c *Counterparty) TableName() string {
	return "counterparties"
}
