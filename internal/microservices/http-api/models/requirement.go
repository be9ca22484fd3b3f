package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type RequirementStatus string

const (
	RequirementOpen   RequirementStatus = "open"
	RequirementClosed RequirementStatus = "closed"
	RequirementPaused RequirementStatus = "paused"
)

func ParseRequirementStatus(s string) (RequirementStatus, error) {
	switch st := RequirementStatus(strings.ToLower(strings.TrimSpace(s))); st {
	case RequirementOpen, RequirementClosed, RequirementPaused:
		return st, nil
	default:
		return "", fmt.Errorf("invalid status %q: must be one of open, closed, paused", s)
	}
}

// Requirement is a campaign brief posted by a brand user.
type Requirement struct {
	ID                string                      `gorm:"primaryKey;size:36" json:"id"`
	BrandID           string                      `gorm:"size:36;not null;index" json:"brandId"`
	Title             string                      `gorm:"size:200;not null" json:"title"`
	Description       string                      `gorm:"type:text" json:"description"`
	Niches            datatypes.JSONSlice[string] `json:"niches"`
	MinFollowers      int64                       `gorm:"not null;default:0;index" json:"minFollowers"`
	MinEngagementRate float64                     `gorm:"not null;default:0" json:"minEngagementRate"`
	BudgetMin         decimal.NullDecimal         `gorm:"type:numeric(12,2)" json:"budgetMin"`
	BudgetMax         decimal.NullDecimal         `gorm:"type:numeric(12,2)" json:"budgetMax"`
	Status            RequirementStatus           `gorm:"size:16;not null;default:open;index" json:"status"`
	CreatedAt         time.Time                   `json:"createdAt"`
	UpdatedAt         time.Time                   `json:"updatedAt"`

	Brand *User `gorm:"foreignKey:BrandID;constraint:OnDelete:CASCADE;" json:"-"`
}

func (r *Requirement) BeforeCreate(tx *gorm.DB) (err error) {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	return
}

func (Requirement) TableName() string {
	return "requirements"
}
