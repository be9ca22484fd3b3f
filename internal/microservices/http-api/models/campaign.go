package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CampaignStatus string

const (
	CampaignPending  CampaignStatus = "pending"
	CampaignAccepted CampaignStatus = "accepted"
	CampaignDeclined CampaignStatus = "declined"
)

// ParseCampaignDecision only accepts the statuses a creator may set.
func ParseCampaignDecision(s string) (CampaignStatus, error) {
	switch st := CampaignStatus(strings.ToLower(strings.TrimSpace(s))); st {
	case CampaignAccepted, CampaignDeclined:
		return st, nil
	default:
		return "", fmt.Errorf("invalid status %q: must be accepted or declined", s)
	}
}

// Campaign is a brand-initiated offer sent to one creator.
type Campaign struct {
	ID          string          `gorm:"primaryKey;size:36" json:"id"`
	BrandID     string          `gorm:"size:36;not null;index" json:"brandId"`
	CreatorID   string          `gorm:"size:36;not null;index" json:"creatorId"`
	Title       string          `gorm:"size:200;not null" json:"title"`
	Description string          `gorm:"type:text" json:"description"`
	Budget      decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"budget"`
	Status      CampaignStatus  `gorm:"size:16;not null;default:pending;index" json:"status"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`

	Brand   *User `gorm:"foreignKey:BrandID;constraint:OnDelete:CASCADE;" json:"-"`
	Creator *User `gorm:"foreignKey:CreatorID;constraint:OnDelete:CASCADE;" json:"-"`
}

func (c *Campaign) BeforeCreate(tx *gorm.DB) (err error) {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return
}

func (Campaign) TableName() string {
	return "campaigns"
}
