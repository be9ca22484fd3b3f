package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type CreatorProfile struct {
	ID             string                      `gorm:"primaryKey;size:36" json:"id"`
	UserID         string                      `gorm:"uniqueIndex;size:36;not null" json:"userId"`
	DisplayName    string                      `gorm:"size:100;not null;index" json:"displayName"`
	Bio            string                      `gorm:"type:text" json:"bio"`
	AvatarURL      string                      `gorm:"size:500" json:"avatarUrl"`
	Platform       string                      `gorm:"size:32" json:"platform"`
	SocialHandle   string                      `gorm:"size:100" json:"socialHandle"`
	FollowersCount int64                       `gorm:"not null;default:0;index" json:"followersCount"`
	EngagementRate float64                     `gorm:"not null;default:0" json:"engagementRate"`
	Niches         datatypes.JSONSlice[string] `json:"niches"`
	PromotionTypes datatypes.JSONSlice[string] `json:"promotionTypes"`
	CreatedAt      time.Time                   `json:"createdAt"`
	UpdatedAt      time.Time                   `json:"updatedAt"`

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;" json:"-"`
}

func (p *CreatorProfile) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return
}

func (CreatorProfile) TableName() string {
	return "creator_profiles"
}
