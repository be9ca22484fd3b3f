package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BrandProfile struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	UserID      string    `gorm:"uniqueIndex;size:36;not null" json:"userId"`
	CompanyName string    `gorm:"size:150;not null;index" json:"companyName"`
	Bio         string    `gorm:"type:text" json:"bio"`
	LogoURL     string    `gorm:"size:500" json:"logoUrl"`
	Website     string    `gorm:"size:500" json:"website"`
	Category    string    `gorm:"size:64;index" json:"category"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;" json:"-"`
}

func (p *BrandProfile) BeforeCreate(tx *gorm.DB) (err error) {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return
}

func (BrandProfile) TableName() string {
	return "brand_profiles"
}
