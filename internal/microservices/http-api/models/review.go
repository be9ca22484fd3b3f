package models

import "time"

type Review struct {
	ID         int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	FromUserID string    `json:"fromUserId" gorm:"size:36;not null;index"`
	ToUserID   string    `json:"toUserId" gorm:"size:36;not null;index"`
	Content    string    `json:"content" gorm:"not null;type:text"`
	CreatedAt  time.Time `json:"createdAt" gorm:"autoCreateTime"`

	// Associations
	FromUser *User `json:"-" gorm:"foreignKey:FromUserID;constraint:OnDelete:CASCADE;"`
	ToUser   *User `json:"-" gorm:"foreignKey:ToUserID;constraint:OnDelete:CASCADE;"`
}

func (Review) TableName() string {
	return "reviews"
}
