package models

import "time"

// Rating is unique per ordered (FromUserID, ToUserID) pair.
type Rating struct {
	ID         int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	FromUserID string    `json:"fromUserId" gorm:"size:36;not null;uniqueIndex:idx_ratings_pair"`
	ToUserID   string    `json:"toUserId" gorm:"size:36;not null;uniqueIndex:idx_ratings_pair;index"`
	Score      int       `json:"score" gorm:"not null;check:score >= 1 AND score <= 5"`
	CreatedAt  time.Time `json:"createdAt" gorm:"autoCreateTime"`
	UpdatedAt  time.Time `json:"updatedAt" gorm:"autoUpdateTime"`

	// Associations
	FromUser *User `json:"-" gorm:"foreignKey:FromUserID;constraint:OnDelete:CASCADE;"`
	ToUser   *User `json:"-" gorm:"foreignKey:ToUserID;constraint:OnDelete:CASCADE;"`
}

func (Rating) TableName() string {
	return "ratings"
}
