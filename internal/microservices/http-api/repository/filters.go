package repository

import (
	"strings"

	"creatorhub/internal/microservices/http-api/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Page is a resolved offset/limit window.
type Page struct {
	Offset int
	Limit  int
}

func (p Page) scope(db *gorm.DB) *gorm.DB {
	if p.Limit > 0 {
		db = db.Limit(p.Limit)
	}
	return db.Offset(p.Offset)
}

// containsTag matches rows whose JSON array column holds tag.
func containsTag(db *gorm.DB, column, tag string) *gorm.DB {
	tag = strings.ToLower(strings.TrimSpace(tag))
	if tag == "" {
		return db
	}
	return db.Where(datatypes.JSONArrayQuery(column).Contains(tag))
}

// nameLike is a case-insensitive substring match.
func nameLike(db *gorm.DB, column, search string) *gorm.DB {
	search = strings.TrimSpace(search)
	if search == "" {
		return db
	}
	return db.Where("LOWER("+column+") LIKE ?", "%"+strings.ToLower(search)+"%")
}

// ratedAtLeast keeps users whose received ratings average at least min.
// A minimum of zero or less matches everyone, including unrated users.
func ratedAtLeast(db *gorm.DB, column string, min *float64) *gorm.DB {
	if min == nil || *min <= 0 {
		return db
	}
	sub := db.Session(&gorm.Session{NewDB: true}).
		Model(&models.Rating{}).
		Select("to_user_id").
		Group("to_user_id").
		Having("AVG(score) >= ?", *min)
	return db.Where(column+" IN (?)", sub)
}
