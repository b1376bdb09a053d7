package models

import (
	"time"
)

// Rating stores one 1-5 vote per (user, article) pair; repeated ratings
// update the row in place.
type Rating struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index;uniqueIndex:idx_user_article_rating" json:"userId"`
	ArticleID uint      `gorm:"not null;index;uniqueIndex:idx_user_article_rating" json:"articleId"`
	Ratings   int       `gorm:"not null" json:"ratings"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
