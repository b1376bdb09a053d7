package models

import (
	"time"
)

// Bookmark joins a user to an article. The composite unique index is what
// makes concurrent find-or-create calls collapse to a single row.
type Bookmark struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index;uniqueIndex:idx_user_article" json:"userId"`
	ArticleID uint      `gorm:"not null;index;uniqueIndex:idx_user_article" json:"articleId"`
	Article   Article   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"article"`
	CreatedAt time.Time `json:"createdAt"`
}
