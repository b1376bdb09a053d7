package models

import (
	"time"
)

// Article statuses.
const (
	ArticleStatusDraft       = "draft"
	ArticleStatusActive      = "active"
	ArticleStatusDeactivated = "deactivated"
)

type Article struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	Title         string     `gorm:"not null" json:"title"`
	Description   string     `json:"description"`
	Body          string     `gorm:"type:text" json:"body"`
	Image         string     `json:"image"`
	PublishedDate *time.Time `json:"publishedDate"`
	Status        string     `gorm:"size:20;default:'active';not null" json:"status"`
	Slug          string     `gorm:"uniqueIndex;not null" json:"slug"`
	AuthorID      uint       `gorm:"not null;index" json:"authorId"`
	Author        User       `gorm:"foreignKey:AuthorID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}
