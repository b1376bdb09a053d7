package models

import (
	"time"
)

// Follower is a directed follow edge between two users. Self-loops are
// rejected by validation before this row is ever written.
type Follower struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	FollowerID uint      `gorm:"not null;index;uniqueIndex:idx_follower_followee" json:"followerId"`
	Follower   User      `gorm:"foreignKey:FollowerID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"follower"`
	FolloweeID uint      `gorm:"not null;index;uniqueIndex:idx_follower_followee" json:"followeeId"`
	Followee   User      `gorm:"foreignKey:FolloweeID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"followee"`
	CreatedAt  time.Time `json:"createdAt"`
}
