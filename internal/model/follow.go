package model

import (
	"time"
)

// Follow is a directed edge: follower follows following.
type Follow struct {
	ID          string `gorm:"primaryKey;type:varchar(36)"`
	FollowerID  string `gorm:"type:varchar(36);index:idx_follow_follower;index:idx_follow_pair,unique;not null"`
	FollowingID string `gorm:"type:varchar(36);not null;index:idx_follow_following;index:idx_follow_pair,unique"`
	// idx_follow_pair = (follower_id, following_id): an edge exists at most once
	// per direction, duplicates fail at the constraint.
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Follow) TableName() string { return "follows" }
