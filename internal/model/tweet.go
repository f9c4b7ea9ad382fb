package model

import "time"

// Tweet is a short text post owned by its author.
type Tweet struct {
	ID     string `gorm:"primaryKey;type:varchar(36)"`
	UserID string `gorm:"type:varchar(36);index:idx_tweet_author;not null"`
	Body   string `gorm:"type:text;not null"`
	// Score is the insertion instant in nanoseconds; feeds sort on updated_at
	// and fall back to it so equal timestamps keep insertion order.
	Score     int64     `gorm:"index:idx_tweet_author_score"`
	CreatedAt time.Time
	UpdatedAt time.Time `gorm:"index:idx_tweet_updated"`
}

func (Tweet) TableName() string { return "tweets" }

// TweetItem is a tweet joined with its author's public profile fields.
// The credential hash is not reachable from this projection.
type TweetItem struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Body      string    `json:"body"`
	Email     string    `json:"email"`
	ImageURL  string    `json:"image_url"`
	UpdatedAt time.Time `json:"updated_at"`
}
