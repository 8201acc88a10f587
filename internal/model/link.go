package model

import "time"

type Link struct {
	ID    string `gorm:"primaryKey" json:"id"`
	Title string `gorm:"not null" json:"title"`
	URL   string `gorm:"not null" json:"url"`

	// Owner of the link. Never serialized, listing is already scoped
	// to the authenticated user
	UserID string `gorm:"index;not null" json:"-"`

	CreatedAt time.Time `json:"createdAt"`
}
