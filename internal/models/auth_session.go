package models

import "time"

// AuthSession is one signed-in browser. Tokens are only honored while
// their session row exists, which is what makes sign-out scoping work:
// local removes this row, global removes every row for the user.
type AuthSession struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time

	UserID uint `gorm:"index;not null"`
	User   User

	UserAgent string `gorm:"size:255"`
	ExpiresAt time.Time
}
