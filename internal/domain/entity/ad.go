package entity

import "time"

// Ad is a classified advertisement owned by the user who created it.
type Ad struct {
	ID          int64
	Title       string
	Description string
	Date        time.Time // Creation timestamp, set once.
	AuthorID    int64     // References User.ID, immutable after creation.
}

// IsOwnedBy reports whether userID authored the ad.
func (a *Ad) IsOwnedBy(userID int64) bool {
	return a.AuthorID == userID
}
