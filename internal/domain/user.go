package domain

import "time"

type User struct {
	ID          int64
	Name        string
	PhoneNumber string
	CoverImage  *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// AvatarURL resolves the user's cover image against the CDN domain.
// Returns the empty string when no image is set.
func (u *User) AvatarURL(cdnDomain string) string {
	if u.CoverImage == nil || *u.CoverImage == "" {
		return ""
	}
	return "https://" + cdnDomain + "/" + *u.CoverImage
}

type RefreshToken struct {
	ID        int64
	UserID    int64
	Token     string
	CreatedAt time.Time
}
