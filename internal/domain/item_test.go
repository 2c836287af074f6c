package domain

import "testing"

func TestParseItemStatus(t *testing.T) {
	tests := []struct {
		in   string
		want ItemStatus
	}{
		{"Active", ItemStatusActive},
		{"Sold", ItemStatusSold},
		{"Reserved", ItemStatusReserved},
		{"", ItemStatusActive},
		{"garbage", ItemStatusActive},
	}
	for _, tt := range tests {
		if got := ParseItemStatus(tt.in); got != tt.want {
			t.Errorf("ParseItemStatus(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestAvatarURL(t *testing.T) {
	key := "avatar/1/abc"
	tests := []struct {
		name string
		user User
		want string
	}{
		{"with image", User{CoverImage: &key}, "https://cdn.example.com/avatar/1/abc"},
		{"nil image", User{}, ""},
		{"empty image", User{CoverImage: new(string)}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.user.AvatarURL("cdn.example.com"); got != tt.want {
				t.Errorf("AvatarURL = %q, want %q", got, tt.want)
			}
		})
	}
}
