package auth

import "testing"

func TestTokenRoundTrip(t *testing.T) {
	m := NewManager("test-secret")

	token, err := m.CreateToken(42)
	if err != nil {
		t.Fatalf("CreateToken() error = %v", err)
	}

	userID, err := m.VerifyToken(token)
	if err != nil {
		t.Fatalf("VerifyToken() error = %v", err)
	}
	if userID != 42 {
		t.Errorf("VerifyToken() userID = %d, want 42", userID)
	}
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	token, err := NewManager("secret-a").CreateToken(1)
	if err != nil {
		t.Fatalf("CreateToken() error = %v", err)
	}

	if _, err := NewManager("secret-b").VerifyToken(token); err == nil {
		t.Error("VerifyToken() with wrong secret succeeded, want error")
	}
}

func TestVerifyToken_Garbage(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"not a jwt", "hello"},
		{"truncated", "eyJhbGciOiJIUzI1NiJ9.e30"},
	}

	m := NewManager("test-secret")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := m.VerifyToken(tt.token); err == nil {
				t.Errorf("VerifyToken(%q) succeeded, want error", tt.token)
			}
		})
	}
}

func TestPasswordHash(t *testing.T) {
	hash, err := HashPassword("hunter2")
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if hash == "hunter2" {
		t.Fatal("HashPassword() returned the plaintext")
	}
	if !CheckPassword(hash, "hunter2") {
		t.Error("CheckPassword() rejected the correct password")
	}
	if CheckPassword(hash, "hunter3") {
		t.Error("CheckPassword() accepted a wrong password")
	}
}
