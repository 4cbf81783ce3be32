package auth

import (
	"testing"
	"time"
)

const testSecret = "test-secret"

func TestTokenRoundTrip(t *testing.T) {
	want := SessionClaims{UserID: 42, SessionID: 7}

	token, err := GenerateToken(want, testSecret, time.Now().Add(time.Hour))
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	got, err := ParseToken(token, testSecret)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if got != want {
		t.Errorf("claims = %+v, want %+v", got, want)
	}
}

func TestTokenExpiredRejected(t *testing.T) {
	token, err := GenerateToken(SessionClaims{UserID: 1, SessionID: 1},
		testSecret, time.Now().Add(-time.Minute))
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if _, err := ParseToken(token, testSecret); err == nil {
		t.Error("expired token accepted")
	}
}

func TestTokenWrongSecretRejected(t *testing.T) {
	token, err := GenerateToken(SessionClaims{UserID: 1, SessionID: 1},
		testSecret, time.Now().Add(time.Hour))
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if _, err := ParseToken(token, "other-secret"); err == nil {
		t.Error("token with wrong secret accepted")
	}
}

func TestTokenGarbageRejected(t *testing.T) {
	if _, err := ParseToken("not-a-token", testSecret); err == nil {
		t.Error("garbage token accepted")
	}
}

func TestParseSignOutScope(t *testing.T) {
	cases := []struct {
		in    string
		want  SignOutScope
		valid bool
	}{
		{"", ScopeLocal, true},
		{"local", ScopeLocal, true},
		{"global", ScopeGlobal, true},
		{"everything", ScopeLocal, false},
	}
	for _, tc := range cases {
		got, ok := ParseSignOutScope(tc.in)
		if got != tc.want || ok != tc.valid {
			t.Errorf("ParseSignOutScope(%q) = %s, %v; want %s, %v",
				tc.in, got, ok, tc.want, tc.valid)
		}
	}
}
