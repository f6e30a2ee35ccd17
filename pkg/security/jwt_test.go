package security

import "testing"

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("prac-1", "Ana")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.PractitionerID != "prac-1" || claims.PractitionerName != "Ana" {
		t.Fatalf("unexpected claims %+v", claims)
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	if _, err := ValidateToken("not.a.token"); err == nil {
		t.Fatal("expected error for malformed token")
	}
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if !CheckPasswordHash("correct horse battery staple", hash) {
		t.Fatal("expected matching password to verify")
	}
	if CheckPasswordHash("wrong", hash) {
		t.Fatal("expected mismatching password to fail")
	}
}
