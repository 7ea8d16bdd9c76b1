package security

import "testing"

func TestGenerateOTP(t *testing.T) {
	code, err := GenerateOTP()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(code) != 6 {
		t.Fatalf("expected 6-digit code, got %q", code)
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			t.Fatalf("expected numeric code, got %q", code)
		}
	}
}

func TestHashAndCompareOTP(t *testing.T) {
	code, err := GenerateOTP()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	hash, err := HashOTP(code)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if hash == code {
		t.Fatalf("hash must not equal the plaintext code")
	}

	if !CompareOTP(hash, code) {
		t.Fatalf("expected code to match its own hash")
	}
	if CompareOTP(hash, "000000") && code != "000000" {
		t.Fatalf("expected wrong code to fail comparison")
	}
}
