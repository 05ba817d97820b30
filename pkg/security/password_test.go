package security

import (
	"strings"
	"testing"

	"github.com/oohdesk/oohdesk-backend/pkg/config"
)

func testParams() config.PasswordConfig {
	// Small parameters keep the test fast; production values come from env.
	return config.PasswordConfig{
		ArgonMemoryKB:    8,
		ArgonTime:        1,
		ArgonParallelism: 1,
		ArgonSaltLen:     8,
		ArgonKeyLen:      16,
	}
}

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-pass", testParams())
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if !strings.HasPrefix(hash, "$argon2id$") {
		t.Fatalf("unexpected hash format %q", hash)
	}

	ok, err := VerifyPassword("s3cret-pass", hash)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if !ok {
		t.Fatalf("expected password to verify")
	}

	ok, err = VerifyPassword("wrong", hash)
	if err != nil {
		t.Fatalf("verify wrong: %v", err)
	}
	if ok {
		t.Fatalf("expected mismatch to fail")
	}
}

func TestVerifyPasswordRejectsMalformedHash(t *testing.T) {
	if _, err := VerifyPassword("pw", "not-a-hash"); err != ErrInvalidHash {
		t.Fatalf("expected ErrInvalidHash, got %v", err)
	}
}

func TestVerifyPasswordRejectsZeroedParams(t *testing.T) {
	hash, err := HashPassword("s3cret-pass", testParams())
	if err != nil {
		t.Fatalf("hash: %v", err)
	}

	// Zeroed cost parameters in a stored hash would make argon2.IDKey panic.
	cases := map[string]string{
		"zero time":    strings.Replace(hash, "t=1", "t=0", 1),
		"zero memory":  strings.Replace(hash, "m=8", "m=0", 1),
		"zero threads": strings.Replace(hash, "p=1", "p=0", 1),
	}
	for name, tampered := range cases {
		if _, err := VerifyPassword("s3cret-pass", tampered); err != ErrInvalidHash {
			t.Fatalf("%s: expected ErrInvalidHash, got %v", name, err)
		}
	}
}

func TestHashPasswordRejectsEmpty(t *testing.T) {
	if _, err := HashPassword("", testParams()); err == nil {
		t.Fatalf("expected error for empty password")
	}
}
