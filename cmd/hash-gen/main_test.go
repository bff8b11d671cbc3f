package main

import (
	"strings"
	"testing"
)

func TestResolvePassword(t *testing.T) {
	if got := resolvePassword(nil); got != "Press.Room-82" {
		t.Fatalf("unexpected default password: %s", got)
	}
	if got := resolvePassword([]string{"abc"}); got != "abc" {
		t.Fatalf("unexpected arg password: %s", got)
	}
}

func TestGenerateHash(t *testing.T) {
	hash, err := generateHash("my-pass")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hash == "" {
		t.Fatal("expected non-empty hash")
	}
}

func TestMain_PrintsHash(t *testing.T) {
	var out strings.Builder
	origPrintf := printfFn
	origGen := generateHashFn
	defer func() {
		printfFn = origPrintf
		generateHashFn = origGen
	}()

	printfFn = func(format string, a ...any) (int, error) {
		out.WriteString(format)
		return 0, nil
	}
	generateHashFn = func(password string) (string, error) {
		if password != "Press.Room-82" {
			t.Fatalf("unexpected password: %s", password)
		}
		return "hashed", nil
	}

	main()

	if !strings.Contains(out.String(), "Bcrypt Hash") {
		t.Fatalf("expected hash output, got %q", out.String())
	}
}
