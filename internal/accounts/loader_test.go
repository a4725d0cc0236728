package accounts

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadCredentialsPreservesOrder(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "data.txt")

	content := "token-a\r\n\n   \ntoken-b\ntoken-c  \n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	creds, err := LoadCredentials(path)
	if err != nil {
		t.Fatalf("Failed to load credentials: %v", err)
	}

	if len(creds) != 3 {
		t.Fatalf("Expected 3 credentials, got %d", len(creds))
	}

	for i, want := range []string{"token-a", "token-b", "token-c"} {
		if creds[i].Token != want {
			t.Errorf("Credential %d: expected %q, got %q", i, want, creds[i].Token)
		}
		if creds[i].Index != i+1 {
			t.Errorf("Credential %d: expected index %d, got %d", i, i+1, creds[i].Index)
		}
	}
}

func TestLoadCredentialsMissingFile(t *testing.T) {
	_, err := LoadCredentials(filepath.Join(t.TempDir(), "missing.txt"))
	if err == nil {
		t.Fatal("Expected error for missing file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected os.ErrNotExist in chain, got %v", err)
	}
}

func TestReadCredentialsLongLine(t *testing.T) {
	long := strings.Repeat("x", 200*1024)

	creds, err := ReadCredentials(strings.NewReader(long + "\n"))
	if err != nil {
		t.Fatalf("Failed to read long line: %v", err)
	}
	if len(creds) != 1 || len(creds[0].Token) != len(long) {
		t.Errorf("Expected one %d-byte token, got %d credentials", len(long), len(creds))
	}
}

func TestReadCredentialsEmpty(t *testing.T) {
	creds, err := ReadCredentials(strings.NewReader("\n\n"))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(creds) != 0 {
		t.Errorf("Expected no credentials, got %d", len(creds))
	}
}
