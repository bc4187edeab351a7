package config

import (
	"io"
	"os"
	"testing"
)

func TestInitKeepsStdoutClean(t *testing.T) {
	// No .env in the working directory, the common deployment case.
	t.Chdir(t.TempDir())

	orig := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	os.Stdout = w

	initErr := Init()

	w.Close()
	os.Stdout = orig
	out, _ := io.ReadAll(r)

	if initErr != nil {
		t.Fatalf("Init failed: %v", initErr)
	}
	if len(out) != 0 {
		t.Fatalf("Init wrote %q to stdout; stdout belongs to the scan protocol, notices go to stderr", out)
	}
}

func TestValidateRejectsShortJWTSecret(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("JWT_SECRET", "too-short")

	if err := Init(); err == nil {
		t.Fatalf("Init accepted a JWT secret shorter than 32 characters")
	}
}
