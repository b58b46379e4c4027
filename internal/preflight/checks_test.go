package preflight

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestCheckDirectoryAccess(t *testing.T) {
	dir := t.TempDir()
	result := CheckDirectoryAccess("Data directory", dir)
	if !result.Passed {
		t.Fatalf("expected writable temp dir to pass, got %#v", result)
	}
}

func TestCheckDirectoryAccessMissing(t *testing.T) {
	result := CheckDirectoryAccess("Data directory", filepath.Join(t.TempDir(), "absent"))
	if result.Passed {
		t.Fatal("expected missing directory to fail")
	}
	if result.Detail == "" {
		t.Fatal("expected detail message")
	}
}

func TestCheckDirectoryAccessFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	result := CheckDirectoryAccess("Data directory", path)
	if result.Passed {
		t.Fatal("expected regular file to fail the directory check")
	}
}

func TestCheckDirectoryAccessReadOnly(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("mode bits are not meaningful on windows")
	}
	if os.Geteuid() == 0 {
		t.Skip("root bypasses permission checks")
	}
	dir := t.TempDir()
	if err := os.Chmod(dir, 0o555); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		_ = os.Chmod(dir, 0o755)
	})
	result := CheckDirectoryAccess("Data directory", dir)
	if result.Passed {
		t.Fatal("expected read-only directory to fail")
	}
}
