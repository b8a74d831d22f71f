package utils

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestIsValidInput(t *testing.T) {
	testCases := []struct {
		input    string
		expected bool
	}{
		{"go", true},
		{"gopher", true},
		{"", false},
		{"Go", false},
		{"123", false},
		{"go-lang", false},
		{"go lang", false},
		{"über", false},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			if got := IsValidInput(tc.input); got != tc.expected {
				t.Errorf("IsValidInput(%q): expected %v, got %v", tc.input, tc.expected, got)
			}
		})
	}
}

func TestFormatWithCommas(t *testing.T) {
	testCases := []struct {
		n        int
		expected string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{123456, "123,456"},
		{1234567, "1,234,567"},
		{-1234, "-1,234"},
	}

	for _, tc := range testCases {
		if got := FormatWithCommas(tc.n); got != tc.expected {
			t.Errorf("FormatWithCommas(%d): expected '%s', got '%s'", tc.n, tc.expected, got)
		}
	}
}

func TestNormalizeWord(t *testing.T) {
	if got := NormalizeWord("  GoPher\t"); got != "gopher" {
		t.Errorf("expected 'gopher', got '%s'", got)
	}
}

func TestCreateRankList(t *testing.T) {
	if diff := cmp.Diff([]uint16{1, 2, 3}, CreateRankList(3)); diff != "" {
		t.Errorf("CreateRankList mismatch (-want +got):\n%s", diff)
	}
	if got := CreateRankList(0); len(got) != 0 {
		t.Errorf("expected empty list, got %v", got)
	}
}

func TestTOMLRoundTripAndRecovery(t *testing.T) {
	type section struct {
		Limit int    `toml:"limit"`
		Name  string `toml:"name"`
	}
	type doc struct {
		Main section `toml:"main"`
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "conf.toml")
	if err := SaveTOMLFile(doc{Main: section{Limit: 7, Name: "words.txt"}}, path); err != nil {
		t.Fatalf("SaveTOMLFile failed: %v", err)
	}

	var loaded doc
	if err := LoadTOMLFile(path, &loaded); err != nil {
		t.Fatalf("LoadTOMLFile failed: %v", err)
	}
	if loaded.Main.Limit != 7 || loaded.Main.Name != "words.txt" {
		t.Errorf("unexpected decoded value: %+v", loaded)
	}

	// mistyped value fails struct decoding but survives the generic parse
	os.WriteFile(path, []byte("[main]\nlimit = \"seven\"\nname = \"other.txt\"\n"), 0644)
	if err := LoadTOMLFile(path, &loaded); err == nil {
		t.Errorf("expected a decode error for a mistyped value")
	}
	raw, err := ParseTOMLWithRecovery(path)
	if err != nil {
		t.Fatalf("ParseTOMLWithRecovery failed: %v", err)
	}
	sec, ok := ExtractSection(raw, "main")
	if !ok {
		t.Fatalf("expected section 'main'")
	}
	if _, ok := ExtractInt64(sec, "limit"); ok {
		t.Errorf("limit should not extract as an integer")
	}
	if name, ok := ExtractString(sec, "name"); !ok || name != "other.txt" {
		t.Errorf("expected name 'other.txt', got %q (%v)", name, ok)
	}
}

func TestCheckDirStatus(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "config")
	result := CheckDirStatus(dir)
	if !result.Exists || !result.Writable || result.Error != nil {
		t.Errorf("expected a created writable dir, got %+v", result)
	}
	if FileExists(filepath.Join(dir, ".write_test")) {
		t.Errorf("write probe was not cleaned up")
	}
}

func TestGetDataDir(t *testing.T) {
	pr, err := NewPathResolver()
	if err != nil {
		t.Fatalf("NewPathResolver failed: %v", err)
	}

	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, "words.txt"), []byte("go\n"), 0644)

	if got := pr.GetDataDir(dir, "words.txt"); got != dir {
		t.Errorf("expected %s, got %s", dir, got)
	}

	missing := pr.GetDataDir(dir, "absent.txt")
	if missing != filepath.Join(pr.executableDir, dir) {
		t.Errorf("expected the executable relative fallback, got %s", missing)
	}
}

func TestConfigDirSharedWithResolver(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("XDG_CONFIG_HOME only applies on linux")
	}
	base := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", base)

	want := filepath.Join(base, "wordvocab")
	if got := ConfigDir(); got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
	pr, err := NewPathResolver()
	if err != nil {
		t.Fatalf("NewPathResolver failed: %v", err)
	}
	if pr.configDir != want {
		t.Errorf("resolver config dir %s differs from %s", pr.configDir, want)
	}
}
