package walker

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

// writeTree creates files (slash-separated relative paths) under a temp dir.
func writeTree(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return root
}

func relPaths(files []FileInfo) []string {
	out := make([]string, len(files))
	for i, f := range files {
		out[i] = f.RelPath
	}
	return out
}

func TestMatch_Basic(t *testing.T) {
	root := writeTree(t, map[string]string{
		"main.go":            "package main",
		"README.md":          "# readme",
		"auth/middleware.go": "package auth",
	})

	files, err := Match(Config{RootDir: root, Include: []string{"*.go"}})
	if err != nil {
		t.Fatalf("Match() error: %v", err)
	}

	want := []string{"auth/middleware.go", "main.go"}
	if got := relPaths(files); !reflect.DeepEqual(got, want) {
		t.Errorf("Match() = %v, want %v", got, want)
	}
}

func TestMatch_FileInfoFields(t *testing.T) {
	root := writeTree(t, map[string]string{"data/blob.bin": "12345"})

	files, err := Match(Config{RootDir: root, Include: []string{"data/*.bin"}})
	if err != nil {
		t.Fatalf("Match() error: %v", err)
	}
	if len(files) != 1 {
		t.Fatalf("expected 1 file, got %d", len(files))
	}
	f := files[0]
	if f.Size != 5 {
		t.Errorf("Size = %d, want 5", f.Size)
	}
	if !filepath.IsAbs(f.Path) {
		t.Errorf("Path %q should be absolute", f.Path)
	}
	if f.RelPath != "data/blob.bin" {
		t.Errorf("RelPath = %q", f.RelPath)
	}
}

func TestMatch_DoubleStarAndExclude(t *testing.T) {
	root := writeTree(t, map[string]string{
		"a/b/c/deep.txt": "x",
		"a/skip.txt":     "x",
		"top.txt":        "x",
	})

	files, err := Match(Config{
		RootDir: root,
		Include: []string{"a/**/*.txt"},
		Exclude: []string{"skip.txt"},
	})
	if err != nil {
		t.Fatalf("Match() error: %v", err)
	}
	want := []string{"a/b/c/deep.txt"}
	if got := relPaths(files); !reflect.DeepEqual(got, want) {
		t.Errorf("Match() = %v, want %v", got, want)
	}
}

func TestMatch_DefaultExcludeDirs(t *testing.T) {
	root := writeTree(t, map[string]string{
		"node_modules/lib.js": "x",
		".git/config.js":      "x",
		"vendor/dep.js":       "x",
		"app.js":              "const x = 1;",
	})

	files, err := Match(Config{RootDir: root, Include: []string{"**/*.js"}})
	if err != nil {
		t.Fatalf("Match() error: %v", err)
	}
	want := []string{"app.js"}
	if got := relPaths(files); !reflect.DeepEqual(got, want) {
		t.Errorf("Match() = %v, want %v", got, want)
	}
}

func TestMatch_Gitignore(t *testing.T) {
	root := writeTree(t, map[string]string{
		".gitignore":   "*.log\nsecret.txt\nout/\n",
		"app.txt":      "ok",
		"debug.log":    "log data",
		"secret.txt":   "password",
		"out/gen.txt":  "generated",
		"keep/out.txt": "kept",
	})

	files, err := Match(Config{RootDir: root, Include: []string{"**"}})
	if err != nil {
		t.Fatalf("Match() error: %v", err)
	}
	want := []string{".gitignore", "app.txt", "keep/out.txt"}
	if got := relPaths(files); !reflect.DeepEqual(got, want) {
		t.Errorf("Match() = %v, want %v", got, want)
	}
}

func TestMatch_Errors(t *testing.T) {
	if _, err := Match(Config{RootDir: t.TempDir()}); err == nil {
		t.Error("expected error without patterns")
	}
	if _, err := Match(Config{RootDir: t.TempDir(), Include: []string{"[unclosed"}}); err == nil {
		t.Error("expected error for invalid pattern")
	}
}

// --- Filter tests ---

func TestMatchesInclude_Empty(t *testing.T) {
	if !MatchesInclude("anything.go", nil) {
		t.Error("empty include patterns should include everything")
	}
}

func TestMatchesInclude_Pattern(t *testing.T) {
	if !MatchesInclude("main.go", []string{"*.go"}) {
		t.Error("*.go should match main.go")
	}
	if MatchesInclude("main.py", []string{"*.go"}) {
		t.Error("*.go should not match main.py")
	}
}

func TestMatchesExclude_Empty(t *testing.T) {
	if MatchesExclude("anything.go", nil) {
		t.Error("empty exclude patterns should exclude nothing")
	}
}

func TestMatchesExclude_Pattern(t *testing.T) {
	if !MatchesExclude("logs/debug.log", []string{"*.log"}) {
		t.Error("*.log should match logs/debug.log by base name")
	}
	if MatchesExclude("main.go", []string{"*.log"}) {
		t.Error("*.log should not match main.go")
	}
}

func TestMatchesInclude_SlashPatternIsAnchored(t *testing.T) {
	if MatchesInclude("x/data/a.bin", []string{"data/*.bin"}) {
		t.Error("data/*.bin should not match x/data/a.bin")
	}
	if !MatchesInclude("src/auth/middleware.go", []string{"**/*.go"}) {
		t.Error("**/*.go should match src/auth/middleware.go")
	}
}
