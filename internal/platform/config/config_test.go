package config

import (
	"os"
	"path/filepath"
	"testing"

	kit "repoinventory/internal/platform/testkit"
)

func TestPrefixAndKey(t *testing.T) {
	core := New().Prefix("CORE_")
	if got := core.key("DIR"); got != "CORE_DIR" {
		t.Fatalf("key() = %q, want %q", got, "CORE_DIR")
	}
	nested := core.Prefix("CONSOLIDATE_")
	if got := nested.key("DIR"); got != "CORE_CONSOLIDATE_DIR" {
		t.Fatalf("nested key() = %q, want %q", got, "CORE_CONSOLIDATE_DIR")
	}
}

func TestMayString(t *testing.T) {
	c := New().Prefix("S_")
	t.Setenv("S_SET", " v ")
	t.Setenv("S_BLANK", "   ")
	if got := c.MayString("SET", "d"); got != "v" {
		t.Fatalf("MayString SET = %q", got)
	}
	if got := c.MayString("BLANK", "d"); got != "d" {
		t.Fatalf("MayString BLANK = %q", got)
	}
	if got := c.MayString("UNSET", "d"); got != "d" {
		t.Fatalf("MayString UNSET = %q", got)
	}
}

func TestMayPath(t *testing.T) {
	kit.Serial(t)
	home := t.TempDir()
	kit.Swap(t, &userHomeDir, func() (string, error) { return home, nil })

	c := New().Prefix("P_")
	t.Setenv("P_TILDE", "~/inv/owners.csv")
	t.Setenv("P_ABS", "/data//x/../owners.csv")
	t.Setenv("P_HOME", "~")

	if got, want := c.MayPath("TILDE", ""), filepath.Join(home, "inv", "owners.csv"); got != want {
		t.Fatalf("MayPath TILDE = %q, want %q", got, want)
	}
	if got := c.MayPath("ABS", ""); got != "/data/owners.csv" {
		t.Fatalf("MayPath ABS = %q", got)
	}
	if got := c.MayPath("HOME", ""); got != home {
		t.Fatalf("MayPath HOME = %q, want %q", got, home)
	}
	if got := c.MayPath("UNSET", "rel/./a.csv"); got != "rel/a.csv" {
		t.Fatalf("MayPath default = %q", got)
	}
	if got := c.MayPath("UNSET", ""); got != "" {
		t.Fatalf("MayPath empty default = %q", got)
	}
}

func TestLoadDotenv(t *testing.T) {
	dir := t.TempDir()
	env := filepath.Join(dir, ".env")
	if err := os.WriteFile(env, []byte("DOTENV_A=from-file\nDOTENV_B=from-file\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("DOTENV_B", "from-process")
	t.Cleanup(func() { _ = os.Unsetenv("DOTENV_A") })

	if err := LoadDotenv(filepath.Join(dir, "missing.env"), env); err != nil {
		t.Fatalf("LoadDotenv err: %v", err)
	}
	if got := os.Getenv("DOTENV_A"); got != "from-file" {
		t.Fatalf("DOTENV_A = %q", got)
	}
	if got := os.Getenv("DOTENV_B"); got != "from-process" {
		t.Fatalf("process env must win, DOTENV_B = %q", got)
	}
}
