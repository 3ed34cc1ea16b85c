package raw

import (
	"testing"
)

func TestConfGet(t *testing.T) {
	t.Setenv("LOG_LEVEL", " info ")
	t.Setenv("APP_NAME", "repoinventory")

	root := New()
	lg := root.Prefix("LOG_")

	tests := []struct {
		name string
		conf Conf
		key  string
		def  string
		want string
	}{
		{name: "root hit", conf: root, key: "APP_NAME", def: "x", want: "repoinventory"},
		{name: "prefixed hit trims", conf: lg, key: "LEVEL", def: "x", want: "info"},
		{name: "missing returns default", conf: lg, key: "MISSING", def: "defv", want: "defv"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.conf.Get(tt.key, tt.def); got != tt.want {
				t.Fatalf("Get(%q) = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

func TestConfGetBool(t *testing.T) {
	c := New().Prefix("B_")
	cases := map[string]bool{"1": true, "TRUE": true, " yes ": true, "on": true, "0": false, "nope": false}
	for in, want := range cases {
		t.Setenv("B_FLAG", in)
		if got := c.GetBool("FLAG", !want); got != want {
			t.Fatalf("GetBool(%q) = %v, want %v", in, got, want)
		}
	}
	if !c.GetBool("UNSET", true) {
		t.Fatalf("GetBool unset should return default")
	}
}

func TestConfGetInt(t *testing.T) {
	c := New().Prefix("N_")
	t.Setenv("N_OK", " 12 ")
	t.Setenv("N_BAD", "1x")
	t.Setenv("N_NEG", "-3")
	if got := c.GetInt("OK", 0); got != 12 {
		t.Fatalf("GetInt OK = %d, want 12", got)
	}
	if got := c.GetInt("BAD", 7); got != 7 {
		t.Fatalf("GetInt BAD = %d, want 7", got)
	}
	if got := c.GetInt("NEG", 7); got != 7 {
		t.Fatalf("GetInt NEG = %d, want 7", got)
	}
	if got := c.GetInt("UNSET", 3); got != 3 {
		t.Fatalf("GetInt UNSET = %d, want 3", got)
	}
}
