package normalize

import (
	"testing"
)

func TestKey_Table(t *testing.T) {
	tests := []struct {
		name string
		in   string
		out  string
	}{
		{name: "empty", in: "", out: ""},
		{name: "already lower", in: "myrepo", out: "myrepo"},
		{name: "mixed case", in: "MyRepo", out: "myrepo"},
		{name: "upper", in: "MYREPO", out: "myrepo"},
		{name: "whitespace kept", in: " My Repo ", out: " my repo "},
		{name: "separators kept", in: "My_Repo-Name.go", out: "my_repo-name.go"},
		{name: "non ascii", in: "ÜBER-Repo", out: "über-repo"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Key(tt.in); got != tt.out {
				t.Fatalf("Key(%q) = %q, want %q", tt.in, got, tt.out)
			}
		})
	}
}

func TestKey_CaseVariantsCollide(t *testing.T) {
	a, b, c := Key("MyRepo"), Key("myrepo"), Key("MYREPO")
	if a != b || b != c {
		t.Fatalf("variants differ: %q %q %q", a, b, c)
	}
}

func TestKey_Idempotent(t *testing.T) {
	for _, s := range []string{"MyRepo", "ÜBER", "a-B_c"} {
		once := Key(s)
		if twice := Key(once); twice != once {
			t.Fatalf("Key not idempotent for %q: %q then %q", s, once, twice)
		}
	}
}

func TestKey_SeparatorsStayDistinct(t *testing.T) {
	if Key("my-repo") == Key("my_repo") {
		t.Fatalf("separator variants must not collide")
	}
	if Key("repo") == Key("repo ") {
		t.Fatalf("trailing space must not be trimmed")
	}
}

func TestNormalizer_Adapter(t *testing.T) {
	if got := New().Normalize("ABC"); got != "abc" {
		t.Fatalf("Normalize = %q", got)
	}
}
