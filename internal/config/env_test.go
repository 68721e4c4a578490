package config

import (
	"testing"
	"time"
)

func TestStringIntBool(t *testing.T) {
	t.Setenv("PARAMCELL_TEST_STR", "  value  ")
	if got := String("PARAMCELL_TEST_STR", "fallback"); got != "value" {
		t.Fatalf("String: got %q", got)
	}
	if got := String("PARAMCELL_TEST_UNSET", "fallback"); got != "fallback" {
		t.Fatalf("String fallback: got %q", got)
	}

	t.Setenv("PARAMCELL_TEST_INT", "42")
	if got := Int("PARAMCELL_TEST_INT", 7); got != 42 {
		t.Fatalf("Int: got %d", got)
	}
	t.Setenv("PARAMCELL_TEST_INT", "abc")
	if got := Int("PARAMCELL_TEST_INT", 7); got != 7 {
		t.Fatalf("Int fallback: got %d", got)
	}

	t.Setenv("PARAMCELL_TEST_BOOL", "yes")
	if !Bool("PARAMCELL_TEST_BOOL", false) {
		t.Fatalf("Bool yes")
	}
	t.Setenv("PARAMCELL_TEST_BOOL", "0")
	if Bool("PARAMCELL_TEST_BOOL", true) {
		t.Fatalf("Bool 0")
	}
}

func TestTimezone(t *testing.T) {
	fallback := time.FixedZone("fallback", 3600)
	if got := Timezone(fallback); got != fallback {
		t.Fatalf("unset timezone should return fallback")
	}
	t.Setenv(EnvTimezone, "UTC")
	if got := Timezone(fallback); got != time.UTC {
		t.Fatalf("UTC timezone: got %v", got)
	}
	t.Setenv(EnvTimezone, "Not/AZone")
	if got := Timezone(fallback); got != fallback {
		t.Fatalf("unknown timezone should return fallback")
	}
}

func TestDateFormats(t *testing.T) {
	fallback := []string{"2006-01-02"}
	if got := DateFormats(fallback); len(got) != 1 || got[0] != "2006-01-02" {
		t.Fatalf("unset formats: got %v", got)
	}
	t.Setenv(EnvDateFormats, "2006-01-02| 1/2/2006 |")
	got := DateFormats(fallback)
	if len(got) != 2 || got[0] != "2006-01-02" || got[1] != "1/2/2006" {
		t.Fatalf("formats: got %v", got)
	}
}

func TestMissingTokens(t *testing.T) {
	fallback := []string{"NA"}
	if got := MissingTokens(fallback); len(got) != 1 || got[0] != "NA" {
		t.Fatalf("unset tokens: got %v", got)
	}
	t.Setenv(EnvMissingTokens, "NA,,none")
	got := MissingTokens(fallback)
	if len(got) != 3 || got[0] != "NA" || got[1] != "" || got[2] != "none" {
		t.Fatalf("tokens: got %v", got)
	}
}
