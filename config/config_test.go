package config

import "testing"

func TestGetString(t *testing.T) {
	c := map[string]string{"PORT": "9090", "EMPTY": ""}

	if got := GetString(c, "PORT", "8080"); got != "9090" {
		t.Errorf("GetString(PORT) = %q, want 9090", got)
	}
	if got := GetString(c, "EMPTY", "fallback"); got != "" {
		t.Errorf("present-but-empty key must win over the default, got %q", got)
	}
	if got := GetString(c, "MISSING", "fallback"); got != "fallback" {
		t.Errorf("GetString(MISSING) = %q, want fallback", got)
	}
	if got := GetString(nil, "PORT", "8080"); got != "8080" {
		t.Errorf("nil config must yield the default, got %q", got)
	}
}

func TestGetInt(t *testing.T) {
	c := map[string]string{"TIMEOUT": "30", "JUNK": "thirty"}

	if got := GetInt(c, "TIMEOUT", 180); got != 30 {
		t.Errorf("GetInt(TIMEOUT) = %d, want 30", got)
	}
	if got := GetInt(c, "JUNK", 180); got != 180 {
		t.Errorf("unparseable value must yield the default, got %d", got)
	}
	if got := GetInt(c, "MISSING", 180); got != 180 {
		t.Errorf("GetInt(MISSING) = %d, want 180", got)
	}
}

func TestGetBool(t *testing.T) {
	c := map[string]string{"ON": "true", "OFF": "0", "JUNK": "maybe"}

	if !GetBool(c, "ON", false) {
		t.Error("GetBool(ON) = false, want true")
	}
	if GetBool(c, "OFF", true) {
		t.Error("GetBool(OFF) = true, want false")
	}
	if !GetBool(c, "JUNK", true) {
		t.Error("unparseable value must yield the default")
	}
	if !GetBool(c, "MISSING", true) {
		t.Error("GetBool(MISSING) must yield the default")
	}
}
