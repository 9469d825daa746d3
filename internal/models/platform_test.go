package models

import "testing"

func TestParsePlatform_ValidValues(t *testing.T) {
	valid := []string{"Instagram", "LinkedIn", "Facebook", "TikTok", "Offline"}
	for _, s := range valid {
		got, err := ParsePlatform(s)
		if err != nil {
			t.Errorf("ParsePlatform(%q) returned unexpected error: %v", s, err)
		}
		if string(got) != s {
			t.Errorf("ParsePlatform(%q) = %q, want %q", s, got, s)
		}
	}
}

func TestParsePlatform_InvalidValue(t *testing.T) {
	if _, err := ParsePlatform("MySpace"); err == nil {
		t.Error("ParsePlatform(\"MySpace\") expected error, got nil")
	}
	if _, err := ParsePlatform(""); err == nil {
		t.Error("ParsePlatform(\"\") expected error, got nil")
	}
	if _, err := ParsePlatform("instagram"); err == nil {
		t.Error("ParsePlatform(\"instagram\") expected error, got nil (values are case sensitive)")
	}
}
