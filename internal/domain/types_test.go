package domain

import "testing"

func TestIdentityKey(t *testing.T) {
	tests := []struct {
		name string
		task Task
		want string
	}{
		{"url wins", Task{Title: "t", URL: "https://example.com/1"}, "https://example.com/1"},
		{"title fallback", Task{Title: "draft item"}, "draft item"},
		{"both empty", Task{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.task.IdentityKey(); got != tt.want {
				t.Errorf("IdentityKey() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidateSource(t *testing.T) {
	if err := ValidateSource("GitHub"); err != nil {
		t.Errorf("GitHub should be valid: %v", err)
	}
	if err := ValidateSource("手動"); err != nil {
		t.Errorf("手動 should be valid: %v", err)
	}
	if err := ValidateSource("email"); err == nil {
		t.Error("email should be invalid")
	}
}

func TestValidateProjectType(t *testing.T) {
	for _, valid := range []string{"受託", "自社", "個人"} {
		if err := ValidateProjectType(valid); err != nil {
			t.Errorf("%s should be valid: %v", valid, err)
		}
	}
	if err := ValidateProjectType("botique"); err == nil {
		t.Error("unknown type should be invalid")
	}
}

func TestConfigurationErrorMessage(t *testing.T) {
	err := &ConfigurationError{Key: "GITHUB_TOKEN", Remediation: "Set it."}
	want := "configuration error: GITHUB_TOKEN is not set. Set it."
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
