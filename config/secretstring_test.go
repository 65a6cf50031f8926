package config

import (
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	yaml "gopkg.in/yaml.v3"
)

func TestSecretString(t *testing.T) {
	tests := []struct {
		name     string
		input    SecretString
		wantJSON any
		wantYAML string
		wantText string
	}{
		{"empty", "", nil, "null", ""},
		{"password", "hunter2", SecretStringValue, SecretStringValue, SecretStringValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// encoder may escape angle brackets, compare decoded value
			data, err := json.Marshal(tt.input)
			if err != nil {
				t.Fatalf("json.Marshal() error = %v", err)
			}
			var got any
			if err := json.Unmarshal(data, &got); err != nil {
				t.Fatalf("json.Unmarshal(%s) error = %v", data, err)
			}
			if got != tt.wantJSON {
				t.Errorf("json = %s, decoded %v, want %v", data, got, tt.wantJSON)
			}

			data, err = yaml.Marshal(tt.input)
			if err != nil {
				t.Fatalf("yaml.Marshal() error = %v", err)
			}
			if got := strings.TrimSpace(string(data)); got != tt.wantYAML {
				t.Errorf("yaml = %q, want %q", got, tt.wantYAML)
			}

			if got := tt.input.String(); got != tt.wantText {
				t.Errorf("String() = %q, want %q", got, tt.wantText)
			}
		})
	}
}

func TestSecretString_InStruct(t *testing.T) {
	type userinfo struct {
		User string       `json:"user" yaml:"user"`
		Pass SecretString `json:"pass" yaml:"pass"`
	}
	in := userinfo{User: "bob", Pass: "hunter2"}

	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	if strings.Contains(string(data), "hunter2") {
		t.Errorf("secret leaked into json: %s", data)
	}

	data, err = yaml.Marshal(in)
	if err != nil {
		t.Fatalf("yaml.Marshal() error = %v", err)
	}
	if strings.Contains(string(data), "hunter2") {
		t.Errorf("secret leaked into yaml: %s", data)
	}
}
