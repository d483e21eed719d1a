package env

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFile(t *testing.T) {
	set, err := Load(filepath.Join(t.TempDir(), ".env"))
	if err != nil || set != nil {
		t.Fatalf("Load(missing) = %v, %v", set, err)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := `# tree settings
TREE_COLOR=#112233
export TREE_INTENSITY = 2.5
TREE_LIGHTS_COLOR="#ffeeaa"
TREE_ORNAMENT_COLOR='#C5A059'

not a pair
=novalue
TREE_ROTATION_SPEED=0.5
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	keys := []string{"TREE_COLOR", "TREE_INTENSITY", "TREE_LIGHTS_COLOR", "TREE_ORNAMENT_COLOR", "TREE_ROTATION_SPEED"}
	for _, k := range keys {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
	// Process environment wins over the file.
	t.Setenv("TREE_ROTATION_SPEED", "1.5")

	set, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(set) != 4 {
		t.Errorf("set %v, want 4 keys", set)
	}
	want := map[string]string{
		"TREE_COLOR":          "#112233",
		"TREE_INTENSITY":      "2.5",
		"TREE_LIGHTS_COLOR":   "#ffeeaa",
		"TREE_ORNAMENT_COLOR": "#C5A059",
		"TREE_ROTATION_SPEED": "1.5",
	}
	for k, v := range want {
		if got := os.Getenv(k); got != v {
			t.Errorf("%s = %q, want %q", k, got, v)
		}
	}
}

func TestParseLine(t *testing.T) {
	tests := []struct {
		in         string
		key, value string
		ok         bool
	}{
		{"A=1", "A", "1", true},
		{"  B = two words ", "B", "two words", true},
		{"C=", "C", "", true},
		{`D="x"`, "D", "x", true},
		{`E="`, "E", `"`, true},
		{"# comment", "", "", false},
		{"", "", "", false},
		{"noequals", "", "", false},
		{"=v", "", "", false},
	}
	for _, tt := range tests {
		k, v, ok := parseLine(tt.in)
		if k != tt.key || v != tt.value || ok != tt.ok {
			t.Errorf("parseLine(%q) = %q, %q, %v; want %q, %q, %v", tt.in, k, v, ok, tt.key, tt.value, tt.ok)
		}
	}
}
