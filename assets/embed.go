package assets

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed *.yaml
var assetsFS embed.FS

// LoadFile reads an asset by assets-relative path, preferring the working
// tree copy so sounds can be tuned without a rebuild.
func LoadFile(path string) ([]byte, error) {
	clean := cleanAssetPath(path)
	if clean == "" {
		return nil, fmt.Errorf("assets: empty path")
	}
	if b, err := os.ReadFile(filepath.Join("assets", filepath.FromSlash(clean))); err == nil {
		return b, nil
	}
	return assetsFS.ReadFile(clean)
}

// LoadTones reads the cue table.
func LoadTones() (map[string]Tone, error) {
	b, err := LoadFile("cues.yaml")
	if err != nil {
		return nil, fmt.Errorf("assets: load cues.yaml: %w", err)
	}
	var tones map[string]Tone
	if err := yaml.Unmarshal(b, &tones); err != nil {
		return nil, fmt.Errorf("assets: unmarshal cues.yaml: %w", err)
	}
	for name, t := range tones {
		if err := t.Validate(); err != nil {
			return nil, fmt.Errorf("assets: cue %q: %w", name, err)
		}
	}
	return tones, nil
}

func cleanAssetPath(path string) string {
	if path == "" {
		return ""
	}
	if filepath.IsAbs(path) {
		s := filepath.ToSlash(path)
		if idx := strings.LastIndex(s, "/assets/"); idx >= 0 {
			return s[idx+len("/assets/"):]
		}
		return filepath.Base(path)
	}
	s := filepath.ToSlash(path)
	if strings.HasPrefix(s, "assets/") {
		return strings.TrimPrefix(s, "assets/")
	}
	return s
}
