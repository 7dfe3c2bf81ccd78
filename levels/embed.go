package levels

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/zeebo/xxh3"
)

const (
	DefaultLevel     = "temple.yaml"
	DefaultQuestions = "questions.yaml"
)

//go:embed *.yaml
var LevelsFS embed.FS

// Source is raw level content plus the fingerprint it was loaded with.
type Source struct {
	Path        string
	Data        []byte
	Fingerprint uint64
}

// Read returns the file at path when it exists on disk, otherwise the
// embedded file with the same base name.
func Read(path string) (Source, error) {
	if path == "" {
		path = DefaultLevel
	}
	if data, err := os.ReadFile(path); err == nil {
		return Source{Path: path, Data: data, Fingerprint: Fingerprint(data)}, nil
	}

	clean := cleanLevelPath(path)
	data, err := LevelsFS.ReadFile(clean)
	if err != nil {
		return Source{}, fmt.Errorf("levels: read %s: %w", path, err)
	}
	return Source{Path: clean, Data: data, Fingerprint: Fingerprint(data)}, nil
}

// Load reads and parses a level.
func Load(path string) (*Level, Source, error) {
	src, err := Read(path)
	if err != nil {
		return nil, Source{}, err
	}
	lvl, err := Parse(src.Data)
	if err != nil {
		return nil, Source{}, fmt.Errorf("levels: parse %s: %w", src.Path, err)
	}
	return lvl, src, nil
}

// LoadBank reads and parses a question bank.
func LoadBank(path string) (*Bank, error) {
	if path == "" {
		path = DefaultQuestions
	}
	src, err := Read(path)
	if err != nil {
		return nil, err
	}
	bank, err := ParseBank(src.Data)
	if err != nil {
		return nil, fmt.Errorf("levels: parse %s: %w", src.Path, err)
	}
	return bank, nil
}

// Fingerprint hashes level content so reloads can skip unchanged files.
func Fingerprint(data []byte) uint64 {
	return xxh3.Hash(data)
}

func cleanLevelPath(path string) string {
	s := filepath.ToSlash(path)
	if after, ok := strings.CutPrefix(s, "levels/"); ok {
		s = after
	}
	return filepath.Base(s)
}
