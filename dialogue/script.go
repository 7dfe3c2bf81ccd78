package dialogue

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/middlechamber/prefabs"
	"github.com/milk9111/middlechamber/sim/component"
)

// DefaultScript is the script loaded by NewScript when no name is given.
const DefaultScript = "dialogue.tengo"

const dispatchScript = `
if __fn == "greeting" {
	__out = greeting(__ctx)
} else if __fn == "investiture" {
	__out = investiture(__ctx)
} else if __fn == "staircase" {
	__out = staircase(__ctx)
} else if __fn == "virtue" {
	__out = virtue(__ctx)
} else if __fn == "goal_warning" {
	__out = goal_warning(__ctx)
} else if __fn == "checkpoint" {
	__out = checkpoint(__ctx)
}
`

// Script is a narrator backed by a tengo script. Every function of the
// script receives one context map and returns the text to show.
type Script struct {
	name     string
	mu       sync.Mutex
	compiled *tengo.Compiled
	fallback Plain
	logger   *log.Logger
}

// NewScript loads name through prefabs.LoadScript and compiles it.
func NewScript(name string, logger *log.Logger) (*Script, error) {
	if strings.TrimSpace(name) == "" {
		name = DefaultScript
	}
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("dialogue: load %s: %w", name, err)
	}
	s, err := Compile(src, logger)
	if err != nil {
		return nil, fmt.Errorf("dialogue: %s: %w", name, err)
	}
	s.name = name
	return s, nil
}

// Compile builds a Script from source.
func Compile(src []byte, logger *log.Logger) (*Script, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	full := string(src) + "\n" + dispatchScript
	script := tengo.NewScript([]byte(full))
	for name, value := range map[string]any{
		"__fn":  "",
		"__ctx": map[string]any{},
		"__out": "",
	} {
		if err := script.Add(name, value); err != nil {
			return nil, fmt.Errorf("dialogue: add %s: %w", name, err)
		}
	}
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, err
	}
	return &Script{compiled: compiled, logger: logger}, nil
}

// Name is the script the narrator was loaded from, empty when compiled
// from source.
func (s *Script) Name() string {
	if s == nil {
		return ""
	}
	return s.name
}

func (s *Script) call(fn string, ctx map[string]any) (string, error) {
	if s == nil || s.compiled == nil {
		return "", fmt.Errorf("dialogue: nil script")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.compiled.Set("__fn", fn); err != nil {
		return "", err
	}
	if err := s.compiled.Set("__ctx", ctx); err != nil {
		return "", err
	}
	if err := s.compiled.Set("__out", ""); err != nil {
		return "", err
	}
	if err := s.compiled.Run(); err != nil {
		return "", err
	}
	out := strings.TrimSpace(s.compiled.Get("__out").String())
	if out == "" {
		return "", fmt.Errorf("dialogue: %s returned no text", fn)
	}
	return out, nil
}

func (s *Script) text(fn string, ctx map[string]any, fallback func() string) string {
	out, err := s.call(fn, ctx)
	if err != nil {
		if s != nil && s.logger != nil {
			s.logger.Warn("dialogue script failed", "fn", fn, "err", err)
		}
		return fallback()
	}
	return out
}

func (s *Script) Greeting(id component.Identity) string {
	return s.text("greeting", map[string]any{
		"officer": id.GrandOfficer.String(),
		"name":    id.Name,
		"rank":    id.Rank,
		"date":    id.InitiationDate,
	}, func() string { return s.fallback.Greeting(id) })
}

func (s *Script) Investiture() string {
	return s.text("investiture", map[string]any{}, s.fallback.Investiture)
}

func (s *Script) StaircasePrompt(progress, total int) string {
	return s.text("staircase", map[string]any{
		"progress": progress,
		"total":    total,
	}, func() string { return s.fallback.StaircasePrompt(progress, total) })
}

func (s *Script) VirtueIntro(name, blurb string, first bool) string {
	if blurb == "" {
		blurb = "One of the four cardinal virtues."
	}
	return s.text("virtue", map[string]any{
		"name":  name,
		"blurb": blurb,
		"first": first,
	}, func() string { return s.fallback.VirtueIntro(name, blurb, first) })
}

func (s *Script) GoalWarning(collected, total int) string {
	return s.text("goal_warning", map[string]any{
		"collected": collected,
		"total":     total,
	}, func() string { return s.fallback.GoalWarning(collected, total) })
}

func (s *Script) CheckpointReached(index, total int) string {
	return s.text("checkpoint", map[string]any{
		"index": index,
		"total": total,
	}, func() string { return s.fallback.CheckpointReached(index, total) })
}
