package prefabs

import (
	"image/color"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestLoadTuningEmbeddedDefaults(t *testing.T) {
	tuning, err := LoadTuning()
	if err != nil {
		t.Fatalf("load tuning: %v", err)
	}

	if tuning.Player.Gravity != 0.38 || tuning.Player.Friction != 0.84 {
		t.Fatalf("unexpected physics constants: %+v", tuning.Player)
	}
	if tuning.Player.CoyoteFrames != 6 || tuning.Player.JumpBufferFrames != 8 {
		t.Fatalf("unexpected input windows: coyote=%d buffer=%d", tuning.Player.CoyoteFrames, tuning.Player.JumpBufferFrames)
	}
	if tuning.Camera.SmoothY <= tuning.Camera.SmoothX {
		t.Fatalf("vertical smoothing must exceed horizontal: x=%v y=%v", tuning.Camera.SmoothX, tuning.Camera.SmoothY)
	}
	if tuning.Rules.CompletionBonus != 500 || tuning.Rules.VirtueBonus != 1000 {
		t.Fatalf("unexpected bonuses: %+v", tuning.Rules)
	}
}

func TestLoadScript(t *testing.T) {
	for _, name := range []string{"dialogue.tengo", "scripts/dialogue.tengo", "prefabs/scripts/dialogue.tengo"} {
		t.Run(name, func(t *testing.T) {
			data, err := LoadScript(name)
			if err != nil {
				t.Fatalf("load script: %v", err)
			}
			if !strings.Contains(string(data), "greeting") {
				t.Fatalf("script missing greeting function")
			}
		})
	}
}

func TestYAMLColor(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    color.NRGBA
		wantErr bool
	}{
		{name: "rgb", in: `"#fbbf24"`, want: color.NRGBA{R: 0xfb, G: 0xbf, B: 0x24, A: 0xff}},
		{name: "rgba", in: `"10203040"`, want: color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0x40}},
		{name: "short", in: `"#fff"`, wantErr: true},
		{name: "not hex", in: `"#zzzzzz"`, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c YAMLColor
			err := yaml.Unmarshal([]byte(tt.in), &c)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %s", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if c.Color != tt.want {
				t.Fatalf("got %v, want %v", c.Color, tt.want)
			}
		})
	}
}

func TestPaletteFallback(t *testing.T) {
	palette, err := LoadPaletteSpec()
	if err != nil {
		t.Fatalf("load palette: %v", err)
	}
	if palette.PlatformColor("unknown-kind") != palette.PlatformColor("default") {
		t.Fatalf("unknown kind should use the default color")
	}

	var nilPalette *PaletteSpec
	if nilPalette.PlatformColor("floor") == nil {
		t.Fatalf("nil palette should still return a color")
	}
}
