package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// PlayerSpec holds the body size and movement tuning of the player.
type PlayerSpec struct {
	Name             string  `yaml:"name"`
	Width            float64 `yaml:"width"`
	Height           float64 `yaml:"height"`
	Gravity          float64 `yaml:"gravity"`
	Friction         float64 `yaml:"friction"`
	MoveSpeed        float64 `yaml:"move_speed"`
	ConstrainedSpeed float64 `yaml:"constrained_speed"`
	Acceleration     float64 `yaml:"acceleration"`
	StopEpsilon      float64 `yaml:"stop_epsilon"`
	JumpSpeed        float64 `yaml:"jump_speed"`
	JumpCutFactor    float64 `yaml:"jump_cut_factor"`
	MaxJumps         int     `yaml:"max_jumps"`
	CoyoteFrames     int     `yaml:"coyote_frames"`
	JumpBufferFrames int     `yaml:"jump_buffer_frames"`
	FreeFlySpeed     float64 `yaml:"free_fly_speed"`
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	data, err := Load("player.yaml")
	if err != nil {
		return nil, fmt.Errorf("prefabs: load player.yaml: %w", err)
	}
	var spec PlayerSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("prefabs: unmarshal player.yaml: %w", err)
	}
	return &spec, nil
}

type CameraSpec struct {
	Name         string  `yaml:"name"`
	DesignHeight float64 `yaml:"design_height"`
	TopFraction  float64 `yaml:"top_fraction"`
	LookAhead    float64 `yaml:"look_ahead"`
	GroundMargin float64 `yaml:"ground_margin"`
	SmoothX      float64 `yaml:"smooth_x"`
	SmoothY      float64 `yaml:"smooth_y"`
}

func LoadCameraSpec() (*CameraSpec, error) {
	data, err := Load("camera.yaml")
	if err != nil {
		return nil, fmt.Errorf("prefabs: load camera.yaml: %w", err)
	}
	var spec CameraSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("prefabs: unmarshal camera.yaml: %w", err)
	}
	return &spec, nil
}

// RulesSpec holds gate distances, scoring and display durations.
type RulesSpec struct {
	PickupPoints           int     `yaml:"pickup_points"`
	StaircasePoints        int     `yaml:"staircase_points"`
	CompletionBonus        int     `yaml:"completion_bonus"`
	VirtueBonus            int     `yaml:"virtue_bonus"`
	VirtueBonusThreshold   int     `yaml:"virtue_bonus_threshold"`
	IdentityBlockOffset    float64 `yaml:"identity_block_offset"`
	InvestitureBlockOffset float64 `yaml:"investiture_block_offset"`
	StaircaseRangeX        float64 `yaml:"staircase_range_x"`
	StaircaseRangeY        float64 `yaml:"staircase_range_y"`
	PickupSlack            float64 `yaml:"pickup_slack"`
	VirtueRadius           float64 `yaml:"virtue_radius"`
	GoalRangeX             float64 `yaml:"goal_range_x"`
	GoalRangeY             float64 `yaml:"goal_range_y"`
	GoalPushBack           float64 `yaml:"goal_push_back"`
	CheckpointLift         float64 `yaml:"checkpoint_lift"`
	ResumeFactorX          float64 `yaml:"resume_factor_x"`
	ResumeFactorY          float64 `yaml:"resume_factor_y"`
	WarningFrames          int     `yaml:"warning_frames"`
	CheckpointPopupFrames  int     `yaml:"checkpoint_popup_frames"`
	FlashFrames            int     `yaml:"flash_frames"`
	ShakeFrames            int     `yaml:"shake_frames"`
}

func LoadRulesSpec() (*RulesSpec, error) {
	return loadSpecPtr[RulesSpec]("rules.yaml")
}

// PaletteSpec maps platform kinds and actors to draw colors.
type PaletteSpec struct {
	Background *YAMLColor            `yaml:"background"`
	Player     *YAMLColor            `yaml:"player"`
	Pickup     *YAMLColor            `yaml:"pickup"`
	Virtue     *YAMLColor            `yaml:"virtue"`
	NPC        *YAMLColor            `yaml:"npc"`
	Platforms  map[string]*YAMLColor `yaml:"platforms"`
}

func LoadPaletteSpec() (*PaletteSpec, error) {
	return loadSpecPtr[PaletteSpec]("palette.yaml")
}

// PlatformColor returns the color for kind, falling back to the "default" entry.
func (p *PaletteSpec) PlatformColor(kind string) color.Color {
	if p == nil {
		return color.Gray{Y: 0x80}
	}
	if c, ok := p.Platforms[kind]; ok && c != nil && c.Color != nil {
		return c.Color
	}
	if c, ok := p.Platforms["default"]; ok && c != nil && c.Color != nil {
		return c.Color
	}
	return color.Gray{Y: 0x80}
}

// Tuning bundles every spec the simulation reads.
type Tuning struct {
	Player PlayerSpec
	Camera CameraSpec
	Rules  RulesSpec
}

func LoadTuning() (Tuning, error) {
	player, err := LoadPlayerSpec()
	if err != nil {
		return Tuning{}, err
	}
	camera, err := LoadCameraSpec()
	if err != nil {
		return Tuning{}, err
	}
	rules, err := LoadRulesSpec()
	if err != nil {
		return Tuning{}, err
	}
	return Tuning{Player: *player, Camera: *camera, Rules: *rules}, nil
}

func loadSpecPtr[T any](filename string) (*T, error) {
	spec, err := LoadSpec[T](filename)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
