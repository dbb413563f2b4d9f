package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"
)

// Settings holds the court geometry, entity parameters and colors.
// It is built once at start-up and passed by value; nothing mutates it
// while a game runs.
type Settings struct {
	Title        string `yaml:"title"`
	ScreenWidth  int    `yaml:"screen_width"`
	ScreenHeight int    `yaml:"screen_height"`
	TargetFPS    int    `yaml:"target_fps"`

	BallRadius float64 `yaml:"ball_radius"`
	BallSpeed  int     `yaml:"ball_speed"` // Per-axis magnitude, pixels per frame

	PaddleWidth     float64 `yaml:"paddle_width"`
	PaddleHeight    float64 `yaml:"paddle_height"`
	PaddleSpeed     int     `yaml:"paddle_speed"`
	PaddleMargin    float64 `yaml:"paddle_margin"`    // Gap between the human paddle and the right wall
	PaddleRoundness float64 `yaml:"paddle_roundness"` // 0 = square corners, 1 = fully rounded

	CenterCircleRadius float64 `yaml:"center_circle_radius"`
	ScoreFontSize      float64 `yaml:"score_font_size"`
	ScoreTop           float64 `yaml:"score_top"`

	Colors  ColorSettings `yaml:"colors"`
	Palette Palette       `yaml:"-"`
}

// ColorSettings holds hex color strings as they appear in a settings file.
type ColorSettings struct {
	Background   string `yaml:"background"`
	Court        string `yaml:"court"`
	CenterCircle string `yaml:"center_circle"`
	Ball         string `yaml:"ball"`
	Paddle       string `yaml:"paddle"`
	Line         string `yaml:"line"`
	Score        string `yaml:"score"`
}

// Palette is the parsed form of ColorSettings.
type Palette struct {
	Background   color.RGBA
	Court        color.RGBA
	CenterCircle color.RGBA
	Ball         color.RGBA
	Paddle       color.RGBA
	Line         color.RGBA
	Score        color.RGBA
}

// Default returns the stock 1280x800 court.
func Default() Settings {
	s := Settings{
		Title:        "Is Pong!",
		ScreenWidth:  1280,
		ScreenHeight: 800,
		TargetFPS:    60,

		BallRadius: 20,
		BallSpeed:  7,

		PaddleWidth:     25,
		PaddleHeight:    120,
		PaddleSpeed:     6,
		PaddleMargin:    10,
		PaddleRoundness: 0.8,

		CenterCircleRadius: 150,
		ScoreFontSize:      80,
		ScoreTop:           20,

		Colors: ColorSettings{
			Background:   "#14a085", // dark green
			Court:        "#26b99a", // green
			CenterCircle: "#81ccb8", // light green
			Ball:         "#f3d55b", // yellow
			Paddle:       "#ffffff",
			Line:         "#ffffff",
			Score:        "#ffffff",
		},
	}
	p, err := s.Colors.Parse()
	if err != nil {
		panic(err)
	}
	s.Palette = p
	return s
}

// LoadSettings reads a YAML settings file and applies it on top of Default.
// Keys missing from the file keep their default values.
func LoadSettings(path string) (Settings, error) {
	s := Default()
	if path == "" {
		return s, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("read settings: %w", err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("parse settings %s: %w", path, err)
	}

	p, err := s.Colors.Parse()
	if err != nil {
		return Settings{}, fmt.Errorf("settings %s: %w", path, err)
	}
	s.Palette = p

	if err := s.Validate(); err != nil {
		return Settings{}, fmt.Errorf("settings %s: %w", path, err)
	}
	return s, nil
}

// Validate reports the first geometry problem that would break the game's
// bounds invariants.
func (s Settings) Validate() error {
	switch {
	case s.ScreenWidth <= 0 || s.ScreenHeight <= 0:
		return errors.New("screen dimensions must be positive")
	case s.TargetFPS <= 0:
		return errors.New("target_fps must be positive")
	case s.BallRadius <= 0:
		return errors.New("ball_radius must be positive")
	case s.BallSpeed <= 0:
		return errors.New("ball_speed must be positive")
	case 2*s.BallRadius >= float64(s.ScreenHeight):
		return errors.New("ball does not fit the court")
	case s.PaddleWidth <= 0 || s.PaddleHeight <= 0:
		return errors.New("paddle dimensions must be positive")
	case s.PaddleHeight > float64(s.ScreenHeight):
		return errors.New("paddle_height exceeds screen_height")
	case s.PaddleSpeed < 0:
		return errors.New("paddle_speed must not be negative")
	case s.PaddleRoundness < 0 || s.PaddleRoundness > 1:
		return errors.New("paddle_roundness must be within [0, 1]")
	}
	return nil
}

// Parse converts the hex strings into a Palette.
func (c ColorSettings) Parse() (Palette, error) {
	var p Palette
	fields := []struct {
		name string
		hex  string
		dst  *color.RGBA
	}{
		{"background", c.Background, &p.Background},
		{"court", c.Court, &p.Court},
		{"center_circle", c.CenterCircle, &p.CenterCircle},
		{"ball", c.Ball, &p.Ball},
		{"paddle", c.Paddle, &p.Paddle},
		{"line", c.Line, &p.Line},
		{"score", c.Score, &p.Score},
	}
	for _, f := range fields {
		col, err := colorful.Hex(f.hex)
		if err != nil {
			return Palette{}, fmt.Errorf("color %s: %w", f.name, err)
		}
		r, g, b := col.RGB255()
		*f.dst = color.RGBA{R: r, G: g, B: b, A: 255}
	}
	return p, nil
}
