package main

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/gogpu/viewport"
	"gopkg.in/yaml.v3"
)

// Config describes a viewport in a YAML file.
//
//	rect: [10, 10, 80, 80]
//	draw_size: [100, 100]
//	window_size: [50, 50]
//
// When draw_size is omitted and scale is set, the draw size is the window
// size times scale. When rect is omitted, it covers the whole frame buffer.
type Config struct {
	Rect       [4]int32  `yaml:"rect"`
	DrawSize   [2]uint32 `yaml:"draw_size"`
	WindowSize [2]uint32 `yaml:"window_size"`
	Scale      float64   `yaml:"scale"`
}

// Viewport resolves the config into a viewport.
func (c Config) Viewport() viewport.Viewport {
	draw := c.DrawSize
	if draw == [2]uint32{} && c.Scale > 0 {
		draw = [2]uint32{
			uint32(math.Round(float64(c.WindowSize[0]) * c.Scale)),
			uint32(math.Round(float64(c.WindowSize[1]) * c.Scale)),
		}
	}
	if c.Rect == [4]int32{} {
		return viewport.Full(draw, c.WindowSize)
	}
	return viewport.Viewport{
		Rect:       c.Rect,
		DrawSize:   draw,
		WindowSize: c.WindowSize,
	}
}

// loadConfig reads a YAML viewport description. Unknown keys are rejected.
func loadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config file: %w", err)
	}
	if cfg.Scale < 0 {
		return Config{}, fmt.Errorf("parsing config file: negative scale %v", cfg.Scale)
	}
	return cfg, nil
}

// parseInts parses a comma-separated list of exactly n integers that fit in
// bitSize bits.
func parseInts(s string, n, bitSize int, unsigned bool) ([]int64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != n {
		return nil, fmt.Errorf("want %d comma-separated values, got %d in %q", n, len(parts), s)
	}
	out := make([]int64, n)
	for i, p := range parts {
		p = strings.TrimSpace(p)
		if unsigned {
			u, err := strconv.ParseUint(p, 10, bitSize)
			if err != nil {
				return nil, err
			}
			out[i] = int64(u)
			continue
		}
		v, err := strconv.ParseInt(p, 10, bitSize)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func parseRect(s string) ([4]int32, error) {
	v, err := parseInts(s, 4, 32, false)
	if err != nil {
		return [4]int32{}, fmt.Errorf("invalid rect: %w", err)
	}
	return [4]int32{int32(v[0]), int32(v[1]), int32(v[2]), int32(v[3])}, nil
}

func parseSize(s string) ([2]uint32, error) {
	v, err := parseInts(s, 2, 32, true)
	if err != nil {
		return [2]uint32{}, fmt.Errorf("invalid size: %w", err)
	}
	return [2]uint32{uint32(v[0]), uint32(v[1])}, nil
}
