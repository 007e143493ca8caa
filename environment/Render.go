package environment

import "fmt"

// RenderMode determines how an environment is displayed
type RenderMode string

const (
	// Human renders a textual description of the environment
	Human RenderMode = "human"

	// RGBArray renders an image of the environment, encoded as PNG
	RGBArray RenderMode = "rgb_array"
)

// ParseRenderMode returns the RenderMode named by s
func ParseRenderMode(s string) (RenderMode, error) {
	switch mode := RenderMode(s); mode {
	case Human, RGBArray:
		return mode, nil
	}
	return "", fmt.Errorf("parseRenderMode: %w: %q",
		ErrUnsupportedRenderMode, s)
}
