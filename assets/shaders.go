package assets

import (
	"embed"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed shaders/*.kage
var shaderFS embed.FS

var (
	// SkyShader paints the sky and ground gradient behind the wireframe
	SkyShader *ebiten.Shader
)

// LoadShaders compiles and caches all shaders
func LoadShaders() error {
	src, err := shaderFS.ReadFile("shaders/sky.kage")
	if err != nil {
		return err
	}
	SkyShader, err = ebiten.NewShader(src)
	if err != nil {
		return fmt.Errorf("compile sky shader: %w", err)
	}
	return nil
}
