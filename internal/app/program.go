package app

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/bodyfield/internal/engine/shader"
)

// programBuilder compiles and links a program from vertex and fragment source.
type programBuilder func(vs, fs string) (*shader.Program, error)

// buildProgram builds from the given sources and falls back to the built-in
// Blinn-Phong sources when a resource-dir shader does not build.
func buildProgram(log *zap.Logger, vs, fs string, build programBuilder) (*shader.Program, error) {
	prog, err := build(vs, fs)
	if err == nil {
		return prog, nil
	}
	if vs == shader.BlinnPhongVertex && fs == shader.BlinnPhongFragment {
		return nil, fmt.Errorf("building Blinn-Phong program: %w", err)
	}

	log.Warn("resource shaders failed to build, using built-in sources", zap.Error(err))
	prog, err = build(shader.BlinnPhongVertex, shader.BlinnPhongFragment)
	if err != nil {
		return nil, fmt.Errorf("building built-in Blinn-Phong program: %w", err)
	}
	return prog, nil
}
