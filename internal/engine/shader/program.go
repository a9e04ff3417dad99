package shader

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/bodyfield/pkg/math"
)

// Program is a linked GLSL program with cached uniform locations.
// It implements render.Backend.
type Program struct {
	id        uint32
	uniforms  map[string]int32
	vertexSrc string
	fragSrc   string
}

// NewProgram compiles and links a program from source.
func NewProgram(vertexSrc, fragmentSrc string) (*Program, error) {
	id, err := CompileProgram(vertexSrc, fragmentSrc)
	if err != nil {
		return nil, fmt.Errorf("compiling program: %w", err)
	}
	return &Program{
		id:        id,
		uniforms:  make(map[string]int32),
		vertexSrc: vertexSrc,
		fragSrc:   fragmentSrc,
	}, nil
}

// Reload recompiles from new sources. On failure the running program is kept
// and the error is returned.
func (p *Program) Reload(vertexSrc, fragmentSrc string) error {
	id, err := CompileProgram(vertexSrc, fragmentSrc)
	if err != nil {
		return fmt.Errorf("reloading program: %w", err)
	}
	gl.DeleteProgram(p.id)
	p.id = id
	p.vertexSrc, p.fragSrc = vertexSrc, fragmentSrc
	clear(p.uniforms)
	return nil
}

// Changed reports whether the given sources differ from the running ones.
func (p *Program) Changed(vertexSrc, fragmentSrc string) bool {
	return vertexSrc != p.vertexSrc || fragmentSrc != p.fragSrc
}

// Bind makes the program current.
func (p *Program) Bind() {
	gl.UseProgram(p.id)
}

// Unbind clears the current program.
func (p *Program) Unbind() {
	gl.UseProgram(0)
}

// location returns the cached uniform location. Inactive uniforms resolve to
// -1, which GL ignores on upload.
func (p *Program) location(name string) int32 {
	if loc, ok := p.uniforms[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(p.id, gl.Str(name+"\x00"))
	p.uniforms[name] = loc
	return loc
}

// SetVec3 uploads a vec3 uniform.
func (p *Program) SetVec3(name string, v math.Vec3) {
	gl.Uniform3f(p.location(name), v.X, v.Y, v.Z)
}

// SetFloat uploads a float uniform.
func (p *Program) SetFloat(name string, v float32) {
	gl.Uniform1f(p.location(name), v)
}

// SetMat4 uploads a column-major mat4 uniform.
func (p *Program) SetMat4(name string, m math.Mat4) {
	gl.UniformMatrix4fv(p.location(name), 1, false, m.Ptr())
}

// Release deletes the program.
func (p *Program) Release() {
	if p.id != 0 {
		gl.DeleteProgram(p.id)
		p.id = 0
	}
}
