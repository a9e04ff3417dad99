package shader

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestCompileErrorMessage(t *testing.T) {
	err := fmt.Errorf("compiling program: %w", &CompileError{Stage: "fragment", Log: "0:3: syntax error\n\x00"})

	var ce *CompileError
	if !errors.As(err, &ce) {
		t.Fatal("CompileError should unwrap")
	}
	if ce.Stage != "fragment" {
		t.Errorf("stage: got %q", ce.Stage)
	}
	if got := err.Error(); got != "compiling program: fragment: 0:3: syntax error" {
		t.Errorf("message: got %q", got)
	}
}

func TestFallbackSourcesDeclareUniforms(t *testing.T) {
	for _, name := range []string{"P", "MV", "IT"} {
		if !strings.Contains(BlinnPhongVertex, "uniform mat4 "+name+";") {
			t.Errorf("vertex shader missing uniform %s", name)
		}
	}
	for _, decl := range []string{"vec3 lightPos", "vec3 lightColor", "vec3 ka", "vec3 kd", "vec3 ks", "float s"} {
		if !strings.Contains(BlinnPhongFragment, "uniform "+decl+";") {
			t.Errorf("fragment shader missing uniform %s", decl)
		}
	}
}

func TestAttribBindingsMatchBuiltinLayout(t *testing.T) {
	bindings := attribBindings()
	if len(bindings) != 2 {
		t.Fatalf("bindings: got %d, want 2", len(bindings))
	}
	seen := make(map[uint32]string)
	for _, b := range bindings {
		if prev, ok := seen[b.location]; ok {
			t.Errorf("slot %d bound to both %s and %s", b.location, prev, b.name)
		}
		seen[b.location] = b.name

		decl := fmt.Sprintf("layout(location = %d) in vec3 %s;", b.location, b.name)
		if !strings.Contains(BlinnPhongVertex, decl) {
			t.Errorf("built-in vertex shader should declare %q", decl)
		}
	}
	if seen[0] != "aPos" || seen[1] != "aNor" {
		t.Errorf("bindings: got %v, want aPos at 0 and aNor at 1", seen)
	}
}
