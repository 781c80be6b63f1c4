package shader

import (
	"fmt"
	"strings"
)

// Model is a shading model selectable at runtime.
type Model int

const (
	// Depth draws vertex colors without lighting. Its program also renders
	// the shadow map.
	Depth Model = iota
	GouraudDiffuse
	GouraudSpecular
	PhongDiffuse
	PhongSpecular

	modelCount
)

var modelNames = [modelCount]string{
	Depth:           "depth",
	GouraudDiffuse:  "gouraud-diffuse",
	GouraudSpecular: "gouraud-specular",
	PhongDiffuse:    "phong-diffuse",
	PhongSpecular:   "phong-specular",
}

func (m Model) String() string {
	if m < 0 || m >= modelCount {
		return fmt.Sprintf("Model(%d)", int(m))
	}
	return modelNames[m]
}

// Next returns the following model, wrapping around after the last.
func (m Model) Next() Model {
	return (m + 1) % modelCount
}

// Models returns every model in cycling order.
func Models() []Model {
	out := make([]Model, 0, modelCount)
	for m := Depth; m < modelCount; m++ {
		out = append(out, m)
	}
	return out
}

// ParseModel resolves a model name, case-insensitively.
func ParseModel(name string) (Model, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for m, n := range modelNames {
		if n == name {
			return Model(m), nil
		}
	}
	if name == "basic" {
		return Depth, nil
	}
	return 0, fmt.Errorf("unknown shading model %q", name)
}

func (m Model) specular() bool {
	return m == GouraudSpecular || m == PhongSpecular
}

func (m Model) sources(shadow bool) (vert, frag string) {
	switch m {
	case GouraudDiffuse, GouraudSpecular:
		return vertexSource(gouraudVertexShader, m.specular(), shadow),
			fragmentSource(gouraudFragmentShader, m.specular(), shadow)
	case PhongDiffuse, PhongSpecular:
		return vertexSource(phongVertexShader, m.specular(), shadow),
			fragmentSource(phongFragmentShader, m.specular(), shadow)
	default:
		return vertexSource(basicVertexShader, false, false),
			fragmentSource(basicFragmentShader, false, false)
	}
}
