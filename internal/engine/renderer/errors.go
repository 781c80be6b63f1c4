package renderer

import (
	"errors"
	"fmt"
)

// ErrIncompleteFramebuffer is returned when an off-screen target cannot be built.
var ErrIncompleteFramebuffer = errors.New("framebuffer incomplete")

// CompileError reports a shader stage that failed to compile.
type CompileError struct {
	Program string
	Stage   string
	Log     string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("program %s: %s shader: %s", e.Program, e.Stage, e.Log)
}

// LinkError reports a program that failed to link.
type LinkError struct {
	Program string
	Log     string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("program %s: link: %s", e.Program, e.Log)
}
