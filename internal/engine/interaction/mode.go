package interaction

import "fmt"

// Mode decides what the transform keys act on.
type Mode int

const (
	// ModeCamera moves the camera with the arrow keys.
	ModeCamera Mode = iota
	// ModeGlobal folds every transform key into the shared global matrix.
	ModeGlobal
	// ModeLocal transforms the selected object only.
	ModeLocal
)

func (m Mode) String() string {
	switch m {
	case ModeCamera:
		return "CAMERA"
	case ModeGlobal:
		return "GLOBAL"
	case ModeLocal:
		return "LOCAL"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}
