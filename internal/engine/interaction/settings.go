package interaction

// Settings are the step sizes for keyboard and mouse input.
type Settings struct {
	KeyboardSensitivity float32
	TranslationStep     float32
	RotationDegrees     float32
	DecreaseFactor      float32
	IncreaseFactor      float32
	MouseSensitivity    float32
}

// DefaultSettings returns the standard step sizes.
func DefaultSettings() Settings {
	return Settings{
		KeyboardSensitivity: 0.05,
		TranslationStep:     0.1,
		RotationDegrees:     5,
		DecreaseFactor:      0.9,
		IncreaseFactor:      1.1,
		MouseSensitivity:    5,
	}
}
