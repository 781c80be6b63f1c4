package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

var namedKeys = map[sdl.Keycode]string{
	sdl.K_SPACE:    "Space",
	sdl.K_UP:       "ArrowUp",
	sdl.K_DOWN:     "ArrowDown",
	sdl.K_LEFT:     "ArrowLeft",
	sdl.K_RIGHT:    "ArrowRight",
	sdl.K_RETURN:   "Return",
	sdl.K_KP_ENTER: "Return",
	sdl.K_ESCAPE:   "Escape",
	sdl.K_COMMA:    ",",
	sdl.K_PERIOD:   ".",
}

var keypadDigits = map[sdl.Keycode]string{
	sdl.K_KP_0: "0", sdl.K_KP_1: "1", sdl.K_KP_2: "2", sdl.K_KP_3: "3", sdl.K_KP_4: "4",
	sdl.K_KP_5: "5", sdl.K_KP_6: "6", sdl.K_KP_7: "7", sdl.K_KP_8: "8", sdl.K_KP_9: "9",
}

// KeyName maps a key and its modifiers to the name the interaction layer
// uses: letters honour shift and caps lock, digits come from either the
// top row or the keypad. Keys with no name return "".
func KeyName(sym sdl.Keycode, mod uint16) string {
	if name, ok := namedKeys[sym]; ok {
		return name
	}
	if name, ok := keypadDigits[sym]; ok {
		return name
	}
	if sym >= sdl.K_0 && sym <= sdl.K_9 {
		return string(rune('0' + int(sym-sdl.K_0)))
	}
	if sym >= sdl.K_a && sym <= sdl.K_z {
		r := rune('a' + int(sym-sdl.K_a))
		shift := mod&uint16(sdl.KMOD_SHIFT) != 0
		caps := mod&uint16(sdl.KMOD_CAPS) != 0
		if shift != caps {
			r -= 'a' - 'A'
		}
		return string(r)
	}
	return ""
}
