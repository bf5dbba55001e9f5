package common

// Virtual key codes for the demo programs' keyboard shortcuts.
// These values match GLFW key codes which use ASCII values for printable keys.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Key
const (
	KeyR = 82 // R key (ASCII): reset the camera to its default position
	KeyP = 80 // P key (ASCII): toggle the tick profiler
	KeyS = 83 // S key (ASCII): toggle scroll zoom
	KeyC = 67 // C key (ASCII): save the recorded gesture session
)
