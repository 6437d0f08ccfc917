package common

// Mouse button codes for cross-platform input handling.
// These values match GLFW mouse button numbering.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#MouseButton
const (
	MouseButtonPrimary   = 0 // Left button (GLFW MouseButtonLeft)
	MouseButtonSecondary = 1 // Right button (GLFW MouseButtonRight)
	MouseButtonMiddle    = 2 // Middle button (GLFW MouseButtonMiddle)
)
