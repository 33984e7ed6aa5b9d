package common

// Virtual key codes for cross-platform input handling.
// These values match GLFW key codes which use ASCII values for printable keys.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Key
const (
	KeyW = 87 // W key (ASCII), move forward
	KeyA = 65 // A key (ASCII), strafe left
	KeyS = 83 // S key (ASCII), move back
	KeyD = 68 // D key (ASCII), strafe right
	KeyQ = 81 // Q key (ASCII), move up
	KeyE = 69 // E key (ASCII), move down
	KeyF = 70 // F key (ASCII), reset camera
	KeyP = 80 // P key (ASCII), toggle orthographic projection

	KeySpace = 32  // Spacebar (ASCII)
	KeyEsc   = 256 // Escape key (GLFW)
)

// Additional non-printable keys
const (
	KeyLeftShift  = 340 // Left Shift (GLFW)
	KeyLeftAlt    = 342 // Left Alt (GLFW), modifier for pan and orbit
	KeyRightShift = 344 // Right Shift (GLFW)
)

// MaxKeyCode is the exclusive upper bound of tracked key codes.
// GLFW's highest key code (KeyMenu = 348) fits well inside it.
const MaxKeyCode = 1024

// Mouse button codes, matching glfw.MouseButton values.
const (
	MouseButtonLeft   = 0
	MouseButtonRight  = 1
	MouseButtonMiddle = 2
)

// MaxMouseButton is the exclusive upper bound of tracked mouse button codes.
const MaxMouseButton = 3
