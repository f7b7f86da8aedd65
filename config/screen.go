package config

// Viewer window configuration
const (
	// Window dimensions in pixels
	WindowWidth  = 1024
	WindowHeight = 768

	// Margin kept free around the layout when it is fitted to the window
	LayoutMargin = 24

	// Height of the status panel at the bottom of the window
	StatusPanelHeight = 96

	// Ticks between pipeline steps while the viewer is running
	StepInterval = 2

	// Number of messages shown in the status panel and the message log overlay
	StatusMessages = 5
	LogMessages    = 40
)

// GetScreenDimensions returns the screen dimensions in pixels
func GetScreenDimensions() (width, height int) {
	return WindowWidth, WindowHeight
}

// GetLayoutArea returns the part of the screen the layout is drawn in
func GetLayoutArea() (width, height int) {
	return WindowWidth, WindowHeight - StatusPanelHeight
}
