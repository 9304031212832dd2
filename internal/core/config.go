package core

// RuntimeConfig contains the frontend parameters passed in at startup.
type RuntimeConfig struct {
	ScreenW  int // Terminal width in characters
	ScreenH  int // Terminal height in characters
	TickRate int // Simulation ticks per second (default 60)
}
