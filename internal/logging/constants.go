package logging

const (
	// LevelDebug selects the development logger.
	LevelDebug = "debug"
	// LevelInfo selects the production logger.
	LevelInfo = "info"
)
