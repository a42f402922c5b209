package model

import "time"

// Shared defaults used by the display binary and its tests.
const (
	DefaultAPIBaseURL        = "https://api.krishnaaggarwal.com/kietdata"
	DefaultNewsLimit         = 25
	DefaultAwardYear         = 2
	DefaultAwardPageSize     = 3
	DefaultSlideInterval     = 20 * time.Second
	DefaultBootstrapInterval = 10 * time.Second
	DefaultFetchTimeout      = 15 * time.Second
	DefaultMediaProbeTimeout = 5 * time.Second
	DefaultBoardTitle        = "CS Department"
	DefaultStatusAPIAddr     = "127.0.0.1:3000"
)
