package settings

import (
	"time"
)

const (
	DEFAULT_SEGMENT_SIZE = 10 * 1024 * 1024
	LOOP_DELAY           = 50 * time.Millisecond
	PARAM_POLL_INTERVAL  = 1 * time.Second
	RATE_LOG_INTERVAL    = 10 * time.Second
)
