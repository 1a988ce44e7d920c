package clients

import "time"

const (
	TRANSLATE_TIMEOUT = 30 * time.Second
	HEALTH_TIMEOUT    = 5 * time.Second
	USER_AGENT        = "sentiscope-client/1.0 (+https://github.com/spacesedan/sentiscope)"
)
