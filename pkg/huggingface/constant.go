package huggingface

import "time"

const (
	DefaultBaseURL = "https://datasets-server.huggingface.co"
	// MaxPageLength is the largest page the rows endpoint serves.
	MaxPageLength  = 100
	defaultTimeout = 60 * time.Second
)
