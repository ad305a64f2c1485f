package constants

import (
	"os"
	"time"
)

func GetServeAddr() string {
	addr := os.Getenv("CHORDCRAFT_ADDR")
	if addr != "" {
		return addr
	}
	return ":8080"
}

func GetFeaturedTable() string {
	table := os.Getenv("CHORDCRAFT_TABLE")
	if table != "" {
		return table
	}
	return "chordcraft-featured"
}

func GetDynamoEndpoint() string {
	endpoint := os.Getenv("DYNAMO_ENDPOINT")
	if endpoint != "" {
		return endpoint
	}
	return "http://localhost:8000"
}

// How long to wait after the last note event before running detection on
// the held-note set. Long enough to ride out a rolled chord.
const ListenDebounce = 150 * time.Millisecond

const ExportBPM = 120
