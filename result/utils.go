package result

import (
	"encoding/base64"
	"time"

	"github.com/google/uuid"
)

// encode UUID with base64 for shorter UUID
func newBase64UUID() string {
	id := uuid.New()
	return base64.RawURLEncoding.EncodeToString(id[:])
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

func millisList(durations []time.Duration) []float64 {
	out := make([]float64, 0, len(durations))
	for _, d := range durations {
		out = append(out, millis(d))
	}
	return out
}
