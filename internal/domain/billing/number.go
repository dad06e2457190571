package billing

import (
	"fmt"
	"math/rand"
	"time"
)

// NewDocumentNumber generates a human-readable document number of the form
// {PREFIX}-{last 6 digits of epoch millis}{3-digit random}. Uniqueness is
// probabilistic, not guaranteed: two calls in the same millisecond can
// collide. Acceptable for a low-volume single-user tool; no external
// sequence authority is consulted.
func NewDocumentNumber(prefix string) string {
	millis := fmt.Sprintf("%d", time.Now().UnixMilli())
	if len(millis) > 6 {
		millis = millis[len(millis)-6:]
	}
	return fmt.Sprintf("%s-%s%03d", prefix, millis, rand.Intn(1000))
}
