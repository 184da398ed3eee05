package reelid

import (
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

var (
	entropyOnce sync.Once
	entropyMu   sync.Mutex
	entropy     *ulid.MonotonicEntropy
)

func newEntropy() *ulid.MonotonicEntropy {
	entropyOnce.Do(func() {
		source := rand.NewSource(time.Now().UnixNano())
		entropy = ulid.Monotonic(rand.New(source), 0)
	})
	return entropy
}

// New returns a reel_* ULID string. Safe for concurrent use; the
// monotonic entropy source is shared across request goroutines.
func New() string {
	entropyMu.Lock()
	id := ulid.MustNew(ulid.Timestamp(time.Now()), newEntropy())
	entropyMu.Unlock()
	return "reel_" + strings.ToLower(id.String())
}

// IsValid reports whether the string is a reel_* ULID.
func IsValid(value string) bool {
	if !strings.HasPrefix(value, "reel_") {
		return false
	}
	_, err := Parse(value)
	return err == nil
}

// Parse strips the reel_ prefix and returns the ULID.
func Parse(value string) (ulid.ULID, error) {
	value = strings.TrimSpace(value)
	value = strings.TrimPrefix(value, "reel_")
	value = strings.TrimPrefix(value, "REEL_")
	return ulid.Parse(value)
}
