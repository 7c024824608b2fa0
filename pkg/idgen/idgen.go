package idgen

import (
	"math/rand"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Generator issues ids for records created offline.
type Generator interface {
	NewID() string
}

// timestampGenerator joins the base36 unix millis with a random base36 suffix.
// Ids sort roughly by creation time; uniqueness is best effort.
type timestampGenerator struct {
	mu   sync.Mutex
	rand *rand.Rand
	now  func() time.Time
}

// NewTimestampGenerator creates a timestamp based generator.
func NewTimestampGenerator() Generator {
	return &timestampGenerator{
		rand: rand.New(rand.NewSource(time.Now().UnixNano())),
		now:  time.Now,
	}
}

func (g *timestampGenerator) NewID() string {
	g.mu.Lock()
	suffix := g.rand.Int63()
	g.mu.Unlock()
	return strconv.FormatInt(g.now().UnixMilli(), 36) + strconv.FormatInt(suffix, 36)
}

type uuidGenerator struct{}

// NewUUIDGenerator creates a generator of random v4 UUIDs.
func NewUUIDGenerator() Generator {
	return uuidGenerator{}
}

func (uuidGenerator) NewID() string {
	return uuid.NewString()
}

// New returns the generator registered under kind ("uuid" or "timestamp").
// Unknown kinds fall back to the timestamp generator.
func New(kind string) Generator {
	if kind == "uuid" {
		return NewUUIDGenerator()
	}
	return NewTimestampGenerator()
}
