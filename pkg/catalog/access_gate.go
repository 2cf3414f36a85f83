package catalog

import (
	"math/rand/v2"
	"strconv"
	"sync"
	"time"

	"github.com/lavanyassgit/Medicine-AI/domain"
)

// AccessGate issues one 8-digit code per calendar day and remembers which
// sessions have unlocked the catalog view. It is a convenience gate only.
type AccessGate struct {
	mu       sync.Mutex
	location *time.Location
	now      func() time.Time
	newCode  func() string
	day      string
	code     string
	unlocked map[string]struct{}
}

func NewAccessGate(location *time.Location) *AccessGate {
	if location == nil {
		location = time.UTC
	}
	return &AccessGate{
		location: location,
		now:      time.Now,
		newCode:  randomCode,
		unlocked: make(map[string]struct{}),
	}
}

// TodayCode returns the current day's code, generating it on first use.
func (g *AccessGate) TodayCode() (day string, code string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rotate()
}

func (g *AccessGate) Unlock(sessionID, code string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	_, today := g.rotate()
	if code != today {
		return domain.ErrInvalidAccessCode
	}
	g.unlocked[sessionID] = struct{}{}
	return nil
}

func (g *AccessGate) IsUnlocked(sessionID string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	_, ok := g.unlocked[sessionID]
	return ok
}

func (g *AccessGate) Lock(sessionID string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.unlocked, sessionID)
}

// rotate must be called with mu held.
func (g *AccessGate) rotate() (string, string) {
	today := g.now().In(g.location).Format(domain.DateLayout)
	if today != g.day || g.code == "" {
		g.day = today
		g.code = g.newCode()
	}
	return g.day, g.code
}

func randomCode() string {
	return strconv.Itoa(10000000 + rand.IntN(90000000))
}
