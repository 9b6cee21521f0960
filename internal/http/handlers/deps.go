package handlers

import (
	"sync"

	"arheb/internal/auth"
	"arheb/internal/fixtures"
	"arheb/internal/services"
	"arheb/internal/tracking"
)

// Shared handler state wired once at startup.
var (
	depsMu   sync.RWMutex
	tokens   auth.Tokens
	catalog  *fixtures.Fixtures
	sender   services.OTPSender
	registry *tracking.Registry
)

func SetTokens(t auth.Tokens) {
	depsMu.Lock()
	defer depsMu.Unlock()
	tokens = t
}

func SetFixtures(f *fixtures.Fixtures) {
	depsMu.Lock()
	defer depsMu.Unlock()
	catalog = f
}

func SetOTPSender(s services.OTPSender) {
	depsMu.Lock()
	defer depsMu.Unlock()
	sender = s
}

func SetRegistry(r *tracking.Registry) {
	depsMu.Lock()
	defer depsMu.Unlock()
	registry = r
}

func getTokens() auth.Tokens {
	depsMu.RLock()
	defer depsMu.RUnlock()
	return tokens
}

func getFixtures() *fixtures.Fixtures {
	depsMu.RLock()
	defer depsMu.RUnlock()
	return catalog
}

func getSender() services.OTPSender {
	depsMu.RLock()
	defer depsMu.RUnlock()
	return sender
}

func getRegistry() *tracking.Registry {
	depsMu.RLock()
	defer depsMu.RUnlock()
	return registry
}
