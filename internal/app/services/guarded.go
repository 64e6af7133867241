package services

import "sync"

// Guarded serializes every call into a ManagementService behind one mutex.
// Hosts that serve requests concurrently go through it; single-threaded
// callers can use the ManagementService directly.
type Guarded struct {
	mu  sync.Mutex
	svc *ManagementService
}

// NewGuarded wraps svc
func NewGuarded(svc *ManagementService) *Guarded {
	return &Guarded{svc: svc}
}

// Do runs fn with exclusive access to the service
func (g *Guarded) Do(fn func(svc *ManagementService)) {
	g.mu.Lock()
	defer g.mu.Unlock()
	fn(g.svc)
}

// DoE is Do for callbacks that can fail
func (g *Guarded) DoE(fn func(svc *ManagementService) error) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	return fn(g.svc)
}
