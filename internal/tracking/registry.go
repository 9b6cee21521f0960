package tracking

import (
	"math"
	"sync"
	"time"
)

// Conn is one addressable, open bidirectional connection to a
// participant. The websocket client implements it; tests substitute
// their own.
type Conn interface {
	ID() string
	Send(msg any)
	Close()
}

// Location is the last point reported by the driver. It is replaced
// whole on every report and discarded with the session.
type Location struct {
	Longitude  float64
	Latitude   float64
	ObservedAt string
}

type session struct {
	customer Conn
	driver   Conn
	last     *Location
	group    map[string]Conn
}

func (s *session) slot(role Role) *Conn {
	if role == RoleCustomer {
		return &s.customer
	}
	return &s.driver
}

func (s *session) empty() bool {
	return s.customer == nil && s.driver == nil
}

// Snapshot is the synchronous read surface for the REST endpoint.
type Snapshot struct {
	IsTracking        bool
	Location          *Location
	DriverConnected   bool
	CustomerConnected bool
}

// Registry holds every live tracking session keyed by order id. It is
// the only shared mutable state of the subsystem; every mutation runs
// inside one mutex so connection goroutines cannot interleave on the
// same session.
type Registry struct {
	mu       sync.Mutex
	sessions map[int64]*session
	now      func() time.Time
}

func NewRegistry() *Registry {
	return &Registry{
		sessions: make(map[int64]*session),
		now:      time.Now,
	}
}

// Attach installs c in the role slot for the order, creating the
// session on first use, and joins c to the order's broadcast group.
// It returns the connection the new one displaced (nil when the slot
// was free) and the last known location, if any, for catch-up emits.
// The displaced connection must be closed by the caller outside the
// registry lock.
func (r *Registry) Attach(orderID int64, role Role, c Conn) (displaced Conn, last *Location) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[orderID]
	if !ok {
		s = &session{group: make(map[string]Conn)}
		r.sessions[orderID] = s
	}

	slot := s.slot(role)
	displaced = *slot
	if displaced != nil {
		delete(s.group, displaced.ID())
	}
	*slot = c
	s.group[c.ID()] = c

	if s.last != nil {
		cp := *s.last
		last = &cp
	}
	return displaced, last
}

// UpdateLocation overwrites the session's last location and returns
// the targets for fan-out: the customer slot (if occupied) and the
// whole broadcast group. The two sets may overlap; duplicate delivery
// to the same customer is expected.
func (r *Registry) UpdateLocation(orderID int64, longitude, latitude float64) (loc Location, customer Conn, group []Conn, ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, found := r.sessions[orderID]
	if !found {
		return Location{}, nil, nil, false
	}

	loc = Location{
		Longitude:  longitude,
		Latitude:   latitude,
		ObservedAt: r.now().UTC().Format(time.RFC3339),
	}
	s.last = &loc

	group = make([]Conn, 0, len(s.group))
	for _, member := range s.group {
		group = append(group, member)
	}
	return loc, s.customer, group, true
}

// Detach clears the role slot only while it still holds this exact
// connection, so a stale disconnect never evicts a fresher takeover.
// The connection always leaves the broadcast group. The session is
// deleted, location included, once both slots are empty.
func (r *Registry) Detach(orderID int64, role Role, c Conn) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[orderID]
	if !ok {
		return false
	}

	delete(s.group, c.ID())

	slot := s.slot(role)
	cleared := false
	if *slot == c {
		*slot = nil
		cleared = true
	}
	if s.empty() {
		delete(r.sessions, orderID)
	}
	return cleared
}

// Snapshot is a pure read; it never mutates state.
func (r *Registry) Snapshot(orderID int64) Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[orderID]
	if !ok || s.last == nil {
		return Snapshot{}
	}
	cp := *s.last
	return Snapshot{
		IsTracking:        true,
		Location:          &cp,
		DriverConnected:   s.driver != nil,
		CustomerConnected: s.customer != nil,
	}
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
