package tracking

import (
	"sync"
	"testing"
)

// fakeConn records everything sent to it.
type fakeConn struct {
	id     string
	mu     sync.Mutex
	sent   []any
	closed bool
}

func newFakeConn(id string) *fakeConn {
	return &fakeConn{id: id}
}

func (f *fakeConn) ID() string { return f.id }

func (f *fakeConn) Send(msg any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, msg)
}

func (f *fakeConn) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
}

func (f *fakeConn) isClosed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.closed
}

func (f *fakeConn) messages() []any {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]any, len(f.sent))
	copy(out, f.sent)
	return out
}

func TestAttachReturnsDisplacedSameRoleConn(t *testing.T) {
	r := NewRegistry()
	a := newFakeConn("a")
	b := newFakeConn("b")

	if displaced, _ := r.Attach(1, RoleDriver, a); displaced != nil {
		t.Fatalf("first attach should displace nothing")
	}
	displaced, _ := r.Attach(1, RoleDriver, b)
	if displaced != a {
		t.Fatalf("second driver attach must displace the first, got %v", displaced)
	}

	snap := r.Snapshot(1)
	if snap.IsTracking {
		t.Fatalf("no location reported yet, snapshot should be empty")
	}
}

func TestStaleDisconnectDoesNotEvictTakeover(t *testing.T) {
	r := NewRegistry()
	a := newFakeConn("a")
	b := newFakeConn("b")

	r.Attach(1, RoleDriver, a)
	r.Attach(1, RoleDriver, b)
	r.Attach(1, RoleCustomer, newFakeConn("c"))
	r.UpdateLocation(1, 5, 6)

	if cleared := r.Detach(1, RoleDriver, a); cleared {
		t.Fatalf("stale disconnect must not clear the slot held by b")
	}

	snap := r.Snapshot(1)
	if !snap.DriverConnected {
		t.Fatalf("driver slot should still hold b after a's stale disconnect")
	}
}

func TestDetachOfCurrentOccupantClearsSlot(t *testing.T) {
	r := NewRegistry()
	d := newFakeConn("d")
	c := newFakeConn("c")

	r.Attach(1, RoleDriver, d)
	r.Attach(1, RoleCustomer, c)
	r.UpdateLocation(1, 1, 2)

	if cleared := r.Detach(1, RoleDriver, d); !cleared {
		t.Fatalf("current occupant's disconnect must clear the slot")
	}
	snap := r.Snapshot(1)
	if snap.DriverConnected {
		t.Fatalf("driver should be disconnected")
	}
	if !snap.CustomerConnected || !snap.IsTracking {
		t.Fatalf("customer and location must survive a driver-only disconnect")
	}
}

func TestSessionRemovedWhenBothSlotsEmpty(t *testing.T) {
	r := NewRegistry()
	d := newFakeConn("d")
	c := newFakeConn("c")

	r.Attach(7, RoleDriver, d)
	r.Attach(7, RoleCustomer, c)
	r.UpdateLocation(7, 3, 4)

	r.Detach(7, RoleDriver, d)
	r.Detach(7, RoleCustomer, c)

	if _, ok := r.sessions[7]; ok {
		t.Fatalf("session must be deleted once both slots are empty")
	}

	// re-admission starts clean: no resurrected location
	if _, last := r.Attach(7, RoleDriver, newFakeConn("d2")); last != nil {
		t.Fatalf("new session must not inherit the old location, got %+v", last)
	}
}

func TestLastLocationOverwrite(t *testing.T) {
	r := NewRegistry()
	r.Attach(2, RoleDriver, newFakeConn("d"))

	r.UpdateLocation(2, 1, 1)
	loc, _, _, ok := r.UpdateLocation(2, 2, 2)
	if !ok {
		t.Fatalf("update on live session should succeed")
	}
	if loc.Longitude != 2 || loc.Latitude != 2 {
		t.Fatalf("unexpected location %+v", loc)
	}

	// a late-joining customer sees (2,2), never (1,1)
	_, last := r.Attach(2, RoleCustomer, newFakeConn("c"))
	if last == nil || last.Longitude != 2 || last.Latitude != 2 {
		t.Fatalf("catch-up location should be the newest point, got %+v", last)
	}
}

func TestUpdateLocationOnUnknownOrderIsNoop(t *testing.T) {
	r := NewRegistry()
	if _, _, _, ok := r.UpdateLocation(99, 1, 1); ok {
		t.Fatalf("update without a session must report not-ok")
	}
	if snap := r.Snapshot(99); snap.IsTracking {
		t.Fatalf("no session should mean no tracking")
	}
}

func TestAtMostOneConnPerRole(t *testing.T) {
	r := NewRegistry()
	for i := 0; i < 5; i++ {
		r.Attach(3, RoleDriver, newFakeConn("d"+string(rune('0'+i))))
		r.Attach(3, RoleCustomer, newFakeConn("c"+string(rune('0'+i))))
	}
	s := r.sessions[3]
	if s.driver == nil || s.customer == nil {
		t.Fatalf("both slots should be occupied")
	}
	if len(s.group) != 2 {
		t.Fatalf("broadcast group must only hold current occupants, got %d", len(s.group))
	}
}
