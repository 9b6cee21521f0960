package tracking

import (
	"testing"

	"arheb/internal/domain/models"
)

func testAdmission(orderID int64, identity string) Admission {
	return Admission{
		Identity: identity,
		OrderID:  orderID,
		Order:    &models.Order{ID: orderID, UserID: "+owner", PhoneNumber: "+owner"},
	}
}

func firstMessage[T any](t *testing.T, c *fakeConn) T {
	t.Helper()
	for _, m := range c.messages() {
		if v, ok := m.(T); ok {
			return v
		}
	}
	var zero T
	t.Fatalf("no message of type %T in %v", zero, c.messages())
	return zero
}

func countType(c *fakeConn, typeTag string) int {
	n := 0
	for _, m := range c.messages() {
		switch v := m.(type) {
		case Connected:
			if v.Type == typeTag {
				n++
			}
		case LocationUpdate:
			if v.Type == typeTag {
				n++
			}
		case LocationSent:
			if v.Type == typeTag {
				n++
			}
		case ErrorMsg:
			if v.Type == typeTag {
				n++
			}
		}
	}
	return n
}

func TestJoinEmitsConnectedAck(t *testing.T) {
	b := Bridge{Registry: NewRegistry()}
	d := newFakeConn("d")

	b.Join(testAdmission(1, "+driver"), RoleDriver, d)

	ack := firstMessage[Connected](t, d)
	if ack.Role != RoleDriver || ack.OrderID != 1 {
		t.Fatalf("unexpected connected ack %+v", ack)
	}
}

func TestSecondDriverTerminatesFirst(t *testing.T) {
	b := Bridge{Registry: NewRegistry()}
	a := newFakeConn("a")
	c := newFakeConn("b")

	b.Join(testAdmission(1, "+driverA"), RoleDriver, a)
	b.Join(testAdmission(1, "+driverB"), RoleDriver, c)

	if !a.isClosed() {
		t.Fatalf("first driver connection must be closed on takeover")
	}
	if countType(c, TypeConnected) != 1 {
		t.Fatalf("second driver must receive connected")
	}
}

func TestLateCustomerGetsCatchUpSnapshot(t *testing.T) {
	b := Bridge{Registry: NewRegistry()}
	d := newFakeConn("d")
	b.Join(testAdmission(1, "+driver"), RoleDriver, d)

	b.HandleFrame(1, RoleDriver, d, []byte(`{"type":"driver_location","data":{"longitude":1,"latitude":1}}`))
	b.HandleFrame(1, RoleDriver, d, []byte(`{"type":"driver_location","data":{"longitude":2,"latitude":2}}`))

	cust := newFakeConn("c")
	b.Join(testAdmission(1, "+owner"), RoleCustomer, cust)

	upd := firstMessage[LocationUpdate](t, cust)
	if upd.Longitude != 2 || upd.Latitude != 2 {
		t.Fatalf("catch-up must be the newest point, got %+v", upd)
	}
}

func TestDriverLocationFanOutAndAck(t *testing.T) {
	b := Bridge{Registry: NewRegistry()}
	d := newFakeConn("d")
	cust := newFakeConn("c")
	b.Join(testAdmission(1, "+owner"), RoleCustomer, cust)
	b.Join(testAdmission(1, "+driver"), RoleDriver, d)

	b.HandleFrame(1, RoleDriver, d, []byte(`{"type":"driver_location","data":{"longitude":31.2,"latitude":30.0}}`))

	// direct emit plus group fan-out: the customer hears it twice
	if got := countType(cust, TypeLocationUpdate); got != 2 {
		t.Fatalf("customer should receive the update twice (direct + group), got %d", got)
	}
	// the driver is in the group too
	if got := countType(d, TypeLocationUpdate); got != 1 {
		t.Fatalf("driver should receive the group emit once, got %d", got)
	}
	sent := firstMessage[LocationSent](t, d)
	if !sent.Success {
		t.Fatalf("driver must get a success ack")
	}
}

func TestCustomerCannotSendLocation(t *testing.T) {
	reg := NewRegistry()
	b := Bridge{Registry: reg}
	cust := newFakeConn("c")
	b.Join(testAdmission(1, "+owner"), RoleCustomer, cust)

	b.HandleFrame(1, RoleCustomer, cust, []byte(`{"type":"driver_location","data":{"longitude":1,"latitude":1}}`))

	if countType(cust, TypeError) != 1 {
		t.Fatalf("customer must get a local error event")
	}
	if cust.isClosed() {
		t.Fatalf("wrong-role event must not close the connection")
	}
	if reg.Snapshot(1).IsTracking {
		t.Fatalf("state must be unchanged after a rejected event")
	}
}

func TestMalformedCoordinatesLeaveStateUntouched(t *testing.T) {
	reg := NewRegistry()
	b := Bridge{Registry: reg}
	d := newFakeConn("d")
	b.Join(testAdmission(1, "+driver"), RoleDriver, d)

	b.HandleFrame(1, RoleDriver, d, []byte(`{"type":"driver_location","data":{"longitude":4,"latitude":5}}`))

	for _, frame := range []string{
		`{"type":"driver_location","data":{"longitude":"x"}}`,
		`{"type":"driver_location","data":{"latitude":1}}`,
		`{"type":"driver_location"}`,
		`{"type":"driver_location","data":{"longitude":1,"latitude":"y"}}`,
		`not json at all`,
	} {
		b.HandleFrame(1, RoleDriver, d, []byte(frame))
	}

	if countType(d, TypeError) != 5 {
		t.Fatalf("every malformed frame must produce a local error, got %d", countType(d, TypeError))
	}
	if d.isClosed() {
		t.Fatalf("validation errors must not close the connection")
	}

	snap := reg.Snapshot(1)
	if !snap.IsTracking || snap.Location.Longitude != 4 || snap.Location.Latitude != 5 {
		t.Fatalf("prior location must remain queryable unmodified, got %+v", snap)
	}
}

func TestUnknownEventGetsLocalError(t *testing.T) {
	b := Bridge{Registry: NewRegistry()}
	d := newFakeConn("d")
	b.Join(testAdmission(1, "+driver"), RoleDriver, d)

	b.HandleFrame(1, RoleDriver, d, []byte(`{"type":"teleport"}`))
	if countType(d, TypeError) != 1 {
		t.Fatalf("unknown event must be rejected locally")
	}
}

func TestLeaveAfterTakeoverKeepsCurrentDriver(t *testing.T) {
	reg := NewRegistry()
	b := Bridge{Registry: reg}
	a := newFakeConn("a")
	c := newFakeConn("b")
	cust := newFakeConn("c")

	b.Join(testAdmission(1, "+owner"), RoleCustomer, cust)
	b.Join(testAdmission(1, "+driverA"), RoleDriver, a)
	b.Join(testAdmission(1, "+driverB"), RoleDriver, c)

	// a's transport now reports the disconnect of the replaced conn
	b.Leave(1, RoleDriver, a)

	b.HandleFrame(1, RoleDriver, c, []byte(`{"type":"driver_location","data":{"longitude":9,"latitude":9}}`))
	snap := reg.Snapshot(1)
	if !snap.DriverConnected {
		t.Fatalf("slot must still hold the takeover connection")
	}
	if snap.Location == nil || snap.Location.Longitude != 9 {
		t.Fatalf("takeover driver must still be able to report, got %+v", snap)
	}
}
