package tracking

import (
	"encoding/json"
	"fmt"

	"arheb/internal/utils"
)

// Bridge is the per-connection behavior after admission: slot
// installation, catch-up emit, inbound event handling, disconnects.
type Bridge struct {
	Registry *Registry
}

// Join registers the admitted connection in its session. A same-role
// occupant is closed first (last-writer-wins; the older connection
// gets no distinguishing error). Late-joining customers immediately
// receive the last known location when one exists.
func (b Bridge) Join(adm Admission, role Role, c Conn) {
	displaced, last := b.Registry.Attach(adm.OrderID, role, c)
	if displaced != nil {
		displaced.Close()
	}

	message := "Connected to order tracking"
	if role == RoleDriver {
		message = "Connected as driver"
	}
	c.Send(newConnected(role, adm.OrderID, message))

	if role == RoleCustomer && last != nil {
		c.Send(newLocationUpdate(adm.OrderID, *last))
	}

	utils.LogEvent("", "tracking", "join", fmt.Sprintf("order_id=%d role=%s conn=%s", adm.OrderID, role, c.ID()))
}

// HandleFrame dispatches one inbound frame. Per-event failures are
// reported back to the sender only; the connection stays open and the
// session state is untouched.
func (b Bridge) HandleFrame(orderID int64, role Role, c Conn, raw []byte) {
	var in Inbound
	if err := json.Unmarshal(raw, &in); err != nil {
		c.Send(newErrorMsg("Malformed message"))
		return
	}

	switch in.Type {
	case TypeDriverLocation:
		b.handleDriverLocation(orderID, role, c, in.Data)
	default:
		c.Send(newErrorMsg(fmt.Sprintf("Unknown event: %s", in.Type)))
	}
}

func (b Bridge) handleDriverLocation(orderID int64, role Role, c Conn, data json.RawMessage) {
	if role != RoleDriver {
		c.Send(newErrorMsg("Only drivers can send location updates"))
		return
	}

	dl, err := parseDriverLocation(data)
	if err != nil {
		c.Send(newErrorMsg(err.Error()))
		return
	}

	loc, customer, group, ok := b.Registry.UpdateLocation(orderID, *dl.Longitude, *dl.Latitude)
	if !ok {
		return
	}

	update := newLocationUpdate(orderID, loc)
	if customer != nil {
		customer.Send(update)
	}
	// Group fan-out overlaps the direct customer emit; duplicate
	// delivery to the same customer is expected.
	for _, member := range group {
		member.Send(update)
	}

	c.Send(LocationSent{Type: TypeLocationSent, Success: true, Message: "Location updated successfully"})
}

// Leave clears the connection's own slot; a stale disconnect after a
// takeover only drops group membership.
func (b Bridge) Leave(orderID int64, role Role, c Conn) {
	cleared := b.Registry.Detach(orderID, role, c)
	utils.LogEvent("", "tracking", "leave", fmt.Sprintf("order_id=%d role=%s conn=%s cleared=%t", orderID, role, c.ID(), cleared))
}
