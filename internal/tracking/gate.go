package tracking

import (
	"strconv"
	"strings"

	"arheb/internal/domain"
	"arheb/internal/domain/models"
)

// TokenVerifier validates a bearer credential and yields the stable
// user identity (phone number).
type TokenVerifier interface {
	Verify(credential string) (string, error)
}

// OrderLookup is the only capability the tracking core consumes from
// the persistence layer.
type OrderLookup interface {
	GetByID(id int64) (*models.Order, error)
}

// Admission is the resolved connection context a successful gate pass
// produces.
type Admission struct {
	Identity string
	OrderID  int64
	Order    *models.Order
}

// Gate performs the handshake-time admission check. It runs exactly
// once per connection, before any session state is touched; a
// rejection means nothing was registered.
type Gate struct {
	Tokens TokenVerifier
	Orders OrderLookup
}

// Admit checks the handshake metadata in order: presence, credential,
// then order existence. Role is not decided here; the bridge infers it
// from ownership. Any authenticated identity that does not own the
// order is currently admitted as the driver. There is no driver
// credential class or assignment record yet, so a production rollout
// needs an explicit driver assignment looked up from the order.
func (g Gate) Admit(credential, orderID string) (Admission, error) {
	if strings.TrimSpace(credential) == "" || strings.TrimSpace(orderID) == "" {
		return Admission{}, domain.AuthenticationError{Msg: "Authentication failed: Token and orderId are required"}
	}

	identity, err := g.Tokens.Verify(credential)
	if err != nil {
		return Admission{}, domain.AuthenticationError{Msg: "Authentication failed: Invalid token", Err: err}
	}

	id, err := strconv.ParseInt(strings.TrimSpace(orderID), 10, 64)
	if err != nil {
		return Admission{}, domain.NotFoundError{Resource: "order", Err: err}
	}

	order, err := g.Orders.GetByID(id)
	if err != nil || order == nil {
		return Admission{}, domain.NotFoundError{Resource: "order", Err: err}
	}

	return Admission{Identity: identity, OrderID: id, Order: order}, nil
}

// ResolveRole applies the ownership rule: the order owner is the
// customer, everyone else the driver.
func (a Admission) ResolveRole() Role {
	if a.Order.OwnedBy(a.Identity) {
		return RoleCustomer
	}
	return RoleDriver
}
