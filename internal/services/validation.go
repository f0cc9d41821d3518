package services

import (
	"errors"
	"strings"

	"ultrapopular/internal/catalog"
	"ultrapopular/internal/domain"
)

// submission is the input to the submit checks. The store is resolved at
// most once, and only by the check that needs it.
type submission struct {
	session  domain.Session
	stores   catalog.Directory
	store    domain.Store
	resolved bool
	found    bool
}

func (s *submission) storeID() string { return strings.TrimSpace(s.session.StoreID) }

func (s *submission) resolveStore() (bool, error) {
	if s.resolved {
		return s.found, nil
	}
	st, err := s.stores.FindStore(s.storeID())
	switch {
	case err == nil:
		s.store, s.found = st, true
	case errors.Is(err, catalog.ErrNotFound):
		s.found = false
	default:
		return false, err
	}
	s.resolved = true
	return s.found, nil
}

type submitCheck struct {
	kind Kind
	pass func(*submission) (bool, error)
}

// submitChecks run in this order and the first failure is the only one
// reported. A missing store outranks an empty cart.
var submitChecks = []submitCheck{
	{KindNoStoreSelected, func(s *submission) (bool, error) {
		return s.storeID() != "", nil
	}},
	{KindEmptyCart, func(s *submission) (bool, error) {
		return !s.session.Cart.Empty(), nil
	}},
	{KindIncompleteCustomerInfo, func(s *submission) (bool, error) {
		return s.session.Customer.Complete(), nil
	}},
	{KindInvalidStoreReference, (*submission).resolveStore},
}

// CheckOrder runs the submit checks against a session and returns the
// resolved store when all pass.
func CheckOrder(sess domain.Session, stores catalog.Directory) (domain.Store, error) {
	sub := &submission{session: sess, stores: stores}
	for _, c := range submitChecks {
		ok, err := c.pass(sub)
		if err != nil {
			return domain.Store{}, err
		}
		if !ok {
			return domain.Store{}, newError(c.kind)
		}
	}
	return sub.store, nil
}

// SubmitCheckOrder lists the check kinds in evaluation order.
func SubmitCheckOrder() []Kind {
	out := make([]Kind, len(submitChecks))
	for i, c := range submitChecks {
		out[i] = c.kind
	}
	return out
}
