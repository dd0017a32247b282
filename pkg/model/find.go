// SPDX-License-Identifier: MIT

package model

import (
	"iter"
	"strings"
)

// IXPFilter selects exchange memberships. Criteria combine as a logical
// OR: a member is yielded when ANY provided criterion matches it, not when
// all do. Callers that pass several criteria at once must account for
// that; every current call site filters on a single criterion.
type IXPFilter struct {
	// Name matches case-insensitively; substring by default, full
	// equality when Exact is set.
	Name  string
	Exact bool

	// IXID matches against the member's exchange id or exchange-lan id.
	IXID int

	// ID matches the membership record id itself.
	ID int

	// IP4/IP6 match the member's addresses exactly.
	IP4 string
	IP6 string
}

func (f IXPFilter) matches(x *Exchange) bool {
	if f.Name != "" {
		if f.Exact {
			if strings.EqualFold(x.Name, f.Name) {
				return true
			}
		} else if strings.Contains(strings.ToLower(x.Name), strings.ToLower(f.Name)) {
			return true
		}
	}
	if f.IXID != 0 && (x.IXID == f.IXID || x.IXLanID == f.IXID) {
		return true
	}
	if f.ID != 0 && x.ID == f.ID {
		return true
	}
	if f.IP4 != "" && x.IPAddr4 == f.IP4 {
		return true
	}
	if f.IP6 != "" && x.IPAddr6 == f.IP6 {
		return true
	}
	return false
}

// FindIXPs returns a lazy sequence of the network's exchange memberships
// matching the filter, in membership order. The sequence is re-evaluated
// on every iteration and is bounded by the membership count. Each member
// is yielded at most once even when several criteria match it.
func (n *Network) FindIXPs(f IXPFilter) iter.Seq[*Exchange] {
	return func(yield func(*Exchange) bool) {
		for _, x := range n.Exchanges {
			if f.matches(x) {
				if !yield(x) {
					return
				}
			}
		}
	}
}

// FindIXP returns the first membership matching the filter, or nil when
// nothing matches. It never returns an error; callers check for nil.
func (n *Network) FindIXP(f IXPFilter) *Exchange {
	for x := range n.FindIXPs(f) {
		return x
	}
	return nil
}
