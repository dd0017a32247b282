// SPDX-License-Identifier: MIT

package model

// Network represents one Autonomous System's PeeringDB "net" record,
// together with its exchange memberships, facility memberships and
// contacts. Field names mirror the PeeringDB API schema so serialized
// output stays byte-compatible with the upstream resource shape.
type Network struct {
	ID                      int
	Name                    string
	NameLong                string
	AKA                     string
	Website                 string
	OrigID                  int
	ASN                     int
	LookingGlass            string
	RouteServer             string
	IRRASSet                string
	InfoType                string
	InfoPrefixes4           int
	InfoPrefixes6           int
	InfoTraffic             string
	InfoRatio               string
	InfoScope               string
	InfoUnicast             bool
	InfoMulticast           bool
	InfoIPv6                bool
	InfoNeverViaRouteServer bool

	IXCount  int
	FacCount int
	Notes    string

	NetIXLanUpdated string
	NetFacUpdated   string
	POCUpdated      string

	PolicyURL       string
	PolicyGeneral   string
	PolicyLocations string
	PolicyRatio     bool
	PolicyContracts string

	// Membership sets, in PeeringDB's given order. A shallow fetch
	// (depth 0) returns bare record ids instead of nested records; those
	// land in the parallel ID slices and the typed slices stay empty.
	Facilities  []*Facility
	Exchanges   []*Exchange
	Contacts    []*Contact
	FacilityIDs []int
	ExchangeIDs []int
	ContactIDs  []int

	AllowIXPUpdate bool
	Created        string
	Updated        string
	Status         string

	RawData map[string]any
}

// Exchange is one exchange-point membership record (PeeringDB netixlan):
// this network is present at this IXP with these addresses.
type Exchange struct {
	ID          int
	IXID        int
	Name        string
	IXLanID     int
	Note        string
	Speed       int
	ASN         int
	IPAddr4     string
	IPAddr6     string
	IsRSPeer    bool
	Operational bool
	Created     string
	Updated     string
	Status      string

	// Parent is a non-owning back-reference to the Network this
	// membership belongs to; nil for standalone records.
	Parent  *Network
	RawData map[string]any
}

// Facility is one facility membership record (PeeringDB netfac).
type Facility struct {
	ID       int
	Name     string
	City     string
	FacID    int
	LocalASN int
	Created  string
	Updated  string
	Status   string

	Parent  *Network
	RawData map[string]any
}

// Contact is one point-of-contact record (PeeringDB poc).
type Contact struct {
	ID      int
	Role    string
	Visible string
	Name    string
	Phone   string
	Email   string
	URL     string
	Created string
	Updated string
	Status  string

	Parent  *Network
	RawData map[string]any
}

// Clone returns a copy of the exchange. Scalars are copied by value; the
// parent pointer is shared with the original, never copied through, so
// cloning one membership cannot cascade into the owning network and its
// sibling records. The raw payload is not carried over.
func (x *Exchange) Clone() *Exchange {
	c := *x
	c.RawData = nil
	return &c
}

// Clone returns a copy of the facility; see Exchange.Clone for the parent
// sharing rule.
func (f *Facility) Clone() *Facility {
	c := *f
	c.RawData = nil
	return &c
}

// Clone returns a copy of the contact; see Exchange.Clone for the parent
// sharing rule.
func (c *Contact) Clone() *Contact {
	cp := *c
	cp.RawData = nil
	return &cp
}
