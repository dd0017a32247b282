// SPDX-License-Identifier: MIT

package model

// Item is one (field name, value) pair produced by entity serialization.
type Item struct {
	Key   string
	Value any
}

// Items returns the exchange's serializable fields in declaration order.
// The raw payload is never included. The pairs are produced from a purged
// clone, so serializing never mutates the live record, and the ORIGINAL
// parent pointer is appended as the final pair so a consumer can still
// navigate to the owner without the walk recursing through it.
func (x *Exchange) Items() []Item {
	parent := x.Parent
	c := x.Clone()
	Purge(c)
	return []Item{
		{"id", c.ID},
		{"ix_id", c.IXID},
		{"name", c.Name},
		{"ixlan_id", c.IXLanID},
		{"note", c.Note},
		{"speed", c.Speed},
		{"asn", c.ASN},
		{"ipaddr4", c.IPAddr4},
		{"ipaddr6", c.IPAddr6},
		{"is_rs_peer", c.IsRSPeer},
		{"operational", c.Operational},
		{"created", c.Created},
		{"updated", c.Updated},
		{"status", c.Status},
		{"parent", parent},
	}
}

// Items returns the facility's serializable fields; see Exchange.Items.
func (f *Facility) Items() []Item {
	parent := f.Parent
	c := f.Clone()
	Purge(c)
	return []Item{
		{"id", c.ID},
		{"name", c.Name},
		{"city", c.City},
		{"fac_id", c.FacID},
		{"local_asn", c.LocalASN},
		{"created", c.Created},
		{"updated", c.Updated},
		{"status", c.Status},
		{"parent", parent},
	}
}

// Items returns the contact's serializable fields; see Exchange.Items.
func (c *Contact) Items() []Item {
	parent := c.Parent
	cp := c.Clone()
	Purge(cp)
	return []Item{
		{"id", cp.ID},
		{"role", cp.Role},
		{"visible", cp.Visible},
		{"name", cp.Name},
		{"phone", cp.Phone},
		{"email", cp.Email},
		{"url", cp.URL},
		{"created", cp.Created},
		{"updated", cp.Updated},
		{"status", cp.Status},
		{"parent", parent},
	}
}

// Items returns the network's serializable fields in declaration order.
// The raw payload is excluded; membership sets are listified into plain
// mappings through each child's own Items contract. When a shallow fetch
// left a set as bare ids, the id list is emitted as-is.
func (n *Network) Items() []Item {
	return []Item{
		{"id", n.ID},
		{"name", n.Name},
		{"name_long", n.NameLong},
		{"aka", n.AKA},
		{"website", n.Website},
		{"org_id", n.OrigID},
		{"asn", n.ASN},
		{"looking_glass", n.LookingGlass},
		{"route_server", n.RouteServer},
		{"irr_as_set", n.IRRASSet},
		{"info_type", n.InfoType},
		{"info_prefixes4", n.InfoPrefixes4},
		{"info_prefixes6", n.InfoPrefixes6},
		{"info_traffic", n.InfoTraffic},
		{"info_ratio", n.InfoRatio},
		{"info_scope", n.InfoScope},
		{"info_unicast", n.InfoUnicast},
		{"info_multicast", n.InfoMulticast},
		{"info_ipv6", n.InfoIPv6},
		{"info_never_via_route_servers", n.InfoNeverViaRouteServer},
		{"ix_count", n.IXCount},
		{"fac_count", n.FacCount},
		{"notes", n.Notes},
		{"netixlan_updated", n.NetIXLanUpdated},
		{"netfac_updated", n.NetFacUpdated},
		{"poc_updated", n.POCUpdated},
		{"policy_url", n.PolicyURL},
		{"policy_general", n.PolicyGeneral},
		{"policy_locations", n.PolicyLocations},
		{"policy_ratio", n.PolicyRatio},
		{"policy_contracts", n.PolicyContracts},
		{"netfac_set", n.facSetValue()},
		{"netixlan_set", n.ixSetValue()},
		{"poc_set", n.pocSetValue()},
		{"allow_ixp_update", n.AllowIXPUpdate},
		{"created", n.Created},
		{"updated", n.Updated},
		{"status", n.Status},
	}
}

func (n *Network) facSetValue() []any {
	if len(n.FacilityIDs) > 0 {
		return intsToAny(n.FacilityIDs)
	}
	out := make([]any, 0, len(n.Facilities))
	for _, f := range n.Facilities {
		out = append(out, f.ToMap())
	}
	return out
}

func (n *Network) ixSetValue() []any {
	if len(n.ExchangeIDs) > 0 {
		return intsToAny(n.ExchangeIDs)
	}
	out := make([]any, 0, len(n.Exchanges))
	for _, x := range n.Exchanges {
		out = append(out, x.ToMap())
	}
	return out
}

func (n *Network) pocSetValue() []any {
	if len(n.ContactIDs) > 0 {
		return intsToAny(n.ContactIDs)
	}
	out := make([]any, 0, len(n.Contacts))
	for _, c := range n.Contacts {
		out = append(out, c.ToMap())
	}
	return out
}

func intsToAny(ids []int) []any {
	out := make([]any, len(ids))
	for i, id := range ids {
		out[i] = id
	}
	return out
}

// ToMap converts the pairs from Items into a plain mapping.
func (n *Network) ToMap() map[string]any  { return itemsToMap(n.Items()) }
func (x *Exchange) ToMap() map[string]any { return itemsToMap(x.Items()) }
func (f *Facility) ToMap() map[string]any { return itemsToMap(f.Items()) }
func (c *Contact) ToMap() map[string]any  { return itemsToMap(c.Items()) }

func itemsToMap(items []Item) map[string]any {
	m := make(map[string]any, len(items))
	for _, it := range items {
		m[it.Key] = it.Value
	}
	return m
}
