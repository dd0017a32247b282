// SPDX-License-Identifier: MIT

package model

// Membership keys whose values are recursed into when purging plain
// mappings.
var purgeSetKeys = []string{"netfac_set", "netixlan_set", "poc_set"}

// Purge strips raw payloads and parent back-references from v, in place,
// so the value can be handed to serializers that cannot represent cycles
// (JSON/YAML/XML). The input is returned for chaining.
//
// Dispatch is over the closed set of shapes a PeeringDB value can take:
//
//   - *Network: clears its raw payload and, for every child in all three
//     membership sets, clears the child's payload and nils its
//     back-reference. The network itself is top-level and keeps no parent.
//   - *Exchange, *Facility, *Contact: clears own payload and
//     back-reference.
//   - map[string]any: deletes "parent" and "raw_data" keys and recurses
//     into the membership set keys.
//   - []any, []map[string]any: recurses per element.
//
// Purge is idempotent: a second application is a no-op.
func Purge(v any) any {
	switch o := v.(type) {
	case *Network:
		for _, f := range o.Facilities {
			f.RawData, f.Parent = nil, nil
		}
		for _, x := range o.Exchanges {
			x.RawData, x.Parent = nil, nil
		}
		for _, c := range o.Contacts {
			c.RawData, c.Parent = nil, nil
		}
		o.RawData = nil
	case *Exchange:
		o.RawData, o.Parent = nil, nil
	case *Facility:
		o.RawData, o.Parent = nil, nil
	case *Contact:
		o.RawData, o.Parent = nil, nil
	case map[string]any:
		delete(o, "parent")
		delete(o, "raw_data")
		for _, key := range purgeSetKeys {
			if sub, ok := o[key]; ok {
				o[key] = Purge(sub)
			}
		}
	case []any:
		for i, e := range o {
			o[i] = Purge(e)
		}
	case []map[string]any:
		for _, e := range o {
			Purge(e)
		}
	}
	return v
}

// Purge clears the network's raw payload and detaches all of its children
// from their payloads and back-references. See the package-level Purge.
func (n *Network) Purge() *Network {
	Purge(n)
	return n
}

// Purge clears the exchange's raw payload and back-reference.
func (x *Exchange) Purge() *Exchange {
	Purge(x)
	return x
}

// Purge clears the facility's raw payload and back-reference.
func (f *Facility) Purge() *Facility {
	Purge(f)
	return f
}

// Purge clears the contact's raw payload and back-reference.
func (c *Contact) Purge() *Contact {
	Purge(c)
	return c
}
