// SPDX-License-Identifier: MIT

package model

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Raw record coercion helpers. Raw mappings arrive from two decoders with
// different numeric habits: encoding/json (float64) and msgpack
// (int8/uint16/... depending on wire size). Every field read goes through
// these so both sources normalize identically.

func asString(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case json.Number:
		return s.String()
	case bool:
		if s {
			return "true"
		}
		return "false"
	default:
		if n, ok := asInt64(v); ok {
			return strconv.FormatInt(n, 10)
		}
	}
	return ""
}

func asInt(v any) int {
	if n, ok := asInt64(v); ok {
		return int(n)
	}
	return 0
}

func asInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		return int64(n), true
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		return int64(n), true
	case float32:
		return int64(n), true
	case float64:
		return int64(n), true
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, false
		}
		return i, true
	case string:
		i, err := strconv.ParseInt(strings.TrimSpace(n), 10, 64)
		if err != nil {
			return 0, false
		}
		return i, true
	}
	return 0, false
}

func asBool(v any) bool {
	switch b := v.(type) {
	case bool:
		return b
	case string:
		return strings.EqualFold(b, "true") || b == "1"
	default:
		if n, ok := asInt64(v); ok {
			return n != 0
		}
	}
	return false
}

// NewNetworkFromRaw builds a Network from one raw PeeringDB net record.
// Nested membership lists under netfac_set/netixlan_set/poc_set become
// typed children carrying a back-reference to the returned Network. If the
// upstream fetch was shallow and a list holds bare numeric ids, the ids are
// kept as ids (ExchangeIDs etc.) and no children are constructed.
func NewNetworkFromRaw(raw map[string]any) *Network {
	n := &Network{
		ID:                      asInt(raw["id"]),
		Name:                    asString(raw["name"]),
		NameLong:                asString(raw["name_long"]),
		AKA:                     asString(raw["aka"]),
		Website:                 asString(raw["website"]),
		OrigID:                  asInt(raw["org_id"]),
		ASN:                     asInt(raw["asn"]),
		LookingGlass:            asString(raw["looking_glass"]),
		RouteServer:             asString(raw["route_server"]),
		IRRASSet:                asString(raw["irr_as_set"]),
		InfoType:                asString(raw["info_type"]),
		InfoPrefixes4:           asInt(raw["info_prefixes4"]),
		InfoPrefixes6:           asInt(raw["info_prefixes6"]),
		InfoTraffic:             asString(raw["info_traffic"]),
		InfoRatio:               asString(raw["info_ratio"]),
		InfoScope:               asString(raw["info_scope"]),
		InfoUnicast:             asBool(raw["info_unicast"]),
		InfoMulticast:           asBool(raw["info_multicast"]),
		InfoIPv6:                asBool(raw["info_ipv6"]),
		InfoNeverViaRouteServer: asBool(raw["info_never_via_route_servers"]),
		IXCount:                 asInt(raw["ix_count"]),
		FacCount:                asInt(raw["fac_count"]),
		Notes:                   asString(raw["notes"]),
		NetIXLanUpdated:         asString(raw["netixlan_updated"]),
		NetFacUpdated:           asString(raw["netfac_updated"]),
		POCUpdated:              asString(raw["poc_updated"]),
		PolicyURL:               asString(raw["policy_url"]),
		PolicyGeneral:           asString(raw["policy_general"]),
		PolicyLocations:         asString(raw["policy_locations"]),
		PolicyRatio:             asBool(raw["policy_ratio"]),
		PolicyContracts:         asString(raw["policy_contracts"]),
		AllowIXPUpdate:          asBool(raw["allow_ixp_update"]),
		Created:                 asString(raw["created"]),
		Updated:                 asString(raw["updated"]),
		Status:                  asString(raw["status"]),
		RawData:                 raw,
	}

	eachRawChild(raw["netfac_set"], &n.FacilityIDs, func(m map[string]any) {
		n.Facilities = append(n.Facilities, NewFacilityFromRaw(m, n))
	})
	eachRawChild(raw["netixlan_set"], &n.ExchangeIDs, func(m map[string]any) {
		n.Exchanges = append(n.Exchanges, NewExchangeFromRaw(m, n))
	})
	eachRawChild(raw["poc_set"], &n.ContactIDs, func(m map[string]any) {
		n.Contacts = append(n.Contacts, NewContactFromRaw(m, n))
	})
	return n
}

// eachRawChild walks one membership list, dispatching full records to
// build and collecting bare ids into ids, preserving the given order.
func eachRawChild(v any, ids *[]int, build func(map[string]any)) {
	list, ok := v.([]any)
	if !ok {
		return
	}
	for _, entry := range list {
		if m, ok := entry.(map[string]any); ok {
			build(m)
			continue
		}
		if id, ok := asInt64(entry); ok {
			*ids = append(*ids, int(id))
		}
	}
}

// NewExchangeFromRaw builds an Exchange from one raw netixlan record.
// parent may be nil for standalone records.
func NewExchangeFromRaw(raw map[string]any, parent *Network) *Exchange {
	return &Exchange{
		ID:          asInt(raw["id"]),
		IXID:        asInt(raw["ix_id"]),
		Name:        asString(raw["name"]),
		IXLanID:     asInt(raw["ixlan_id"]),
		Note:        asString(raw["notes"]),
		Speed:       asInt(raw["speed"]),
		ASN:         asInt(raw["asn"]),
		IPAddr4:     asString(raw["ipaddr4"]),
		IPAddr6:     asString(raw["ipaddr6"]),
		IsRSPeer:    asBool(raw["is_rs_peer"]),
		Operational: asBool(raw["operational"]),
		Created:     asString(raw["created"]),
		Updated:     asString(raw["updated"]),
		Status:      asString(raw["status"]),
		Parent:      parent,
		RawData:     raw,
	}
}

// NewFacilityFromRaw builds a Facility from one raw netfac record.
func NewFacilityFromRaw(raw map[string]any, parent *Network) *Facility {
	return &Facility{
		ID:       asInt(raw["id"]),
		Name:     asString(raw["name"]),
		City:     asString(raw["city"]),
		FacID:    asInt(raw["fac_id"]),
		LocalASN: asInt(raw["local_asn"]),
		Created:  asString(raw["created"]),
		Updated:  asString(raw["updated"]),
		Status:   asString(raw["status"]),
		Parent:   parent,
		RawData:  raw,
	}
}

// NewContactFromRaw builds a Contact from one raw poc record.
func NewContactFromRaw(raw map[string]any, parent *Network) *Contact {
	return &Contact{
		ID:      asInt(raw["id"]),
		Role:    asString(raw["role"]),
		Visible: asString(raw["visible"]),
		Name:    asString(raw["name"]),
		Phone:   asString(raw["phone"]),
		Email:   asString(raw["email"]),
		URL:     asString(raw["url"]),
		Created: asString(raw["created"]),
		Updated: asString(raw["updated"]),
		Status:  asString(raw["status"]),
		Parent:  parent,
		RawData: raw,
	}
}
