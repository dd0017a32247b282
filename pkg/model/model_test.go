// SPDX-License-Identifier: MIT

package model

import (
	"encoding/json"
	"testing"
)

func testRawNetwork() map[string]any {
	return map[string]any{
		"id":             float64(42),
		"name":           "Example Net",
		"name_long":      "Example Networks Ltd",
		"aka":            "ExNet",
		"website":        "https://example.net",
		"asn":            float64(65000),
		"irr_as_set":     "AS-EXAMPLE",
		"info_type":      "NSP",
		"info_prefixes4": float64(500),
		"info_prefixes6": float64(64),
		"info_traffic":   "100-200Gbps",
		"info_ratio":     "Balanced",
		"info_unicast":   true,
		"info_ipv6":      true,
		"ix_count":       float64(3),
		"fac_count":      float64(1),
		"notes":          "test network",
		"policy_general": "Open",
		"policy_ratio":   false,
		"created":        "2019-01-01T00:00:00Z",
		"updated":        "2021-06-01T00:00:00Z",
		"status":         "ok",
		"netixlan_set": []any{
			map[string]any{
				"id": float64(1), "ix_id": float64(26), "name": "AMS-IX",
				"ixlan_id": float64(26), "speed": float64(10000),
				"asn": float64(65000), "ipaddr4": "192.0.2.1",
				"ipaddr6": "2001:db8::1", "is_rs_peer": true,
				"operational": true, "status": "ok",
			},
			map[string]any{
				"id": float64(2), "ix_id": float64(27), "name": "AMS-IX Hong Kong",
				"ixlan_id": float64(27), "speed": float64(1000),
				"asn": float64(65000), "ipaddr4": "198.51.100.1",
				"is_rs_peer": false, "operational": true, "status": "ok",
			},
			map[string]any{
				"id": float64(3), "ix_id": float64(31), "name": "DE-CIX",
				"ixlan_id": float64(31), "speed": float64(100000),
				"asn": float64(65000), "ipaddr4": "203.0.113.1",
				"ipaddr6": "2001:db8:1::1", "is_rs_peer": true,
				"operational": false, "status": "ok",
			},
		},
		"netfac_set": []any{
			map[string]any{
				"id": float64(7), "name": "Equinix AM7", "city": "Amsterdam",
				"fac_id": float64(55), "local_asn": float64(65000),
				"created": "2019-02-01T00:00:00Z", "status": "ok",
			},
		},
		"poc_set": []any{
			map[string]any{
				"id": float64(9), "role": "NOC", "visible": "Public",
				"name": "Example NOC", "email": "noc@example.net",
				"status": "ok",
			},
		},
	}
}

func TestNewNetworkFromRaw(t *testing.T) {
	n := NewNetworkFromRaw(testRawNetwork())

	if n.ASN != 65000 {
		t.Errorf("got ASN %d, want 65000", n.ASN)
	}
	if n.Name != "Example Net" {
		t.Errorf("got name %q, want %q", n.Name, "Example Net")
	}
	if n.InfoPrefixes4 != 500 || n.InfoPrefixes6 != 64 {
		t.Errorf("got prefixes %d/%d, want 500/64", n.InfoPrefixes4, n.InfoPrefixes6)
	}
	if len(n.Exchanges) != 3 {
		t.Fatalf("got %d exchanges, want 3", len(n.Exchanges))
	}
	if len(n.Facilities) != 1 || len(n.Contacts) != 1 {
		t.Fatalf("got %d facilities / %d contacts, want 1/1", len(n.Facilities), len(n.Contacts))
	}

	// Membership order must be the upstream order, no sorting.
	wantNames := []string{"AMS-IX", "AMS-IX Hong Kong", "DE-CIX"}
	for i, want := range wantNames {
		if n.Exchanges[i].Name != want {
			t.Errorf("exchange %d: got %q, want %q", i, n.Exchanges[i].Name, want)
		}
	}

	// Every child must point back at its owner.
	for _, x := range n.Exchanges {
		if x.Parent != n {
			t.Errorf("exchange %q parent does not resolve to owner", x.Name)
		}
	}
	if n.Facilities[0].Parent != n || n.Contacts[0].Parent != n {
		t.Error("facility/contact parent does not resolve to owner")
	}
}

func TestNewNetworkFromRawShallow(t *testing.T) {
	raw := testRawNetwork()
	raw["netixlan_set"] = []any{float64(1), float64(2), float64(3)}

	n := NewNetworkFromRaw(raw)
	if len(n.Exchanges) != 0 {
		t.Errorf("got %d typed exchanges, want 0 for shallow fetch", len(n.Exchanges))
	}
	if len(n.ExchangeIDs) != 3 || n.ExchangeIDs[0] != 1 || n.ExchangeIDs[2] != 3 {
		t.Errorf("got exchange ids %v, want [1 2 3]", n.ExchangeIDs)
	}

	m := n.ToMap()
	ids, ok := m["netixlan_set"].([]any)
	if !ok || len(ids) != 3 {
		t.Fatalf("shallow netixlan_set should serialize as id list, got %#v", m["netixlan_set"])
	}
}

func TestFindIXPs(t *testing.T) {
	n := NewNetworkFromRaw(testRawNetwork())

	tests := []struct {
		name      string
		filter    IXPFilter
		wantNames []string
	}{
		{"substring case-insensitive", IXPFilter{Name: "ams-ix"}, []string{"AMS-IX", "AMS-IX Hong Kong"}},
		{"exact case-insensitive", IXPFilter{Name: "ams-ix", Exact: true}, []string{"AMS-IX"}},
		{"no match", IXPFilter{Name: "LINX"}, nil},
		{"by ix id", IXPFilter{IXID: 31}, []string{"DE-CIX"}},
		{"by record id", IXPFilter{ID: 2}, []string{"AMS-IX Hong Kong"}},
		{"by ipv4", IXPFilter{IP4: "192.0.2.1"}, []string{"AMS-IX"}},
		{"by ipv6", IXPFilter{IP6: "2001:db8:1::1"}, []string{"DE-CIX"}},
		{"or across criteria", IXPFilter{Name: "de-cix", IP4: "192.0.2.1"}, []string{"AMS-IX", "DE-CIX"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			for x := range n.FindIXPs(tt.filter) {
				got = append(got, x.Name)
			}
			if len(got) != len(tt.wantNames) {
				t.Fatalf("got %v, want %v", got, tt.wantNames)
			}
			for i := range got {
				if got[i] != tt.wantNames[i] {
					t.Errorf("got %v, want %v", got, tt.wantNames)
				}
			}
		})
	}
}

func TestFindIXPsReiterable(t *testing.T) {
	n := NewNetworkFromRaw(testRawNetwork())
	seq := n.FindIXPs(IXPFilter{Name: "ams-ix"})
	for range 2 {
		count := 0
		for range seq {
			count++
		}
		if count != 2 {
			t.Fatalf("got %d matches, want 2", count)
		}
	}
}

func TestFindIXPNoMatch(t *testing.T) {
	n := NewNetworkFromRaw(testRawNetwork())
	if x := n.FindIXP(IXPFilter{Name: "LINX"}); x != nil {
		t.Errorf("got %v, want nil for no match", x)
	}
	if x := n.FindIXP(IXPFilter{Name: "de-cix"}); x == nil || x.Name != "DE-CIX" {
		t.Errorf("got %v, want DE-CIX", x)
	}
}

func TestPurgeIdempotentAndSerializable(t *testing.T) {
	n := NewNetworkFromRaw(testRawNetwork())
	m := n.ToMap()
	Purge(m)

	if _, ok := m["raw_data"]; ok {
		t.Error("purged map still has raw_data")
	}
	for _, key := range []string{"netixlan_set", "netfac_set", "poc_set"} {
		list := m[key].([]any)
		for _, e := range list {
			child := e.(map[string]any)
			if _, ok := child["parent"]; ok {
				t.Errorf("%s child still has parent after purge", key)
			}
		}
	}

	first, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("purged map not JSON-serializable: %v", err)
	}

	// A second purge must change nothing.
	Purge(m)
	second, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("double-purged map not JSON-serializable: %v", err)
	}
	if string(first) != string(second) {
		t.Error("purge is not idempotent")
	}
}

func TestPurgeNetworkDetachesChildren(t *testing.T) {
	n := NewNetworkFromRaw(testRawNetwork())
	n.Purge()

	if n.RawData != nil {
		t.Error("network raw payload not cleared")
	}
	for _, x := range n.Exchanges {
		if x.Parent != nil || x.RawData != nil {
			t.Errorf("exchange %q not detached", x.Name)
		}
	}
	for _, f := range n.Facilities {
		if f.Parent != nil || f.RawData != nil {
			t.Errorf("facility %q not detached", f.Name)
		}
	}
	for _, c := range n.Contacts {
		if c.Parent != nil || c.RawData != nil {
			t.Errorf("contact %q not detached", c.Name)
		}
	}
}

func TestItemsParentLastAndNonMutating(t *testing.T) {
	n := NewNetworkFromRaw(testRawNetwork())
	x := n.Exchanges[0]

	items := x.Items()
	last := items[len(items)-1]
	if last.Key != "parent" {
		t.Fatalf("got last item %q, want parent", last.Key)
	}
	if last.Value != any(n) {
		t.Error("parent item does not point at the original owner")
	}
	for _, it := range items[:len(items)-1] {
		if it.Key == "parent" || it.Key == "raw_data" {
			t.Errorf("item %q must not appear among base fields", it.Key)
		}
	}

	// Serializing works on a copy: the live record keeps its payload and
	// back-reference.
	if x.Parent != n {
		t.Error("serialization nilled the live back-reference")
	}
	if x.RawData == nil {
		t.Error("serialization cleared the live raw payload")
	}
}

func TestCloneSharesParent(t *testing.T) {
	n := NewNetworkFromRaw(testRawNetwork())
	x := n.Exchanges[0]

	c := x.Clone()
	if c == x {
		t.Fatal("clone returned the same instance")
	}
	if c.Parent != x.Parent {
		t.Error("clone must share the parent pointer, not copy it")
	}
	c.Name = "changed"
	if x.Name == "changed" {
		t.Error("clone aliases the original's fields")
	}
}

func TestRawCoercion(t *testing.T) {
	raw := map[string]any{
		"id":  "17",
		"asn": int64(64512),
	}
	n := NewNetworkFromRaw(raw)
	if n.ID != 17 {
		t.Errorf("got id %d, want 17 from string field", n.ID)
	}
	if n.ASN != 64512 {
		t.Errorf("got asn %d, want 64512 from int64 field", n.ASN)
	}
}
