// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootSubcommands(t *testing.T) {
	cmd := newRootCmd()
	want := map[string]bool{
		"asinfo": false, "asinfo-raw": false, "neigh": false,
		"sync": false, "dump-config": false, "gen-config": false,
	}
	for _, sub := range cmd.Commands() {
		if _, ok := want[sub.Name()]; ok {
			want[sub.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestGenConfigCmd(t *testing.T) {
	out, err := runCommand(t, "gen-config", "yaml")
	if err != nil {
		t.Fatalf("gen-config failed: %v", err)
	}
	if !strings.Contains(out, "app:") || !strings.Contains(out, "template_map:") {
		t.Errorf("unexpected example config output:\n%s", out)
	}
}

func TestGenConfigCmdUnknownName(t *testing.T) {
	if _, err := runCommand(t, "gen-config", "toml"); err == nil {
		t.Fatal("got nil, want error for unknown example name")
	}
}

func TestGenConfigCmdToFile(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "config.yaml")
	if _, err := runCommand(t, "gen-config", "yaml", "-o", dest); err != nil {
		t.Fatalf("gen-config failed: %v", err)
	}
}

func TestDumpConfigCmd(t *testing.T) {
	out, err := runCommand(t, "dump-config")
	if err != nil {
		t.Fatalf("dump-config failed: %v", err)
	}
	for _, want := range []string{"app:", "default_os: nxos", "sync:", "peeringdb.com"} {
		if !strings.Contains(out, want) {
			t.Errorf("dumped config missing %q:\n%s", want, out)
		}
	}
}

func TestNeighRejectsBadASN(t *testing.T) {
	if _, err := runCommand(t, "neigh", "not-an-asn"); err == nil {
		t.Fatal("got nil, want error for an ASN with no digits")
	}
}
