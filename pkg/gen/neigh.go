// SPDX-License-Identifier: MIT

// Package gen renders BGP neighbor configuration stanzas for an exchange
// membership through OS-specific templates.
package gen

import (
	"fmt"
	"strings"

	"neighgen/pkg/config"
	"neighgen/pkg/model"
)

// NeighOpts are the per-call overrides for GenerateNeigh. Pointer fields
// distinguish "not given" (nil, fall back to configuration) from an
// explicit zero value: passing an empty peer policy deliberately disables
// that policy's lines in the output.
type NeighOpts struct {
	// Network provides the AS context; when nil the exchange's own
	// back-reference is used.
	Network *model.Network

	// PeerIndex numbers the neighbor within a batch; defaults to 1.
	PeerIndex int
	Port      string
	OS        string

	// ASN and ASName apply only when no network context exists.
	ASN    int
	ASName *string

	PeerTemplate *string
	PeerPolicyV4 *string
	PeerPolicyV6 *string
	PeerSession  *string
	LockVersion  *bool

	UseMaxPrefixes     *bool
	MaxPrefixesV4      *int
	MaxPrefixesV6      *int
	MaxPrefixThreshold *int
	MaxPrefixAction    *string
	MaxPrefixInterval  *int
	MaxPrefixConfig    *string

	TrimName  *bool
	TrimWords *int
}

// NeighContext is the variable set handed to the neighbor templates.
type NeighContext struct {
	IPv4Address string
	IPv6Address string

	PeerTemplate string
	PeerPolicyV4 string
	PeerPolicyV6 string
	PeerSession  string

	ASN       int
	ASName    string
	PeerIndex int
	IXName    string
	Port      string

	LockVersion    bool
	UseMaxPrefixes bool
	MaxPrefixesV4  int
	MaxPrefixesV6  int

	// MaxPrefixConfig is the already-substituted directive tail, e.g.
	// "90 restart 30"; templates embed it verbatim.
	MaxPrefixConfig string
}

func strOr(p *string, def string) string {
	if p != nil {
		return *p
	}
	return def
}

func intOr(p *int, def int) int {
	if p != nil {
		return *p
	}
	return def
}

func boolOr(p *bool, def bool) bool {
	if p != nil {
		return *p
	}
	return def
}

// formatMaxPrefix substitutes the {threshold}/{action}/{interval}
// placeholders of the configured directive format, exactly once. The
// result goes into the context as opaque text so the downstream template
// never re-substitutes it.
func formatMaxPrefix(format string, threshold int, action string, interval int) string {
	r := strings.NewReplacer(
		"{threshold}", fmt.Sprint(threshold),
		"{action}", action,
		"{interval}", fmt.Sprint(interval),
	)
	return r.Replace(format)
}

// BuildContext assembles the rendering context for one exchange
// membership. Precedence everywhere is per-call override, then global
// configuration; AS number and name come from the network context when one
// exists. The exchange itself is never mutated: name trimming applies to
// the context copy only.
func BuildContext(cfg *config.Settings, ix *model.Exchange, opts NeighOpts) NeighContext {
	app := cfg.App

	netwk := opts.Network
	if netwk == nil {
		netwk = ix.Parent
	}

	peerIdx := opts.PeerIndex
	if peerIdx == 0 {
		peerIdx = 1
	}

	ctx := NeighContext{
		IPv4Address:  ix.IPAddr4,
		IPv6Address:  ix.IPAddr6,
		PeerTemplate: strOr(opts.PeerTemplate, app.PeerTemplate),
		PeerPolicyV4: strOr(opts.PeerPolicyV4, app.PeerPolicyV4),
		PeerPolicyV6: strOr(opts.PeerPolicyV6, app.PeerPolicyV6),
		PeerSession:  strOr(opts.PeerSession, app.PeerSession),
		PeerIndex:    peerIdx,
		IXName:       ix.Name,
		Port:         opts.Port,
		LockVersion:  boolOr(opts.LockVersion, app.LockVersion),
	}

	if netwk != nil {
		ctx.ASN = netwk.ASN
		ctx.ASName = netwk.Name
	} else {
		ctx.ASN = ix.ASN
		if ctx.ASN == 0 {
			ctx.ASN = opts.ASN
		}
		ctx.ASName = strOr(opts.ASName, "")
	}

	ctx.UseMaxPrefixes = boolOr(opts.UseMaxPrefixes, app.MaxPrefixes.Use)
	mp4, mp6 := app.MaxPrefixes.V4, app.MaxPrefixes.V6
	if netwk != nil && netwk.InfoPrefixes4 != 0 {
		mp4 = netwk.InfoPrefixes4
	}
	if netwk != nil && netwk.InfoPrefixes6 != 0 {
		mp6 = netwk.InfoPrefixes6
	}
	ctx.MaxPrefixesV4 = intOr(opts.MaxPrefixesV4, mp4)
	ctx.MaxPrefixesV6 = intOr(opts.MaxPrefixesV6, mp6)
	ctx.MaxPrefixConfig = formatMaxPrefix(
		strOr(opts.MaxPrefixConfig, app.MaxPrefixes.Config),
		intOr(opts.MaxPrefixThreshold, app.MaxPrefixes.Threshold),
		strOr(opts.MaxPrefixAction, app.MaxPrefixes.Action),
		intOr(opts.MaxPrefixInterval, app.MaxPrefixes.Interval),
	)

	if boolOr(opts.TrimName, app.IXTrim) {
		words := strings.Fields(ctx.IXName)
		keep := intOr(opts.TrimWords, app.IXTrimWords)
		if keep > 0 && keep < len(words) {
			ctx.IXName = strings.Join(words[:keep], " ")
		}
	}

	return ctx
}

// GenerateNeigh renders a neighbor configuration block for one exchange
// membership and returns the template output unmodified.
func GenerateNeigh(cfg *config.Settings, ix *model.Exchange, opts NeighOpts) (string, error) {
	osName := opts.OS
	if osName == "" {
		osName = cfg.App.DefaultOS
	}
	tpl, err := ResolveTemplate(cfg, osName)
	if err != nil {
		return "", err
	}

	ctx := BuildContext(cfg, ix, opts)
	var out strings.Builder
	if err := tpl.Execute(&out, ctx); err != nil {
		return "", fmt.Errorf("failed to render neighbor config: %w", err)
	}
	return out.String(), nil
}
