// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"neighgen/pkg/model"
)

var (
	titleStyle = color.New(color.Bold, color.FgYellow)
	fileNote   = color.New(color.FgYellow)
	okNote     = color.New(color.Bold, color.FgGreen)
	badNote    = color.New(color.Bold, color.FgRed)
)

func yesNo(ok bool) string {
	if ok {
		return okNote.Sprint("YES")
	}
	return badNote.Sprint("NO")
}

// formatSpeed renders a port speed in mbps or gbps with a color keyed to
// the magnitude, so big ports stand out in the exchange table.
func formatSpeed(mbps int) string {
	text := fmt.Sprintf("%d mbps", mbps)
	if mbps >= 1000 {
		if mbps%1000 == 0 {
			text = fmt.Sprintf("%d gbps", mbps/1000)
		} else {
			text = fmt.Sprintf("%.1f gbps", float64(mbps)/1000)
		}
	}
	switch {
	case mbps < 200:
		return color.RedString(text)
	case mbps < 1000:
		return color.YellowString(text)
	case mbps < 3000:
		return color.MagentaString(text)
	case mbps < 20000:
		return color.CyanString(text)
	case mbps < 100000:
		return color.New(color.Bold, color.FgCyan).Sprint(text)
	case mbps < 200000:
		return color.GreenString(text)
	default:
		return okNote.Sprint(text)
	}
}

func kvTable(w io.Writer, title string, rows [][]string) {
	fmt.Fprintln(w, titleStyle.Sprint(title))
	tbl := tablewriter.NewWriter(w)
	tbl.SetHeader([]string{"Key", "Value"})
	tbl.SetAutoWrapText(false)
	tbl.SetAlignment(tablewriter.ALIGN_LEFT)
	tbl.AppendBulk(rows)
	tbl.Render()
	fmt.Fprintln(w)
}

// ASInfo prints the general and peering-policy overview tables for a
// network, followed by its notes.
func ASInfo(w io.Writer, n *model.Network) {
	kvTable(w, fmt.Sprintf("%s - AS%d", n.Name, n.ASN), [][]string{
		{"Name", n.Name},
		{"AS Number", strconv.Itoa(n.ASN)},
		{"Website", n.Website},
		{"AS-SET", n.IRRASSet},
		{"Content Type", n.InfoType},
		{"Max IPv4 Prefixes", strconv.Itoa(n.InfoPrefixes4)},
		{"Max IPv6 Prefixes", strconv.Itoa(n.InfoPrefixes6)},
		{"Traffic Amount", n.InfoTraffic},
		{"Traffic Ratio", n.InfoRatio},
		{"Supports IPv6", yesNo(n.InfoIPv6)},
		{"Created At", n.Created},
	})

	kvTable(w, fmt.Sprintf("Peering Info - %s - AS%d", n.Name, n.ASN), [][]string{
		{"Number of IXPs present on", strconv.Itoa(n.IXCount)},
		{"Number of Facilities present on", strconv.Itoa(n.FacCount)},
		{"Never uses Route Servers", yesNo(n.InfoNeverViaRouteServer)},
		{"Peering Policy URL", n.PolicyURL},
		{"Peering Policy Type", n.PolicyGeneral},
		{"Peering Policy Locations", n.PolicyLocations},
		{"Peering Policy Ratio Required", yesNo(n.PolicyRatio)},
		{"Peering Policy Contract Required", n.PolicyContracts},
	})

	if n.Notes != "" {
		fmt.Fprintln(w, titleStyle.Sprint("Notes / Description"))
		fmt.Fprintln(w, color.CyanString(n.Notes))
		fmt.Fprintln(w)
	}
}

// ExchangeTable prints the network's exchange memberships.
func ExchangeTable(w io.Writer, n *model.Network) {
	fmt.Fprintln(w, titleStyle.Sprintf("%s (%d) is present at these IXPs:", n.Name, n.ASN))
	tbl := tablewriter.NewWriter(w)
	tbl.SetHeader([]string{
		"Exchange", "Port Speed", "ASN", "IPv4 Address", "IPv6 Address",
		"Route Server Peer", "Working",
	})
	tbl.SetAutoWrapText(false)
	for _, ix := range n.Exchanges {
		tbl.Append([]string{
			ix.Name, formatSpeed(ix.Speed), strconv.Itoa(ix.ASN),
			ix.IPAddr4, ix.IPAddr6, yesNo(ix.IsRSPeer), yesNo(ix.Operational),
		})
	}
	tbl.Render()
	fmt.Fprintln(w)
}

// FacilityTable prints the network's facility memberships.
func FacilityTable(w io.Writer, n *model.Network) {
	fmt.Fprintln(w, titleStyle.Sprintf("%s (%d) is present at these Facilities:", n.Name, n.ASN))
	tbl := tablewriter.NewWriter(w)
	tbl.SetHeader([]string{
		"Facility", "City/Country", "ASN", "Facility ID", "Added At", "Working",
	})
	tbl.SetAutoWrapText(false)
	for _, fc := range n.Facilities {
		tbl.Append([]string{
			fc.Name, fc.City, strconv.Itoa(fc.LocalASN),
			strconv.Itoa(fc.FacID), fc.Created, yesNo(fc.Status == "ok"),
		})
	}
	tbl.Render()
	fmt.Fprintln(w)
}

// Notef prints a progress note to w, for status lines that accompany a
// file being written.
func Notef(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, fileNote.Sprintf(format, args...))
}

// Successf prints a completion note to w.
func Successf(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, okNote.Sprintf(format, args...))
}
