package main

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"
	"text/tabwriter"

	"gigbook/internal/domain/conflict"
	"gigbook/internal/handler/dto/response"
)

const (
	formatTable = "table"
	formatJSON  = "json"
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeConflicts(w io.Writer, format string, m conflict.Map) error {
	if format == formatJSON {
		return writeJSON(w, response.FromConflictMap(m))
	}

	ids := make([]int64, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	slices.Sort(ids)

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "BOOKING\tWITH\tDATE\tSEVERITY\tREASON\tMESSAGE")
	for _, id := range ids {
		for _, c := range m[id] {
			fmt.Fprintf(tw, "%d\t%d\t%s\t%s\t%s\t%s\n",
				c.BookingID, c.WithBookingID, c.Date, c.Severity, c.Reason, c.Message)
		}
	}
	return tw.Flush()
}

func writeGroups(w io.Writer, format string, groups []conflict.Group) error {
	if format == formatJSON {
		return writeJSON(w, response.FromGroups(groups))
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "DATE\tBOOKINGS\tSEVERITY\tRESOLVABLE")
	for _, g := range groups {
		ids := make([]string, 0, g.BookingIDs.Len())
		for _, id := range g.BookingIDs.IDs() {
			ids = append(ids, fmt.Sprint(id))
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%t\n",
			g.Date, strings.Join(ids, ","), g.Severity, g.IsSoftOnly() && !g.Resolved)
	}
	return tw.Flush()
}
