// Command conflictcheck runs conflict detection over a YAML file of bookings
// and resolutions without a database.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"gigbook/internal/domain/booking"
	"gigbook/internal/domain/conflict"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd(os.Stdin).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

type options struct {
	file    string
	format  string
	verbose bool
}

func newRootCmd(stdin io.Reader) *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "conflictcheck",
		Short: "Detect booking conflicts in a YAML fixture",
		Long: `Detect booking conflicts in a YAML fixture.

The fixture holds a "bookings" list and an optional "resolutions" list.

Examples:
  conflictcheck detect -f calendar.yaml
  conflictcheck groups -f calendar.yaml --date 2025-06-01 --format json
  cat calendar.yaml | conflictcheck detect -f -`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&opts.file, "file", "f", "-", `fixture path, "-" for stdin`)
	root.PersistentFlags().StringVar(&opts.format, "format", formatTable, "output format: table or json")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log skipped bookings and parse warnings")

	root.AddCommand(newDetectCmd(opts, stdin), newGroupsCmd(opts, stdin))
	return root
}

func newDetectCmd(opts *options, stdin io.Reader) *cobra.Command {
	var bookingID int64

	cmd := &cobra.Command{
		Use:   "detect",
		Short: "Print the conflicts of every booking",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			report, err := analyze(cmd, opts, stdin)
			if err != nil {
				return err
			}

			conflicts := report.Conflicts
			if cmd.Flags().Changed("booking") {
				conflicts = conflict.Map{}
				if cs := report.Conflicts.For(bookingID); len(cs) > 0 {
					conflicts[bookingID] = cs
				}
			}
			return writeConflicts(cmd.OutOrStdout(), opts.format, conflicts)
		},
	}
	cmd.Flags().Int64Var(&bookingID, "booking", 0, "only show conflicts of this booking")
	return cmd
}

func newGroupsCmd(opts *options, stdin io.Reader) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "groups",
		Short: "Print conflict groups",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var filter booking.Date
			if date != "" {
				d, err := booking.ParseDate(date)
				if err != nil {
					return err
				}
				filter = d
			}

			report, err := analyze(cmd, opts, stdin)
			if err != nil {
				return err
			}

			groups := report.Groups
			if !filter.IsZero() {
				groups = make([]conflict.Group, 0, len(report.Groups))
				for _, g := range report.Groups {
					if g.Date == filter.String() {
						groups = append(groups, g)
					}
				}
			}
			return writeGroups(cmd.OutOrStdout(), opts.format, groups)
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "only show groups on this date (YYYY-MM-DD)")
	return cmd
}

func analyze(cmd *cobra.Command, opts *options, stdin io.Reader) (conflict.Report, error) {
	if opts.format != formatTable && opts.format != formatJSON {
		return conflict.Report{}, fmt.Errorf("unknown format %q", opts.format)
	}

	fx, err := loadFixture(opts.file, stdin)
	if err != nil {
		return conflict.Report{}, err
	}
	bookings, resolutions, err := fx.Snapshot(time.Now())
	if err != nil {
		return conflict.Report{}, err
	}

	level := slog.LevelError
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	return conflict.NewDetector(logger).Analyze(bookings, conflict.NewResolutionIndex(resolutions)), nil
}
