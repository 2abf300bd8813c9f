// Package main provides the command-line driver for the address
// translation simulator.
package main

import (
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
)

var (
	flagRecord        bool
	flagRecordDB      string
	flagMonitor       bool
	flagMonitorPort   int
	flagOpenDashboard bool
)

// rootCmd represents the base command when called without any
// subcommands.
var rootCmd = &cobra.Command{
	Use:   "vmtranslate BACKING_STORE ADDRESS_FILE",
	Short: "Translate a stream of logical addresses through a simulated TLB and page table",
	Long: `vmtranslate reads decimal logical addresses from ADDRESS_FILE, one per ` +
		`line, translates each of them through a 16-entry FIFO TLB and a ` +
		`256-entry page table, and loads faulted pages on demand from ` +
		`BACKING_STORE. Each translated address is reported together with the ` +
		`byte stored at the resulting physical address.`,
	Args:         cobra.ExactArgs(2),
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().BoolVar(&flagRecord, "record", false,
		"record every translation into a SQLite database")
	rootCmd.Flags().StringVar(&flagRecordDB, "record-db", "",
		"path of the recording database, without the .sqlite3 suffix "+
			"(default: unique name, or VMSIM_RECORD_DB)")
	rootCmd.Flags().BoolVar(&flagMonitor, "monitor", false,
		"serve run statistics over HTTP while translating")
	rootCmd.Flags().IntVar(&flagMonitorPort, "monitor-port", 0,
		"port of the monitoring server (default: random)")
	rootCmd.Flags().BoolVar(&flagOpenDashboard, "open-dashboard", false,
		"open the monitoring URL in the default browser")
}

// Execute runs the root command and terminates the process through
// atexit so registered flush handlers run.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		atexit.Exit(1)
	}

	atexit.Exit(0)
}
