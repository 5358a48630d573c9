package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/storesim/storesim/sim/store"
	"github.com/storesim/storesim/sim/store/recorder"
	"github.com/storesim/storesim/sim/workload"
)

var (
	// CLI flags for the store simulation
	schedulePath string  // Path to a YAML customer schedule; empty uses the built-in schedule
	until        float64 // Simulation horizon; 0 defers to the schedule spec
	logLevel     string  // Log verbosity level
	departuresDB string  // SQLite file departures are persisted to after the run
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "storesim",
	Short: "Parallel discrete-event simulation of a single-clerk store",
}

// runCmd executes the simulation using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the store simulation",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		spec := workload.DefaultSpec()
		if schedulePath != "" {
			spec, err = workload.LoadScheduleSpec(schedulePath)
			if err != nil {
				logrus.Fatalf("unable to read schedule spec; %v", err)
			}
		}
		if err := spec.Validate(); err != nil {
			logrus.Fatalf("invalid schedule spec; %v", err)
		}

		horizon := spec.Until
		if until > 0 {
			horizon = until
		}
		if horizon <= 0 {
			horizon = workload.DefaultUntil
		}

		logrus.Infof("Starting store simulation with %d customers, horizon=%g",
			len(spec.Customers), horizon)

		rec := recorder.NewLog()
		system := store.NewSystem(spec.BuildSchedule(), rec)
		system.Run(horizon)

		departures := rec.Departures()
		summary := store.Summarize(departures)
		summary.Print(system.Coordinator.Clock(), system.Coordinator.Steps())

		if departuresDB != "" {
			db, err := recorder.Open(departuresDB)
			if err != nil {
				logrus.Fatalf("unable to open departures db; %v", err)
			}
			defer db.Close()
			if err := db.AppendAll(departures); err != nil {
				logrus.Fatalf("unable to persist departures; %v", err)
			}
			logrus.Infof("Persisted %d departures to %s", len(departures), departuresDB)
		}

		logrus.Info("Simulation complete.")
	},
}

// logCmd lists the departures persisted by an earlier run
var logCmd = &cobra.Command{
	Use:   "log",
	Short: "List departures persisted by an earlier run",
	Run: func(cmd *cobra.Command, args []string) {
		if departuresDB == "" {
			logrus.Fatal("--departures-db is required")
		}
		db, err := recorder.Open(departuresDB)
		if err != nil {
			logrus.Fatalf("unable to open departures db; %v", err)
		}
		defer db.Close()

		departures, err := db.List()
		if err != nil {
			logrus.Fatalf("unable to list departures; %v", err)
		}
		for _, d := range departures {
			fmt.Printf("left at %-8g entered=%-6g wait=%g\n", d.At, d.TEnter, d.TWait)
		}
	},
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().StringVar(&schedulePath, "schedule", "", "Path to a YAML customer schedule (empty uses the built-in schedule)")
	runCmd.Flags().Float64Var(&until, "until", 0, "Simulation horizon (0 defers to the schedule's until)")
	runCmd.Flags().StringVar(&logLevel, "log", "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")
	runCmd.Flags().StringVar(&departuresDB, "departures-db", "", "SQLite file to persist departures to after the run")

	logCmd.Flags().StringVar(&departuresDB, "departures-db", "", "SQLite file with persisted departures")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(logCmd)
}
