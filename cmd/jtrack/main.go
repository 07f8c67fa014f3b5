// jtrack tracks job applications on a terminal kanban board.
//
// Usage:
//
//	jtrack board            # interactive kanban board
//	jtrack dash             # KPI dashboard
//	jtrack add --role "SRE" --company "Acme"
//	jtrack list --overdue
//	jtrack mv <id> Interview
//	jtrack rm <id>
//
// State lives in a local key-value store (file tree or sqlite,
// selectable in .jtrack.yaml); there is no server and no network.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jtrack/jtrack/internal/config"
	"github.com/jtrack/jtrack/internal/dateutil"
	"github.com/jtrack/jtrack/internal/job"
	"github.com/jtrack/jtrack/internal/logging"
	"github.com/jtrack/jtrack/internal/store"
	"github.com/jtrack/jtrack/internal/tui"
	"github.com/jtrack/jtrack/internal/version"
)

var (
	cfg     *config.Config
	logger  *slog.Logger
	jobs    *store.Jobs
	uiState *store.UIState
	closeKV func() error

	flagStorage string
	flagDataDir string
	flagNoColor bool
)

var rootCmd = &cobra.Command{
	Use:           "jtrack",
	Short:         "A terminal kanban board for tracking job applications",
	Version:       fmt.Sprintf("%s (commit %s, built %s)", version.Version, version.CommitHash, version.BuildDate),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg = config.Load()
		if flagStorage != "" {
			cfg.Storage.Backend = flagStorage
		}
		if flagDataDir != "" {
			cfg.Storage.Dir = flagDataDir
		}
		logger = logging.New(cfg.Logging.Level, cfg.Logging.NoColor || flagNoColor)

		kv, err := openKV(cfg)
		if err != nil {
			return err
		}
		jobs = store.NewJobs(kv, logger)
		jobs.Load()
		uiState = store.NewUIState(kv, logger)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if closeKV != nil {
			if err := closeKV(); err != nil {
				logger.Debug("failed to close storage", "err", err)
			}
		}
	},
}

func openKV(cfg *config.Config) (store.KV, error) {
	switch cfg.Storage.Backend {
	case config.BackendMemory:
		return store.NewMemoryKV(), nil
	case config.BackendSQLite:
		dir, err := cfg.DataDir()
		if err != nil {
			return nil, err
		}
		kv, err := store.OpenSQLiteKV(filepath.Join(dir, "jtrack.db"))
		if err != nil {
			return nil, err
		}
		closeKV = kv.Close
		return kv, nil
	case config.BackendFile, "":
		dir, err := cfg.DataDir()
		if err != nil {
			return nil, err
		}
		return store.NewFileKV(dir)
	default:
		return nil, fmt.Errorf("unknown storage backend %q (want file, sqlite, or memory)", cfg.Storage.Backend)
	}
}

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Open the interactive kanban board",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !isTTY(os.Stdout) {
			return fmt.Errorf("board needs a terminal; use 'jtrack list' when piping")
		}
		tui.InitThemeFromConfig()
		return tui.RunBoard(cmd.Context(), jobs, uiState, logger)
	},
}

var dashCmd = &cobra.Command{
	Use:   "dash",
	Short: "Open the KPI dashboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !isTTY(os.Stdout) {
			return fmt.Errorf("dash needs a terminal; use 'jtrack list' when piping")
		}
		tui.InitThemeFromConfig()
		return tui.RunDashboard(cmd.Context(), jobs, logger)
	},
}

var (
	addRole     string
	addCompany  string
	addLocation string
	addStatus   string
	addDue      string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a job entry",
	RunE: func(cmd *cobra.Command, args []string) error {
		status, err := job.ParseStatus(addStatus)
		if err != nil {
			return err
		}
		in := job.Input{Role: addRole, Company: addCompany, Status: status}
		if addLocation != "" {
			in.Location = &addLocation
		}
		// The due-date default mirrors the add form: today + 5 days.
		due := addDue
		if due == "" {
			due = dateutil.AddDays(time.Now(), 5)
		}
		in.DueDate = &due

		added := jobs.Add(in)
		fmt.Printf("Added %s @ %s (%s)\n", added.Role, added.Company, added.ID)
		return nil
	},
}

var (
	listSearch   string
	listStatus   string
	listDueToday bool
	listOverdue  bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List job entries grouped by status",
	RunE: func(cmd *cobra.Command, args []string) error {
		v := job.View{Search: listSearch, Mode: job.ViewAll}
		if listStatus != "" {
			status, err := job.ParseStatus(listStatus)
			if err != nil {
				return err
			}
			v.StatusFilter = &status
		}
		if listDueToday {
			v.Mode = job.ViewDueToday
		}
		if listOverdue {
			v.Mode = job.ViewOverdue
		}

		now := time.Now()
		grouped := job.Group(job.Filter(jobs.List(), v, now))
		for _, s := range job.AllStatuses {
			entries := grouped[s]
			fmt.Printf("%s (%d)\n", s, len(entries))
			for _, j := range entries {
				due := "-"
				if j.DueDate != nil {
					due = *j.DueDate
				}
				loc := "-"
				if j.Location != nil {
					loc = *j.Location
				}
				fmt.Printf("  %s  %-28s  %-20s  %-14s  due %s\n", j.ID, j.Role, j.Company, loc, due)
			}
		}

		k := job.ComputeKPIs(jobs.List(), now)
		fmt.Printf("\n%d total, %d due today, %d overdue\n", k.Total, k.DueToday, k.Overdue)
		return nil
	},
}

var mvCmd = &cobra.Command{
	Use:   "mv <id> <status>",
	Short: "Move a job to another pipeline status",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		target, err := job.ParseStatus(args[1])
		if err != nil {
			return err
		}
		for _, j := range jobs.List() {
			if j.ID == args[0] {
				next := job.Transition(j, target, time.Now())
				jobs.Update(next)
				due := "no due date"
				if next.DueDate != nil {
					due = "due " + *next.DueDate
				}
				fmt.Printf("Moved %s to %s (%s)\n", next.Role, target, due)
				return nil
			}
		}
		return fmt.Errorf("no job with id %s", args[0])
	},
}

var rmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a job entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		removed, ok := jobs.Remove(args[0])
		if !ok {
			return fmt.Errorf("no job with id %s", args[0])
		}
		fmt.Printf("Deleted %s @ %s\n", removed.Role, removed.Company)
		return nil
	},
}

func isTTY(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagStorage, "storage", "", "storage backend: file, sqlite, or memory")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: user config dir)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colored log output")

	addCmd.Flags().StringVar(&addRole, "role", "", "role title")
	addCmd.Flags().StringVar(&addCompany, "company", "", "company name")
	addCmd.Flags().StringVar(&addLocation, "location", "", "location (optional)")
	addCmd.Flags().StringVar(&addStatus, "status", string(job.Prospect), "pipeline status")
	addCmd.Flags().StringVar(&addDue, "due", "", "due date YYYY-MM-DD (default: today + 5 days)")
	_ = addCmd.MarkFlagRequired("role")
	_ = addCmd.MarkFlagRequired("company")

	listCmd.Flags().StringVar(&listSearch, "search", "", "filter by role or company substring")
	listCmd.Flags().StringVar(&listStatus, "status", "", "filter by pipeline status")
	listCmd.Flags().BoolVar(&listDueToday, "due-today", false, "only jobs due today")
	listCmd.Flags().BoolVar(&listOverdue, "overdue", false, "only overdue jobs")

	rootCmd.AddCommand(boardCmd, dashCmd, addCmd, listCmd, mvCmd, rmCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "jtrack: %v\n", err)
		os.Exit(1)
	}
}
