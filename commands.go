package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/harrisonrobin/lifestyle/pkg/analyzer"
	"github.com/harrisonrobin/lifestyle/pkg/auth"
	"github.com/harrisonrobin/lifestyle/pkg/colors"
	"github.com/harrisonrobin/lifestyle/pkg/config"
	"github.com/harrisonrobin/lifestyle/pkg/google"
	"github.com/harrisonrobin/lifestyle/pkg/logger"
	"github.com/harrisonrobin/lifestyle/pkg/model"
	"github.com/harrisonrobin/lifestyle/pkg/report"
	"github.com/harrisonrobin/lifestyle/pkg/sheet"
	"github.com/harrisonrobin/lifestyle/pkg/taskwarrior"
)

// app is the state shared by subcommands once flags and config are resolved.
type app struct {
	cfg *config.Config
	loc *time.Location

	format   string
	tz       string
	sheet    string
	logLevel string
	logJSON  bool
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "lifestyle",
		Short:         "Weekday/weekend lifestyle insights from a Daily Tasks log",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	flags := root.PersistentFlags()
	flags.StringVar(&a.format, "format", "", "output format: text, json or yaml (overrides config)")
	flags.StringVar(&a.tz, "tz", "", "IANA timezone dates are read in (overrides config)")
	flags.StringVar(&a.sheet, "sheet", "", "sheet to read tasks from (overrides config)")
	flags.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn or error")
	flags.BoolVar(&a.logJSON, "log-json", false, "write logs as JSON")

	root.AddCommand(newFileCmd(a))
	root.AddCommand(newSheetsCmd(a))
	root.AddCommand(newRowsCmd(a))
	root.AddCommand(newTaskwarriorCmd(a))
	root.AddCommand(newAuthCmd())
	root.AddCommand(newConfigCmd(a))
	return root
}

// setup loads the config file and lets flags override it.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if a.format != "" {
		cfg.Format = a.format
	}
	if a.tz != "" {
		cfg.Timezone = a.tz
	}
	if a.sheet != "" {
		cfg.SheetName = a.sheet
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger.Setup(cfg.LogLevel, a.logJSON)
	if cmd.ErrOrStderr() != os.Stderr {
		logger.SetOutput(cmd.ErrOrStderr())
	}

	loc, err := cfg.Location()
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.loc = loc
	logger.Debug("configuration resolved", "sheet", cfg.SheetName, "format", cfg.Format, "tz", loc.String())
	return nil
}

// analyze runs the pipeline over rows and writes the report.
func (a *app) analyze(w io.Writer, rows []model.RawTaskRow) error {
	res, err := analyzer.Run(rows, analyzer.Options{Location: a.loc})
	if err != nil {
		return err
	}

	palette, err := colors.NewColorCache()
	if err != nil {
		logger.Warn("could not load category colours, using defaults", "err", err)
		palette, _ = colors.NewColorCacheAt("")
	}
	if err := report.Render(w, a.cfg.Format, res, palette); err != nil {
		return err
	}
	if err := palette.Save(); err != nil {
		logger.Warn("could not save category colours", "err", err)
	}
	return nil
}

func newFileCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "file <workbook.xlsx>",
		Short: "Analyze a local workbook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := sheet.ReadFile(args[0], a.cfg.SheetName)
			if err != nil {
				return err
			}
			return a.analyze(cmd.OutOrStdout(), rows)
		},
	}
}

func newSheetsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "sheets [spreadsheet-id]",
		Short: "Analyze a Google Sheets document",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := a.cfg.SpreadsheetID
			if len(args) == 1 {
				id = args[0]
			}
			if id == "" {
				return fmt.Errorf("no spreadsheet id given; pass one or run `lifestyle config set-sheet <id>`")
			}

			ctx := cmd.Context()
			client, err := google.NewClient(ctx, id)
			if err != nil {
				return err
			}
			rows, err := client.ReadRows(ctx, a.cfg.SheetName)
			if err != nil {
				return err
			}
			return a.analyze(cmd.OutOrStdout(), rows)
		},
	}
}

func newRowsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rows [path|-]",
		Short: "Analyze rows given as a JSON array",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var in io.Reader = cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}

			var rows []model.RawTaskRow
			if err := json.NewDecoder(in).Decode(&rows); err != nil {
				return fmt.Errorf("failed to decode rows: %w", err)
			}
			return a.analyze(cmd.OutOrStdout(), rows)
		},
	}
}

func newTaskwarriorCmd(a *app) *cobra.Command {
	var fromStdin bool

	cmd := &cobra.Command{
		Use:   "taskwarrior [filter...]",
		Short: "Analyze tasks exported from Taskwarrior",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := taskwarrior.NewClient()

			var tasks []taskwarrior.Task
			var err error
			if fromStdin {
				tasks, err = client.ParseTasks(cmd.InOrStdin())
			} else {
				tasks, err = client.GetTasks(cmd.Context(), args)
			}
			if err != nil {
				return err
			}
			logger.Debug("loaded taskwarrior tasks", "count", len(tasks))
			return a.analyze(cmd.OutOrStdout(), taskwarrior.ToRows(tasks, a.loc))
		},
	}
	cmd.Flags().BoolVar(&fromStdin, "stdin", false, "read 'task export' JSON from stdin instead of running task")
	return cmd
}

func newAuthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "auth",
		Short: "Authorize read access to Google Sheets",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := auth.ResetToken(); err != nil {
				return err
			}
			if _, err := auth.GetClient(cmd.Context(), auth.Scopes); err != nil {
				return fmt.Errorf("authentication failed: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Authentication successful!")
			return nil
		},
	}
}

func newConfigCmd(a *app) *cobra.Command {
	cfgCmd := &cobra.Command{Use: "config", Short: "Show or change saved settings"}

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "set-sheet <spreadsheet-id>",
		Short: "Set the default Google Sheets document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			cfg.SpreadsheetID = args[0]
			if err := config.Save(cfg); err != nil {
				return fmt.Errorf("error saving config: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Default spreadsheet set to: %s\n", args[0])
			return nil
		},
	})

	cfgCmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(a.cfg)
		},
	})
	return cfgCmd
}
