package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/visual-poker/pokerxl/internal/config"
	"github.com/visual-poker/pokerxl/internal/convert"
	"github.com/visual-poker/pokerxl/internal/export"
	"github.com/visual-poker/pokerxl/internal/extract"
	"github.com/visual-poker/pokerxl/internal/logging"
	"github.com/visual-poker/pokerxl/internal/sheet"
)

func newConvertCommand() *cobra.Command {
	var (
		cfgPath string
		yes     bool
		dryRun  bool
	)

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Read the makeup spreadsheet and export its sessions to JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, cfgPath)
			if err != nil {
				return err
			}
			return runConvert(cmd, cfg, promptOptions{yes: yes, dryRun: dryRun, outputPath: cfg.Output.Path})
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&cfgPath, "config", config.FileName, "config file")
	flags.String("input", "", "spreadsheet to read (default from config)")
	flags.String("output", "", "JSON file to write (default from config)")
	flags.String("log-level", "", "log level: debug, info, warn, error")
	flags.String("log-format", "", "log format: text or json")
	flags.BoolVarP(&yes, "yes", "y", false, "save without asking")
	flags.BoolVar(&dryRun, "dry-run", false, "show the summary but never save")
	cmd.MarkFlagsMutuallyExclusive("yes", "dry-run")

	return cmd
}

func loadConfig(cmd *cobra.Command, path string) (*config.Config, error) {
	load := config.LoadOrDefault
	if cmd.Flags().Changed("config") {
		load = config.Load
	}
	cfg, err := load(path)
	if err != nil {
		return nil, err
	}

	v := config.NewViper()
	if err := config.BindFlags(v, cmd.Flags(), map[string]string{
		config.KeyInputPath:  "input",
		config.KeyOutputPath: "output",
		config.KeyLogLevel:   "log-level",
		config.KeyLogFormat:  "log-format",
	}); err != nil {
		return nil, err
	}
	config.Apply(cfg, v)
	return cfg, nil
}

func runConvert(cmd *cobra.Command, cfg *config.Config, opts promptOptions) error {
	logger, err := logging.New(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}
	log := logging.ForRun(logger, "convert").WithField("input", cfg.Input.Path)

	s, err := sheet.Open(cfg.Input.Path)
	if err != nil {
		logging.LogError(log, "sheet", "Open", "loading spreadsheet", nil, err)
		if errors.Is(err, sheet.ErrNotFound) {
			return fmt.Errorf("spreadsheet %s not found; run from the folder that holds it or pass --input", cfg.Input.Path)
		}
		return err
	}

	svc := convert.NewService(
		export.FileWriter{Path: cfg.Output.Path},
		newConfirm(cmd.InOrStdin(), cmd.OutOrStdout(), opts),
		log,
	)

	res, err := svc.Run(s)
	if err != nil {
		logging.LogError(log, "convert", "Run", "converting spreadsheet", nil, err)
		switch {
		case errors.Is(err, extract.ErrNoSessions):
			return fmt.Errorf("no valid sessions in %s: check that column A holds DD/MM/YYYY dates from row %d", cfg.Input.Path, extract.HeaderRows+1)
		case errors.Is(err, extract.ErrFileStructure):
			return fmt.Errorf("%s does not look like a makeup spreadsheet: %w", cfg.Input.Path, err)
		}
		return err
	}

	out := cmd.OutOrStdout()
	if res.Saved {
		fmt.Fprintf(out, "Wrote %s (%d sessions)\n", cfg.Output.Path, len(res.Extraction.Sessions))
	} else if !opts.dryRun {
		fmt.Fprintln(out, "Cancelled, nothing written.")
	}
	return nil
}
