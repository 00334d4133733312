package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/SimonGreenhill/treemaker/internal/config"
	"github.com/SimonGreenhill/treemaker/internal/logging"
	"github.com/SimonGreenhill/treemaker/taxonomy"
	"github.com/spf13/cobra"
)

type options struct {
	configPath string
	output     string
	cfg        config.Config
}

func newRootCmd() *cobra.Command {
	opts := &options{cfg: config.Default()}

	cmd := &cobra.Command{
		Use:   "treemaker [flags] <input>",
		Short: "Make a Newick or NEXUS tree from a list of classifications",
		Long: `treemaker reads a file of taxa, one per line, each followed by its
comma separated classification, and writes the tree they describe.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.load(cmd); err != nil {
				return err
			}
			return opts.run(cmd, args[0])
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.output, "output", "o", "",
		"write the tree to this file instead of standard output")
	flags.StringVarP(&opts.cfg.Mode, "mode", "m", opts.cfg.Mode,
		"output mode: newick or nexus")
	flags.BoolVarP(&opts.cfg.Labels, "labels", "l", opts.cfg.Labels,
		"write internal node labels")
	flags.StringVar(&opts.cfg.Root, "root", opts.cfg.Root,
		"label of the root node")
	flags.BoolVar(&opts.cfg.NFC, "nfc", opts.cfg.NFC,
		"normalize taxa and classifications to Unicode NFC")
	flags.StringVar(&opts.cfg.LogLevel, "log-level", opts.cfg.LogLevel,
		"log level: debug, info, warn or error")
	flags.StringVar(&opts.configPath, "config", "",
		"YAML file with default flag values")

	cmd.AddCommand(newVersionCmd())
	return cmd
}

// load applies the config file, if any. Flags given on the command line
// take precedence over the file.
func (o *options) load(cmd *cobra.Command) error {
	if len(o.configPath) == 0 {
		return nil
	}
	fileCfg, err := config.Load(o.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if !flags.Changed("mode") {
		o.cfg.Mode = fileCfg.Mode
	}
	if !flags.Changed("labels") {
		o.cfg.Labels = fileCfg.Labels
	}
	if !flags.Changed("root") {
		o.cfg.Root = fileCfg.Root
	}
	if !flags.Changed("nfc") {
		o.cfg.NFC = fileCfg.NFC
	}
	if !flags.Changed("log-level") {
		o.cfg.LogLevel = fileCfg.LogLevel
	}
	return nil
}

func (o *options) run(cmd *cobra.Command, input string) error {
	logger := logging.New(logging.ParseLevel(o.cfg.LogLevel))
	if err := o.build(cmd, input, logger); err != nil {
		logger.Debug("treemaker failed", "input", input, "error", err)
		return err
	}
	return nil
}

func (o *options) build(cmd *cobra.Command, input string, logger *slog.Logger) error {
	mode, err := taxonomy.ParseMode(o.cfg.Mode)
	if err != nil {
		return err
	}
	f, err := os.Open(input)
	if err != nil {
		return fmt.Errorf("cannot read input: %w", err)
	}
	defer f.Close()

	b, err := taxonomy.New(
		taxonomy.WithRootLabel(o.cfg.Root),
		taxonomy.WithNodeLabels(o.cfg.Labels),
		taxonomy.WithLogger(logger),
	)
	if err != nil {
		return err
	}
	r := taxonomy.NewReader(f)
	r.Normalize = o.cfg.NFC
	if err := b.Read(r); err != nil {
		return fmt.Errorf("%s: %w", input, err)
	}
	logger.Info("read classifications", "input", input, "taxa", b.Len())

	if len(o.output) > 0 {
		return b.WriteFile(o.output, mode)
	}
	return b.Write(cmd.OutOrStdout(), mode)
}
