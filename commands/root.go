// Package commands is the jareflect command line.
package commands

import (
	"github.com/spf13/cobra"

	"japanesereflect/analyze"
	"japanesereflect/builder"
	"japanesereflect/config"
	"japanesereflect/errors"
	"japanesereflect/ingest"
	"japanesereflect/logger"
	"japanesereflect/reflection"
	"japanesereflect/tokenize"
)

var (
	configPath string
	logLevel   string
	jsonLogs   bool

	// cfg is resolved once per invocation in PersistentPreRunE.
	cfg *config.Config
)

// RootCmd is the jareflect entry point.
var RootCmd = &cobra.Command{
	Use:   "jareflect",
	Short: "Reflective listening for Japanese text",
	Long: `jareflect echoes the core predicate of a Japanese utterance back as a
reflective-listening reply, keeping its voice, negation, desire and tense.

Configuration sources (in order of precedence):
1. Command line flags
2. Environment variables (JAREFLECT_* prefix)
3. Project config (jareflect.toml, searched upward from the working directory)
4. User config (<user config dir>/jareflect/jareflect.toml)
5. Default values

Examples:
  jareflect reflect 私は彼女を愛している。
  echo 歩かなかった | jareflect batch
  jareflect tokens 食べさせられた
  jareflect conjugate 読 godan-ma passive past
  jareflect config show --format yaml`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		cfg = c
		if err := logger.Initialize(cfg.Log.JSON, cfg.Log.Level); err != nil {
			return errors.Wrap(err, "failed to initialize logger")
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Cleanup()
	},
}

func init() {
	RootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Read configuration from this TOML file only")
	RootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	RootCmd.PersistentFlags().BoolVar(&jsonLogs, "json", false, "Write logs as JSON")

	RootCmd.AddCommand(ReflectCmd)
	RootCmd.AddCommand(BatchCmd)
	RootCmd.AddCommand(TokensCmd)
	RootCmd.AddCommand(ConjugateCmd)
	RootCmd.AddCommand(ConfigCmd)
	RootCmd.AddCommand(VersionCmd)
}

// Execute runs the root command.
func Execute() error {
	return RootCmd.Execute()
}

// loadConfig resolves configuration and applies persistent flag overrides on
// a copy, leaving the cached configuration untouched.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	var (
		loaded *config.Config
		err    error
	)
	if configPath != "" {
		loaded, err = config.LoadFromFile(configPath)
	} else {
		loaded, err = config.Load()
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load config")
	}

	c := *loaded
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		c.Log.Level = logLevel
	}
	if flags.Changed("json") {
		c.Log.JSON = jsonLogs
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func newAnalyzer(c *config.Config) (*analyze.Analyzer, error) {
	tok, err := tokenize.New(c.Tokenizer.Dict, c.Tokenizer.Mode)
	if err != nil {
		return nil, err
	}
	return analyze.New(tok), nil
}

func newAssembler(c *config.Config) (*reflection.Assembler, error) {
	b, err := builder.NewDefault()
	if err != nil {
		return nil, err
	}
	return reflection.New(b, c.ReflectionOptions())
}

// newPipeline wires tokenizer, analyzer and assembler from c. dumpDir
// overrides the configured log.dump_dir when set.
func newPipeline(c *config.Config, dumpDir string) (*ingest.Pipeline, error) {
	an, err := newAnalyzer(c)
	if err != nil {
		return nil, err
	}
	a, err := newAssembler(c)
	if err != nil {
		return nil, err
	}
	if dumpDir == "" {
		dumpDir = c.Log.DumpDir
	}
	opts := []ingest.Option{ingest.WithWorkers(c.Pipeline.Workers)}
	if dumpDir != "" {
		if err := logger.InitLogs(dumpDir); err != nil {
			return nil, errors.Wrapf(err, "failed to prepare dump directory %s", dumpDir)
		}
		opts = append(opts, ingest.WithDumpDir(dumpDir))
	}
	return ingest.NewPipeline(an, a, opts...), nil
}
