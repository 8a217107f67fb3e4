// Package cmd provides the root command and CLI setup for twins.
package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/mouse-blink/twins/internal/adapter"
	"github.com/mouse-blink/twins/internal/config"
	"github.com/mouse-blink/twins/internal/controller"
	"github.com/mouse-blink/twins/internal/domain"
	"github.com/mouse-blink/twins/internal/logger"
	m "github.com/mouse-blink/twins/internal/model"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

const defaultRoot = "solutions"

var pythonAdapter adapter.PythonAdapter
var localCorpus adapter.CorpusSource
var reportStore adapter.ReportStore
var ui controller.UI

// workflow is built on first use from the loaded settings; tests replace it.
var workflow domain.Workflow
var settings *config.Config
var log zerolog.Logger

func init() {
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	pythonAdapter = adapter.NewLocalPythonAdapter()
	localCorpus = adapter.NewLocalCorpusAdapter()
	reportStore = adapter.NewReportStore()
	log = zerolog.Nop()
}

var configFileFlag string
var reportsOutputDirFlag string
var logLevelFlag string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

const rootLongDescription = `Twins compares student submissions structurally. Every Python file is
reduced to the sequence of its syntactic constructs (functions, classes,
branches, loops, calls...), so renamed variables, reformatting and edited
comments do not hide a copied solution.

The corpus is laid out as <root>/<class>/<student>/<assignment>.py. Each
assignment gets a pairwise similarity matrix, and students whose score with
a peer reaches the threshold are summarized across assignments.`

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "twins",
		Short:        "Structural similarity checker for student submissions",
		Long:         rootLongDescription,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return setup(cmd)
		},
	}
	cmd.PersistentFlags().StringVarP(&configFileFlag, "config", "c", "", "config file (default: twins.yaml in ., ./config or $HOME/.config/twins)")
	cmd.PersistentFlags().StringVarP(&reportsOutputDirFlag, "reports", "o", "", "directory for reports and the run snapshot (default from config: .twins-reports)")
	cmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "log level: debug, info, warn, error or off")

	return cmd
}

// setup loads the settings and builds the workflow unless one is already set.
func setup(cmd *cobra.Command) error {
	loaded, err := config.Load(configFileFlag)
	if err != nil {
		return err
	}

	if logLevelFlag != "" {
		loaded.Logging.Level = logLevelFlag
	}

	if reportsOutputDirFlag != "" {
		loaded.Reports.Dir = reportsOutputDirFlag
	}

	settings = loaded
	log = logger.New(cmd.ErrOrStderr(), settings.Logging.Level, settings.Logging.Pretty)

	if workflow == nil {
		workflow = newWorkflow(settings, log)
	}

	return nil
}

func newWorkflow(cfg *config.Config, log zerolog.Logger) domain.Workflow {
	storage := adapter.StorageOptions{
		Endpoint:  cfg.Storage.Endpoint,
		AccessKey: cfg.Storage.AccessKey,
		SecretKey: cfg.Storage.SecretKey,
		Region:    cfg.Storage.Region,
		UseSSL:    cfg.Storage.UseSSL,
	}

	corpus := adapter.NewCorpusRouter(localCorpus, func() (adapter.CorpusSource, error) {
		remote, err := adapter.NewMinIOCorpusAdapter(storage, log)
		if err != nil {
			return nil, err
		}

		return remote, nil
	})

	pipeline := domain.NewPipeline(domain.NewExtractor(pythonAdapter), domain.NewScorer(), log)

	return domain.NewWorkflow(
		corpus,
		reportStore,
		adapter.NewLocalReportWriter(log),
		ui,
		pipeline,
		log,
	)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		stop()
		os.Exit(1)
	}
}

func parseRoot(args []string) m.Path {
	if len(args) == 0 || args[0] == "" {
		return defaultRoot
	}

	return m.Path(args[0])
}

func reportsDir() m.Path {
	if reportsOutputDirFlag != "" {
		return m.Path(reportsOutputDirFlag)
	}

	if settings != nil && settings.Reports.Dir != "" {
		return m.Path(settings.Reports.Dir)
	}

	return ".twins-reports"
}

// corpusFlags are the corpus selection flags shared by check and list.
type corpusFlags struct {
	ext     string
	classes []string
	exclude []string
	workers int
}

func (f *corpusFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.ext, "ext", adapter.DefaultExtension, "extension of submission files")
	cmd.Flags().StringSliceVar(&f.classes, "class", nil, "only read these classes (comma separated or repeated)")
	cmd.Flags().StringArrayVarP(&f.exclude, "exclude", "x", nil, "exclude files matching regex (can be repeated)")
	cmd.Flags().IntVarP(&f.workers, "workers", "w", 0, "number of parallel workers (default from config: one per CPU)")
}

// filter builds the corpus filter; flags set on the command win over settings.
func (f *corpusFlags) filter(cmd *cobra.Command) (adapter.CorpusFilter, error) {
	ext, classes, exclude := f.ext, f.classes, f.exclude

	if settings != nil {
		if !cmd.Flags().Changed("ext") && settings.Corpus.Extension != "" {
			ext = settings.Corpus.Extension
		}

		if !cmd.Flags().Changed("class") {
			classes = settings.Corpus.Classes
		}

		if !cmd.Flags().Changed("exclude") {
			exclude = settings.Corpus.Exclude
		}
	}

	filter, err := adapter.NewCorpusFilter(ext, classes, exclude)
	if err != nil {
		return adapter.CorpusFilter{}, &domain.ConfigurationError{Field: "exclude", Value: exclude, Reason: err.Error()}
	}

	return filter, nil
}

func (f *corpusFlags) workerCount(cmd *cobra.Command) int {
	if cmd.Flags().Changed("workers") || settings == nil {
		return f.workers
	}

	return settings.Analysis.Workers
}
