package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/subosito/gotenv"

	"github.com/cognicore/reviewsense/internal/logging"
	"github.com/cognicore/reviewsense/pkg/reviewsense"
	"github.com/cognicore/reviewsense/pkg/reviewsense/config"
	"github.com/cognicore/reviewsense/pkg/reviewsense/report"
	"github.com/cognicore/reviewsense/pkg/reviewsense/textprep"
)

const (
	envConfig   = "REVIEWSENSE_CONFIG"
	envLexicon  = "REVIEWSENSE_LEXICON"
	envStoplist = "REVIEWSENSE_STOPLIST"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

type options struct {
	configPath   string
	lexiconPath  string
	stoplistPath string
	insightsMode string
	scorer       string
	format       string
	workers      int
	envFile      string
	logLevel     string
	inputs       []string
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	fs := flag.NewFlagSet("reviewsense", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: reviewsense [flags] [file ...]")
		fmt.Fprintln(stderr, "Reads stdin when no files are given; each file is one block of reviews.")
		fs.PrintDefaults()
	}

	opts := &options{}
	fs.StringVar(&opts.configPath, "config", "", "Analyzer config file (default $"+envConfig+")")
	fs.StringVar(&opts.lexiconPath, "lexicon", "", "Synonym lexicon file (default $"+envLexicon+")")
	fs.StringVar(&opts.stoplistPath, "stoplist", "", "Stoplist file for derived insights (default $"+envStoplist+")")
	fs.StringVar(&opts.insightsMode, "insights", "", "Insights mode: static or derived (overrides config)")
	fs.StringVar(&opts.scorer, "scorer", "", "Sentiment scorer: lexicon or vader (overrides config)")
	fs.StringVar(&opts.format, "format", "text", "Input format: text, html or markdown")
	fs.IntVar(&opts.workers, "workers", 0, "Files analyzed concurrently (0 = GOMAXPROCS)")
	fs.StringVar(&opts.envFile, "env", "", "Optional .env file to load before reading defaults")
	fs.StringVar(&opts.logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	opts.inputs = fs.Args()

	stdinArgs := 0
	for _, in := range opts.inputs {
		if in == "-" {
			stdinArgs++
		}
	}
	if stdinArgs > 1 {
		err := errors.New("stdin (-) may be given only once")
		fmt.Fprintf(stderr, "reviewsense: %v\n", err)
		fs.Usage()
		return nil, err
	}
	return opts, nil
}

// applyEnv fills unset paths from the environment, after loading envFile.
func (o *options) applyEnv() error {
	if o.envFile != "" {
		if err := gotenv.Load(o.envFile); err != nil {
			return fmt.Errorf("load env file: %w", err)
		}
	}
	if o.configPath == "" {
		o.configPath = os.Getenv(envConfig)
	}
	if o.lexiconPath == "" {
		o.lexiconPath = os.Getenv(envLexicon)
	}
	if o.stoplistPath == "" {
		o.stoplistPath = os.Getenv(envStoplist)
	}
	return nil
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	level, err := logging.ParseLevel(opts.logLevel)
	if err != nil {
		fmt.Fprintf(stderr, "reviewsense: %v\n", err)
		return 2
	}
	logger := logging.Init(stderr, level)

	if err := opts.applyEnv(); err != nil {
		logger.Error("startup failed", "error", err)
		return 1
	}

	mode, err := textprep.ParseMode(opts.format)
	if err != nil {
		logger.Error("startup failed", "error", err)
		return 2
	}

	loader := config.Loader{
		ConfigPath:   opts.configPath,
		LexiconPath:  opts.lexiconPath,
		StoplistPath: opts.stoplistPath,
		Scorer:       opts.scorer,
		InsightsMode: opts.insightsMode,
	}
	components, err := loader.Load()
	if err != nil {
		logger.Error("load configs", "error", err)
		return 1
	}

	analyzer := reviewsense.New(reviewsense.Options{
		Sentiment: &components.Sentiment,
		Scorer:    components.Scorer,
		Extractor: components.Extractor,
		Insights:  components.Insights,
		Logger:    logger,
		Workers:   opts.workers,
	})

	sources, texts, err := readInputs(opts.inputs, stdin)
	if err != nil {
		logger.Error("read input", "error", err)
		return 1
	}
	for i := range texts {
		texts[i] = textprep.Prepare(mode, texts[i])
	}
	logger.Debug("analyzing", "inputs", len(texts), "format", string(mode))

	results, err := analyzer.AnalyzeBatch(ctx, texts)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			fmt.Fprintln(stderr, "reviewsense: interrupted")
		} else {
			// cause already logged by the analyzer
			fmt.Fprintln(stderr, "reviewsense: "+reviewsense.AnalysisErrorMessage)
		}
		return 1
	}

	builder := report.New()
	var out any
	if len(results) == 1 {
		out = builder.Build(sources[0], results[0])
	} else {
		out = builder.BuildBatch(sources, results)
	}
	if err := report.WriteJSON(stdout, out); err != nil {
		logger.Error("write report", "error", err)
		return 1
	}
	return 0
}

// readInputs returns one text per file, or stdin as "-" when paths is empty.
func readInputs(paths []string, stdin io.Reader) ([]string, []string, error) {
	if len(paths) == 0 {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, nil, fmt.Errorf("read stdin: %w", err)
		}
		return []string{"-"}, []string{string(data)}, nil
	}

	texts := make([]string, 0, len(paths))
	for _, path := range paths {
		if path == "-" {
			data, err := io.ReadAll(stdin)
			if err != nil {
				return nil, nil, fmt.Errorf("read stdin: %w", err)
			}
			texts = append(texts, string(data))
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, nil, fmt.Errorf("read %s: %w", path, err)
		}
		texts = append(texts, string(data))
	}
	return paths, texts, nil
}
