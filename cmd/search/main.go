package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/scottcagno/substr/pkg/bench"
	"github.com/scottcagno/substr/pkg/config"
	"github.com/scottcagno/substr/pkg/corpus"
	"github.com/scottcagno/substr/pkg/search"
	"github.com/scottcagno/substr/pkg/util"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "search",
		Usage: "Compare exact substring search algorithms",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "bench",
				Usage:  "Time every algorithm against the configured fixtures",
				Action: benchCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "Path to a YAML benchmark configuration",
					},
					&cli.IntFlag{
						Name:  "repeat",
						Usage: "Number of searches per trial",
					},
					&cli.IntFlag{
						Name:  "workers",
						Usage: "Number of trials run in parallel",
					},
					&cli.StringSliceFlag{
						Name:    "algo",
						Aliases: []string{"a"},
						Usage:   "Algorithms to run (boyer-moore, knuth-morris-pratt, rabin-karp)",
					},
				},
			},
			{
				Name:   "find",
				Usage:  "Search a single text for a pattern",
				Action: findCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "pattern",
						Aliases:  []string{"p"},
						Usage:    "Pattern to search for",
						Required: true,
					},
					&cli.StringFlag{
						Name:    "text",
						Aliases: []string{"t"},
						Usage:   "Text to search",
					},
					&cli.StringFlag{
						Name:    "file",
						Aliases: []string{"f"},
						Usage:   "File holding the text to search",
					},
					&cli.StringSliceFlag{
						Name:    "algo",
						Aliases: []string{"a"},
						Usage:   "Algorithms to run",
						Value:   cli.NewStringSlice("boyer-moore", "knuth-morris-pratt", "rabin-karp"),
					},
					&cli.BoolFlag{
						Name:  "all",
						Usage: "Report every match instead of the first",
					},
				},
			},
		},
	}
}

func benchCommand(c *cli.Context) error {
	cfg := config.Default()
	if path := c.String("config"); path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return err
		}
	}
	if c.IsSet("repeat") {
		cfg.Repeat = c.Int("repeat")
	}
	if c.IsSet("workers") {
		cfg.Workers = c.Int("workers")
	}
	if c.IsSet("algo") {
		cfg.Algorithms = c.StringSlice("algo")
	}
	if c.IsSet("log-level") {
		cfg.Log.Level = c.String("log-level")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := newLogger(cfg.Log.Level)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	searchers, err := lookupAll(cfg.Algorithms)
	if err != nil {
		return err
	}
	loader, err := corpus.NewLoader(cfg.CacheSize, logger)
	if err != nil {
		return err
	}

	ctx, stop := util.SignalContext(c.Context)
	defer stop()

	fixtures, err := buildFixtures(ctx, loader, cfg.Fixtures)
	if err != nil {
		return err
	}
	logger.Info("running benchmark",
		zap.Int("fixtures", len(fixtures)),
		zap.Int("searchers", len(searchers)),
		zap.Int("repeat", cfg.Repeat),
		zap.Int("workers", cfg.Workers))

	runner := bench.New(
		bench.WithSearchers(searchers...),
		bench.WithRepeat(cfg.Repeat),
		bench.WithWorkers(cfg.Workers),
		bench.WithLogger(logger),
	)
	results, err := runner.Run(ctx, fixtures)
	if results != nil {
		if werr := bench.WriteReport(c.App.Writer, results); werr != nil {
			return werr
		}
	}
	return err
}

func findCommand(c *cli.Context) error {
	logger, err := newLogger(c.String("log-level"))
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	if c.IsSet("text") == c.IsSet("file") {
		return fmt.Errorf("exactly one of --text or --file is required")
	}
	text := []byte(c.String("text"))
	if c.IsSet("file") {
		loader, err := corpus.NewLoader(1, logger)
		if err != nil {
			return err
		}
		if text, err = loader.Load(c.String("file")); err != nil {
			return err
		}
	}
	searchers, err := lookupAll(c.StringSlice("algo"))
	if err != nil {
		return err
	}
	pattern := []byte(c.String("pattern"))
	for _, s := range searchers {
		if c.Bool("all") {
			fmt.Fprintf(c.App.Writer, "%s: %v\n", s, s.FindAllIndex(text, pattern))
			continue
		}
		fmt.Fprintf(c.App.Writer, "%s: %d\n", s, s.FindIndex(text, pattern))
	}
	return nil
}

func lookupAll(names []string) ([]search.Searcher, error) {
	var ss []search.Searcher
	for _, name := range names {
		for _, part := range strings.Split(name, ",") {
			s, err := search.Lookup(part)
			if err != nil {
				return nil, err
			}
			ss = append(ss, s)
		}
	}
	return ss, nil
}
