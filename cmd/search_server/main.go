package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/gcbaptista/search-server/config"
	"github.com/gcbaptista/search-server/internal/engine"
	"github.com/gcbaptista/search-server/internal/logger"
	"github.com/gcbaptista/search-server/internal/paginator"
	"github.com/gcbaptista/search-server/internal/requests"
	"github.com/gcbaptista/search-server/internal/search"
	"github.com/gcbaptista/search-server/model"
	"github.com/gcbaptista/search-server/services"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	flags := flag.NewFlagSet("search_server", flag.ContinueOnError)
	flags.SetOutput(stdout)
	var (
		help       = flags.Bool("help", false, "Show help message")
		version    = flags.Bool("version", false, "Show version information")
		configPath = flags.String("config", "", "Path to a YAML config file")
		readStdin  = flags.Bool("stdin", false, "Read stop words, documents and queries from stdin")
		parallel   = flags.Bool("parallel", false, "Run queries in parallel instead of through the request tracker")
	)
	if err := flags.Parse(args); err != nil {
		return err
	}

	if *help {
		fmt.Fprintf(stdout, "Search Server - TF-IDF search over an in-memory corpus\n\n")
		fmt.Fprintf(stdout, "Usage: search_server [options]\n\n")
		fmt.Fprintf(stdout, "Options:\n")
		flags.PrintDefaults()
		fmt.Fprintf(stdout, "\nExamples:\n")
		fmt.Fprintf(stdout, "  search_server --config corpus.yaml   # Index and query from a config file\n")
		fmt.Fprintf(stdout, "  search_server --stdin < input.txt    # Read the line protocol from stdin\n")
		return nil
	}
	if *version {
		fmt.Fprintf(stdout, "Search Server v1.0.0\n")
		return nil
	}

	settings, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	if *readStdin {
		if err := readInput(stdin, settings); err != nil {
			return fmt.Errorf("reading input: %w", err)
		}
	}
	if problems := settings.Validate(); len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	logger.Setup(settings.Logging.Level, settings.Logging.Format)
	log := logger.WithComponent("main")

	eng, err := buildEngine(settings, log)
	if err != nil {
		return err
	}

	if *parallel {
		return runParallel(stdout, eng, settings)
	}
	return runTracked(stdout, eng, settings, log)
}

func buildEngine(settings *config.Settings, log *slog.Logger) (*engine.Engine, error) {
	eng, err := engine.NewFromText(settings.StopWords)
	if err != nil {
		return nil, fmt.Errorf("failed to create engine: %w", err)
	}
	for _, doc := range settings.Documents {
		if err := eng.AddDocument(doc.ID, doc.Text, doc.Status, doc.Ratings); err != nil {
			log.Warn("skipping document", "document_id", doc.ID, "error", err)
			continue
		}
	}
	log.Info("corpus indexed", "documents", eng.DocumentCount(), "skipped", len(settings.Documents)-eng.DocumentCount())
	return eng, nil
}

func runTracked(w io.Writer, eng *engine.Engine, settings *config.Settings, log *slog.Logger) error {
	status, err := settings.Status()
	if err != nil {
		return err
	}

	var registry *prometheus.Registry
	var metrics *requests.Metrics
	if settings.Metrics.Enabled {
		registry = prometheus.NewRegistry()
		if metrics, err = requests.NewMetrics(registry); err != nil {
			return fmt.Errorf("failed to register metrics: %w", err)
		}
	}
	queue, err := requests.NewQueue(eng, settings.RequestWindow, metrics)
	if err != nil {
		return err
	}

	for _, rawQuery := range settings.Queries {
		docs, err := queue.AddFindRequestByStatus(rawQuery, status)
		if err != nil {
			log.Warn("query failed", "query", rawQuery, "error", err)
			continue
		}
		if err := printResults(w, rawQuery, docs, settings.PageSize); err != nil {
			return err
		}
	}

	stats := queue.Stats()
	fmt.Fprintf(w, "Requests without results: %d of %d\n", stats.NoResultRequests, stats.Tracked)
	if registry != nil {
		logMetrics(registry, log)
	}
	return nil
}

func runParallel(w io.Writer, eng *engine.Engine, settings *config.Settings) error {
	status, err := settings.Status()
	if err != nil {
		return err
	}
	results, err := search.ProcessQueriesWith(context.Background(), eng, settings.Queries, services.ByStatus(status), settings.Workers)
	if err != nil {
		return err
	}
	for i, docs := range results {
		if err := printResults(w, settings.Queries[i], docs, settings.PageSize); err != nil {
			return err
		}
	}
	return nil
}

func printResults(w io.Writer, rawQuery string, docs []model.Document, pageSize int) error {
	pages, err := paginator.Paginate(docs, pageSize)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Results for request: %s\n", rawQuery)
	for _, page := range pages {
		for _, doc := range page.Items {
			fmt.Fprintln(w, doc.String())
		}
		fmt.Fprintln(w, "Page break")
	}
	return nil
}

func logMetrics(registry *prometheus.Registry, log *slog.Logger) {
	families, err := registry.Gather()
	if err != nil {
		log.Warn("failed to gather metrics", "error", err)
		return
	}
	for _, family := range families {
		for _, metric := range family.GetMetric() {
			attrs := []any{"metric", family.GetName()}
			for _, label := range metric.GetLabel() {
				attrs = append(attrs, label.GetName(), label.GetValue())
			}
			switch {
			case metric.GetCounter() != nil:
				attrs = append(attrs, "value", metric.GetCounter().GetValue())
			case metric.GetGauge() != nil:
				attrs = append(attrs, "value", metric.GetGauge().GetValue())
			case metric.GetHistogram() != nil:
				attrs = append(attrs, "count", metric.GetHistogram().GetSampleCount())
			}
			log.Info("request metric", attrs...)
		}
	}
}
