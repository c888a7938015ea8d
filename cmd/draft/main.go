// Package main provides a CLI command for drafting editorial copy with a language model.
// Usage: draft -task article|headline|excerpt|breaking|summary|opinion|source
//
//	[-topic T] [-category C] [-stance S] [-length short|medium|long]
//	[-url U] [-file F] [-output text|json]
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/joho/godotenv"

	"herald/internal/config"
	"herald/internal/infra/fetcher"
	"herald/internal/infra/textgen"
	"herald/internal/observability/logging"
	"herald/internal/usecase/draft"
)

// Options are the parsed command-line flags.
type Options struct {
	Task     string
	Topic    string
	Category string
	Stance   string
	Length   string
	URL      string
	File     string
	Output   string
}

// Output is the JSON output format.
type Output struct {
	Task     string `json:"task"`
	Provider string `json:"provider"`
	Text     string `json:"text"`
}

func main() {
	var opts Options
	flag.StringVar(&opts.Task, "task", "", "Task: "+strings.Join(draft.Tasks(), ", "))
	flag.StringVar(&opts.Topic, "topic", "", "Topic (article, opinion) or event description (breaking)")
	flag.StringVar(&opts.Category, "category", "", "Category for article drafts")
	flag.StringVar(&opts.Stance, "stance", "", "Stance for opinion pieces")
	flag.StringVar(&opts.Length, "length", "medium", "Summary length: short, medium or long")
	flag.StringVar(&opts.URL, "url", "", "Source page to summarize (source task)")
	flag.StringVar(&opts.File, "file", "", "Article body file for headline, excerpt and summary; '-' reads stdin")
	flag.StringVar(&opts.Output, "output", "text", "Output format: text or json")
	flag.Parse()

	if !slices.Contains(draft.Tasks(), opts.Task) {
		fmt.Fprintf(os.Stderr, "Error: Invalid task '%s'\n\n", opts.Task)
		flag.Usage()
		os.Exit(2)
	}

	_ = godotenv.Load()
	logger := logging.NewLogger(os.Stderr, os.Getenv("LOG_LEVEL"))
	slog.SetDefault(logger)

	cfg, err := config.LoadTextGenConfig()
	if err != nil {
		logger.Error("failed to load text generation configuration", slog.Any("error", err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	gen, err := textgen.New(cfg)
	if err != nil {
		logger.Error("failed to create text generator", slog.Any("error", err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	svc := &draft.Service{
		Gen:     gen,
		Fetcher: fetcher.NewReadabilityFetcher(fetcher.DefaultConfig()),
	}

	// タイムアウトはプロバイダ側 (TEXTGEN_TIMEOUT) に任せる
	ctx := context.Background()
	logger.Info("generating draft",
		slog.String("task", opts.Task),
		slog.String("provider", cfg.Provider))

	text, err := Run(ctx, svc, opts, os.Stdin)
	if err != nil {
		logger.Error("draft failed", slog.String("task", opts.Task), slog.Any("error", err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := write(os.Stdout, opts, cfg.Provider, text); err != nil {
		fmt.Fprintf(os.Stderr, "Error: Failed to write output: %v\n", err)
		os.Exit(1)
	}
}

// Run dispatches one task. stdin is read when -file is "-".
func Run(ctx context.Context, svc *draft.Service, opts Options, stdin io.Reader) (string, error) {
	switch opts.Task {
	case draft.TaskArticle:
		return svc.Article(ctx, opts.Topic, opts.Category)
	case draft.TaskBreaking:
		return svc.BreakingNews(ctx, opts.Topic)
	case draft.TaskOpinion:
		return svc.Opinion(ctx, opts.Topic, opts.Stance)
	case draft.TaskSource:
		length, err := draft.ParseSummaryLength(opts.Length)
		if err != nil {
			return "", err
		}
		return svc.SummarizeSource(ctx, opts.URL, length)
	}

	body, err := readBody(opts.File, stdin)
	if err != nil {
		return "", err
	}
	switch opts.Task {
	case draft.TaskHeadline:
		return svc.Headline(ctx, body)
	case draft.TaskExcerpt:
		return svc.Excerpt(ctx, body)
	case draft.TaskSummary:
		length, err := draft.ParseSummaryLength(opts.Length)
		if err != nil {
			return "", err
		}
		return svc.Summary(ctx, body, length)
	}
	return "", fmt.Errorf("unknown task %q", opts.Task)
}

func readBody(file string, stdin io.Reader) (string, error) {
	switch file {
	case "":
		return "", errors.New("-file is required for this task")
	case "-":
		b, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(b), nil
	default:
		b, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("read body: %w", err)
		}
		return string(b), nil
	}
}

func write(w io.Writer, opts Options, provider, text string) error {
	if opts.Output != "json" {
		_, err := fmt.Fprintln(w, text)
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(Output{Task: opts.Task, Provider: provider, Text: text})
}
