// Command speakoset builds CEFR training corpora. It merges speech
// transcripts, written essays, and remote labeled datasets into one
// balanced, noise-augmented dataset for the external trainer, and
// reports on the result.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	flag "github.com/spf13/pflag"

	"github.com/rgilks/speako/internal/cefr"
	"github.com/rgilks/speako/internal/corpus"
	"github.com/rgilks/speako/internal/log"
	"github.com/rgilks/speako/internal/train"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "speakoset: %v\n", err)
		os.Exit(2)
	}
}

func run(args []string) error {
	if len(args) == 0 {
		return usageError()
	}

	switch args[0] {
	case "build":
		return runBuild(args[1:])
	case "stats":
		return runStats(args[1:])
	case "drift":
		return runDrift(args[1:])
	default:
		return usageError()
	}
}

func runBuild(args []string) error {
	fs := flag.NewFlagSet("build", flag.ContinueOnError)
	configPath := fs.String("config", "", "path to corpus build config yaml")
	outDir := fs.String("out", "", "output directory")
	verbose := fs.BoolP("verbose", "v", false, "log per-source diagnostics to stderr")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *configPath == "" || *outDir == "" {
		return errors.New("build requires --config and --out")
	}

	cfg, err := corpus.LoadConfig(*configPath)
	if err != nil {
		return err
	}

	logger := log.New(*verbose)
	sources, stats := corpus.LoadSources(cfg, logger)
	assembly, err := corpus.Assemble(cfg, sources, logger)
	if err != nil {
		return err
	}

	trainPath, evalPath, err := train.Handoff{Dir: *outDir}.Export(assembly)
	if err != nil {
		return err
	}
	reportPath := filepath.Join(*outDir, "report.json")
	report := corpus.NewReport(cfg, assembly, stats)
	if err := corpus.WriteJSON(reportPath, report); err != nil {
		return err
	}

	fmt.Printf("train:  %s\n", trainPath)
	fmt.Printf("eval:   %s\n", evalPath)
	fmt.Printf("report: %s\n", reportPath)
	return nil
}

func runStats(args []string) error {
	fs := flag.NewFlagSet("stats", flag.ContinueOnError)
	reportPath := fs.String("report", "", "path to report.json from a build")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *reportPath == "" {
		return errors.New("stats requires --report")
	}

	report, err := corpus.ReadReport(*reportPath)
	if err != nil {
		return err
	}
	printReport(report)
	return nil
}

func printReport(report corpus.Report) {
	fmt.Printf("dataset %s (seed %d)\n", report.DatasetVersion, report.Seed)
	fmt.Printf("train records: %d\n", report.TrainRecords)
	fmt.Printf("eval records:  %d\n", report.EvalRecords)

	fmt.Println("labels:")
	for _, level := range cefr.Levels() {
		fmt.Printf("  %s: %d\n", level, report.LabelCounts[string(level)])
	}

	fmt.Println("sources:")
	names := make([]string, 0, len(report.SourceCounts))
	for name := range report.SourceCounts {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Printf("  %s: %d\n", name, report.SourceCounts[name])
	}

	fmt.Printf("words: min=%d max=%d avg=%.1f\n", report.Words.MinWords, report.Words.MaxWords, report.Words.AvgWords)
	skippedNames := make([]string, 0, len(report.SkippedBySource))
	for name := range report.SkippedBySource {
		skippedNames = append(skippedNames, name)
	}
	sort.Strings(skippedNames)
	for _, name := range skippedNames {
		fmt.Printf("skipped (%s): %d\n", name, report.SkippedBySource[name])
	}
	for _, failed := range report.FailedSources {
		fmt.Printf("failed source: %s\n", failed)
	}
}

func runDrift(args []string) error {
	fs := flag.NewFlagSet("drift", flag.ContinueOnError)
	baselinePath := fs.String("baseline", "", "path to baseline report.json")
	candidatePath := fs.String("candidate", "", "path to candidate report.json")
	outPath := fs.String("out", "", "path to write drift report json")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *baselinePath == "" || *candidatePath == "" || *outPath == "" {
		return errors.New("drift requires --baseline, --candidate, and --out")
	}

	baseline, err := corpus.ReadReport(*baselinePath)
	if err != nil {
		return err
	}
	candidate, err := corpus.ReadReport(*candidatePath)
	if err != nil {
		return err
	}
	drift := corpus.CompareReports(baseline, candidate)
	if err := corpus.WriteJSON(*outPath, drift); err != nil {
		return err
	}
	fmt.Printf("drift report: %s\n", *outPath)
	return nil
}

func usageError() error {
	return errors.New("usage: speakoset <build|stats|drift> [flags]")
}
