// cmd/tools/plan-preview/main.go
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"planner-workers/internal/common/config"
	"planner-workers/internal/common/logger"
	"planner-workers/internal/common/validation"
	"planner-workers/internal/engine"
	abp "planner-workers/internal/workers/planner/analyze-business-plan"
)

func main() {
	analyzeCmd := flag.NewFlagSet("analyze", flag.ExitOnError)
	validateCmd := flag.NewFlagSet("validate", flag.ExitOnError)
	industriesCmd := flag.NewFlagSet("industries", flag.ExitOnError)

	analyzeFile := analyzeCmd.String("file", "-", "Path to a BusinessProfile JSON file (- for stdin)")
	configPath := analyzeCmd.String("config", "", "Optional config.yaml whose engine section overrides the default policy")
	section := analyzeCmd.String("section", "", "Print a single section: analysis, metrics, allocation, recommendations, roadmap")
	compact := analyzeCmd.Bool("compact", false, "Print compact JSON")
	logLevel := analyzeCmd.String("log-level", "warn", "Log level (debug, info, warn, error)")

	validateFile := validateCmd.String("file", "-", "Path to a BusinessProfile JSON file (- for stdin)")

	if len(os.Args) < 2 {
		help()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "analyze":
		analyzeCmd.Parse(os.Args[2:])
		log := logger.NewStructured(*logLevel, "console")
		if err := runAnalyze(*analyzeFile, *configPath, *section, *compact, log); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

	case "validate":
		validateCmd.Parse(os.Args[2:])
		ok, err := runValidate(*validateFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if !ok {
			os.Exit(2)
		}

	case "industries":
		industriesCmd.Parse(os.Args[2:])
		for _, name := range engine.Industries() {
			b := engine.Lookup(name)
			fmt.Printf("%-26s conv=%.1f%% ticket=%d cpc=%d cpl=%d competition=%s\n",
				b.Industry, b.BaseConversionRate, b.AvgTicketValue, b.BaseCostPerClick, b.BaseCostPerLead, b.CompetitionLevel)
		}

	default:
		help()
		os.Exit(1)
	}
}

func runAnalyze(path, configPath, section string, compact bool, log logger.Logger) error {
	raw, err := readInput(path)
	if err != nil {
		return err
	}

	cfg := abp.LoadConfig(nil)
	if configPath != "" {
		appCfg, err := config.LoadFromFile(configPath)
		if err != nil {
			return err
		}
		cfg = abp.LoadConfig(appCfg)
	}

	handler, err := abp.NewHandler(cfg, nil, log)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	output, err := handler.Execute(ctx, &abp.Input{Profile: raw})
	if err != nil {
		return err
	}

	var value interface{} = output
	if section != "" {
		if value, err = pick(output.Report, section); err != nil {
			return err
		}
	}
	return printJSON(os.Stdout, value, compact)
}

func runValidate(path string) (bool, error) {
	raw, err := readInput(path)
	if err != nil {
		return false, err
	}
	v, err := validation.NewProfileValidator()
	if err != nil {
		return false, err
	}
	result, err := v.Validate(raw)
	if err != nil {
		return false, err
	}
	if result.Valid {
		fmt.Println("Profile is valid.")
		return true, nil
	}
	fmt.Println("Profile is invalid:")
	for _, msg := range result.GetErrorMessages() {
		fmt.Printf("  - %s\n", msg)
	}
	return false, nil
}

func pick(report engine.Report, section string) (interface{}, error) {
	switch section {
	case "analysis":
		return report.Analysis, nil
	case "metrics":
		return report.Metrics, nil
	case "allocation":
		return report.Allocation, nil
	case "recommendations":
		return report.Recommendations, nil
	case "roadmap":
		return report.Roadmap, nil
	default:
		return nil, fmt.Errorf("unknown section %q", section)
	}
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read profile %s: %w", path, err)
	}
	return data, nil
}

func printJSON(w io.Writer, v interface{}, compact bool) error {
	enc := json.NewEncoder(w)
	if !compact {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}

func help() {
	fmt.Println("Usage: plan-preview <command> [options]")
	fmt.Println("Commands:")
	fmt.Println("  analyze     Run the scoring engine on a profile and print the report")
	fmt.Println("  validate    Check a profile against the input schema")
	fmt.Println("  industries  List the benchmark table")
}
