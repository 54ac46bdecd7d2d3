package mindtrack

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/mindtrackhq/mindtrack/internal/sentiment"
	"github.com/mindtrackhq/mindtrack/pkg/models"
)

var (
	analyzeFormat string
	analyzeBatch  bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [text]",
	Short: "Analyze sentiment of Portuguese text",
	Long: `Analyze the sentiment of workplace text written in Portuguese.

Reads the text from the argument, or from stdin when no argument is
given. With --batch, each stdin line is analyzed as a separate text and
the aggregate result is reported.

Examples:
  mindtrack analyze "Estou muito cansado essa semana"
  cat diario.txt | mindtrack analyze --batch
  mindtrack analyze "Dia excelente" --format json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeFormat, "format", "f", "text", "Output format (text, json)")
	analyzeCmd.Flags().BoolVar(&analyzeBatch, "batch", false, "Treat each stdin line as a separate text")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	analyzer := sentiment.New(sentiment.Config{})

	stop := startSpinner("Analyzing sentiment...")
	var result *models.SentimentResult

	switch {
	case len(args) == 1:
		result = analyzer.Analyze(args[0])
	case analyzeBatch:
		texts, err := readLines(os.Stdin)
		if err != nil {
			stop()
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		result = analyzer.AnalyzeAll(texts)
	default:
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			stop()
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		result = analyzer.Analyze(string(data))
	}
	stop()

	if analyzeFormat == "json" {
		return outputJSON(result)
	}
	printSentiment(os.Stdout, result)
	return nil
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, scanner.Err()
}

func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printSentiment(w io.Writer, r *models.SentimentResult) {
	label := color.New(color.FgGreen, color.Bold)
	switch r.Category {
	case models.SentimentNegative:
		label = color.New(color.FgRed, color.Bold)
	case models.SentimentNeutral:
		label = color.New(color.FgYellow, color.Bold)
	}

	fmt.Fprintf(w, "Sentiment:  ")
	_, _ = label.Fprintf(w, "%s\n", r.Category)
	fmt.Fprintf(w, "Score:      %.2f\n", r.Score)
	fmt.Fprintf(w, "Risk level: %s\n", riskBar(r.RiskLevel))
	fmt.Fprintf(w, "\n%s\n", r.Message)

	if len(r.Recommendations) > 0 {
		fmt.Fprintln(w)
		dim := color.New(color.FgHiBlack)
		_, _ = dim.Fprintln(w, strings.Repeat("─", 50))
		for _, rec := range r.Recommendations {
			fmt.Fprintf(w, "  • %s\n", rec)
		}
	}
}

func riskBar(level int) string {
	filled := strings.Repeat("█", level)
	empty := strings.Repeat("░", 5-level)
	return fmt.Sprintf("%s%s %d/5", filled, empty, level)
}

// startSpinner shows a spinner on stderr while work runs, but only when
// stderr is a terminal. The returned func stops it.
func startSpinner(message string) func() {
	if !isatty.IsTerminal(os.Stderr.Fd()) {
		return func() {}
	}
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	s.Suffix = " " + message
	s.Start()
	return s.Stop
}
