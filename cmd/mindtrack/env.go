package mindtrack

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mindtrackhq/mindtrack/internal/environment"
	"github.com/mindtrackhq/mindtrack/pkg/models"
)

var (
	envDescription string
	envFormat      string
)

var envCmd = &cobra.Command{
	Use:   "env <image>",
	Short: "Classify a workplace environment photo",
	Long: `Classify a workplace environment from a photo (JPEG, PNG or GIF),
optionally guided by a text description of the space.

Examples:
  mindtrack env escritorio.jpg
  mindtrack env escritorio.jpg --description "Mesa bagunçada com muitos papéis"
  mindtrack env sala.png --format json`,
	Args: cobra.ExactArgs(1),
	RunE: runEnv,
}

func init() {
	envCmd.Flags().StringVarP(&envDescription, "description", "d", "", "Text description of the environment")
	envCmd.Flags().StringVarP(&envFormat, "format", "f", "text", "Output format (text, json)")
}

func runEnv(cmd *cobra.Command, args []string) error {
	path := args[0]

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read image: %w", err)
	}

	classifier := environment.New(environment.Config{})

	stop := startSpinner("Classifying environment...")
	result, err := classifier.Classify(data, envDescription)
	stop()
	if err != nil {
		return fmt.Errorf("classification failed: %w", err)
	}

	if envFormat == "json" {
		return outputJSON(result)
	}
	printEnvironment(os.Stdout, result)
	return nil
}

func printEnvironment(w io.Writer, r *models.EnvironmentResult) {
	label := color.New(color.FgGreen, color.Bold)
	if r.WellnessLevel <= 2 {
		label = color.New(color.FgRed, color.Bold)
	} else if r.WellnessLevel == 3 {
		label = color.New(color.FgYellow, color.Bold)
	}

	fmt.Fprintf(w, "Category:   ")
	_, _ = label.Fprintf(w, "%s\n", r.Category)
	fmt.Fprintf(w, "Score:      %.2f\n", r.Score)
	fmt.Fprintf(w, "Well-being: %d/5\n", r.WellnessLevel)
	fmt.Fprintf(w, "\n%s\n", r.Analysis)

	if len(r.Recommendations) > 0 {
		fmt.Fprintln(w)
		dim := color.New(color.FgHiBlack)
		_, _ = dim.Fprintln(w, strings.Repeat("─", 50))
		for _, rec := range r.Recommendations {
			fmt.Fprintf(w, "  • %s\n", rec)
		}
	}
}
