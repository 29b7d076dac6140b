package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"arkmotors/internal/logger"
)

var classifyCmd = &cobra.Command{
	Use:   "classify <account> <description>",
	Short: "Show the settlement category of a ledger line",
	Long: `Classifies a ledger line by its account label and description using the
keyword rules (the built-in rules, or those from --rules / ARK_RULES_FILE).
Useful for checking a rules file before running a settlement.`,
	Example: `  arkmotors classify 장부 "3월 급여"
  arkmotors classify 차대 "" --json`,
	Args: cobra.ExactArgs(2),
	RunE: runClassify,
}

func init() {
	rootCmd.AddCommand(classifyCmd)
}

func runClassify(cmd *cobra.Command, args []string) error {
	log := logger.WithComponent("classify")

	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	classifier, err := s.classifier()
	if err != nil {
		return err
	}

	account, description := args[0], args[1]
	category := classifier.Classify(account, description)

	log.Debug().
		Str("account", account).
		Str("description", description).
		Str("category", string(category)).
		Msg("Ledger line classified")

	out := cmd.OutOrStdout()
	if s.json {
		return writeJSON(out, map[string]interface{}{
			"account":     account,
			"description": description,
			"category":    category,
			"label":       category.Label(),
		})
	}

	fmt.Fprintf(out, "%s (%s)\n", category.Label(), category)
	return nil
}
