package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pathwise/career-fit-engine/internal/domain"
	"github.com/pathwise/career-fit-engine/internal/logger"
	"github.com/pathwise/career-fit-engine/internal/matching"
	"github.com/pathwise/career-fit-engine/internal/vocab"
)

const promptDone = "(done)"

var assessCmd = &cobra.Command{
	Use:   "assess",
	Short: "Run the assessment and print ranked careers with a skills report",
	Long: "Walks the assessment questionnaire interactively, or reads answers " +
		"from a JSON file, then prints the ranked career matches and the " +
		"skills profile.",
	Run: func(_ *cobra.Command, _ []string) {
		assess()
	},
}

func init() {
	rootCmd.AddCommand(assessCmd)

	assessCmd.Flags().String("answers", "", "JSON file with raw answers (category -> token or token list)")
	assessCmd.Flags().IntP("limit", "n", 0, "number of careers to return (0 uses the strategy default)")
	assessCmd.Flags().StringP("strategy", "s", "", "scoring strategy: overlap or single_answer")
	assessCmd.Flags().String("format", "text", "output format: text or json")

	for _, name := range []string{"answers", "limit", "strategy", "format"} {
		if err := viper.BindPFlag(name, assessCmd.Flags().Lookup(name)); err != nil {
			log.Fatalf("binding %s flag: %v", name, err)
		}
	}
}

func assess() {
	zl, err := logger.New(viper.GetBool("json"), viper.GetBool("debug"))
	if err != nil {
		log.Fatalf("creating a logger: %s", err)
	}

	config, err := getConfig()
	if err != nil {
		zl.Fatal("getting a config", zap.Error(err))
	}

	careers := loadCatalog(config, zl)

	raw, err := collectAnswers(viper.GetString("answers"))
	if err != nil {
		zl.Fatal("collecting answers", zap.Error(err))
	}

	strategyName := viper.GetString("strategy")
	if strategyName == "" {
		strategyName = config.Strategy
	}
	strategy, err := matching.StrategyByName(strategyName)
	if err != nil {
		zl.Fatal("resolving strategy", zap.Error(err))
	}

	limit := viper.GetInt("limit")
	if limit <= 0 {
		limit = config.TopN
	}

	profile := matching.Normalize(raw)
	zl.Debug("normalized response", zap.Int("selections", profile.TotalSelections()))

	engine := matching.NewEngine(strategy)
	results := engine.Rank(profile, careers, limit)
	skills := matching.AnalyzeSkills(profile)

	if viper.GetString("format") == "json" {
		out, _ := json.MarshalIndent(map[string]any{"results": results, "skills": skills}, "", "  ")
		fmt.Println(string(out))
		return
	}
	printResults(results, skills)
}

// collectAnswers reads answers from a JSON file when given, otherwise walks
// the questionnaire interactively.
func collectAnswers(path string) (map[string]any, error) {
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read answers file: %w", err)
		}
		var raw map[string]any
		if err := json.Unmarshal(b, &raw); err != nil {
			return nil, fmt.Errorf("unmarshal answers: %w", err)
		}
		return raw, nil
	}

	raw := make(map[string]any)
	for _, q := range vocab.Questions() {
		selected, err := promptQuestion(q)
		if err != nil {
			return nil, err
		}
		if len(selected) > 0 {
			raw[q.Category] = selected
		}
	}
	return raw, nil
}

// promptQuestion keeps offering the remaining options until the user picks
// the done sentinel. Single-select questions stop after the first pick.
func promptQuestion(q vocab.Question) ([]string, error) {
	remaining := vocab.Tokens(q.Category)
	var selected []string

	for len(remaining) > 0 {
		items := make([]string, 0, len(remaining)+1)
		items = append(items, promptDone)
		items = append(items, remaining...)

		prompt := promptui.Select{
			Label: q.Prompt,
			Items: items,
			Size:  len(items),
		}
		idx, choice, err := prompt.Run()
		if err != nil {
			return nil, fmt.Errorf("prompt: %w", err)
		}
		if choice == promptDone {
			break
		}

		selected = append(selected, choice)
		remaining = append(remaining[:idx-1], remaining[idx:]...)
		if !q.Multi {
			break
		}
	}
	return selected, nil
}

func printResults(results []domain.MatchResult, skills domain.SkillsReport) {
	fmt.Println()
	fmt.Println("Top career matches")
	fmt.Println(strings.Repeat("-", 60))
	for i, r := range results {
		fmt.Printf("%2d. %-28s %3d%%\n", i+1, r.Career.Title, r.FitScore)
		fmt.Printf("    %s\n", r.Explanation)
		for _, reason := range r.Reasons {
			fmt.Printf("    - %s\n", reason)
		}
		if r.Career.Metadata.SalaryRange != "" {
			fmt.Printf("    Salary: %s | Growth: %s\n", r.Career.Metadata.SalaryRange, r.Career.Metadata.GrowthRate)
		}
		fmt.Println()
	}

	fmt.Println("Skills profile")
	fmt.Println(strings.Repeat("-", 60))
	printBucket("Strong", skills.Strong)
	printBucket("Developing", skills.Developing)
	printBucket("Growth areas", skills.Growth)
	fmt.Println()
	fmt.Println(skills.Summary)
}

func printBucket(label string, categories []domain.SkillCategory) {
	if len(categories) == 0 {
		return
	}
	fmt.Printf("%s:\n", label)
	for _, c := range categories {
		fmt.Printf("  %-24s %3d%%  (%s)\n", c.Name, c.Level, strings.Join(c.RepresentativeSkills, ", "))
	}
}
