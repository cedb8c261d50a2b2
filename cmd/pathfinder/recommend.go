package main

import (
	"os"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/gabrielc1317/mdc-pathfinder/internal/advisor"
	"github.com/gabrielc1317/mdc-pathfinder/internal/llm"
	"github.com/gabrielc1317/mdc-pathfinder/internal/llm/providers"
	"github.com/gabrielc1317/mdc-pathfinder/internal/recommend"
)

var (
	recommendGoal   int
	recommendEarned int
	recommendOnline bool
	recommendPrior  string
	recommendUseAI  bool
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Print program recommendations for a career goal",
	RunE:  runRecommend,
}

func init() {
	recommendCmd.Flags().IntVar(&recommendGoal, "goal", 0, "Career goal id (required)")
	recommendCmd.Flags().IntVar(&recommendEarned, "earned", 0, "College credits already earned")
	recommendCmd.Flags().BoolVar(&recommendOnline, "online", false, "Prefer online or hybrid delivery")
	recommendCmd.Flags().StringVar(&recommendPrior, "prior", "", "Prior education level (hs, some_college, aa, ...)")
	recommendCmd.Flags().BoolVar(&recommendUseAI, "ai", false, "Use the AI advising path")
	recommendCmd.MarkFlagRequired("goal")
}

func runRecommend(cmd *cobra.Command, args []string) error {
	cfg, logger, store, err := loadApp()
	if err != nil {
		return err
	}

	req := recommend.Request{
		PriorEducation: recommendPrior,
		GoalID:         recommendGoal,
		EarnedCredits:  recommendEarned,
		PreferOnline:   recommendOnline,
	}

	var resp recommend.Response
	if recommendUseAI {
		var provider llm.Provider
		if p, err := providers.NewProvider(cfg.LLM); err != nil {
			logger.Warn("model provider unavailable, using deterministic path", "error", err)
		} else {
			provider = p
		}
		orch := advisor.NewOrchestrator(provider, store, advisor.Options{
			Model:       cfg.LLM.DefaultModel,
			Temperature: cfg.LLM.Temperature,
			MaxTokens:   cfg.LLM.MaxTokens,
			Timeout:     cfg.Advisor.Timeout,
		}, logger)
		resp = orch.Recommend(cmd.Context(), req)
	} else {
		resp = recommend.NewRecommender(store, logger).Recommend(req)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(resp)
}
