// internal/cli/rank.go
package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"scheme-recommender/internal/catalog"
	appconfig "scheme-recommender/internal/common/config"
	"scheme-recommender/internal/engine/eligibility"
	"scheme-recommender/internal/engine/recommend"
	"scheme-recommender/internal/models"
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank catalog schemes for a user profile and print the recommendation result as JSON",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runRank(cmd)
	},
}

func init() {
	rootCmd.AddCommand(rankCmd)

	rankCmd.Flags().String("schemes", "", "path to the scheme catalog JSON file")
	rankCmd.Flags().String("profile", "", "path to the user profile JSON file")
	rankCmd.Flags().String("preferences", "", "path to a preferences JSON file (optional)")
	rankCmd.Flags().String("applications", "", "path to a past applications JSON file; applied schemes are excluded")
	rankCmd.Flags().Int("max", 0, "maximum recommendations to return (0 uses the default)")
	rankCmd.Flags().Int("min-score", 0, "minimum eligibility confidence to include")
	rankCmd.Flags().String("sort", "", "sort key: SCORE, BENEFIT_AMOUNT, DEADLINE, POPULARITY")
	rankCmd.Flags().Bool("almost-eligible", false, "include almost-eligible schemes in insights")
}

func runRank(cmd *cobra.Command) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	log := newLogger(cfg)

	now, err := referenceTime()
	if err != nil {
		return err
	}

	schemesPath, _ := cmd.Flags().GetString("schemes")
	if schemesPath == "" {
		schemesPath = cfg.Catalog.SchemesPath
	}
	profilePath, _ := cmd.Flags().GetString("profile")
	if profilePath == "" {
		profilePath = cfg.Catalog.ProfilePath
	}
	if schemesPath == "" || profilePath == "" {
		return fmt.Errorf("a scheme catalog and a user profile are required (--schemes, --profile)")
	}

	loader := catalog.NewLoader(log)
	schemes, err := loader.LoadCatalog(schemesPath)
	if err != nil {
		return err
	}
	profile, err := loader.LoadProfile(profilePath)
	if err != nil {
		return err
	}

	prefsPath, _ := cmd.Flags().GetString("preferences")
	prefs, err := loader.LoadPreferences(prefsPath)
	if err != nil {
		return err
	}
	applyPrefFlags(cmd, &prefs)

	if appsPath, _ := cmd.Flags().GetString("applications"); appsPath != "" {
		applications, err := loader.LoadApplications(appsPath)
		if err != nil {
			return err
		}
		prefs.AppliedSchemeIDs = append(prefs.AppliedSchemeIDs, models.AppliedSchemeIDs(applications)...)
	}

	evaluator := eligibility.New(nil, nil, log)
	ranker := recommend.New(rankerConfig(cfg), evaluator, log)

	result := ranker.Rank(profile, schemes, prefs, now)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

func applyPrefFlags(cmd *cobra.Command, prefs *models.RecommendationPreferences) {
	if max, _ := cmd.Flags().GetInt("max"); max > 0 {
		prefs.MaxRecommendations = max
	}
	if min, _ := cmd.Flags().GetInt("min-score"); min > 0 {
		prefs.MinEligibilityScore = min
	}
	if sortBy, _ := cmd.Flags().GetString("sort"); sortBy != "" {
		prefs.SortBy = models.SortField(sortBy)
	}
	if cmd.Flags().Changed("almost-eligible") {
		include, _ := cmd.Flags().GetBool("almost-eligible")
		prefs.IncludeAlmostEligible = include
	}
}

// rankerConfig maps the file-backed policy knobs onto the engine config,
// keeping engine defaults for anything the file does not set.
func rankerConfig(cfg *appconfig.Config) *recommend.Config {
	rc := recommend.LoadConfig()
	rc.PriorityCategoryBonus = cfg.Ranker.PriorityCategoryBonus
	rc.BenefitBonusMax = cfg.Ranker.BenefitBonusMax
	rc.BenefitReferenceAmount = cfg.Ranker.BenefitReferenceAmount
	rc.UrgencyBonus = cfg.Ranker.UrgencyBonus
	rc.DeadlineHorizonDays = cfg.Ranker.DeadlineHorizonDays
	rc.HighPriorityThreshold = cfg.Ranker.HighPriorityThreshold
	rc.MediumPriorityThreshold = cfg.Ranker.MediumPriorityThreshold
	rc.Workers = cfg.Ranker.Workers
	if cfg.App.Version != "" {
		rc.AlgorithmVersion = cfg.App.Version
	}
	return rc
}
