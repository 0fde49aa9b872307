// internal/cli/evaluate.go
package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"scheme-recommender/internal/catalog"
	"scheme-recommender/internal/engine/eligibility"
	"scheme-recommender/internal/models"
)

var evaluateCmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Evaluate a user profile against one scheme (or the whole catalog) and print verdicts as JSON",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runEvaluate(cmd)
	},
}

func init() {
	rootCmd.AddCommand(evaluateCmd)

	evaluateCmd.Flags().String("schemes", "", "path to the scheme catalog JSON file")
	evaluateCmd.Flags().String("profile", "", "path to the user profile JSON file")
	evaluateCmd.Flags().String("scheme-id", "", "evaluate only the scheme with this ID")
}

type evaluateOutput struct {
	SchemeID string                         `json:"schemeId"`
	Name     string                         `json:"name"`
	Result   *models.EligibilityCheckResult `json:"result,omitempty"`
	Error    string                         `json:"error,omitempty"`
}

func runEvaluate(cmd *cobra.Command) error {
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

	schemeID, _ := cmd.Flags().GetString("scheme-id")
	evaluator := eligibility.New(nil, nil, log)

	var outputs []evaluateOutput
	for i := range schemes {
		s := &schemes[i]
		if schemeID != "" && s.ID != schemeID {
			continue
		}
		out := evaluateOutput{SchemeID: s.ID, Name: s.Name}
		result, err := evaluator.Evaluate(profile, &s.Eligibility, now)
		if err != nil {
			out.Error = err.Error()
		} else {
			out.Result = result
		}
		outputs = append(outputs, out)
	}

	if schemeID != "" && len(outputs) == 0 {
		return fmt.Errorf("scheme %q not found in catalog", schemeID)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(outputs)
}
