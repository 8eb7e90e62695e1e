package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"ppcalc/legacy"
	"ppcalc/osuapi"
	"ppcalc/rulesets"
	"ppcalc/store"
)

type legacyScoreResult struct {
	ScoreID    int64                         `json:"score_id" yaml:"score_id"`
	BeatmapID  int                           `json:"beatmap_id" yaml:"beatmap_id"`
	Mods       modsResult                    `json:"mods" yaml:"mods"`
	Cached     bool                          `json:"cached" yaml:"cached"`
	Attributes rulesets.DifficultyAttributes `json:"attributes" yaml:"attributes"`
}

func (a *app) legacyScoreCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "legacy-score <score-id>",
		Short: "Fetch a score and its difficulty attributes under the legacy mod key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scoreID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("score id %q is not an integer", args[0])
			}

			db, err := store.Open(a.cfg.DBPath, a.logger)
			if err != nil {
				return err
			}
			defer db.Close()

			client := osuapi.NewClient(osuapi.Config{
				BaseURL:       a.cfg.APIURL,
				ClientID:      a.cfg.ClientID,
				ClientSecret:  a.cfg.ClientSecret,
				RatePerMinute: a.cfg.APIRatePerMinute,
				MaxConcurrent: a.cfg.APIMaxConcurrent,
			}, a.logger)

			ctx := cmd.Context()
			score, err := client.Score(ctx, scoreID)
			if err != nil {
				return err
			}
			ruleset, err := legacy.RulesetFromID(score.RulesetID)
			if err != nil {
				return fmt.Errorf("score %d: %w", scoreID, err)
			}
			mods, err := a.parseModsLenient(ruleset, score.ModAcronyms())
			if err != nil {
				return err
			}
			key := legacy.ConvertToLegacyDifficultyAdjustmentMods(ruleset, mods)

			result := legacyScoreResult{
				ScoreID:   score.ID,
				BeatmapID: score.BeatmapID,
				Mods:      newModsResult(ruleset, mods),
			}

			attrs, err := db.Attributes(ctx, score.BeatmapID, score.RulesetID, key)
			switch {
			case err == nil:
				result.Cached = true
			case errors.Is(err, store.ErrNotFound):
				attrs, err = client.BeatmapAttributes(ctx, score.BeatmapID, score.RulesetID, key)
				if err != nil {
					return err
				}
				if err := db.PutAttributes(ctx, score.BeatmapID, key, attrs); err != nil {
					return err
				}
			default:
				return err
			}
			result.Attributes = attrs

			a.logger.Info("resolved legacy score",
				zap.Int64("score_id", score.ID),
				zap.Int("beatmap_id", score.BeatmapID),
				zap.String("ruleset", ruleset.ShortName()),
				zap.Stringer("legacy_mods", key),
				zap.Bool("cached", result.Cached))
			return a.write(cmd.OutOrStdout(), result)
		},
	}
}
