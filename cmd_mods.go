package main

import (
	"errors"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"ppcalc/legacy"
	"ppcalc/rulesets"
)

type modsResult struct {
	Ruleset        string   `json:"ruleset" yaml:"ruleset"`
	Mods           []string `json:"mods" yaml:"mods"`
	LegacyMods     uint32   `json:"legacy_mods" yaml:"legacy_mods"`
	LegacyAcronyms string   `json:"legacy_acronyms" yaml:"legacy_acronyms"`
	Filtered       []string `json:"filtered" yaml:"filtered"`
}

func newModsResult(ruleset rulesets.Ruleset, mods []rulesets.Mod) modsResult {
	legacyMods := legacy.ConvertToLegacyDifficultyAdjustmentMods(ruleset, mods)
	return modsResult{
		Ruleset:        ruleset.ShortName(),
		Mods:           rulesets.Acronyms(mods),
		LegacyMods:     uint32(legacyMods),
		LegacyAcronyms: legacyMods.String(),
		Filtered:       rulesets.Acronyms(legacy.FilterDifficultyAdjustmentMods(ruleset, mods)),
	}
}

func (a *app) modsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "mods <ruleset-id> [acronym...]",
		Short: "Convert a mod combination to legacy bitflags",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseRulesetArg(args[0])
			if err != nil {
				return err
			}
			ruleset, err := legacy.RulesetFromID(id)
			if err != nil {
				return err
			}
			mods, err := ruleset.ParseMods(args[1:])
			if err != nil {
				return err
			}
			return a.write(cmd.OutOrStdout(), newModsResult(ruleset, mods))
		},
	}
}

// parseModsLenient skips acronyms the ruleset does not know. Scores from the
// API can carry mods newer than the local vocabulary.
func (a *app) parseModsLenient(ruleset rulesets.Ruleset, acronyms []string) ([]rulesets.Mod, error) {
	known := make([]string, 0, len(acronyms))
	for _, acronym := range acronyms {
		if _, err := ruleset.ParseMods([]string{acronym}); errors.Is(err, rulesets.ErrUnknownMod) {
			a.logger.Warn("skipping unknown mod",
				zap.String("ruleset", ruleset.ShortName()),
				zap.String("acronym", acronym))
			continue
		}
		known = append(known, acronym)
	}
	return ruleset.ParseMods(known)
}
