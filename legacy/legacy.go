// Package legacy maps legacy ruleset ids onto rulesets and normalizes mod
// combinations to what the stable scoring system would have seen.
package legacy

import (
	"errors"
	"fmt"
	"slices"

	"ppcalc/rulesets"
)

var ErrInvalidArgument = errors.New("invalid argument")

// InvalidArgumentError is returned for legacy ruleset ids outside 0..3.
type InvalidArgumentError struct {
	ID int
}

func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid ruleset id: %d", e.ID)
}

func (e *InvalidArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}

func RulesetFromID(id int) (rulesets.Ruleset, error) {
	switch rulesets.ID(id) {
	case rulesets.Osu:
		return rulesets.NewOsuRuleset(), nil
	case rulesets.Taiko:
		return rulesets.NewTaikoRuleset(), nil
	case rulesets.Catch:
		return rulesets.NewCatchRuleset(), nil
	case rulesets.Mania:
		return rulesets.NewManiaRuleset(), nil
	default:
		return nil, &InvalidArgumentError{ID: id}
	}
}

func ShortNameFromID(id int) (string, error) {
	switch rulesets.ID(id) {
	case rulesets.Osu:
		return "osu", nil
	case rulesets.Taiko:
		return "taiko", nil
	case rulesets.Catch:
		return "fruits", nil
	case rulesets.Mania:
		return "mania", nil
	default:
		return "", &InvalidArgumentError{ID: id}
	}
}

// CreateDifficultyAttributes returns the zero-valued attributes variant for
// the ruleset id. Callers fill the fields themselves.
func CreateDifficultyAttributes(id int) (rulesets.DifficultyAttributes, error) {
	switch rulesets.ID(id) {
	case rulesets.Osu:
		return &rulesets.OsuDifficultyAttributes{}, nil
	case rulesets.Taiko:
		return &rulesets.TaikoDifficultyAttributes{}, nil
	case rulesets.Catch:
		return &rulesets.CatchDifficultyAttributes{}, nil
	case rulesets.Mania:
		return &rulesets.ManiaDifficultyAttributes{}, nil
	default:
		return nil, &InvalidArgumentError{ID: id}
	}
}

// approximation forces legacy bits whenever a mod it matches is present. It
// covers mods with no stable equivalent that are close enough to one that
// does exist.
type approximation struct {
	name    string
	matches func(rulesets.Mod) bool
	legacy  rulesets.LegacyMods
}

// approximations is applied in order after the ruleset conversion.
var approximations = []approximation{
	{
		name:    "daycore as half time",
		matches: acronymIs(rulesets.AcronymDaycore),
		legacy:  rulesets.LegacyHalfTime,
	},
}

func acronymIs(acronym string) func(rulesets.Mod) bool {
	return func(mod rulesets.Mod) bool {
		return mod.Acronym == acronym
	}
}

// ConvertToLegacyDifficultyAdjustmentMods converts mods into the bitset legacy
// scores are keyed by. Mods the stable client never had are dropped unless an
// approximation maps them onto an existing bit.
func ConvertToLegacyDifficultyAdjustmentMods(ruleset rulesets.Ruleset, mods []rulesets.Mod) rulesets.LegacyMods {
	legacyMods := ruleset.ConvertToLegacyMods(mods)

	for _, rule := range approximations {
		if slices.ContainsFunc(mods, rule.matches) {
			legacyMods |= rule.legacy
		}
	}

	return legacyMods
}

// FilterDifficultyAdjustmentMods round-trips mods through the legacy bitset.
// The result only holds legacy representable mods and may replace an
// approximated mod with its stable counterpart.
func FilterDifficultyAdjustmentMods(ruleset rulesets.Ruleset, mods []rulesets.Mod) []rulesets.Mod {
	return ruleset.ConvertFromLegacyMods(ConvertToLegacyDifficultyAdjustmentMods(ruleset, mods))
}
