package legacy

import (
	"slices"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"ppcalc/rulesets"
)

func pickMods(all []rulesets.Mod, indices []int) []rulesets.Mod {
	mods := make([]rulesets.Mod, 0, len(indices))
	for _, i := range indices {
		mods = append(mods, all[i])
	}
	return mods
}

func TestFilterProperties(t *testing.T) {
	for id := 0; id < 4; id++ {
		ruleset, err := RulesetFromID(id)
		if err != nil {
			t.Fatal(err)
		}
		all := ruleset.AllMods()
		modIndices := gen.SliceOf(gen.IntRange(0, len(all)-1))

		parameters := gopter.DefaultTestParameters()
		parameters.MinSuccessfulTests = 200
		properties := gopter.NewProperties(parameters)

		properties.Property(ruleset.ShortName()+": filtering is idempotent", prop.ForAll(
			func(indices []int) bool {
				once := FilterDifficultyAdjustmentMods(ruleset, pickMods(all, indices))
				twice := FilterDifficultyAdjustmentMods(ruleset, once)
				return slices.Equal(once, twice)
			},
			modIndices,
		))

		properties.Property(ruleset.ShortName()+": filtered mods are legacy representable", prop.ForAll(
			func(indices []int) bool {
				for _, mod := range FilterDifficultyAdjustmentMods(ruleset, pickMods(all, indices)) {
					if !mod.LegacyRepresentable() {
						return false
					}
				}
				return true
			},
			modIndices,
		))

		properties.Property(ruleset.ShortName()+": daycore always sets half time", prop.ForAll(
			func(indices []int) bool {
				mods := pickMods(all, indices)
				got := ConvertToLegacyDifficultyAdjustmentMods(ruleset, mods)
				if slices.ContainsFunc(mods, acronymIs(rulesets.AcronymDaycore)) {
					return got.Has(rulesets.LegacyHalfTime)
				}
				return got == ruleset.ConvertToLegacyMods(mods)
			},
			modIndices,
		))

		properties.TestingRun(t)
	}
}
