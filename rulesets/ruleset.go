package rulesets

import (
	"fmt"
	"slices"
)

// ID is the online identifier of a ruleset. The same values are used as the
// legacy "mode" integer.
type ID int

const (
	Osu ID = iota
	Taiko
	Catch
	Mania
)

func (id ID) String() string {
	switch id {
	case Osu:
		return "osu"
	case Taiko:
		return "taiko"
	case Catch:
		return "catch"
	case Mania:
		return "mania"
	default:
		return fmt.Sprintf("ruleset(%d)", int(id))
	}
}

// Ruleset is implemented by *OsuRuleset, *TaikoRuleset, *CatchRuleset and
// *ManiaRuleset only.
type Ruleset interface {
	ID() ID
	ShortName() string
	Description() string

	// AllMods returns the ruleset vocabulary in canonical order.
	AllMods() []Mod
	ParseMods(acronyms []string) ([]Mod, error)

	ConvertToLegacyMods(mods []Mod) LegacyMods
	ConvertFromLegacyMods(mods LegacyMods) []Mod

	ruleset()
}

type base struct {
	id          ID
	shortName   string
	description string
	mods        []Mod
}

func (b *base) ID() ID              { return b.id }
func (b *base) ShortName() string   { return b.shortName }
func (b *base) Description() string { return b.description }
func (b *base) AllMods() []Mod      { return slices.Clone(b.mods) }
func (b *base) ruleset()            {}

func (b *base) ParseMods(acronyms []string) ([]Mod, error) {
	mods, err := parseMods(b.mods, acronyms)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", b.shortName, err)
	}
	return mods, nil
}

// ConvertToLegacyMods ORs the legacy bits of every mod. Mods without a
// legacy representation contribute nothing.
func (b *base) ConvertToLegacyMods(mods []Mod) LegacyMods {
	value := LegacyNone
	for _, mod := range mods {
		value |= mod.Legacy
	}
	return value
}

// ConvertFromLegacyMods walks the vocabulary in order and emits each mod whose
// bits are all still unclaimed. Vocabularies list NC before DT and PF before
// SD so the implied bit is claimed by the stronger mod.
func (b *base) ConvertFromLegacyMods(mods LegacyMods) []Mod {
	ret := make([]Mod, 0)
	remaining := mods
	for _, mod := range b.mods {
		if !mod.LegacyRepresentable() {
			continue
		}
		if !remaining.Has(mod.Legacy) {
			continue
		}
		remaining &^= mod.Legacy
		ret = append(ret, mod)
	}
	return ret
}

type OsuRuleset struct{ base }

func NewOsuRuleset() *OsuRuleset {
	return &OsuRuleset{base{
		id:          Osu,
		shortName:   "osu",
		description: "osu!",
		mods:        osuMods,
	}}
}

type TaikoRuleset struct{ base }

func NewTaikoRuleset() *TaikoRuleset {
	return &TaikoRuleset{base{
		id:          Taiko,
		shortName:   "taiko",
		description: "osu!taiko",
		mods:        taikoMods,
	}}
}

type CatchRuleset struct{ base }

func NewCatchRuleset() *CatchRuleset {
	return &CatchRuleset{base{
		id:          Catch,
		shortName:   "fruits",
		description: "osu!catch",
		mods:        catchMods,
	}}
}

type ManiaRuleset struct{ base }

func NewManiaRuleset() *ManiaRuleset {
	return &ManiaRuleset{base{
		id:          Mania,
		shortName:   "mania",
		description: "osu!mania",
		mods:        maniaMods,
	}}
}

var osuMods = []Mod{
	modEasy,
	modNoFail,
	modHalfTime,
	modDaycore,
	modHardRock,
	modPerfect,
	modSuddenDeath,
	modNightcore,
	modDoubleTime,
	modHidden,
	modFlashlight,
	newMod("BL", "Blinds", ModDifficultyIncrease, LegacyNone),
	newMod("TD", "Touch Device", ModSystem, LegacyTouchDevice),
	modRelax,
	newMod("AP", "Autopilot", ModAutomation, LegacyAutopilot),
	newMod("SO", "Spun Out", ModAutomation, LegacySpunOut),
	modAutoplay,
	modCinema,
	newMod("TP", "Target Practice", ModConversion, LegacyTarget),
	modDifficultyAdjust,
	modClassic,
	newMod("MR", "Mirror", ModConversion, LegacyNone),
	newMod("TR", "Transform", ModFun, LegacyNone),
	newMod("WG", "Wiggle", ModFun, LegacyNone),
	modWindUp,
	modWindDown,
	modMuted,
	modScoreV2,
}

var taikoMods = []Mod{
	modEasy,
	modNoFail,
	modHalfTime,
	modDaycore,
	modHardRock,
	modPerfect,
	modSuddenDeath,
	modNightcore,
	modDoubleTime,
	modHidden,
	modFlashlight,
	newMod("CS", "Constant Speed", ModConversion, LegacyNone),
	modRelax,
	modAutoplay,
	modCinema,
	newMod("RD", "Random", ModConversion, LegacyRandom),
	modDifficultyAdjust,
	modClassic,
	newMod("SW", "Swap", ModConversion, LegacyNone),
	modWindUp,
	modWindDown,
	modMuted,
	modScoreV2,
}

var catchMods = []Mod{
	modEasy,
	modNoFail,
	modHalfTime,
	modDaycore,
	modHardRock,
	modPerfect,
	modSuddenDeath,
	modNightcore,
	modDoubleTime,
	modHidden,
	modFlashlight,
	modRelax,
	modAutoplay,
	modCinema,
	modDifficultyAdjust,
	modClassic,
	newMod("MR", "Mirror", ModConversion, LegacyNone),
	newMod("FF", "Floating Fruits", ModFun, LegacyNone),
	modWindUp,
	modWindDown,
	modMuted,
	modScoreV2,
}

var maniaMods = []Mod{
	modEasy,
	modNoFail,
	modHalfTime,
	modDaycore,
	modHardRock,
	modPerfect,
	modSuddenDeath,
	modNightcore,
	modDoubleTime,
	newMod("FI", "Fade In", ModDifficultyIncrease, LegacyFadeIn),
	modHidden,
	modFlashlight,
	newMod("1K", "One Key", ModConversion, LegacyKey1),
	newMod("2K", "Two Keys", ModConversion, LegacyKey2),
	newMod("3K", "Three Keys", ModConversion, LegacyKey3),
	newMod("4K", "Four Keys", ModConversion, LegacyKey4),
	newMod("5K", "Five Keys", ModConversion, LegacyKey5),
	newMod("6K", "Six Keys", ModConversion, LegacyKey6),
	newMod("7K", "Seven Keys", ModConversion, LegacyKey7),
	newMod("8K", "Eight Keys", ModConversion, LegacyKey8),
	newMod("9K", "Nine Keys", ModConversion, LegacyKey9),
	newMod("DS", "Dual Stages", ModConversion, LegacyKeyCoop),
	newMod("RD", "Random", ModConversion, LegacyRandom),
	newMod("MR", "Mirror", ModConversion, LegacyMirror),
	modAutoplay,
	modCinema,
	modDifficultyAdjust,
	modClassic,
	newMod("IN", "Invert", ModConversion, LegacyNone),
	modWindUp,
	modWindDown,
	modMuted,
	modScoreV2,
}
