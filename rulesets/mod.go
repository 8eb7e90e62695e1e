package rulesets

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownMod = errors.New("unknown mod")

type ModType uint8

const (
	ModDifficultyReduction ModType = iota
	ModDifficultyIncrease
	ModConversion
	ModAutomation
	ModFun
	ModSystem
)

func (t ModType) String() string {
	switch t {
	case ModDifficultyReduction:
		return "difficulty_reduction"
	case ModDifficultyIncrease:
		return "difficulty_increase"
	case ModConversion:
		return "conversion"
	case ModAutomation:
		return "automation"
	case ModFun:
		return "fun"
	case ModSystem:
		return "system"
	default:
		return fmt.Sprintf("mod_type(%d)", uint8(t))
	}
}

// Mod is a single gameplay modifier from a ruleset vocabulary.
type Mod struct {
	Acronym string
	Name    string
	Type    ModType

	// Legacy holds the bits this mod sets in LegacyMods, 0 if the stable
	// bitset has no representation for it.
	Legacy LegacyMods
}

// LegacyRepresentable reports whether the mod survives conversion to LegacyMods.
func (m Mod) LegacyRepresentable() bool {
	return m.Legacy != LegacyNone
}

func (m Mod) String() string {
	return m.Acronym
}

// Shared acronyms referenced outside the vocabularies.
const (
	AcronymHalfTime   = "HT"
	AcronymDaycore    = "DC"
	AcronymDoubleTime = "DT"
	AcronymNightcore  = "NC"
)

func newMod(acronym, name string, t ModType, legacy LegacyMods) Mod {
	return Mod{
		Acronym: acronym,
		Name:    name,
		Type:    t,
		Legacy:  legacy,
	}
}

// Mods shared by every ruleset.
var (
	modEasy        = newMod("EZ", "Easy", ModDifficultyReduction, LegacyEasy)
	modNoFail      = newMod("NF", "No Fail", ModDifficultyReduction, LegacyNoFail)
	modHalfTime    = newMod(AcronymHalfTime, "Half Time", ModDifficultyReduction, LegacyHalfTime)
	modDaycore     = newMod(AcronymDaycore, "Daycore", ModDifficultyReduction, LegacyNone)
	modHardRock    = newMod("HR", "Hard Rock", ModDifficultyIncrease, LegacyHardRock)
	modSuddenDeath = newMod("SD", "Sudden Death", ModDifficultyIncrease, LegacySuddenDeath)
	modPerfect     = newMod("PF", "Perfect", ModDifficultyIncrease, LegacyPerfect|LegacySuddenDeath)
	modDoubleTime  = newMod(AcronymDoubleTime, "Double Time", ModDifficultyIncrease, LegacyDoubleTime)
	modNightcore   = newMod(AcronymNightcore, "Nightcore", ModDifficultyIncrease, LegacyNightcore|LegacyDoubleTime)
	modHidden      = newMod("HD", "Hidden", ModDifficultyIncrease, LegacyHidden)
	modFlashlight  = newMod("FL", "Flashlight", ModDifficultyIncrease, LegacyFlashlight)
	modRelax       = newMod("RX", "Relax", ModAutomation, LegacyRelax)
	modAutoplay    = newMod("AT", "Autoplay", ModAutomation, LegacyAutoplay)
	modCinema      = newMod("CN", "Cinema", ModAutomation, LegacyCinema)
	modScoreV2     = newMod("SV2", "Score V2", ModSystem, LegacyScoreV2)

	modDifficultyAdjust = newMod("DA", "Difficulty Adjust", ModConversion, LegacyNone)
	modClassic          = newMod("CL", "Classic", ModConversion, LegacyNone)
	modWindUp           = newMod("WU", "Wind Up", ModFun, LegacyNone)
	modWindDown         = newMod("WD", "Wind Down", ModFun, LegacyNone)
	modMuted            = newMod("MU", "Muted", ModFun, LegacyNone)
)

// parseMods resolves acronyms against vocab. Duplicates collapse onto the
// first occurrence; the returned order follows the input.
func parseMods(vocab []Mod, acronyms []string) ([]Mod, error) {
	ret := make([]Mod, 0, len(acronyms))
	seen := make(map[string]bool, len(acronyms))
	for _, raw := range acronyms {
		acronym := strings.ToUpper(strings.TrimSpace(raw))
		if acronym == "" {
			continue
		}
		if seen[acronym] {
			continue
		}
		mod, ok := lookupMod(vocab, acronym)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownMod, raw)
		}
		seen[acronym] = true
		ret = append(ret, mod)
	}
	return ret, nil
}

func lookupMod(vocab []Mod, acronym string) (Mod, bool) {
	for _, mod := range vocab {
		if mod.Acronym == acronym {
			return mod, true
		}
	}
	return Mod{}, false
}

// Acronyms returns the acronym of each mod in order.
func Acronyms(mods []Mod) []string {
	ret := make([]string, len(mods))
	for i, mod := range mods {
		ret[i] = mod.Acronym
	}
	return ret
}
