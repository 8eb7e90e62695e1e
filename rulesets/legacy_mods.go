package rulesets

import "strings"

// LegacyMods is the stable-era mod bitset. Bit positions are fixed by the
// legacy score and difficulty attribute storage and must never change.
type LegacyMods uint32

const LegacyNone LegacyMods = 0

const (
	LegacyNoFail      LegacyMods = 1 << iota // 1
	LegacyEasy                               // 2
	LegacyTouchDevice                        // 4
	LegacyHidden                             // 8
	LegacyHardRock                           // 16
	LegacySuddenDeath                        // 32
	LegacyDoubleTime                         // 64
	LegacyRelax                              // 128
	LegacyHalfTime                           // 256
	LegacyNightcore                          // 512
	LegacyFlashlight                         // 1024
	LegacyAutoplay                           // 2048
	LegacySpunOut                            // 4096
	LegacyAutopilot                          // 8192
	LegacyPerfect                            // 16384
	LegacyKey4                               // 32768
	LegacyKey5
	LegacyKey6
	LegacyKey7
	LegacyKey8
	LegacyFadeIn
	LegacyRandom
	LegacyCinema
	LegacyTarget
	LegacyKey9
	LegacyKeyCoop
	LegacyKey1
	LegacyKey3
	LegacyKey2
	LegacyScoreV2
	LegacyMirror
)

var legacyAcronyms = []struct {
	bit     LegacyMods
	acronym string
}{
	{LegacyNoFail, "NF"},
	{LegacyEasy, "EZ"},
	{LegacyTouchDevice, "TD"},
	{LegacyHidden, "HD"},
	{LegacyHardRock, "HR"},
	{LegacySuddenDeath, "SD"},
	{LegacyDoubleTime, "DT"},
	{LegacyRelax, "RX"},
	{LegacyHalfTime, "HT"},
	{LegacyNightcore, "NC"},
	{LegacyFlashlight, "FL"},
	{LegacyAutoplay, "AT"},
	{LegacySpunOut, "SO"},
	{LegacyAutopilot, "AP"},
	{LegacyPerfect, "PF"},
	{LegacyKey4, "4K"},
	{LegacyKey5, "5K"},
	{LegacyKey6, "6K"},
	{LegacyKey7, "7K"},
	{LegacyKey8, "8K"},
	{LegacyFadeIn, "FI"},
	{LegacyRandom, "RD"},
	{LegacyCinema, "CN"},
	{LegacyTarget, "TP"},
	{LegacyKey9, "9K"},
	{LegacyKeyCoop, "DS"},
	{LegacyKey1, "1K"},
	{LegacyKey3, "3K"},
	{LegacyKey2, "2K"},
	{LegacyScoreV2, "V2"},
	{LegacyMirror, "MR"},
}

// Has reports whether every bit of other is set.
func (m LegacyMods) Has(other LegacyMods) bool {
	return m&other == other
}

// Acronyms lists the set bits in bit order. Implied bits (DT under NC,
// SD under PF) are listed too.
func (m LegacyMods) Acronyms() []string {
	var ret []string
	for _, entry := range legacyAcronyms {
		if m.Has(entry.bit) {
			ret = append(ret, entry.acronym)
		}
	}
	return ret
}

func (m LegacyMods) String() string {
	if m == LegacyNone {
		return "NM"
	}
	return strings.Join(m.Acronyms(), "")
}
