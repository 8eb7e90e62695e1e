package rulesets

// Attribute ids used by the legacy difficulty attribute storage. Odd numbers
// only; the even ids were never assigned.
const (
	AttribAim                       = 1
	AttribSpeed                     = 3
	AttribOverallDifficulty         = 5
	AttribApproachRate              = 7
	AttribMaxCombo                  = 9
	AttribStarRating                = 11
	AttribGreatHitWindow            = 13
	AttribFlashlight                = 17
	AttribSliderFactor              = 19
	AttribSpeedNoteCount            = 21
	AttribSpeedDifficultStrainCount = 23
	AttribAimDifficultStrainCount   = 25
	AttribMonoStaminaFactor         = 29
)

// DifficultyAttributes is implemented by the four per-ruleset attribute
// structs. A freshly constructed value carries zeroes only; populating it is
// up to the difficulty calculator or the attribute store.
type DifficultyAttributes interface {
	RulesetID() ID
	Common() *CommonAttributes

	DatabaseAttributes() map[int]float64
	SetDatabaseAttributes(values map[int]float64)

	difficultyAttributes()
}

type CommonAttributes struct {
	StarRating float64 `json:"star_rating" yaml:"star_rating"`
	MaxCombo   int     `json:"max_combo" yaml:"max_combo"`
}

func (c *CommonAttributes) Common() *CommonAttributes { return c }
func (c *CommonAttributes) difficultyAttributes()     {}

func (c *CommonAttributes) databaseAttributes() map[int]float64 {
	return map[int]float64{
		AttribMaxCombo:   float64(c.MaxCombo),
		AttribStarRating: c.StarRating,
	}
}

func (c *CommonAttributes) setDatabaseAttributes(values map[int]float64) {
	c.MaxCombo = int(values[AttribMaxCombo])
	c.StarRating = values[AttribStarRating]
}

type OsuDifficultyAttributes struct {
	CommonAttributes `yaml:",inline"`

	AimDifficulty             float64 `json:"aim_difficulty" yaml:"aim_difficulty"`
	AimDifficultStrainCount   float64 `json:"aim_difficult_strain_count" yaml:"aim_difficult_strain_count"`
	SpeedDifficulty           float64 `json:"speed_difficulty" yaml:"speed_difficulty"`
	SpeedNoteCount            float64 `json:"speed_note_count" yaml:"speed_note_count"`
	SpeedDifficultStrainCount float64 `json:"speed_difficult_strain_count" yaml:"speed_difficult_strain_count"`
	FlashlightDifficulty      float64 `json:"flashlight_difficulty" yaml:"flashlight_difficulty"`
	SliderFactor              float64 `json:"slider_factor" yaml:"slider_factor"`
	ApproachRate              float64 `json:"approach_rate" yaml:"approach_rate"`
	OverallDifficulty         float64 `json:"overall_difficulty" yaml:"overall_difficulty"`
}

func (*OsuDifficultyAttributes) RulesetID() ID { return Osu }

func (a *OsuDifficultyAttributes) DatabaseAttributes() map[int]float64 {
	values := a.CommonAttributes.databaseAttributes()
	values[AttribAim] = a.AimDifficulty
	values[AttribSpeed] = a.SpeedDifficulty
	values[AttribOverallDifficulty] = a.OverallDifficulty
	values[AttribApproachRate] = a.ApproachRate
	values[AttribSliderFactor] = a.SliderFactor
	values[AttribSpeedNoteCount] = a.SpeedNoteCount
	values[AttribSpeedDifficultStrainCount] = a.SpeedDifficultStrainCount
	values[AttribAimDifficultStrainCount] = a.AimDifficultStrainCount
	// flashlight is only stored when it was calculated
	if a.FlashlightDifficulty > 0 {
		values[AttribFlashlight] = a.FlashlightDifficulty
	}
	return values
}

func (a *OsuDifficultyAttributes) SetDatabaseAttributes(values map[int]float64) {
	a.CommonAttributes.setDatabaseAttributes(values)
	a.AimDifficulty = values[AttribAim]
	a.SpeedDifficulty = values[AttribSpeed]
	a.OverallDifficulty = values[AttribOverallDifficulty]
	a.ApproachRate = values[AttribApproachRate]
	a.FlashlightDifficulty = values[AttribFlashlight]
	a.SliderFactor = values[AttribSliderFactor]
	a.SpeedNoteCount = values[AttribSpeedNoteCount]
	a.SpeedDifficultStrainCount = values[AttribSpeedDifficultStrainCount]
	a.AimDifficultStrainCount = values[AttribAimDifficultStrainCount]
}

// TaikoDifficultyAttributes only carries what the attribute table stores. The
// per-skill stamina, rhythm and colour values have no attribute id.
type TaikoDifficultyAttributes struct {
	CommonAttributes `yaml:",inline"`

	MonoStaminaFactor float64 `json:"mono_stamina_factor" yaml:"mono_stamina_factor"`
	GreatHitWindow    float64 `json:"great_hit_window" yaml:"great_hit_window"`
}

func (*TaikoDifficultyAttributes) RulesetID() ID { return Taiko }

func (a *TaikoDifficultyAttributes) DatabaseAttributes() map[int]float64 {
	values := a.CommonAttributes.databaseAttributes()
	values[AttribGreatHitWindow] = a.GreatHitWindow
	values[AttribMonoStaminaFactor] = a.MonoStaminaFactor
	return values
}

func (a *TaikoDifficultyAttributes) SetDatabaseAttributes(values map[int]float64) {
	a.CommonAttributes.setDatabaseAttributes(values)
	a.GreatHitWindow = values[AttribGreatHitWindow]
	a.MonoStaminaFactor = values[AttribMonoStaminaFactor]
}

type CatchDifficultyAttributes struct {
	CommonAttributes `yaml:",inline"`

	ApproachRate float64 `json:"approach_rate" yaml:"approach_rate"`
}

func (*CatchDifficultyAttributes) RulesetID() ID { return Catch }

func (a *CatchDifficultyAttributes) DatabaseAttributes() map[int]float64 {
	values := a.CommonAttributes.databaseAttributes()
	values[AttribApproachRate] = a.ApproachRate
	return values
}

func (a *CatchDifficultyAttributes) SetDatabaseAttributes(values map[int]float64) {
	a.CommonAttributes.setDatabaseAttributes(values)
	a.ApproachRate = values[AttribApproachRate]
}

type ManiaDifficultyAttributes struct {
	CommonAttributes `yaml:",inline"`

	GreatHitWindow float64 `json:"great_hit_window" yaml:"great_hit_window"`
}

func (*ManiaDifficultyAttributes) RulesetID() ID { return Mania }

func (a *ManiaDifficultyAttributes) DatabaseAttributes() map[int]float64 {
	values := a.CommonAttributes.databaseAttributes()
	values[AttribGreatHitWindow] = a.GreatHitWindow
	return values
}

func (a *ManiaDifficultyAttributes) SetDatabaseAttributes(values map[int]float64) {
	a.CommonAttributes.setDatabaseAttributes(values)
	a.GreatHitWindow = values[AttribGreatHitWindow]
}
