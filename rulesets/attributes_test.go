package rulesets

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOsuDatabaseAttributes(t *testing.T) {
	attrs := &OsuDifficultyAttributes{
		CommonAttributes: CommonAttributes{StarRating: 6.12, MaxCombo: 1420},
		AimDifficulty:    3.1,
		SpeedDifficulty:  2.7,
		SliderFactor:     0.98,
		ApproachRate:     9.3,
	}
	values := attrs.DatabaseAttributes()
	assert.Equal(t, 1420.0, values[AttribMaxCombo])
	assert.Equal(t, 6.12, values[AttribStarRating])
	assert.NotContains(t, values, AttribFlashlight)

	var restored OsuDifficultyAttributes
	restored.SetDatabaseAttributes(values)
	assert.Equal(t, *attrs, restored)
}

func TestDatabaseAttributesPerRuleset(t *testing.T) {
	tests := []struct {
		attrs DifficultyAttributes
		ids   []int
	}{
		{&TaikoDifficultyAttributes{}, []int{AttribMaxCombo, AttribStarRating, AttribGreatHitWindow, AttribMonoStaminaFactor}},
		{&CatchDifficultyAttributes{}, []int{AttribMaxCombo, AttribStarRating, AttribApproachRate}},
		{&ManiaDifficultyAttributes{}, []int{AttribMaxCombo, AttribStarRating, AttribGreatHitWindow}},
	}
	for _, tt := range tests {
		values := tt.attrs.DatabaseAttributes()
		assert.Len(t, values, len(tt.ids), tt.attrs.RulesetID().String())
		for _, id := range tt.ids {
			assert.Contains(t, values, id)
		}
	}
}

func TestAttributesJSON(t *testing.T) {
	body := `{"star_rating":4.5,"max_combo":812,"approach_rate":8.7}`
	var attrs CatchDifficultyAttributes
	require.NoError(t, json.Unmarshal([]byte(body), &attrs))
	assert.Equal(t, 4.5, attrs.StarRating)
	assert.Equal(t, 812, attrs.Common().MaxCombo)
	assert.Equal(t, 8.7, attrs.ApproachRate)
}
