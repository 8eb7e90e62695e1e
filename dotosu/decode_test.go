package dotosu

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const maniaMap = "\ufeffosu file format v14\n" + `
[General]
AudioFilename: audio.mp3
Mode: 3

[Metadata]
Title:Kyouki Ranbu
Artist:Hige Driver
Creator:Mapper
Version:7K Insane
BeatmapID:1234
BeatmapSetID:567

[Difficulty]
HPDrainRate:8
CircleSize:7
OverallDifficulty:8.5
SliderMultiplier:1.4
SliderTickRate:1

[TimingPoints]
0,300,4,2,0,60,1,0

[HitObjects]
36,192,1000,1,0,0:0:0:0:
109,192,1200,128,0,1500:0:0:0:0:
182,192,1400,1,0,0:0:0:0:
`

func TestDecodeMania(t *testing.T) {
	b, err := Decode(strings.NewReader(maniaMap))
	require.NoError(t, err)

	assert.Equal(t, 14, b.FormatVersion)
	assert.Equal(t, 3, b.General.Mode)
	assert.Equal(t, "Kyouki Ranbu", b.Metadata.Title)
	assert.Equal(t, "7K Insane", b.Metadata.Version)
	assert.Equal(t, 1234, b.Metadata.BeatmapID)
	assert.Equal(t, 567, b.Metadata.BeatmapSetID)
	assert.Equal(t, 7, b.ManiaKeyCount())
	// no ApproachRate key, OD is reused
	assert.Equal(t, 8.5, b.Difficulty.ApproachRate)
	assert.Equal(t, ObjectCounts{Circles: 2, Holds: 1}, b.Objects)
	assert.Equal(t, 3, b.Objects.Total())
}

func TestDecodeDefaultsToStandard(t *testing.T) {
	src := `osu file format v3

[Difficulty]
ApproachRate:12
OverallDifficulty:4

[HitObjects]
256,192,500,5,0
256,192,900,2,0,B|300:200,1,100
256,192,2000,12,0,3000
`
	b, err := Decode(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, 0, b.General.Mode)
	assert.Equal(t, 10.0, b.Difficulty.ApproachRate)
	assert.Equal(t, 4.0, b.Difficulty.OverallDifficulty)
	assert.Equal(t, ObjectCounts{Circles: 1, Sliders: 1, Spinners: 1}, b.Objects)
}

func TestDecodeInvalidHeader(t *testing.T) {
	_, err := Decode(strings.NewReader("not a beatmap\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid .osu header")

	_, err = Decode(strings.NewReader("osu file format vX\n"))
	require.Error(t, err)
}
