// Package dotosu reads the header sections of .osu beatmap files: format
// version, [General], [Metadata], [Difficulty] and a tally of hit objects.
// Curves, timing and storyboard data are skipped.
package dotosu

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

const maxManiaKeyCount = 18

type section int

const (
	secNone section = iota
	secGeneral
	secMetadata
	secDifficulty
	secHitObjects
)

type Beatmap struct {
	FormatVersion int
	General       General
	Metadata      Metadata
	Difficulty    Difficulty
	Objects       ObjectCounts
}

type General struct {
	AudioFilename string
	// Mode is the legacy ruleset id, 0 when the key is absent.
	Mode          int
	StackLeniency float64
}

type Metadata struct {
	Title, TitleUnicode            string
	Artist, ArtistUnicode          string
	Creator, Version, Source, Tags string
	BeatmapID, BeatmapSetID        int
}

type Difficulty struct {
	HPDrainRate, CircleSize, OverallDifficulty, ApproachRate float64
	SliderMultiplier, SliderTickRate                         float64
}

type ObjectCounts struct {
	Circles, Sliders, Spinners, Holds int
}

func (c ObjectCounts) Total() int {
	return c.Circles + c.Sliders + c.Spinners + c.Holds
}

// Hit object type bits from the fourth column of [HitObjects].
const (
	typeCircle  = 1
	typeSlider  = 1 << 1
	typeSpinner = 1 << 3
	typeHold    = 1 << 7
)

func DecodeFile(path string) (*Beatmap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f)
}

func Decode(r io.Reader) (*Beatmap, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)

	var header string
	for sc.Scan() {
		// some editors write a UTF-8 BOM before the header
		line := strings.TrimSpace(strings.TrimPrefix(sc.Text(), "\ufeff"))
		if line != "" {
			header = line
			break
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	const prefix = "osu file format v"
	if !strings.HasPrefix(strings.ToLower(header), prefix) {
		return nil, fmt.Errorf("invalid .osu header: %q", header)
	}
	formatVersion, err := strconv.Atoi(strings.TrimSpace(header[len(prefix):]))
	if err != nil {
		return nil, fmt.Errorf("invalid .osu version in header: %q: %w", header, err)
	}

	b := &Beatmap{
		FormatVersion: formatVersion,
		General:       General{StackLeniency: 0.7},
		Difficulty: Difficulty{
			HPDrainRate:       5,
			CircleSize:        5,
			OverallDifficulty: 5,
			ApproachRate:      5,
			SliderMultiplier:  1.4,
			SliderTickRate:    1,
		},
	}

	sec := secNone
	seenAR := false
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			switch strings.ToLower(line) {
			case "[general]":
				sec = secGeneral
			case "[metadata]":
				sec = secMetadata
			case "[difficulty]":
				sec = secDifficulty
			case "[hitobjects]":
				sec = secHitObjects
			default:
				sec = secNone
			}
			continue
		}

		switch sec {
		case secGeneral:
			k, v := splitKeyVal(line)
			switch strings.ToLower(k) {
			case "audiofilename":
				b.General.AudioFilename = v
			case "mode":
				b.General.Mode = parseInt(v, 0)
			case "stackleniency":
				b.General.StackLeniency = parseFloat(v, 0.7)
			}

		case secMetadata:
			k, v := splitKeyVal(line)
			switch strings.ToLower(k) {
			case "title":
				b.Metadata.Title = v
			case "titleunicode":
				b.Metadata.TitleUnicode = v
			case "artist":
				b.Metadata.Artist = v
			case "artistunicode":
				b.Metadata.ArtistUnicode = v
			case "creator":
				b.Metadata.Creator = v
			case "version":
				b.Metadata.Version = v
			case "source":
				b.Metadata.Source = v
			case "tags":
				b.Metadata.Tags = v
			case "beatmapid":
				b.Metadata.BeatmapID = parseInt(v, 0)
			case "beatmapsetid":
				b.Metadata.BeatmapSetID = parseInt(v, 0)
			}

		case secDifficulty:
			k, v := splitKeyVal(line)
			switch strings.ToLower(k) {
			case "hpdrainrate":
				b.Difficulty.HPDrainRate = parseFloat(v, 5)
			case "circlesize":
				b.Difficulty.CircleSize = parseFloat(v, 5)
			case "overalldifficulty":
				b.Difficulty.OverallDifficulty = parseFloat(v, 5)
				// old formats have no ApproachRate and reuse OD
				if !seenAR {
					b.Difficulty.ApproachRate = b.Difficulty.OverallDifficulty
				}
			case "approachrate":
				b.Difficulty.ApproachRate = parseFloat(v, 5)
				seenAR = true
			case "slidermultiplier":
				b.Difficulty.SliderMultiplier = parseFloat(v, 1.4)
			case "slidertickrate":
				b.Difficulty.SliderTickRate = parseFloat(v, 1)
			}

		case secHitObjects:
			parts := strings.SplitN(line, ",", 5)
			if len(parts) < 4 {
				continue
			}
			flags := parseInt(parts[3], 0)
			switch {
			case flags&typeHold != 0:
				b.Objects.Holds++
			case flags&typeSpinner != 0:
				b.Objects.Spinners++
			case flags&typeSlider != 0:
				b.Objects.Sliders++
			case flags&typeCircle != 0:
				b.Objects.Circles++
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	applyDifficultyRestrictions(&b.Difficulty, b.General.Mode)
	return b, nil
}

// ManiaKeyCount is the column count of a mania beatmap, stored in CircleSize.
func (b *Beatmap) ManiaKeyCount() int {
	return int(b.Difficulty.CircleSize + 0.5)
}

func splitKeyVal(line string) (key, val string) {
	i := strings.Index(line, ":")
	if i < 0 {
		return strings.TrimSpace(line), ""
	}
	return strings.TrimSpace(line[:i]), strings.TrimSpace(line[i+1:])
}

func parseInt(s string, def int) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return def
	}
	return v
}

func parseFloat(s string, def float64) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return def
	}
	return v
}

func applyDifficultyRestrictions(d *Difficulty, mode int) {
	d.HPDrainRate = min(max(d.HPDrainRate, 0), 10)
	d.OverallDifficulty = min(max(d.OverallDifficulty, 0), 10)
	d.ApproachRate = min(max(d.ApproachRate, 0), 10)
	if mode == 3 {
		d.CircleSize = min(max(d.CircleSize, 1), maxManiaKeyCount)
	} else {
		d.CircleSize = min(max(d.CircleSize, 0), 10)
	}
	d.SliderMultiplier = min(max(d.SliderMultiplier, 0.4), 3.6)
	d.SliderTickRate = min(max(d.SliderTickRate, 0.5), 8)
}
