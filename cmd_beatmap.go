package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"ppcalc/dotosu"
	"ppcalc/legacy"
)

type beatmapResult struct {
	BeatmapID    int        `json:"beatmap_id" yaml:"beatmap_id"`
	BeatmapSetID int        `json:"beatmapset_id" yaml:"beatmapset_id"`
	Artist       string     `json:"artist" yaml:"artist"`
	Title        string     `json:"title" yaml:"title"`
	Version      string     `json:"version" yaml:"version"`
	Creator      string     `json:"creator" yaml:"creator"`
	Mode         int        `json:"mode" yaml:"mode"`
	Objects      int        `json:"objects" yaml:"objects"`
	Mods         modsResult `json:"mods" yaml:"mods"`
}

func (a *app) beatmapCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "beatmap <file.osu> [acronym...]",
		Short: "Resolve the ruleset of a beatmap file and normalize mods for it",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			beatmap, err := dotosu.DecodeFile(args[0])
			if err != nil {
				return fmt.Errorf("decode %s: %w", args[0], err)
			}
			ruleset, err := legacy.RulesetFromID(beatmap.General.Mode)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}
			mods, err := ruleset.ParseMods(args[1:])
			if err != nil {
				return err
			}
			return a.write(cmd.OutOrStdout(), beatmapResult{
				BeatmapID:    beatmap.Metadata.BeatmapID,
				BeatmapSetID: beatmap.Metadata.BeatmapSetID,
				Artist:       beatmap.Metadata.Artist,
				Title:        beatmap.Metadata.Title,
				Version:      beatmap.Metadata.Version,
				Creator:      beatmap.Metadata.Creator,
				Mode:         beatmap.General.Mode,
				Objects:      beatmap.Objects.Total(),
				Mods:         newModsResult(ruleset, mods),
			})
		},
	}
}
