package main

import (
	"github.com/spf13/cobra"

	"ppcalc/legacy"
	"ppcalc/rulesets"
)

type modInfo struct {
	Acronym string `json:"acronym" yaml:"acronym"`
	Name    string `json:"name" yaml:"name"`
	Type    string `json:"type" yaml:"type"`
	Legacy  string `json:"legacy,omitempty" yaml:"legacy,omitempty"`
}

func newModInfos(mods []rulesets.Mod) []modInfo {
	ret := make([]modInfo, 0, len(mods))
	for _, mod := range mods {
		info := modInfo{
			Acronym: mod.Acronym,
			Name:    mod.Name,
			Type:    mod.Type.String(),
		}
		if mod.LegacyRepresentable() {
			info.Legacy = mod.Legacy.String()
		}
		ret = append(ret, info)
	}
	return ret
}

type rulesetInfo struct {
	ID          int       `json:"id" yaml:"id"`
	ShortName   string    `json:"short_name" yaml:"short_name"`
	Description string    `json:"description" yaml:"description"`
	Mods        []modInfo `json:"mods" yaml:"mods"`
}

func (a *app) rulesetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "ruleset <id>",
		Short: "Resolve a legacy ruleset id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseRulesetArg(args[0])
			if err != nil {
				return err
			}
			ruleset, err := legacy.RulesetFromID(id)
			if err != nil {
				return err
			}
			shortName, err := legacy.ShortNameFromID(id)
			if err != nil {
				return err
			}
			return a.write(cmd.OutOrStdout(), rulesetInfo{
				ID:          id,
				ShortName:   shortName,
				Description: ruleset.Description(),
				Mods:        newModInfos(ruleset.AllMods()),
			})
		},
	}
}

type attributesInfo struct {
	Ruleset    string                        `json:"ruleset" yaml:"ruleset"`
	Attributes rulesets.DifficultyAttributes `json:"attributes" yaml:"attributes"`
}

func (a *app) attributesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "attributes <id>",
		Short: "Print the empty difficulty attributes for a legacy ruleset id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseRulesetArg(args[0])
			if err != nil {
				return err
			}
			attrs, err := legacy.CreateDifficultyAttributes(id)
			if err != nil {
				return err
			}
			shortName, err := legacy.ShortNameFromID(id)
			if err != nil {
				return err
			}
			return a.write(cmd.OutOrStdout(), attributesInfo{Ruleset: shortName, Attributes: attrs})
		},
	}
}
