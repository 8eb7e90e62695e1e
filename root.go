package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

type app struct {
	cfg    *Config
	logger *zap.Logger
	output string
}

func NewRootCommand(cfg *Config, logger *zap.Logger) *cobra.Command {
	a := &app{cfg: cfg, logger: logger}

	root := &cobra.Command{
		Use:           "ppcalc",
		Short:         "Legacy ruleset and mod compatibility tools for osu! performance calculation",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			switch a.output {
			case "json", "yaml":
				return nil
			default:
				return fmt.Errorf("unsupported output format %q (want json or yaml)", a.output)
			}
		},
	}
	root.PersistentFlags().StringVarP(&a.output, "output", "o", "json", "output format: json or yaml")

	root.AddCommand(
		a.rulesetCommand(),
		a.attributesCommand(),
		a.modsCommand(),
		a.beatmapCommand(),
		a.legacyScoreCommand(),
	)
	return root
}

func (a *app) write(w io.Writer, v any) error {
	switch a.output {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	default:
		data, err := json.MarshalIndent(v, "", "\t")
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}
}

func parseRulesetArg(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("ruleset id %q is not an integer", arg)
	}
	return id, nil
}
