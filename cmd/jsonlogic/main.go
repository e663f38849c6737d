// Package main provides the jsonlogic CLI: a thin front end over the
// library's apply/parse/stringify operations. No rule-language semantics
// live here.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/mcvoid/jsonlogic"
)

// dialectConfig is the optional YAML document driving --config: which
// dialect to evaluate under and which extra operations to extend the
// default registry with. This is sugar around operations_extend, never
// required for library use.
type dialectConfig struct {
	Dialect string   `yaml:"dialect"`
	Extras  []string `yaml:"extras"`
}

func main() {
	rootCmd := &cobra.Command{
		Use:           "jsonlogic",
		Short:         "Evaluate and inspect JsonLogic / CertLogic rules",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	rootCmd.AddCommand(newApplyCmd(), newParseCmd(), newStringifyCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func newApplyCmd() *cobra.Command {
	var dialect string
	var configPath string

	cmd := &cobra.Command{
		Use:   "apply <rule.json> <data.json>",
		Short: "Evaluate a rule against data and print the result",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			reg, err := resolveRegistry(dialect, configPath)
			if err != nil {
				return err
			}
			rule, err := parseFile(args[0])
			if err != nil {
				return err
			}
			data, err := parseFile(args[1])
			if err != nil {
				return err
			}
			result := jsonlogic.ApplyCustom(rule, data, reg)
			return printValue(result)
		},
	}
	cmd.Flags().StringVar(&dialect, "dialect", "jsonlogic", `evaluation dialect: "jsonlogic" or "certlogic"`)
	cmd.Flags().StringVar(&configPath, "config", "", "optional YAML file selecting dialect and extra operations")
	return cmd
}

func newParseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse <file.json>",
		Short: "Parse a JSON document and report success or a line/column error",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			raw, err := readInput(args[0])
			if err != nil {
				return err
			}
			v, info, err := jsonlogic.Parse(raw)
			if err != nil {
				fmt.Fprintln(os.Stderr, jsonlogic.FormatSyntaxError(string(raw), info, err.Error()))
				return fmt.Errorf("parse failed: %s (%s)", v.ErrorKind(), err.Error())
			}
			return printValue(v)
		},
	}
	return cmd
}

func newStringifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stringify <file.json>",
		Short: "Parse then re-serialize a JSON document",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			v, err := parseFile(args[0])
			if err != nil {
				return err
			}
			return printValue(v)
		},
	}
	return cmd
}

func resolveRegistry(dialect, configPath string) (*jsonlogic.Registry, error) {
	cfg := dialectConfig{Dialect: dialect}
	if configPath != "" {
		raw, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	var builtins, extras *jsonlogic.Registry
	switch cfg.Dialect {
	case "", "jsonlogic":
		builtins, extras = jsonlogic.JsonLogicBuiltins, jsonlogic.JsonLogicExtras
	case "certlogic":
		builtins, extras = jsonlogic.CertLogicBuiltins, jsonlogic.CertLogicExtras
	default:
		return nil, fmt.Errorf("unknown dialect %q", cfg.Dialect)
	}

	reg := jsonlogic.NewRegistry()
	reg.Extend(builtins)
	for _, name := range cfg.Extras {
		if fn, ctx, ok := extras.Get(name); ok {
			reg.Set(name, ctx, fn)
		}
	}
	return reg, nil
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func parseFile(path string) (jsonlogic.Value, error) {
	raw, err := readInput(path)
	if err != nil {
		return jsonlogic.Null, err
	}
	v, info, err := jsonlogic.Parse(raw)
	if err != nil {
		fmt.Fprintln(os.Stderr, jsonlogic.FormatSyntaxError(string(raw), info, err.Error()))
		return jsonlogic.Null, fmt.Errorf("parse %s: %w", path, err)
	}
	return v, nil
}

func printValue(v jsonlogic.Value) error {
	out, kind := jsonlogic.StringifyUTF8(v)
	if kind != jsonlogic.ErrSuccess {
		return fmt.Errorf("stringify failed: %s", kind)
	}
	fmt.Println(string(out))
	return nil
}
