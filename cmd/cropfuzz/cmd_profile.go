package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mrhapile/fuzzy-crop-advisor/pkg/profile"
)

// profileCmd groups profile inspection commands
var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "List, show and validate inference profiles",
}

var profileListCmd = &cobra.Command{
	Use:   "list",
	Short: "List built-in profiles",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, name := range profile.BuiltinNames() {
			p, err := profile.Builtin(name)
			if err != nil {
				return err
			}
			marker := " "
			if name == cfg.Profile {
				marker = "*"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %-22s %s\n", marker, name, p.Description)
		}
		return nil
	},
}

var profileShowCmd = &cobra.Command{
	Use:   "show [name-or-path]",
	Short: "Print a profile as YAML (default: the active profile)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ref := cfg.Profile
		if len(args) == 1 {
			ref = args[0]
		}
		p, err := profile.Resolve(ref)
		if err != nil {
			return err
		}
		if cfg.Output.Format == "json" {
			return writeJSON(cmd.OutOrStdout(), p)
		}
		payload, err := p.Marshal()
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(payload)
		return err
	},
}

var profileValidateCmd = &cobra.Command{
	Use:   "validate <name-or-path>...",
	Short: "Check that profiles build without errors",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var failed int
		for _, ref := range args {
			p, err := profile.Resolve(ref)
			if err != nil {
				failed++
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s: %v\n", styleError.Render("FAIL"), ref, err)
				continue
			}
			r, err := p.Build()
			if err != nil {
				failed++
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s: %v\n", styleError.Render("FAIL"), ref, err)
				continue
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s (inputs %s; %d rules; labels %s)\n",
				styleOK.Render("ok"), ref,
				strings.Join(p.InputNames(), ", "), len(p.Rules), strings.Join(r.Labels(), ", "))
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d profiles invalid", failed, len(args))
		}
		return nil
	},
}

func init() {
	profileCmd.AddCommand(profileListCmd)
	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileValidateCmd)
}
