package commands

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	reflectDump    string
	reflectExplain bool
)

// ReflectCmd reflects one utterance.
var ReflectCmd = &cobra.Command{
	Use:   "reflect <text>",
	Short: "Reflect one utterance back",
	Long: `Parse the text, find its core predicate and print the reflective reply.

Arguments are joined with a space. When the predicate cannot be rebuilt the
reply falls back to the root word plus the unparsed ending, and when no
sentence qualifies it is the invalid-input message.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runReflect,
}

func init() {
	ReflectCmd.Flags().StringVar(&reflectDump, "dump", "", "Write a JSON trace of the run to this directory")
	ReflectCmd.Flags().BoolVar(&reflectExplain, "explain", false, "Print why the reply fell back, if it did")
}

func runReflect(cmd *cobra.Command, args []string) error {
	p, err := newPipeline(cfg, reflectDump)
	if err != nil {
		return err
	}

	res, err := p.Reflect(cmd.Context(), strings.Join(args, " "))
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), res.Reflection)

	if reflectExplain && res.Err != nil {
		pterm.Warning.WithWriter(cmd.ErrOrStderr()).Printfln("fell back: %v", res.Err)
	}
	return nil
}
