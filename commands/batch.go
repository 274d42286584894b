package commands

import (
	"bufio"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"japanesereflect/errors"
)

var (
	batchDump   string
	batchFormat string
	batchQuiet  bool
)

// BatchCmd reflects every line of standard input.
var BatchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Reflect each line of standard input",
	Long: `Read utterances from standard input, one per line, and reflect them
concurrently (pipeline.workers). Replies are printed in input order. Blank
lines are skipped.

Examples:
  jareflect batch < utterances.txt
  jareflect batch --format jsonl --dump traces/ < utterances.txt`,
	Args: cobra.NoArgs,
	RunE: runBatch,
}

func init() {
	BatchCmd.Flags().StringVar(&batchDump, "dump", "", "Write a JSON trace per input to this directory")
	BatchCmd.Flags().StringVar(&batchFormat, "format", "text", "Output format: text, jsonl")
	BatchCmd.Flags().BoolVarP(&batchQuiet, "quiet", "q", false, "Do not print the summary")
}

type batchLine struct {
	ID         string `json:"id"`
	Text       string `json:"text"`
	Reflection string `json:"reflection"`
	Error      string `json:"error,omitempty"`
}

func runBatch(cmd *cobra.Command, args []string) error {
	if batchFormat != "text" && batchFormat != "jsonl" {
		return errors.Newf("unsupported format: %s (supported: text, jsonl)", batchFormat)
	}

	var texts []string
	sc := bufio.NewScanner(cmd.InOrStdin())
	for sc.Scan() {
		if line := sc.Text(); strings.TrimSpace(line) != "" {
			texts = append(texts, line)
		}
	}
	if err := sc.Err(); err != nil {
		return errors.Wrap(err, "failed to read input")
	}

	p, err := newPipeline(cfg, batchDump)
	if err != nil {
		return err
	}
	results, err := p.Run(cmd.Context(), texts)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	enc := json.NewEncoder(out)
	enc.SetEscapeHTML(false)
	fallbacks := 0
	for _, res := range results {
		line := batchLine{ID: res.Input.ID, Text: res.Input.Text, Reflection: res.Reflection}
		if res.Err != nil {
			fallbacks++
			line.Error = res.Err.Error()
		}
		if batchFormat == "jsonl" {
			if err := enc.Encode(line); err != nil {
				return errors.Wrap(err, "failed to encode result")
			}
			continue
		}
		fmt.Fprintln(out, res.Reflection)
	}

	if !batchQuiet {
		pterm.Info.WithWriter(cmd.ErrOrStderr()).Printfln("reflected %d inputs, %d fell back", len(results), fallbacks)
	}
	return nil
}
