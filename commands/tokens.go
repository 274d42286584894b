package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"japanesereflect/analyze"
	"japanesereflect/kanji"
	"japanesereflect/model"
)

var tokensKanjidic string

// TokensCmd shows how the analyzer sees a text.
var TokensCmd = &cobra.Command{
	Use:   "tokens <text>",
	Short: "Show tokens, dependency heads and phrases",
	Long: `Tokenize and parse the text, then print one table per sentence with
part of speech, fine tag, lemma, head and furigana, followed by its phrases.
The root token is marked with *.

With --kanjidic, compound kanji get one reading per character.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runTokens,
}

func init() {
	TokensCmd.Flags().StringVar(&tokensKanjidic, "kanjidic", "", "Path to kanjidic2.xml for per-kanji furigana")
}

func runTokens(cmd *cobra.Command, args []string) error {
	var dict *kanji.Dictionary
	if tokensKanjidic != "" {
		d, err := kanji.LoadKanjidicFile(tokensKanjidic)
		if err != nil {
			return err
		}
		dict = d
	}

	an, err := newAnalyzer(cfg)
	if err != nil {
		return err
	}
	doc, err := an.Parse(cmd.Context(), strings.Join(args, " "))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, s := range doc.Sentences {
		table, err := pterm.DefaultTable.WithHasHeader().WithData(tokenRows(s, dict)).Srender()
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "# %d %s\n%s\n", s.ID, s.Text, table)
		fmt.Fprintln(out, phrases(s))
	}
	return nil
}

func tokenRows(s model.Sentence, dict *kanji.Dictionary) [][]string {
	rows := [][]string{{"#", "Text", "POS", "Tag", "Lemma", "Head", "Furigana"}}
	for _, tk := range s.Tokens {
		idx := strconv.Itoa(tk.Index)
		if tk.IsRoot() {
			idx += "*"
		}
		rows = append(rows, []string{
			idx, tk.Text, tk.POS, tk.Tag, tk.Lemma, strconv.Itoa(tk.Head),
			kanji.Bracket(kanji.Align(tk.Text, tk.Reading, dict)),
		})
	}
	return rows
}

// phrases renders the bunsetsu of s separated by |.
func phrases(s model.Sentence) string {
	var parts []string
	for _, b := range analyze.Chunk(s.Tokens) {
		var text strings.Builder
		for _, tk := range s.Span(b.Start, b.End) {
			text.WriteString(tk.Text)
		}
		parts = append(parts, text.String())
	}
	return strings.Join(parts, " | ")
}
