package commands

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"japanesereflect/builder"
	"japanesereflect/conjugation"
	"japanesereflect/errors"
	"japanesereflect/feature"
	"japanesereflect/fragment"
)

// inertClass names a non-inflecting fragment on the command line.
const inertClass = "inert"

var (
	conjugateRole  string
	conjugateSteps bool
)

// ConjugateCmd composes features onto a stem directly, without parsing.
var ConjugateCmd = &cobra.Command{
	Use:   "conjugate <stem> <class> [feature...]",
	Short: "Compose features onto a stem",
	Long: `Build a fragment from a stem and a conjugation class, apply the named
features in order and print the result. Use "-" for an empty stem and the
class "inert" for text that does not inflect.

Classes:  ` + classNames() + `
Features: ` + kindNames() + `

Examples:
  jareflect conjugate 読 godan-ma passive past     # 読まれた
  jareflect conjugate 食べ shimo-ichidan causative passive
  jareflect conjugate 静か keiyoudoushi negation past
  jareflect conjugate それ inert passive           # それになられる`,
	Args: cobra.MinimumNArgs(2),
	RunE: runConjugate,
}

func init() {
	ConjugateCmd.Flags().StringVar(&conjugateRole, "role", conjugation.Terminal.String(), "Role to render the result in")
	ConjugateCmd.Flags().BoolVar(&conjugateSteps, "steps", false, "Print every intermediate form")
}

func classNames() string {
	names := []string{inertClass}
	for _, c := range conjugation.All() {
		names = append(names, c.Name())
	}
	return strings.Join(names, ", ")
}

func kindNames() string {
	var names []string
	for _, k := range feature.Kinds() {
		names = append(names, k.String())
	}
	return strings.Join(names, ", ")
}

func parseFragment(stem, class string) (fragment.Fragment, error) {
	if stem == "-" {
		stem = ""
	}
	if class == inertClass {
		return fragment.NewInert(stem), nil
	}
	c, ok := conjugation.ByName(class)
	if !ok {
		return nil, errors.WithHint(
			errors.Newf("unknown conjugation class %q", class),
			"one of: "+classNames(),
		)
	}
	return fragment.NewInflectable(stem, c), nil
}

func parseHelpers(names []string) ([]*feature.Helper, error) {
	helpers := make([]*feature.Helper, 0, len(names))
	for _, name := range names {
		k, ok := feature.ParseKind(name)
		if !ok {
			return nil, errors.WithHint(
				errors.Newf("unknown feature %q", name),
				"one of: "+kindNames(),
			)
		}
		helpers = append(helpers, feature.Default(k))
	}
	return helpers, nil
}

func runConjugate(cmd *cobra.Command, args []string) error {
	f, err := parseFragment(args[0], args[1])
	if err != nil {
		return err
	}
	helpers, err := parseHelpers(args[2:])
	if err != nil {
		return err
	}
	role, ok := conjugation.ParseRole(conjugateRole)
	if !ok {
		return errors.Newf("unknown role %q", conjugateRole)
	}

	out := cmd.OutOrStdout()
	if conjugateSteps {
		fmt.Fprintf(out, "%-14s %s\n", "root", fragment.Render(f))
		for _, h := range helpers {
			next, err := fragment.Combine(f, h)
			if err != nil {
				return err
			}
			f = next
			fmt.Fprintf(out, "%-14s %s\n", h.Kind.String(), fragment.Render(f))
		}
		fmt.Fprintln(out, fragment.Render(f, role))
		return nil
	}

	f, hadError := builder.Fold(f, helpers)
	fmt.Fprintln(out, fragment.Render(f, role))
	if hadError {
		pterm.Warning.WithWriter(cmd.ErrOrStderr()).Println("some features did not apply; see the log for details")
	}
	return nil
}
