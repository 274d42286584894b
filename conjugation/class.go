// Package conjugation holds the conjugation class table (活用表): one
// immutable paradigm per inflection class, each mapping grammatical roles to
// the suffix appended to a stem.
//
// Classes are package-level singletons compared by identity. They are never
// mutated after package initialization, so they may be shared freely across
// goroutines.
package conjugation

// Role is a grammatical role (活用形) a stem can be rendered in.
type Role int

const (
	// Irrealis is the 未然形 used before ない, れる, せる.
	Irrealis Role = iota + 1
	// Volitional is the second 未然形, used before う/よう.
	Volitional
	// Continuative is the 連用形.
	Continuative
	// Terminal is the 終止形, the dictionary form.
	Terminal
	// Attributive is the 連体形, used before nouns and particles.
	Attributive
	// Hypothetical is the 仮定形 used before ば.
	Hypothetical
	// Imperative is the 命令形.
	Imperative
	// IrrealisPassive is the irrealis a light verb takes before a passive
	// auxiliary (さ in される, ぜ in 生ぜられる).
	IrrealisPassive
	// IrrealisCausative is the irrealis a light verb takes before a causative
	// auxiliary (さ in させる, じ in 生じさせる).
	IrrealisCausative
	// ContinuativeNegation is the adjectival-noun form used before ない (では).
	ContinuativeNegation
)

var roleNames = map[Role]string{
	Irrealis:             "irrealis",
	Volitional:           "volitional",
	Continuative:         "continuative",
	Terminal:             "terminal",
	Attributive:          "attributive",
	Hypothetical:         "hypothetical",
	Imperative:           "imperative",
	IrrealisPassive:      "irrealis-passive",
	IrrealisCausative:    "irrealis-causative",
	ContinuativeNegation: "continuative-negation",
}

func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return "unknown"
}

// ParseRole resolves a role by its String name.
func ParseRole(name string) (Role, bool) {
	for role, n := range roleNames {
		if n == name {
			return role, true
		}
	}
	return 0, false
}

// fallbacks lists the role a class is rendered in when it does not define a
// specialised role itself.
var fallbacks = map[Role]Role{
	IrrealisPassive:      Irrealis,
	IrrealisCausative:    Irrealis,
	ContinuativeNegation: Continuative,
}

// Kind is the part of speech a class inflects.
type Kind int

const (
	KindVerb Kind = iota + 1
	KindAdjective
	KindAdjectivalNoun
	KindAuxiliary
)

func (k Kind) String() string {
	switch k {
	case KindVerb:
		return "verb"
	case KindAdjective:
		return "adjective"
	case KindAdjectivalNoun:
		return "adjectival-noun"
	case KindAuxiliary:
		return "auxiliary"
	default:
		return "unknown"
	}
}

// Class is one inflection paradigm.
type Class struct {
	name      string
	label     string
	kind      Kind
	lightVerb bool
	forms     map[Role]string
}

// Name is the stable identifier of the class, e.g. "godan-ka".
func (c *Class) Name() string { return c.name }

// Label is the traditional Japanese grammar name, e.g. "五段活用・カ行".
func (c *Class) Label() string { return c.label }

// Kind returns the part of speech of the class.
func (c *Class) Kind() Kind { return c.kind }

// IsVerb reports whether the class is verb-like. Light verbs are verbs too.
func (c *Class) IsVerb() bool { return c.kind == KindVerb }

// IsAdjective reports whether the class is the い-adjective paradigm.
func (c *Class) IsAdjective() bool { return c.kind == KindAdjective }

// IsAdjectivalNoun reports whether the class is the な-adjective paradigm.
func (c *Class) IsAdjectivalNoun() bool { return c.kind == KindAdjectivalNoun }

// LightVerb reports whether the class is one of the irregular sa-row light
// verbs (する, ずる), which carry the extra passive/causative irrealis roles.
func (c *Class) LightVerb() bool { return c.lightVerb }

// Has reports whether the class defines role itself, without fallback.
func (c *Class) Has(role Role) bool {
	_, ok := c.forms[role]
	return ok
}

// Form returns the suffix for role. Specialised roles fall back to their
// general counterpart; a role the class has no form for yields "".
func (c *Class) Form(role Role) string {
	if c == nil {
		return ""
	}
	if s, ok := c.forms[role]; ok {
		return s
	}
	if fb, ok := fallbacks[role]; ok {
		return c.forms[fb]
	}
	return ""
}

func (c *Class) Irrealis() string     { return c.Form(Irrealis) }
func (c *Class) Continuative() string { return c.Form(Continuative) }
func (c *Class) Terminal() string     { return c.Form(Terminal) }
func (c *Class) Attributive() string  { return c.Form(Attributive) }

func (c *Class) String() string { return c.name }
