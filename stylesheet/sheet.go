package stylesheet

import (
	"fmt"
	"os"
	"regexp"

	"github.com/kungfusheep/tui"
	"github.com/kungfusheep/tui/pipe"
	"gopkg.in/yaml.v3"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Sheet is a compiled style sheet. It is immutable and may be applied to
// any number of trees.
type Sheet struct {
	rules []compiled
}

type compiled struct {
	index  int
	rule   Rule
	target func(root *tui.Widget) pipe.Target
	ops    []pipe.Op
}

// Load reads and compiles the style sheet at path.
func Load(path string) (*Sheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	s, err := parse(path, data)
	if err != nil {
		return nil, err
	}
	tui.Logger().Debug().Str("path", path).Int("rules", s.Len()).Msg("stylesheet loaded")
	return s, nil
}

// Parse compiles a style sheet from YAML.
func Parse(data []byte) (*Sheet, error) {
	return parse("<inline>", data)
}

func parse(path string, data []byte) (*Sheet, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &ParseError{Path: path, Line: extractLine(err), Err: err}
	}
	return Compile(doc)
}

// Compile validates every rule of doc and builds its ops.
func Compile(doc Document) (*Sheet, error) {
	s := &Sheet{rules: make([]compiled, 0, len(doc.Rules))}
	for i := range doc.Rules {
		r := doc.Rules[i]
		if err := validateRule(i, &r); err != nil {
			return nil, err
		}
		ops := compile(&r)
		if r.Name != "" {
			ops = []pipe.Op{pipe.Where(pipe.Named(r.Name), ops...)}
		}
		s.rules = append(s.rules, compiled{index: i, rule: r, target: selector(r.Select), ops: ops})
	}
	return s, nil
}

func selector(sel string) func(*tui.Widget) pipe.Target {
	switch sel {
	case "children":
		return func(root *tui.Widget) pipe.Target { return root.Children() }
	case "descendants":
		return func(root *tui.Widget) pipe.Target { return root.Descendants() }
	}
	return func(root *tui.Widget) pipe.Target { return root }
}

// Len returns the number of rules.
func (s *Sheet) Len() int { return len(s.rules) }

// Rules returns a copy of the rules the sheet was compiled from.
func (s *Sheet) Rules() []Rule {
	out := make([]Rule, len(s.rules))
	for i, c := range s.rules {
		out[i] = c.rule
	}
	return out
}

// Apply runs every rule against root in order. It stops at the first rule
// that fails; earlier rules stay applied.
func (s *Sheet) Apply(root *tui.Widget) error {
	for _, c := range s.rules {
		if _, err := pipe.Pipe(c.target(root), c.ops...); err != nil {
			return &RuleError{Rule: c.index, Err: err}
		}
	}
	return nil
}

// Op wraps the sheet as an op so it can be piped like any other.
func (s *Sheet) Op() pipe.Op {
	return func(w *tui.Widget) error {
		if err := s.Apply(w); err != nil {
			return fmt.Errorf("apply stylesheet to %s: %w", w.Name(), err)
		}
		return nil
	}
}

func extractLine(err error) int {
	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}
	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}
	return line
}
