package tablespec

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/fsmkit/pkg/fsm"
)

// Rule is one declarative transition. An empty or "*" source makes the rule
// global; an empty When makes it unconditional.
type Rule struct {
	From string `yaml:"from,omitempty"`
	To   string `yaml:"to"`
	When string `yaml:"when,omitempty"`
}

// Spec is a declarative transition table definition, typically authored as a
// YAML asset next to the entity prefabs that use it.
type Spec struct {
	Start       string `yaml:"start,omitempty"`
	Transitions []Rule `yaml:"transitions"`
}

// Parse decodes a YAML spec from r.
func Parse(r io.Reader) (*Spec, error) {
	var spec Spec
	if err := yaml.NewDecoder(r).Decode(&spec); err != nil {
		return nil, fmt.Errorf("tablespec: decode: %w", err)
	}
	return &spec, nil
}

// ParseFile decodes a YAML spec from the file at path.
func ParseFile(path string) (*Spec, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("tablespec: open %s: %w", path, err)
	}
	defer f.Close()
	return Parse(f)
}

// Build materializes the spec into a transition table, resolving rule
// condition names against conds. Rules keep their document order, which is
// the table's match priority.
func Build[T comparable](spec *Spec, conds map[string]fsm.Condition[T]) (*fsm.Table[T], error) {
	if spec == nil {
		return nil, ErrNilSpec
	}

	table := fsm.NewTable[T]()
	if spec.Start != "" {
		table.Start(fsm.StateType(spec.Start))
	}

	for i, rule := range spec.Transitions {
		if rule.To == "" {
			return nil, fmt.Errorf("tablespec: transition[%d]: %w: missing target state", i, ErrInvalidRule)
		}

		var cond fsm.Condition[T]
		if rule.When != "" {
			var ok bool
			if cond, ok = conds[rule.When]; !ok {
				return nil, fmt.Errorf("tablespec: transition[%d]: %w: %q", i, ErrUnknownCondition, rule.When)
			}
		}

		from := fsm.StateType(rule.From)
		if rule.From == "" || from == fsm.StateAny {
			table.AddGlobal(fsm.StateType(rule.To), cond)
			continue
		}
		table.Add(from, fsm.StateType(rule.To), cond)
	}
	return table, nil
}
