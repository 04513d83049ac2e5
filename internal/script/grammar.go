// Package script implements a small command language for driving a farm
// simulation headlessly. Grammar is defined as Go structs with tags.
//
//	# plant two carrots and wait for them
//	plant 0 0 carrot
//	plant 0 1 carrot
//	advance 15 step 0.5
//	expect stage 0 0 == ready
//	harvest 0 0
//	expect money >= 250
package script

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Program is the top-level AST node.
type Program struct {
	Statements []*Statement `@@*`
}

// Statement is one command or assertion.
type Statement struct {
	Pos lexer.Position

	Plant     *Plant   `  @@`
	Harvest   *Cell    `| "harvest" @@`
	Pesticide *Cell    `| ( "pesticide" | "cure" ) @@`
	Apply     *Cell    `| "apply" @@`
	Spawn     *Cell    `| "spawn" @@`
	Select    *Select  `| "select" @@`
	Tick      *float64 `| "tick" @Number`
	Advance   *Advance `| @@`
	Restart   bool     `| @"restart"`
	Expect    *Expect  `| "expect" @@`
}

// Cell addresses a grid cell as row then column.
type Cell struct {
	Row int `@Number`
	Col int `@Number`
}

// Plant: plant row col kind
type Plant struct {
	At   *Cell  `"plant" @@`
	Kind string `@Ident`
}

// Select: select crop kind | select action name
type Select struct {
	Crop   *string `  "crop" @Ident`
	Action *string `| "action" @Ident`
}

// Advance: advance seconds [step seconds]
type Advance struct {
	Total float64  `"advance" @Number`
	Step  *float64 `( "step" @Number )?`
}

// Expect: expect subject [row col] op value
type Expect struct {
	Subject string `@( "money" | "harvested" | "eliminated" | "consumed" | "agents" | "cap" | "timer" | "crops" | "dead" | "gameover" | "stage" | "hp" | "cell" )`
	At      *Cell  `@@?`
	Op      string `@Op`
	Value   *Value `@@`
}

// Value is the right-hand side of an expectation.
type Value struct {
	Number *float64 `  @Number`
	Ident  *string  `| @Ident`
}

var scriptLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `[\s]+`},
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "Number", Pattern: `-?[0-9]+(\.[0-9]+)?`},
	{Name: "Op", Pattern: `==|!=|<=|>=|<|>`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
})

var parser = participle.MustBuild[Program](
	participle.Lexer(scriptLexer),
	participle.Elide("Whitespace", "Comment"),
	participle.CaseInsensitive("Ident"),
	participle.UseLookahead(2),
)

// Parse parses script source. name is used in error positions.
func Parse(name, source string) (*Program, error) {
	prog, err := parser.ParseString(name, source)
	if err != nil {
		return nil, fmt.Errorf("script: %w", err)
	}
	return prog, nil
}

// ParseFile reads and parses a script file.
func ParseFile(path string) (*Program, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("script: read %s: %w", path, err)
	}
	return Parse(path, string(data))
}

func (c *Cell) String() string {
	return fmt.Sprintf("%d %d", c.Row, c.Col)
}

func (v *Value) String() string {
	switch {
	case v.Number != nil:
		return formatNumber(*v.Number)
	case v.Ident != nil:
		return *v.Ident
	}
	return ""
}

// String renders the statement in canonical form.
func (s *Statement) String() string {
	switch {
	case s.Plant != nil:
		return fmt.Sprintf("plant %s %s", s.Plant.At, s.Plant.Kind)
	case s.Harvest != nil:
		return "harvest " + s.Harvest.String()
	case s.Pesticide != nil:
		return "pesticide " + s.Pesticide.String()
	case s.Apply != nil:
		return "apply " + s.Apply.String()
	case s.Spawn != nil:
		return "spawn " + s.Spawn.String()
	case s.Select != nil:
		if s.Select.Crop != nil {
			return "select crop " + *s.Select.Crop
		}
		return "select action " + *s.Select.Action
	case s.Tick != nil:
		return "tick " + formatNumber(*s.Tick)
	case s.Advance != nil:
		out := "advance " + formatNumber(s.Advance.Total)
		if s.Advance.Step != nil {
			out += " step " + formatNumber(*s.Advance.Step)
		}
		return out
	case s.Restart:
		return "restart"
	case s.Expect != nil:
		e := s.Expect
		parts := []string{"expect", e.Subject}
		if e.At != nil {
			parts = append(parts, e.At.String())
		}
		parts = append(parts, e.Op, e.Value.String())
		return strings.Join(parts, " ")
	}
	return ""
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
