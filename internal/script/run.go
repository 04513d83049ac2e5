package script

import (
	"fmt"
	"math"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"

	"github.com/vovakirdan/tui-farm/internal/farm"
)

// DefaultStep is the tick size used by advance when no step is given.
const DefaultStep = 0.1

const epsilon = 1e-9

// Options tune a script run.
type Options struct {
	Step float64 // advance step when the script omits one; 0 means DefaultStep

	// OnCommand is called after every command with its result.
	OnCommand func(st *Statement, ok bool)
	// OnEvent is called for every simulation event, in order.
	OnEvent func(ev farm.Event)
}

// Failure is an expectation that did not hold, or a statement that could
// not be evaluated.
type Failure struct {
	Pos       lexer.Position
	Statement string
	Got       string
}

func (f Failure) Error() string {
	return fmt.Sprintf("%s: %s: got %s", f.Pos, f.Statement, f.Got)
}

// Report summarizes a run.
type Report struct {
	Applied  int // Commands the simulation accepted
	Rejected int // Commands the simulation refused
	Ticks    int
	Checked  int // Expectations evaluated
	Failures []Failure
}

// OK reports whether every expectation held.
func (r Report) OK() bool {
	return len(r.Failures) == 0
}

// Run executes prog against sim. Rejected commands are counted, not fatal;
// failed expectations are collected and the run continues.
func Run(sim *farm.Simulation, prog *Program, opts Options) Report {
	r := &runner{sim: sim, opts: opts}
	if r.opts.Step <= 0 {
		r.opts.Step = DefaultStep
	}
	for _, st := range prog.Statements {
		r.exec(st)
	}
	return r.report
}

type runner struct {
	sim    *farm.Simulation
	opts   Options
	report Report
}

func (r *runner) exec(st *Statement) {
	switch {
	case st.Plant != nil:
		r.command(st, r.sim.Plant(pos(st.Plant.At), farm.CropKind(strings.ToLower(st.Plant.Kind))))
	case st.Harvest != nil:
		r.command(st, r.sim.Harvest(pos(st.Harvest)))
	case st.Pesticide != nil:
		r.command(st, r.sim.ApplyPesticide(pos(st.Pesticide)))
	case st.Apply != nil:
		r.command(st, r.sim.Apply(pos(st.Apply)))
	case st.Spawn != nil:
		r.command(st, r.sim.SpawnAgent(pos(st.Spawn)))
	case st.Select != nil:
		r.selectCmd(st)
	case st.Tick != nil:
		r.tick(*st.Tick)
	case st.Advance != nil:
		step := r.opts.Step
		if st.Advance.Step != nil && *st.Advance.Step > 0 {
			step = *st.Advance.Step
		}
		for remaining := st.Advance.Total; remaining > epsilon; remaining -= step {
			r.tick(math.Min(step, remaining))
		}
	case st.Restart:
		r.sim.Restart()
		r.command(st, true)
	case st.Expect != nil:
		r.expect(st)
	}
}

func pos(c *Cell) farm.Pos {
	return farm.P(c.Row, c.Col)
}

func (r *runner) command(st *Statement, ok bool) {
	if ok {
		r.report.Applied++
	} else {
		r.report.Rejected++
	}
	if r.opts.OnCommand != nil {
		r.opts.OnCommand(st, ok)
	}
}

func (r *runner) selectCmd(st *Statement) {
	if st.Select.Crop != nil {
		kind := strings.ToLower(*st.Select.Crop)
		if _, ok := r.sim.Config().Crop(kind); !ok {
			r.fail(st, fmt.Sprintf("unknown crop kind %q", kind))
			return
		}
		r.sim.SelectCropKind(farm.CropKind(kind))
		r.command(st, true)
		return
	}
	a, ok := farm.ParseAction(strings.ToLower(*st.Select.Action))
	if !ok {
		r.fail(st, fmt.Sprintf("unknown action %q", *st.Select.Action))
		return
	}
	r.sim.SelectAction(a)
	r.command(st, true)
}

func (r *runner) tick(dt float64) {
	res := r.sim.Tick(dt)
	r.report.Ticks++
	if r.opts.OnEvent != nil {
		for _, ev := range res.Events {
			r.opts.OnEvent(ev)
		}
	}
}

func (r *runner) fail(st *Statement, got string) {
	r.report.Failures = append(r.report.Failures, Failure{
		Pos:       st.Pos,
		Statement: st.String(),
		Got:       got,
	})
}

func (r *runner) expect(st *Statement) {
	r.report.Checked++
	e := st.Expect
	subject := strings.ToLower(e.Subject)
	snap := r.sim.Snapshot()

	switch subject {
	case "gameover":
		want, ok := boolValue(e.Value)
		if !ok {
			r.fail(st, "gameover compares against true or false")
			return
		}
		r.checkEquality(st, snap.GameOver == want, fmt.Sprint(snap.GameOver))
		return
	case "stage", "cell":
		if e.At == nil {
			r.fail(st, subject+" needs a row and column")
			return
		}
		cell, ok := snap.Cell(pos(e.At))
		if !ok {
			r.fail(st, "cell out of bounds")
			return
		}
		got := cellWord(cell)
		if subject == "stage" {
			got = stageWord(cell)
		}
		r.checkEquality(st, strings.EqualFold(got, e.Value.String()), got)
		return
	}

	got, err := numericSubject(snap, subject, e.At)
	if err != nil {
		r.fail(st, err.Error())
		return
	}
	if e.Value.Number == nil {
		r.fail(st, fmt.Sprintf("%s compares against a number", subject))
		return
	}
	if !compare(got, e.Op, *e.Value.Number) {
		r.fail(st, formatNumber(got))
	}
}

func (r *runner) checkEquality(st *Statement, equal bool, got string) {
	switch st.Expect.Op {
	case "==":
	case "!=":
		equal = !equal
	default:
		r.fail(st, fmt.Sprintf("%s only supports == and !=", strings.ToLower(st.Expect.Subject)))
		return
	}
	if !equal {
		r.fail(st, got)
	}
}

// numericSubject reads a numeric subject. subject must be lower case.
func numericSubject(snap farm.Snapshot, subject string, at *Cell) (float64, error) {
	switch subject {
	case "money":
		return float64(snap.Economy.Money), nil
	case "harvested":
		return float64(snap.Economy.Harvested), nil
	case "eliminated":
		return float64(snap.Economy.Eliminated), nil
	case "consumed":
		return float64(snap.Director.Consumed), nil
	case "agents":
		return float64(snap.Director.Live), nil
	case "cap":
		return float64(snap.Director.Cap), nil
	case "timer":
		return snap.Director.SpawnTimer, nil
	case "crops", "dead":
		n := 0
		for _, c := range snap.Cells {
			if (subject == "dead" && !c.Alive) || (subject == "crops" && c.Crop != nil) {
				n++
			}
		}
		return float64(n), nil
	case "hp":
		if at == nil {
			return 0, fmt.Errorf("hp needs a row and column")
		}
		cell, ok := snap.Cell(pos(at))
		if !ok {
			return 0, fmt.Errorf("cell out of bounds")
		}
		if cell.Crop == nil {
			return 0, nil
		}
		return cell.Crop.HP, nil
	}
	return 0, fmt.Errorf("unknown subject %q", subject)
}

func compare(got float64, op string, want float64) bool {
	switch op {
	case "==":
		return math.Abs(got-want) < epsilon
	case "!=":
		return math.Abs(got-want) >= epsilon
	case "<":
		return got < want
	case "<=":
		return got <= want+epsilon
	case ">":
		return got > want
	case ">=":
		return got >= want-epsilon
	}
	return false
}

func boolValue(v *Value) (bool, bool) {
	switch {
	case v.Ident != nil:
		switch strings.ToLower(*v.Ident) {
		case "true", "yes":
			return true, true
		case "false", "no":
			return false, true
		}
	case v.Number != nil:
		return *v.Number != 0, true
	}
	return false, false
}

// stageWord names the crop stage at a cell, or "none".
func stageWord(c farm.CellView) string {
	if c.Crop == nil {
		return "none"
	}
	return c.Crop.Stage.String()
}

// cellWord is "dead", "empty" or "planted".
func cellWord(c farm.CellView) string {
	switch {
	case !c.Alive:
		return "dead"
	case c.Crop == nil:
		return "empty"
	default:
		return "planted"
	}
}
