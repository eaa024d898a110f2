package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"gridmage/internal/engine"
	"gridmage/internal/entity"
	"gridmage/internal/grid"
	"gridmage/internal/spell"
)

var (
	simSeed   int64
	simScript string
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run an action script headless and print the final state",
	Long: `Sim feeds one action per line into a fresh engine and prints the
final state as JSON. Actions:

  move up|down|left|right
  dash up|down|left|right
  cast X Y        (also: cast X,Y)
  focus
  wait
  use health|mana
  select fire|water|earth|air
  shape ball|cone|wall|self|summon|raisedead

Blank lines and lines starting with # are skipped. The same seed and
script always print the same state.`,
	RunE: runSim,
}

func init() {
	simCmd.Flags().Int64Var(&simSeed, "seed", 1, "run seed")
	simCmd.Flags().StringVar(&simScript, "script", "-", "script file, - for stdin")
}

func runSim(cmd *cobra.Command, args []string) error {
	var in io.Reader = cmd.InOrStdin()
	if simScript != "-" {
		f, err := os.Open(simScript)
		if err != nil {
			return fmt.Errorf("open script: %w", err)
		}
		defer f.Close()
		in = f
	}

	eng := engine.New(engine.Config{Seed: simSeed})
	scanner := bufio.NewScanner(in)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if err := apply(eng, line); err != nil {
			return fmt.Errorf("script line %d: %w", lineno, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read script: %w", err)
	}

	out, err := json.MarshalIndent(eng.State(), "", "  ")
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}

// apply parses one script line and feeds it to the engine. Requests the
// engine treats as no-ops (drinking a potion you lack, casting without
// mana) are not script errors; only unparseable lines are.
func apply(eng *engine.Engine, line string) error {
	fields := strings.Fields(line)
	verb, args := fields[0], fields[1:]
	switch verb {
	case "move", "dash":
		if len(args) != 1 {
			return fmt.Errorf("%s wants a direction", verb)
		}
		dir, err := grid.ParseDirection(args[0])
		if err != nil {
			return err
		}
		if verb == "move" {
			eng.Move(dir)
		} else {
			eng.Dash(dir)
		}
	case "cast":
		target, err := parseTarget(args)
		if err != nil {
			return err
		}
		eng.CastSpellAt(target.X, target.Y)
	case "focus":
		eng.Focus()
	case "wait":
		eng.Wait()
	case "use":
		if len(args) != 1 {
			return fmt.Errorf("use wants health or mana")
		}
		var typ entity.ItemType
		switch args[0] {
		case "health":
			typ = entity.HealthPotion
		case "mana":
			typ = entity.ManaPotion
		default:
			return fmt.Errorf("unknown potion %q", args[0])
		}
		for _, it := range eng.State().Player.Inventory {
			if it.Type == typ {
				eng.UseItem(it.ID)
				break
			}
		}
	case "select":
		if len(args) != 1 {
			return fmt.Errorf("select wants an element")
		}
		el, err := spell.ParseElement(args[0])
		if err != nil {
			return err
		}
		eng.SelectElement(el)
	case "shape":
		if len(args) != 1 {
			return fmt.Errorf("shape wants a shape name")
		}
		sh, err := spell.ParseShape(args[0])
		if err != nil {
			return err
		}
		eng.SelectShape(sh)
	default:
		return fmt.Errorf("unknown action %q", verb)
	}
	return nil
}

func parseTarget(args []string) (grid.Position, error) {
	var p grid.Position
	switch len(args) {
	case 1:
		if err := p.UnmarshalText([]byte(args[0])); err != nil {
			return p, err
		}
	case 2:
		x, err := strconv.Atoi(args[0])
		if err != nil {
			return p, fmt.Errorf("cast x %q: %w", args[0], err)
		}
		y, err := strconv.Atoi(args[1])
		if err != nil {
			return p, fmt.Errorf("cast y %q: %w", args[1], err)
		}
		p.X, p.Y = x, y
	default:
		return p, fmt.Errorf("cast wants a target tile")
	}
	return p, nil
}
