package main

import (
	"fmt"
	"iter"
	"math/rand/v2"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

// game ties the generation engine to the terminal
type game struct {
	config   utils.Config
	boundary model.Boundary
	rng      *rand.Rand

	current    *model.Universe[model.Cell]
	generation int
	next       func() (*model.Universe[model.Cell], bool)
	stop       func()

	history  *model.History
	renderer *model.TerminalRenderer
	stats    *utils.Stats
}

// newGame sets up the initial game state
func newGame(config utils.Config) (*game, error) {
	boundary, err := model.BoundaryFromName(config.Boundary)
	if err != nil {
		return nil, errors.Wrap(err, "[newGame]")
	}

	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g := &game{
		config:   config,
		boundary: boundary,
		rng:      model.NewRand(seed),
		history:  model.NewHistory(0),
		renderer: model.NewTerminalRenderer(config.Color),
		stats:    utils.NewStats(),
	}
	if err = g.seed(); err != nil {
		return nil, err
	}
	return g, nil
}

// newUniverse builds the first generation from the configured pattern or random cells
func newUniverse(config utils.Config, boundary model.Boundary, rng *rand.Rand) (*model.Universe[model.Cell], error) {
	if config.Pattern == "" {
		u, err := model.Random(config.Width, config.Height, boundary, model.Likely(rng, config.RandomDensity))
		return u, errors.Wrap(err, "[newUniverse]")
	}

	rows, err := model.Pattern(config.Pattern)
	if err != nil {
		return nil, errors.Wrap(err, "[newUniverse]")
	}
	u, err := model.New[model.Cell](config.Width, config.Height, boundary)
	if err != nil {
		return nil, errors.Wrap(err, "[newUniverse]")
	}

	// center the pattern
	x := (config.Width - len(rows[0])) / 2
	y := (config.Height - len(rows)) / 2
	if err = model.Stamp(u, rows, x, y, model.Cell{}); err != nil {
		return nil, errors.Wrapf(err, "[newUniverse] pattern %q does not fit %dx%d", config.Pattern, config.Width, config.Height)
	}
	return u, nil
}

// seed replaces the running life with a freshly built universe
func (g *game) seed() error {
	u, err := newUniverse(g.config, g.boundary, g.rng)
	if err != nil {
		return err
	}

	g.close()
	life := model.NewLife(u, func() model.Cell { return model.Cell{} }).WithWorkers(g.config.Workers)
	g.next, g.stop = iter.Pull(life.All())
	g.current = u
	g.history.Reset()
	return nil
}

// step pulls the next generation
func (g *game) step() {
	if u, ok := g.next(); ok {
		g.current = u
		g.generation++
	}
}

// close releases the generation sequence
func (g *game) close() {
	if g.stop != nil {
		g.stop()
		g.stop = nil
	}
}

// restart handles the game restart logic
func (g *game) restart() error {
	fmt.Printf("\nRestarting...\n")
	time.Sleep(1 * time.Second)

	if err := g.seed(); err != nil {
		return err
	}

	fmt.Printf("New universe loaded! Living cells: %d\n", g.current.Len())
	time.Sleep(2 * time.Second)
	return nil
}

// displayGameInfo shows the initial game information
func displayGameInfo(g *game) {
	fmt.Printf("Boundary: %s | Workers: %d | Pattern: %q\n",
		g.boundary.Name(), max(g.config.Workers, 1), g.config.Pattern)
	fmt.Printf("Universe: %dx%d | Initial living cells: %d\n",
		g.current.Width(), g.current.Height(), g.current.Len())
	fmt.Println("Press Ctrl+C to exit gracefully")
	fmt.Println()
	time.Sleep(2 * time.Second)
}

type gameStatus struct {
	living   int
	density  float64
	label    string
	stagnant bool
}

// updateGameState updates the game state and returns status information
func updateGameState(g *game, lastFrameTime time.Time) gameStatus {
	u := g.current
	living := u.Len()
	status := gameStatus{
		living:  living,
		density: float64(living) / float64(u.Width()*u.Height()) * 100,
		label:   "Active",
	}

	g.stats.Update(g.generation, living, time.Since(lastFrameTime))
	g.stats.BoundingBoxSize = u.BoundingBoxSize()

	// the current state is checked against history before it is recorded
	status.stagnant = g.history.IsStagnant(u)
	g.history.Record(u)

	if status.stagnant {
		status.label = fmt.Sprintf("Stagnant (%d)", g.generation)
	}
	if living == 0 {
		status.label = "Extinct"
	}
	return status
}

// displayGameStatus shows the current game status
func displayGameStatus(g *game, status gameStatus, lastRestartGen int) {
	r := g.renderer
	r.Status("Gen", "%d | Living: %d | Density: %.1f%% | Status: %s | Bounding box: %d cells",
		g.generation, status.living, status.density, status.label, g.stats.BoundingBoxSize)
	r.Status("Performance", "%.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs",
		g.stats.GenerationsPerSecond, g.stats.AveragePopulation, g.stats.Runtime().Seconds())

	if g.generation > lastRestartGen {
		r.Status("Generations since restart", "%d", g.generation-lastRestartGen)
	}
	fmt.Println()
}

// checkRestartConditions determines if the game should restart
func checkRestartConditions(livingCells, stagnantCount int, config utils.Config) (bool, string) {
	if livingCells == 0 {
		return true, "extinction"
	}
	if stagnantCount >= config.StagnationThreshold {
		return true, "stagnation detected"
	}
	return false, ""
}
