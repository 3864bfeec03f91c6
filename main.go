package main

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/integrii/flaggy"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

const (
	defaultConfigFile = "config.json"
	configFileEnv     = "GOL_CONFIG"
)

func main() {
	config, err := initOptions()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	g, err := newGame(config)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer g.close()
	displayGameInfo(g)

	// Handle Ctrl+C gracefully
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	var (
		stagnantCount  = 0
		lastRestartGen = 0
		lastFrameTime  = time.Now()
	)

	for {
		select {
		case <-sigChan:
			fmt.Println("\nShutting down gracefully...")
			fmt.Printf("Final stats: %d generations in %.1f seconds\n",
				g.generation, g.stats.Runtime().Seconds())
			fmt.Printf("Average: %.1f gen/sec, %.1f avg population\n",
				g.stats.GenerationsPerSecond, g.stats.AveragePopulation)
			return
		default:
		}

		frameStart := time.Now()
		g.renderer.Clear()

		status := updateGameState(g, lastFrameTime)
		lastFrameTime = frameStart

		if status.stagnant {
			stagnantCount++
		} else {
			stagnantCount = 0
		}

		displayGameStatus(g, status, lastRestartGen)
		g.renderer.Display(g.current)

		if config.MaxGenerations > 0 && g.generation >= config.MaxGenerations {
			fmt.Printf("\nReached maximum generations limit (%d)\n", config.MaxGenerations)
			return
		}

		if restart, reason := checkRestartConditions(status.living, stagnantCount, config); restart && config.AutoRestart {
			fmt.Printf("Restarting due to %s...\n", reason)
			if err := g.restart(); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			lastRestartGen = g.generation
			stagnantCount = 0
		}

		g.step()

		time.Sleep(config.FrameRate)
	}
}

// initOptions builds the configuration from defaults, the config file, the environment and then flags
func initOptions() (utils.Config, error) {
	config, err := loadConfigFile()
	if err != nil {
		return config, err
	}
	if err = utils.ApplyEnv(&config); err != nil {
		return config, err
	}

	noColor := !config.Color
	flaggy.SetName("go-life")
	flaggy.SetDescription("Conway's Game of Life on a sparse bounded or wrapped universe")
	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.Int(&config.Width, "x", "width", "Width of the universe")
	flaggy.Int(&config.Height, "y", "height", "Height of the universe")
	flaggy.String(&config.Boundary, "b", "boundary", "Boundary policy ["+strings.Join(model.BoundaryNames(), "|")+"]")
	flaggy.String(&config.Pattern, "p", "pattern", "Seed with a pattern instead of random cells ["+strings.Join(model.PatternNames(), "|")+"]")
	flaggy.Int64(&config.Seed, "s", "seed", "Random seed, 0 picks one from the clock")
	flaggy.Float64(&config.RandomDensity, "d", "density", "Probability of a live cell when seeding randomly")
	flaggy.Int(&config.MaxGenerations, "g", "generations", "Stop after this many generations, 0 runs forever")
	flaggy.Duration(&config.FrameRate, "i", "interval", "Interval between generations, for example 150ms")
	flaggy.Int(&config.Workers, "w", "workers", "Workers per generation step")
	flaggy.Bool(&config.AutoRestart, "r", "restart", "Restart on extinction or stagnation")
	flaggy.Bool(&noColor, "", "no-color", "Disable colored output")
	flaggy.Parse()

	config.Color = !noColor
	if err = config.Validate(); err != nil {
		flaggy.ShowHelpAndExit(err.Error())
	}
	return config, nil
}

// loadConfigFile falls back to defaults when no config file exists
func loadConfigFile() (utils.Config, error) {
	filename := os.Getenv(configFileEnv)
	if filename == "" {
		filename = defaultConfigFile
		if _, err := os.Stat(filename); err != nil {
			return utils.DefaultConfig(), nil
		}
	}
	return utils.LoadConfig(filename)
}
