// Command minimax is a console host for the alpha-beta searcher: play any
// of the bundled games against the engine, or run the depth-sweep benchmark.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"minimax/config"
	"minimax/engine"
	"minimax/experiments"
	"minimax/game"
	"minimax/game/connectfour"
	"minimax/game/hexapawn"
	"minimax/game/nim"
	"minimax/game/tictactoe"
	"minimax/player"
	"minimax/searcher"
)

var gameNames = []string{"tictactoe", "connectfour", "nim", "hexapawn"}

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	gameName := flag.String("game", "", "game to play: "+strings.Join(gameNames, ", "))
	second := flag.Bool("second", false, "let the engine move first")
	bench := flag.String("bench", "", "run a depth sweep and write CSVs under this directory")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load config")
		}
	}

	level, _ := zerolog.ParseLevel(cfg.LogLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level)

	if *bench != "" {
		if err := experiments.RunDepthSweep([]int{1, 3, 5, 7, 9}, *bench); err != nil {
			log.Fatal().Err(err).Msg("depth sweep failed")
		}
		return
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "minimax> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open terminal")
	}
	defer rl.Close()

	name := *gameName
	if name == "" {
		name = chooseGame(rl)
		if name == "" {
			return
		}
	}

	humanMax := !*second
	switch name {
	case "tictactoe":
		fmt.Println("Cells are numbered 1-9, top left to bottom right.")
		play(rl, tictactoe.Logic{}, tictactoe.New(),
			tictactoe.Board.String, tictactoe.ParseMove, cfg.ForGame(name), humanMax)
	case "connectfour":
		fmt.Println("Enter a column number, 1-7.")
		play(rl, connectfour.Logic{}, connectfour.New(),
			connectfour.Board.String, connectfour.ParseMove, cfg.ForGame(name), humanMax)
	case "nim":
		fmt.Println("Enter \"<heap> <count>\"; whoever takes the last object wins.")
		play(rl, nim.Logic{}, nim.New(),
			nim.Board.String, nim.ParseMove, cfg.ForGame(name), humanMax)
	case "hexapawn":
		fmt.Println("Enter moves like \"b1b2\". Push or capture diagonally; reach the far rank to win.")
		play(rl, hexapawn.Logic{}, hexapawn.New(),
			hexapawn.Board.String, hexapawn.ParseMove, cfg.ForGame(name), humanMax)
	default:
		log.Fatal().Msgf("unknown game %q", name)
	}
}

func chooseGame(rl *readline.Instance) string {
	fmt.Println("Pick a game:")
	for i, name := range gameNames {
		fmt.Printf("  %d. %s\n", i+1, name)
	}
	for {
		line, err := rl.Readline()
		if err != nil {
			return ""
		}
		choice := strings.TrimSpace(strings.ToLower(line))
		for i, name := range gameNames {
			if choice == name || choice == fmt.Sprint(i+1) {
				return name
			}
		}
		fmt.Printf("Don't know %q, try again.\n", choice)
	}
}

// play wires a human and a searcher into a match over one game model. The
// human takes the maximizing side (which moves first in every bundled game)
// unless humanMax is false.
func play[S any, M any](rl *readline.Instance, logic game.Logic[S, M], start S,
	render func(S) string, parse func(S, string) (M, error),
	search config.Search, humanMax bool) {

	eng := searcher.New(logic,
		searcher.WithDepth(search.Depth),
		searcher.WithMoveCapacity(search.MoveCapacity))
	bot := player.NewSearcher("engine", eng)
	human := player.NewHuman("you", rl.Readline, parse)

	var match *engine.Match[S, M]
	if humanMax {
		match = engine.NewMatch[S, M](logic, human, bot)
	} else {
		match = engine.NewMatch[S, M](logic, bot, human)
	}
	match.Observer = func(s S) {
		fmt.Println(render(s))
	}

	result, err := match.Run(start)
	if err != nil {
		// ^C or closed stdin mid-game.
		fmt.Println("Game abandoned.")
		return
	}
	if result.Winner == "" {
		fmt.Println("Draw.")
	} else {
		fmt.Printf("%s wins after %d moves.\n", result.Winner, result.Turns)
	}
}
