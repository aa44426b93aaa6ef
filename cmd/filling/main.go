// Command filling is a puzzle workbench: it generates, solves and
// prints puzzles without a server or database.
//
// Puzzle ids line up with what the HTTP API serves: the game
// parameters, a colon, then one digit per cell, e.g.
//
//	7x7:600200203060303000001023042020000030501040400300
package main

import (
	"bufio"
	"flag"
	"fmt"
	"hash/maphash"
	"math/rand/v2"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"

	"github.com/vancomm/filling-server/internal/filling"
)

var log = logrus.New()

func setupLogging(logFile string, verbose bool) error {
	log.SetLevel(logrus.InfoLevel)
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	log.SetFormatter(&logrus.TextFormatter{ForceColors: true})

	if logFile == "" {
		return nil
	}
	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   logFile,
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     28, // days
		Level:      logrus.DebugLevel,
		Formatter:  &logrus.JSONFormatter{},
	})
	if err != nil {
		return fmt.Errorf("unable to create log file hook: %w", err)
	}
	log.AddHook(hook)
	return nil
}

func usage() {
	fmt.Fprintf(os.Stderr, `usage: %s [flags] <command> [args]

commands:
  gen <params>       generate puzzles (params like "7x7" or "5")
  solve [id...]      solve puzzle ids from args or stdin
  print <id>         render a puzzle id as a text grid

flags:
`, os.Args[0])
	flag.PrintDefaults()
}

func parseId(id string) (filling.GameParams, string, error) {
	ps, desc, found := strings.Cut(id, ":")
	if !found {
		return filling.GameParams{}, "", fmt.Errorf("puzzle id must look like <params>:<desc>")
	}
	p, err := filling.ParseParams(ps)
	if err != nil {
		return filling.GameParams{}, "", err
	}
	if err := p.Validate(); err != nil {
		return filling.GameParams{}, "", err
	}
	if err := p.ValidateDesc(desc); err != nil {
		return filling.GameParams{}, "", err
	}
	return p, desc, nil
}

func runGen(params string, count int, seed uint64) error {
	p, err := filling.ParseParams(params)
	if err != nil {
		return err
	}
	if err := p.Validate(); err != nil {
		return err
	}

	if seed == 0 {
		seed = new(maphash.Hash).Sum64()
	}
	log.WithFields(logrus.Fields{
		"params": p.Encode(),
		"count":  count,
		"seed":   seed,
	}).Debug("generating")

	rnd := rand.New(rand.NewPCG(seed, seed))
	for i := 0; i < count; i++ {
		desc, _ := filling.NewGameDesc(p, rnd)
		fmt.Printf("%s:%s\n", p.Encode(), desc)
	}
	return nil
}

func solveOne(id string) error {
	p, desc, err := parseId(id)
	if err != nil {
		return err
	}
	game, err := filling.NewGameFromDesc(p, desc)
	if err != nil {
		return err
	}
	solved, ok := filling.Solve(p, game.Board)
	if !ok {
		return fmt.Errorf("no solution found")
	}
	fmt.Print(filling.FormatBoard(p, solved))
	return nil
}

func runSolve(args []string) error {
	if len(args) > 0 {
		for _, id := range args {
			if err := solveOne(id); err != nil {
				return fmt.Errorf("%s: %w", id, err)
			}
		}
		return nil
	}

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		id := strings.TrimSpace(scanner.Text())
		if id == "" {
			continue
		}
		if err := solveOne(id); err != nil {
			return fmt.Errorf("%s: %w", id, err)
		}
	}
	return scanner.Err()
}

func runPrint(id string) error {
	p, desc, err := parseId(id)
	if err != nil {
		return err
	}
	game, err := filling.NewGameFromDesc(p, desc)
	if err != nil {
		return err
	}
	fmt.Print(filling.FormatBoard(p, game.Board))
	return nil
}

func main() {
	var (
		count   int
		seed    uint64
		logFile string
		verbose bool
	)
	flag.IntVar(&count, "n", 1, "number of puzzles to generate")
	flag.Uint64Var(&seed, "seed", 0, "PRNG seed (0 picks a random one)")
	flag.StringVar(&logFile, "log", "", "write a rotating debug log to this file")
	flag.BoolVar(&verbose, "v", false, "verbose output")
	flag.Usage = usage
	flag.Parse()

	if err := setupLogging(logFile, verbose); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	filling.Log = slogFromLogrus()

	args := flag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(2)
	}

	var err error
	switch args[0] {
	case "gen":
		if len(args) != 2 {
			err = fmt.Errorf("gen takes exactly one params argument")
		} else {
			err = runGen(args[1], count, seed)
		}
	case "solve":
		err = runSolve(args[1:])
	case "print":
		if len(args) != 2 {
			err = fmt.Errorf("print takes exactly one puzzle id")
		} else {
			err = runPrint(args[1])
		}
	default:
		err = fmt.Errorf("unknown command %q", args[0])
	}
	if err != nil {
		log.Fatal(err)
	}
}
