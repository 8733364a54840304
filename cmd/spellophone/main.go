// Copyright 2025 The Spellophone Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the spellophone command, which finds the words
hidden in phone numbers.

Every number is matched against a dictionary through the letters printed on
a telephone keypad. The output lists every way of writing the number with
dictionary words and leftover digits, best first. With a dictionary of CAT,
CATS, ACT and AT:

	$ spellophone -n -d words.txt 228-7
	CATS
	CAT-7
	ACT-7
	2-AT-7

A decomposition scores the sum of the squared lengths of its words, so a
single long word beats two short ones. When no word fits at all the number
itself is printed.

# Usage

	spellophone [flags] number[,number...] ...

Flags may also follow the numbers.

Numbers hold 3 to 10 digits once spaces, dashes, dots, slashes and
parentheses are removed. Several numbers can be given as separate arguments
or as one comma separated list.

# Dictionaries

The first readable system list among /etc/dictionaries-common/words,
/usr/share/dict/words and /usr/dict/words is loaded unless -n is given.
Extra lists are added with -d, which can be repeated. Lines are upper-cased,
stripped of accents and cut at apostrophes; lines with other characters are
dropped. Lists ending in .mpk are compiled word lists written by -compile,
which load without any of that work:

	spellophone -n -d words.txt -compile words.mpk
	spellophone -n -d words.mpk 555-2368

# Keypad

Keys are remapped with -<digit>=<letters>. An empty letter list removes every
letter from a key:

	spellophone -1=QZ -7=PRS 7292650782

# Configuration

Defaults are read from ~/.config/spellophone/config.toml, created on first
run, or from the file given with -config:

	[engine]
	min_word_length = 2
	min_digits = 3
	max_digits = 10

	[dict]
	use_default = true
	files = []

	[keypad]
	1 = "QZ"

	[output]
	show_scores = false
	lowest_first = false
	limit = 0

Flags win over the config file.

# Modes

With -c numbers are read line by line from stdin; a line starting with '?'
lists the words whose keypad digits start with the rest of the line. With
-ipc the command serves msgpack requests on stdin and stdout, see the server
package for the protocol.

# Command Line Flags

	-d file     add a dictionary file or glob pattern, repeatable
	-n          do not load the default system dictionary
	-r          print lowest scores first
	-s          print scores after a tab
	-v          print dictionary statistics on stderr
	-w n        minimum word length (default 2)
	-limit n    print at most n lines per number
	-0= .. -9=  remap a key
	-config     config file path
	-c          interactive mode
	-ipc        msgpack server mode
	-compile    write the loaded words as a compiled list and exit
	-debug      debug logging
	-version    show the version
*/
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/bastiangx/spellophone/internal/cli"
	"github.com/bastiangx/spellophone/internal/logger"
	"github.com/bastiangx/spellophone/internal/utils"
	"github.com/bastiangx/spellophone/pkg/config"
	"github.com/bastiangx/spellophone/pkg/dictionary"
	"github.com/bastiangx/spellophone/pkg/index"
	"github.com/bastiangx/spellophone/pkg/keypad"
	"github.com/bastiangx/spellophone/pkg/phoneword"
	"github.com/bastiangx/spellophone/pkg/server"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const (
	Version = "1.0.0"
	AppName = "spellophone"
	gh      = "https://github.com/bastiangx/spellophone"
)

// fileList collects the values of a repeatable flag.
type fileList []string

func (f *fileList) String() string { return strings.Join(*f, ",") }

func (f *fileList) Set(v string) error {
	*f = append(*f, v)
	return nil
}

// keyFlag remaps one keypad digit.
type keyFlag struct {
	digit     byte
	overrides map[byte]string
}

func (k *keyFlag) String() string { return "" }

func (k *keyFlag) Set(v string) error {
	k.overrides[k.digit] = v
	return nil
}

// parseArgs parses flags anywhere on the command line and returns the
// positional arguments in order. Everything after "--" is positional.
func parseArgs(fs *flag.FlagSet, args []string) ([]string, error) {
	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		rest := fs.Args()
		if len(rest) == 0 {
			return positional, nil
		}
		if consumed := len(args) - len(rest); consumed > 0 && args[consumed-1] == "--" {
			return append(positional, rest...), nil
		}
		positional = append(positional, rest[0])
		args = rest[1:]
	}
}

// sigHandler exits normally on interrupt.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

func main() {
	sigHandler()
	os.Exit(run())
}

func run() int {
	var dictFiles fileList
	keyOverrides := make(map[byte]string)

	showVersion := flag.Bool("version", false, "Show current version")
	debugMode := flag.Bool("debug", false, "Toggle debug mode")
	configPath := flag.String("config", "", "Config file path")
	noDefault := flag.Bool("n", false, "Do not load the default system dictionary")
	lowestFirst := flag.Bool("r", false, "Print lowest scores first")
	showScores := flag.Bool("s", false, "Print the score after each result")
	showStats := flag.Bool("v", false, "Print dictionary statistics")
	minWord := flag.Int("w", 0, "Minimum word length (default from config)")
	limit := flag.Int("limit", 0, "Results printed per number, 0 for all (default from config)")
	cliMode := flag.Bool("c", false, "Interactive mode, numbers are read from stdin")
	ipcMode := flag.Bool("ipc", false, "Serve msgpack requests on stdin/stdout")
	compileOut := flag.String("compile", "", "Write the loaded words as a compiled .mpk list and exit")
	flag.Var(&dictFiles, "d", "Dictionary file to add, repeatable")
	for d := byte('0'); d <= '9'; d++ {
		flag.Var(&keyFlag{digit: d, overrides: keyOverrides}, string(d), fmt.Sprintf("Letters for key %c", d))
	}
	flag.Usage = usage
	args, err := parseArgs(flag.CommandLine, os.Args[1:])
	if err != nil {
		return 2
	}

	if *showVersion {
		printVersion()
		return 0
	}
	logger.Setup(*debugMode)

	cfg, usedConfig, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Errorf("Failed to load config: %v", err)
		return 1
	}
	log.Debugf("Using config file: (%s)", config.GetActiveConfigPath(usedConfig))

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "w":
			cfg.Engine.MinWordLength = *minWord
		case "limit":
			cfg.Output.Limit = *limit
		case "r":
			cfg.Output.LowestFirst = *lowestFirst
		case "s":
			cfg.Output.ShowScores = *showScores
		case "v":
			cfg.Output.ShowStats = *showStats
		case "n":
			cfg.Dict.UseDefault = !*noDefault
		}
	})

	keys, err := cfg.KeypadMap()
	if err != nil {
		log.Errorf("Invalid keypad in config: %v", err)
		return 1
	}
	for digit, letters := range keyOverrides {
		if err := keys.Set(digit, letters); err != nil {
			log.Errorf("Invalid keypad flag: %v", err)
			return 1
		}
	}
	log.Debugf("Keypad: %s", keys)

	var numbers []string
	for _, arg := range args {
		numbers = append(numbers, utils.SplitNumbers(arg)...)
	}
	if len(numbers) == 0 && !*cliMode && !*ipcMode && *compileOut == "" {
		flag.Usage()
		return 1
	}

	loader, err := loadDictionaries(cfg, dictFiles)
	if err != nil {
		log.Errorf("%v", err)
		return 1
	}
	words := loader.Words()
	if len(words) == 0 {
		log.Warn("Dictionary is empty, numbers will be printed as is")
	}

	if *compileOut != "" {
		if err := dictionary.Save(*compileOut, words); err != nil {
			log.Errorf("Failed to compile dictionary: %v", err)
			return 1
		}
		log.Infof("Wrote %s words to %s", utils.FormatWithCommas(len(words)), *compileOut)
		return 0
	}

	opts := phoneword.Options{
		MinWordLength: cfg.Engine.MinWordLength,
		MinDigits:     cfg.Engine.MinDigits,
		MaxDigits:     cfg.Engine.MaxDigits,
		MaxNodes:      cfg.Engine.MaxNodes,
		Keypad:        &keys,
	}
	if *debugMode {
		opts.Logger = logger.New("solver")
	}
	solver, err := phoneword.NewSolverWithOptions(words, opts)
	if err != nil {
		log.Errorf("Failed to build dictionary: %v", err)
		return 1
	}

	if cfg.Output.ShowStats {
		stats := loader.Stats()
		cli.PrintStats(os.Stderr, cli.Stats{
			Files:      stats.Files,
			Lines:      stats.Lines,
			Words:      stats.Words,
			Duplicates: stats.Duplicates,
			Nodes:      solver.Trie().NodeCount(),
		})
	}

	printer := cli.NewPrinter(os.Stdout, cli.PrintOptions{
		ShowScores:  cfg.Output.ShowScores,
		LowestFirst: cfg.Output.LowestFirst,
		Limit:       cfg.Output.Limit,
	})

	if *ipcMode {
		srv := server.NewServer(solver, index.Build(words, keys), cfg)
		showStartupInfo(len(words))
		if err := srv.Start(); err != nil {
			log.Errorf("Server error: %v", err)
			return 1
		}
		return 0
	}

	if *cliMode {
		h := cli.NewInputHandler(solver, index.Build(words, keys), printer, os.Stdout, cfg.Output.Limit)
		if err := h.Start(); err != nil {
			log.Errorf("CLI error: %v", err)
			return 1
		}
		return 0
	}

	status := 0
	for i, raw := range numbers {
		number, err := solver.Validate(raw)
		if err != nil {
			log.Errorf("%v", err)
			status = 1
			continue
		}
		entries, err := solver.DecomposeOrdered(number, printer.Order())
		if err != nil {
			log.Errorf("%v", err)
			status = 1
			continue
		}
		if len(numbers) > 1 {
			if i > 0 {
				fmt.Println()
			}
			fmt.Printf("%s:\n", raw)
		}
		if err := printer.Print(entries); err != nil {
			log.Errorf("Writing results: %v", err)
			return 1
		}
	}
	return status
}

// loadDictionaries reads the default list, unless disabled, then the files
// named in the config and on the command line.
func loadDictionaries(cfg *config.Config, extra []string) (*dictionary.Loader, error) {
	loader := dictionary.NewLoader(dictionary.Options{
		MinLength: cfg.Engine.MinWordLength,
		MaxLength: cfg.MaxWordLength(),
	})

	if cfg.Dict.UseDefault {
		path, added, err := loader.LoadDefault(cfg.Dict.DefaultPaths)
		switch {
		case errors.Is(err, dictionary.ErrNoDictionary):
			log.Warnf("%v", err)
		case err != nil:
			return nil, err
		default:
			log.Debugf("Default dictionary %s: %d words", path, added)
		}
	}

	files, err := dictionary.ExpandPaths(append(append([]string{}, cfg.Dict.Files...), extra...))
	if err != nil {
		return nil, err
	}
	for _, path := range files {
		if _, err := loader.LoadFile(path); err != nil {
			return nil, err
		}
	}
	return loader, nil
}

func usage() {
	out := flag.CommandLine.Output()
	fmt.Fprintf(out, "Usage: %s [flags] number[,number...] ...\n\n", AppName)
	fmt.Fprintln(out, "Lists the dictionary words that can be dialed as each number.")
	fmt.Fprintln(out, "")
	flag.PrintDefaults()
}

func printVersion() {
	l := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "",
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"}).
		Background(lipgloss.AdaptiveColor{Light: "#f2e9e1", Dark: "#26233a"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	l.SetStyles(styles)

	l.Print("")
	l.Print("[ spellophone ] Finds the words in phone numbers")
	l.Print("", "version", Version)
	l.Print("", "keypad", keypad.Default().String())
	l.Print("")
	l.Print("use -h or --help to see available options")
	l.Print("Github Repo", "gh", gh)
}

// showStartupInfo reports on stderr that the server is ready.
func showStartupInfo(words int) {
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	log.Infof("Version: %s", Version)
	log.Infof("Process ID: [ %d ]", os.Getpid())
	log.Infof("words: %s", utils.FormatWithCommas(words))
	log.Info("status: ready")

	log.SetLevel(currentLevel)
}
