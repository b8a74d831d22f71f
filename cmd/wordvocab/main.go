// Copyright 2025 The WordServe Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main runs the wordvocab vocabulary as a msgpack IPC server or an interactive CLI.

A plain text word list (one lowercase word per line) is loaded into an
in-memory prefix tree. Prefix queries return words in letter order, filtered
to those at most k+2 letters long.

# Usage

Start the IPC server with the default word list:

	wordvocab

Load a different list and run the CLI in debug mode:

	wordvocab -data /path/to/lists -words big.txt -c -d

Print the first three words for a prefix and exit:

	wordvocab -demo go

# Configuration

Defaults come from a TOML file created on first run:

	[server]
	max_limit = 64
	min_prefix = 1
	max_prefix = 60
	default_k = 3
	enable_filter = true

	[dict]
	word_list = "words.txt"
	backend = "rway"

Flags given on the command line take precedence over the file.
*/
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/bastiangx/wordvocab/internal/cli"
	"github.com/bastiangx/wordvocab/internal/utils"
	"github.com/bastiangx/wordvocab/pkg/config"
	"github.com/bastiangx/wordvocab/pkg/dictionary"
	"github.com/bastiangx/wordvocab/pkg/server"
	"github.com/bastiangx/wordvocab/pkg/trie"
	"github.com/bastiangx/wordvocab/pkg/vocabulary"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const (
	Version = "0.1.0"
	AppName = "wordvocab"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main wires config, the word list and the chosen front end together.
func main() {
	sigHandler()

	showVersion := flag.Bool("version", false, "Show current version")
	configFile := flag.String("config", "", "Path to a TOML config file")
	dataDir := flag.String("data", "data/", "Directory containing word lists")
	wordList := flag.String("words", "", "Word list to load from the data dir (default from config)")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run CLI -- useful for testing and debugging")
	demoPrefix := flag.String("demo", "", "Print the first three words for this prefix and exit")
	buckets := flag.Int("k", -1, "Bucket width: keep words of length <= k+2 (default from config)")
	limit := flag.Int("limit", -1, "Number of words to print in CLI mode (default from config)")
	minPrefix := flag.Int("prmin", -1, "Minimum prefix length in CLI mode (default from config)")
	maxPrefix := flag.Int("prmax", -1, "Maximum prefix length in CLI mode (default from config)")
	noFilter := flag.Bool("no-filter", false, "Disable input filtering in CLI mode")
	backend := flag.String("backend", "", "Trie implementation: rway or patricia (default from config)")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	cfg, cfgPath := loadConfig(*configFile)
	log.Debugf("Using config file: (%s)", config.GetActiveConfigPath(cfgPath))

	if *wordList == "" {
		*wordList = cfg.Dict.WordList
	}
	if *backend == "" {
		*backend = cfg.Dict.Backend
	}

	vocab := vocabulary.New()
	t, err := newTrie(*backend)
	if err != nil {
		log.Fatalf("Invalid backend: %v", err)
	}
	vocab.SetTrie(t)

	resolvedDir := resolveDataDir(*dataDir, *wordList)
	if err := loadWords(vocab, resolvedDir, *wordList); err != nil {
		if errors.Is(err, dictionary.ErrResourceNotFound) {
			if lists, _ := dictionary.ListWordFiles(resolvedDir); len(lists) > 0 {
				log.Warnf("Available word lists in %s: %v", resolvedDir, lists)
			}
			log.Warn("No word list loaded, running with an empty vocabulary...")
		} else {
			log.Fatalf("Failed to load word list: %v", err)
		}
	}

	if *demoPrefix != "" {
		k := pick(*buckets, cfg.CLI.DefaultK)
		runDemo(vocab, *demoPrefix, k)
		return
	}

	if *cliMode {
		log.SetReportTimestamp(false)
		handler := cli.NewInputHandler(vocab,
			pick(*minPrefix, cfg.CLI.DefaultMinLen),
			pick(*maxPrefix, cfg.CLI.DefaultMaxLen),
			pick(*limit, cfg.CLI.DefaultLimit),
			pick(*buckets, cfg.CLI.DefaultK),
			*noFilter || cfg.CLI.DefaultNoFilter)
		if err := handler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
		return
	}

	if *buckets >= 0 {
		cfg.Server.DefaultK = *buckets
	}
	log.Debug("spawning IPC")
	srv := server.NewServer(vocab, cfg)
	if err := srv.Start(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// pick returns the flag value unless it was left at its negative default
func pick(flagValue, configValue int) int {
	if flagValue >= 0 {
		return flagValue
	}
	return configValue
}

// loadConfig honors -config, then the default location, then builtin defaults
func loadConfig(customPath string) (*config.Config, string) {
	cfg, path, err := config.LoadConfigWithPriority(customPath)
	if err != nil {
		log.Warnf("Failed to load config: %v. Using built-in defaults...", err)
		return config.DefaultConfig(), ""
	}
	return cfg, path
}

// resolveDataDir searches the usual locations for the word list
func resolveDataDir(dataDir, wordList string) string {
	resolver, err := utils.NewPathResolver()
	if err != nil {
		log.Warnf("Failed to initialize path resolver: %v", err)
		return dataDir
	}
	return resolver.GetDataDir(dataDir, wordList)
}

func newTrie(backend string) (trie.Trie, error) {
	switch backend {
	case config.BackendRWay:
		return trie.NewRWayTrie(), nil
	case config.BackendPatricia:
		return trie.NewPatriciaTrie(), nil
	default:
		return nil, fmt.Errorf("unknown backend %q (expected %s or %s)", backend, config.BackendRWay, config.BackendPatricia)
	}
}

func loadWords(vocab *vocabulary.Vocabulary, dir, name string) error {
	if err := dictionary.ValidateTextFile(filepath.Join(dir, name)); err != nil {
		return err
	}
	start := time.Now()
	added, err := vocab.LoadFrom(dictionary.NewDirSource(dir), name)
	if err != nil {
		return err
	}
	log.Debugf("Vocabulary loaded with %d words in %v", added, time.Since(start))
	return nil
}

// runDemo prints the first three matches for prefix.
func runDemo(vocab *vocabulary.Vocabulary, prefix string, k int) {
	printed := 0
	for w := range vocab.WordsWithPrefixK(prefix, k) {
		fmt.Println(w)
		printed++
		if printed == 3 {
			break
		}
	}
	if printed == 0 {
		log.Warnf("No words found for prefix: '%s'", prefix)
	}
}

func printVersion() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "",
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	logger.SetStyles(styles)

	logger.Print("")
	logger.Print("[ " + AppName + " ] prefix search over a lowercase vocabulary")
	logger.Print("", "version", Version)
	logger.Print("")
	logger.Print("use -h or --help to see available options")
}
