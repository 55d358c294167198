// Copyright 2025 The WordServe Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the WordTrie completion server and CLI [DBG] application.

WordTrie keeps a set of terms in an in-memory prefix tree and returns every
stored term that starts with a typed prefix. It can run as a MessagePack IPC
server for editors and search boxes, or as a CLI for testing.

# Usage

Start the server seeded from word lists:

	wordtrie -seed words.txt,extra.msgpack

Run the CLI in debug mode:

	wordtrie -c -d -seed words.txt

Seed files are plain text (one term per line) or msgpack arrays of strings.
A directory seeds every such file inside it, in name order. Relative paths
are looked up in the working directory, next to the executable and in the
config directory.

# Configuration

Runtime configuration lives in a TOML file, created with defaults on first run:

	[server]
	max_limit = 64
	default_limit = 10
	min_prefix = 1
	max_prefix = 60
	enable_filter = false
	learn_on_submit = true
	recent_size = 256

	[dict]
	paths = ["words.txt"]
	max_words = 0

Flags override the file.

# Learning

Submitted terms are inserted into the tree unless -no-learn is given or
learn_on_submit is false, so a session picks up the terms its user searches
for. Nothing is written back to disk; the tree is rebuilt on every start.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/bastiangx/wordtrie/internal/cli"
	"github.com/bastiangx/wordtrie/internal/utils"
	"github.com/bastiangx/wordtrie/pkg/config"
	"github.com/bastiangx/wordtrie/pkg/dictionary"
	"github.com/bastiangx/wordtrie/pkg/server"
	"github.com/bastiangx/wordtrie/pkg/suggest"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const (
	Version = "0.3.0-beta"
	AppName = "wordtrie"
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

func main() {
	log.SetOutput(os.Stderr)
	sigHandler()
	defaults := config.DefaultConfig()

	showVersion := flag.Bool("version", false, "Show current version")
	configPath := flag.String("config", "", "Path to a config.toml (default: user config dir)")
	rebuildConfig := flag.Bool("rebuild-config", false, "Overwrite the default config.toml with defaults and exit")
	seeds := flag.String("seed", "", fmt.Sprintf("Comma separated seed files or directories, adds to dict.paths (%s)",
		strings.Join(dictionary.SupportedExtensions(), " ")))
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run CLI -- useful for testing and debugging")
	limit := flag.Int("limit", defaults.CLI.DefaultLimit, "Number of suggestions to return in CLI mode")
	minPrefix := flag.Int("prmin", defaults.CLI.DefaultMinLen, "Minimum prefix length for suggestions in CLI mode")
	maxPrefix := flag.Int("prmax", defaults.CLI.DefaultMaxLen, "Maximum prefix length for suggestions in CLI mode")
	noFilter := flag.Bool("no-filter", defaults.CLI.DefaultNoFilter, "Disable input filtering in CLI mode")
	wordLimit := flag.Int("words", -1, "Maximum number of words to hold (0 for no limit, default from config)")
	noLearn := flag.Bool("no-learn", false, "Do not insert submitted terms")

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

	if *rebuildConfig {
		path, err := config.RebuildConfigFile()
		if err != nil {
			log.Fatalf("Failed to rebuild config: %v", err)
		}
		log.Print("Config rebuilt", "path", path)
		return
	}

	appConfig, activePath, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Debugf("Using config: %s", config.GetActiveConfigPath(activePath))

	if *wordLimit >= 0 {
		appConfig.Dict.MaxWords = *wordLimit
	}
	if *noLearn {
		appConfig.Server.LearnOnSubmit = false
	}

	configDir := ""
	if activePath != "" {
		configDir = filepath.Dir(activePath)
	}
	paths := append(append([]string{}, appConfig.Dict.Paths...), utils.SplitList(*seeds)...)
	completer := buildCompleter(appConfig, configDir, paths)

	// CLI would be mainly used for testing and dbg purposes.
	if *cliMode {
		log.SetReportTimestamp(false)
		log.Debug("Input info:",
			"minPrefix", *minPrefix,
			"maxPrefix", *maxPrefix,
			"limit", *limit,
			"noFilter", *noFilter)

		inputHandler := cli.NewInputHandler(completer, *minPrefix, *maxPrefix, *limit, *noFilter)
		if err := inputHandler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
		return
	}

	log.Debug("spawning IPC")
	showStartupInfo(completer)

	srv := server.NewServer(completer, appConfig, os.Stdin, os.Stdout)
	if err := srv.Start(); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}

// buildCompleter seeds a completer from the resolved seed paths.
// Missing or broken seed files are logged and skipped.
func buildCompleter(cfg *config.Config, configDir string, paths []string) *suggest.Completer {
	completer := suggest.NewCompleter(cfg.CompleterOptions())
	if len(paths) == 0 {
		log.Warn("No seed files given, starting with an empty dictionary")
		return completer
	}

	resolver, err := utils.NewPathResolver(configDir)
	if err != nil {
		log.Errorf("Failed to initialize path resolver: %v", err)
		return completer
	}

	terms, stats, err := dictionary.LoadSeeds(resolver.ResolveAll(paths))
	if err != nil {
		log.Errorf("Failed to load seeds: %v", err)
	}
	for _, term := range terms {
		completer.AddWord(term)
	}
	log.Debug("Seeded dictionary",
		"files", stats.Files,
		"skipped", stats.Skipped,
		"terms", stats.Terms,
		"words", completer.Stats()["totalWords"])
	return completer
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
	logger.Print("[ WordTrie ] prefix completion from an in-memory trie")
	logger.Print("", "version", Version)
	logger.Print("")
	logger.Print("use -h or --help to see available options")
}

// showStartupInfo displays some basic info about the init process on stderr.
func showStartupInfo(completer *suggest.Completer) {
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	log.Infof("%s %s", AppName, Version)
	log.Infof("Process ID: [ %d ]", os.Getpid())
	log.Infof("words: %s", utils.FormatWithCommas(completer.Stats()["totalWords"]))
	log.Info("status: ready")

	log.SetLevel(currentLevel)
}
