/*
Package main runs the WordHunt hot/cold word-game engine.

A hidden target word is chosen from the vocabulary; every guess is scored
by its precomputed semantic similarity to the target and reported as a
rank, a percentile, and a hotness label. The similarity matrix is built
offline; at runtime the engine only indexes the file's line offsets and
point-reads one row per target change.

# Usage

Start the msgpack IPC server with default settings:

	wordhunt

Use custom data files and enable debug logs:

	wordhunt -similarity /path/similarity.txt -vocab /path/nouns.txt -d

Play interactively on the terminal:

	wordhunt -c

Force a known first target (debugging):

	wordhunt -c -target dog

# Configuration

Runtime configuration lives in a TOML file, auto-created on first run:

	[data]
	similarity_path = "data/similarity.txt"
	vocab_path = "data/common_nouns.txt"

	[game]
	soft_hint_limit = 3

	[cli]
	prefix_list_limit = 20

Flags override the config file; the config file overrides built-in
defaults.

# IPC Protocol

The server communicates via MessagePack over stdin/stdout. Actions:
"guess", "hint", "reveal", "new_target", "health". See pkg/server for
the message shapes.
*/
package main

import (
	"flag"
	"math/rand"
	"os"

	"github.com/charmbracelet/log"

	"github.com/sagnik31/wordhunt/internal/cli"
	"github.com/sagnik31/wordhunt/internal/logger"
	"github.com/sagnik31/wordhunt/pkg/config"
	"github.com/sagnik31/wordhunt/pkg/game"
	"github.com/sagnik31/wordhunt/pkg/server"
	"github.com/sagnik31/wordhunt/pkg/similarity"
)

func main() {
	similarityPath := flag.String("similarity", "", "Path to the similarity file (overrides config)")
	vocabPath := flag.String("vocab", "", "Path to the vocabulary file (overrides config)")
	configPath := flag.String("config", "", "Path to a custom config.toml")
	target := flag.String("target", "", "Force an explicit first target word")
	seed := flag.Int64("seed", 0, "Seed for target/hint randomness (0 = time-based)")
	cliMode := flag.Bool("c", false, "Run the interactive CLI instead of the IPC server")
	debug := flag.Bool("d", false, "Enable debug logging")
	flag.Parse()

	logger.SetupDefault(*debug)

	cfg, activePath, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Fatalf("Loading config: %v", err)
	}
	log.Debugf("Active config: %s", config.GetActiveConfigPath(activePath))

	if *similarityPath == "" {
		*similarityPath = cfg.Data.SimilarityPath
	}
	if *vocabPath == "" {
		*vocabPath = cfg.Data.VocabPath
	}

	vocab, err := game.LoadVocabulary(*vocabPath)
	if err != nil {
		log.Fatalf("Loading vocabulary: %v", err)
	}
	store, err := similarity.Open(*similarityPath)
	if err != nil {
		log.Fatalf("Indexing similarity data: %v", err)
	}
	log.Infof("Loaded %d vocabulary words, %d similarity rows", vocab.Len(), store.Len())

	var rng *rand.Rand
	if *seed != 0 {
		rng = rand.New(rand.NewSource(*seed))
	}
	session := game.NewSession(game.NewEngine(vocab, store, rng), cfg.Game.SoftHintLimit)
	if _, err := session.NewTarget(*target); err != nil {
		log.Fatalf("Selecting first target: %v", err)
	}

	if *cliMode {
		handler := cli.NewInputHandler(session, vocab, cfg.CLI.PrefixListLimit)
		if err := handler.Start(); err != nil {
			log.Errorf("CLI: %v", err)
			os.Exit(1)
		}
		return
	}

	srv := server.NewServer(session, vocab, store)
	if err := srv.Start(); err != nil {
		log.Errorf("Server: %v", err)
		os.Exit(1)
	}
}
