package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"

	"github.com/xhad/bow/internal/logging"
	"github.com/xhad/bow/internal/models"
	cfgPkg "github.com/xhad/bow/pkg/config"
	"github.com/xhad/bow/pkg/export"
	"github.com/xhad/bow/pkg/loader"
	"github.com/xhad/bow/pkg/tokenizer"
	"github.com/xhad/bow/pkg/vectorizer"
)

type Config struct {
	TrainPath        string
	EncodePath       string
	MaxTerms         int
	StopWords        string
	StopWordFile     string
	DefaultStopWords bool
	Stem             bool
	Language         string
	Binary           bool
	Workers          int
	IDColumn         string
	CategoryColumn   string
	TextColumn       string
	VocabOut         string
	MatrixOut        string
	HoldoutMatrixOut string
	LogLevel         string
}

func main() {
	config := parseFlags()

	if err := run(config); err != nil {
		log.Fatal(err)
	}
}

func parseFlags() Config {
	var config Config
	var configPath string

	flag.StringVar(&configPath, "config", "", "Path to config file")
	flag.StringVar(&config.TrainPath, "train", "", "Tab-separated training corpus (vocabulary source)")
	flag.StringVar(&config.EncodePath, "encode", "", "Optional held-out corpus to encode against the vocabulary")
	flag.IntVar(&config.MaxTerms, "max-terms", 0, "Vocabulary size cap, 0 for unbounded")
	flag.StringVar(&config.StopWords, "stop-words", "", "Comma-separated stop words")
	flag.StringVar(&config.StopWordFile, "stop-word-file", "", "Stop-word file, one term per line")
	flag.BoolVar(&config.DefaultStopWords, "default-stop-words", false, "Apply the built-in English stop-word list")
	flag.BoolVar(&config.Stem, "stem", false, "Stem tokens before counting")
	flag.StringVar(&config.Language, "language", "english", "Stemmer language")
	flag.BoolVar(&config.Binary, "binary", false, "Clamp counts to 0/1")
	flag.IntVar(&config.Workers, "workers", 1, "Concurrent encoding workers")
	flag.StringVar(&config.VocabOut, "vocab-out", "vocabulary.tsv", "Vocabulary output path")
	flag.StringVar(&config.MatrixOut, "matrix-out", "matrix.tsv", "Training matrix output path")
	flag.StringVar(&config.HoldoutMatrixOut, "holdout-matrix-out", "holdout_matrix.tsv", "Held-out matrix output path")
	flag.StringVar(&config.LogLevel, "log-level", "info", "Log level")
	flag.Parse()

	setFlags := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) {
		setFlags[f.Name] = true
	})

	// Load config file if specified; flags given on the command line win.
	if cfg, err := cfgPkg.LoadConfig(configPath); err == nil {
		if !setFlags["max-terms"] {
			config.MaxTerms = cfg.Vectorizer.MaxTerms
		}
		if !setFlags["stop-words"] {
			config.StopWords = strings.Join(cfg.Vectorizer.StopWords, ",")
		}
		if !setFlags["stop-word-file"] {
			config.StopWordFile = cfg.Vectorizer.StopWordFile
		}
		if !setFlags["default-stop-words"] {
			config.DefaultStopWords = cfg.Vectorizer.DefaultStopWords
		}
		if !setFlags["binary"] {
			config.Binary = cfg.Vectorizer.Binary
		}
		if !setFlags["stem"] {
			config.Stem = cfg.Tokenizer.Stem
		}
		if !setFlags["language"] {
			config.Language = cfg.Tokenizer.Language
		}
		if !setFlags["workers"] {
			config.Workers = cfg.Runtime.Workers
		}
		if !setFlags["vocab-out"] {
			config.VocabOut = cfg.Output.VocabularyPath
		}
		if !setFlags["matrix-out"] {
			config.MatrixOut = cfg.Output.MatrixPath
		}
		if !setFlags["holdout-matrix-out"] {
			config.HoldoutMatrixOut = cfg.Output.HoldoutMatrixPath
		}
		if !setFlags["log-level"] {
			config.LogLevel = cfg.Runtime.LogLevel
		}
		config.IDColumn = cfg.Loader.IDColumn
		config.CategoryColumn = cfg.Loader.CategoryColumn
		config.TextColumn = cfg.Loader.TextColumn
	}

	return config
}

func getProgressBar(total int, description string) *progressbar.ProgressBar {
	return progressbar.NewOptions(total,
		progressbar.OptionSetDescription(color.BlueString(description)),
		progressbar.OptionSetItsString("docs"),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "█",
			SaucerHead:    "█",
			SaucerPadding: "░",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetRenderBlankState(true),
	)
}

func run(config Config) error {
	logger := logging.New(config.LogLevel)

	if config.TrainPath == "" {
		return fmt.Errorf("no training corpus given, use -train")
	}

	tok, err := tokenizer.NewWithConfig(tokenizer.Config{
		Stem:     config.Stem,
		Language: config.Language,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize tokenizer: %v", err)
	}
	defer tok.Close()

	stopWords := splitStopWords(config.StopWords)
	if config.StopWordFile != "" {
		fileWords, err := vectorizer.LoadStopWords(config.StopWordFile)
		if err != nil {
			return err
		}
		stopWords = append(stopWords, fileWords...)
	}

	vec := vectorizer.NewWithConfig(vectorizer.Config{
		MaxTerms:         config.MaxTerms,
		StopWords:        stopWords,
		DefaultStopWords: config.DefaultStopWords,
		Binary:           config.Binary,
		Workers:          config.Workers,
		Tokenizer:        tok,
	})

	corpusLoader := loader.NewWithConfig(loader.Config{
		IDColumn:       config.IDColumn,
		CategoryColumn: config.CategoryColumn,
		TextColumn:     config.TextColumn,
	})

	color.Blue("\nStarting vectorization pipeline for %s\n", config.TrainPath)

	train, err := corpusLoader.Load(config.TrainPath)
	if err != nil {
		return fmt.Errorf("failed to load training corpus: %v", err)
	}
	color.Green("✓ Loaded %d documents\n", len(train))

	vocab, err := vec.Build(train)
	if err != nil {
		return fmt.Errorf("failed to build vocabulary: %v", err)
	}
	color.Green("✓ Built vocabulary of %d terms\n", vocab.Len())
	logger.WithField("terms", vocab.Len()).Debug("vocabulary ready")

	if err := export.SaveVocabulary(config.VocabOut, vocab); err != nil {
		return err
	}

	encoded, err := encodeCorpus(vec, vocab, train, "🔢 Encoding training corpus...")
	if err != nil {
		return err
	}
	if err := export.SaveMatrix(config.MatrixOut, vocab, encoded); err != nil {
		return err
	}
	color.Green("✓ Wrote %s and %s\n", config.VocabOut, config.MatrixOut)

	// Held-out documents encode against the fixed vocabulary; they played
	// no part in building it.
	if config.EncodePath != "" {
		holdout, err := corpusLoader.Load(config.EncodePath)
		if err != nil {
			return fmt.Errorf("failed to load held-out corpus: %v", err)
		}
		color.Green("✓ Loaded %d held-out documents\n", len(holdout))

		encoded, err := encodeCorpus(vec, vocab, holdout, "🔢 Encoding held-out corpus...")
		if err != nil {
			return err
		}
		if err := export.SaveMatrix(config.HoldoutMatrixOut, vocab, encoded); err != nil {
			return err
		}
		color.Green("✓ Wrote %s\n", config.HoldoutMatrixOut)
	}

	return nil
}

func encodeCorpus(vec *vectorizer.Vectorizer, vocab *vectorizer.Vocabulary, corpus models.Corpus, description string) ([]models.EncodedDocument, error) {
	bar := getProgressBar(len(corpus), description)
	encoded := make([]models.EncodedDocument, 0, len(corpus))

	batchSize := 100
	for i := 0; i < len(corpus); i += batchSize {
		end := i + batchSize
		if end > len(corpus) {
			end = len(corpus)
		}
		batch := corpus[i:end]

		rows := vec.EncodeBatch(batch, vocab)
		for j, doc := range batch {
			encoded = append(encoded, models.EncodedDocument{Document: doc, Counts: rows[j]})
		}
		bar.Add(len(batch))
	}
	fmt.Print("\n")

	return encoded, nil
}

func splitStopWords(s string) []string {
	if s == "" {
		return nil
	}

	var words []string
	for _, word := range strings.Split(s, ",") {
		word = strings.TrimSpace(word)
		if word != "" {
			words = append(words, word)
		}
	}
	return words
}
