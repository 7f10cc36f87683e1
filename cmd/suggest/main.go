package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/SoySerhio507/Search-Filter/internal/suggest"
	"github.com/SoySerhio507/Search-Filter/internal/wordlist"
)

func main() {
	wordsPath := flag.String("wordlist", "Words.txt", "path to the word list")
	help := flag.Bool("help", false, "show help message")
	version := flag.Bool("version", false, "show version information")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.WarnLevel)

	if *help {
		showHelp()
		os.Exit(0)
	}
	if *version {
		showVersion()
		os.Exit(0)
	}
	if flag.NArg() == 0 {
		showHelp()
		os.Exit(1)
	}

	svc := buildService(*wordsPath)

	args := flag.Args()
	subcommand := args[0]
	subcommandArgs := args[1:]
	switch subcommand {
	case "suggest":
		handleSuggestCommand(svc, subcommandArgs)
	case "words":
		handleWordsCommand(svc)
	case "dump":
		handleDumpCommand(svc)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", subcommand)
		showHelp()
		os.Exit(1)
	}
}

func showHelp() {
	helpText := `Word suggestion CLI

Usage:
  suggest [flags] <command> [arguments]

Flags:
  --wordlist string   Path to the word list file (default "Words.txt")
  --help              Show this help message
  --version           Show version information

Commands:
  suggest <prefix>   Print every known word starting with <prefix>
  words              Print every known word
  dump               Print the indexed tree, one symbol per line
`
	fmt.Print(helpText)
}

func showVersion() {
	fmt.Println("suggest v0.1.0")
}

func buildService(path string) *suggest.Service {
	words, err := wordlist.Load(path)
	if err != nil {
		log.Fatal().Err(err).Str("path", path).Msg("failed to load wordlist")
	}

	svc := suggest.NewService(log.Logger)
	svc.Load(words)
	return svc
}

func handleSuggestCommand(svc *suggest.Service, args []string) {
	if len(args) == 0 {
		log.Fatal().Msg("please provide a prefix")
	}

	for _, word := range svc.Suggest(args[0]) {
		fmt.Println(word)
	}
}

func handleWordsCommand(svc *suggest.Service) {
	for _, word := range svc.Words() {
		fmt.Println(word)
	}
}

func handleDumpCommand(svc *suggest.Service) {
	fmt.Print(svc.Dump())
}
