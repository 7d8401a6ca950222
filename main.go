package main

import (
	"fmt"
	"os"

	"git.sr.ht/~sircmpwn/getopt"

	"github.com/krisys/PL241-MCS-Compiler/ast"
	"github.com/krisys/PL241-MCS-Compiler/grammar"
	"github.com/krisys/PL241-MCS-Compiler/log"
	"github.com/krisys/PL241-MCS-Compiler/parser"
)

func main() {
	log.CrashOnError = true

	opts, optind, err := getopt.Getopts(os.Args, "c:dgt")
	if err != nil {
		usage()
	}

	var cfgPath string
	var debug, tree bool
	for _, opt := range opts {
		switch opt.Option {
		case 'c':
			cfgPath = opt.Value
		case 'd':
			debug = true
		case 'g':
			fmt.Println(grammar.Version)
			return
		case 't':
			tree = true
		}
	}

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		log.Err("%s", err)
	}
	// Flags raise settings; the config file never lowers them.
	cfg.Debug = cfg.Debug || debug
	cfg.Tree = cfg.Tree || tree
	log.Verbose = cfg.Debug

	if cfg.Grammar != "" {
		if err := grammar.Check(cfg.Grammar); err != nil {
			log.Err("%s", err)
		}
	}

	args := os.Args[optind:]
	if len(args) == 0 {
		usage()
	}

	// Several files are accepted but only the first is parsed.  The file
	// is read whole and closed before tokenizing starts.
	src, err := os.ReadFile(args[0])
	if err != nil {
		log.Err("%s", err)
	}

	root, err := parser.Parse(string(src))
	if err != nil {
		log.Err("%s", err)
	}

	if cfg.Tree {
		fmt.Print(ast.Render(root))
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [-dgt] [-c config] file ...\n", os.Args[0])
	os.Exit(1)
}
