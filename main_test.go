package main

import (
	"os"
	"strings"
	"testing"

	"github.com/krisys/PL241-MCS-Compiler/ast"
	"github.com/krisys/PL241-MCS-Compiler/parser"
)

func TestLoadConfig(t *testing.T) {
	cfg, err := loadConfig("testdata/config.toml")
	if err != nil {
		t.Fatalf("loadConfig failed: %s", err)
	}
	if !cfg.Debug || !cfg.Tree {
		t.Errorf("Expected debug and tree to be set but got %+v", cfg)
	}
	if cfg.Grammar != ">= 2, < 3" {
		t.Errorf("Expected a grammar constraint but got ‘%s’", cfg.Grammar)
	}

	cfg, err = loadConfig("")
	if err != nil {
		t.Fatalf("Expected no error without a config file but got ‘%s’", err)
	}
	if cfg.Debug || cfg.Tree || cfg.Grammar != "" {
		t.Errorf("Expected the zero config but got %+v", cfg)
	}

	if _, err := loadConfig("testdata/no-such-file.toml"); err == nil {
		t.Errorf("Expected an error for a missing config file but got none")
	}
}

func TestParseExample(t *testing.T) {
	src, err := os.ReadFile("testdata/example.pl241")
	if err != nil {
		t.Fatalf("ReadFile failed: %s", err)
	}

	root, err := parser.Parse(string(src))
	if err != nil {
		t.Fatalf("Parse failed: %s", err)
	}
	if root.Type != ast.Keyword || root.Label != "main" {
		t.Fatalf("Expected a ‘main’ keyword root but got %s", root)
	}

	s := ast.Render(root)
	for _, label := range []string{"add", "clear", "while", "<-"} {
		if !strings.Contains(s, label) {
			t.Errorf("Expected the render to contain ‘%s’ but it did not", label)
		}
	}
}
