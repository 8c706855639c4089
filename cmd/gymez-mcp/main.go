package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	gymezmcp "github.com/claude/gymez/internal/mcp"
	"github.com/claude/gymez/internal/strength"
	"github.com/mark3labs/mcp-go/server"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	formulaName := flag.String("formula", "epley", "default formula for tool calls that omit one")
	flag.Parse()

	// stdout carries the protocol; logs go to stderr.
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	formula, err := strength.ParseFormula(*formulaName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Usage: gymez-mcp [-formula epley|brzycki|lander|lombardi|mayhew|oconner|wathen]\n")
		log.Error("invalid formula", "error", err)
		os.Exit(1)
	}

	s := gymezmcp.New(formula, Version, log)
	log.Info("MCP stdio server starting", "version", Version, "formula", formula.String())
	if err := server.ServeStdio(s); err != nil {
		log.Error("stdio server error", "error", err)
		os.Exit(1)
	}
}
