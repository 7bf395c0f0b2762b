// Package main runs the protac view inside a terminal.
//
// Usage:
//
//	go run ./cmd/protac_term [flags]
//
// Flags:
//
//	--log <file>   Write logs to file (the terminal belongs to the view)
//
// Controls:
//
//	Click / Space / Enter  - Tap
//	q / Esc / Ctrl-C       - Quit
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/decker502/protac/pkg/animator"
	"github.com/decker502/protac/pkg/app"
	"github.com/gdamore/tcell/v2"
)

var logFlag = flag.String("log", "", "Write logs to file")

func main() {
	flag.Parse()

	log.SetOutput(io.Discard)
	if *logFlag != "" {
		f, err := os.OpenFile(*logFlag, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	screen.EnableMouse()
	screen.HideCursor()
	defer screen.Fini()

	host := app.NewTerminalHost(screen, animator.NewScheduler())
	log.Printf("[protac_term] started")
	host.Run()
}
