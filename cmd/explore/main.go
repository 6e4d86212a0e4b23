package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"
	"golang.org/x/term"
)

func main() {
	var (
		alts        = flag.String("alts", "", "Alternative types, comma-separated (int,float64,string)")
		value       = flag.String("value", "", "Go literal to store (42, 1.5, \"text\", uint8(7))")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		verbose     = flag.Bool("v", false, "Verbose logging")
	)
	flag.Parse()

	log := zap.NewNop()
	if *verbose {
		if l, err := zap.NewDevelopment(); err == nil {
			log = l
		}
	}
	defer func() { _ = log.Sync() }()
	SetLogger(log)

	if *interactive || (*alts == "" && term.IsTerminal(int(os.Stdin.Fd()))) {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode needs a terminal")
			os.Exit(1)
		}
		if err := runInteractive(*alts, *value); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *alts == "" || *value == "" {
		fmt.Fprintln(os.Stderr, "Usage: explore -alts <types> -value <literal>")
		fmt.Fprintln(os.Stderr, "       explore -i  (interactive mode)")
		os.Exit(1)
	}

	r, err := resolve(*alts, *value)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Print(r.String())
}
