package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/variant"
)

func main() {
	var (
		alts        = flag.String("alts", "", "Comma-separated alternative types (e.g. u32,string,f64)")
		listTypes   = flag.Bool("types", false, "List supported type names and exit")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		debug       = flag.Bool("debug", false, "Enable debug logging")
	)
	flag.Parse()

	if *debug {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
		variant.SetLogger(logger)
	}

	if *listTypes {
		fmt.Println(strings.Join(builtinNames(), "\n"))
		return
	}

	if *interactive {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			fmt.Fprintln(os.Stderr, "Error: interactive mode needs a terminal")
			os.Exit(1)
		}
		if err := runInteractive(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *alts == "" {
		fmt.Fprintln(os.Stderr, "Usage: inspect -alts <type,type,...> [-debug]")
		fmt.Fprintln(os.Stderr, "       inspect -types")
		fmt.Fprintln(os.Stderr, "       inspect -i  (interactive mode)")
		os.Exit(1)
	}

	if err := run(*alts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(spec string) error {
	schema, names, err := buildSchema(spec)
	if err != nil {
		return err
	}

	fmt.Printf("Alternatives: %d\n", schema.Len())
	for i, name := range names {
		typ, _ := schema.TypeAt(uint32(i))
		fmt.Printf("  [%d] %-8s Go %s (size %d, align %d)\n", i, name, typ, typ.Size(), typ.Align())
	}

	layout := schema.Layout()
	fmt.Printf("\nDiscriminant: %d byte(s)\n", layout.DiscriminantSize)
	fmt.Printf("Payload:      size %d, align %d\n", layout.PayloadSize, layout.PayloadAlign)
	fmt.Printf("Storage cell: size %d, align %d\n", layout.CellSize, layout.CellAlign)
	return nil
}
