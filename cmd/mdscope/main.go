// mdscope: SQL over markdown note collections.
//
// Usage:
//
//	mdscope serve              # Start MCP server (stdio transport)
//	mdscope index <dir>        # Scan a notes directory into the index
//	mdscope query "<sql>"      # Run a read-only query against the index
//	mdscope tools [name]       # Print tool documentation
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	mcpserver "github.com/mark3labs/mcp-go/server"
	flag "github.com/spf13/pflag"

	"github.com/mdscope/mdscope/internal/contract"
	"github.com/mdscope/mdscope/internal/index"
	"github.com/mdscope/mdscope/internal/server"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "serve":
		if err := runServe(os.Args[2:]); err != nil {
			fatal(err)
		}
	case "index":
		if err := runIndex(os.Args[2:]); err != nil {
			fatal(err)
		}
	case "query":
		if err := runQuery(os.Args[2:]); err != nil {
			fatal(err)
		}
	case "tools":
		if err := runTools(os.Args[2:]); err != nil {
			fatal(err)
		}
	case "--help", "-h", "help":
		printUsage()
	case "--version", "-v", "version":
		fmt.Printf("mdscope v%s\n", server.Version)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

func fatal(err error) {
	color.New(color.FgRed, color.Bold).Fprint(os.Stderr, "Error: ")
	fmt.Fprintf(os.Stderr, "%v\n", err)
	os.Exit(1)
}

func dataDirFlag(fs *flag.FlagSet) *string {
	return fs.String("data-dir", index.DefaultConfig().DataDir, "Directory holding the index database")
}

func runServe(args []string) error {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	dataDir := dataDirFlag(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}

	s, cleanup, err := server.New(index.Config{DataDir: *dataDir})
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}
	defer cleanup()

	// Stdio transport: stdout belongs to the protocol, diagnostics to stderr.
	if err := mcpserver.ServeStdio(s); err != nil {
		return fmt.Errorf("serving: %w", err)
	}
	return nil
}

func runIndex(args []string) error {
	fs := flag.NewFlagSet("index", flag.ExitOnError)
	dataDir := dataDirFlag(fs)
	rescan := fs.Bool("rescan", false, "Drop and rebuild the index before scanning")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return fmt.Errorf("usage: mdscope index [--rescan] <dir>")
	}

	store, err := index.New(index.Config{DataDir: *dataDir})
	if err != nil {
		return err
	}
	defer store.Close()

	if *rescan {
		if err := store.Reset(); err != nil {
			return err
		}
	}

	stats, err := store.IndexDir(context.Background(), fs.Arg(0))
	if err != nil {
		return err
	}

	color.New(color.FgGreen).Fprint(os.Stderr, "Indexed ")
	fmt.Fprintf(os.Stderr, "%d notes (%d removed, %d total)\n",
		stats.FilesIndexed, stats.FilesRemoved, stats.TotalFiles)
	return nil
}

func runQuery(args []string) error {
	fs := flag.NewFlagSet("query", flag.ExitOnError)
	dataDir := dataDirFlag(fs)
	format := fs.String("format", "table", "Output format: json, table, or csv")
	limit := fs.Int("limit", 0, "Row cap (0 = configured default)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return fmt.Errorf("usage: mdscope query [--format table] [--limit N] \"<sql>\"")
	}

	store, err := index.New(index.Config{DataDir: *dataDir})
	if err != nil {
		return err
	}
	defer store.Close()

	res, err := store.Query(context.Background(), fs.Arg(0), *limit)
	if err != nil {
		return err
	}
	out, err := index.FormatResult(res, *format)
	if err != nil {
		return err
	}
	fmt.Print(out)
	return nil
}

func runTools(args []string) error {
	fs := flag.NewFlagSet("tools", flag.ExitOnError)
	if err := fs.Parse(args); err != nil {
		return err
	}

	registry := contract.NewRegistry(contract.DefaultCatalog())
	docs := contract.NewDocProvider(registry)

	name := ""
	if fs.NArg() > 0 {
		name = fs.Arg(0)
	}
	out, err := json.MarshalIndent(docs.ToolDocumentation(name), "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

func printUsage() {
	fmt.Println(`mdscope — SQL over markdown note collections

Usage:
  mdscope serve [--data-dir DIR]                 Start the MCP server on stdio
  mdscope index [--rescan] <dir>                 Scan a notes directory
  mdscope query [--format F] [--limit N] "<sql>" Run a read-only SELECT
  mdscope tools [name]                           Print tool documentation
  mdscope version                                Print version`)
}
