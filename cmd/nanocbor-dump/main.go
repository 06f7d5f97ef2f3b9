// Command nanocbor-dump pretty-prints a CBOR-encoded file to stdout, as a
// diagnostic aid for inspecting wire data produced or consumed by the
// library. It is an external collaborator of the cbor package, not part of
// its public API.
package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/nanocbor-go/nanocbor/cbor"
)

// CLI defines the nanocbor-dump command-line interface.
type CLI struct {
	Input      string `short:"i" help:"Input file, - for stdin" default:"-"`
	Hex        bool   `short:"x" help:"Treat input as hex text rather than raw bytes"`
	Pretty     bool   `short:"p" help:"Indent nested containers" default:"true"`
	Packed     bool   `short:"k" help:"Enable packed-CBOR unpacking"`
	StrictUTF8 bool   `short:"u" help:"Reject text strings that are not well-formed UTF-8"`
}

func main() {
	var cli CLI
	kong.Parse(&cli,
		kong.Name("nanocbor-dump"),
		kong.Description("Pretty-print a CBOR item stream."),
	)

	if err := run(&cli); err != nil {
		fmt.Fprintln(os.Stderr, "nanocbor-dump:", err)
		os.Exit(1)
	}
}

func run(cli *CLI) error {
	raw, err := readInput(cli.Input)
	if err != nil {
		return err
	}
	if cli.Hex {
		raw, err = hex.DecodeString(strings.TrimSpace(string(raw)))
		if err != nil {
			return fmt.Errorf("decode hex input: %w", err)
		}
	}

	var c *cbor.Cursor
	if cli.Packed {
		c = cbor.NewPackedCursor(raw)
	} else {
		c = cbor.NewCursor(raw)
	}

	p := dumper{pretty: cli.Pretty, strictUTF8: cli.StrictUTF8}
	return p.items(c, 0)
}

func readInput(path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
