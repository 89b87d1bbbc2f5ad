// Command wordpaste reads a Word clipboard HTML payload and writes the
// normalized fragment. With no input file it filters stdin to stdout.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/tsawler/wordpaste"
)

func main() {
	var (
		inPath     = flag.String("in", "", "input file (default stdin)")
		outPath    = flag.String("out", "", "output file (default stdout)")
		sanitize   = flag.Bool("sanitize", false, "sanitize the result for untrusted input")
		multiLevel = flag.Bool("multilevel", false, "mark legal-outline lists with the legal-list class")
		detectOnly = flag.Bool("detect", false, "print whether the input looks like Word HTML and exit")
	)
	flag.Parse()

	input, err := readInput(*inPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "wordpaste:", err)
		os.Exit(1)
	}

	if *detectOnly {
		fmt.Println(wordpaste.IsActive(string(input)))
		return
	}

	out := wordpaste.NormalizeWithOptions(wordpaste.DecodeClipboard(input), wordpaste.Options{
		MultiLevelLists: *multiLevel,
		Sanitize:        *sanitize,
	})

	if err := writeOutput(*outPath, out); err != nil {
		fmt.Fprintln(os.Stderr, "wordpaste:", err)
		os.Exit(1)
	}
}

func readInput(path string) ([]byte, error) {
	if path == "" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func writeOutput(path, content string) error {
	if path == "" {
		_, err := io.WriteString(os.Stdout, content)
		return err
	}
	return os.WriteFile(path, []byte(content), 0o644)
}
