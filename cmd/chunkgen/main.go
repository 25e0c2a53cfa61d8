package main

import (
	"log"
	"os"

	"github.com/alecthomas/kong"
)

type cli struct {
	In      string `help:"Chunk type table to read." default:"known_chunks.txt" type:"existingfile"`
	Out     string `help:"Go file to write." default:"known_gen.go"`
	Package string `help:"Package name of the generated file." default:"chunktype"`
}

func main() {
	log.SetFlags(0)

	var args cli
	kong.Parse(&args,
		kong.Name("chunkgen"),
		kong.Description("Generate the registered chunk type table."),
		kong.UsageOnError(),
	)

	f, err := os.Open(args.In)
	if err != nil {
		log.Fatal(err)
	}
	entries, err := parseTable(f)
	f.Close()
	if err != nil {
		log.Fatalf("chunkgen: %s: %v", args.In, err)
	}

	src, err := generate(args.Package, entries)
	if err != nil {
		log.Fatal(err)
	}

	changed, err := writeFileIfChanged(args.Out, src)
	if err != nil {
		log.Fatal(err)
	}
	if changed {
		log.Printf("chunkgen: wrote %d chunk type(s) to %s", len(entries), args.Out)
	} else {
		log.Printf("chunkgen: no changes")
	}
}
