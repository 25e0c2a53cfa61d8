package main

import (
	"bufio"
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"go/format"
	"go/token"
	"io"
	"os"
	"strconv"
	"strings"
	"text/template"

	"github.com/delaneyj/toolbelt/bytebufferpool"
	"github.com/starfederation/chunktype-go"
)

const generatedHeader = "// Code generated by chunkgen; DO NOT EDIT."

//go:embed templates/known_gen.gotemplate
var knownGenTemplate string

type entry struct {
	Tag         chunktype.Tag
	Name        string
	Description string
}

// Literal renders the tag bytes as a Go composite literal body.
func (e entry) Literal() string {
	parts := make([]string, 0, chunktype.TagSize)
	for _, b := range e.Tag {
		parts = append(parts, strconv.QuoteRune(rune(b)))
	}
	return strings.Join(parts, ", ")
}

type templateData struct {
	PackageName string
	Entries     []entry
}

// parseTable reads "TAG Name Description..." lines. Blank lines and lines
// starting with '#' are ignored.
func parseTable(r io.Reader) ([]entry, error) {
	var entries []entry
	seenTags := make(map[chunktype.Tag]int)
	seenNames := make(map[string]int)

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 3 {
			return nil, fmt.Errorf("line %d: want TAG Name Description, got %q", lineNo, line)
		}
		tag, err := chunktype.ParseStrict(fields[0])
		if err != nil {
			return nil, fmt.Errorf("line %d: %q: %w", lineNo, fields[0], err)
		}
		name := fields[1]
		if !token.IsIdentifier(name) || !token.IsExported(name) {
			return nil, fmt.Errorf("line %d: name %q is not an exported Go identifier", lineNo, name)
		}
		if prev, ok := seenTags[tag]; ok {
			return nil, fmt.Errorf("line %d: duplicate chunk type %s (first on line %d)", lineNo, tag, prev)
		}
		if prev, ok := seenNames[name]; ok {
			return nil, fmt.Errorf("line %d: duplicate name %s (first on line %d)", lineNo, name, prev)
		}
		seenTags[tag] = lineNo
		seenNames[name] = lineNo
		entries = append(entries, entry{
			Tag:         tag,
			Name:        name,
			Description: strings.Join(fields[2:], " "),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, errors.New("no chunk types found")
	}
	return entries, nil
}

func generate(pkg string, entries []entry) ([]byte, error) {
	tmpl, err := template.New("known_gen").Parse(knownGenTemplate)
	if err != nil {
		return nil, err
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	if err := tmpl.Execute(buf, templateData{PackageName: pkg, Entries: entries}); err != nil {
		return nil, err
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, err
	}
	return formatted, nil
}

func writeFileIfChanged(filePath string, data []byte) (bool, error) {
	existing, err := os.ReadFile(filePath)
	if err == nil && bytes.Equal(existing, data) {
		return false, nil
	}
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return false, err
	}
	if err == nil && !bytes.HasPrefix(existing, []byte(generatedHeader)) {
		return false, fmt.Errorf("%s exists and was not generated by chunkgen", filePath)
	}
	if err := os.WriteFile(filePath, data, 0o644); err != nil {
		return false, err
	}
	return true, nil
}
