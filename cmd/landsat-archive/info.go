package main

import (
	"fmt"
	"log"
	"sort"

	"github.com/tobijjah/landsat-archive/archive"
	"github.com/tobijjah/landsat-archive/util"
	cli "gopkg.in/urfave/cli.v1"
)

//infoAction resolves a single source and prints a plain text report about it.
func infoAction(c *cli.Context) {
	source := c.Args().First()
	if source == "" {
		log.Fatal("No source given. Usage: landsat-archive info <dir|MTL file|archive>")
	}

	extractTo := c.String("extract-to")
	if extractTo == "" {
		extractTo = util.GetExtractDir()
	}
	pattern := c.String("pattern")
	if pattern == "" {
		pattern = util.GetMetadataPattern()
	}

	resolved, err := archive.Read(source, &archive.Options{
		ExtractTo:       extractTo,
		Alias:           c.String("alias"),
		MetadataPattern: pattern,
	})
	if err != nil {
		log.Fatalf("Could not resolve %s: %v", source, err)
	}

	if band := c.String("band"); band != "" {
		path, err := resolved.BandFile(band)
		if err != nil {
			log.Fatalf("Could not resolve band %s: %v", band, err)
		}
		fmt.Println(path)
		return
	}

	printReport(resolved)
}

func printReport(resolved *archive.Archive) {
	fmt.Println("Directory:", resolved.Dir)
	fmt.Println("Metadata: ", resolved.Metadata.Path())
	if resolved.Alias != "" {
		fmt.Println("Alias:    ", resolved.Alias)
	}

	for _, group := range resolved.Metadata.Groups() {
		fmt.Printf("\n[%s]\n", group)
		fields, err := resolved.Metadata.IterGroup(group)
		if err != nil {
			continue
		}
		for _, field := range fields {
			fmt.Printf("  %s = %v\n", field.Key, field.Value)
		}
	}

	fmt.Println("\nBands:")
	for _, code := range resolved.Bands() {
		path, _ := resolved.BandFile(code)
		fmt.Printf("  %-10s %s\n", code, path)
	}

	mapping := resolved.Mapping()
	aliases := make([]string, 0, len(mapping))
	for alias := range mapping {
		aliases = append(aliases, alias)
	}
	sort.Strings(aliases)

	fmt.Println("\nAliases:")
	for _, alias := range aliases {
		fmt.Printf("  %-12s -> %s\n", alias, mapping[alias])
	}
}
