// ABOUTME: Help command rendering the embedded usage page with glamour
// ABOUTME: The page's YAML frontmatter supplies the command summary table

package main

import (
	"context"
	_ "embed"
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/mauromedda/termpix/internal/config"
)

//go:embed usage.md
var usageDoc string

const helpWrap = 80

type helpMeta struct {
	Title    string `yaml:"title"`
	Summary  string `yaml:"summary"`
	Commands []struct {
		Name  string `yaml:"name"`
		Usage string `yaml:"usage"`
		About string `yaml:"about"`
	} `yaml:"commands"`
}

// helpMarkdown returns the usage page with the command table inserted
// after its first heading.
func helpMarkdown() (string, error) {
	meta, body, err := config.ParseFrontmatter[helpMeta](usageDoc)
	if err != nil {
		return "", fmt.Errorf("help: %w", err)
	}

	var table strings.Builder
	table.WriteString("## Commands\n\n| Command | Description |\n|---|---|\n")
	for _, c := range meta.Commands {
		fmt.Fprintf(&table, "| `%s` | %s |\n", c.Usage, c.About)
	}

	head, rest, ok := strings.Cut(body, "\n## ")
	if !ok {
		return body + "\n" + table.String(), nil
	}
	return head + "\n" + table.String() + "\n## " + rest, nil
}

func runHelp(_ context.Context, e *env, _ []string) error {
	md, err := helpMarkdown()
	if err != nil {
		return err
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(helpWrap),
	)
	if err != nil {
		fmt.Fprint(e.stdout, md)
		return nil
	}
	out, err := renderer.Render(md)
	if err != nil {
		fmt.Fprint(e.stdout, md)
		return nil
	}
	fmt.Fprint(e.stdout, strings.TrimRight(out, "\n ")+"\n")
	return nil
}
