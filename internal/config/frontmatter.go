// ABOUTME: YAML frontmatter parser for Markdown documents such as the CLI help page
// ABOUTME: Splits "---" delimited metadata from the body and decodes it into any type

package config

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

const fence = "---"

// ErrUnterminatedFrontmatter reports an opening fence with no closing one.
var ErrUnterminatedFrontmatter = errors.New("unterminated frontmatter")

// ParseFrontmatter decodes the YAML block at the top of doc into T and
// returns the remaining body. A document without a leading fence yields
// the zero T and doc unchanged.
func ParseFrontmatter[T any](doc string) (T, string, error) {
	var meta T

	text := strings.ReplaceAll(doc, "\r\n", "\n")
	rest, ok := strings.CutPrefix(text, fence+"\n")
	if !ok {
		return meta, doc, nil
	}

	var head, body string
	if after, empty := strings.CutPrefix(rest, fence); empty {
		body = after
	} else {
		head, body, ok = strings.Cut(rest, "\n"+fence)
		if !ok {
			return meta, "", ErrUnterminatedFrontmatter
		}
	}

	if err := yaml.Unmarshal([]byte(head), &meta); err != nil {
		return meta, "", fmt.Errorf("parsing frontmatter: %w", err)
	}
	return meta, strings.TrimPrefix(body, "\n"), nil
}
