// Package guide embeds the lned help pages. The guide command renders them
// in the terminal and the lned_guide MCP tool returns them to the client.
package guide

import (
	"embed"
	"io/fs"
	"path"
	"slices"
	"strings"
)

// indexPage is the page shown when no topic is given.
const indexPage = "guide"

//go:embed *.md
var pages embed.FS

// Get returns the markdown for topic. An empty topic returns the main page,
// and a trailing ".md" is ignored.
func Get(topic string) (string, error) {
	topic = strings.TrimSuffix(topic, ".md")
	if topic == "" {
		topic = indexPage
	}
	data, err := fs.ReadFile(pages, topic+".md")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// List returns the topic names other than the main page, sorted.
func List() ([]string, error) {
	matches, err := fs.Glob(pages, "*.md")
	if err != nil {
		return nil, err
	}
	topics := make([]string, 0, len(matches))
	for _, m := range matches {
		if name := strings.TrimSuffix(path.Base(m), ".md"); name != indexPage {
			topics = append(topics, name)
		}
	}
	slices.Sort(topics)
	return topics, nil
}
