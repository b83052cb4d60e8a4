// Package docs holds the user documentation, one markdown file per topic.
package docs

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

//go:embed *.md
var docs embed.FS

// index is the topic listing all the others.
const index = "readme"

// GetTopic returns the content of a documentation topic.
func GetTopic(topic string) (string, error) {
	content, err := docs.ReadFile(topic + ".md")
	if err != nil {
		return "", fmt.Errorf("topic %q not found, see 'skins topic' for the list: %w", topic, err)
	}
	return string(content), nil
}

// GetTopics returns the content of the topics, separated by a blank line.
// The topic "*" stands for all of them.
func GetTopics(topics ...string) (string, error) {
	var b strings.Builder
	for _, topic := range expand(topics) {
		content, err := GetTopic(topic)
		if err != nil {
			return "", err
		}
		b.WriteString(content)
		b.WriteString("\n")
	}
	return b.String(), nil
}

// expand replaces "*" by all the topics.
func expand(topics []string) []string {
	var expanded []string
	for _, topic := range topics {
		if topic != "*" {
			expanded = append(expanded, topic)
			continue
		}
		all, _ := GetAllTopics()
		expanded = append(expanded, all...)
	}
	return expanded
}

// GetAllTopics returns the sorted list of topics, the index excluded.
func GetAllTopics() ([]string, error) {
	entries, err := fs.ReadDir(docs, ".")
	if err != nil {
		return nil, err
	}
	var topics []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := strings.TrimSuffix(e.Name(), path.Ext(e.Name()))
		if name == index {
			continue
		}
		topics = append(topics, name)
	}
	sort.Strings(topics)
	return topics, nil
}
