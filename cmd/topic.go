package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/skins/docs"
	"github.com/google/subcommands"
)

type topicCmd struct{}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "show documentation" }
func (*topicCmd) Usage() string {
	return `skins topic [<topic>...]

Show documentation for the given topics, "*" for all of them.
Without a topic, show the readme, which lists the topics.
`
}

func (c *topicCmd) SetFlags(f *flag.FlagSet) {}

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	doc, err := topicsDoc(f.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading doc: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(os.Stdout, doc)

	return subcommands.ExitSuccess
}

// topicsDoc returns the markdown of topics, or the readme if there are none.
func topicsDoc(topics []string) (string, error) {
	if len(topics) == 0 {
		topics = []string{"readme"}
	}
	return docs.GetTopics(topics...)
}
