package cmd

import (
	"github.com/etnz/skins/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion describes the command line for shell completion.
//
// Run `COMP_INSTALL=1 skins` to install it in the shell.
func Completion() *complete.Command {
	topics, _ := docs.GetAllTopics()
	return &complete.Command{
		Sub: map[string]*complete.Command{
			"report": {
				Flags: map[string]complete.Predictor{
					"mode":   predict.Set{"load", "import"},
					"cache":  predict.Nothing,
					"u":      predict.Nothing,
					"format": predict.Set{"table", "markdown", "json"},
				},
			},
			"topic":    {Args: predict.Set(append(topics, "*"))},
			"help":     {Args: predict.Set{"report", "topic", "help", "flags", "commands"}},
			"flags":    {},
			"commands": {},
		},
		Flags: map[string]complete.Predictor{
			"snapshot":    predict.Files("*.json"),
			"credentials": predict.Files("*"),
			"config":      predict.Files("*.yaml"),
			"no-color":    predict.Nothing,
			"v":           predict.Nothing,
		},
	}
}
