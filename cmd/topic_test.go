package cmd

import (
	"strings"
	"testing"

	"github.com/etnz/skins/docs"
)

func TestTopicsDoc_DefaultsToReadme(t *testing.T) {
	readme, err := docs.GetTopic("readme")
	if err != nil {
		t.Fatalf("GetTopic(readme) error = %v", err)
	}
	got, err := topicsDoc(nil)
	if err != nil {
		t.Fatalf("topicsDoc() error = %v", err)
	}
	if strings.TrimSpace(got) != strings.TrimSpace(readme) {
		t.Errorf("topicsDoc() = %q, want the readme", got)
	}
	if !strings.Contains((&topicCmd{}).Usage(), "readme") {
		t.Errorf("Usage() does not say that the readme is shown by default")
	}
}

func TestTopicsDoc_Unknown(t *testing.T) {
	if _, err := topicsDoc([]string{"no-such-topic"}); err == nil {
		t.Error("topicsDoc(no-such-topic) succeeded, want an error")
	}
}
