package renderer

import (
	"strings"
	"testing"

	"github.com/etnz/skins"
)

func TestMarkdown(t *testing.T) {
	md := Markdown(testReport(t))

	for _, want := range []string{
		"# Inventory Report on 2024-06-30\n",
		"| AK-47 | Redline | F.T. | Classified | $10.00USD | 2024-01-15 | $12.00USD | 2024-06-30 | $2.00USD | 20.00% |\n",
		"| M4A1-S | Printstream Case Hardened | M.W. | Covert |",
		"| AWP | Asiimov | B.S. | Covert | unknown | unknown | $85.50USD | 2024-06-29 | unknown | unknown |\n",
		"| **Total** | | | | **$110.00USD** | | **$92.00USD** | | **-$18.00USD** | **-16.36%** |\n",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("Markdown() does not contain %q:\n%s", want, md)
		}
	}
	if strings.Contains(md, "## Warnings") {
		t.Errorf("Markdown() has warnings:\n%s", md)
	}
	if strings.Contains(md, "\u001b[") {
		t.Errorf("Markdown() has escape sequences:\n%s", md)
	}
}

func TestMarkdown_Warnings(t *testing.T) {
	it := weapon(skins.Covert, "AWP", "Pipe | Dream", "Factory New", 10, "2024-01-01")
	r, err := skins.NewReport([]skins.Item{it}, skins.NewDate(2024, 6, 30), skins.DefaultConfig(), true)
	if err != nil {
		t.Fatalf("NewReport() error = %v", err)
	}
	md := Markdown(r)
	for _, want := range []string{
		`| AWP | Pipe \| Dream | F.N. |`,
		"*2024-01-01*",
		"\n## Warnings\n\n- price refresh requested",
		"\n- AWP | Pipe | Dream: latest price checked 181 days ago",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("Markdown() does not contain %q:\n%s", want, md)
		}
	}
}
