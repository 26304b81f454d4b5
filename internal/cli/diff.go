package cli

import (
	"strings"

	"github.com/vvka-141/umbrella/internal/tui"
	"github.com/vvka-141/umbrella/pkg/umbrella"
)

// renderDivergence formats the reconciliation difference sets as a +/- diff
// against the static include list. Styled when stderr is interactive, plain
// text otherwise.
func renderDivergence(result umbrella.ReconcileResult) string {
	return renderDivergenceStyled(result, tui.IsInteractive())
}

func renderDivergenceStyled(result umbrella.ReconcileResult, colored bool) string {
	var sb strings.Builder

	sb.WriteString("Static include list and scanned headers diverged.\n\n")

	if len(result.ExtraInScanned) > 0 {
		sb.WriteString("Headers on disk missing from the static list (add, in dependency order):\n")
		for _, d := range result.ExtraInScanned {
			sb.WriteString(diffLine("+ "+string(d), tui.DiffAddStyle.Render, colored))
		}
		sb.WriteString("\n")
	}

	if len(result.ExtraInStatic) > 0 {
		sb.WriteString("Static list entries with no matching header on disk (remove):\n")
		for _, d := range result.ExtraInStatic {
			sb.WriteString(diffLine("- "+string(d), tui.DiffDelStyle.Render, colored))
		}
		sb.WriteString("\n")
	}

	hint := "Update the static include list by hand; the dependency order of the\n" +
		"includes cannot be inferred, so nothing is merged automatically."
	if colored {
		hint = tui.HintStyle.Render(hint)
	}
	sb.WriteString(hint + "\n")

	return sb.String()
}

func diffLine(line string, render func(...string) string, colored bool) string {
	if colored {
		return render(line) + "\n"
	}
	return line + "\n"
}
