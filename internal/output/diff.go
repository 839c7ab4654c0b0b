package output

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

// UnifiedDiff returns a unified diff between the current and proposed
// contents of path. Empty when they are equal. A missing file is passed as
// an empty current string and shown against /dev/null.
func UnifiedDiff(path, current, proposed string, exists bool) (string, error) {
	if exists && current == proposed {
		return "", nil
	}

	from := "a/" + path
	if !exists {
		from = "/dev/null"
	}

	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(current),
		B:        difflib.SplitLines(proposed),
		FromFile: from,
		ToFile:   "b/" + path,
		Context:  3,
	})
}

// ColorizeDiff styles a unified diff for the terminal.
func ColorizeDiff(diff string) string {
	added := lipglossFG(ColorGreen)
	removed := lipglossFG(ColorRed)

	var sb strings.Builder
	for _, line := range strings.SplitAfter(diff, "\n") {
		if line == "" {
			continue
		}
		body := strings.TrimSuffix(line, "\n")
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
			body = StyleSummary.Render(body)
		case strings.HasPrefix(line, "@@"):
			body = StyleHeader.Render(body)
		case strings.HasPrefix(line, "+"):
			body = added.Render(body)
		case strings.HasPrefix(line, "-"):
			body = removed.Render(body)
		}
		sb.WriteString(body)
		if strings.HasSuffix(line, "\n") {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
