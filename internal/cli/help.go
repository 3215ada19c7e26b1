package cli

import (
	"regexp"
	"strings"

	"github.com/spf13/cobra"
)

// helpRule colors one kind of line in cobra's usage output.
type helpRule struct {
	re *regexp.Regexp
	// trim matches against the line without surrounding whitespace.
	trim  bool
	paint func(m []string) string
}

// Rules are tried in order; the first match wins. Unmatched lines are plain text.
var helpRules = []helpRule{
	// "Usage:", "Available Commands:", "Flags:"
	{regexp.MustCompile(`^[A-Z][A-Za-z ]+:$`), true, func(m []string) string { return Info(m[0]) }},
	// Use "morning [command] --help" for more information about a command.
	{regexp.MustCompile(`^Use ".*$`), true, func(m []string) string { return Silent(m[0]) }},
	// "  -m, --message string   message text"
	{regexp.MustCompile(`^( +)(-.+?)( {2,}.*)$`), false, func(m []string) string { return m[1] + Primary(m[2]) + Text(m[3]) }},
	// "  next        Schedule or revise a message"
	{regexp.MustCompile(`^( {2})(\S+)(\s{2,}.*)$`), false, func(m []string) string { return m[1] + Primary(m[2]) + Text(m[3]) }},
}

// colorizedHelpFunc renders cobra's default usage with color applied line by line.
func colorizedHelpFunc() func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, _ []string) {
		out := cmd.OutOrStdout()

		var buf strings.Builder
		cmd.SetOut(&buf)
		cmd.InitDefaultHelpFlag()
		if cmd.Long != "" {
			buf.WriteString(cmd.Long + "\n\n")
		}
		_ = cmd.Usage()
		cmd.SetOut(out)

		lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
		for i, line := range lines {
			lines[i] = colorizeLine(line)
		}
		cmd.Print(strings.Join(lines, "\n") + "\n")
	}
}

func colorizeLine(line string) string {
	for _, rule := range helpRules {
		subject := line
		if rule.trim {
			subject = strings.TrimSpace(line)
		}
		if m := rule.re.FindStringSubmatch(subject); m != nil {
			return rule.paint(m)
		}
	}
	return Text(line)
}
