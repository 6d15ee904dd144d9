package cli

import (
	"strings"
	"testing"

	"pgregory.net/rapid"
)

// Property: the command table is the whole language. Any input whose
// normalized form is not a table key classifies as CmdUnknown, and any
// input whose normalized form is a table key classifies as that entry.
func TestProperty_ParserMatchesTableExactly(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		input := rapid.String().Draw(rt, "input")

		normalized := strings.ToLower(strings.TrimSpace(input))
		got := ParseCommand(input)

		want, inTable := commandTable[normalized]
		if !inTable {
			want = CmdUnknown
		}
		if got != want {
			rt.Fatalf("ParseCommand(%q) = %s, want %s", input, got, want)
		}
	})
}
