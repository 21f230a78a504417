package ui

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/logrusorgru/aurora"
)

func Color(w io.Writer) aurora.Aurora {
	return aurora.NewAurora(SupportsANSICodes())
}

func Bold(text string) string {
	color := Color(os.Stdout)
	return color.Sprintf(color.Bold(text))
}

func RedText(text string) string {
	color := Color(os.Stdout)
	return color.Sprintf(color.Red(text))
}

func GreenText(text string) string {
	color := Color(os.Stdout)
	return color.Sprintf(color.Green(text))
}

func BlueText(text string) string {
	color := Color(os.Stdout)
	return color.Sprintf(color.Blue(text))
}

func MagentaText(text string) string {
	color := Color(os.Stdout)
	return color.Sprintf(color.Magenta(text))
}

// maxKeyPad caps how far short keys are padded when a single key is
// unreasonably long.
const maxKeyPad = 50

// KeyValues renders a map as aligned "key: value" lines, sorted by key.
func KeyValues(kv map[string]string) string {
	if len(kv) == 0 {
		return ""
	}

	keys := make([]string, 0, len(kv))
	longest := 0
	for k := range kv {
		keys = append(keys, k)
		if len(k) > longest {
			longest = len(k)
		}
	}
	sort.Strings(keys)

	if longest > maxKeyPad {
		longest = maxKeyPad
	}

	var b strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&b, "%-*s %s\n", longest+1, k+":", kv[k])
	}
	return b.String()
}

// UnorderedList renders items as "- item" lines.
func UnorderedList(items []string) string {
	var b strings.Builder
	for _, item := range items {
		fmt.Fprintf(&b, "- %s\n", item)
	}
	return b.String()
}

// OrderedList renders items as "1) item" lines.
func OrderedList(items []string) string {
	var b strings.Builder
	for i, item := range items {
		fmt.Fprintf(&b, "%d) %s\n", i+1, item)
	}
	return b.String()
}

// Truncate shortens s to at most n characters, eliding the middle.
// Counts runes, not bytes, so multi-byte text is never split.
func Truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	if n < 5 {
		n = 5
	}
	keep := n - 3
	head := (keep + 1) / 2
	tail := keep - head
	return string(runes[:head]) + "..." + string(runes[len(runes)-tail:])
}
