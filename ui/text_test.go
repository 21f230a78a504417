package ui_test

import (
	"github.com/stretchr/testify/require"
	"github.com/themelab/create-shopify-theme/ui"
	"strings"
	"testing"
)

var keyValuesTest = []struct {
	name string
	in   map[string]string
	out  string
}{
	{
		name: "Nil map should print nothing",
		in:   nil,
		out:  "",
	},
	{
		name: "Empty map should print nothing",
		in:   map[string]string{},
		out:  "",
	},
	{
		name: "Output should always be alphabetical",
		in: map[string]string{
			"zzz": "ZZZ",
			"BBB": "bbb",
			"AAA": "aaa",
			"aaa": "AAA",
		},
		out: multiline(
			"AAA: aaa",
			"BBB: bbb",
			"aaa: AAA",
			"zzz: ZZZ",
		),
	},
	{
		name: "Varying lengths should align values",
		in: map[string]string{
			"A":   "aaa",
			"BB":  "bbbbbbbb",
			"CCC": "b",
		},
		out: multiline(
			"A:   aaa",
			"BB:  bbbbbbbb",
			"CCC: b",
		),
	},
	{
		name: "Super long keys should only pad others so much",
		in: map[string]string{
			"A": "aaa",
			"BBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBB": "bbbbbbbb",
			"CCC": "b",
		},
		out: multiline(
			"A:                                                  aaa",
			"BBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBBB: bbbbbbbb",
			"CCC:                                                b",
		),
	},
}

var unorderedListTest = []struct {
	name string
	in   []string
	out  string
}{
	{
		name: "Nil slice should print nothing",
		in:   nil,
		out:  "",
	},
	{
		name: "Empty slice should print nothing",
		in:   []string{},
		out:  "",
	},
	{
		name: "Generic output should work",
		in: []string{
			"Foo",
			"Bar",
			"Baz",
		},
		out: multiline(
			"- Foo",
			"- Bar",
			"- Baz",
		),
	},
}

var orderedListTest = []struct {
	name string
	in   []string
	out  string
}{
	{
		name: "Nil slice should print nothing",
		in:   nil,
		out:  "",
	},
	{
		name: "Empty slice should print nothing",
		in:   []string{},
		out:  "",
	},
	{
		name: "Generic output should work",
		in: []string{
			"Foo",
			"Bar",
			"Baz",
		},
		out: multiline(
			"1) Foo",
			"2) Bar",
			"3) Baz",
		),
	},
}

var truncateTest = []struct {
	name  string
	inStr string
	inLen int
	out   string
}{
	{
		name:  "Negative numbers work",
		inStr: "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ",
		inLen: -10,
		out:   "0...Z",
	},
	{
		name:  "Small length works",
		inStr: "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ",
		inLen: 1,
		out:   "0...Z",
	},
	{
		name:  "Odd length works",
		inStr: "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ",
		inLen: 10,
		out:   "0123...XYZ",
	},
	{
		name:  "Even length works",
		inStr: "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ",
		inLen: 11,
		out:   "0123...WXYZ",
	},
	{
		name:  "Full length works",
		inStr: "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ",
		inLen: 100,
		out:   "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ",
	},
	{
		name:  "Multi-byte runes are never split",
		inStr: "日本語のテーマテンプレートです",
		inLen: 10,
		out:   "日本語の...トです",
	},
}

func TestKeyValues(t *testing.T) {
	for _, tt := range keyValuesTest {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.out, ui.KeyValues(tt.in))
		})
	}
}

func TestUnorderedList(t *testing.T) {
	for _, tt := range unorderedListTest {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.out, ui.UnorderedList(tt.in))
		})
	}
}

func TestOrderedList(t *testing.T) {
	for _, tt := range orderedListTest {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.out, ui.OrderedList(tt.in))
		})
	}
}

func TestTruncate(t *testing.T) {
	for _, tt := range truncateTest {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.out, ui.Truncate(tt.inStr, tt.inLen))
		})
	}
}

// multiline provides a human-readable way to create a multiline block of text
func multiline(lines ...string) string {
	return strings.Join(lines, "\n") + "\n"
}
