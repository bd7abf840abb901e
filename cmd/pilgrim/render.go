package main

import (
	"fmt"
	"io"
)

const (
	ansiReset  = "\x1b[0m"
	ansiRed    = "\x1b[31m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
)

// printCount writes one "label: n" summary line, colorized on terminals when
// the count deserves attention.
func printCount(w io.Writer, label string, count int, color string) {
	line := fmt.Sprintf("  %-16s %d", label+":", count)
	if count > 0 && color != "" && shouldColorize(w) {
		line = color + line + ansiReset
	}
	fmt.Fprintln(w, line)
}
