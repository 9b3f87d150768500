//go:build !windows

package subtitle

const newline = "\n"
