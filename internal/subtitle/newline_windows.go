//go:build windows

package subtitle

const newline = "\r\n"
