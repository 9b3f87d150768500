// Package pager renders paired subtitle entries as side-by-side tables,
// optionally stopping for keyboard input between tables.
package pager

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"golang.org/x/term"

	"slate/internal/subtitle"
)

const prompt = "> n(next) q(quit) 1~9(show next 1~9)"

// Pager writes entry tables to out and reads paging commands from in.
type Pager struct {
	out         io.Writer
	in          *bufio.Scanner
	interactive bool
	width       int
}

// New builds a pager. The table width is capped to the terminal when out
// is one. Interactive mode stops after each table and waits for a command;
// callers should pass interactive=false when out is not a terminal.
func New(out io.Writer, in io.Reader, interactive bool) *Pager {
	return &Pager{
		out:         out,
		in:          bufio.NewScanner(in),
		interactive: interactive,
		width:       outputWidth(out),
	}
}

// Compare renders the paired entries of left and right side by side, up to
// the length of the shorter document.
func (p *Pager) Compare(left, right *subtitle.Document) error {
	count := left.Len()
	if right.Len() < count {
		count = right.Len()
	}

	next := 0
	counter := 1
	for {
		for counter > 0 {
			if next >= count {
				break
			}
			fmt.Fprintln(p.out, p.entryTable(left.Entry(next), right.Entry(next)))
			next++
			if p.interactive {
				counter--
			}
		}
		if counter > 0 {
			return nil
		}

		fmt.Fprintln(p.out, prompt)
		if !p.in.Scan() {
			return p.in.Err()
		}
		switch input := strings.TrimSpace(p.in.Text()); input {
		case "n", "1":
			counter = 1
		case "q":
			return nil
		case "2", "3", "4", "5", "6", "7", "8", "9":
			counter = int(input[0] - '0')
		default:
			fmt.Fprintln(p.out, "invalid key input, retry")
		}
	}
}

func (p *Pager) entryTable(left, right subtitle.Entry) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	if p.width > 0 {
		tw.Style().Size.WidthMax = p.width
	}

	leftLines := left.Lines()
	rightLines := right.Lines()
	for i := range leftLines {
		tw.AppendRow(table.Row{leftLines[i], rightLines[i]})
	}
	return tw.Render()
}

func outputWidth(out io.Writer) int {
	file, ok := out.(*os.File)
	if !ok {
		return 0
	}
	width, _, err := term.GetSize(int(file.Fd()))
	if err != nil {
		return 0
	}
	return width
}
