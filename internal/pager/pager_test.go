package pager

import (
	"bytes"
	"strings"
	"testing"

	"slate/internal/subtitle"
)

const leftSRT = "1\n00:00:01,000 --> 00:00:02,000\nfirst left\n\n" +
	"2\n00:00:03,000 --> 00:00:04,000\nsecond left\n\n" +
	"3\n00:00:05,000 --> 00:00:06,000\nthird left\n\n"

const rightSRT = "1\n00:00:01,500 --> 00:00:02,500\nfirst right\n\n" +
	"2\n00:00:03,500 --> 00:00:04,500\nsecond right\n\n" +
	"3\n00:00:05,500 --> 00:00:06,500\nthird right\n\n"

func mustRead(t *testing.T, content string) *subtitle.Document {
	t.Helper()
	doc, err := subtitle.Read(strings.NewReader(content))
	if err != nil {
		t.Fatalf("failed to read fixture: %v", err)
	}
	return doc
}

func TestCompareNonInteractive(t *testing.T) {
	out := &bytes.Buffer{}
	p := New(out, strings.NewReader(""), false)

	if err := p.Compare(mustRead(t, leftSRT), mustRead(t, rightSRT)); err != nil {
		t.Fatalf("compare failed: %v", err)
	}

	rendered := out.String()
	for _, want := range []string{
		"first left", "first right",
		"second left", "second right",
		"third left", "third right",
		"00:00:01,000 --> 00:00:02,000",
		"00:00:01,500 --> 00:00:02,500",
	} {
		if !strings.Contains(rendered, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if strings.Contains(rendered, "n(next)") {
		t.Error("prompt printed in non-interactive mode")
	}
}

func TestComparePairsToShorterDocument(t *testing.T) {
	right := "1\n00:00:01,500 --> 00:00:02,500\nfirst right\n\n"
	out := &bytes.Buffer{}
	p := New(out, strings.NewReader(""), false)

	if err := p.Compare(mustRead(t, leftSRT), mustRead(t, right)); err != nil {
		t.Fatalf("compare failed: %v", err)
	}

	rendered := out.String()
	if !strings.Contains(rendered, "first left") {
		t.Error("first pair missing from output")
	}
	if strings.Contains(rendered, "second left") {
		t.Error("unpaired entry rendered")
	}
}

func TestCompareEmptyDocuments(t *testing.T) {
	out := &bytes.Buffer{}
	p := New(out, strings.NewReader(""), false)

	if err := p.Compare(mustRead(t, ""), mustRead(t, "")); err != nil {
		t.Fatalf("compare failed: %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("expected no output, got %q", out.String())
	}
}

func TestCompareInteractiveQuit(t *testing.T) {
	out := &bytes.Buffer{}
	p := New(out, strings.NewReader("q\n"), true)

	if err := p.Compare(mustRead(t, leftSRT), mustRead(t, rightSRT)); err != nil {
		t.Fatalf("compare failed: %v", err)
	}

	rendered := out.String()
	if !strings.Contains(rendered, "first left") {
		t.Error("first pair missing from output")
	}
	if strings.Contains(rendered, "second left") {
		t.Error("second pair rendered after quit")
	}
	if !strings.Contains(rendered, "n(next)") {
		t.Error("prompt missing in interactive mode")
	}
}

func TestCompareInteractiveNext(t *testing.T) {
	out := &bytes.Buffer{}
	p := New(out, strings.NewReader("n\nn\nq\n"), true)

	if err := p.Compare(mustRead(t, leftSRT), mustRead(t, rightSRT)); err != nil {
		t.Fatalf("compare failed: %v", err)
	}

	rendered := out.String()
	for _, want := range []string{"first left", "second left", "third left"} {
		if !strings.Contains(rendered, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if got := strings.Count(rendered, "n(next)"); got != 3 {
		t.Errorf("expected 3 prompts, got %d", got)
	}
}

func TestCompareInteractiveBatch(t *testing.T) {
	out := &bytes.Buffer{}
	p := New(out, strings.NewReader("2\n"), true)

	if err := p.Compare(mustRead(t, leftSRT), mustRead(t, rightSRT)); err != nil {
		t.Fatalf("compare failed: %v", err)
	}

	rendered := out.String()
	for _, want := range []string{"first left", "second left", "third left"} {
		if !strings.Contains(rendered, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestCompareInteractiveInvalidInput(t *testing.T) {
	out := &bytes.Buffer{}
	p := New(out, strings.NewReader("x\nq\n"), true)

	if err := p.Compare(mustRead(t, leftSRT), mustRead(t, rightSRT)); err != nil {
		t.Fatalf("compare failed: %v", err)
	}

	rendered := out.String()
	if !strings.Contains(rendered, "invalid key input, retry") {
		t.Error("invalid input not reported")
	}
	if strings.Contains(rendered, "second left") {
		t.Error("invalid input advanced the pager")
	}
}

func TestCompareInteractiveEndOfInput(t *testing.T) {
	out := &bytes.Buffer{}
	p := New(out, strings.NewReader(""), true)

	if err := p.Compare(mustRead(t, leftSRT), mustRead(t, rightSRT)); err != nil {
		t.Fatalf("compare failed: %v", err)
	}
	if !strings.Contains(out.String(), "first left") {
		t.Error("first pair missing from output")
	}
}
