package repl

import (
	"strings"
	"testing"
)

func TestStart_EchoesTokens(t *testing.T) {
	in := strings.NewReader("let five = 5;\n")
	var out strings.Builder

	if err := Start(in, &out); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	got := out.String()

	for _, piece := range []string{`"Let"`, `"five"`, `"Assign"`, `"Int"`, `"Semicolon"`} {
		if !strings.Contains(got, piece) {
			t.Errorf("Expected output to contain %s, got:\n%s", piece, got)
		}
	}

	// One token per line: 5 tokens, Eof not echoed.
	lines := strings.Count(got, "\n")
	if lines != 5 {
		t.Errorf("Expected 5 token lines, got %d:\n%s", lines, got)
	}
}

func TestStart_PromptPerLine(t *testing.T) {
	in := strings.NewReader("x\ny\n")
	var out strings.Builder

	if err := Start(in, &out); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// One prompt per line read, plus the one pending when input ends.
	prompts := strings.Count(out.String(), Prompt)
	if prompts != 3 {
		t.Errorf("Expected 3 prompts, got %d", prompts)
	}
}

func TestStart_EmptyInput(t *testing.T) {
	in := strings.NewReader("")
	var out strings.Builder

	if err := Start(in, &out); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if out.String() != Prompt {
		t.Errorf("Expected a single prompt and nothing else, got %q", out.String())
	}
}

func TestStart_IllegalInputStillEchoes(t *testing.T) {
	in := strings.NewReader("@\n")
	var out strings.Builder

	if err := Start(in, &out); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if !strings.Contains(out.String(), `"Illegal"`) {
		t.Errorf("Expected an Illegal token in output, got:\n%s", out.String())
	}
}
