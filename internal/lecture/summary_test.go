package lecture

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/nguyentantai21042004/lecture-assistant/internal/gemini"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "mixed markdown",
			in:   "### Title\n**bold** and *italic* and `code`\n\n\n\nmore",
			want: "Title\nbold and italic and code\n\nmore",
		},
		{"deep heading", "#### Key Concepts\n- one", "Key Concepts\n- one"},
		{"short headings", "# Title\n## Section\ntext", "Title\nSection\ntext"},
		{"bold before italic", "***very*** important", "very important"},
		{"surrounding whitespace", "\n\n  plain text  \n\n", "plain text"},
		{"dash bullets kept", "- first\n- second", "- first\n- second"},
		{"hash without space kept", "C#, issue #42", "C#, issue #42"},
		{"fragments joined by emphasis", "#*##Title", "Title"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.in); got != tt.want {
				t.Errorf("Sanitize() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSanitizeRemovesMarkers(t *testing.T) {
	got := Sanitize("### Title\n**bold** and *italic* and `code`\n\n\n\nmore")
	for _, marker := range []string{"#", "*", "`", "\n\n\n"} {
		if strings.Contains(got, marker) {
			t.Errorf("Sanitize() output %q contains %q", got, marker)
		}
	}
	if !strings.Contains(got, "\n\nmore") {
		t.Errorf("Sanitize() output %q should keep a double newline", got)
	}
}

func TestSanitizeIdempotent(t *testing.T) {
	inputs := []string{
		"### Title\n**bold** and *italic* and `code`\n\n\n\nmore",
		"#*##x",
		"##\n\n\n\n# a ** b *\n\n\n`c`",
		"   ",
		"# \n#\t#  \n\n\n\n\n***",
		"plain",
	}

	for _, in := range inputs {
		once := Sanitize(in)
		twice := Sanitize(once)
		if once != twice {
			t.Errorf("Sanitize not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestGenerateSummary(t *testing.T) {
	fake := gemini.NewFakeText("## Photosynthesis\n\n\n**Key concepts**\n- Light reactions")
	a := newTestAssistant(fake)

	got, err := a.GenerateSummary(context.Background(), "Plants convert light into energy.")
	if err != nil {
		t.Fatalf("GenerateSummary() error = %v", err)
	}
	if got != "Photosynthesis\n\nKey concepts\n- Light reactions" {
		t.Errorf("GenerateSummary() = %q", got)
	}

	parts := fake.LastCall()
	if len(parts) != 1 || !strings.Contains(parts[0].Text, "Plants convert light into energy.") {
		t.Errorf("prompt does not embed the transcript: %+v", parts)
	}
	if !strings.Contains(parts[0].Text, "200-400 words") {
		t.Error("prompt should bound the summary length")
	}
}

func TestGenerateSummaryTranscriptWithPercent(t *testing.T) {
	fake := gemini.NewFakeText("ok")
	a := newTestAssistant(fake)

	if _, err := a.GenerateSummary(context.Background(), "Growth was 50%d of %s"); err != nil {
		t.Fatalf("GenerateSummary() error = %v", err)
	}
	if !strings.Contains(fake.LastCall()[0].Text, "Growth was 50%d of %s") {
		t.Error("transcript should be embedded verbatim")
	}
}

func TestGenerateSummaryErrors(t *testing.T) {
	t.Run("blank transcript", func(t *testing.T) {
		fake := gemini.NewFakeText("unused")
		a := newTestAssistant(fake)
		if _, err := a.GenerateSummary(context.Background(), "  "); !errors.Is(err, ErrEmptyInput) {
			t.Errorf("error = %v, want ErrEmptyInput", err)
		}
		if fake.CallCount() != 0 {
			t.Errorf("calls = %d, want 0", fake.CallCount())
		}
	})

	t.Run("missing credential", func(t *testing.T) {
		a := New(testConfig(), nil, nopLogger(), nil)
		if _, err := a.GenerateSummary(context.Background(), "text"); !errors.Is(err, gemini.ErrMissingCredential) {
			t.Errorf("error = %v, want ErrMissingCredential", err)
		}
	})

	t.Run("retries exhausted", func(t *testing.T) {
		fake := gemini.NewFake(func(int, []gemini.Part) (string, error) { return "", errRateLimited })
		a := newTestAssistant(fake)
		if _, err := a.GenerateSummary(context.Background(), "text"); err != errRateLimited {
			t.Errorf("error = %v, want %v", err, errRateLimited)
		}
		if fake.CallCount() != 4 {
			t.Errorf("calls = %d, want 4", fake.CallCount())
		}
	})
}

func TestGenerateExplanationIsSummary(t *testing.T) {
	a := newTestAssistant(gemini.NewFakeText("**Summary**"))
	got, err := a.GenerateExplanation(context.Background(), "text")
	if err != nil || got != "Summary" {
		t.Errorf("GenerateExplanation() = %q, %v", got, err)
	}
}
