package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
	"github.com/nguyentantai21042004/lecture-assistant/internal/lecture"
)

const (
	fontName = "Times New Roman"
	fontSize = 13
)

var reBullet = regexp.MustCompile(`^[\-•]\s+(.+)$`)

// export writes <name>.docx (explanation followed by the transcript) and
// <name>.txt (transcript only) into the output folder.
func (p *implProcessor) export(ctx context.Context, name, runID string, result lecture.Result) (string, string, error) {
	if err := os.MkdirAll(p.cfg.Paths.Output, 0755); err != nil {
		return "", "", fmt.Errorf("create output dir: %w", err)
	}

	docPath := filepath.Join(p.cfg.Paths.Output, name+".docx")
	subtitle := fmt.Sprintf("Processed %s (run %s)", p.now().Format("2006-01-02 15:04"), runID)
	if err := lectureToDocx(name, subtitle, result, docPath); err != nil {
		return "", "", fmt.Errorf("write docx: %w", err)
	}

	txtPath := filepath.Join(p.cfg.Paths.Output, name+".txt")
	if err := os.WriteFile(txtPath, []byte(strings.TrimSpace(result.Transcript)+"\n"), 0644); err != nil {
		return "", "", fmt.Errorf("write transcript: %w", err)
	}

	p.logger.Debug(ctx, "Exported %s and %s", docPath, txtPath)
	return docPath, txtPath, nil
}

// exported reports whether both exports for name are already in the output
// folder.
func (p *implProcessor) exported(name string) bool {
	for _, ext := range []string{".docx", ".txt"} {
		if _, err := os.Stat(filepath.Join(p.cfg.Paths.Output, name+ext)); err != nil {
			return false
		}
	}
	return true
}

// lectureToDocx renders the explanation and transcript as a styled document.
func lectureToDocx(title, subtitle string, result lecture.Result, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	addStyledRun(doc.AddParagraph(""), title, true, 16)
	addStyledRun(doc.AddParagraph(""), subtitle, false, 10)
	doc.AddParagraph("")

	addStyledRun(doc.AddParagraph(""), "Explanation", true, 14)
	for _, line := range explanationLines(result.Explanation) {
		addStyledRun(doc.AddParagraph(""), line, false, fontSize)
	}

	doc.AddParagraph("")
	addStyledRun(doc.AddParagraph(""), "Transcript", true, 14)
	for _, para := range transcriptParagraphs(result.Transcript) {
		addStyledRun(doc.AddParagraph(""), para, false, fontSize)
	}

	return doc.SaveTo(outputPath)
}

// explanationLines keeps non-blank lines, turning dash bullets into "•".
func explanationLines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if m := reBullet.FindStringSubmatch(trimmed); m != nil {
			out = append(out, "• "+m[1])
			continue
		}
		out = append(out, trimmed)
	}
	return out
}

// transcriptParagraphs splits on blank lines and joins wrapped lines.
func transcriptParagraphs(text string) []string {
	var (
		out     []string
		current []string
	)
	flush := func() {
		if len(current) > 0 {
			out = append(out, strings.Join(current, " "))
			current = nil
		}
	}
	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			flush()
			continue
		}
		current = append(current, trimmed)
	}
	flush()
	return out
}

func addStyledRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	run := p.AddText(text).Font(fontName).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
}
