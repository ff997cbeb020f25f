package processor

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/nguyentantai21042004/lecture-assistant/internal/audio"
	"github.com/nguyentantai21042004/lecture-assistant/internal/lecture"
	"github.com/nguyentantai21042004/lecture-assistant/internal/logger"
)

// Process turns one recording into an exported transcript and explanation.
// On failure the recording stays in the input folder. A recording whose
// exports already exist is only archived.
func (p *implProcessor) Process(ctx context.Context, recordingPath string) error {
	startTime := p.now()
	runID := uuid.NewString()
	ctx = logger.WithRun(ctx, runID)

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Starting lecture processing: %s", recordingPath)
	p.logger.Info(ctx, "========================================")

	err := p.process(ctx, runID, recordingPath)
	if err != nil {
		p.metrics.ObserveRecording(lecture.Kind(err))
		p.logger.Error(ctx, "Lecture processing failed [%s]: %v", lecture.Kind(err), err)
		return err
	}

	p.metrics.ObserveRecording(lecture.KindOK)
	p.logger.Info(ctx, "Processing time: %s", p.now().Sub(startTime))
	return nil
}

func (p *implProcessor) process(ctx context.Context, runID, recordingPath string) error {
	name := strings.TrimSuffix(filepath.Base(recordingPath), filepath.Ext(recordingPath))

	// A previous run exported this recording but could not archive it
	if p.exported(name) {
		p.logger.Info(ctx, "Exports for %s already exist, archiving without reprocessing", name)
		if err := p.moveToArchived(ctx, recordingPath); err != nil {
			return fmt.Errorf("archive recording: %w", err)
		}
		return nil
	}

	// Step 1: Extract the audio track from lecture videos
	audioPath := recordingPath
	if audio.IsVideoFile(recordingPath) {
		extracted, err := p.extractAudio(ctx, recordingPath)
		if err != nil {
			return fmt.Errorf("extract audio: %w", err)
		}
		defer p.cleanupTempFile(ctx, extracted)
		audioPath = extracted
	}

	// Step 2: Load the capture
	capture, err := audio.FromFile(audioPath)
	if err != nil {
		return fmt.Errorf("load recording: %w", err)
	}

	// Step 3: Transcribe and explain
	result, err := p.assistant.ProcessLectureAudio(ctx, capture)
	if err != nil {
		return fmt.Errorf("process lecture: %w", err)
	}

	// Step 4: Export transcript and explanation
	docPath, txtPath, err := p.export(ctx, name, runID, result)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}

	// Step 5: Move original recording to archived folder
	if err := p.moveToArchived(ctx, recordingPath); err != nil {
		return fmt.Errorf("archive recording: %w", err)
	}

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Lecture processed successfully!")
	p.logger.Info(ctx, "Explanation: %s", docPath)
	p.logger.Info(ctx, "Transcript: %s", txtPath)
	p.logger.Info(ctx, "========================================")
	return nil
}
