package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/nguyentantai21042004/lecture-assistant/internal/audio"
	"github.com/nguyentantai21042004/lecture-assistant/internal/config"
	"github.com/nguyentantai21042004/lecture-assistant/internal/gemini"
	"github.com/nguyentantai21042004/lecture-assistant/internal/lecture"
	"github.com/nguyentantai21042004/lecture-assistant/internal/logger"
	"github.com/nguyentantai21042004/lecture-assistant/internal/quizui"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	difficultyFlag := flag.String("difficulty", "", "quiz difficulty: easy, medium or hard")
	count := flag.Int("count", 0, "number of questions (default from config)")
	transcriptPath := flag.String("transcript", "", "transcript text file")
	audioPath := flag.String("audio", "", "audio file to transcribe first")
	logPath := flag.String("log", "quiz.log", "log file")
	flag.Parse()

	if (*transcriptPath == "") == (*audioPath == "") {
		fmt.Fprintln(os.Stderr, "exactly one of -transcript or -audio is required")
		flag.Usage()
		os.Exit(2)
	}

	if err := run(*configPath, *difficultyFlag, *count, *transcriptPath, *audioPath, *logPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, difficultyFlag string, count int, transcriptPath, audioPath, logPath string) error {
	ctx := context.Background()

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if difficultyFlag == "" {
		difficultyFlag = cfg.Quiz.DefaultDifficulty
	}
	difficulty, err := lecture.ParseDifficulty(difficultyFlag)
	if err != nil {
		return err
	}

	// The terminal belongs to the quiz, so logs go to a file.
	logFile, err := tea.LogToFile(logPath, "quiz")
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer logFile.Close()
	log := logger.NewWithWriter(logFile, cfg.Logging.Level, "json")

	if err := config.LoadCredentials(cfg); err != nil {
		return fmt.Errorf("load credentials: %w", err)
	}

	gen, err := gemini.New(ctx, gemini.Config{Model: cfg.Gemini.Model, APIKeys: cfg.Gemini.APIKeys}, log)
	if err != nil && !errors.Is(err, gemini.ErrMissingCredential) {
		return fmt.Errorf("create gemini client: %w", err)
	}
	assistant := lecture.New(cfg, gen, log, nil)

	transcript, err := loadTranscript(ctx, assistant, transcriptPath, audioPath)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := quizui.NewProgram(quizui.New(ctx, assistant, transcript, difficulty, count))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run quiz: %w", err)
	}
	return nil
}

func loadTranscript(ctx context.Context, assistant lecture.Assistant, transcriptPath, audioPath string) (string, error) {
	if transcriptPath != "" {
		data, err := os.ReadFile(transcriptPath)
		if err != nil {
			return "", fmt.Errorf("read transcript: %w", err)
		}
		return string(data), nil
	}

	capture, err := audio.FromFile(audioPath)
	if err != nil {
		return "", fmt.Errorf("load audio: %w", err)
	}
	fmt.Fprintf(os.Stderr, "Transcribing %s...\n", audioPath)
	transcript, err := assistant.TranscribeAudio(ctx, capture)
	if err != nil {
		return "", fmt.Errorf("transcribe audio: %w", err)
	}
	return transcript, nil
}
