package config

import (
	"fmt"
	"time"
)

type Config struct {
	Gemini      GeminiConfig      `yaml:"gemini"`
	Retry       RetryConfig       `yaml:"retry"`
	Audio       AudioConfig       `yaml:"audio"`
	Quiz        QuizConfig        `yaml:"quiz"`
	FFmpeg      FFmpegConfig      `yaml:"ffmpeg"`
	Paths       PathsConfig       `yaml:"paths"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
	Metrics     MetricsConfig     `yaml:"metrics"`
}

type GeminiConfig struct {
	Model      string `yaml:"model"`
	APIKeyEnv  string `yaml:"api_key_env"`
	APIKeysEnv string `yaml:"api_keys_env"`

	// Filled by LoadCredentials, never from YAML.
	APIKeys []string `yaml:"-"`
}

type RetryConfig struct {
	MaxRetries   int           `yaml:"max_retries"`
	InitialDelay time.Duration `yaml:"initial_delay"`
	Multiplier   float64       `yaml:"multiplier"`
}

type AudioConfig struct {
	MaxBytes int `yaml:"max_bytes"`
}

type QuizConfig struct {
	DefaultCount      int    `yaml:"default_count"`
	DefaultDifficulty string `yaml:"default_difficulty"`
}

type FFmpegConfig struct {
	BinaryPath   string `yaml:"binary_path"`
	AudioBitrate string `yaml:"audio_bitrate"`
}

type PathsConfig struct {
	Input    string `yaml:"input"`
	Output   string `yaml:"output"`
	Archived string `yaml:"archived"`
	Temp     string `yaml:"temp"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

type MetricsConfig struct {
	Addr string `yaml:"addr"`
}

// Validate checks required fields and fills in defaults.
func (c *Config) Validate() error {
	if c.Paths.Input == "" {
		return fmt.Errorf("paths.input is required")
	}
	if c.Paths.Output == "" {
		return fmt.Errorf("paths.output is required")
	}
	if c.Retry.MaxRetries < 0 {
		return fmt.Errorf("retry.max_retries must not be negative")
	}
	if c.Audio.MaxBytes < 0 {
		return fmt.Errorf("audio.max_bytes must not be negative")
	}
	switch c.Quiz.DefaultDifficulty {
	case "", "easy", "medium", "hard":
	default:
		return fmt.Errorf("quiz.default_difficulty must be easy, medium or hard")
	}

	c.ApplyDefaults()
	return nil
}

// ApplyDefaults fills every optional field that is still zero.
func (c *Config) ApplyDefaults() {
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-flash-latest"
	}
	if c.Gemini.APIKeyEnv == "" {
		c.Gemini.APIKeyEnv = "GEMINI_API_KEY"
	}
	if c.Gemini.APIKeysEnv == "" {
		c.Gemini.APIKeysEnv = "GEMINI_API_KEYS"
	}
	if c.Retry.MaxRetries == 0 {
		c.Retry.MaxRetries = 3
	}
	if c.Retry.InitialDelay == 0 {
		c.Retry.InitialDelay = 2 * time.Second
	}
	if c.Retry.Multiplier == 0 {
		c.Retry.Multiplier = 2
	}
	if c.Audio.MaxBytes == 0 {
		c.Audio.MaxBytes = 20 * 1024 * 1024
	}
	if c.Quiz.DefaultCount == 0 {
		c.Quiz.DefaultCount = 3
	}
	if c.Quiz.DefaultDifficulty == "" {
		c.Quiz.DefaultDifficulty = "medium"
	}
	if c.FFmpeg.BinaryPath == "" {
		c.FFmpeg.BinaryPath = "ffmpeg"
	}
	if c.FFmpeg.AudioBitrate == "" {
		c.FFmpeg.AudioBitrate = "64k"
	}
	if c.Paths.Archived == "" {
		c.Paths.Archived = "data/archived"
	}
	if c.Paths.Temp == "" {
		c.Paths.Temp = "data/temp"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 2
	}
}
