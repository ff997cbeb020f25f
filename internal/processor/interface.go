package processor

import "context"

// Processor defines the interface for lecture recording processing
type Processor interface {
	Process(ctx context.Context, recordingPath string) error
}
