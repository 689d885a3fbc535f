// Package logging provides structured logging channels for the Glowyn state
// service, one slog.Logger per subsystem.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Channel represents a logical logging channel for different system components
type Channel string

const (
	ChannelSystem   Channel = "system"
	ChannelStartup  Channel = "startup"
	ChannelShutdown Channel = "shutdown"

	ChannelStore       Channel = "store"       // in-memory store mutations and hydration
	ChannelPersistence Channel = "persistence" // snapshot writes and storage backends
	ChannelMedia       Channel = "media"       // photo intake
	ChannelAnalysis    Channel = "analysis"    // mock analysis and recommendations
	ChannelHTTP        Channel = "http"
	ChannelStream      Channel = "stream" // websocket change stream

	ChannelDebug Channel = "debug"
)

var allChannels = []Channel{
	ChannelSystem, ChannelStartup, ChannelShutdown,
	ChannelStore, ChannelPersistence, ChannelMedia, ChannelAnalysis,
	ChannelHTTP, ChannelStream, ChannelDebug,
}

// ChanneledLogger provides structured logging with multiple channels
type ChanneledLogger struct {
	channels map[Channel]*slog.Logger
	files    []*os.File
	config   *LoggerConfig
	mu       sync.RWMutex
}

// LoggerConfig contains configuration options for the channeled logger
type LoggerConfig struct {
	OutputToFile    bool
	OutputToConsole bool
	LogDirectory    string

	JSONFormat    bool
	IncludeSource bool

	DefaultLevel  slog.Level
	ChannelLevels map[Channel]slog.Level

	// Output overrides the console writer; tests point it at a buffer.
	Output io.Writer
}

// DefaultLoggerConfig returns a sensible default configuration
func DefaultLoggerConfig() *LoggerConfig {
	return &LoggerConfig{
		OutputToFile:    false,
		OutputToConsole: true,
		LogDirectory:    "logs",
		JSONFormat:      true,
		IncludeSource:   false,
		DefaultLevel:    slog.LevelInfo,
		ChannelLevels:   make(map[Channel]slog.Level),
	}
}

// NewChanneledLogger creates a new channeled logger with the given configuration
func NewChanneledLogger(config *LoggerConfig) (*ChanneledLogger, error) {
	if config == nil {
		config = DefaultLoggerConfig()
	}
	if config.ChannelLevels == nil {
		config.ChannelLevels = make(map[Channel]slog.Level)
	}

	cl := &ChanneledLogger{
		channels: make(map[Channel]*slog.Logger),
		config:   config,
	}

	if config.OutputToFile {
		if err := os.MkdirAll(config.LogDirectory, 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	for _, channel := range allChannels {
		logger, err := cl.createChannelLogger(channel)
		if err != nil {
			return nil, fmt.Errorf("failed to create logger for channel %s: %w", channel, err)
		}
		cl.channels[channel] = logger
	}

	return cl, nil
}

// NewNopLogger returns a logger that discards everything.
func NewNopLogger() *ChanneledLogger {
	cl, _ := NewChanneledLogger(&LoggerConfig{
		OutputToConsole: true,
		Output:          io.Discard,
		DefaultLevel:    slog.LevelError + 1,
	})
	return cl
}

func (cl *ChanneledLogger) createChannelLogger(channel Channel) (*slog.Logger, error) {
	level := cl.config.DefaultLevel
	if channelLevel, exists := cl.config.ChannelLevels[channel]; exists {
		level = channelLevel
	}

	var writers []io.Writer
	if cl.config.OutputToConsole {
		if cl.config.Output != nil {
			writers = append(writers, cl.config.Output)
		} else {
			writers = append(writers, os.Stdout)
		}
	}

	if cl.config.OutputToFile {
		path := filepath.Join(cl.config.LogDirectory, string(channel)+".log")
		file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %w", path, err)
		}
		cl.files = append(cl.files, file)
		writers = append(writers, file)
	}

	var writer io.Writer
	switch len(writers) {
	case 0:
		writer = io.Discard
	case 1:
		writer = writers[0]
	default:
		writer = io.MultiWriter(writers...)
	}

	opts := &slog.HandlerOptions{
		Level:     level,
		AddSource: cl.config.IncludeSource,
	}

	var handler slog.Handler
	if cl.config.JSONFormat {
		handler = slog.NewJSONHandler(writer, opts)
	} else {
		handler = slog.NewTextHandler(writer, opts)
	}

	return slog.New(handler).With(slog.String("channel", string(channel))), nil
}

func (cl *ChanneledLogger) get(channel Channel) *slog.Logger {
	cl.mu.RLock()
	defer cl.mu.RUnlock()
	if logger, ok := cl.channels[channel]; ok {
		return logger
	}
	return cl.channels[ChannelSystem]
}

func (cl *ChanneledLogger) System() *slog.Logger      { return cl.get(ChannelSystem) }
func (cl *ChanneledLogger) Startup() *slog.Logger     { return cl.get(ChannelStartup) }
func (cl *ChanneledLogger) Shutdown() *slog.Logger    { return cl.get(ChannelShutdown) }
func (cl *ChanneledLogger) Store() *slog.Logger       { return cl.get(ChannelStore) }
func (cl *ChanneledLogger) Persistence() *slog.Logger { return cl.get(ChannelPersistence) }
func (cl *ChanneledLogger) Media() *slog.Logger       { return cl.get(ChannelMedia) }
func (cl *ChanneledLogger) Analysis() *slog.Logger    { return cl.get(ChannelAnalysis) }
func (cl *ChanneledLogger) HTTP() *slog.Logger        { return cl.get(ChannelHTTP) }
func (cl *ChanneledLogger) Stream() *slog.Logger      { return cl.get(ChannelStream) }
func (cl *ChanneledLogger) Debug() *slog.Logger       { return cl.get(ChannelDebug) }

// GetChannel returns a logger for a specific channel
func (cl *ChanneledLogger) GetChannel(channel Channel) *slog.Logger {
	return cl.get(channel)
}

// WithStore returns a store-channel logger tagged with the store name.
func (cl *ChanneledLogger) WithStore(channel Channel, store string) *slog.Logger {
	return cl.get(channel).With(slog.String("store", store))
}

// LogStartupPhase logs application startup phases
func (cl *ChanneledLogger) LogStartupPhase(phase string, duration time.Duration, success bool, err error) {
	logger := cl.Startup().With(
		slog.String("phase", phase),
		slog.Duration("duration", duration),
		slog.Bool("success", success),
	)
	if success {
		logger.Info("Startup phase completed")
		return
	}
	if err != nil {
		logger = logger.With(slog.String("error", err.Error()))
	}
	logger.Error("Startup phase failed")
}

// SetChannelLevel dynamically sets the log level for a specific channel
func (cl *ChanneledLogger) SetChannelLevel(channel Channel, level slog.Level) error {
	cl.mu.Lock()
	defer cl.mu.Unlock()

	if _, exists := cl.channels[channel]; !exists {
		return fmt.Errorf("channel %s does not exist", channel)
	}

	cl.config.ChannelLevels[channel] = level
	logger, err := cl.createChannelLogger(channel)
	if err != nil {
		return fmt.Errorf("failed to recreate logger for channel %s: %w", channel, err)
	}
	cl.channels[channel] = logger
	return nil
}

// GetChannelLevels returns the current log levels for all channels.
func (cl *ChanneledLogger) GetChannelLevels() map[string]string {
	cl.mu.RLock()
	defer cl.mu.RUnlock()

	levels := make(map[string]string, len(cl.channels))
	for channel := range cl.channels {
		if level, ok := cl.config.ChannelLevels[channel]; ok {
			levels[string(channel)] = level.String()
		} else {
			levels[string(channel)] = cl.config.DefaultLevel.String()
		}
	}
	return levels
}

// Close closes any log files opened by the logger.
func (cl *ChanneledLogger) Close() error {
	cl.mu.Lock()
	defer cl.mu.Unlock()

	var firstErr error
	for _, f := range cl.files {
		if err := f.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	cl.files = nil
	return firstErr
}
