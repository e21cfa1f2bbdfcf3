// Copyright 2022 Matrix Origin
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package logutil

import (
	"os"
	"sync/atomic"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LogConfig describes the logging backend.  Zero values fall back to
// console logging at info level.
type LogConfig struct {
	Level    string `toml:"level"`
	Format   string `toml:"format"`
	Filename string `toml:"filename"`

	// rotation settings, only used when Filename is set
	MaxSize    int `toml:"max-size"`
	MaxDays    int `toml:"max-days"`
	MaxBackups int `toml:"max-backups"`
}

// ZapSink bundles an encoder with its destination.
type ZapSink struct {
	enc zapcore.Encoder
	out zapcore.WriteSyncer
}

var globalLogger atomic.Value

// GetGlobalLogger returns the process-wide logger, setting up a
// default console logger on first use.
func GetGlobalLogger() *zap.Logger {
	if l, ok := globalLogger.Load().(*zap.Logger); ok && l != nil {
		return l
	}
	SetupLogger(&LogConfig{})
	return globalLogger.Load().(*zap.Logger)
}

// SetupLogger builds the global logger from cfg.  Safe to call more
// than once; the last call wins.
func SetupLogger(cfg *LogConfig) *zap.Logger {
	var cores []zapcore.Core
	level := cfg.getLevel()
	for _, sink := range cfg.getSinks() {
		cores = append(cores, zapcore.NewCore(sink.enc, sink.out, level))
	}
	logger := zap.New(zapcore.NewTee(cores...), cfg.getOptions()...)
	globalLogger.Store(logger)
	return logger
}

func (cfg *LogConfig) getLevel() zap.AtomicLevel {
	level := zap.NewAtomicLevel()
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	return level
}

func (cfg *LogConfig) getOptions() []zap.Option {
	return []zap.Option{zap.AddStacktrace(zapcore.FatalLevel), zap.AddCaller()}
}

func (cfg *LogConfig) getSinks() []ZapSink {
	var sinks []ZapSink
	if cfg.Filename != "" {
		sinks = append(sinks, ZapSink{
			getLoggerEncoder(cfg.Format),
			getFileSyncer(cfg),
		})
	} else {
		sinks = append(sinks, ZapSink{
			getLoggerEncoder(cfg.Format),
			getConsoleSyncer(),
		})
	}
	return sinks
}

func getLoggerEncoder(format string) zapcore.Encoder {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	switch format {
	case "json":
		return zapcore.NewJSONEncoder(encoderConfig)
	default:
		encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		return zapcore.NewConsoleEncoder(encoderConfig)
	}
}

func getConsoleSyncer() zapcore.WriteSyncer {
	return zapcore.AddSync(os.Stderr)
}

func getFileSyncer(cfg *LogConfig) zapcore.WriteSyncer {
	return zapcore.AddSync(&lumberjack.Logger{
		Filename:   cfg.Filename,
		MaxSize:    cfg.MaxSize,
		MaxAge:     cfg.MaxDays,
		MaxBackups: cfg.MaxBackups,
		LocalTime:  true,
	})
}
