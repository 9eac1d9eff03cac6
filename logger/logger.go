// Copyright (C) 2025 Specter Ops, Inc.
//
// This file is part of PIMHound.
//
// PIMHound is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// PIMHound is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package logger adapts zerolog to the logr interface used throughout the
// tool. Verbosity, format and destination come from the config registry:
// V(0) is info, V(1) debug and V(2) trace.
package logger

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-logr/logr"
	"github.com/rs/zerolog"

	"github.com/bloodhoundad/pimhound/config"
)

func GetLogger() (*logr.Logger, error) {
	// level filtering happens in Enabled; zerolog must not filter first
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	if writer, err := logWriter(); err != nil {
		return nil, err
	} else {
		zl := zerolog.New(writer).With().Timestamp().Logger()
		log := logr.New(&zerologSink{logger: &zl})
		return &log, nil
	}
}

func logWriter() (io.Writer, error) {
	var writers []io.Writer

	if config.JsonLogs.Value().(bool) {
		writers = append(writers, os.Stderr)
	} else {
		writers = append(writers, zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	if path, ok := config.LogFile.Value().(string); ok && path != "" {
		if file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644); err != nil {
			return nil, fmt.Errorf("unable to open log file: %w", err)
		} else {
			writers = append(writers, file)
		}
	}

	return zerolog.MultiLevelWriter(writers...), nil
}

type zerologSink struct {
	logger *zerolog.Logger
	name   string
	values []interface{}
}

func (s zerologSink) Init(info logr.RuntimeInfo) {}

func (s zerologSink) Enabled(level int) bool {
	verbosity, ok := config.Verbosity.Value().(int)
	if !ok {
		verbosity = 0
	}
	return level <= verbosity
}

func (s zerologSink) Info(level int, msg string, keysAndValues ...interface{}) {
	var event *zerolog.Event
	switch {
	case level <= 0:
		event = s.logger.Info()
	case level == 1:
		event = s.logger.Debug()
	default:
		event = s.logger.Trace()
	}
	s.write(event, msg, keysAndValues)
}

func (s zerologSink) Error(err error, msg string, keysAndValues ...interface{}) {
	s.write(s.logger.Error().Err(err), msg, keysAndValues)
}

func (s zerologSink) WithValues(keysAndValues ...interface{}) logr.LogSink {
	next := s
	next.values = append(append([]interface{}{}, s.values...), keysAndValues...)
	return next
}

func (s zerologSink) WithName(name string) logr.LogSink {
	next := s
	if s.name != "" {
		next.name = s.name + "." + name
	} else {
		next.name = name
	}
	return next
}

func (s zerologSink) write(event *zerolog.Event, msg string, keysAndValues []interface{}) {
	if s.name != "" {
		event = event.Str("logger", s.name)
	}
	event = fields(event, s.values)
	event = fields(event, keysAndValues)
	event.Msg(msg)
}

func fields(event *zerolog.Event, keysAndValues []interface{}) *zerolog.Event {
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			key = fmt.Sprintf("%v", keysAndValues[i])
		}
		event = event.Interface(key, keysAndValues[i+1])
	}
	return event
}
