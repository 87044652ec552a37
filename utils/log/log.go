/*
 * Copyright 2024 The rmf-core Authors.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package log is a thin wrapper around logrus's package-level standard
// logger, trimmed to the handful of entry points the rest of this module
// actually calls. Wrapping rather than importing logrus directly keeps
// every call site free of a direct third-party import and gives us one
// place to swap formatter/output/level defaults for the whole service.
package log

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Fields is the field map passed to WithFields.
type Fields logrus.Fields

// Entry is a log record under construction via WithField(s)/WithError.
type Entry logrus.Entry

// SetOutput sets the standard logger's output writer.
func SetOutput(w io.Writer) {
	logrus.SetOutput(w)
}

// SetLevel sets the standard logger's minimum level.
func SetLevel(level logrus.Level) {
	logrus.SetLevel(level)
}

// ParseLevel parses a level name ("debug", "info", "warning", ...).
func ParseLevel(name string) (logrus.Level, error) {
	return logrus.ParseLevel(name)
}

// WithError starts an Entry carrying err under the standard error key.
func WithError(err error) *Entry {
	return (*Entry)(logrus.WithError(err))
}

// WithField starts an Entry carrying one field.
func WithField(key string, value interface{}) *Entry {
	return (*Entry)(logrus.WithField(key, value))
}

// WithFields starts an Entry carrying a set of fields.
func WithFields(fields Fields) *Entry {
	return (*Entry)(logrus.WithFields(logrus.Fields(fields)))
}

// WithField extends e with an additional field.
func (e *Entry) WithField(key string, value interface{}) *Entry {
	return (*Entry)((*logrus.Entry)(e).WithField(key, value))
}

// WithFields extends e with additional fields.
func (e *Entry) WithFields(fields Fields) *Entry {
	return (*Entry)((*logrus.Entry)(e).WithFields(logrus.Fields(fields)))
}

// Debug logs e at debug level.
func (e *Entry) Debug(args ...interface{}) { (*logrus.Entry)(e).Debug(args...) }

// Info logs e at info level.
func (e *Entry) Info(args ...interface{}) { (*logrus.Entry)(e).Info(args...) }

// Warning logs e at warning level.
func (e *Entry) Warning(args ...interface{}) { (*logrus.Entry)(e).Warning(args...) }

// Error logs e at error level.
func (e *Entry) Error(args ...interface{}) { (*logrus.Entry)(e).Error(args...) }

// Fatal logs e at fatal level and terminates the process.
func (e *Entry) Fatal(args ...interface{}) { (*logrus.Entry)(e).Fatal(args...) }

// Debug logs a message at debug level on the standard logger.
func Debug(args ...interface{}) { logrus.Debug(args...) }

// Info logs a message at info level on the standard logger.
func Info(args ...interface{}) { logrus.Info(args...) }

// Warning logs a message at warning level on the standard logger.
func Warning(args ...interface{}) { logrus.Warning(args...) }

// Error logs a message at error level on the standard logger.
func Error(args ...interface{}) { logrus.Error(args...) }

// Fatal logs a message at fatal level on the standard logger and exits.
func Fatal(args ...interface{}) { logrus.Fatal(args...) }
