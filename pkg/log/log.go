// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package log

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
)

// 🎨 Display configuration
const (
	fileIndent  = 4  // spaces to indent file entries
	nameWidth   = 35 // Base width for filename
	kindWidth   = 10 // Width for change kind
	statusWidth = 15 // Width for status text
)

// 🎯 FileOperation represents a change to one path in a project
type FileOperation struct {
	Path         string // Path relative to the project
	Kind         string // content/file/folder
	Status       string // Operation status
	NewPath      string // Path after a rename
	IsModified   bool   // Whether contents were rewritten
	IsRenamed    bool   // Whether the path was renamed
	Replacements int    // Number of replacements made
}

// 📦 TemplateOperation represents a command working on one template
type TemplateOperation struct {
	Command     string // load/save/delete
	Template    string // Template name
	Destination string // Project path, if any
}

// 🎯 Logger handles structured logging with console output
type Logger struct {
	zlog       zerolog.Logger
	console    io.Writer
	mu         sync.Mutex
	currentOp  *TemplateOperation
	operations []FileOperation
}

// 🏭 NewWithZerolog creates a logger that mirrors to an existing zerolog logger
func NewWithZerolog(console io.Writer, zlog zerolog.Logger) *Logger {
	return &Logger{
		zlog:    zlog,
		console: console,
		mu:      sync.Mutex{},
	}
}

// 📝 formatFileOperation formats a file operation for display
func (l *Logger) formatFileOperation(op FileOperation) string {
	// Determine symbol and color
	var symbol rune
	var symbolColor color.Attribute
	switch {
	case op.IsRenamed:
		symbol = '→'
		symbolColor = color.FgBlue
	case op.IsModified:
		symbol = '⟳'
		symbolColor = color.FgGreen
	default:
		symbol = '•'
		symbolColor = color.FgCyan
	}

	// Format kind with color
	var kindColor color.Attribute
	switch op.Kind {
	case "content":
		kindColor = color.FgGreen
	case "folder":
		kindColor = color.FgMagenta
	default:
		kindColor = color.FgBlue
	}

	name := op.Path
	if op.NewPath != "" {
		name = op.Path + " → " + op.NewPath
	}

	// Build the line
	return fmt.Sprintf("%s%s %s %s %s",
		fmt.Sprintf("%*s", fileIndent, ""),
		color.New(symbolColor).Sprint(string(symbol)),
		fmt.Sprintf("%-*s", nameWidth, name),
		color.New(kindColor).Sprint(fmt.Sprintf("%-*s", kindWidth, op.Kind)),
		fmt.Sprintf("%-*s", statusWidth, op.Status))
}

// 📝 LogFileOperation logs a file operation
func (l *Logger) LogFileOperation(ctx context.Context, op FileOperation) {
	l.mu.Lock()
	defer l.mu.Unlock()

	// Add to operations list
	l.operations = append(l.operations, op)

	// Format and print
	fmt.Fprintln(l.console, l.formatFileOperation(op))

	// Log to zerolog
	l.zlog.Info().
		Str("path", op.Path).
		Str("new_path", op.NewPath).
		Str("kind", op.Kind).
		Str("status", op.Status).
		Bool("is_modified", op.IsModified).
		Bool("is_renamed", op.IsRenamed).
		Int("replacements", op.Replacements).
		Msg("file operation")
}

// 📝 StartTemplateOperation starts a new template operation
func (l *Logger) StartTemplateOperation(ctx context.Context, op TemplateOperation) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.currentOp = &op
	l.operations = nil

	// Print template header
	if op.Destination != "" {
		fmt.Fprintf(l.console, "[%s %s]\n", op.Command,
			color.New(color.FgCyan).Sprint(op.Destination))
	}

	fmt.Fprintf(l.console, "%s %s %s %s\n",
		color.New(color.FgMagenta).Sprint("◆"),
		color.New(color.Bold).Sprint(op.Template),
		color.New(color.Faint).Sprint("•"),
		color.New(color.FgYellow).Sprint(op.Command))

	// Log to zerolog
	l.zlog.Info().
		Str("command", op.Command).
		Str("template", op.Template).
		Str("destination", op.Destination).
		Msg("starting template operation")
}

// 📝 EndTemplateOperation ends the current template operation
func (l *Logger) EndTemplateOperation(ctx context.Context) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.currentOp == nil {
		return
	}

	// Log summary
	l.zlog.Info().
		Str("template", l.currentOp.Template).
		Int("changes", len(l.operations)).
		Msg("template operation complete")

	l.currentOp = nil
	l.operations = nil
}

// 📝 Header prints a title line above a listing
func (l *Logger) Header(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	appText := color.New(color.Bold, color.FgCyan).Sprint("tmplrc")
	fmt.Fprintf(l.console, "%s %s\n", appText, color.New(color.Faint).Sprint("• "+msg))
	l.zlog.Debug().Msg(msg)
}

// notice is how one outcome level is printed
type notice struct {
	icon  string
	color color.Attribute
	level zerolog.Level
}

var (
	successNotice = notice{icon: "✅ ", color: color.FgGreen, level: zerolog.InfoLevel}
	warningNotice = notice{icon: "⚠️  ", color: color.FgYellow, level: zerolog.WarnLevel}
	errorNotice   = notice{icon: "❌ ", color: color.FgRed, level: zerolog.ErrorLevel}
	infoNotice    = notice{icon: "ℹ️  ", color: color.FgCyan, level: zerolog.InfoLevel}
)

func (l *Logger) notify(n notice, msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.console, "%s%s\n", n.icon, color.New(n.color).Sprint(msg))
	l.zlog.WithLevel(n.level).Msg(msg)
}

// 📝 Success prints the message of a finished command
func (l *Logger) Success(msg string) { l.notify(successNotice, msg) }

// 📝 Warning prints a partial-success message
func (l *Logger) Warning(msg string) { l.notify(warningNotice, msg) }

// 📝 Error prints a failure message
func (l *Logger) Error(msg string) { l.notify(errorNotice, msg) }

// 📝 Info prints a neutral message, such as a cancelled prompt
func (l *Logger) Info(msg string) { l.notify(infoNotice, msg) }
