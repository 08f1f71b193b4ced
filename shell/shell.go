// Copyright (c) 2026, the smallsh authors
// See LICENSE for licensing information

// Package shell implements the smallsh REPL: reap, prompt, read, lex,
// expand, dispatch — built on top of the lexer, expand, parser,
// builtin and proc packages.
package shell

import (
	"errors"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/sirupsen/logrus"

	"smallsh/builtin"
	"smallsh/expand"
	"smallsh/lexer"
	"smallsh/parser"
	"smallsh/proc"
	"smallsh/shellstate"
)

// osEnv adapts os.Getenv to the Env/Environ interfaces expand and
// builtin depend on.
type osEnv struct{}

func (osEnv) Getenv(name string) string { return os.Getenv(name) }

// osDir adapts os.Chdir to builtin.Dir.
type osDir struct{}

func (osDir) Chdir(path string) error { return os.Chdir(path) }

// LineReader returns one logical input line at a time; the shell
// never reads bytes directly.
type LineReader interface {
	ReadLine() (string, error)
}

// Shell is the single-threaded interpreter state: a value threaded
// through the main loop in place of mutable package-level statics.
type Shell struct {
	state *shellstate.State

	lines       LineReader
	stderr      io.Writer
	interactive bool

	log *logrus.Logger

	// sigCh is set for the whole of an interactive Run; draining
	// it is what makes SIGINT/SIGTSTP "ignored" for the shell process
	// (see proc.Launch's doc comment on why this, and not
	// signal.Ignore, is what lets children see default dispositions).
	sigCh chan os.Signal

	exited   bool
	exitCode int
}

// Option configures a Shell at construction.
type Option func(*Shell)

// WithVerbose enables logrus trace-level diagnostics: each line's words
// after expansion are logged. Lexer and launcher steps are not traced.
// It never changes the bytes written for prompts, builtin errors or
// reaper messages.
func WithVerbose(v bool) Option {
	return func(s *Shell) {
		if v {
			s.log.SetLevel(logrus.TraceLevel)
		}
	}
}

// New builds a Shell that reads from lines and writes diagnostics and
// reaper/prompt output to stderr. Launched children always inherit the
// real process's stdin/stdout/stderr (a process-wide collaborator, not
// something the shell proxies), so only stderr is configurable here,
// for capturing the shell's own diagnostics in tests.
func New(lines LineReader, stderr io.Writer, interactive bool, opts ...Option) *Shell {
	log := logrus.New()
	log.SetOutput(stderr)
	log.SetLevel(logrus.WarnLevel)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	s := &Shell{
		state:       shellstate.New(),
		lines:       lines,
		stderr:      stderr,
		interactive: interactive,
		log:         log,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Run executes the read-eval-print loop until EOF, a fatal read error,
// or an `exit` builtin, and returns the process exit code.
func (s *Shell) Run() int {
	if s.interactive {
		s.beginInteractive()
		defer s.endInteractive()
	}

	for !s.exited {
		s.reapBackground()
		s.prompt()

		line, err := s.readLine()
		if err != nil {
			if errors.Is(err, errInterruptedRead) {
				s.stderr.Write([]byte("\n"))
				continue
			}
			if !errors.Is(err, io.EOF) {
				logrus.NewEntry(s.log).Warnf("%s: %v", "input", err)
			}
			return s.state.StatusCode()
		}

		s.runLine(line)
	}
	return s.exitCode
}

// beginInteractive installs the interactive SIGINT/SIGTSTP ignore. It
// uses signal.Notify rather than signal.Ignore so that a later execve
// resets the disposition to default for any child (see proc.Launch).
func (s *Shell) beginInteractive() {
	s.sigCh = make(chan os.Signal, 16)
	signal.Notify(s.sigCh, syscall.SIGINT, syscall.SIGTSTP)
	go func() {
		for range s.sigCh {
			// Drained and discarded: interactive smallsh handles no
			// signal specifically other than recovering the read
			// loop, which readLine does via errInterruptedRead.
		}
	}()
}

func (s *Shell) endInteractive() {
	signal.Stop(s.sigCh)
	close(s.sigCh)
}

func (s *Shell) prompt() {
	if !s.interactive {
		return
	}
	ps1 := os.Getenv("PS1")
	if ps1 == "" {
		ps1 = "$"
	}
	io.WriteString(s.stderr, ps1)
}

func (s *Shell) reapBackground() {
	// proc.ReapBackground already prints the diagnostic and sends
	// SIGCONT for a stopped child; $! is only ever set when a
	// background child is launched or when the foreground wait
	// observes a stop, never here.
	proc.ReapBackground(s.stderr)
}

func (s *Shell) runLine(line string) {
	words := lexer.Split(line)
	if len(words) == 0 {
		return
	}

	for i, w := range words {
		words[i] = expand.Word(w, s.state, osEnv{})
	}
	s.log.Tracef("expanded words: %v", words)

	if builtin.Is(words[0]) {
		res := builtin.Dispatch(words, s.state, osEnv{}, osDir{}, s.stderr)
		if res.Exit {
			s.exited = true
			s.exitCode = res.Code
		}
		return
	}

	cmd, err := parser.Parse(words)
	if err != nil {
		// A missing redirection target is observably equivalent to a
		// foreground child that prints this diagnostic and exits 1.
		// Nothing was actually launched here, so the status is set
		// directly rather than forking a child whose only job would be
		// to fail immediately.
		io.WriteString(s.stderr, "smallsh: "+err.Error()+"\n")
		s.state.SetStatus(1)
		return
	}

	s.launch(cmd)
}

func (s *Shell) launch(cmd parser.Command) {
	files := proc.Files{Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
	p, ok, err := proc.Launch(cmd, files)
	if err != nil {
		io.WriteString(s.stderr, err.Error()+"\n")
		s.state.SetStatus(1)
		return
	}
	if !ok {
		// Nothing to exec: a foreground line is a trivial success, same
		// as any other foreground command that exits 0; a backgrounded
		// one (e.g. `< file &`) has no process to record in $!, and
		// leaves $? untouched since nothing was waited on.
		if !cmd.Background {
			s.state.SetStatus(0)
		}
		return
	}

	if cmd.Background {
		s.state.SetBackgroundPID(p.Pid)
		return
	}

	ev := proc.WaitForeground(p.Pid, s.stderr)
	switch ev.Outcome {
	case proc.Stopped:
		s.state.SetBackgroundPID(p.Pid)
	default:
		s.state.SetStatus(ev.Code)
	}
}

var errInterruptedRead = errors.New("smallsh: interrupted read")

func (s *Shell) readLine() (string, error) {
	line, err := s.lines.ReadLine()
	if err != nil {
		if errors.Is(err, syscall.EINTR) {
			return "", errInterruptedRead
		}
		return "", err
	}
	return strings.TrimRight(line, "\n"), nil
}
