package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/amirhossein-jamali/async-logger/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/async-logger/internal/domain/port/core"
	"github.com/amirhossein-jamali/async-logger/internal/domain/port/usecase"
)

// Shell commands
const (
	CommandExit        = "exit"
	CommandLevelPrefix = "level "
)

// Options configures the shell
type Options struct {
	// Prompt is printed before each line when Interactive is set
	Prompt string
	// Interactive enables prompts and the usage hint
	Interactive bool
}

// Shell reads lines from its input and turns them into journal operations
type Shell struct {
	journal usecase.JournalUseCase
	in      io.Reader
	out     io.Writer
	opts    Options
	diag    coreport.Logger
}

// NewShell creates a shell over in/out
func NewShell(journal usecase.JournalUseCase, in io.Reader, out io.Writer, opts Options, diag coreport.Logger) *Shell {
	return &Shell{
		journal: journal,
		in:      in,
		out:     out,
		opts:    opts,
		diag:    diag,
	}
}

// PrintBanner announces the sink and the starting threshold
func (s *Shell) PrintBanner(sinkPath string, threshold entity.Severity) {
	fmt.Fprintf(s.out, "Logger initialized\nLog file: %s\nDefault level: %s\n\n", sinkPath, threshold)
	if s.opts.Interactive {
		fmt.Fprint(s.out,
			"Enter a message to log (format: 'message [LEVEL]')\n"+
				"Available levels: LOW, MEDIUM, HIGH\n"+
				"Type 'level LEVEL' to change the level\n"+
				"Type 'exit' to quit\n\n")
	}
}

// Run processes input until "exit", end of input or ctx cancellation.
// It does not shut the journal down; the caller owns that.
func (s *Shell) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	readErr := make(chan error, 1)

	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(s.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		readErr <- scanner.Err()
	}()

	for {
		s.prompt()

		select {
		case <-ctx.Done():
			s.diag.Info("Shell interrupted", map[string]any{
				"reason": ctx.Err().Error(),
			})
			return nil
		case line, ok := <-lines:
			if !ok {
				s.diag.Debug("Shell input closed", nil)
				select {
				case err := <-readErr:
					return err
				default:
					return nil
				}
			}
			if !s.handle(line) {
				return nil
			}
		}
	}
}

// handle executes one input line and reports whether the shell should continue
func (s *Shell) handle(line string) bool {
	line = strings.TrimRight(line, "\r")

	switch {
	case line == "":
		return true
	case line == CommandExit:
		return false
	case strings.HasPrefix(line, CommandLevelPrefix):
		// Everything after "level " is the name, surrounding blanks included.
		level := s.journal.ChangeLevel(strings.TrimPrefix(line, CommandLevelPrefix))
		fmt.Fprintf(s.out, "Level changed to: %s\n", level)
		return true
	default:
		s.journal.Submit(line)
		fmt.Fprintln(s.out, "Message queued")
		return true
	}
}

func (s *Shell) prompt() {
	if s.opts.Interactive && s.opts.Prompt != "" {
		fmt.Fprint(s.out, s.opts.Prompt)
	}
}
