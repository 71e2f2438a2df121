// Package repl is an interactive prompt over a unit registry. Each line is
// parsed as a quantity, run through the current mode and printed.
package repl

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/peterh/liner"

	"github.com/sambeau/unitz/pkg/unitz"
)

const DefaultPrompt = "unitz> "

const banner = `
█░█ █▄░█ █ ▀█▀ ▀█
█▄█ █░▀█ █ ░█░ █▄ `

// Mode is the operation applied to every quantity typed at the prompt.
type Mode string

const (
	ModeParse       Mode = "parse"
	ModeNormalize   Mode = "normalize"
	ModeCompact     Mode = "compact"
	ModeExpand      Mode = "expand"
	ModeConversions Mode = "conversions"
	ModeSort        Mode = "sort"
	ModeConvert     Mode = "convert"
)

var commands = []string{
	":help", ":parse", ":normalize", ":compact", ":expand", ":conversions",
	":sort", ":convert", ":system", ":significant", ":format", ":unit",
	":units", ":classes", ":settings", "exit", "quit",
}

// Session holds the state of one prompt: the registry, the current mode
// and the settings changed with :commands. Sessions are not safe for
// concurrent use; the registry they wrap is.
type Session struct {
	reg      *unitz.Registry
	out      io.Writer
	mode     Mode
	target   string
	defaults unitz.Defaults
}

// NewSession starts a session in parse mode using the registry defaults.
func NewSession(reg *unitz.Registry, out io.Writer) *Session {
	return &Session{
		reg:      reg,
		out:      out,
		mode:     ModeParse,
		defaults: reg.Defaults(),
	}
}

// Mode returns the current mode and, in convert mode, the target unit.
func (s *Session) Mode() (Mode, string) { return s.mode, s.target }

// Execute handles one line of input. It returns false when the line asks
// the session to end.
func (s *Session) Execute(line string) bool {
	trimmed := strings.TrimSpace(line)
	switch {
	case trimmed == "":
		return true
	case trimmed == "exit" || trimmed == "quit":
		fmt.Fprintln(s.out, "Goodbye!")
		return false
	case strings.HasPrefix(trimmed, ":"):
		s.command(trimmed)
		return true
	}
	s.eval(trimmed)
	return true
}

// Run reads lines from in until EOF or exit. It is used when input is not
// a terminal.
func (s *Session) Run(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if !s.Execute(scanner.Text()) {
			return nil
		}
	}
	return scanner.Err()
}

func (s *Session) eval(text string) {
	b := s.reg.Parse(unitz.Text(text))
	if b.Len() == 0 || !b.IsValid() {
		fmt.Fprintf(s.out, "%v: %q\n", unitz.ErrInvalidInput, text)
		return
	}

	t := &s.defaults.Transform
	o := &s.defaults.Output
	switch s.mode {
	case ModeNormalize:
		b = b.Normalize(t, o)
	case ModeCompact:
		b = b.Compact(t)
	case ModeExpand:
		b = b.Expand(t)
	case ModeConversions:
		b = b.Conversions(t)
	case ModeSort:
		b = b.Sort(&s.defaults.Sort)
	case ModeConvert:
		b = b.To(s.target)
		if b.Len() == 0 {
			fmt.Fprintf(s.out, "cannot convert %q to %s\n", text, s.target)
			return
		}
	}
	fmt.Fprintln(s.out, b.Output(o))
}

func (s *Session) command(line string) {
	fields := strings.Fields(line)
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case ":help", ":h", ":?":
		s.help()
	case ":parse", ":normalize", ":compact", ":expand", ":conversions", ":sort":
		s.mode = Mode(strings.TrimPrefix(cmd, ":"))
		s.target = ""
		fmt.Fprintf(s.out, "mode: %s\n", s.mode)
	case ":convert", ":to":
		if len(args) == 0 {
			fmt.Fprintln(s.out, "usage: :convert <unit>")
			return
		}
		unit := strings.Join(args, " ")
		if s.reg.Lookup(unit) == nil {
			s.unknownUnit(unit)
			return
		}
		s.mode, s.target = ModeConvert, unit
		fmt.Fprintf(s.out, "mode: convert to %s\n", unit)
	case ":system":
		s.setEnum(args, "system", func(v string) error {
			sys, err := unitz.ParseSystem(v)
			if err == nil {
				s.defaults.Transform.System = sys
			}
			return err
		})
	case ":significant":
		s.setEnum(args, "significant", func(v string) error {
			n, err := strconv.Atoi(v)
			if err != nil || n < -1 {
				return fmt.Errorf("significant must be an integer >= -1, got %q", v)
			}
			s.defaults.Output.Significant = n
			return nil
		})
	case ":format":
		s.setEnum(args, "format", func(v string) error {
			f, err := unitz.ParseOutputFormat(v)
			if err == nil {
				s.defaults.Output.Format = f
			}
			return err
		})
	case ":unit":
		s.setEnum(args, "unit", func(v string) error {
			u, err := unitz.ParseOutputUnit(v)
			if err == nil {
				s.defaults.Output.Unit = u
			}
			return err
		})
	case ":units":
		s.units(args)
	case ":classes":
		for _, c := range s.reg.Classes() {
			fmt.Fprintf(s.out, "  %s (%d units)\n", c.Name(), len(c.Groups()))
		}
		if n := len(s.reg.DynamicGroups()); n > 0 {
			fmt.Fprintf(s.out, "  + %d dynamic\n", n)
		}
	case ":settings":
		s.settings()
	default:
		fmt.Fprintf(s.out, "Unknown command: %s (type :help for commands)\n", cmd)
	}
}

func (s *Session) setEnum(args []string, name string, set func(string) error) {
	if len(args) != 1 {
		fmt.Fprintf(s.out, "usage: :%s <value>\n", name)
		return
	}
	if err := set(args[0]); err != nil {
		fmt.Fprintf(s.out, "error: %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "%s: %s\n", name, args[0])
}

func (s *Session) unknownUnit(unit string) {
	if hint := s.reg.Suggest(unit); hint != "" {
		fmt.Fprintf(s.out, "%v: %q (did you mean %q?)\n", unitz.ErrUnknownUnit, unit, hint)
		return
	}
	fmt.Fprintf(s.out, "%v: %q\n", unitz.ErrUnknownUnit, unit)
}

func (s *Session) units(args []string) {
	prefix := ""
	if len(args) > 0 {
		prefix = args[0]
	}
	var matched []string
	for _, u := range s.reg.Units() {
		if strings.HasPrefix(u, prefix) {
			matched = append(matched, u)
		}
	}
	if len(matched) == 0 {
		fmt.Fprintln(s.out, "(no units)")
		return
	}
	fmt.Fprintln(s.out, strings.Join(matched, " "))
}

func (s *Session) settings() {
	o, t := s.defaults.Output, s.defaults.Transform
	mode := string(s.mode)
	if s.mode == ModeConvert {
		mode += " " + s.target
	}
	fmt.Fprintf(s.out, "  mode:        %s\n", mode)
	fmt.Fprintf(s.out, "  system:      %s\n", t.System)
	fmt.Fprintf(s.out, "  significant: %d\n", o.Significant)
	fmt.Fprintf(s.out, "  format:      %s\n", o.Format)
	fmt.Fprintf(s.out, "  unit:        %s\n", o.Unit)
}

func (s *Session) help() {
	fmt.Fprintln(s.out, "Type a quantity such as \"1 1/2 cups, 2tbsp\" to run it through the current mode.")
	fmt.Fprintln(s.out, "")
	fmt.Fprintln(s.out, "Modes:")
	fmt.Fprintln(s.out, "  :parse           Print quantities as parsed")
	fmt.Fprintln(s.out, "  :normalize       Pick the shortest unit for each value")
	fmt.Fprintln(s.out, "  :compact         Sum each class into one range")
	fmt.Fprintln(s.out, "  :expand          Break values into descending units (1lb, 8oz)")
	fmt.Fprintln(s.out, "  :conversions     List the value in every visible unit")
	fmt.Fprintln(s.out, "  :sort            Sort ranges largest first")
	fmt.Fprintln(s.out, "  :convert <unit>  Convert into one unit")
	fmt.Fprintln(s.out, "")
	fmt.Fprintln(s.out, "Settings:")
	fmt.Fprintln(s.out, "  :system <s>       metric, imperial, any or given")
	fmt.Fprintln(s.out, "  :significant <n>  Decimal places, -1 for all")
	fmt.Fprintln(s.out, "  :format <f>       given, number, mixed, fraction or improper")
	fmt.Fprintln(s.out, "  :unit <u>         given, none, short or long")
	fmt.Fprintln(s.out, "  :settings         Show current settings")
	fmt.Fprintln(s.out, "")
	fmt.Fprintln(s.out, "  :units [prefix]   List known units")
	fmt.Fprintln(s.out, "  :classes          List unit classes")
	fmt.Fprintln(s.out, "  exit, quit        Leave")
}

// Complete returns completions for the last word of line: commands when
// the line starts with ':', known units otherwise.
func (s *Session) Complete(line string) []string {
	if strings.TrimSpace(line) == "" || strings.HasSuffix(line, " ") || strings.HasSuffix(line, "\t") {
		return nil
	}
	words := strings.Fields(line)
	last := words[len(words)-1]
	head := line[:strings.LastIndex(line, last)]

	var candidates []string
	if len(words) == 1 && strings.HasPrefix(last, ":") {
		candidates = commands
	} else {
		candidates = s.reg.Units()
		// a unit typed straight after its number, "24oz"
		if i := strings.IndexFunc(last, isUnitRune); i > 0 {
			head += last[:i]
			last = last[i:]
		}
	}

	var out []string
	for _, c := range candidates {
		if strings.HasPrefix(c, last) && c != last {
			out = append(out, head+c)
		}
	}
	return out
}

func isUnitRune(r rune) bool {
	return !(r >= '0' && r <= '9') && r != '.' && r != '/' && r != '-'
}

// Config controls the interactive prompt.
type Config struct {
	Prompt  string
	History string
	Version string
}

// Start runs the interactive prompt on the terminal until exit or Ctrl+D.
func Start(s *Session, cfg Config) error {
	prompt := cfg.Prompt
	if prompt == "" {
		prompt = DefaultPrompt
	}

	line := liner.NewLiner()
	defer line.Close()

	line.SetCtrlCAborts(true)
	line.SetCompleter(s.Complete)

	if cfg.History != "" {
		if f, err := os.Open(cfg.History); err == nil {
			line.ReadHistory(f)
			f.Close()
		}
		defer func() {
			if f, err := os.Create(cfg.History); err == nil {
				line.WriteHistory(f)
				f.Close()
			}
		}()
	}

	fmt.Fprintf(s.out, "%s", banner)
	fmt.Fprintln(s.out, "v", cfg.Version)
	fmt.Fprintln(s.out, "")
	fmt.Fprintln(s.out, "Type 'exit' or Ctrl+D to quit")
	fmt.Fprintln(s.out, "Use Tab for completion, ↑↓ for history")
	fmt.Fprintln(s.out, "Type ':help' for commands")
	fmt.Fprintln(s.out, "")

	for {
		input, err := line.Prompt(prompt)
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) {
				fmt.Fprintln(s.out, "^C")
				continue
			}
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(s.out, "\nGoodbye!")
				return nil
			}
			return fmt.Errorf("reading input: %w", err)
		}
		if strings.TrimSpace(input) != "" {
			line.AppendHistory(input)
		}
		if !s.Execute(input) {
			return nil
		}
	}
}
