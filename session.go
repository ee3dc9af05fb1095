package gcodegen

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/leftmike/gcodegen/internal/log"
)

type Command byte

const (
	UnknownCommand Command = iota
	CircleCommand
	SquareCommand
	RectangleCommand
	DrillCommand
	MoveCommand
	CutCommand
	ToggleLiftCommand
	HelpCommand
	QuitCommand
)

type commandInfo struct {
	letter byte
	name   string
	help   string
	prompt string
	args   int
}

var commands = map[Command]commandInfo{
	CircleCommand:     {'c', "circle", "circle", "Circle radius:", 1},
	SquareCommand:     {'s', "square", "square", "Square side:", 1},
	RectangleCommand:  {'r', "rectangle", "rectangle", "Rectangle X and Y:", 2},
	DrillCommand:      {'o', "drill-centre", "drill centre", "Centre X and Y:", 2},
	MoveCommand:       {'m', "move", "move", "Move X and Y:", 2},
	CutCommand:        {'l', "cut", "cut line", "Cut X and Y:", 2},
	ToggleLiftCommand: {'t', "toggle-lift", "toggle lift at end of move", "", 0},
	HelpCommand:       {'h', "help", "print this list", "", 0},
	QuitCommand:       {'q', "quit", "quit", "", 0},
}

var commandOrder = []Command{
	CircleCommand, SquareCommand, RectangleCommand, DrillCommand, MoveCommand, CutCommand,
	ToggleLiftCommand, HelpCommand, QuitCommand,
}

// ParseCommand maps a command character to its Command; anything not listed is
// UnknownCommand.
func ParseCommand(c byte) Command {
	for cmd, info := range commands {
		if info.letter == c {
			return cmd
		}
	}
	return UnknownCommand
}

func (cmd Command) String() string {
	info, ok := commands[cmd]
	if !ok {
		return "unknown"
	}
	return info.name
}

// Session reads commands from one stream and writes the program and its comments
// to another. It owns the machine State and the lift Policy.
type Session struct {
	State  State
	Policy Policy

	// Echo writes the tokens that answer each prompt after it, ending the line.
	Echo bool

	Logger *slog.Logger

	scanner *Scanner
	out     *Writer
	emitter *Emitter
}

func NewSession(in io.ByteScanner, out *Writer, em *Emitter) *Session {
	return &Session{
		State:   NewState(em.Tooling()),
		Policy:  Policy{LiftAtEndOfMove: true},
		Logger:  log.Logger,
		scanner: &Scanner{Scanner: in},
		out:     out,
		emitter: em,
	}
}

// Run processes commands until quit or the end of the input.
func (s *Session) Run() error {
	err := s.out.Comment("G Code Generator\nType h for help.")
	if err != nil {
		return err
	}

	for {
		cmd, letter, err := s.readCommand()
		if err == io.EOF {
			break
		} else if err != nil {
			return err
		}
		if cmd == QuitCommand {
			break
		}

		err = s.execute(cmd, letter)
		if err == io.EOF {
			break
		} else if err != nil {
			return err
		}
	}

	return s.out.Comment("Bye!")
}

func (s *Session) readCommand() (Command, byte, error) {
	err := s.out.Prompt("Command:")
	if err != nil {
		return UnknownCommand, 0, err
	}
	c, err := s.scanner.Command()
	if err != nil {
		if err == io.EOF {
			s.out.EndPrompt("")
		}
		return UnknownCommand, 0, err
	}
	if s.Echo {
		err = s.out.EndPrompt(string(c))
		if err != nil {
			return UnknownCommand, 0, err
		}
	}
	return ParseCommand(c), c, nil
}

// readArgs prompts for n numbers. A token that is not a number is reported and the
// prompt repeated from the first number.
func (s *Session) readArgs(prompt string, n int) ([]float64, error) {
	for {
		err := s.out.Prompt(prompt)
		if err != nil {
			return nil, err
		}

		var args []float64
		var toks []string
		for len(args) < n {
			num, tok, err := s.scanner.Number()
			if errors.Is(err, ErrNotANumber) {
				toks = append(toks, tok)
				break
			} else if err != nil {
				if err == io.EOF {
					s.out.EndPrompt("")
				}
				return nil, err
			}
			args = append(args, num)
			toks = append(toks, tok)
		}

		if s.Echo {
			err = s.out.EndPrompt(strings.Join(toks, " "))
			if err != nil {
				return nil, err
			}
		}
		if len(args) == n {
			return args, nil
		}

		s.Logger.Warn("bad argument", "prompt", prompt, "token", toks[len(toks)-1])
		err = s.out.Comment(fmt.Sprintf("Not a number: %q", toks[len(toks)-1]))
		if err != nil {
			return nil, err
		}
	}
}

func (s *Session) execute(cmd Command, letter byte) error {
	info := commands[cmd]
	var args []float64
	if info.args > 0 {
		var err error
		args, err = s.readArgs(info.prompt, info.args)
		if err != nil {
			return err
		}
	}

	var err error
	switch cmd {
	case CircleCommand:
		s.State, err = s.emitter.Circle(s.State, args[0])
	case SquareCommand:
		s.State, err = s.emitter.Rectangle(s.State, args[0], args[0])
	case RectangleCommand:
		s.State, err = s.emitter.Rectangle(s.State, args[0], args[1])
	case DrillCommand:
		s.State, err = s.emitter.DrillPoint(s.State, s.Policy, args[0], args[1])
	case MoveCommand:
		s.State, err = s.emitter.RapidMove(s.State, args[0], args[1])
	case CutCommand:
		s.State, err = s.emitter.CutLine(s.State, s.Policy, args[0], args[1])
	case ToggleLiftCommand:
		s.Policy.LiftAtEndOfMove = !s.Policy.LiftAtEndOfMove
		err = s.out.Comment("Lift at end of move: " + onOff(s.Policy.LiftAtEndOfMove))
	case HelpCommand:
		err = s.help()
	default:
		// An unknown command is reported and then treated as a request for help.
		s.Logger.Warn("unrecognised command", "command", string(letter))
		err = s.out.Blank()
		if err == nil {
			err = s.out.Comment("Unrecognised command - " + string(letter))
		}
		if err == nil {
			err = s.help()
		}
	}
	if err != nil {
		return err
	}

	s.Logger.Debug("command", "command", cmd, "args", args, "state", s.State,
		"lift", s.Policy.LiftAtEndOfMove)
	return nil
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func (s *Session) help() error {
	var b strings.Builder
	b.WriteString("Commands:\n")
	for _, cmd := range commandOrder {
		info := commands[cmd]
		fmt.Fprintf(&b, " %c: - %s\n", info.letter, info.help)
	}
	b.WriteString("Lift at end of move: " + onOff(s.Policy.LiftAtEndOfMove))

	err := s.out.Blank()
	if err != nil {
		return err
	}
	err = s.out.Comment(b.String())
	if err != nil {
		return err
	}
	return s.out.Blank()
}
