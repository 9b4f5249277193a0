package uci

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/nanochess-go/chess/pkg/common"
)

// Engine is the interface the protocol drives; it is implemented by
// *engine.Engine. Search is synchronous: the command loop blocks on it for
// the duration of a "go", matching §5 ("go blocks until bestmove is
// emitted; stop mid-search is not supported").
type Engine interface {
	Prepare()
	Clear()
	Search(ctx context.Context, params common.SearchParams) common.SearchInfo
}

type Protocol struct {
	name     string
	author   string
	version  string
	options  []Option
	engine   Engine
	position common.Position
}

func New(name, author, version string, engine Engine, options []Option) *Protocol {
	return &Protocol{
		name:     name,
		author:   author,
		version:  version,
		engine:   engine,
		options:  options,
		position: common.NewInitialPosition(),
	}
}

// Run reads UCI commands from stdin until "quit" or EOF. Malformed input
// and command errors are logged and skipped; the loop always continues to
// the next line, per §7.
func (u *Protocol) Run(logger *log.Logger) {
	var scanner = bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		var line = scanner.Text()
		if line == "quit" {
			return
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		if err := u.handle(line); err != nil {
			logger.Println(err)
		}
	}
}

func (u *Protocol) handle(commandLine string) error {
	var fields = strings.Fields(commandLine)
	var commandName = fields[0]
	fields = fields[1:]

	switch commandName {
	case "uci":
		return u.uciCommand()
	case "isready":
		return u.isReadyCommand()
	case "ucinewgame":
		return u.uciNewGameCommand()
	case "setoption":
		return u.setOptionCommand(fields)
	case "position":
		return u.positionCommand(fields)
	case "go":
		return u.goCommand(fields)
	default:
		// unrecognized command: silently ignored, per §7.
		return nil
	}
}

func (u *Protocol) uciCommand() error {
	fmt.Printf("id name %s %s\n", u.name, u.version)
	fmt.Printf("id author %s\n", u.author)
	for _, option := range u.options {
		fmt.Println(option.UciString())
	}
	fmt.Println("uciok")
	return nil
}

func (u *Protocol) isReadyCommand() error {
	u.engine.Prepare()
	fmt.Println("readyok")
	return nil
}

func (u *Protocol) uciNewGameCommand() error {
	u.position = common.NewInitialPosition()
	u.engine.Clear()
	return nil
}

func (u *Protocol) setOptionCommand(fields []string) error {
	var nameIndex = indexOf(fields, "name")
	var valueIndex = indexOf(fields, "value")
	if nameIndex < 0 || valueIndex < 0 || valueIndex <= nameIndex {
		// malformed setoption: ignored, not reported.
		return nil
	}
	var name = strings.Join(fields[nameIndex+1:valueIndex], " ")
	var value = strings.Join(fields[valueIndex+1:], " ")
	for _, option := range u.options {
		if strings.EqualFold(option.UciName(), name) {
			return option.Set(value)
		}
	}
	return nil
}

// positionCommand resets the board and applies trailing moves. The FEN
// path accepts and consumes the FEN tokens for protocol shape but does not
// parse them: this mirrors the original engine's documented limitation
// (see §9's FEN-parsing open question) rather than silently fixing it.
func (u *Protocol) positionCommand(fields []string) error {
	if len(fields) == 0 {
		return nil
	}
	var movesIndex = indexOf(fields, "moves")

	u.position = common.NewInitialPosition()

	if movesIndex >= 0 && movesIndex+1 < len(fields) {
		for _, lan := range fields[movesIndex+1:] {
			var m, ok = common.ParseLANMove(&u.position, lan)
			if !ok {
				// unparseable or illegal move string: skipped, remaining
				// moves still applied against the current position.
				continue
			}
			var next common.Position
			u.position.MakeMove(m, &next)
			u.position = next
		}
	}
	return nil
}

func (u *Protocol) goCommand(fields []string) error {
	var limits = parseLimits(fields)
	var result = u.engine.Search(context.Background(), common.SearchParams{
		Position: u.position,
		Limits:   limits,
		Progress: func(si common.SearchInfo) {
			fmt.Println(searchInfoToUci(si))
		},
	})

	if len(result.MainLine) > 0 {
		fmt.Printf("bestmove %v\n", result.MainLine[0])
	} else {
		fmt.Println("bestmove 0000")
	}
	return nil
}

func searchInfoToUci(si common.SearchInfo) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "info depth %v", si.Depth)
	if si.Score.Mate != 0 {
		fmt.Fprintf(&sb, " score mate %v", si.Score.Mate)
	} else {
		fmt.Fprintf(&sb, " score cp %v", si.Score.Centipawns)
	}
	var timeMs = si.Time.Milliseconds()
	var nps = si.Nodes * 1000 / (timeMs + 1)
	fmt.Fprintf(&sb, " nodes %v time %v nps %v", si.Nodes, timeMs, nps)
	if len(si.MainLine) != 0 {
		sb.WriteString(" pv")
		for _, m := range si.MainLine {
			sb.WriteString(" ")
			sb.WriteString(m.String())
		}
	}
	return sb.String()
}

func parseLimits(args []string) (result common.LimitsType) {
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "wtime":
			result.WhiteTime, _ = strconv.Atoi(valueAt(args, i))
			i++
		case "btime":
			result.BlackTime, _ = strconv.Atoi(valueAt(args, i))
			i++
		case "winc":
			result.WhiteIncrement, _ = strconv.Atoi(valueAt(args, i))
			i++
		case "binc":
			result.BlackIncrement, _ = strconv.Atoi(valueAt(args, i))
			i++
		case "movestogo":
			result.MovesToGo, _ = strconv.Atoi(valueAt(args, i))
			i++
		case "depth":
			result.Depth, _ = strconv.Atoi(valueAt(args, i))
			i++
		case "movetime":
			result.MoveTime, _ = strconv.Atoi(valueAt(args, i))
			i++
		case "infinite":
			result.Infinite = true
		}
	}
	return
}

func valueAt(args []string, i int) string {
	if i+1 < len(args) {
		return args[i+1]
	}
	return ""
}

func indexOf(fields []string, value string) int {
	for i, f := range fields {
		if f == value {
			return i
		}
	}
	return -1
}
