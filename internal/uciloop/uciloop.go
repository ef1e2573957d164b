// Package uciloop is the process-wide UCI command loop: it reads lines
// from an io.Reader, dispatches them to the uci/game/search packages, and
// writes protocol responses to an io.Writer. This is the one library
// package in the module that logs, following the same shape as the
// zurichess reference's main.go/uci.go Execute dispatch.
package uciloop

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	logging "github.com/op/go-logging"

	"github.com/datavorous/touchgrass/fen"
	"github.com/datavorous/touchgrass/game"
	"github.com/datavorous/touchgrass/search"
	"github.com/datavorous/touchgrass/uci"
)

var log = logging.MustGetLogger("touchgrass")

// ErrQuit is returned by Execute when the "quit" command was processed;
// Run treats it as a clean exit rather than a logged error.
var ErrQuit = fmt.Errorf("uciloop: quit")

// Loop holds the adapter's process-lifetime state: the identification
// strings printed on "uci" and the current game, which starts nil until
// "ucinewgame" or "position" establishes one (mirroring the zurichess
// reference's uci.pos starting nil).
type Loop struct {
	Name   string
	Author string
	out    io.Writer
	g      *game.Game
}

// New returns a Loop that writes protocol output to out.
func New(name, author string, out io.Writer) *Loop {
	return &Loop{Name: name, Author: author, out: out}
}

// Run reads lines from in until EOF or a "quit" command, executing each
// one in turn. It never returns an error for a clean shutdown.
func (l *Loop) Run(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if err := l.Execute(scanner.Text()); err != nil {
			if err == ErrQuit {
				return nil
			}
			log.Warningf("command error: %v", err)
		}
	}
	return scanner.Err()
}

// Execute processes a single UCI line. Malformed or unrecognized commands
// are logged and otherwise ignored, per the protocol's "all others
// silently ignored" rule — the loop itself never exits because of them.
func (l *Loop) Execute(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "uci":
		l.handleUCI()
	case "isready":
		l.println("readyok")
	case "ucinewgame":
		l.g = game.NewGame()
	case "position":
		l.handlePosition(args)
	case "go":
		l.handleGo(args)
	case "quit":
		return ErrQuit
	default:
		log.Infof("unhandled command: %q", line)
	}
	return nil
}

func (l *Loop) handleUCI() {
	l.println(fmt.Sprintf("id name %s", l.Name))
	l.println(fmt.Sprintf("id author %s", l.Author))
	l.println("uciok")
}

func (l *Loop) handlePosition(args []string) {
	cmd, err := uci.ParsePosition(args)
	if err != nil {
		log.Warningf("position: %v", err)
		return
	}

	var g *game.Game
	if cmd.FEN == "" {
		g = game.NewGame()
	} else {
		res, err := fen.Parse(cmd.FEN)
		if err != nil {
			log.Warningf("position fen: %v", err)
			return
		}
		g = game.NewGameFromPosition(res.Board, res.SideToMove)
	}

	for _, mv := range cmd.Moves {
		from, to, promo, hasPromo, err := uci.ParseMove(mv)
		if err != nil {
			log.Warningf("position moves: %v", err)
			return
		}
		m, ok := uci.FindMove(g.LegalMoves(), from, to, promo, hasPromo)
		if !ok {
			log.Warningf("position moves: %q is not legal", mv)
			return
		}
		if err := g.MakeMove(m); err != nil {
			log.Warningf("position moves: %v", err)
			return
		}
	}
	l.g = g
}

func (l *Loop) handleGo(args []string) {
	_ = uci.ParseGo(args)
	if l.g == nil {
		l.g = game.NewGame()
	}

	best, ok := search.BestMove(l.g.LegalMoves())
	if !ok {
		l.println(fmt.Sprintf("bestmove %s", uci.NoMove))
		return
	}
	l.println(fmt.Sprintf("bestmove %s", uci.FormatMove(best)))
}

// println writes s to stdout followed by a newline, and mirrors it to the
// logger as an "info string" line so a GUI watching stdout sees protocol
// traffic, not raw log noise, per the zurichess reference's
// log.SetPrefix("info string ") trick — here done per-line instead of by
// redirecting the whole logger, since the logger's own output stays on
// stderr.
func (l *Loop) println(s string) {
	fmt.Fprintln(l.out, s)
	log.Infof("info string %s", s)
}
