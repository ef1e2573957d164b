package uciloop

import (
	"bytes"
	"strings"
	"testing"

	"github.com/datavorous/touchgrass/bitboard"
)

func TestMain(m *testing.M) {
	bitboard.Init()
	m.Run()
}

func TestUCIHandshake(t *testing.T) {
	var out bytes.Buffer
	l := New("touchgrass", "test-author", &out)

	script := "uci\nisready\nucinewgame\nposition startpos moves e2e4\ngo depth 1\nquit\n"
	if err := l.Run(strings.NewReader(script)); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	got := out.String()
	for _, want := range []string{"id name touchgrass", "id author test-author", "uciok", "readyok", "bestmove "} {
		if !strings.Contains(got, want) {
			t.Fatalf("output %q missing %q", got, want)
		}
	}
}

func TestUnknownCommandIsIgnored(t *testing.T) {
	var out bytes.Buffer
	l := New("touchgrass", "test-author", &out)
	if err := l.Execute("notacommand with args"); err != nil {
		t.Fatalf("Execute returned error for an unknown command: %v", err)
	}
}

func TestQuitStopsTheLoop(t *testing.T) {
	var out bytes.Buffer
	l := New("touchgrass", "test-author", &out)
	if err := l.Run(strings.NewReader("quit\nuci\n")); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if strings.Contains(out.String(), "uciok") {
		t.Fatalf("commands after quit should not have been processed")
	}
}
