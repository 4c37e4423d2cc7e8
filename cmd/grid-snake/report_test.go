package main

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/lixenwraith/grid-snake/game"
)

type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) { return 0, errors.New("stdout closed") }

func TestPrintReport(t *testing.T) {
	log.SetOutput(io.Discard)
	log.SetLevel(log.DebugLevel)
	hook := test.NewGlobal()
	defer hook.Reset()

	var buf bytes.Buffer
	printReport(&buf, game.Result{State: game.StateDead, Score: 4})
	if !strings.Contains(buf.String(), "Score: 4") {
		t.Errorf("report missing score: %q", buf.String())
	}
	if len(hook.AllEntries()) != 0 {
		t.Errorf("unexpected log entries on success: %d", len(hook.AllEntries()))
	}

	printReport(brokenWriter{}, game.Result{State: game.StateDead})
	e := hook.LastEntry()
	if e == nil {
		t.Fatal("expected a warning for the failed write")
	}
	if e.Level != log.WarnLevel {
		t.Errorf("level = %v, want warning", e.Level)
	}
	if err, ok := e.Data[log.ErrorKey].(error); !ok || err.Error() != "stdout closed" {
		t.Errorf("error field = %v", e.Data[log.ErrorKey])
	}
}
