package main

import (
	log "github.com/sirupsen/logrus"

	"github.com/lixenwraith/grid-snake/event"
)

// logEvents writes every game event to the debug log
type logEvents struct {
	logger log.FieldLogger
}

func newLogEvents(logger log.FieldLogger) *logEvents {
	return &logEvents{logger: logger}
}

func (h *logEvents) HandleEvent(ev event.GameEvent) {
	fields := log.Fields{
		"tick":  ev.Tick,
		"event": ev.Type.String(),
	}

	switch p := ev.Payload.(type) {
	case event.MovePayload:
		fields["head"] = [2]int{p.Head.Row, p.Head.Column}
		fields["length"] = p.Length
		fields["score"] = p.Score
	case event.CellPayload:
		fields["cell"] = [2]int{p.Row, p.Column}
	}

	entry := h.logger.WithFields(fields)
	if ev.Type.Terminal() {
		entry.Info("game over")
		return
	}
	entry.Debug("tick")
}
