package audit

import (
	"github.com/nao1215/stkscan/internal/model"
)

// recordingObserver collects events for assertions.
type recordingObserver struct {
	events   []string
	details  []model.DetailRecord
	warnings []model.CorruptionWarning
	failures []string
}

func (o *recordingObserver) WorldStarted(target model.Target) {
	o.events = append(o.events, "start:"+target.Name)
}

func (o *recordingObserver) DetailFound(rec model.DetailRecord) {
	o.events = append(o.events, "detail:"+rec.WorldName)
	o.details = append(o.details, rec)
}

func (o *recordingObserver) BoardCorrupted(w model.CorruptionWarning) {
	o.events = append(o.events, "corrupt:"+w.BoardTitle)
	o.warnings = append(o.warnings, w)
}

func (o *recordingObserver) WorldFailed(target model.Target, _ error) {
	o.events = append(o.events, "failed:"+target.Name)
	o.failures = append(o.failures, target.Name)
}

// board builds a board whose elements occupy consecutive tiles.
func board(title string, elems ...[2]int) model.Board {
	b := model.Board{Title: title, Elements: make([]model.Element, 0, len(elems))}
	for i, e := range elems {
		b.Elements = append(b.Elements, model.Element{TypeID: e[0], Color: e[1], Tile: i})
	}
	return b
}
