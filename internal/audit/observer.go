package audit

import "github.com/nao1215/stkscan/internal/model"

// Observer receives audit events in the order they occur.
type Observer interface {
	// WorldStarted is called before a world is read.
	WorldStarted(target model.Target)

	// DetailFound is called for every non-standard element when detail mode is on.
	DetailFound(rec model.DetailRecord)

	// BoardCorrupted is called when a board scan stops on an unknown element id.
	BoardCorrupted(w model.CorruptionWarning)

	// WorldFailed is called when a world could not be read.
	WorldFailed(target model.Target, err error)
}

// NopObserver ignores every event.
type NopObserver struct{}

// WorldStarted implements Observer.
func (NopObserver) WorldStarted(model.Target) {}

// DetailFound implements Observer.
func (NopObserver) DetailFound(model.DetailRecord) {}

// BoardCorrupted implements Observer.
func (NopObserver) BoardCorrupted(model.CorruptionWarning) {}

// WorldFailed implements Observer.
func (NopObserver) WorldFailed(model.Target, error) {}
