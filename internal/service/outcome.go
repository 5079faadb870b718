package service

import (
	"fmt"

	"motor_seeder/internal/metrics"
)

// Outcome counts what a stage did with its items.
type Outcome struct {
	Created    int
	Duplicates int
	Failed     int
	Discovered int
	Skipped    int
}

func (o Outcome) String() string {
	return fmt.Sprintf("created=%d duplicates=%d failed=%d discovered=%d skipped=%d",
		o.Created, o.Duplicates, o.Failed, o.Discovered, o.Skipped)
}

// record adds the outcome to the entity counters.
func (o Outcome) record(rec *metrics.Recorder, entity string) {
	rec.AddEntities(entity, metrics.OutcomeCreated, o.Created)
	rec.AddEntities(entity, metrics.OutcomeDuplicate, o.Duplicates)
	rec.AddEntities(entity, metrics.OutcomeFailed, o.Failed)
	rec.AddEntities(entity, metrics.OutcomeDiscovered, o.Discovered)
	rec.AddEntities(entity, metrics.OutcomeSkipped, o.Skipped)
}
