package service

import "time"

// Report summarizes one pipeline run.
type Report struct {
	StartedAt  time.Time
	FinishedAt time.Time
	Reached    State

	Models    Outcome
	Devices   int
	Instances Outcome
	Mappings  Outcome
	Modes     Outcome
	Learning  Outcome

	Verification []VerificationRow
	Diagnosis    []DiagnosisRow
	Warnings     []string
}

// Complete reports whether the run reached the final state.
func (r *Report) Complete() bool {
	return r.Reached == StateDiagnosed
}

func nowUTC() time.Time {
	return time.Now().UTC()
}
