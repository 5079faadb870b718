package service

// State is the position of a pipeline run. Transitions are forward-only,
// one step at a time, and never rolled back.
type State int

const (
	StateLoggedOut State = iota
	StateAuthenticated
	StateModelsReady
	StateInstancesReady
	StateMappingsAttached
	StateModesAttached
	StateLearningStarted
	StateVerified
	StateDiagnosed
)

var stateNames = [...]string{
	StateLoggedOut:        "LoggedOut",
	StateAuthenticated:    "Authenticated",
	StateModelsReady:      "ModelsReady",
	StateInstancesReady:   "InstancesReady",
	StateMappingsAttached: "MappingsAttached",
	StateModesAttached:    "ModesAttached",
	StateLearningStarted:  "LearningStarted",
	StateVerified:         "Verified",
	StateDiagnosed:        "Diagnosed",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "Unknown"
	}
	return stateNames[s]
}

// Next returns the only state reachable from s.
func (s State) Next() (State, bool) {
	if s >= StateDiagnosed || s < 0 {
		return s, false
	}
	return s + 1, true
}
