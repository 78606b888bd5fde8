package entities

// PersistedState is the durable snapshot of a quiz session, written after
// every state-mutating operation and read once on startup to attempt a
// restore. The JSON field names are the storage wire format.
type PersistedState struct {
	SourceURL string               `json:"url"`
	Index     int                  `json:"idx"`
	Answered  map[string]ChoiceKey `json:"answered"`
	Score     int                  `json:"score"`
}

// IsZero reports whether the snapshot carries no prior session at all.
func (p PersistedState) IsZero() bool {
	return p.SourceURL == "" && p.Index == 0 && len(p.Answered) == 0 && p.Score == 0
}
