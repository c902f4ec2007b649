package schema

// StateRecord is the wire form of a single state. Position is an (x, y)
// pair kept for visual editors.
type StateRecord struct {
	ID       string     `json:"id" yaml:"id" mapstructure:"id"`
	IsFinal  bool       `json:"is_final" yaml:"is_final" mapstructure:"is_final"`
	Label    string     `json:"label,omitempty" yaml:"label,omitempty" mapstructure:"label"`
	Position [2]float64 `json:"position" yaml:"position,flow" mapstructure:"position"`
}

// TransitionRecord is the wire form of a transition. An empty symbol is
// the epsilon marker.
type TransitionRecord struct {
	FromStateID string `json:"from_state_id" yaml:"from_state_id" mapstructure:"from_state_id"`
	ToStateID   string `json:"to_state_id" yaml:"to_state_id" mapstructure:"to_state_id"`
	Symbol      string `json:"symbol" yaml:"symbol" mapstructure:"symbol"`
}

// Document is the wire form of a whole automaton: the sole data exchange
// format between the core and any UI or API layer.
type Document struct {
	States         []StateRecord      `json:"states" yaml:"states" mapstructure:"states"`
	Transitions    []TransitionRecord `json:"transitions" yaml:"transitions" mapstructure:"transitions"`
	InitialStateID *string            `json:"initial_state_id" yaml:"initial_state_id" mapstructure:"initial_state_id"`
	FinalStateIDs  []string           `json:"final_state_ids" yaml:"final_state_ids" mapstructure:"final_state_ids"`
	Alphabet       []string           `json:"alphabet" yaml:"alphabet" mapstructure:"alphabet"`
}
