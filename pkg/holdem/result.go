package holdem

// Event classifies what an applied action caused
type Event string

// event constants
const (
	// EventActionApplied means the action was accepted and play continues in
	// the same betting stage
	EventActionApplied Event = "action-applied"
	// EventStageAdvanced means the betting stage completed and new community
	// cards were dealt
	EventStageAdvanced Event = "stage-advanced"
	// EventShowdown means the hand went to showdown and the pot was paid out
	EventShowdown Event = "showdown"
	// EventRoundEnded means everyone else folded, the pot was awarded without
	// a showdown, and the next round has already been set up
	EventRoundEnded Event = "round-ended"
)

// Result is the typed outcome of an applied action, consumed by the
// presentation layer. Winners and WinLabel are only set for EventShowdown and
// EventRoundEnded.
type Result struct {
	Event      Event     `json:"event"`
	Stage      Stage     `json:"stage"`
	Winners    []*Player `json:"-"`
	WinLabel   string    `json:"winLabel,omitempty"`
	PotAwarded int       `json:"potAwarded,omitempty"`
}
