package wizard

// FormState is the slice of event-creation form state that step predicates
// look at. Budget is nil until the client enters one.
type FormState struct {
	EventType    string
	Budget       *float64
	GuestCount   int
	WantsLoan    bool
	RemoteGuests bool
}

// Step is one tagged variant in the event-creation wizard. A nil AppliesTo
// means the step is always part of the flow.
type Step struct {
	Kind      string
	Title     string
	AppliesTo func(FormState) bool
}

// NumberedStep is a step with its position in the active sequence. Numbers
// are recomputed every time the form state changes, so skipped steps never
// leave gaps.
type NumberedStep struct {
	Number int    `json:"number"`
	Kind   string `json:"kind"`
	Title  string `json:"title"`
}

// ActiveSteps filters the step list against the current form state,
// preserving list order, and numbers the survivors 1..n.
func ActiveSteps(steps []Step, state FormState) []NumberedStep {
	active := make([]NumberedStep, 0, len(steps))
	for _, s := range steps {
		if s.AppliesTo != nil && !s.AppliesTo(state) {
			continue
		}
		active = append(active, NumberedStep{
			Number: len(active) + 1,
			Kind:   s.Kind,
			Title:  s.Title,
		})
	}
	return active
}

// DefaultSteps is the standard event-creation flow. Venue selection drops
// out for virtual events, financing only appears when the client asked for
// a loan, and the streaming setup step only applies with remote guests.
func DefaultSteps() []Step {
	return []Step{
		{Kind: "basics", Title: "Event Basics"},
		{Kind: "budget", Title: "Budget"},
		{
			Kind:  "venue",
			Title: "Venue Selection",
			AppliesTo: func(s FormState) bool {
				return s.EventType != "virtual"
			},
		},
		{
			Kind:  "streaming",
			Title: "Streaming Setup",
			AppliesTo: func(s FormState) bool {
				return s.EventType == "virtual" || s.RemoteGuests
			},
		},
		{Kind: "vendors", Title: "Vendors & Services"},
		{
			Kind:  "financing",
			Title: "Financing",
			AppliesTo: func(s FormState) bool {
				return s.WantsLoan
			},
		},
		{
			Kind:  "guests",
			Title: "Guest List",
			AppliesTo: func(s FormState) bool {
				return s.GuestCount > 0
			},
		},
		{Kind: "review", Title: "Review & Create"},
	}
}
