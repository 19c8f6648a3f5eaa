package wizard

import "testing"

func kinds(steps []NumberedStep) []string {
	out := make([]string, 0, len(steps))
	for _, s := range steps {
		out = append(out, s.Kind)
	}
	return out
}

func TestActiveStepsVirtualEventSkipsVenue(t *testing.T) {
	steps := ActiveSteps(DefaultSteps(), FormState{EventType: "virtual"})

	for _, s := range steps {
		if s.Kind == "venue" {
			t.Fatal("venue step must not apply to virtual events")
		}
	}

	found := false
	for _, s := range steps {
		if s.Kind == "streaming" {
			found = true
		}
	}
	if !found {
		t.Fatal("streaming step must apply to virtual events")
	}
}

func TestActiveStepsNumberingIsConsecutive(t *testing.T) {
	steps := ActiveSteps(DefaultSteps(), FormState{
		EventType:  "wedding",
		GuestCount: 120,
		WantsLoan:  true,
	})

	for i, s := range steps {
		if s.Number != i+1 {
			t.Fatalf("step %q numbered %d, expected %d", s.Kind, s.Number, i+1)
		}
	}
}

func TestActiveStepsPreservesOrder(t *testing.T) {
	steps := ActiveSteps(DefaultSteps(), FormState{EventType: "wedding", GuestCount: 10})

	want := []string{"basics", "budget", "venue", "vendors", "guests", "review"}
	got := kinds(steps)
	if len(got) != len(want) {
		t.Fatalf("expected steps %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected steps %v, got %v", want, got)
		}
	}
}

func TestActiveStepsConditionalFinancing(t *testing.T) {
	without := ActiveSteps(DefaultSteps(), FormState{EventType: "wedding"})
	for _, s := range without {
		if s.Kind == "financing" {
			t.Fatal("financing step must not apply without a loan request")
		}
	}

	with := ActiveSteps(DefaultSteps(), FormState{EventType: "wedding", WantsLoan: true})
	found := false
	for _, s := range with {
		if s.Kind == "financing" {
			found = true
		}
	}
	if !found {
		t.Fatal("financing step must apply when a loan is requested")
	}
}

func TestActiveStepsDeterministic(t *testing.T) {
	state := FormState{EventType: "corporate", GuestCount: 50, RemoteGuests: true}
	first := kinds(ActiveSteps(DefaultSteps(), state))
	second := kinds(ActiveSteps(DefaultSteps(), state))
	if len(first) != len(second) {
		t.Fatal("identical state produced different step sequences")
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatal("identical state produced different step sequences")
		}
	}
}
