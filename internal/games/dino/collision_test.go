package dino

import "testing"

func TestSimultaneousContactsEndRoundOnce(t *testing.T) {
	f := newFixture()
	a, _ := f.round.Spawn()
	b, _ := f.round.Spawn()

	transitions := 0
	f.round.OnGameOver(func(Snapshot) { transitions++ })

	// Two contacts in the same frame
	f.contacts.emit(a.ID)
	f.contacts.emit(b.ID)

	if f.round.State() != GameOver {
		t.Fatalf("state = %s, expected GameOver", f.round.State())
	}
	if transitions != 1 {
		t.Errorf("expected exactly one game-over transition, got %d", transitions)
	}
}

func TestEveryContactIsForwarded(t *testing.T) {
	f := newFixture()

	// The contact source is trusted; the id does not have to be known
	f.contacts.emit(ObstacleID(999))

	if f.round.State() != GameOver {
		t.Errorf("state = %s, expected GameOver", f.round.State())
	}
}

func TestClosedRoundStopsReceivingContacts(t *testing.T) {
	f := newFixture()
	o, _ := f.round.Spawn()

	f.round.Close()
	if len(f.contacts.handlers) != 0 {
		t.Fatalf("close should cancel the contact subscription, %d left", len(f.contacts.handlers))
	}
	if len(f.space.bodies) != 0 {
		t.Errorf("close should remove obstacle bodies, %d left", len(f.space.bodies))
	}

	f.contacts.emit(o.ID)
	if f.round.State() != Running {
		t.Errorf("closed round should not transition, state = %s", f.round.State())
	}

	// Close is idempotent
	f.round.Close()
}

func TestRebuiltRoundHasSingleSubscription(t *testing.T) {
	f := newFixture()
	f.round.Close()

	fresh := NewRound(f.cfg, f.body, f.space, f.contacts)
	defer fresh.Close()

	if len(f.contacts.handlers) != 1 {
		t.Errorf("expected one live subscription after rebuild, got %d", len(f.contacts.handlers))
	}
}
