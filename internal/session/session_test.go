package session

import "testing"

func TestDeadEndKey(t *testing.T) {
	tests := []struct {
		locationID string
		direction  string
		expected   string
	}{
		{"whispering_woods", "north", "whispering_woods_north"},
		{"whispering_woods", "North", "whispering_woods_north"},
		{"cave_entrance", "SOUTH", "cave_entrance_south"},
	}

	for _, tt := range tests {
		if got := DeadEndKey(tt.locationID, tt.direction); got != tt.expected {
			t.Errorf("DeadEndKey(%q, %q) = %q, want %q",
				tt.locationID, tt.direction, got, tt.expected)
		}
	}
}

func TestDeadEndMemory(t *testing.T) {
	s := New()

	if s.IsDeadEnd("woods", "north") {
		t.Error("fresh session should have no dead ends")
	}

	s.RecordDeadEnd("woods", "North")
	if !s.IsDeadEnd("woods", "north") {
		t.Error("recorded dead end not found")
	}
	if !s.IsDeadEnd("woods", "NORTH") {
		t.Error("dead-end lookup should ignore direction case")
	}
	if s.IsDeadEnd("woods", "south") {
		t.Error("unrecorded direction reported as dead end")
	}

	// Recording twice must not double-count.
	s.RecordDeadEnd("woods", "north")
	if s.DeadEndCount() != 1 {
		t.Errorf("DeadEndCount() = %d, want 1", s.DeadEndCount())
	}
}

func TestRecordDeadEndIgnoresEmptyInputs(t *testing.T) {
	s := New()
	s.RecordDeadEnd("", "north")
	s.RecordDeadEnd("woods", "")
	if s.DeadEndCount() != 0 {
		t.Errorf("DeadEndCount() = %d, want 0", s.DeadEndCount())
	}
}

func TestResetForCharacter(t *testing.T) {
	s := New()
	s.RecordDeadEnd("woods", "north")
	s.Paused = true
	s.ActiveForInput = true
	_ = s.NexusReady()

	s.ResetForCharacter()

	if s.DeadEndCount() != 0 {
		t.Error("dead ends should be cleared per character")
	}
	if s.Paused {
		t.Error("pause should be cleared per character")
	}
	if !s.ActiveForInput {
		t.Error("ActiveForInput is not per-character state")
	}
	if !s.NexusReady() {
		t.Error("one-time wiring flags survive a character switch")
	}
}

func TestResetToMenu(t *testing.T) {
	s := New()
	s.RecordDeadEnd("woods", "north")
	s.Paused = true
	s.ActiveForInput = true
	_ = s.NexusReady()
	_ = s.VPadReady()

	s.ResetToMenu()

	if s.DeadEndCount() != 0 || s.Paused || s.ActiveForInput {
		t.Error("menu reset should clear all play-session state")
	}
	if s.NexusReady() {
		t.Error("menu reset should rearm the one-time wiring flags")
	}
}

func TestOneTimeFlags(t *testing.T) {
	s := New()
	if s.NexusReady() {
		t.Error("first NexusReady call should report false")
	}
	if !s.NexusReady() {
		t.Error("second NexusReady call should report true")
	}
	if s.VPadReady() {
		t.Error("first VPadReady call should report false")
	}
	if !s.VPadReady() {
		t.Error("second VPadReady call should report true")
	}
}
