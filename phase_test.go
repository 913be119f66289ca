package cubie

import "testing"

func TestPhaseDetection(t *testing.T) {
	s := SolvedState()
	if phase := s.Phase(); phase != PhaseSolved {
		t.Errorf("Solved cube should detect as PhaseSolved, got %v", phase)
	}

	s.Apply(R)
	if phase := s.Phase(); phase != PhaseScrambled {
		t.Errorf("R breaks the white cross, got %v", phase)
	}
}

func TestPhaseDetection_Staged(t *testing.T) {
	tests := []struct {
		name  string
		setup func(s *State)
		want  Phase
	}{
		{
			name:  "D turn only disturbs the last layer",
			setup: func(s *State) { s.Apply(D) },
			want:  PhaseYellowCross,
		},
		{
			name: "twisted D corners",
			setup: func(s *State) {
				s.CO[DFR] = 1
				s.CO[DLF] = 2
			},
			want: PhaseYellowCorners,
		},
		{
			name: "D edges cycled",
			setup: func(s *State) {
				s.EP[DR], s.EP[DF], s.EP[DL] = uint8(DF), uint8(DL), uint8(DR)
			},
			want: PhaseYellowOriented,
		},
		{
			name: "flipped D edge",
			setup: func(s *State) {
				s.EO[DB] = 1
				s.EO[DL] = 1
			},
			want: PhaseSecondLayer,
		},
		{
			name: "middle edge out",
			setup: func(s *State) {
				s.EP[FR], s.EP[DF] = uint8(DF), uint8(FR)
			},
			want: PhaseFirstLayer,
		},
		{
			name: "U corner twisted",
			setup: func(s *State) {
				s.CO[UBR] = 2
				s.CO[DRB] = 1
			},
			want: PhaseWhiteCross,
		},
		{
			name:  "U edges swapped by T-perm",
			setup: func(s *State) { s.Apply(TPerm...) },
			want:  PhaseScrambled,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := SolvedState()
			tt.setup(&s)
			if got := s.Phase(); got != tt.want {
				t.Errorf("Phase() = %v, want %v", got, tt.want)
				t.Log(s.String())
			}
		})
	}
}

func TestProgress_Solved(t *testing.T) {
	s := SolvedState()
	p := s.Progress()
	want := Progress{true, true, true, true, true, true, true}
	if p != want {
		t.Errorf("Progress() = %+v, want all complete", p)
	}
}

func TestPhaseNames(t *testing.T) {
	for p := PhaseScrambled; p <= PhaseSolved; p++ {
		if p.String() == "unknown" || p.DisplayName() == "Unknown" {
			t.Errorf("phase %d has no name", int(p))
		}
	}
	if Phase(99).String() != "unknown" {
		t.Error("out of range phase should be unknown")
	}
}
