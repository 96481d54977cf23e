package player

import "testing"

func TestState_String(t *testing.T) {
	tests := []struct {
		state State
		want  string
	}{
		{Stopped, "Stopped"},
		{Playing, "Playing"},
		{Paused, "Paused"},
		{State(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.state.String(); got != tt.want {
				t.Errorf("State.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestState_IsActive(t *testing.T) {
	tests := []struct {
		state State
		want  bool
	}{
		{Stopped, false},
		{Playing, true},
		{Paused, true},
	}

	for _, tt := range tests {
		t.Run(tt.state.String(), func(t *testing.T) {
			if got := tt.state.IsActive(); got != tt.want {
				t.Errorf("State.IsActive() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPlayer_NewIsStopped(t *testing.T) {
	p := New()
	if p.State() != Stopped {
		t.Errorf("State() = %v, want Stopped", p.State())
	}
	if p.Position() != 0 || p.Duration() != 0 {
		t.Errorf("Position/Duration = %v/%v, want 0/0", p.Position(), p.Duration())
	}
	if p.Path() != "" {
		t.Errorf("Path() = %q, want empty", p.Path())
	}
}

func TestPlayer_PauseResumeIgnoredWhenStopped(t *testing.T) {
	p := New()
	p.Pause()
	if p.State() != Stopped {
		t.Errorf("after Pause: State() = %v, want Stopped", p.State())
	}
	p.Resume()
	if p.State() != Stopped {
		t.Errorf("after Resume: State() = %v, want Stopped", p.State())
	}
	p.Stop()
}

func TestPlayer_PlayFromWithoutLoad(t *testing.T) {
	p := New()
	if err := p.PlayFrom(0); err != ErrNotLoaded {
		t.Errorf("PlayFrom() error = %v, want ErrNotLoaded", err)
	}
}
