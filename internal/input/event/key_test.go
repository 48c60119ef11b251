package event

import "testing"

func TestKeyString(t *testing.T) {
	tests := []struct {
		key  Key
		want string
	}{
		{KeyEscape, "ESCAPE"},
		{KeyEnter, "RETURN"},
		{KeyKPEnter, "KPENTER"},
		{KeyPageUp, "PAGEUP"},
		{Key('A'), "A"},
		{Key('`'), "`"},
	}

	for _, tt := range tests {
		if got := tt.key.String(); got != tt.want {
			t.Errorf("Key(%d).String() = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestKeyFromName(t *testing.T) {
	tests := []struct {
		name string
		want Key
	}{
		{"ESCAPE", KeyEscape},
		{"escape", KeyEscape},
		{"RETURN", KeyEnter},
		{"KPENTER", KeyKPEnter},
		{"F5", KeyF5},
		{"a", Key('A')},
		{"`", Key('`')},
		{"NOSUCHKEY", KeyNone},
	}

	for _, tt := range tests {
		if got := KeyFromName(tt.name); got != tt.want {
			t.Errorf("KeyFromName(%q) = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestKeyNamesRoundTrip(t *testing.T) {
	for key, name := range keyNames {
		if got := KeyFromName(name); got != key {
			t.Errorf("KeyFromName(%q) = %d, want %d", name, got, key)
		}
	}
}
