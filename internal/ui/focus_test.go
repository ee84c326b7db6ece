package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestFocusManager_Rotation(t *testing.T) {
	var moves []string
	f := &FocusManager{
		Order: []string{"a", "b", "c"},
		OnChange: func(from, to string) tea.Cmd {
			moves = append(moves, from+">"+to)
			return nil
		},
	}

	f.Next()
	f.Next()
	f.Next()
	f.Next()
	if f.Current != "a" {
		t.Errorf("expected wrap to a, got %q", f.Current)
	}
	f.Prev()
	if f.Current != "c" {
		t.Errorf("expected prev wrap to c, got %q", f.Current)
	}
	f.Clear()
	f.Clear()

	want := []string{">a", "a>b", "b>c", "c>a", "a>c", "c>"}
	if len(moves) != len(want) {
		t.Fatalf("expected moves %v, got %v", want, moves)
	}
	for i := range want {
		if moves[i] != want[i] {
			t.Errorf("move %d: expected %q, got %q", i, want[i], moves[i])
		}
	}
}

func TestFocusManager_PrevFromNothing(t *testing.T) {
	f := &FocusManager{Order: []string{"a", "b"}}
	f.Prev()
	if f.Current != "b" {
		t.Errorf("expected b, got %q", f.Current)
	}
}

func TestFocusManager_SetFocus(t *testing.T) {
	f := &FocusManager{Order: []string{"a", "b"}}
	if _, ok := f.SetFocus("b"); !ok || f.Current != "b" {
		t.Errorf("expected focus on b, got %q (ok=%v)", f.Current, ok)
	}
	if _, ok := f.SetFocus("zzz"); ok {
		t.Error("expected unknown id to be rejected")
	}
	if f.Current != "b" {
		t.Errorf("focus should be unchanged, got %q", f.Current)
	}
}

func TestFocusManager_Empty(t *testing.T) {
	f := &FocusManager{}
	if f.Next() != nil || f.Prev() != nil || f.Current != "" {
		t.Error("empty manager should do nothing")
	}
}
