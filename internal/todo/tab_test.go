package todo

import (
	"errors"
	"testing"
)

func TestParseTab(t *testing.T) {
	tests := []struct {
		in      string
		want    Tab
		wantErr bool
	}{
		{"home", Home, false},
		{"Work", Work, false},
		{"  PERSONAL ", Personal, false},
		{"", Home, true},
		{"school", Home, true},
	}

	for _, tt := range tests {
		got, err := ParseTab(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrUnknownTab) {
				t.Errorf("ParseTab(%q): expected ErrUnknownTab, got %v", tt.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseTab(%q): unexpected error %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseTab(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestTabNavigation(t *testing.T) {
	if Home.Next() != Work || Work.Next() != Personal || Personal.Next() != Home {
		t.Error("Next should cycle Home -> Work -> Personal -> Home")
	}
	if Home.Prev() != Personal || Personal.Prev() != Work || Work.Prev() != Home {
		t.Error("Prev should cycle Home -> Personal -> Work -> Home")
	}
}

func TestTabTitle(t *testing.T) {
	want := []string{"Home", "Work", "Personal"}
	for i, tab := range Tabs() {
		if tab.Title() != want[i] {
			t.Errorf("expected %q, got %q", want[i], tab.Title())
		}
	}
	if Tab(5).Valid() {
		t.Error("Tab(5) should not be valid")
	}
	if Tab(5).Title() != "Tab(5)" {
		t.Errorf("unexpected title for invalid tab: %q", Tab(5).Title())
	}
}
