package results

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/quizzy/internal/quiz"
	"github.com/abhisek/quizzy/internal/screen"
)

func testResults() quiz.ShowResults {
	return quiz.ShowResults{Score: 1, Total: 2, Percentage: 50}
}

func TestResultsScreen_Title(t *testing.T) {
	s := New("Science", testResults())
	if s.Title() != "Results" {
		t.Errorf("Title = %q, want %q", s.Title(), "Results")
	}
}

func TestResultsScreen_Display(t *testing.T) {
	s := New("Science", testResults())
	view := s.View(100, 30)
	for _, want := range []string{"Science complete!", "You scored 1 out of 2", "50%", "RESTART", "HOME"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestResultsScreen_EnterRestarts(t *testing.T) {
	s := New("Science", testResults())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on Enter")
	}
	if _, ok := cmd().(screen.RestartMsg); !ok {
		t.Fatalf("expected RestartMsg, got %T", cmd())
	}
}

func TestResultsScreen_DownEnterGoesHome(t *testing.T) {
	s := New("Science", testResults())
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on Enter")
	}
	if _, ok := cmd().(screen.GoHomeMsg); !ok {
		t.Fatalf("expected GoHomeMsg, got %T", cmd())
	}
}

func TestResultsScreen_RestartShortcut(t *testing.T) {
	s := New("Science", testResults())
	_, cmd := s.Update(tea.KeyPressMsg{Code: 'r', Text: "r"})
	if cmd == nil {
		t.Fatal("expected a command on r")
	}
	if _, ok := cmd().(screen.RestartMsg); !ok {
		t.Fatalf("expected RestartMsg, got %T", cmd())
	}
}

func TestResultsScreen_KeyHints(t *testing.T) {
	s := New("Science", testResults())
	if len(s.KeyHints()) != 5 {
		t.Errorf("KeyHints length = %d, want 5", len(s.KeyHints()))
	}
}

func TestVerdict(t *testing.T) {
	tests := []struct {
		pct  int
		want string
	}{
		{100, "Flawless!"},
		{50, "Nicely done."},
		{33, "Give it another go."},
	}
	for _, tt := range tests {
		if got := verdict(tt.pct); got != tt.want {
			t.Errorf("verdict(%d) = %q, want %q", tt.pct, got, tt.want)
		}
	}
}
