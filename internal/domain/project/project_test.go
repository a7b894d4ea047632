package project

import (
	"errors"
	"strings"
	"testing"

	"github.com/MariuszKam/Organizer/internal/domain"
	"github.com/MariuszKam/Organizer/internal/domain/task"
)

func mustProject(t *testing.T, name string) *Project {
	t.Helper()
	n, err := NewName(name)
	if err != nil {
		t.Fatalf("NewName(%q) error = %v", name, err)
	}
	p, err := New(NewID(), n)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return p
}

func TestNewName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{
			name: "trimmed",
			raw:  "  Organizer v2 ",
			want: "Organizer v2",
		},
		{
			name: "punctuation allowed",
			raw:  "Q3: launch!",
			want: "Q3: launch!",
		},
		{
			name: "fifty characters",
			raw:  strings.Repeat("p", 50),
			want: strings.Repeat("p", 50),
		},
		{
			name:    "fifty-one characters",
			raw:     strings.Repeat("p", 51),
			wantErr: true,
		},
		{
			name:    "blank",
			raw:     "   ",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := NewName(tt.raw)
			if tt.wantErr {
				if !errors.Is(err, domain.ErrInvalidFormat) {
					t.Errorf("NewName(%q) error = %v, want ErrInvalidFormat", tt.raw, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewName(%q) error = %v, want nil", tt.raw, err)
			}
			if got.String() != tt.want {
				t.Errorf("NewName(%q) = %q, want %q", tt.raw, got.String(), tt.want)
			}
		})
	}
}

func TestParseID_TrimsAndRejectsNil(t *testing.T) {
	t.Parallel()

	id := NewID()
	parsed, err := ParseID(" " + id.String() + " ")
	if err != nil {
		t.Fatalf("ParseID() error = %v", err)
	}
	if parsed != id {
		t.Errorf("ParseID() = %v, want %v", parsed, id)
	}

	if _, err := ParseID("00000000-0000-0000-0000-000000000000"); !errors.Is(err, domain.ErrInvalidFormat) {
		t.Errorf("ParseID(nil uuid) error = %v, want ErrInvalidFormat", err)
	}
}

func TestProject_AddTask(t *testing.T) {
	t.Parallel()

	t.Run("preserves insertion order", func(t *testing.T) {
		t.Parallel()
		p := mustProject(t, "Sprint 1")
		first, second := task.NewID(), task.NewID()

		if err := p.AddTask(first); err != nil {
			t.Fatalf("AddTask(first) error = %v", err)
		}
		if err := p.AddTask(second); err != nil {
			t.Fatalf("AddTask(second) error = %v", err)
		}

		got := p.Tasks()
		if len(got) != 2 || got[0] != first || got[1] != second {
			t.Errorf("Tasks() = %v, want [%v %v]", got, first, second)
		}
	})

	t.Run("rejects a duplicate id and keeps the list intact", func(t *testing.T) {
		t.Parallel()
		p := mustProject(t, "Sprint 1")
		id := task.NewID()

		if err := p.AddTask(id); err != nil {
			t.Fatalf("AddTask() error = %v", err)
		}
		if err := p.AddTask(id); !errors.Is(err, ErrDuplicateTask) {
			t.Errorf("AddTask(duplicate) error = %v, want ErrDuplicateTask", err)
		}
		if got := len(p.Tasks()); got != 1 {
			t.Errorf("len(Tasks()) = %d after duplicate add, want 1", got)
		}
	})
}

func TestProject_Tasks_ReturnsDefensiveCopy(t *testing.T) {
	t.Parallel()

	p := mustProject(t, "Sprint 1")
	id := task.NewID()
	if err := p.AddTask(id); err != nil {
		t.Fatalf("AddTask() error = %v", err)
	}

	snapshot := p.Tasks()
	snapshot[0] = task.NewID()

	if got := p.Tasks(); got[0] != id {
		t.Error("mutating the returned task list leaked into the project")
	}
}

func TestProject_Rename(t *testing.T) {
	t.Parallel()

	p := mustProject(t, "Old name")
	next, _ := NewName("New name")
	if err := p.Rename(next); err != nil {
		t.Fatalf("Rename() error = %v", err)
	}
	if p.Name() != next {
		t.Errorf("Name() = %v, want %v", p.Name(), next)
	}
	if err := p.Rename(Name{}); err == nil {
		t.Error("Rename(zero) error = nil, want error")
	}
}
