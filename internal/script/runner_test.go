package script

import (
	"errors"
	"slices"
	"testing"

	"github.com/rs/zerolog"

	"llist/internal/list"
)

func newTestLogger() *zerolog.Logger {
	logger := zerolog.Nop()
	return &logger
}

func TestRun_Scenario(t *testing.T) {
	res, err := NewRunner(newTestLogger()).Run(Scenario())
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if !slices.Equal(res.Values, []int{0, 9, 2}) {
		t.Fatalf("Expected [0 9 2], got %v", res.Values)
	}

	sizes := make([]int, 0, len(res.Steps))
	for _, sr := range res.Steps {
		sizes = append(sizes, sr.Size)
	}
	if !slices.Equal(sizes, []int{1, 2, 3, 2, 3, 3, 3}) {
		t.Errorf("Unexpected sizes per step: %v", sizes)
	}

	find := res.Steps[5]
	if !find.Found || find.Value != 9 {
		t.Errorf("Expected find to report 9, got %+v", find)
	}
	if last := res.Steps[6]; !errors.Is(last.Err, list.ErrOutOfRange) {
		t.Errorf("Expected out-of-range on last step, got %v", last.Err)
	}
}

func TestRun_ReadOps(t *testing.T) {
	s := &Script{
		Name:    "reads",
		Initial: []int{4, 5, 6},
		Steps: []Step{
			{Op: OpFront},
			{Op: OpBack},
			{Op: OpAt, Index: 1},
			{Op: OpSet, Index: 1, Value: 50},
			{Op: OpEraseFound, Value: 4},
			{Op: OpEraseFound, Value: 42},
		},
	}
	res, err := NewRunner(nil).Run(s)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}

	got := []int{res.Steps[0].Value, res.Steps[1].Value, res.Steps[2].Value}
	if !slices.Equal(got, []int{4, 6, 5}) {
		t.Errorf("Expected front/back/at = [4 6 5], got %v", got)
	}
	if !res.Steps[4].Found || res.Steps[5].Found {
		t.Errorf("Unexpected erase_found results: %+v %+v", res.Steps[4], res.Steps[5])
	}
	if !slices.Equal(res.Values, []int{50, 6}) {
		t.Errorf("Expected [50 6], got %v", res.Values)
	}
}

func TestRun_ReleaseThenReuse(t *testing.T) {
	s := &Script{
		Initial: []int{1, 2},
		Steps: []Step{
			{Op: OpRelease},
			{Op: OpFront, ExpectError: true},
			{Op: OpPushBack, Value: 3},
		},
	}
	res, err := NewRunner(nil).Run(s)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if !slices.Equal(res.Values, []int{3}) {
		t.Errorf("Expected [3], got %v", res.Values)
	}
}

func TestRun_Failures(t *testing.T) {
	tests := []struct {
		name   string
		script *Script
		want   error
	}{
		{
			name:   "unexpected error",
			script: &Script{Steps: []Step{{Op: OpRemove, Index: 0}}},
			want:   list.ErrOutOfRange,
		},
		{
			name:   "unexpected success",
			script: &Script{Steps: []Step{{Op: OpPushBack, Value: 1, ExpectError: true}}},
			want:   ErrUnexpectedSuccess,
		},
		{
			name:   "contents mismatch",
			script: &Script{Steps: []Step{{Op: OpPushBack, Value: 1}}, Expect: &[]int{2}},
			want:   ErrContentsMismatch,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRunner(newTestLogger()).Run(tt.script)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestRun_DemoScriptFile(t *testing.T) {
	s, err := Load("../../configs/demo.yaml")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	res, err := NewRunner(newTestLogger()).Run(s)
	if err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	if !slices.Equal(res.Values, []int{3, 6, 8, 1, 5, 2}) {
		t.Errorf("Unexpected contents: %v", res.Values)
	}
}
