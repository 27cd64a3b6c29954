package script

import (
	"errors"
	"fmt"
	"slices"

	"github.com/rs/zerolog"

	"llist/internal/list"
)

var (
	ErrUnexpectedSuccess = errors.New("step was expected to fail")
	ErrContentsMismatch  = errors.New("final contents do not match expect")
)

// StepResult records what one step did.
type StepResult struct {
	Op    string
	Value int  // value read by front/back/at/find
	Found bool // find and erase_found only
	Size  int
	Err   error
}

// Result is the outcome of a whole run.
type Result struct {
	Name   string
	Steps  []StepResult
	Values []int
}

type Runner struct {
	logger *zerolog.Logger
}

func NewRunner(logger *zerolog.Logger) *Runner {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return &Runner{logger: logger}
}

// Run executes s against a fresh list. It stops at the first step whose
// error outcome differs from ExpectError, and returns the partial result with it.
func (r *Runner) Run(s *Script) (*Result, error) {
	l := list.New[int]()
	defer l.Release()

	for _, v := range s.Initial {
		l.PushBack(v)
	}

	res := &Result{Name: s.Name}
	log := r.logger.With().Str("script", s.Name).Logger()
	log.Info().Int("steps", len(s.Steps)).Str("initial", l.String()).Msg("running script")

	for i, st := range s.Steps {
		sr := apply(l, st)
		res.Steps = append(res.Steps, sr)

		ev := log.Debug()
		if sr.Err != nil {
			ev = log.Warn().Err(sr.Err)
		}
		ev.Int("step", i+1).
			Str("op", st.Op).
			Int("index", st.Index).
			Int("value", st.Value).
			Str("contents", l.String()).
			Int("size", sr.Size).
			Msg("step applied")

		switch {
		case sr.Err != nil && !st.ExpectError:
			res.Values = l.Values()
			return res, fmt.Errorf("step %d (%s): %w", i+1, st.Op, sr.Err)
		case sr.Err == nil && st.ExpectError:
			res.Values = l.Values()
			return res, fmt.Errorf("step %d (%s): %w", i+1, st.Op, ErrUnexpectedSuccess)
		}
	}

	res.Values = l.Values()
	if s.Expect != nil && !slices.Equal(res.Values, *s.Expect) {
		return res, fmt.Errorf("%w: got %v, want %v", ErrContentsMismatch, res.Values, *s.Expect)
	}

	log.Info().Str("contents", l.String()).Int("size", l.Len()).Msg("script finished")
	return res, nil
}

func apply(l *list.List[int], st Step) StepResult {
	sr := StepResult{Op: st.Op}

	var p *int
	var err error
	switch st.Op {
	case OpPushFront:
		l.PushFront(st.Value)
	case OpPushBack:
		l.PushBack(st.Value)
	case OpInsert:
		err = l.Insert(st.Index, st.Value)
	case OpRemove:
		err = l.Remove(st.Index)
	case OpSet:
		err = l.Set(st.Index, st.Value)
	case OpFront:
		p, err = l.Front()
	case OpBack:
		p, err = l.Back()
	case OpAt:
		p, err = l.At(st.Index)
	case OpFind:
		if it := list.Find(l, st.Value); !it.AtEnd() {
			sr.Found, sr.Value = true, it.Value()
		}
	case OpEraseFound:
		if it := list.Find(l, st.Value); !it.AtEnd() {
			sr.Found, sr.Value = true, it.Value()
			l.Erase(it)
		}
	case OpRelease:
		l.Release()
	default:
		err = fmt.Errorf("%w: unknown op %q", ErrInvalidScript, st.Op)
	}

	if p != nil {
		sr.Value = *p
	}
	sr.Err = err
	sr.Size = l.Len()
	return sr
}
