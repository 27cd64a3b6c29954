package script

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Op names accepted in a script step.
const (
	OpPushFront  = "push_front"
	OpPushBack   = "push_back"
	OpInsert     = "insert"
	OpRemove     = "remove"
	OpFind       = "find"
	OpFront      = "front"
	OpBack       = "back"
	OpAt         = "at"
	OpSet        = "set"
	OpEraseFound = "erase_found"
	OpRelease    = "release"
)

var knownOps = map[string]bool{
	OpPushFront: true, OpPushBack: true, OpInsert: true, OpRemove: true,
	OpFind: true, OpFront: true, OpBack: true, OpAt: true, OpSet: true,
	OpEraseFound: true, OpRelease: true,
}

var ErrInvalidScript = errors.New("invalid script")

// Script is a named sequence of list operations over ints.
type Script struct {
	Name    string `yaml:"name"`
	Initial []int  `yaml:"initial"`
	Steps   []Step `yaml:"steps"`
	// Expect, when present, is compared with the final contents.
	Expect *[]int `yaml:"expect"`
}

// Step is one operation. Index and Value are read only by the ops that take them.
type Step struct {
	Op          string `yaml:"op"`
	Index       int    `yaml:"index"`
	Value       int    `yaml:"value"`
	ExpectError bool   `yaml:"expect_error"`
}

// Load reads and validates a script file.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script file: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes and validates a script from YAML.
func Parse(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	applyDefaults(&s)

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func applyDefaults(s *Script) {
	if s.Name == "" {
		s.Name = "unnamed"
	}
}

// Validate rejects unknown op names.
func (s *Script) Validate() error {
	for i, st := range s.Steps {
		if st.Op == "" {
			return fmt.Errorf("%w: step %d is missing op", ErrInvalidScript, i+1)
		}
		if !knownOps[st.Op] {
			return fmt.Errorf("%w: step %d has unknown op %q", ErrInvalidScript, i+1, st.Op)
		}
	}
	return nil
}

// Scenario is the built-in script run when no file is configured.
func Scenario() *Script {
	expect := []int{0, 9, 2}
	return &Script{
		Name: "push-remove-insert",
		Steps: []Step{
			{Op: OpPushBack, Value: 1},
			{Op: OpPushBack, Value: 2},
			{Op: OpPushFront, Value: 0},
			{Op: OpRemove, Index: 1},
			{Op: OpInsert, Index: 1, Value: 9},
			{Op: OpFind, Value: 9},
			{Op: OpRemove, Index: 5, ExpectError: true},
		},
		Expect: &expect,
	}
}
