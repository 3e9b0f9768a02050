package targets

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"
)

//go:embed targets.yaml
var rawTargets []byte

var targets Targets

var ErrBoardNotFound = errors.New("board not found")

func All() Targets {
	return targets
}

type Targets []TargetInfo
type TargetInfo struct {
	Board       string   `yaml:"board"`
	Aliases     []string `yaml:"aliases"`
	Chip        string   `yaml:"chip"`
	Description string   `yaml:"description"`
	SystemClock uint32   `yaml:"systemClock"`
}

// Names returns the board name followed by its aliases.
func (t TargetInfo) Names() []string {
	return append([]string{t.Board}, t.Aliases...)
}

// Find returns the board whose name or one of its aliases matches name,
// ignoring case.
func (t Targets) Find(name string) (TargetInfo, error) {
	name = strings.ToLower(name)
	for _, target := range t {
		if slices.Contains(target.Names(), name) {
			return target, nil
		}
	}
	return TargetInfo{}, fmt.Errorf("%w: %s", ErrBoardNotFound, name)
}

// Parse decodes a board table.
func Parse(buf []byte) (Targets, error) {
	var t struct {
		Elements Targets `yaml:"targets"`
	}
	if err := yaml.Unmarshal(buf, &t); err != nil {
		return nil, err
	}

	for i := range t.Elements {
		target := &t.Elements[i]
		target.Board = strings.ToLower(target.Board)
		for j := range target.Aliases {
			target.Aliases[j] = strings.ToLower(target.Aliases[j])
		}
		if target.SystemClock == 0 {
			return nil, fmt.Errorf("board %s has no system clock", target.Board)
		}
	}
	return t.Elements, nil
}

func init() {
	var err error
	if targets, err = Parse(rawTargets); err != nil {
		panic(err)
	}
}
