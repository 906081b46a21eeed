package headless

import (
	"errors"
	"fmt"
	"os"

	"github.com/automoto/thirdperson/character"
	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"
)

var ErrEmptyStep = errors.New("step must last at least one tick")

// Step holds one input sample for a number of fixed ticks.
type Step struct {
	Ticks    int        `yaml:"ticks"`
	Move     [2]float32 `yaml:"move"`
	Look     [2]float32 `yaml:"look"`
	Jump     bool       `yaml:"jump"`
	Attack   bool       `yaml:"attack"`
	Interact bool       `yaml:"interact"`
	Sprint   bool       `yaml:"sprint"`
}

// Sample converts the step to controller input.
func (s Step) Sample() character.InputSample {
	return character.InputSample{
		MoveDelta: mgl32.Vec2(s.Move),
		LookDelta: mgl32.Vec2(s.Look),
		Jump:      s.Jump,
		Attack:    s.Attack,
		Interact:  s.Interact,
		Sprint:    s.Sprint,
	}
}

// Script is an ordered list of steps.
type Script struct {
	Steps []Step `yaml:"steps"`
}

// Ticks returns the total length of the script.
func (s Script) Ticks() int {
	n := 0
	for _, st := range s.Steps {
		n += st.Ticks
	}
	return n
}

// ParseScript decodes a YAML script.
func ParseScript(data []byte) (Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Script{}, fmt.Errorf("parse script: %w", err)
	}
	for i, st := range s.Steps {
		if st.Ticks <= 0 {
			return Script{}, fmt.Errorf("step %d: %w", i, ErrEmptyStep)
		}
	}
	return s, nil
}

// LoadScript reads a script file.
func LoadScript(path string) (Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Script{}, fmt.Errorf("read script: %w", err)
	}
	return ParseScript(data)
}

// cursor walks a script one tick at a time.
type cursor struct {
	steps []Step
	index int
	used  int
}

func (c *cursor) next() (character.InputSample, bool) {
	for c.index < len(c.steps) {
		st := c.steps[c.index]
		if c.used < st.Ticks {
			c.used++
			return st.Sample(), true
		}
		c.index++
		c.used = 0
	}
	return character.InputSample{}, false
}
