package gcodegen

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultTooling cuts at Z0 and travels at Z1.
var DefaultTooling = Tooling{
	CutDepth:       0.0,
	SafeHeight:     1.0,
	RapidFeedRate:  1000.0,
	CutFeedRate:    100.0,
	PlungeFeedRate: 50.0,
}

// Validate checks that feed rates are positive and every value is finite. Whether the
// safe height clears the work is up to the operator.
func (t Tooling) Validate() error {
	for _, v := range []struct {
		name string
		val  float64
	}{
		{"cut-depth", t.CutDepth},
		{"safe-height", t.SafeHeight},
		{"rapid-feed-rate", t.RapidFeedRate},
		{"cut-feed-rate", t.CutFeedRate},
		{"plunge-feed-rate", t.PlungeFeedRate},
	} {
		if math.IsNaN(v.val) || math.IsInf(v.val, 0) {
			return fmt.Errorf("config: %s must be a finite number", v.name)
		}
	}

	if t.RapidFeedRate <= 0 {
		return fmt.Errorf("config: rapid-feed-rate must be positive: %s", Number(t.RapidFeedRate))
	}
	if t.CutFeedRate <= 0 {
		return fmt.Errorf("config: cut-feed-rate must be positive: %s", Number(t.CutFeedRate))
	}
	if t.PlungeFeedRate <= 0 {
		return fmt.Errorf("config: plunge-feed-rate must be positive: %s",
			Number(t.PlungeFeedRate))
	}
	return nil
}

// ReadTooling reads YAML over base; keys not present keep their values from base.
func ReadTooling(r io.Reader, base Tooling) (Tooling, error) {
	t := base
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	err := dec.Decode(&t)
	if errors.Is(err, io.EOF) {
		return base, nil
	} else if err != nil {
		return base, fmt.Errorf("config: %w", err)
	}
	return t, t.Validate()
}

// LoadTooling reads a YAML tooling file over DefaultTooling.
func LoadTooling(path string) (Tooling, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return DefaultTooling, fmt.Errorf("config: %w", err)
	}
	t, err := ReadTooling(bytes.NewReader(buf), DefaultTooling)
	if err != nil {
		return DefaultTooling, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}
