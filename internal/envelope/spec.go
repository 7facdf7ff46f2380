// Package envelope builds amplitude curves in [0, 1] and applies them to
// sample buffers.
package envelope

import (
	"fmt"
	"math"
	"strings"

	"github.com/tphakala/go-uisound/internal/sample"
)

// Kind selects the curve family.
type Kind int

const (
	// ExponentialDecay is exp(-i / (length·TimeConstant)).
	ExponentialDecay Kind = iota

	// LinearAttackRelease ramps 0→1 over Attack seconds, holds at 1 and
	// ramps 1→0 over the final Release seconds.
	LinearAttackRelease

	// LogRelease is a linear attack followed by a logarithmically spaced
	// release from 1 down to Floor.
	LogRelease

	// DecaySeconds is exp(-t / TimeConstant) with t in seconds.
	DecaySeconds

	// AttackExpDecay ramps linearly over the first AttackFraction of the
	// buffer, then decays as exp(-j / (length·TimeConstant)).
	AttackExpDecay
)

var kindNames = map[Kind]string{
	ExponentialDecay:    "exponential_decay",
	LinearAttackRelease: "linear_attack_release",
	LogRelease:          "log_release",
	DecaySeconds:        "decay_seconds",
	AttackExpDecay:      "attack_exp_decay",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if _, ok := kindNames[k]; !ok {
		return nil, fmt.Errorf("%w: unknown envelope kind %d", sample.ErrInvalidConfig, int(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	name := strings.ToLower(strings.TrimSpace(string(text)))
	for kind, n := range kindNames {
		if n == name {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("%w: unknown envelope kind %q", sample.ErrInvalidConfig, string(text))
}

// Spec describes an envelope independently of the buffer it will shape.
//
// TimeConstant is a fraction of the buffer length for ExponentialDecay and
// AttackExpDecay, and seconds for DecaySeconds. Attack and Release are in
// seconds.
type Spec struct {
	Kind           Kind    `yaml:"kind"`
	TimeConstant   float64 `yaml:"time_constant,omitempty"`
	Attack         float64 `yaml:"attack,omitempty"`
	Release        float64 `yaml:"release,omitempty"`
	Floor          float64 `yaml:"floor,omitempty"`
	AttackFraction float64 `yaml:"attack_fraction,omitempty"`
}

// NewExponentialDecay returns exp(-i / (length·fraction)).
func NewExponentialDecay(fraction float64) Spec {
	return Spec{Kind: ExponentialDecay, TimeConstant: fraction}
}

// NewLinearAttackRelease returns a linear attack/hold/release envelope.
func NewLinearAttackRelease(attack, release float64) Spec {
	return Spec{Kind: LinearAttackRelease, Attack: attack, Release: release}
}

// NewLogRelease returns a linear attack with a logarithmic release to floor.
func NewLogRelease(attack, release, floor float64) Spec {
	return Spec{Kind: LogRelease, Attack: attack, Release: release, Floor: floor}
}

// NewDecaySeconds returns exp(-t / tau).
func NewDecaySeconds(tau float64) Spec {
	return Spec{Kind: DecaySeconds, TimeConstant: tau}
}

// NewAttackExpDecay returns a short linear attack followed by an
// exponential decay.
func NewAttackExpDecay(attackFraction, decayFraction float64) Spec {
	return Spec{Kind: AttackExpDecay, AttackFraction: attackFraction, TimeConstant: decayFraction}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Validate checks the parameters of the selected kind.
func (s Spec) Validate() error {
	switch s.Kind {
	case ExponentialDecay, DecaySeconds:
		if s.TimeConstant <= 0 || !finite(s.TimeConstant) {
			return fmt.Errorf("%w: %s time constant must be positive, got %v", sample.ErrInvalidConfig, s.Kind, s.TimeConstant)
		}
	case LinearAttackRelease, LogRelease:
		if s.Attack < 0 || !finite(s.Attack) {
			return fmt.Errorf("%w: attack must be non-negative, got %v", sample.ErrInvalidConfig, s.Attack)
		}
		if s.Release < 0 || !finite(s.Release) {
			return fmt.Errorf("%w: release must be non-negative, got %v", sample.ErrInvalidConfig, s.Release)
		}
		if s.Kind == LogRelease && (s.Floor <= 0 || s.Floor > maxFloor || !finite(s.Floor)) {
			return fmt.Errorf("%w: release floor must be in (0, 1], got %v", sample.ErrInvalidConfig, s.Floor)
		}
	case AttackExpDecay:
		if s.AttackFraction < 0 || s.AttackFraction > maxAttack || !finite(s.AttackFraction) {
			return fmt.Errorf("%w: attack fraction must be in [0, 1], got %v", sample.ErrInvalidConfig, s.AttackFraction)
		}
		if s.TimeConstant <= 0 || !finite(s.TimeConstant) {
			return fmt.Errorf("%w: decay fraction must be positive, got %v", sample.ErrInvalidConfig, s.TimeConstant)
		}
	default:
		return fmt.Errorf("%w: unknown envelope kind %d", sample.ErrInvalidConfig, int(s.Kind))
	}
	return nil
}
