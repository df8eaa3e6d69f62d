package locomotion

import "github.com/go-gl/mathgl/mgl64"

// StaminaReading is the result of one stamina tick.
type StaminaReading struct {
	Remaining float64
	CanSprint bool
}

// StaminaResource is the sprint budget. Running it dry starts a cooldown
// during which sprint is denied even though the budget regenerates.
type StaminaResource struct {
	duration       float64
	cooldownPeriod float64

	remaining         float64
	cooldownRemaining float64
	inCooldown        bool
}

func NewStaminaResource(duration, cooldownPeriod float64) *StaminaResource {
	return &StaminaResource{
		duration:          duration,
		cooldownPeriod:    cooldownPeriod,
		remaining:         duration,
		cooldownRemaining: cooldownPeriod,
	}
}

// CanSprint reports whether a sprint may start or continue right now.
func (s *StaminaResource) CanSprint(enabled, unlimited bool) bool {
	if !enabled {
		return false
	}
	if unlimited {
		return true
	}
	return s.remaining > 0 && !s.inCooldown
}

// Tick drains the budget while sprinting and regenerates it otherwise. A tick
// that begins in cooldown counts the cooldown down; sprint requests during
// cooldown are silently treated as not sprinting.
func (s *StaminaResource) Tick(dt float64, sprinting, unlimited bool) StaminaReading {
	if unlimited {
		return StaminaReading{Remaining: s.remaining, CanSprint: true}
	}

	wasCooling := s.inCooldown
	if sprinting && !wasCooling && s.remaining > 0 {
		s.remaining -= dt
		if s.remaining <= 0 {
			s.remaining = 0
			s.inCooldown = true
			s.cooldownRemaining = s.cooldownPeriod
		}
	} else {
		s.remaining = mgl64.Clamp(s.remaining+dt, 0, s.duration)
	}

	if wasCooling {
		s.cooldownRemaining -= dt
		if s.cooldownRemaining <= 0 {
			s.cooldownRemaining = s.cooldownPeriod
			s.inCooldown = false
		}
	}

	return StaminaReading{Remaining: s.remaining, CanSprint: s.CanSprint(true, false)}
}

func (s *StaminaResource) Remaining() float64         { return s.remaining }
func (s *StaminaResource) Duration() float64          { return s.duration }
func (s *StaminaResource) InCooldown() bool           { return s.inCooldown }
func (s *StaminaResource) CooldownRemaining() float64 { return s.cooldownRemaining }

// Fraction is remaining/duration, 1 for a zero-length budget.
func (s *StaminaResource) Fraction() float64 {
	if s.duration <= 0 {
		return 1
	}
	return s.remaining / s.duration
}
