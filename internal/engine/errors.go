package engine

import (
	"errors"
	"fmt"
	"strings"

	"alcyxob/adaptive-coach/internal/domain"
)

// --- Error Definitions ---
var (
	ErrProgramComplete     = errors.New("program has no weeks left to generate")
	ErrUnknownTemplate     = errors.New("customized template references an unknown template id")
	ErrWeekOutOfRange      = errors.New("requested week number is out of range for the template")
	ErrNonSequentialWeek   = errors.New("weeks must be generated sequentially without gaps")
)

// NoTemplateError reports that no template satisfies the profile. It is an
// expected, recoverable outcome: the caller may relax a constraint upstream,
// the engine never relaxes one on its own.
type NoTemplateError struct {
	Profile domain.UserProfile
}

func (e *NoTemplateError) Error() string {
	return fmt.Sprintf("no compatible template for level=%s goal=%s time=%dmin frequency=%s",
		e.Profile.FitnessLevel, e.Profile.PrimaryGoal, e.Profile.TimeCommitment, e.Profile.WeeklyFrequency)
}

// GateRejectionError reports that the prerequisite gate refused the next
// week. It is expected and user-facing; the embedded result carries the
// blockers and missing workouts for display.
type GateRejectionError struct {
	Result domain.GateResult
}

func (e *GateRejectionError) Error() string {
	if len(e.Result.Blockers) > 0 {
		return "prerequisites not met: " + strings.Join(e.Result.Blockers, "; ")
	}
	return "prerequisites not met"
}

// MalformedTemplateError reports a template that references an unknown
// exercise id or declares contradictory constraints. It is fatal at load
// time: repository initialization aborts rather than letting the defect
// surface at generation time.
type MalformedTemplateError struct {
	TemplateID string
	Reason     string
}

func (e *MalformedTemplateError) Error() string {
	return fmt.Sprintf("malformed template %q: %s", e.TemplateID, e.Reason)
}

// IsGateRejection reports whether err is a gate rejection and returns it.
func IsGateRejection(err error) (*GateRejectionError, bool) {
	var gr *GateRejectionError
	if errors.As(err, &gr) {
		return gr, true
	}
	return nil, false
}
