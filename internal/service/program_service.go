package service

import (
	"context"
	"errors"

	"alcyxob/adaptive-coach/internal/domain"
	"alcyxob/adaptive-coach/internal/engine"
	"alcyxob/adaptive-coach/internal/repository"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrProfileRequired  = errors.New("user has no fitness profile; set one before starting a program")
	ErrNotProgramOwner  = errors.New("program does not belong to this user")
	ErrProgramNotFound  = errors.New("program not found")
	ErrWeekNotGenerated = errors.New("week has not been generated yet")
)

// ProgramService orchestrates the progression engine against persistent
// storage: it owns the load, compute, append cycle for a program.
type ProgramService interface {
	StartProgram(ctx context.Context, userID string, mode domain.GenerationMode) (*domain.CustomizedTemplate, error)
	GetActiveProgram(ctx context.Context, userID string) (*domain.CustomizedTemplate, error)
	GenerateNextWeek(ctx context.Context, userID, programID string) (*domain.TrainingWeek, error)
	MaterializeWeek(ctx context.Context, userID, programID string, weekNumber int) (*domain.TrainingWeek, error)
	RecordCompletion(ctx context.Context, userID string, completion *domain.WorkoutCompletion) error
	SetWeekStatus(ctx context.Context, userID, programID string, weekNumber int, completed, abandoned bool) error
	AnalyzeWeek(ctx context.Context, userID, programID string, weekNumber int) (*domain.WeekCompletionAnalysis, error)
	CheckPrerequisites(ctx context.Context, userID, programID string) (*domain.GateResult, error)
	GetInsight(ctx context.Context, userID, programID string) (*domain.CoachingInsight, error)
}

type programService struct {
	eng         *engine.Engine
	programRepo repository.ProgramRepository
	userRepo    repository.UserRepository
	completions repository.CompletionRepository
}

// NewProgramService creates a new instance of programService.
func NewProgramService(
	eng *engine.Engine,
	programRepo repository.ProgramRepository,
	userRepo repository.UserRepository,
	completions repository.CompletionRepository,
) ProgramService {
	return &programService{
		eng:         eng,
		programRepo: programRepo,
		userRepo:    userRepo,
		completions: completions,
	}
}

// StartProgram selects and customizes a template for the user and persists
// the resulting program. In progressive mode week 1 is generated immediately
// so the athlete has something to train from day one.
func (s *programService) StartProgram(ctx context.Context, userID string, mode domain.GenerationMode) (*domain.CustomizedTemplate, error) {
	uid, err := parseObjectID(userID)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, uid)
	if err != nil {
		return nil, err
	}
	if !user.HasProfile() {
		return nil, ErrProfileRequired
	}

	custom, err := s.eng.SelectAndCustomize(*user.Profile, uid, mode)
	if err != nil {
		return nil, err
	}

	if mode == domain.ModeProgressive {
		// First week has no prior analysis; the gate passes trivially.
		if _, err := s.eng.GenerateNextWeek(custom, nil); err != nil {
			return nil, err
		}
	}

	programID, err := s.programRepo.Create(ctx, custom)
	if err != nil {
		return nil, err
	}
	custom.ID = programID

	log.WithFields(log.Fields{
		"userId":     userID,
		"programId":  programID.Hex(),
		"templateId": custom.TemplateID,
		"mode":       mode,
	}).Info("program started")

	return custom, nil
}

// GetActiveProgram returns the user's most recent program.
func (s *programService) GetActiveProgram(ctx context.Context, userID string) (*domain.CustomizedTemplate, error) {
	uid, err := parseObjectID(userID)
	if err != nil {
		return nil, err
	}
	program, err := s.programRepo.GetActiveByUserID(ctx, uid)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProgramNotFound
		}
		return nil, err
	}
	return program, nil
}

// GenerateNextWeek runs the full progressive cycle: fold logged completions
// into the current week, analyze it, gate, generate, and append the new week
// with a concurrency guard so racing requests cannot fork the program.
func (s *programService) GenerateNextWeek(ctx context.Context, userID, programID string) (*domain.TrainingWeek, error) {
	program, err := s.loadOwnedProgram(ctx, userID, programID)
	if err != nil {
		return nil, err
	}
	if err := s.refreshCurrentWeek(ctx, program); err != nil {
		return nil, err
	}

	prior, err := s.analysisForWeek(ctx, program, len(program.GeneratedWeeks))
	if err != nil {
		return nil, err
	}

	expectedWeeks := len(program.GeneratedWeeks)
	week, err := s.eng.GenerateNextWeek(program, prior)
	if err != nil {
		return nil, err
	}

	if err := s.programRepo.AppendWeek(ctx, program.ID, expectedWeeks, week); err != nil {
		return nil, err
	}
	if program.Mode == domain.ModeFullPlan {
		if err := s.programRepo.UpdateFramework(ctx, program.ID, program.FrameworkWeeks); err != nil {
			return nil, err
		}
	}

	log.WithFields(log.Fields{
		"programId":  programID,
		"weekNumber": week.WeekNumber,
	}).Info("week generated")

	return week, nil
}

// MaterializeWeek details a framework week on first access (full_plan mode).
// Already-generated weeks come back unchanged.
func (s *programService) MaterializeWeek(ctx context.Context, userID, programID string, weekNumber int) (*domain.TrainingWeek, error) {
	program, err := s.loadOwnedProgram(ctx, userID, programID)
	if err != nil {
		return nil, err
	}

	if existing := program.WeekByNumber(weekNumber); existing != nil {
		return existing, nil
	}
	if err := s.refreshCurrentWeek(ctx, program); err != nil {
		return nil, err
	}

	prior, err := s.analysisForWeek(ctx, program, len(program.GeneratedWeeks))
	if err != nil {
		return nil, err
	}

	expectedWeeks := len(program.GeneratedWeeks)
	week, err := s.eng.MaterializeWeek(program, weekNumber, prior)
	if err != nil {
		return nil, err
	}

	if err := s.programRepo.AppendWeek(ctx, program.ID, expectedWeeks, week); err != nil {
		return nil, err
	}
	if err := s.programRepo.UpdateFramework(ctx, program.ID, program.FrameworkWeeks); err != nil {
		return nil, err
	}

	return week, nil
}

// RecordCompletion logs (or re-logs) one workout's outcome for a program week.
func (s *programService) RecordCompletion(ctx context.Context, userID string, completion *domain.WorkoutCompletion) error {
	uid, err := parseObjectID(userID)
	if err != nil {
		return err
	}
	completion.UserID = uid

	program, err := s.programRepo.GetByID(ctx, completion.ProgramID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrProgramNotFound
		}
		return err
	}
	if program.UserID != uid {
		return ErrNotProgramOwner
	}

	week := program.WeekByNumber(completion.WeekNumber)
	if week == nil {
		return ErrWeekNotGenerated
	}
	if !weekHasWorkout(week, completion.WorkoutName) {
		return errors.New("workout is not part of this week")
	}

	_, err = s.completions.Upsert(ctx, completion)
	return err
}

// SetWeekStatus marks a generated week completed and/or abandoned.
func (s *programService) SetWeekStatus(ctx context.Context, userID, programID string, weekNumber int, completed, abandoned bool) error {
	program, err := s.loadOwnedProgram(ctx, userID, programID)
	if err != nil {
		return err
	}
	if program.WeekByNumber(weekNumber) == nil {
		return ErrWeekNotGenerated
	}
	return s.programRepo.UpdateWeekStatus(ctx, program.ID, weekNumber, completed, abandoned)
}

// AnalyzeWeek folds logged completions into the stored week and computes a
// fresh completion analysis for it.
func (s *programService) AnalyzeWeek(ctx context.Context, userID, programID string, weekNumber int) (*domain.WeekCompletionAnalysis, error) {
	program, err := s.loadOwnedProgram(ctx, userID, programID)
	if err != nil {
		return nil, err
	}
	if program.WeekByNumber(weekNumber) == nil {
		return nil, ErrWeekNotGenerated
	}
	return s.analysisForWeek(ctx, program, weekNumber)
}

// CheckPrerequisites runs the gate against the current week without
// generating anything, so the client can show blockers up front. In full_plan
// mode a passing gate also unlocks the next framework week.
func (s *programService) CheckPrerequisites(ctx context.Context, userID, programID string) (*domain.GateResult, error) {
	program, err := s.loadOwnedProgram(ctx, userID, programID)
	if err != nil {
		return nil, err
	}

	prior, err := s.analysisForWeek(ctx, program, len(program.GeneratedWeeks))
	if err != nil {
		return nil, err
	}

	result := s.eng.CheckPrerequisites(prior)
	if result.CanProceed && len(program.FrameworkWeeks) > 0 {
		s.eng.UnlockWeek(program, program.NextWeekNumber())
		if err := s.programRepo.UpdateFramework(ctx, program.ID, program.FrameworkWeeks); err != nil {
			return nil, err
		}
	}
	return &result, nil
}

// GetInsight produces the coaching message for the current week.
func (s *programService) GetInsight(ctx context.Context, userID, programID string) (*domain.CoachingInsight, error) {
	program, err := s.loadOwnedProgram(ctx, userID, programID)
	if err != nil {
		return nil, err
	}
	if len(program.GeneratedWeeks) == 0 {
		return nil, ErrWeekNotGenerated
	}

	analysis, err := s.analysisForWeek(ctx, program, len(program.GeneratedWeeks))
	if err != nil {
		return nil, err
	}
	gate := s.eng.CheckPrerequisites(analysis)

	insight := s.eng.GenerateCoachingInsight(*analysis, gate, program.Goal, program.UserID.Hex())
	return &insight, nil
}

// analysisForWeek loads completions for the given week (and the one before it,
// for trend detection) and runs the analyzer. Returns nil when the program has
// no generated week at that number, which the gate treats as a free pass.
func (s *programService) analysisForWeek(ctx context.Context, program *domain.CustomizedTemplate, weekNumber int) (*domain.WeekCompletionAnalysis, error) {
	week := program.WeekByNumber(weekNumber)
	if week == nil {
		return nil, nil
	}

	var previous *domain.WeekCompletionAnalysis
	if prev := program.WeekByNumber(weekNumber - 1); prev != nil {
		folded, err := s.foldWeek(ctx, program.ID, *prev)
		if err != nil {
			return nil, err
		}
		a := s.eng.AnalyzeWeek(&folded, nil)
		previous = &a
	}

	folded, err := s.foldWeek(ctx, program.ID, *week)
	if err != nil {
		return nil, err
	}
	analysis := s.eng.AnalyzeWeek(&folded, previous)
	return &analysis, nil
}

// refreshCurrentWeek folds logged completion records into the stored current
// week in place, so per-workout Completed/Skipped flags reflect what the user
// actually logged. A week whose every workout is logged counts as finished
// without a separate status update.
func (s *programService) refreshCurrentWeek(ctx context.Context, program *domain.CustomizedTemplate) error {
	cur := program.CurrentWeek()
	if cur == nil {
		return nil
	}
	folded, err := s.foldWeek(ctx, program.ID, *cur)
	if err != nil {
		return err
	}
	*cur = folded
	return nil
}

func (s *programService) foldWeek(ctx context.Context, programID primitive.ObjectID, week domain.TrainingWeek) (domain.TrainingWeek, error) {
	completions, err := s.completions.GetByProgramWeek(ctx, programID, week.WeekNumber)
	if err != nil {
		return week, err
	}
	return engine.FoldCompletions(week, completions), nil
}

func (s *programService) loadOwnedProgram(ctx context.Context, userID, programID string) (*domain.CustomizedTemplate, error) {
	uid, err := parseObjectID(userID)
	if err != nil {
		return nil, err
	}
	pid, err := parseObjectID(programID)
	if err != nil {
		return nil, err
	}

	program, err := s.programRepo.GetByID(ctx, pid)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProgramNotFound
		}
		return nil, err
	}
	if program.UserID != uid {
		return nil, ErrNotProgramOwner
	}
	return program, nil
}

func weekHasWorkout(week *domain.TrainingWeek, name string) bool {
	for i := range week.Workouts {
		if week.Workouts[i].Name == name {
			return true
		}
	}
	return false
}
