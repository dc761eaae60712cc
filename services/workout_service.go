package services

import (
	"context"
	"errors"

	"github.com/brahimakil/OneLife-sub001/models"
	"github.com/brahimakil/OneLife-sub001/utils"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type WorkoutService struct {
	db    *gorm.DB
	log   *zap.Logger
	users *UserService
	subs  *SubscriptionService
	cat   *CatalogService
	stats *StatisticsService
}

func NewWorkoutService(db *gorm.DB, log *zap.Logger, users *UserService, subs *SubscriptionService, cat *CatalogService, stats *StatisticsService) *WorkoutService {
	return &WorkoutService{db: db, log: log.Named("workout"), users: users, subs: subs, cat: cat, stats: stats}
}

type ExercisePatch struct {
	SetsCompleted  *int     `json:"sets_completed"`
	RepsPerSet     []int    `json:"reps_per_set"`
	Completed      *bool    `json:"completed"`
	CaloriesBurned *float64 `json:"calories_burned"` // caller-supplied override
}

// CreateForDay creates the day's workout record ahead of the provisioning
// job, shaped from the active plan's routine when one exists.
func (s *WorkoutService) CreateForDay(ctx context.Context, user *models.User, day any) (*models.WorkoutProgress, error) {
	key := utils.NormalizeDay(day)
	if key == "" {
		return nil, ErrInvalidDay
	}
	if _, err := s.ForDay(user, key); err == nil {
		return nil, ErrConflict
	} else if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	weekday := utils.WeekdayOf(dayTime(key))
	progress := newWorkoutSkeleton(user.UID, key, weekday, s.activeRoutine(user.UID))
	if err := s.db.WithContext(ctx).Create(progress).Error; err != nil {
		return nil, err
	}
	return progress, nil
}

// AddExercise appends an ad hoc entry beyond the routine's plan for the day.
func (s *WorkoutService) AddExercise(ctx context.Context, user *models.User, day any, exerciseUID string, sets, reps int) (*models.WorkoutProgress, error) {
	progress, err := s.ForDay(user, day)
	if err != nil {
		return nil, err
	}

	entry := models.WorkoutExercise{
		ProgressID:  progress.ID,
		Position:    len(progress.Exercises),
		ExerciseUID: exerciseUID,
		Sets:        sets,
		Reps:        reps,
	}
	if cat, err := s.cat.ExerciseByUID(exerciseUID); err == nil {
		entry.Name = cat.Name
		entry.RestSeconds = cat.RestSeconds
		if entry.Sets == 0 {
			entry.Sets = cat.DefaultSets
		}
		if entry.Reps == 0 {
			entry.Reps = cat.DefaultReps
		}
	}
	if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
		return nil, err
	}
	if err := s.refreshTotals(ctx, progress); err != nil {
		return nil, err
	}

	s.triggerRecalc(ctx, user.UID, progress.Day)
	return progress, nil
}

// PatchExercise closes out (or amends) a single exercise entry. The exertion
// calculator fills the burn dimensions unless the caller supplied a positive
// calorie value of their own.
func (s *WorkoutService) PatchExercise(ctx context.Context, user *models.User, day any, entryID uint, patch ExercisePatch) (*models.WorkoutProgress, error) {
	progress, err := s.ForDay(user, day)
	if err != nil {
		return nil, err
	}

	var entry models.WorkoutExercise
	if err := s.db.Where("id = ? AND progress_id = ?", entryID, progress.ID).First(&entry).Error; err != nil {
		return nil, notFoundOr(err)
	}

	if patch.SetsCompleted != nil {
		entry.SetsCompleted = *patch.SetsCompleted
	}
	if patch.RepsPerSet != nil {
		entry.RepsPerSet = datatypes.JSONSlice[int](patch.RepsPerSet)
	}
	if patch.Completed != nil {
		entry.Completed = *patch.Completed
	}
	entry.CaloriesBurned = 0
	if patch.CaloriesBurned != nil && *patch.CaloriesBurned > 0 {
		entry.CaloriesBurned = *patch.CaloriesBurned
	}

	catalog, err := s.cat.ExerciseByUID(entry.ExerciseUID)
	if err != nil {
		catalog = nil
	}
	ApplyExerciseBurn(&entry, catalog)

	if err := s.db.WithContext(ctx).Save(&entry).Error; err != nil {
		return nil, err
	}
	if err := s.refreshTotals(ctx, progress); err != nil {
		return nil, err
	}

	s.triggerRecalc(ctx, user.UID, progress.Day)
	return progress, nil
}

// RemoveExercise deletes an entry and recalculates, the same as addition and
// update do.
func (s *WorkoutService) RemoveExercise(ctx context.Context, user *models.User, day any, entryID uint) (*models.WorkoutProgress, error) {
	progress, err := s.ForDay(user, day)
	if err != nil {
		return nil, err
	}

	res := s.db.WithContext(ctx).Where("id = ? AND progress_id = ?", entryID, progress.ID).Delete(&models.WorkoutExercise{})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	if err := s.refreshTotals(ctx, progress); err != nil {
		return nil, err
	}

	s.triggerRecalc(ctx, user.UID, progress.Day)
	return progress, nil
}

func (s *WorkoutService) ForDay(user *models.User, day any) (*models.WorkoutProgress, error) {
	key := utils.NormalizeDay(day)
	if key == "" {
		return nil, ErrInvalidDay
	}
	aliases, err := s.users.AliasesFor(user.UID)
	if err != nil {
		aliases = []string{user.UID, user.Email}
	}

	var progress models.WorkoutProgress
	err = s.db.Preload("Exercises", func(db *gorm.DB) *gorm.DB {
		return db.Order("position")
	}).Where("owner_id IN ? AND day = ?", aliases, key).First(&progress).Error
	if err != nil {
		return nil, notFoundOr(err)
	}
	return &progress, nil
}

func (s *WorkoutService) refreshTotals(ctx context.Context, progress *models.WorkoutProgress) error {
	var entries []models.WorkoutExercise
	if err := s.db.WithContext(ctx).Where("progress_id = ?", progress.ID).Order("position").Find(&entries).Error; err != nil {
		return err
	}

	var cals, prot, carbs, fats, water float64
	completed := 0
	for _, e := range entries {
		cals += e.CaloriesBurned
		prot += e.ProteinsBurned
		carbs += e.CarbohydratesBurned
		fats += e.FatsBurned
		water += e.WaterLoss
		if e.Completed {
			completed++
		}
	}

	progress.Exercises = entries
	progress.CaloriesBurned = utils.Round2(cals)
	progress.ProteinsBurned = utils.Round2(prot)
	progress.CarbohydratesBurned = utils.Round2(carbs)
	progress.FatsBurned = utils.Round2(fats)
	progress.WaterLoss = utils.Round3(water)
	progress.CompletedCount = completed
	progress.TotalCount = len(entries)
	if len(entries) > 0 {
		progress.CompletionPct = utils.Round2(float64(completed) / float64(len(entries)) * 100)
	} else {
		progress.CompletionPct = 0
	}
	progress.Completed = len(entries) > 0 && completed == len(entries)
	return s.db.WithContext(ctx).Model(&models.WorkoutProgress{}).Where("id = ?", progress.ID).
		Updates(map[string]any{
			"calories_burned":      progress.CaloriesBurned,
			"proteins_burned":      progress.ProteinsBurned,
			"carbohydrates_burned": progress.CarbohydratesBurned,
			"fats_burned":          progress.FatsBurned,
			"water_loss":           progress.WaterLoss,
			"completed_count":      progress.CompletedCount,
			"total_count":          progress.TotalCount,
			"completion_pct":       progress.CompletionPct,
			"completed":            progress.Completed,
		}).Error
}

func (s *WorkoutService) triggerRecalc(ctx context.Context, ownerUID, day string) {
	if err := s.stats.Recalculate(ctx, ownerUID, day); err != nil {
		s.log.Warn("recalculation failed after workout mutation",
			zap.String("owner", ownerUID), zap.String("day", day), zap.Error(err))
	}
}

func (s *WorkoutService) activeRoutine(userUID string) *models.Routine {
	sub, err := s.subs.ActiveFor(userUID)
	if err != nil {
		return nil
	}
	plan, err := s.cat.Plan(sub.PlanID)
	if err != nil || plan.RoutineID == nil {
		return nil
	}
	routine, err := s.cat.Routine(*plan.RoutineID)
	if err != nil {
		return nil
	}
	return routine
}
