package services

import (
	"context"
	"errors"
	"time"

	"github.com/brahimakil/OneLife-sub001/models"
	"github.com/brahimakil/OneLife-sub001/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ProvisioningService ensures every user with an active subscription has one
// record per day in each of the five per-day families. Runs are idempotent:
// an existing (owner, day) record in a family is a no-op for that family.
type ProvisioningService struct {
	db       *gorm.DB
	log      *zap.Logger
	users    *UserService
	subs     *SubscriptionService
	cat      *CatalogService
	interval time.Duration
	opsEmail string
}

func NewProvisioningService(db *gorm.DB, log *zap.Logger, users *UserService, subs *SubscriptionService, cat *CatalogService, interval time.Duration, opsEmail string) *ProvisioningService {
	if interval <= 0 {
		interval = 24 * time.Hour
	}
	return &ProvisioningService{
		db:       db,
		log:      log.Named("provisioning"),
		users:    users,
		subs:     subs,
		cat:      cat,
		interval: interval,
		opsEmail: opsEmail,
	}
}

type RunSummary struct {
	Day     string `json:"day"`
	Users   int    `json:"users"`
	Skipped int    `json:"skipped"`
	Created int    `json:"created"`
	Failed  int    `json:"failed"`
}

// RunForever drives RunOnce on the configured interval until the context is
// cancelled. The first run happens immediately.
func (s *ProvisioningService) RunForever(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		if _, err := s.RunOnce(ctx, time.Now()); err != nil {
			s.log.Warn("provisioning run failed", zap.Error(err))
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// RunOnce provisions all users for the calendar day of now (UTC). A failure
// for one user is logged and never aborts the run for the others.
func (s *ProvisioningService) RunOnce(ctx context.Context, now time.Time) (RunSummary, error) {
	day := utils.DayOf(now)
	weekday := utils.WeekdayOf(now)
	summary := RunSummary{Day: day}

	users, err := s.users.List()
	if err != nil {
		return summary, err
	}
	summary.Users = len(users)

	for i := range users {
		user := &users[i]
		created, skipped, err := s.provisionUser(ctx, user, day, weekday)
		summary.Created += created
		if skipped {
			summary.Skipped++
		}
		if err != nil {
			summary.Failed++
			s.log.Error("provisioning failed for user",
				zap.String("uid", user.UID), zap.String("day", day), zap.Error(err))
		}
	}

	s.log.Info("provisioning run finished",
		zap.String("day", day),
		zap.Int("users", summary.Users),
		zap.Int("created", summary.Created),
		zap.Int("skipped", summary.Skipped),
		zap.Int("failed", summary.Failed))

	if summary.Failed > 0 && s.opsEmail != "" {
		if err := utils.SendProvisioningDigest(s.opsEmail, day, summary.Created, summary.Skipped, summary.Failed); err != nil {
			s.log.Warn("provisioning digest email failed", zap.Error(err))
		}
	}
	return summary, nil
}

// provisionUser ensures the five per-day records for one user. Users without
// an active subscription (or whose plan is gone) are skipped entirely; a
// missing routine only empties the workout skeleton. The five families are
// ensured independently so one failure does not block the rest.
func (s *ProvisioningService) provisionUser(ctx context.Context, user *models.User, day, weekday string) (int, bool, error) {
	sub, err := s.subs.ActiveFor(user.UID)
	if errors.Is(err, ErrNotFound) {
		s.log.Debug("no active subscription, skipping user", zap.String("uid", user.UID))
		return 0, true, nil
	}
	if err != nil {
		return 0, false, err
	}

	plan, err := s.cat.Plan(sub.PlanID)
	if errors.Is(err, ErrNotFound) {
		s.log.Warn("subscription references missing plan, skipping user",
			zap.String("uid", user.UID), zap.Uint("plan_id", sub.PlanID))
		return 0, true, nil
	}
	if err != nil {
		return 0, false, err
	}

	var routine *models.Routine
	if plan.RoutineID != nil {
		routine, err = s.cat.Routine(*plan.RoutineID)
		if err != nil {
			s.log.Warn("routine unavailable, provisioning empty workout",
				zap.String("uid", user.UID), zap.Error(err))
			routine = nil
		}
	}

	aliases, err := s.users.AliasesFor(user.UID)
	if err != nil {
		aliases = []string{user.UID, user.Email}
	}

	created := 0
	var errs []error
	ensure := func(family string, exists func() (bool, error), create func() error) {
		found, err := exists()
		if err != nil {
			errs = append(errs, err)
			return
		}
		if found {
			s.log.Debug("record already provisioned",
				zap.String("uid", user.UID), zap.String("family", family), zap.String("day", day))
			return
		}
		if err := create(); err != nil {
			errs = append(errs, err)
			return
		}
		created++
		s.log.Info("record provisioned",
			zap.String("uid", user.UID), zap.String("family", family), zap.String("day", day))
	}

	db := s.db.WithContext(ctx)

	ensure("workout",
		func() (bool, error) { return recordExists(db, &models.WorkoutProgress{}, aliases, day) },
		func() error { return db.Create(newWorkoutSkeleton(user.UID, day, weekday, routine)).Error })
	ensure("water",
		func() (bool, error) { return recordExists(db, &models.WaterIntake{}, aliases, day) },
		func() error { return db.Create(newWaterSkeleton(user.UID, day, plan)).Error })
	ensure("food",
		func() (bool, error) { return recordExists(db, &models.FoodIntake{}, aliases, day) },
		func() error { return db.Create(newFoodSkeleton(user.UID, day, plan)).Error })
	ensure("sleep",
		func() (bool, error) { return recordExists(db, &models.SleepTracking{}, aliases, day) },
		func() error { return db.Create(newSleepSkeleton(user.UID, day, plan)).Error })
	ensure("statistic",
		func() (bool, error) { return recordExists(db, &models.DailyStatistic{}, aliases, day) },
		func() error { return db.Create(newStatisticSkeleton(user.UID, day, plan)).Error })

	return created, false, errors.Join(errs...)
}

// recordExists is the idempotency check: a direct key read over the canonical
// (owner, day) columns, matched against the user's full alias set.
func recordExists(db *gorm.DB, model any, aliases []string, day string) (bool, error) {
	var count int64
	err := db.Model(model).Where("owner_id IN ? AND day = ?", aliases, day).Count(&count).Error
	return count > 0, err
}

// Skeleton builders, shared with the direct-create endpoints.

func newWorkoutSkeleton(ownerUID, day, weekday string, routine *models.Routine) *models.WorkoutProgress {
	p := &models.WorkoutProgress{
		UID:       uuid.NewString(),
		OwnerID:   ownerUID,
		Day:       day,
		DayOfWeek: weekday,
	}
	if routine != nil {
		pos := 0
		for _, re := range routine.Exercises {
			if re.DayOfWeek != weekday {
				continue
			}
			p.Exercises = append(p.Exercises, models.WorkoutExercise{
				Position:    pos,
				ExerciseUID: re.ExerciseUID,
				Name:        re.Name,
				Sets:        re.Sets,
				Reps:        re.Reps,
				RestSeconds: re.RestSeconds,
			})
			pos++
		}
	}
	p.TotalCount = len(p.Exercises)
	return p
}

func newWaterSkeleton(ownerUID, day string, plan *models.Plan) *models.WaterIntake {
	w := &models.WaterIntake{UID: uuid.NewString(), OwnerID: ownerUID, Day: day}
	if plan != nil {
		w.TargetLiters = plan.HydrationLiters
	}
	return w
}

func newFoodSkeleton(ownerUID, day string, plan *models.Plan) *models.FoodIntake {
	f := &models.FoodIntake{UID: uuid.NewString(), OwnerID: ownerUID, Day: day}
	if plan != nil {
		f.TargetCalories = plan.Calories
		f.TargetProteins = plan.Proteins
		f.TargetCarbohydrates = plan.Carbohydrates
		f.TargetFats = plan.Fats
	}
	return f
}

func newSleepSkeleton(ownerUID, day string, plan *models.Plan) *models.SleepTracking {
	sl := &models.SleepTracking{UID: uuid.NewString(), OwnerID: ownerUID, Day: day}
	if plan != nil {
		sl.TargetHours = plan.SleepHours
	}
	return sl
}

func newStatisticSkeleton(ownerUID, day string, plan *models.Plan) *models.DailyStatistic {
	stat := &models.DailyStatistic{UID: uuid.NewString(), OwnerID: ownerUID, Day: day}
	if plan != nil {
		stat.PlanTargets = models.PlanTargets{
			Calories:        plan.Calories,
			Proteins:        plan.Proteins,
			Carbohydrates:   plan.Carbohydrates,
			Fats:            plan.Fats,
			HydrationLiters: plan.HydrationLiters,
			SleepHours:      plan.SleepHours,
		}
	}
	return stat
}

// dayTime converts a canonical day key back to midnight UTC of that day.
func dayTime(day string) time.Time {
	t, _ := time.Parse("2006-01-02", day)
	return t
}
