package services

import (
	"context"
	"errors"
	"sync"

	"github.com/brahimakil/OneLife-sub001/models"
	"github.com/brahimakil/OneLife-sub001/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// StatisticsService owns every write to DailyStatistic past the provisioning
// skeleton. Recalculate re-reads the four source families for a (user, day)
// and overwrites the rollup.
type StatisticsService struct {
	db    *gorm.DB
	log   *zap.Logger
	users *UserService
	hub   *RealtimeHub

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewStatisticsService(db *gorm.DB, log *zap.Logger, users *UserService, hub *RealtimeHub) *StatisticsService {
	return &StatisticsService{db: db, log: log.Named("statistics"), users: users, hub: hub}
}

// Recalculate recomputes the daily statistic for (ownerUID, day). It never
// creates a statistic: if none was provisioned for the day the call is a
// no-op. A failed read of any single source family degrades to a zero
// contribution for that family rather than aborting; partial statistics beat
// none.
func (s *StatisticsService) Recalculate(ctx context.Context, ownerUID string, day any) error {
	key := utils.NormalizeDay(day)
	if key == "" {
		return ErrInvalidDay
	}

	// Concurrent triggers for the same (user, day) are serialized so the
	// last write always reflects a full read of current sources.
	lk := s.dayLock(ownerUID + "/" + key)
	lk.Lock()
	defer lk.Unlock()

	aliases := s.ownerAliases(ownerUID)
	db := s.db.WithContext(ctx)

	var stat models.DailyStatistic
	err := db.Where("owner_id IN ? AND day = ?", aliases, key).First(&stat).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		s.log.Debug("no statistic provisioned for day, skipping",
			zap.String("owner", ownerUID), zap.String("day", key))
		return nil
	}
	if err != nil {
		return err
	}

	var water models.WaterIntake
	if err := db.Where("owner_id IN ? AND day = ?", aliases, key).First(&water).Error; err != nil {
		s.logSourceMiss("water", ownerUID, key, err)
		water = models.WaterIntake{}
	}

	var food models.FoodIntake
	if err := db.Where("owner_id IN ? AND day = ?", aliases, key).First(&food).Error; err != nil {
		s.logSourceMiss("food", ownerUID, key, err)
		food = models.FoodIntake{}
	}

	var workout models.WorkoutProgress
	if err := db.Where("owner_id IN ? AND day = ?", aliases, key).First(&workout).Error; err != nil {
		s.logSourceMiss("workout", ownerUID, key, err)
		workout = models.WorkoutProgress{}
	}

	var sleep models.SleepTracking
	if err := db.Where("owner_id IN ? AND day = ?", aliases, key).First(&sleep).Error; err != nil {
		s.logSourceMiss("sleep", ownerUID, key, err)
		sleep = models.SleepTracking{}
	}

	stat.Consumed = models.ConsumedTotals{
		Hydration:     utils.Round3(water.TotalLiters),
		Calories:      utils.Round2(food.Calories),
		Proteins:      utils.Round2(food.Proteins),
		Carbohydrates: utils.Round2(food.Carbohydrates),
		Fats:          utils.Round2(food.Fats),
	}
	stat.Burned = models.BurnedTotals{
		Calories:      utils.Round2(workout.CaloriesBurned),
		Proteins:      utils.Round2(workout.ProteinsBurned),
		Carbohydrates: utils.Round2(workout.CarbohydratesBurned),
		Fats:          utils.Round2(workout.FatsBurned),
		WaterLoss:     utils.Round3(workout.WaterLoss),
	}
	// Only dimensions with a burn counterpart are netted; hydration nets
	// workout water loss against water consumed.
	stat.Net = models.NetTotals{
		Hydration:     utils.Round3(water.TotalLiters - workout.WaterLoss),
		Calories:      utils.Round2(food.Calories - workout.CaloriesBurned),
		Proteins:      utils.Round2(food.Proteins - workout.ProteinsBurned),
		Carbohydrates: utils.Round2(food.Carbohydrates - workout.CarbohydratesBurned),
		Fats:          utils.Round2(food.Fats - workout.FatsBurned),
	}
	stat.HoursSlept = utils.Round2(sleep.Hours)
	stat.WorkoutCompleted = workout.Completed
	// PlanTargets is a creation-time snapshot; Save rewrites it unchanged.

	if err := db.Save(&stat).Error; err != nil {
		return err
	}

	s.log.Info("statistic recalculated",
		zap.String("owner", ownerUID),
		zap.String("day", key),
		zap.Float64("net_calories", stat.Net.Calories))

	if s.hub != nil {
		s.hub.BroadcastStatistic(ownerUID, &stat)
	}
	return nil
}

// ForDay returns the statistic for (ownerUID, day), or ErrNotFound.
func (s *StatisticsService) ForDay(ownerUID string, day any) (*models.DailyStatistic, error) {
	key := utils.NormalizeDay(day)
	if key == "" {
		return nil, ErrInvalidDay
	}
	var stat models.DailyStatistic
	err := s.db.Where("owner_id IN ? AND day = ?", s.ownerAliases(ownerUID), key).First(&stat).Error
	if err != nil {
		return nil, notFoundOr(err)
	}
	return &stat, nil
}

func (s *StatisticsService) History(ownerUID string) ([]models.DailyStatistic, error) {
	var stats []models.DailyStatistic
	err := s.db.Where("owner_id IN ?", s.ownerAliases(ownerUID)).
		Order("day desc").Find(&stats).Error
	return stats, err
}

func (s *StatisticsService) dayLock(key string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.locks == nil {
		s.locks = make(map[string]*sync.Mutex)
	}
	lk, ok := s.locks[key]
	if !ok {
		lk = &sync.Mutex{}
		s.locks[key] = lk
	}
	return lk
}

func (s *StatisticsService) ownerAliases(ownerUID string) []string {
	aliases, err := s.users.AliasesFor(ownerUID)
	if err != nil || len(aliases) == 0 {
		return []string{ownerUID}
	}
	return aliases
}

func (s *StatisticsService) logSourceMiss(family, ownerUID, day string, err error) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		s.log.Debug("source record absent, defaulting to zero",
			zap.String("family", family), zap.String("owner", ownerUID), zap.String("day", day))
		return
	}
	s.log.Warn("source read failed, defaulting to zero",
		zap.String("family", family), zap.String("owner", ownerUID),
		zap.String("day", day), zap.Error(err))
}
