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

type SleepService struct {
	db    *gorm.DB
	log   *zap.Logger
	users *UserService
	subs  *SubscriptionService
	cat   *CatalogService
	stats *StatisticsService
}

func NewSleepService(db *gorm.DB, log *zap.Logger, users *UserService, subs *SubscriptionService, cat *CatalogService, stats *StatisticsService) *SleepService {
	return &SleepService{db: db, log: log.Named("sleep"), users: users, subs: subs, cat: cat, stats: stats}
}

func (s *SleepService) CreateForDay(ctx context.Context, user *models.User, day any) (*models.SleepTracking, error) {
	key := utils.NormalizeDay(day)
	if key == "" {
		return nil, ErrInvalidDay
	}
	if _, err := s.ForDay(user, key); err == nil {
		return nil, ErrConflict
	} else if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	record := &models.SleepTracking{
		UID:     uuid.NewString(),
		OwnerID: user.UID,
		Day:     key,
	}
	if plan := s.activePlan(user.UID); plan != nil {
		record.TargetHours = plan.SleepHours
	}
	if err := s.db.WithContext(ctx).Create(record).Error; err != nil {
		return nil, err
	}
	return record, nil
}

// LogSleep records bed/wake times for the day. A wake time earlier in the
// clock than the bed time is read as crossing midnight.
func (s *SleepService) LogSleep(ctx context.Context, user *models.User, day any, bedTime, wakeTime time.Time, quality string) (*models.SleepTracking, error) {
	record, err := s.ForDay(user, day)
	if err != nil {
		return nil, err
	}

	hours := wakeTime.Sub(bedTime).Hours()
	if hours < 0 {
		hours += 24
	}

	record.BedTime = &bedTime
	record.WakeTime = &wakeTime
	record.Hours = utils.Round2(hours)
	record.Quality = quality
	if err := s.db.WithContext(ctx).Save(record).Error; err != nil {
		return nil, err
	}

	s.triggerRecalc(ctx, user.UID, record.Day)
	return record, nil
}

func (s *SleepService) ForDay(user *models.User, day any) (*models.SleepTracking, error) {
	key := utils.NormalizeDay(day)
	if key == "" {
		return nil, ErrInvalidDay
	}
	aliases, err := s.users.AliasesFor(user.UID)
	if err != nil {
		aliases = []string{user.UID, user.Email}
	}

	var record models.SleepTracking
	err = s.db.Where("owner_id IN ? AND day = ?", aliases, key).First(&record).Error
	if err != nil {
		return nil, notFoundOr(err)
	}
	return &record, nil
}

func (s *SleepService) triggerRecalc(ctx context.Context, ownerUID, day string) {
	if err := s.stats.Recalculate(ctx, ownerUID, day); err != nil {
		s.log.Warn("recalculation failed after sleep mutation",
			zap.String("owner", ownerUID), zap.String("day", day), zap.Error(err))
	}
}

func (s *SleepService) activePlan(userUID string) *models.Plan {
	sub, err := s.subs.ActiveFor(userUID)
	if err != nil {
		return nil
	}
	plan, err := s.cat.Plan(sub.PlanID)
	if err != nil {
		return nil
	}
	return plan
}
