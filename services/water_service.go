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

type WaterService struct {
	db    *gorm.DB
	log   *zap.Logger
	users *UserService
	subs  *SubscriptionService
	cat   *CatalogService
	stats *StatisticsService
}

func NewWaterService(db *gorm.DB, log *zap.Logger, users *UserService, subs *SubscriptionService, cat *CatalogService, stats *StatisticsService) *WaterService {
	return &WaterService{db: db, log: log.Named("water"), users: users, subs: subs, cat: cat, stats: stats}
}

// CreateForDay creates the day's water record ahead of the provisioning job.
// Same existence check, reported as ErrConflict instead of silently skipped.
func (s *WaterService) CreateForDay(ctx context.Context, user *models.User, day any) (*models.WaterIntake, error) {
	key := utils.NormalizeDay(day)
	if key == "" {
		return nil, ErrInvalidDay
	}
	if _, err := s.ForDay(user, key); err == nil {
		return nil, ErrConflict
	} else if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	intake := &models.WaterIntake{
		UID:          uuid.NewString(),
		OwnerID:      user.UID,
		Day:          key,
		TargetLiters: s.planHydrationTarget(user.UID),
	}
	if err := s.db.WithContext(ctx).Create(intake).Error; err != nil {
		return nil, err
	}
	return intake, nil
}

func (s *WaterService) AddLog(ctx context.Context, user *models.User, day any, loggedAt time.Time, liters float64) (*models.WaterIntake, error) {
	intake, err := s.ForDay(user, day)
	if err != nil {
		return nil, err
	}

	entry := models.WaterLog{IntakeID: intake.ID, LoggedAt: loggedAt, Liters: liters}
	if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
		return nil, err
	}
	if err := s.refreshTotal(ctx, intake); err != nil {
		return nil, err
	}

	s.triggerRecalc(ctx, user.UID, intake.Day)
	return intake, nil
}

func (s *WaterService) UpdateLog(ctx context.Context, user *models.User, logID uint, loggedAt time.Time, liters float64) (*models.WaterIntake, error) {
	intake, entry, err := s.ownedLog(user, logID)
	if err != nil {
		return nil, err
	}

	entry.LoggedAt = loggedAt
	entry.Liters = liters
	if err := s.db.WithContext(ctx).Save(entry).Error; err != nil {
		return nil, err
	}
	if err := s.refreshTotal(ctx, intake); err != nil {
		return nil, err
	}

	s.triggerRecalc(ctx, user.UID, intake.Day)
	return intake, nil
}

func (s *WaterService) RemoveLog(ctx context.Context, user *models.User, logID uint) (*models.WaterIntake, error) {
	intake, entry, err := s.ownedLog(user, logID)
	if err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).Delete(entry).Error; err != nil {
		return nil, err
	}
	if err := s.refreshTotal(ctx, intake); err != nil {
		return nil, err
	}

	s.triggerRecalc(ctx, user.UID, intake.Day)
	return intake, nil
}

func (s *WaterService) ForDay(user *models.User, day any) (*models.WaterIntake, error) {
	key := utils.NormalizeDay(day)
	if key == "" {
		return nil, ErrInvalidDay
	}
	aliases, err := s.users.AliasesFor(user.UID)
	if err != nil {
		aliases = []string{user.UID, user.Email}
	}

	var intake models.WaterIntake
	err = s.db.Preload("Logs", func(db *gorm.DB) *gorm.DB {
		return db.Order("logged_at")
	}).Where("owner_id IN ? AND day = ?", aliases, key).First(&intake).Error
	if err != nil {
		return nil, notFoundOr(err)
	}
	return &intake, nil
}

func (s *WaterService) refreshTotal(ctx context.Context, intake *models.WaterIntake) error {
	var logs []models.WaterLog
	if err := s.db.WithContext(ctx).Where("intake_id = ?", intake.ID).Find(&logs).Error; err != nil {
		return err
	}
	total := 0.0
	for _, l := range logs {
		total += l.Liters
	}
	intake.TotalLiters = utils.Round3(total)
	intake.Logs = logs
	return s.db.WithContext(ctx).Model(&models.WaterIntake{}).Where("id = ?", intake.ID).
		Update("total_liters", intake.TotalLiters).Error
}

func (s *WaterService) ownedLog(user *models.User, logID uint) (*models.WaterIntake, *models.WaterLog, error) {
	var entry models.WaterLog
	if err := s.db.First(&entry, logID).Error; err != nil {
		return nil, nil, notFoundOr(err)
	}

	var intake models.WaterIntake
	if err := s.db.First(&intake, entry.IntakeID).Error; err != nil {
		return nil, nil, notFoundOr(err)
	}
	aliases, err := s.users.AliasesFor(user.UID)
	if err != nil {
		aliases = []string{user.UID, user.Email}
	}
	if !containsString(aliases, intake.OwnerID) {
		return nil, nil, ErrNotFound
	}
	return &intake, &entry, nil
}

// triggerRecalc runs after the source write committed; a recalculation
// failure is logged and never rolls the mutation back.
func (s *WaterService) triggerRecalc(ctx context.Context, ownerUID, day string) {
	if err := s.stats.Recalculate(ctx, ownerUID, day); err != nil {
		s.log.Warn("recalculation failed after water mutation",
			zap.String("owner", ownerUID), zap.String("day", day), zap.Error(err))
	}
}

func (s *WaterService) planHydrationTarget(userUID string) float64 {
	sub, err := s.subs.ActiveFor(userUID)
	if err != nil {
		return 0
	}
	plan, err := s.cat.Plan(sub.PlanID)
	if err != nil {
		return 0
	}
	return plan.HydrationLiters
}

func containsString(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
