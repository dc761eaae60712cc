package services

import (
	"errors"
	"time"

	"github.com/brahimakil/OneLife-sub001/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type SubscriptionService struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewSubscriptionService(db *gorm.DB, log *zap.Logger) *SubscriptionService {
	return &SubscriptionService{db: db, log: log.Named("subscriptions")}
}

// Create registers a subscription. When activate is set the at-most-one-active
// rule is checked first, so a rejected create never disturbs the subscription
// currently in force.
func (s *SubscriptionService) Create(userUID string, planID uint, start time.Time, end *time.Time, activate bool) (*models.Subscription, error) {
	var plan models.Plan
	if err := s.db.First(&plan, planID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if activate {
		if err := s.assertNoActive(userUID, 0); err != nil {
			return nil, err
		}
	}

	sub := &models.Subscription{
		UserUID:   userUID,
		PlanID:    planID,
		StartDate: start,
		EndDate:   end,
		Active:    activate,
	}
	if err := s.db.Create(sub).Error; err != nil {
		return nil, err
	}
	return sub, nil
}

func (s *SubscriptionService) Activate(id uint) (*models.Subscription, error) {
	var sub models.Subscription
	if err := s.db.First(&sub, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if sub.Active {
		return &sub, nil
	}
	if err := s.assertNoActive(sub.UserUID, sub.ID); err != nil {
		return nil, err
	}

	sub.Active = true
	if err := s.db.Save(&sub).Error; err != nil {
		return nil, err
	}
	return &sub, nil
}

func (s *SubscriptionService) Deactivate(id uint) error {
	res := s.db.Model(&models.Subscription{}).Where("id = ?", id).Update("active", false)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ActiveFor returns the single active subscription for a user, or ErrNotFound.
func (s *SubscriptionService) ActiveFor(userUID string) (*models.Subscription, error) {
	var sub models.Subscription
	err := s.db.Where("user_uid = ? AND active = ?", userUID, true).First(&sub).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

func (s *SubscriptionService) ListFor(userUID string) ([]models.Subscription, error) {
	var subs []models.Subscription
	err := s.db.Where("user_uid = ?", userUID).Order("id desc").Find(&subs).Error
	return subs, err
}

func (s *SubscriptionService) assertNoActive(userUID string, exceptID uint) error {
	var count int64
	err := s.db.Model(&models.Subscription{}).
		Where("user_uid = ? AND active = ? AND id <> ?", userUID, true, exceptID).
		Count(&count).Error
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrActiveSubscriptionExists
	}
	return nil
}
