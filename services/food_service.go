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

type FoodService struct {
	db    *gorm.DB
	log   *zap.Logger
	users *UserService
	subs  *SubscriptionService
	cat   *CatalogService
	stats *StatisticsService
}

func NewFoodService(db *gorm.DB, log *zap.Logger, users *UserService, subs *SubscriptionService, cat *CatalogService, stats *StatisticsService) *FoodService {
	return &FoodService{db: db, log: log.Named("food"), users: users, subs: subs, cat: cat, stats: stats}
}

type MealItemRequest struct {
	Name          string  `json:"name"`
	Quantity      float64 `json:"quantity"`
	Calories      float64 `json:"calories"`
	Proteins      float64 `json:"proteins"`
	Carbohydrates float64 `json:"carbohydrates"`
	Fats          float64 `json:"fats"`
}

func (s *FoodService) CreateForDay(ctx context.Context, user *models.User, day any) (*models.FoodIntake, error) {
	key := utils.NormalizeDay(day)
	if key == "" {
		return nil, ErrInvalidDay
	}
	if _, err := s.ForDay(user, key); err == nil {
		return nil, ErrConflict
	} else if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	intake := &models.FoodIntake{
		UID:     uuid.NewString(),
		OwnerID: user.UID,
		Day:     key,
	}
	if plan := s.activePlan(user.UID); plan != nil {
		intake.TargetCalories = plan.Calories
		intake.TargetProteins = plan.Proteins
		intake.TargetCarbohydrates = plan.Carbohydrates
		intake.TargetFats = plan.Fats
	}
	if err := s.db.WithContext(ctx).Create(intake).Error; err != nil {
		return nil, err
	}
	return intake, nil
}

func (s *FoodService) AddMeal(ctx context.Context, user *models.User, day any, mealType string, ateAt time.Time, items []MealItemRequest) (*models.Meal, error) {
	intake, err := s.ForDay(user, day)
	if err != nil {
		return nil, err
	}

	meal := &models.Meal{IntakeID: intake.ID, Type: mealType, AteAt: ateAt}
	for _, it := range items {
		meal.Items = append(meal.Items, models.MealItem{
			Name:          it.Name,
			Quantity:      it.Quantity,
			Calories:      it.Calories,
			Proteins:      it.Proteins,
			Carbohydrates: it.Carbohydrates,
			Fats:          it.Fats,
		})
		meal.Calories += it.Calories
		meal.Proteins += it.Proteins
		meal.Carbohydrates += it.Carbohydrates
		meal.Fats += it.Fats
	}
	meal.Calories = utils.Round2(meal.Calories)
	meal.Proteins = utils.Round2(meal.Proteins)
	meal.Carbohydrates = utils.Round2(meal.Carbohydrates)
	meal.Fats = utils.Round2(meal.Fats)

	if err := s.db.WithContext(ctx).Create(meal).Error; err != nil {
		return nil, err
	}
	if err := s.refreshTotals(ctx, intake); err != nil {
		return nil, err
	}

	s.triggerRecalc(ctx, user.UID, intake.Day)
	return meal, nil
}

func (s *FoodService) RemoveMeal(ctx context.Context, user *models.User, mealID uint) error {
	var meal models.Meal
	if err := s.db.First(&meal, mealID).Error; err != nil {
		return notFoundOr(err)
	}

	var intake models.FoodIntake
	if err := s.db.First(&intake, meal.IntakeID).Error; err != nil {
		return notFoundOr(err)
	}
	aliases, err := s.users.AliasesFor(user.UID)
	if err != nil {
		aliases = []string{user.UID, user.Email}
	}
	if !containsString(aliases, intake.OwnerID) {
		return ErrNotFound
	}

	if err := s.db.WithContext(ctx).Where("meal_id = ?", meal.ID).Delete(&models.MealItem{}).Error; err != nil {
		return err
	}
	if err := s.db.WithContext(ctx).Delete(&meal).Error; err != nil {
		return err
	}
	if err := s.refreshTotals(ctx, &intake); err != nil {
		return err
	}

	s.triggerRecalc(ctx, user.UID, intake.Day)
	return nil
}

func (s *FoodService) ForDay(user *models.User, day any) (*models.FoodIntake, error) {
	key := utils.NormalizeDay(day)
	if key == "" {
		return nil, ErrInvalidDay
	}
	aliases, err := s.users.AliasesFor(user.UID)
	if err != nil {
		aliases = []string{user.UID, user.Email}
	}

	var intake models.FoodIntake
	err = s.db.Preload("Meals.Items").Preload("Meals", func(db *gorm.DB) *gorm.DB {
		return db.Order("ate_at")
	}).Where("owner_id IN ? AND day = ?", aliases, key).First(&intake).Error
	if err != nil {
		return nil, notFoundOr(err)
	}
	return &intake, nil
}

func (s *FoodService) refreshTotals(ctx context.Context, intake *models.FoodIntake) error {
	var meals []models.Meal
	if err := s.db.WithContext(ctx).Where("intake_id = ?", intake.ID).Find(&meals).Error; err != nil {
		return err
	}

	var cals, prot, carbs, fats float64
	for _, m := range meals {
		cals += m.Calories
		prot += m.Proteins
		carbs += m.Carbohydrates
		fats += m.Fats
	}
	intake.Calories = utils.Round2(cals)
	intake.Proteins = utils.Round2(prot)
	intake.Carbohydrates = utils.Round2(carbs)
	intake.Fats = utils.Round2(fats)
	return s.db.WithContext(ctx).Model(&models.FoodIntake{}).Where("id = ?", intake.ID).
		Updates(map[string]any{
			"calories":      intake.Calories,
			"proteins":      intake.Proteins,
			"carbohydrates": intake.Carbohydrates,
			"fats":          intake.Fats,
		}).Error
}

func (s *FoodService) triggerRecalc(ctx context.Context, ownerUID, day string) {
	if err := s.stats.Recalculate(ctx, ownerUID, day); err != nil {
		s.log.Warn("recalculation failed after food mutation",
			zap.String("owner", ownerUID), zap.String("day", day), zap.Error(err))
	}
}

func (s *FoodService) activePlan(userUID string) *models.Plan {
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
