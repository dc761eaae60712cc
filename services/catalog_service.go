package services

import (
	"errors"

	"github.com/brahimakil/OneLife-sub001/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// CatalogService covers the mechanical CRUD surface: plans, routines and the
// exercise catalog. Daily-record provisioning and the exertion calculator
// read through it.
type CatalogService struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewCatalogService(db *gorm.DB, log *zap.Logger) *CatalogService {
	return &CatalogService{db: db, log: log.Named("catalog")}
}

// Plans

func (s *CatalogService) CreatePlan(plan *models.Plan) error {
	return s.db.Create(plan).Error
}

func (s *CatalogService) Plan(id uint) (*models.Plan, error) {
	var plan models.Plan
	if err := s.db.First(&plan, id).Error; err != nil {
		return nil, notFoundOr(err)
	}
	return &plan, nil
}

func (s *CatalogService) ListPlans() ([]models.Plan, error) {
	var plans []models.Plan
	err := s.db.Order("id").Find(&plans).Error
	return plans, err
}

func (s *CatalogService) DeletePlan(id uint) error {
	res := s.db.Delete(&models.Plan{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Routines

func (s *CatalogService) CreateRoutine(routine *models.Routine) error {
	return s.db.Create(routine).Error
}

func (s *CatalogService) Routine(id uint) (*models.Routine, error) {
	var routine models.Routine
	err := s.db.Preload("Exercises", func(db *gorm.DB) *gorm.DB {
		return db.Order("position")
	}).First(&routine, id).Error
	if err != nil {
		return nil, notFoundOr(err)
	}
	return &routine, nil
}

func (s *CatalogService) ListRoutines() ([]models.Routine, error) {
	var routines []models.Routine
	err := s.db.Preload("Exercises").Order("id").Find(&routines).Error
	return routines, err
}

func (s *CatalogService) DeleteRoutine(id uint) error {
	if err := s.db.Where("routine_id = ?", id).Delete(&models.RoutineExercise{}).Error; err != nil {
		return err
	}
	res := s.db.Delete(&models.Routine{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Exercise catalog

func (s *CatalogService) CreateExercise(ex *models.Exercise) error {
	if ex.UID == "" {
		ex.UID = uuid.NewString()
	}
	return s.db.Create(ex).Error
}

func (s *CatalogService) ExerciseByUID(uid string) (*models.Exercise, error) {
	var ex models.Exercise
	if err := s.db.Where("uid = ?", uid).First(&ex).Error; err != nil {
		return nil, notFoundOr(err)
	}
	return &ex, nil
}

func (s *CatalogService) ListExercises() ([]models.Exercise, error) {
	var list []models.Exercise
	err := s.db.Order("name").Find(&list).Error
	return list, err
}

func (s *CatalogService) UpdateExercise(ex *models.Exercise) error {
	return s.db.Save(ex).Error
}

func (s *CatalogService) DeleteExercise(uid string) error {
	res := s.db.Where("uid = ?", uid).Delete(&models.Exercise{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func notFoundOr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
