package services

import (
	"errors"
	"strings"

	"github.com/brahimakil/OneLife-sub001/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewUserService(db *gorm.DB, log *zap.Logger) *UserService {
	return &UserService{db: db, log: log.Named("users")}
}

func (s *UserService) Register(email, password, fullName string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var existing models.User
	if err := s.db.Where("email = ?", email).First(&existing).Error; err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		UID:      uuid.NewString(),
		Email:    email,
		Password: string(hash),
		FullName: fullName,
	}
	if err := s.db.Create(user).Error; err != nil {
		return nil, err
	}

	// Seed the alias set. New records are always written under the UID, but
	// the email stays an acceptable owner key for rows written before the
	// UID migration.
	aliases := []models.UserAlias{
		{UserID: user.ID, Alias: user.UID},
		{UserID: user.ID, Alias: user.Email},
	}
	if err := s.db.Create(&aliases).Error; err != nil {
		return nil, err
	}

	s.log.Info("user registered", zap.String("uid", user.UID))
	return user, nil
}

func (s *UserService) Authenticate(email, password string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var user models.User
	err := s.db.Where("email = ? AND disabled = ?", email, false).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

func (s *UserService) List() ([]models.User, error) {
	var users []models.User
	err := s.db.Where("disabled = ?", false).Order("id").Find(&users).Error
	return users, err
}

func (s *UserService) ByUID(uid string) (*models.User, error) {
	var user models.User
	err := s.db.Where("uid = ?", uid).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ByIdentifier resolves a user from either identifier; the auth middleware
// hands us a uid claim on new tokens and an email claim on legacy ones.
func (s *UserService) ByIdentifier(id string) (*models.User, error) {
	var user models.User
	err := s.db.Where("uid = ? OR email = ?", id, strings.ToLower(id)).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// AliasesFor returns every owner identifier the user's daily records may be
// stored under. Falls back to {uid, email} when the alias table has no rows
// for the user.
func (s *UserService) AliasesFor(uid string) ([]string, error) {
	user, err := s.ByUID(uid)
	if err != nil {
		return nil, err
	}

	var rows []models.UserAlias
	if err := s.db.Where("user_id = ?", user.ID).Find(&rows).Error; err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return []string{user.UID, user.Email}, nil
	}

	aliases := make([]string, 0, len(rows))
	for _, r := range rows {
		aliases = append(aliases, r.Alias)
	}
	return aliases, nil
}
