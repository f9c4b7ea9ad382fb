package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/d60-Lab/microblog/internal/model"
)

// UserRepository is the identity store. Reads never return the credential
// hash; CredentialByEmail exists solely for the login path.
type UserRepository interface {
	Create(ctx context.Context, email, imageURL, credentialHash string) (*model.User, error)
	FindByID(ctx context.Context, id string) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	List(ctx context.Context) ([]*model.User, error)
	CredentialByEmail(ctx context.Context, email string) (userID, hash string, err error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository { return &userRepository{db: db} }

// Create persists the user and its password row in one transaction. The
// unique index on email turns duplicate registrations into ErrConflict.
func (r *userRepository) Create(ctx context.Context, email, imageURL, credentialHash string) (*model.User, error) {
	u := &model.User{ID: uuid.New().String(), Email: email, ImageURL: imageURL}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(u).Error; err != nil {
			return err
		}
		p := &model.Password{ID: uuid.New().String(), UserID: u.ID, Hash: credentialHash}
		return tx.Create(p).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("user %s: %w", email, model.ErrConflict)
		}
		return nil, err
	}
	return u, nil
}

func (r *userRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	var u model.User
	if err := r.db.WithContext(ctx).First(&u, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %s: %w", id, model.ErrNotFound)
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var u model.User
	if err := r.db.WithContext(ctx).First(&u, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %s: %w", email, model.ErrNotFound)
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) List(ctx context.Context) ([]*model.User, error) {
	var users []*model.User
	err := r.db.WithContext(ctx).Order("created_at").Find(&users).Error
	return users, err
}

func (r *userRepository) CredentialByEmail(ctx context.Context, email string) (string, string, error) {
	var row struct {
		UserID string
		Hash   string
	}
	err := r.db.WithContext(ctx).
		Table("passwords").
		Select("passwords.user_id", "passwords.hash").
		Joins("JOIN users ON users.id = passwords.user_id").
		Where("users.email = ?", email).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", "", fmt.Errorf("credential for %s: %w", email, model.ErrNotFound)
		}
		return "", "", err
	}
	return row.UserID, row.Hash, nil
}
