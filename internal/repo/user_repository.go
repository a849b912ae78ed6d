package repo

import (
	"errors"

	"github.com/rogerio-castellano/apm-catalog/internal/models"
)

var (
	ErrUserNotFound          = errors.New("user not found")
	ErrDuplicatedValueUnique = errors.New("duplicated value violates unique constraint")
)

type UserRepository interface {
	GetByUsername(username string) (models.User, error)
	CreateUser(u models.User) (models.User, error)
}
