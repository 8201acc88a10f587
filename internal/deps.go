package internal

import (
	"bitwise74/linkboard-api/pkg/security"

	"gorm.io/gorm"
)

type Deps struct {
	DB   *gorm.DB
	Hash *security.Bcrypt
}
