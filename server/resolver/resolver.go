package resolver

import (
	"gorm.io/gorm"
)

// It serves as dependency injection for your app, add any dependencies you require here.

type Resolver struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *Resolver {
	return &Resolver{DB: db}
}
