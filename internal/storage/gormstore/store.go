// Package gormstore implements the storage interfaces on top of a GORM
// database handle (MySQL in production).
package gormstore

import (
	"gorm.io/gorm"
)

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}
