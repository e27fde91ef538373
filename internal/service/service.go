package service

import (
	"github.com/oklog/ulid/v2"

	"github.com/mustafamengutay/koly-sub000/internal/repository"
)

type Service struct {
	repo repository.Repository
}

func New(repo repository.Repository) *Service {
	return &Service{repo: repo}
}

func newULID() string {
	return ulid.Make().String()
}
