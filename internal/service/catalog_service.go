package service

import (
	"errors"
	"fmt"

	"go-resto-backoffice/internal/model"
	"go-resto-backoffice/internal/store"
	"go-resto-backoffice/pkg/validator"

	"github.com/google/uuid"
)

var ErrMenuItemNotFound = errors.New("menu item not found")

type CatalogService interface {
	GetMenu() []model.MenuItem
	AddMenuItem(req *model.MenuItem) (*model.MenuItem, error)
	DeleteMenuItem(id string) error
}

type catalogService struct {
	store *store.Store
}

func NewCatalogService(st *store.Store) CatalogService {
	return &catalogService{store: st}
}

func (s *catalogService) GetMenu() []model.MenuItem {
	return s.store.Menu()
}

func (s *catalogService) AddMenuItem(req *model.MenuItem) (*model.MenuItem, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return nil, fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	req.ID = uuid.NewString()
	item := *req

	err := s.store.MutateMenu(func(menu []model.MenuItem) []model.MenuItem {
		return append(menu, item)
	})
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *catalogService) DeleteMenuItem(id string) error {
	found := false
	err := s.store.MutateMenu(func(menu []model.MenuItem) []model.MenuItem {
		next := menu[:0]
		for _, item := range menu {
			if item.ID == id {
				found = true
				continue
			}
			next = append(next, item)
		}
		return next
	})
	if err != nil {
		return err
	}
	if !found {
		return ErrMenuItemNotFound
	}
	return nil
}
