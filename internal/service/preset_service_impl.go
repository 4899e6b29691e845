package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/juku/internal/app"
	"github.com/alexanderramin/juku/internal/db"
	"github.com/alexanderramin/juku/internal/domain"
	"github.com/alexanderramin/juku/internal/repository"
)

type presetService struct {
	presets   repository.PresetRepo
	textbooks repository.TextbookRepo
	uow       db.UnitOfWork
}

func NewPresetService(presets repository.PresetRepo, textbooks repository.TextbookRepo, uow db.UnitOfWork) PresetService {
	return &presetService{presets: presets, textbooks: textbooks, uow: uow}
}

func (s *presetService) Create(ctx context.Context, in app.PresetInput) (*domain.BulkPreset, error) {
	p, err := s.prepare(ctx, 0, in)
	if err != nil {
		return nil, err
	}
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLitePresetRepo(tx).Create(ctx, p)
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (s *presetService) Get(ctx context.Context, id int64) (*domain.BulkPreset, error) {
	return s.presets.GetByID(ctx, id)
}

func (s *presetService) List(ctx context.Context, subject string) ([]*domain.BulkPreset, error) {
	return s.presets.List(ctx, strings.TrimSpace(subject))
}

func (s *presetService) Update(ctx context.Context, id int64, in app.PresetInput) (*domain.BulkPreset, error) {
	if _, err := s.presets.GetByID(ctx, id); err != nil {
		return nil, err
	}
	p, err := s.prepare(ctx, id, in)
	if err != nil {
		return nil, err
	}
	p.ID = id
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLitePresetRepo(tx).Update(ctx, p)
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (s *presetService) Delete(ctx context.Context, id int64) error {
	return s.presets.Delete(ctx, id)
}

// prepare validates in and checks the name is free and every book is in
// the subject's catalog. self is the preset being edited, 0 on create.
func (s *presetService) prepare(ctx context.Context, self int64, in app.PresetInput) (*domain.BulkPreset, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	p := in.Preset()

	existing, err := s.presets.GetByName(ctx, p.Subject, p.Name)
	switch {
	case err == nil && existing.ID != self:
		return nil, fieldError("name", fmt.Sprintf("preset %q already exists for %s", p.Name, p.Subject))
	case err != nil && !errors.Is(err, repository.ErrNotFound):
		return nil, err
	}

	books, err := s.textbooks.List(ctx, repository.TextbookFilter{Subject: p.Subject})
	if err != nil {
		return nil, fmt.Errorf("loading %s catalog: %w", p.Subject, err)
	}
	known := make(map[string]bool, len(books))
	for _, b := range books {
		known[b.Name] = true
	}
	var missing []string
	for _, name := range p.Books {
		if !known[name] {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fieldError("books", fmt.Sprintf("not in the %s catalog: %s", p.Subject, strings.Join(missing, ", ")))
	}
	return p, nil
}
