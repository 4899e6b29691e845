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
	"github.com/alexanderramin/juku/internal/validation"
)

type progressService struct {
	students  repository.StudentRepo
	progress  repository.ProgressRepo
	textbooks repository.TextbookRepo
	presets   repository.PresetRepo
	uow       db.UnitOfWork
	observer  UseCaseObserver
}

func NewProgressService(
	students repository.StudentRepo,
	progressRepo repository.ProgressRepo,
	textbooks repository.TextbookRepo,
	presets repository.PresetRepo,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) ProgressService {
	return &progressService{
		students:  students,
		progress:  progressRepo,
		textbooks: textbooks,
		presets:   presets,
		uow:       uow,
		observer:  useCaseObserverOrNoop(observers),
	}
}

// progressItemFromUpdate applies the write rules:
//  1. Units are floored at 0 completed and 1 total.
//  2. An unplanned item is reset to 0/1 and never done.
//  3. An explicit done flag wins; otherwise done means completed >= total.
func progressItemFromUpdate(studentID int64, u app.ProgressUpdate) *domain.ProgressItem {
	p := &domain.ProgressItem{
		StudentID:      studentID,
		Subject:        strings.TrimSpace(u.Subject),
		Level:          domain.Level(strings.TrimSpace(string(u.Level))),
		ItemName:       strings.TrimSpace(u.ItemName),
		Duration:       u.Duration,
		IsPlanned:      u.IsPlanned,
		CompletedUnits: u.CompletedUnits,
		TotalUnits:     u.TotalUnits,
	}
	p.NormalizeUnits()

	if !p.IsPlanned {
		p.Unplan()
		return p
	}
	if u.IsDone != nil {
		p.IsDone = *u.IsDone
	} else {
		p.IsDone = p.CompletedUnits >= p.TotalUnits
	}
	return p
}

func (s *progressService) Upsert(ctx context.Context, viewer *domain.User, studentID int64, updates []app.ProgressUpdate) (written int, err error) {
	run := startUseCase(s.observer, "progress-upsert", map[string]any{
		"student_id": studentID,
		"batch_size": len(updates),
	})
	defer func() { run.finish(ctx, err) }()

	items := make([]*domain.ProgressItem, 0, len(updates))
	for i, u := range updates {
		if fields := validation.Struct(u); fields != nil {
			prefixed := make(map[string]string, len(fields))
			for k, v := range fields {
				prefixed[fmt.Sprintf("updates[%d].%s", i, k)] = v
			}
			return 0, &ValidationError{Fields: prefixed}
		}
		items = append(items, progressItemFromUpdate(studentID, u))
	}
	if _, err = loadAccessibleStudent(ctx, s.students, viewer, studentID); err != nil {
		return 0, err
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txProgress := repository.NewSQLiteProgressRepo(tx)
		for _, p := range items {
			if err := txProgress.Upsert(ctx, p); err != nil {
				return fmt.Errorf("writing %s/%s/%s: %w", p.Subject, p.Level, p.ItemName, err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(items), nil
}

func (s *progressService) Unplan(ctx context.Context, viewer *domain.User, studentID int64, subject string, level domain.Level, itemName string) error {
	if _, err := loadAccessibleStudent(ctx, s.students, viewer, studentID); err != nil {
		return err
	}
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txProgress := repository.NewSQLiteProgressRepo(tx)
		p, err := txProgress.Get(ctx, studentID, subject, level, itemName)
		if err != nil {
			return err
		}
		p.Unplan()
		p.Duration = nil
		return txProgress.Upsert(ctx, p)
	})
}

func (s *progressService) List(ctx context.Context, viewer *domain.User, studentID int64) ([]domain.ProgressItem, error) {
	if _, err := loadAccessibleStudent(ctx, s.students, viewer, studentID); err != nil {
		return nil, err
	}
	return s.progress.FetchProgress(ctx, studentID)
}

// ApplyPreset plans every book of the preset. Each book takes its first
// catalog level for the preset's subject. Books the student already has
// keep their units and override; books gone from the catalog are reported
// as missing.
func (s *progressService) ApplyPreset(ctx context.Context, viewer *domain.User, studentID, presetID int64) (res *app.PresetApplyResult, err error) {
	run := startUseCase(s.observer, "progress-apply-preset", map[string]any{
		"student_id": studentID,
		"preset_id":  presetID,
	})
	defer func() { run.finish(ctx, err) }()

	if _, err = loadAccessibleStudent(ctx, s.students, viewer, studentID); err != nil {
		return nil, err
	}
	preset, err := s.presets.GetByID(ctx, presetID)
	if err != nil {
		return nil, err
	}
	catalog, err := s.textbooks.List(ctx, repository.TextbookFilter{Subject: preset.Subject})
	if err != nil {
		return nil, fmt.Errorf("loading %s catalog: %w", preset.Subject, err)
	}
	levelOf := make(map[string]domain.Level, len(catalog))
	for _, b := range catalog {
		if _, ok := levelOf[b.Name]; !ok {
			levelOf[b.Name] = b.Level
		}
	}

	res = &app.PresetApplyResult{Preset: preset}
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txProgress := repository.NewSQLiteProgressRepo(tx)
		for _, name := range preset.Books {
			level, ok := levelOf[name]
			if !ok {
				res.Missing = append(res.Missing, name)
				continue
			}
			u := app.ProgressUpdate{Subject: preset.Subject, Level: level, ItemName: name, IsPlanned: true, TotalUnits: 1}
			existing, err := txProgress.Get(ctx, studentID, preset.Subject, level, name)
			switch {
			case err == nil:
				u.CompletedUnits, u.TotalUnits = existing.CompletedUnits, existing.TotalUnits
				u.IsDone = &existing.IsDone
			case !errors.Is(err, repository.ErrNotFound):
				return err
			}
			if err := txProgress.Upsert(ctx, progressItemFromUpdate(studentID, u)); err != nil {
				return fmt.Errorf("planning %s: %w", name, err)
			}
			res.Planned = append(res.Planned, app.PlannedBook{Level: level, Name: name, Added: existing == nil})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	run.set("planned", len(res.Planned))
	run.set("missing", len(res.Missing))
	return res, nil
}
