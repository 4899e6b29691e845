package service

import (
	"context"
	"sort"

	"github.com/alexanderramin/juku/internal/app"
	"github.com/alexanderramin/juku/internal/domain"
	"github.com/alexanderramin/juku/internal/progress"
	"github.com/alexanderramin/juku/internal/repository"
)

type textbookService struct {
	textbooks repository.TextbookRepo
	order     progress.SubjectOrder
}

func NewTextbookService(textbooks repository.TextbookRepo, order progress.SubjectOrder) TextbookService {
	return &textbookService{textbooks: textbooks, order: order}
}

func (s *textbookService) Create(ctx context.Context, in app.TextbookInput) (*domain.MasterTextbook, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	b := in.Textbook()
	if err := s.textbooks.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *textbookService) List(ctx context.Context, f repository.TextbookFilter) ([]*domain.MasterTextbook, error) {
	return s.textbooks.List(ctx, f)
}

// ListGrouped returns the catalog grouped by subject, then level. Known
// levels come first in level order; unknown levels follow lexically.
func (s *textbookService) ListGrouped(ctx context.Context, f repository.TextbookFilter) ([]app.SubjectCatalog, error) {
	books, err := s.textbooks.List(ctx, f)
	if err != nil {
		return nil, err
	}

	bySubject := make(map[string]map[domain.Level][]*domain.MasterTextbook)
	var subjects []string
	for _, b := range books {
		levels, ok := bySubject[b.Subject]
		if !ok {
			levels = make(map[domain.Level][]*domain.MasterTextbook)
			bySubject[b.Subject] = levels
			subjects = append(subjects, b.Subject)
		}
		levels[b.Level] = append(levels[b.Level], b)
	}
	s.order.Sort(subjects)

	out := make([]app.SubjectCatalog, 0, len(subjects))
	for _, subject := range subjects {
		levels := make([]domain.Level, 0, len(bySubject[subject]))
		for l := range bySubject[subject] {
			levels = append(levels, l)
		}
		sort.Slice(levels, func(i, j int) bool {
			ri, rj := domain.LevelRank(levels[i]), domain.LevelRank(levels[j])
			if ri != rj {
				return ri < rj
			}
			return levels[i] < levels[j]
		})

		cat := app.SubjectCatalog{Subject: subject}
		for _, l := range levels {
			cat.Levels = append(cat.Levels, app.LevelGroup{Level: l, Books: bySubject[subject][l]})
		}
		out = append(out, cat)
	}
	return out, nil
}

func (s *textbookService) Update(ctx context.Context, id int64, in app.TextbookInput) (*domain.MasterTextbook, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}
	if _, err := s.textbooks.GetByID(ctx, id); err != nil {
		return nil, err
	}
	b := in.Textbook()
	b.ID = id
	if err := s.textbooks.Update(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *textbookService) Delete(ctx context.Context, id int64) error {
	return s.textbooks.Delete(ctx, id)
}
