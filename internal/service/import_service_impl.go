package service

import (
	"context"

	"github.com/alexanderramin/juku/internal/app"
	"github.com/alexanderramin/juku/internal/db"
	"github.com/alexanderramin/juku/internal/importer"
	"github.com/alexanderramin/juku/internal/repository"
)

type importService struct {
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewImportService(uow db.UnitOfWork, observers ...UseCaseObserver) ImportService {
	return &importService{uow: uow, observer: useCaseObserverOrNoop(observers)}
}

// ImportTextbooks reads a catalog file and upserts every accepted row in
// one transaction. Existing books keep their id and get the new duration.
func (s *importService) ImportTextbooks(ctx context.Context, path, sheet string) (result *app.ImportResult, err error) {
	run := startUseCase(s.observer, "import-textbooks", map[string]any{"path": path})
	defer func() { run.finish(ctx, err) }()

	parsed, err := importer.ReadTextbookFile(path, sheet)
	if err != nil {
		return nil, err
	}

	result = &app.ImportResult{
		TotalProcessed: len(parsed.Rows) + len(parsed.Skipped),
		Skipped:        parsed.Skipped,
		Warnings:       parsed.Warnings,
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txTextbooks := repository.NewSQLiteTextbookRepo(tx)
		for _, row := range parsed.Rows {
			created, err := txTextbooks.Upsert(ctx, row.Textbook())
			if err != nil {
				return err
			}
			if created {
				result.Created++
			} else {
				result.Updated++
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	run.set("created", result.Created)
	run.set("updated", result.Updated)
	run.set("skipped", len(result.Skipped))
	return result, nil
}
