package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/juku/internal/cli"
	"github.com/alexanderramin/juku/internal/config"
	"github.com/alexanderramin/juku/internal/db"
	"github.com/alexanderramin/juku/internal/repository"
	"github.com/alexanderramin/juku/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Settings: defaults < juku.yaml < .env < JUKU_* environment.
	cfg, err := config.Load(config.Options{ConfigFile: os.Getenv("JUKU_CONFIG")})
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	logger := cfg.NewLogger(os.Stderr)

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	userRepo := repository.NewSQLiteUserRepo(database)
	studentRepo := repository.NewSQLiteStudentRepo(database)
	textbookRepo := repository.NewSQLiteTextbookRepo(database)
	progressRepo := repository.NewSQLiteProgressRepo(database)
	applicationRepo := repository.NewSQLiteApplicationRepo(database, logger)
	pastExamRepo := repository.NewSQLitePastExamRepo(database, logger)
	homeworkRepo := repository.NewSQLiteHomeworkRepo(database, logger)
	mockExamRepo := repository.NewSQLiteMockExamRepo(database, logger)
	eikenRepo := repository.NewSQLiteEikenRepo(database, logger)
	presetRepo := repository.NewSQLitePresetRepo(database)

	uow := db.NewSQLiteUnitOfWork(database)

	var observers []service.UseCaseObserver
	if cfg.LogUseCases {
		observers = append(observers, service.NewLogUseCaseObserver(logger))
	}

	table := cfg.DeviationTable()
	order := cfg.Subjects()

	app := &cli.App{
		Dashboard:    service.NewDashboardService(studentRepo, progressRepo, pastExamRepo, table, order, observers...),
		Calendar:     service.NewCalendarService(studentRepo, applicationRepo, observers...),
		Progress:     service.NewProgressService(studentRepo, progressRepo, textbookRepo, presetRepo, uow, observers...),
		Students:     service.NewStudentService(studentRepo, userRepo),
		Users:        service.NewUserService(userRepo),
		Textbooks:    service.NewTextbookService(textbookRepo, order),
		Applications: service.NewApplicationService(studentRepo, applicationRepo),
		PastExams:    service.NewPastExamService(studentRepo, pastExamRepo),
		Homework:     service.NewHomeworkService(studentRepo, textbookRepo, homeworkRepo, uow, observers...),
		MockExams:    service.NewMockExamService(studentRepo, mockExamRepo, uow),
		Eiken:        service.NewEikenService(studentRepo, eikenRepo),
		Presets:      service.NewPresetService(presetRepo, textbookRepo, uow),
		Statistics:   service.NewStatisticsService(progressRepo, textbookRepo, order),
		Import:       service.NewImportService(uow, observers...),
		Username:     cfg.User,
	}

	// Prompts and the month browser only run on a terminal.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
