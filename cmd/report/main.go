// Package main prints the ten academy reports as console tables and can
// export them to an XLSX workbook.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"academy_backend/internals/configs"
	database "academy_backend/internals/databases"
	"academy_backend/internals/features/academy/reports/presenter"
	"academy_backend/internals/features/academy/reports/service"
)

func main() {
	filters := presenter.DefaultFilters()
	var xlsxPath string
	var noColor bool

	flag.StringVar(&filters.TopSubject, "top-subject", filters.TopSubject, "subject for the top student report")
	flag.StringVar(&filters.AverageSubject, "average-subject", filters.AverageSubject, "subject for the group averages report")
	flag.StringVar(&filters.CoursesTeacher, "courses-teacher", filters.CoursesTeacher, "teacher whose courses are listed")
	flag.StringVar(&filters.Group, "group", filters.Group, "group for the student and grade reports")
	flag.StringVar(&filters.GradesSubject, "grades-subject", filters.GradesSubject, "subject for the group grades report")
	flag.StringVar(&filters.AverageTeacher, "teacher", filters.AverageTeacher, "teacher for the average and student course reports")
	flag.StringVar(&filters.Student, "student", filters.Student, "student for the course reports")
	flag.StringVar(&xlsxPath, "xlsx", "", "also write the reports to this XLSX file")
	flag.BoolVar(&noColor, "no-color", false, "disable colored output")
	flag.Parse()

	configs.LoadEnv()
	cfg, err := configs.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, cfg, filters, xlsxPath, !noColor); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg configs.Config, filters presenter.Filters, xlsxPath string, color bool) error {
	db, err := database.Open(cfg)
	if err != nil {
		return err
	}
	database.TunePool(db, cfg.DBDriver)
	defer database.Close(db)

	sections, err := presenter.BuildSections(ctx, service.NewReportService(db), filters)
	if err != nil {
		return err
	}
	if err := presenter.WriteConsole(os.Stdout, sections, color); err != nil {
		return err
	}

	if xlsxPath != "" {
		if err := presenter.WriteXLSX(xlsxPath, sections); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Wrote %s\n", xlsxPath)
	}
	return nil
}
