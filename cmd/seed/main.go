// Package main seeds the academy database with fake groups, teachers,
// subjects, students and grades.
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
	"academy_backend/internals/seeds"
	"academy_backend/internals/seeds/academy"
)

func main() {
	opts := academy.DefaultOptions()
	migrate := true

	flag.Uint64Var(&opts.Seed, "seed", 0, "random seed for reproducibility (0 = random)")
	flag.BoolVar(&opts.Reset, "reset", false, "delete existing academy rows before seeding")
	flag.IntVar(&opts.Groups, "groups", opts.Groups, "number of groups")
	flag.IntVar(&opts.Teachers, "teachers", opts.Teachers, "number of teachers")
	flag.IntVar(&opts.Subjects, "subjects", opts.Subjects, "number of subjects")
	flag.IntVar(&opts.Students, "students", opts.Students, "number of students")
	flag.IntVar(&opts.GradesPerSubject, "grades", opts.GradesPerSubject, "grades per student per subject")
	flag.BoolVar(&migrate, "migrate", migrate, "create or update tables first")
	flag.Parse()

	configs.LoadEnv()
	cfg, err := configs.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	if err := run(ctx, cfg, opts, migrate); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg configs.Config, opts academy.Options, migrate bool) error {
	db, err := database.Open(cfg)
	if err != nil {
		return err
	}
	database.TunePool(db, cfg.DBDriver)
	defer database.Close(db)

	if migrate {
		if err := database.Migrate(db); err != nil {
			return err
		}
	}

	sum, err := seeds.RunAllSeeds(ctx, db, opts)
	if err != nil {
		return err
	}
	fmt.Printf("Seeded %d grades (seed %d)\n", sum.Grades, sum.Seed)
	return nil
}
