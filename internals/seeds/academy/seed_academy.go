package academy

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"academy_backend/internals/features/academy/main/model"
)

var ErrNotEmpty = errors.New("academy tables already contain data (use reset)")

// Options controls the size and randomness of a seed run.
type Options struct {
	Seed             uint64 // 0 picks one from the clock; it is reported in Summary
	Groups           int
	Teachers         int
	Subjects         int
	Students         int
	GradesPerSubject int
	MinGrade         float64
	MaxGrade         float64 // exclusive
	MaxAgeDays       int     // grades are dated 1..MaxAgeDays days before Now
	BatchSize        int
	Reset            bool
	Now              func() time.Time
}

func DefaultOptions() Options {
	return Options{
		Groups:           3,
		Teachers:         5,
		Subjects:         8,
		Students:         50,
		GradesPerSubject: 20,
		MinGrade:         60,
		MaxGrade:         100,
		MaxAgeDays:       100,
		BatchSize:        500,
		Now:              time.Now,
	}
}

type Summary struct {
	Seed     uint64
	Groups   int
	Teachers int
	Subjects int
	Students int
	Grades   int
}

func (o Options) validate() error {
	switch {
	case o.Groups < 1, o.Teachers < 1:
		return errors.New("need at least one group and one teacher")
	case o.Subjects < 0, o.Students < 0, o.GradesPerSubject < 0:
		return errors.New("counts must not be negative")
	case o.MaxGrade <= o.MinGrade:
		return fmt.Errorf("grade range [%v,%v) is empty", o.MinGrade, o.MaxGrade)
	case o.MaxAgeDays < 1:
		return errors.New("max age must be at least one day")
	}
	return nil
}

// Seed fills the academy tables with fake data in a single transaction.
// A non-empty database is refused with ErrNotEmpty unless opts.Reset is set.
func Seed(ctx context.Context, db *gorm.DB, opts Options) (Summary, error) {
	if err := opts.validate(); err != nil {
		return Summary{}, err
	}
	if opts.BatchSize <= 0 {
		opts.BatchSize = 500
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Seed == 0 {
		opts.Seed = uint64(time.Now().UnixNano())
		log.Printf("🎲 Using seed: %d", opts.Seed)
	}

	fake := gofakeit.New(opts.Seed)
	sum := Summary{Seed: opts.Seed}

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if opts.Reset {
			if err := truncate(tx); err != nil {
				return err
			}
		} else {
			empty, err := isEmpty(tx)
			if err != nil {
				return err
			}
			if !empty {
				return ErrNotEmpty
			}
		}

		groups := make([]model.GroupModel, opts.Groups)
		for i := range groups {
			groups[i].Name = fmt.Sprintf("Group %d", i+1)
		}
		if err := tx.Create(&groups).Error; err != nil {
			return fmt.Errorf("create groups: %w", err)
		}

		teachers := make([]model.TeacherModel, opts.Teachers)
		for i := range teachers {
			teachers[i].Name = fake.Name()
		}
		if err := tx.Create(&teachers).Error; err != nil {
			return fmt.Errorf("create teachers: %w", err)
		}

		subjects := make([]model.SubjectModel, opts.Subjects)
		for i := range subjects {
			subjects[i].Name = fake.Word()
			subjects[i].TeacherID = teachers[fake.IntN(len(teachers))].ID
		}
		if len(subjects) > 0 {
			if err := tx.Create(&subjects).Error; err != nil {
				return fmt.Errorf("create subjects: %w", err)
			}
		}

		students := make([]model.StudentModel, opts.Students)
		emails := make(map[string]struct{}, opts.Students)
		for i := range students {
			email := uniqueEmail(fake, emails)
			students[i].Name = fake.Name()
			students[i].Email = &email
			students[i].GroupID = groups[fake.IntN(len(groups))].ID
		}
		if len(students) > 0 {
			if err := tx.CreateInBatches(&students, opts.BatchSize).Error; err != nil {
				return fmt.Errorf("create students: %w", err)
			}
		}

		today := opts.Now()
		grades := make([]model.GradeModel, 0, len(students)*len(subjects)*opts.GradesPerSubject)
		for _, st := range students {
			for _, sub := range subjects {
				for range opts.GradesPerSubject {
					daysAgo := fake.IntRange(1, opts.MaxAgeDays)
					grades = append(grades, model.GradeModel{
						StudentID:    st.ID,
						SubjectID:    sub.ID,
						Grade:        fake.Float64Range(opts.MinGrade, opts.MaxGrade),
						DateReceived: datatypes.Date(today.AddDate(0, 0, -daysAgo)),
					})
				}
			}
		}
		if len(grades) > 0 {
			if err := tx.CreateInBatches(&grades, opts.BatchSize).Error; err != nil {
				return fmt.Errorf("create grades: %w", err)
			}
		}

		sum.Groups = len(groups)
		sum.Teachers = len(teachers)
		sum.Subjects = len(subjects)
		sum.Students = len(students)
		sum.Grades = len(grades)
		return nil
	})
	if err != nil {
		return Summary{}, err
	}
	return sum, nil
}

func uniqueEmail(fake *gofakeit.Faker, seen map[string]struct{}) string {
	for {
		email := fake.Email()
		if _, dup := seen[email]; dup {
			// keep the fake address shape but force uniqueness
			email = fmt.Sprintf("%d.%s", len(seen)+1, email)
			if _, dup := seen[email]; dup {
				continue
			}
		}
		seen[email] = struct{}{}
		return email
	}
}

func isEmpty(tx *gorm.DB) (bool, error) {
	for _, m := range model.All() {
		var n int64
		if err := tx.Model(m).Limit(1).Count(&n).Error; err != nil {
			return false, fmt.Errorf("count %T: %w", m, err)
		}
		if n > 0 {
			return false, nil
		}
	}
	return true, nil
}

// truncate deletes every row, children first.
func truncate(tx *gorm.DB) error {
	all := model.All()
	for i := len(all) - 1; i >= 0; i-- {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(all[i]).Error; err != nil {
			return fmt.Errorf("reset %T: %w", all[i], err)
		}
	}
	return nil
}
