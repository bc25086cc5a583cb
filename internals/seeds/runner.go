package seeds

import (
	"context"
	"log"

	"gorm.io/gorm"

	"academy_backend/internals/seeds/academy"
)

func RunAllSeeds(ctx context.Context, db *gorm.DB, opts academy.Options) (academy.Summary, error) {
	//* Academy
	sum, err := academy.Seed(ctx, db, opts)
	if err != nil {
		log.Printf("❌ Gagal seed academy: %v", err)
		return sum, err
	}
	log.Printf("✅ Seed academy selesai (seed=%d): %d groups, %d teachers, %d subjects, %d students, %d grades",
		sum.Seed, sum.Groups, sum.Teachers, sum.Subjects, sum.Students, sum.Grades)
	return sum, nil
}
