package setup

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/jcleow/birding-express-swe1/internal/domain"
)

// behaviourVocabulary is the fixed catalog the sighting form exposes as
// checkboxes. Seeded once; ids are stable because the table is append-only.
var behaviourVocabulary = []string{
	"walking",
	"flying",
	"swimming",
	"preening",
	"feeding",
	"singing",
	"roosting",
	"nesting",
}

// MigrateDB migrates the full schema and seeds the behaviour vocabulary
// when it is empty.
func MigrateDB(db *gorm.DB) error {
	if db == nil {
		return fmt.Errorf("cannot migrate database with nil DB connection")
	}

	err := db.AutoMigrate(
		&domain.User{},
		&domain.Note{},
		&domain.Behaviour{},
		&domain.NoteBehaviour{},
		&domain.Comment{},
		&domain.Species{},
	)
	if err != nil {
		return fmt.Errorf("failed to auto-migrate tables: %w", err)
	}

	if err := seedBehaviours(db); err != nil {
		return fmt.Errorf("failed to seed behaviours: %w", err)
	}

	logrus.Info("Database migration completed successfully")
	return nil
}

func seedBehaviours(db *gorm.DB) error {
	var count int64
	if err := db.Model(&domain.Behaviour{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	behaviours := make([]domain.Behaviour, 0, len(behaviourVocabulary))
	for _, name := range behaviourVocabulary {
		behaviours = append(behaviours, domain.Behaviour{Name: name})
	}
	if err := db.Create(&behaviours).Error; err != nil {
		return err
	}
	logrus.Infof("Seeded %d behaviour vocabulary entries", len(behaviours))
	return nil
}
