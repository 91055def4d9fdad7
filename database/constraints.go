package database

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/long-kr/Project-Restaurant-Reservation/models"
	"github.com/long-kr/Project-Restaurant-Reservation/utils"
)

type namedConstraint struct {
	model interface{}
	name  string
}

var checkConstraints = []namedConstraint{
	{&models.Reservation{}, "chk_reservations_people"},
	{&models.Table{}, "chk_tables_capacity"},
	{&models.Table{}, "fk_tables_reservation"},
}

// EnsureConstraints adds the CHECK and foreign key constraints declared on the
// models to relations created before they existed. AutoMigrate only emits
// them when it creates a table. SQLite cannot alter constraints and is skipped.
func EnsureConstraints(db *gorm.DB) error {
	if db.Dialector.Name() == "sqlite" {
		return nil
	}

	m := db.Migrator()
	for _, c := range checkConstraints {
		if m.HasConstraint(c.model, c.name) {
			continue
		}
		if err := m.CreateConstraint(c.model, c.name); err != nil {
			return fmt.Errorf("create constraint %s: %w", c.name, err)
		}
		utils.InfoLogger.Printf("Constraint %s created", c.name)
	}
	return nil
}
