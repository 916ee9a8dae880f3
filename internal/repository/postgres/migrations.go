package postgres

import (
	"fmt"

	"runGuard/domain"

	"github.com/go-gormigrate/gormigrate/v2"
	"gorm.io/gorm"
)

func migrations() []*gormigrate.Migration {
	return []*gormigrate.Migration{
		{
			ID: "001_routes",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&domain.Route{})
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable("routes")
			},
		},
		{
			ID: "002_user_preferences_and_history",
			Migrate: func(tx *gorm.DB) error {
				if err := tx.AutoMigrate(&domain.UserPreferenceProfile{}); err != nil {
					return err
				}
				return tx.AutoMigrate(&domain.HistoryRecord{})
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable("run_history", "user_preferences")
			},
		},
		{
			ID: "003_route_feedback",
			Migrate: func(tx *gorm.DB) error {
				return tx.AutoMigrate(&domain.RouteFeedback{})
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Migrator().DropTable("route_feedback")
			},
		},
		{
			ID: "004_learned_preference_bounds",
			Migrate: func(tx *gorm.DB) error {
				stmts := []string{
					`UPDATE user_preferences SET preferred_difficulty = 5 WHERE preferred_difficulty NOT BETWEEN 1 AND 10`,
					`UPDATE user_preferences SET safety_priority = 5 WHERE safety_priority NOT BETWEEN 1 AND 10`,
					`UPDATE user_preferences SET scenery_priority = 5 WHERE scenery_priority NOT BETWEEN 1 AND 10`,
					`ALTER TABLE user_preferences ADD CONSTRAINT chk_learned_bounds CHECK (
						preferred_difficulty BETWEEN 1 AND 10 AND
						safety_priority BETWEEN 1 AND 10 AND
						scenery_priority BETWEEN 1 AND 10)`,
				}
				for _, s := range stmts {
					if err := tx.Exec(s).Error; err != nil {
						return err
					}
				}
				return nil
			},
			Rollback: func(tx *gorm.DB) error {
				return tx.Exec(`ALTER TABLE user_preferences DROP CONSTRAINT IF EXISTS chk_learned_bounds`).Error
			},
		},
	}
}

// RunMigrations applies every pending migration.
func RunMigrations(db *gorm.DB) error {
	m := gormigrate.New(db, gormigrate.DefaultOptions, migrations())
	if err := m.Migrate(); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	return nil
}

// RollbackLast reverts the most recently applied migration.
func RollbackLast(db *gorm.DB) error {
	m := gormigrate.New(db, gormigrate.DefaultOptions, migrations())
	if err := m.RollbackLast(); err != nil {
		return fmt.Errorf("rollback migration: %w", err)
	}
	return nil
}
