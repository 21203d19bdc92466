package database

import (
	"context"
	"database/sql"
)

// User identities live with the external identity provider, so user_id
// columns are plain CHAR(36) UUIDs with no foreign key to enforce.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS exercises (
		id          INT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		name        VARCHAR(255) NOT NULL,
		description VARCHAR(255) NULL,
		type        ENUM('biceps','triceps','chest','back','legs','shoulders') NOT NULL,
		UNIQUE KEY uq_exercises_name (name),
		INDEX idx_exercises_type (type)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS presets (
		id          BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		user_id     CHAR(36) NOT NULL,
		name        VARCHAR(255) NOT NULL,
		description VARCHAR(255) NULL,
		created_at  TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at  TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		INDEX idx_presets_user (user_id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS preset_exercises (
		id          BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		preset_id   BIGINT UNSIGNED NOT NULL,
		exercise_id INT UNSIGNED NOT NULL,
		CONSTRAINT fk_pe_preset   FOREIGN KEY (preset_id)   REFERENCES presets (id),
		CONSTRAINT fk_pe_exercise FOREIGN KEY (exercise_id) REFERENCES exercises (id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS workouts (
		id           BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		user_id      CHAR(36) NOT NULL,
		workout_date DATE NOT NULL,
		created_at   TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		preset_id    BIGINT UNSIGNED NULL,
		CONSTRAINT fk_workouts_preset FOREIGN KEY (preset_id) REFERENCES presets (id),
		INDEX idx_workouts_user_date (user_id, workout_date)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,

	`CREATE TABLE IF NOT EXISTS workout_logs (
		id          BIGINT UNSIGNED AUTO_INCREMENT PRIMARY KEY,
		user_id     CHAR(36) NOT NULL,
		exercise_id INT UNSIGNED NOT NULL,
		logged_at   TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		weight      INT NULL,
		reps        INT NULL,
		sets        INT NULL,
		notes       VARCHAR(255) NULL,
		CONSTRAINT fk_logs_exercise FOREIGN KEY (exercise_id) REFERENCES exercises (id),
		INDEX idx_logs_user_exercise (user_id, exercise_id, logged_at)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
}

// Migrate creates the schema when it does not exist yet. Call once at startup.
func Migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
