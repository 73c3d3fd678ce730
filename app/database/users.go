package database

import (
	"database/sql"
	"lecturer-portal/app/models"

	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"
)

// hashPassword hashes a password using bcrypt
func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	return string(bytes), err
}

// IsUniqueViolation reports whether err is a Postgres unique-constraint
// violation, e.g. an already taken email.
func IsUniqueViolation(err error) bool {
	pqErr, ok := err.(*pq.Error)
	return ok && pqErr.Code == "23505"
}

func GetUserByEmail(db *sql.DB, email string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, name, email, password, role, department_id, subjects, hourly_rate, is_active, created_at, updated_at
			  FROM users WHERE email = $1 AND is_active = true`

	err := db.QueryRow(query, email).Scan(
		&user.ID, &user.Name, &user.Email, &user.Password, &user.Role,
		&user.DepartmentID, &user.Subjects, &user.HourlyRate,
		&user.IsActive, &user.CreatedAt, &user.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}
	return user, nil
}

func GetUserByID(db *sql.DB, userID string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, name, email, password, role, department_id, subjects, hourly_rate, is_active, created_at, updated_at
			  FROM users WHERE id = $1 AND is_active = true`

	err := db.QueryRow(query, userID).Scan(
		&user.ID, &user.Name, &user.Email, &user.Password, &user.Role,
		&user.DepartmentID, &user.Subjects, &user.HourlyRate,
		&user.IsActive, &user.CreatedAt, &user.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}
	return user, nil
}

// CreateUser provisions a login credential and the user record in one insert.
// The plain-text password on the model is replaced by its hash before storage.
func CreateUser(db *sql.DB, user *models.User) error {
	hashedPassword, err := hashPassword(user.Password)
	if err != nil {
		return err
	}

	query := `INSERT INTO users (name, email, password, role, department_id, subjects, hourly_rate, is_active, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, true, NOW(), NOW())
			  RETURNING id, created_at, updated_at`

	err = db.QueryRow(query, user.Name, user.Email, hashedPassword, user.Role,
		user.DepartmentID, pq.Array(user.Subjects), user.HourlyRate).Scan(
		&user.ID, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return err
	}

	user.Password = ""
	user.IsActive = true
	return nil
}

func UpdateUser(db *sql.DB, user *models.User) error {
	query := `UPDATE users SET name = $1, email = $2, role = $3, department_id = $4,
			  subjects = $5, hourly_rate = $6, updated_at = NOW()
			  WHERE id = $7`
	_, err := db.Exec(query, user.Name, user.Email, user.Role, user.DepartmentID,
		pq.Array(user.Subjects), user.HourlyRate, user.ID)
	return err
}

func UpdateUserPassword(db *sql.DB, userID string, hashedPassword string) error {
	query := `UPDATE users SET password = $1, updated_at = NOW() WHERE id = $2`
	_, err := db.Exec(query, hashedPassword, userID)
	return err
}

func UpdateUserEmail(db *sql.DB, userID string, email string) error {
	query := `UPDATE users SET email = $1, updated_at = NOW() WHERE id = $2`
	_, err := db.Exec(query, email, userID)
	return err
}

// DeleteUser removes only the portal record; any externally issued credential
// for the same email is left untouched.
func DeleteUser(db *sql.DB, userID string) error {
	query := `DELETE FROM users WHERE id = $1`
	_, err := db.Exec(query, userID)
	return err
}

// GetAllLecturers lists active lecturer accounts with their department names.
func GetAllLecturers(db *sql.DB) ([]*models.User, error) {
	query := `SELECT u.id, u.name, u.email, u.role, u.department_id, u.subjects, u.hourly_rate,
			  u.is_active, u.created_at, u.updated_at, d.name
			  FROM users u
			  LEFT JOIN departments d ON u.department_id = d.id
			  WHERE u.role = $1 AND u.is_active = true
			  ORDER BY u.name`

	rows, err := db.Query(query, models.RoleUser)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lecturers := make([]*models.User, 0)
	for rows.Next() {
		lecturer := &models.User{}
		err := rows.Scan(
			&lecturer.ID, &lecturer.Name, &lecturer.Email, &lecturer.Role,
			&lecturer.DepartmentID, &lecturer.Subjects, &lecturer.HourlyRate,
			&lecturer.IsActive, &lecturer.CreatedAt, &lecturer.UpdatedAt,
			&lecturer.DepartmentName,
		)
		if err != nil {
			continue
		}
		lecturers = append(lecturers, lecturer)
	}
	return lecturers, nil
}

// GetAdminEmails returns notification addresses for every active admin.
func GetAdminEmails(db *sql.DB) ([]string, error) {
	rows, err := db.Query(`SELECT email FROM users WHERE role = $1 AND is_active = true`, models.RoleAdmin)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var emails []string
	for rows.Next() {
		var email string
		if err := rows.Scan(&email); err == nil {
			emails = append(emails, email)
		}
	}
	return emails, nil
}
