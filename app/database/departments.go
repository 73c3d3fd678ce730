package database

import (
	"database/sql"
	"lecturer-portal/app/models"

	"github.com/lib/pq"
)

func GetAllDepartments(db *sql.DB) ([]*models.Department, error) {
	query := `SELECT d.id, d.name, d.subjects, d.created_at, d.updated_at,
			  COUNT(u.id) as lecturer_count
			  FROM departments d
			  LEFT JOIN users u ON u.department_id = d.id AND u.is_active = true
			  GROUP BY d.id, d.name, d.subjects, d.created_at, d.updated_at
			  ORDER BY d.name`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	departments := make([]*models.Department, 0)
	for rows.Next() {
		dept := &models.Department{}
		if err := rows.Scan(&dept.ID, &dept.Name, &dept.Subjects,
			&dept.CreatedAt, &dept.UpdatedAt, &dept.LecturerCount); err != nil {
			continue
		}
		departments = append(departments, dept)
	}
	return departments, nil
}

func GetDepartmentByID(db *sql.DB, departmentID string) (*models.Department, error) {
	dept := &models.Department{}
	query := `SELECT id, name, subjects, created_at, updated_at FROM departments WHERE id = $1`
	err := db.QueryRow(query, departmentID).Scan(
		&dept.ID, &dept.Name, &dept.Subjects, &dept.CreatedAt, &dept.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return dept, nil
}

func CreateDepartment(db *sql.DB, dept *models.Department) error {
	query := `INSERT INTO departments (name, subjects, created_at, updated_at)
			  VALUES ($1, $2, NOW(), NOW())
			  RETURNING id, created_at, updated_at`
	return db.QueryRow(query, dept.Name, pq.Array(dept.Subjects)).Scan(
		&dept.ID, &dept.CreatedAt, &dept.UpdatedAt,
	)
}

func UpdateDepartment(db *sql.DB, dept *models.Department) error {
	query := `UPDATE departments SET name = $1, subjects = $2, updated_at = NOW() WHERE id = $3`
	_, err := db.Exec(query, dept.Name, pq.Array(dept.Subjects), dept.ID)
	return err
}

// DeleteDepartment removes the record only. Lecturer accounts and application
// placements keep whatever department id they referenced.
func DeleteDepartment(db *sql.DB, departmentID string) error {
	query := `DELETE FROM departments WHERE id = $1`
	_, err := db.Exec(query, departmentID)
	return err
}
