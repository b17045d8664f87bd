package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/iyforlando/academy-api/internal/database"
	"github.com/iyforlando/academy-api/internal/models"
)

type StudentService struct {
	db *database.DB
}

func NewStudentService(db *database.DB) *StudentService {
	return &StudentService{db: db}
}

func (s *StudentService) Create(ctx context.Context, firstName, lastName string, email, phone *string, birthDate *time.Time) (*models.Student, error) {
	var student models.Student
	err := s.db.Pool.QueryRow(ctx, `
		INSERT INTO students (first_name, last_name, email, phone, birth_date)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, first_name, last_name, email, phone, birth_date, created_at, updated_at
	`, firstName, lastName, email, phone, birthDate).Scan(
		&student.ID, &student.FirstName, &student.LastName,
		&student.Email, &student.Phone, &student.BirthDate,
		&student.CreatedAt, &student.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create student: %w", err)
	}
	return &student, nil
}

func (s *StudentService) GetByID(ctx context.Context, id uuid.UUID) (*models.Student, error) {
	var student models.Student
	err := s.db.Pool.QueryRow(ctx, `
		SELECT id, first_name, last_name, email, phone, birth_date, created_at, updated_at
		FROM students WHERE id = $1
	`, id).Scan(
		&student.ID, &student.FirstName, &student.LastName,
		&student.Email, &student.Phone, &student.BirthDate,
		&student.CreatedAt, &student.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &student, nil
}

func (s *StudentService) List(ctx context.Context) ([]models.Student, error) {
	rows, err := s.db.Pool.Query(ctx, `
		SELECT id, first_name, last_name, email, phone, birth_date, created_at, updated_at
		FROM students
		ORDER BY last_name, first_name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []models.Student
	for rows.Next() {
		var student models.Student
		if err := rows.Scan(
			&student.ID, &student.FirstName, &student.LastName,
			&student.Email, &student.Phone, &student.BirthDate,
			&student.CreatedAt, &student.UpdatedAt,
		); err != nil {
			return nil, err
		}
		students = append(students, student)
	}
	return students, rows.Err()
}

func (s *StudentService) Update(ctx context.Context, id uuid.UUID, firstName, lastName string, email, phone *string) (*models.Student, error) {
	var student models.Student
	err := s.db.Pool.QueryRow(ctx, `
		UPDATE students SET first_name = $1, last_name = $2, email = $3, phone = $4, updated_at = NOW()
		WHERE id = $5
		RETURNING id, first_name, last_name, email, phone, birth_date, created_at, updated_at
	`, firstName, lastName, email, phone, id).Scan(
		&student.ID, &student.FirstName, &student.LastName,
		&student.Email, &student.Phone, &student.BirthDate,
		&student.CreatedAt, &student.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &student, nil
}

func (s *StudentService) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := s.db.Pool.Exec(ctx, `DELETE FROM students WHERE id = $1`, id)
	return err
}
