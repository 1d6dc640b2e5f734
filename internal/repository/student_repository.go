package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/orbita/challenger-backend/internal/model"
)

// Sentinel errors surfaced to the service layer.
var (
	ErrNotFound     = errors.New("student not found")
	ErrDuplicateRA  = errors.New("student with this RA already exists")
	ErrDuplicateCPF = errors.New("student with this CPF already exists")
)

const studentColumns = `ra, name, email, cpf, created_at, updated_at, is_active`

// StudentRepository handles student data access.
type StudentRepository struct {
	pool *pgxpool.Pool
}

// NewStudentRepository creates a new StudentRepository.
func NewStudentRepository(pool *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{pool: pool}
}

// List retrieves all students in insertion order.
func (r *StudentRepository) List(ctx context.Context) ([]model.Student, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+studentColumns+` FROM students ORDER BY created_at, ra`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanStudents(rows)
}

// GetByRA retrieves a student by registration code.
// Returns ErrNotFound if no row matches.
func (r *StudentRepository) GetByRA(ctx context.Context, ra string) (*model.Student, error) {
	s := &model.Student{}
	err := r.pool.QueryRow(ctx,
		`SELECT `+studentColumns+` FROM students WHERE ra = $1`, ra,
	).Scan(&s.RA, &s.Name, &s.Email, &s.CPF, &s.CreatedAt, &s.UpdatedAt, &s.IsActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s, nil
}

// FindByName retrieves students whose name contains the fragment,
// case-insensitively.
func (r *StudentRepository) FindByName(ctx context.Context, fragment string) ([]model.Student, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+studentColumns+` FROM students
		 WHERE name ILIKE '%' || $1 || '%'
		 ORDER BY created_at, ra`, fragment)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanStudents(rows)
}

// Search retrieves students whose name (case-insensitive), RA, or CPF
// contains the term.
func (r *StudentRepository) Search(ctx context.Context, term string) ([]model.Student, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+studentColumns+` FROM students
		 WHERE name ILIKE '%' || $1 || '%'
		    OR ra LIKE '%' || $1 || '%'
		    OR cpf LIKE '%' || $1 || '%'
		 ORDER BY created_at, ra`, term)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanStudents(rows)
}

// ExistsByRA reports whether a student with the given RA exists.
func (r *StudentRepository) ExistsByRA(ctx context.Context, ra string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM students WHERE ra = $1)`, ra).Scan(&exists)
	return exists, err
}

// ExistsByCPF reports whether any student holds the given CPF. A
// non-empty excludeRA skips the student identified by it, which is
// what the edit path needs.
func (r *StudentRepository) ExistsByCPF(ctx context.Context, cpf, excludeRA string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM students WHERE cpf = $1 AND ($2 = '' OR ra <> $2))`,
		cpf, excludeRA).Scan(&exists)
	return exists, err
}

// Insert persists a new student. The database assigns created_at.
// Unique violations are mapped to ErrDuplicateRA / ErrDuplicateCPF so
// concurrent duplicate inserts fail even after the existence checks
// passed.
func (r *StudentRepository) Insert(ctx context.Context, s *model.Student) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO students (ra, name, email, cpf)
		 VALUES ($1, $2, $3, $4)
		 RETURNING created_at, is_active`,
		s.RA, s.Name, s.Email, s.CPF,
	).Scan(&s.CreatedAt, &s.IsActive)
	if err != nil {
		return mapUniqueViolation(err)
	}
	return nil
}

// Update overwrites name, email, and cpf of the student identified by
// RA and stamps updated_at. Returns ErrNotFound when no row matches.
func (r *StudentRepository) Update(ctx context.Context, s *model.Student) error {
	err := r.pool.QueryRow(ctx,
		`UPDATE students
		 SET name = $2, email = $3, cpf = $4, updated_at = now()
		 WHERE ra = $1
		 RETURNING created_at, updated_at, is_active`,
		s.RA, s.Name, s.Email, s.CPF,
	).Scan(&s.CreatedAt, &s.UpdatedAt, &s.IsActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return mapUniqueViolation(err)
	}
	return nil
}

// Delete physically removes the student identified by RA.
// Returns ErrNotFound when no row matches.
func (r *StudentRepository) Delete(ctx context.Context, ra string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM students WHERE ra = $1`, ra)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanStudents(rows pgx.Rows) ([]model.Student, error) {
	var students []model.Student
	for rows.Next() {
		var s model.Student
		if err := rows.Scan(&s.RA, &s.Name, &s.Email, &s.CPF, &s.CreatedAt, &s.UpdatedAt, &s.IsActive); err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	return students, rows.Err()
}

// mapUniqueViolation translates a 23505 into the sentinel matching the
// violated constraint.
func mapUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		if pgErr.ConstraintName == "students_cpf_key" {
			return ErrDuplicateCPF
		}
		return ErrDuplicateRA
	}
	return err
}
