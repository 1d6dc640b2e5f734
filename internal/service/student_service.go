package service

import (
	"context"
	"errors"

	"github.com/orbita/challenger-backend/internal/cpf"
	"github.com/orbita/challenger-backend/internal/model"
	"github.com/orbita/challenger-backend/internal/repository"
	"github.com/orbita/challenger-backend/internal/response"
	"github.com/rs/zerolog"
)

// StudentStore is the data access surface StudentService depends on.
// Implemented by repository.StudentRepository; methods return the
// repository sentinel errors for not-found and duplicate rows.
type StudentStore interface {
	List(ctx context.Context) ([]model.Student, error)
	GetByRA(ctx context.Context, ra string) (*model.Student, error)
	FindByName(ctx context.Context, fragment string) ([]model.Student, error)
	Search(ctx context.Context, term string) ([]model.Student, error)
	ExistsByRA(ctx context.Context, ra string) (bool, error)
	ExistsByCPF(ctx context.Context, cpf, excludeRA string) (bool, error)
	Insert(ctx context.Context, s *model.Student) error
	Update(ctx context.Context, s *model.Student) error
	Delete(ctx context.Context, ra string) error
}

// Business-rule messages. These are part of the client contract.
const (
	msgDuplicateRA  = "A student with this RA already exists."
	msgInvalidCPF   = "Invalid CPF"
	msgDuplicateCPF = "A student with this CPF already exists."
	msgCPFOtherRA   = "A student with this CPF and another RA already exists."
	msgNotFound     = "Student not found"
)

// StudentService implements every read and write against the student
// collection. Each operation returns a response.Envelope; unexpected
// storage failures are logged in full and collapsed into a generic
// failure message so raw error text never reaches clients.
type StudentService struct {
	store StudentStore
	log   zerolog.Logger
}

// NewStudentService creates a new StudentService.
func NewStudentService(store StudentStore, log zerolog.Logger) *StudentService {
	return &StudentService{store: store, log: log}
}

// ListAll retrieves every student.
func (s *StudentService) ListAll(ctx context.Context) response.Envelope {
	students, err := s.store.List(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("list students")
		return response.Fail("Error retrieving students")
	}
	if students == nil {
		students = []model.Student{}
	}
	return response.Ok("Students retrieved successfully", students)
}

// GetByRA retrieves a single student by registration code. The
// envelope is successful whether or not a match exists; the message
// distinguishes the two cases and data is nil when absent.
func (s *StudentService) GetByRA(ctx context.Context, ra string) response.Envelope {
	student, err := s.store.GetByRA(ctx, ra)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return response.Ok("No student found.", nil)
		}
		s.log.Error().Err(err).Str("ra", ra).Msg("get student by RA")
		return response.Fail("Error fetching student.")
	}
	return response.Ok("Student found.", student)
}

// FindByName retrieves students whose name contains the fragment,
// case-insensitively. Zero matches yield a failed envelope.
func (s *StudentService) FindByName(ctx context.Context, fragment string) response.Envelope {
	students, err := s.store.FindByName(ctx, fragment)
	if err != nil {
		s.log.Error().Err(err).Msg("find students by name")
		return response.Fail("Error retrieving students by name.")
	}
	if len(students) == 0 {
		return response.Fail("No students found with that name.")
	}
	return response.Ok("Students retrieved successfully", students)
}

// Search retrieves students whose name, RA, or CPF contains the term.
// Success reflects whether at least one student matched.
func (s *StudentService) Search(ctx context.Context, term string) response.Envelope {
	students, err := s.store.Search(ctx, term)
	if err != nil {
		s.log.Error().Err(err).Msg("search students")
		return response.Fail("Error fetching students.")
	}
	if len(students) == 0 {
		return response.Fail("No students found.")
	}
	return response.Ok("Students found.", students)
}

// Add creates a new student. Check order is part of the contract:
// RA uniqueness, then CPF checksum, then CPF uniqueness, then the
// insert. The unique constraints backstop the check-then-write race;
// a constraint violation surfaces the same duplicate message.
func (s *StudentService) Add(ctx context.Context, req model.StudentRequest) response.Envelope {
	exists, err := s.store.ExistsByRA(ctx, req.RA)
	if err != nil {
		s.log.Error().Err(err).Str("ra", req.RA).Msg("add student: RA check")
		return response.Fail("Error adding student")
	}
	if exists {
		return response.Fail(msgDuplicateRA)
	}

	if !cpf.IsValid(req.CPF) {
		return response.Fail(msgInvalidCPF)
	}
	normalized := cpf.Normalize(req.CPF)

	exists, err = s.store.ExistsByCPF(ctx, normalized, "")
	if err != nil {
		s.log.Error().Err(err).Msg("add student: CPF check")
		return response.Fail("Error adding student")
	}
	if exists {
		return response.Fail(msgDuplicateCPF)
	}

	student := &model.Student{
		RA:    req.RA,
		Name:  req.Name,
		Email: req.Email,
		CPF:   normalized,
	}
	if err := s.store.Insert(ctx, student); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateRA):
			return response.Fail(msgDuplicateRA)
		case errors.Is(err, repository.ErrDuplicateCPF):
			return response.Fail(msgDuplicateCPF)
		}
		s.log.Error().Err(err).Str("ra", req.RA).Msg("add student: insert")
		return response.Fail("Error adding student")
	}

	return response.Ok("Student created successfully", true)
}

// Edit overwrites name, email, and CPF of an existing student. Check
// order is part of the contract: CPF checksum, then CPF uniqueness
// against other records, then the existence lookup, then the update.
// RA and created_at are immutable.
func (s *StudentService) Edit(ctx context.Context, req model.StudentRequest) response.Envelope {
	if !cpf.IsValid(req.CPF) {
		return response.Fail(msgInvalidCPF)
	}
	normalized := cpf.Normalize(req.CPF)

	exists, err := s.store.ExistsByCPF(ctx, normalized, req.RA)
	if err != nil {
		s.log.Error().Err(err).Msg("edit student: CPF check")
		return response.Fail("Error updating student")
	}
	if exists {
		return response.Fail(msgCPFOtherRA)
	}

	if _, err := s.store.GetByRA(ctx, req.RA); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return response.Fail(msgNotFound)
		}
		s.log.Error().Err(err).Str("ra", req.RA).Msg("edit student: lookup")
		return response.Fail("Error updating student")
	}

	student := &model.Student{
		RA:    req.RA,
		Name:  req.Name,
		Email: req.Email,
		CPF:   normalized,
	}
	if err := s.store.Update(ctx, student); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return response.Fail(msgNotFound)
		case errors.Is(err, repository.ErrDuplicateCPF):
			return response.Fail(msgCPFOtherRA)
		}
		s.log.Error().Err(err).Str("ra", req.RA).Msg("edit student: update")
		return response.Fail("Error updating student")
	}

	return response.Ok("Student updated successfully", true)
}

// Delete physically removes the student identified by RA.
func (s *StudentService) Delete(ctx context.Context, ra string) response.Envelope {
	if err := s.store.Delete(ctx, ra); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return response.Fail(msgNotFound)
		}
		s.log.Error().Err(err).Str("ra", ra).Msg("delete student")
		return response.Fail("Error deleting student")
	}
	return response.Ok("Student deleted successfully", true)
}
