package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/controle-epi-api/internal/domain"
	"github.com/jhoicas/controle-epi-api/internal/domain/entity"
	"github.com/jhoicas/controle-epi-api/internal/domain/repository"
)

var _ repository.EmployeeRepository = (*EmployeeRepo)(nil)

// EmployeeRepo implementação de EmployeeRepository sobre PostgreSQL.
type EmployeeRepo struct {
	q Querier
}

// NewEmployeeRepository constrói o adaptador de funcionários. Passar pool ou tx (Querier).
func NewEmployeeRepository(q Querier) *EmployeeRepo {
	return &EmployeeRepo{q: q}
}

const employeeSelect = `
	SELECT id_funcionario, nome_funcionario, sobrenome_funcionario, numero_matricula, setor, cpf,
	       dt_nascimento, dt_admissao, tipo_sanguineo, id_cargo, foto_perfil_path
	FROM funcionario`

func scanEmployee(row pgx.Row) (*entity.Employee, error) {
	var e entity.Employee
	err := row.Scan(&e.ID, &e.FirstName, &e.LastName, &e.RegistrationNumber, &e.Department, &e.CPF,
		&e.BirthDate, &e.HireDate, &e.BloodType, &e.RoleID, &e.PhotoPath)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *EmployeeRepo) Create(ctx context.Context, e *entity.Employee) error {
	query := `
		INSERT INTO funcionario
			(nome_funcionario, sobrenome_funcionario, numero_matricula, setor, cpf,
			 dt_nascimento, dt_admissao, tipo_sanguineo, id_cargo)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id_funcionario`
	err := r.q.QueryRow(ctx, query,
		e.FirstName, e.LastName, e.RegistrationNumber, e.Department, e.CPF,
		e.BirthDate, e.HireDate, e.BloodType, e.RoleID,
	).Scan(&e.ID)
	if err != nil {
		return writeErr("insert employee", err)
	}
	return nil
}

func (r *EmployeeRepo) GetByID(ctx context.Context, id int64) (*entity.Employee, error) {
	return r.getOne(ctx, employeeSelect+` WHERE id_funcionario = $1`, id)
}

// GetByRegistration busca pela matrícula; nil se não existir.
func (r *EmployeeRepo) GetByRegistration(ctx context.Context, registration string) (*entity.Employee, error) {
	return r.getOne(ctx, employeeSelect+` WHERE numero_matricula = $1`, registration)
}

func (r *EmployeeRepo) getOne(ctx context.Context, query string, arg any) (*entity.Employee, error) {
	e, err := scanEmployee(r.q.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get employee: %w", err)
	}
	return e, nil
}

func (r *EmployeeRepo) Update(ctx context.Context, e *entity.Employee) error {
	query := `
		UPDATE funcionario
		SET nome_funcionario = $2, sobrenome_funcionario = $3, numero_matricula = $4, setor = $5, cpf = $6,
		    dt_nascimento = $7, dt_admissao = $8, tipo_sanguineo = $9, id_cargo = $10
		WHERE id_funcionario = $1`
	tag, err := r.q.Exec(ctx, query,
		e.ID, e.FirstName, e.LastName, e.RegistrationNumber, e.Department, e.CPF,
		e.BirthDate, e.HireDate, e.BloodType, e.RoleID)
	if err != nil {
		return writeErr("update employee", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrEmployeeNotFound
	}
	return nil
}

func (r *EmployeeRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM funcionario WHERE id_funcionario = $1`, id)
	return deleteResult("delete employee", tag, err)
}

func (r *EmployeeRepo) list(ctx context.Context, op, where string, args ...any) ([]*entity.Employee, error) {
	rows, err := r.q.Query(ctx, employeeSelect+where+` ORDER BY nome_funcionario, sobrenome_funcionario`, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return collect(rows, op, func(rows pgx.Rows) (*entity.Employee, error) { return scanEmployee(rows) })
}

func (r *EmployeeRepo) List(ctx context.Context) ([]*entity.Employee, error) {
	return r.list(ctx, "list employees", "")
}

func (r *EmployeeRepo) ListByRole(ctx context.Context, roleID int64) ([]*entity.Employee, error) {
	return r.list(ctx, "list employees by role", ` WHERE id_cargo = $1`, roleID)
}

func (r *EmployeeRepo) UpdatePhoto(ctx context.Context, id int64, path string) error {
	tag, err := r.q.Exec(ctx, `UPDATE funcionario SET foto_perfil_path = $2 WHERE id_funcionario = $1`, id, path)
	if err != nil {
		return fmt.Errorf("update employee photo: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrEmployeeNotFound
	}
	return nil
}
