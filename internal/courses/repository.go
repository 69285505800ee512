package courses

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound indicates no course matches the lookup.
var ErrNotFound = errors.New("courses: not found")

// Repository defines data access methods for courses.
type Repository interface {
	List(ctx context.Context) ([]CourseWithOwner, error)
	Get(ctx context.Context, id int64) (*CourseWithOwner, error)
	Create(ctx context.Context, course Course) (int64, error)
	Update(ctx context.Context, course Course) error
	Delete(ctx context.Context, id int64) error
}

type repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL backed repository.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{pool: pool}
}

const courseWithOwnerColumns = `
	c.id, c.title, c.description, c.estimated_time, c.materials_needed, c.user_id,
	u.id, u.first_name, u.last_name, u.email_address
`

func scanCourseWithOwner(row pgx.Row) (CourseWithOwner, error) {
	var c CourseWithOwner
	err := row.Scan(
		&c.ID,
		&c.Title,
		&c.Description,
		&c.EstimatedTime,
		&c.MaterialsNeeded,
		&c.UserID,
		&c.Owner.ID,
		&c.Owner.FirstName,
		&c.Owner.LastName,
		&c.Owner.EmailAddress,
	)
	return c, err
}

func (r *repository) List(ctx context.Context) ([]CourseWithOwner, error) {
	query := `
		SELECT ` + courseWithOwnerColumns + `
		FROM courses c
		JOIN users u ON u.id = c.user_id
		ORDER BY c.id
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	courses := make([]CourseWithOwner, 0)
	for rows.Next() {
		c, err := scanCourseWithOwner(rows)
		if err != nil {
			return nil, err
		}
		courses = append(courses, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return courses, nil
}

func (r *repository) Get(ctx context.Context, id int64) (*CourseWithOwner, error) {
	query := `
		SELECT ` + courseWithOwnerColumns + `
		FROM courses c
		JOIN users u ON u.id = c.user_id
		WHERE c.id = $1
	`
	c, err := scanCourseWithOwner(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *repository) Create(ctx context.Context, course Course) (int64, error) {
	const query = `
		INSERT INTO courses (title, description, estimated_time, materials_needed, user_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	var id int64
	err := r.pool.QueryRow(ctx, query,
		course.Title,
		course.Description,
		course.EstimatedTime,
		course.MaterialsNeeded,
		course.UserID,
	).Scan(&id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return 0, fmt.Errorf("courses: owner %d does not exist: %w", course.UserID, err)
		}
		return 0, err
	}
	return id, nil
}

func (r *repository) Update(ctx context.Context, course Course) error {
	const query = `
		UPDATE courses
		SET title = $1, description = $2, estimated_time = $3, materials_needed = $4,
		    user_id = $5, updated_at = now()
		WHERE id = $6
	`
	tag, err := r.pool.Exec(ctx, query,
		course.Title,
		course.Description,
		course.EstimatedTime,
		course.MaterialsNeeded,
		course.UserID,
		course.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM courses WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

var _ Repository = (*repository)(nil)
