package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"go-comments-service/internal/model"
)

const commentColumns = `id, comment_text, author_id, user_id, created_at, updated_at, is_edited`

type CommentRepository struct {
	pool *pgxpool.Pool
}

func NewCommentRepository(pool *pgxpool.Pool) *CommentRepository {
	return &CommentRepository{pool: pool}
}

func (r *CommentRepository) Create(ctx context.Context, c model.Comment) (model.Comment, error) {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO comments (comment_text, author_id, user_id)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at, is_edited`,
		c.CommentText, c.AuthorID, c.UserID).
		Scan(&c.ID, &c.CreatedAt, &c.IsEdited)
	if err != nil {
		return model.Comment{}, fmt.Errorf("create comment: %w", err)
	}
	return c, nil
}

func (r *CommentRepository) FindByID(ctx context.Context, id int64) (model.Comment, error) {
	var c model.Comment
	err := r.pool.QueryRow(ctx,
		`SELECT `+commentColumns+` FROM comments WHERE id = $1`, id).
		Scan(&c.ID, &c.CommentText, &c.AuthorID, &c.UserID, &c.CreatedAt, &c.UpdatedAt, &c.IsEdited)

	if errors.Is(err, pgx.ErrNoRows) {
		return model.Comment{}, model.ErrCommentNotFound
	}
	if err != nil {
		return model.Comment{}, fmt.Errorf("find comment by id: %w", err)
	}
	return c, nil
}

func (r *CommentRepository) ListByAuthor(ctx context.Context, authorID int64) ([]model.Comment, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+commentColumns+` FROM comments WHERE author_id = $1 ORDER BY created_at`,
		authorID)
	if err != nil {
		return nil, fmt.Errorf("list comments by author: %w", err)
	}
	defer rows.Close()

	return collectComments(rows)
}

func (r *CommentRepository) SearchByText(ctx context.Context, keyword string) ([]model.Comment, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+commentColumns+` FROM comments
		 WHERE comment_text ILIKE '%' || $1 || '%'
		 ORDER BY created_at`, keyword)
	if err != nil {
		return nil, fmt.Errorf("search comments: %w", err)
	}
	defer rows.Close()

	return collectComments(rows)
}

func (r *CommentRepository) Update(ctx context.Context, c model.Comment) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE comments SET comment_text = $2, is_edited = $3, updated_at = $4
		 WHERE id = $1`,
		c.ID, c.CommentText, c.IsEdited, c.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update comment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrCommentNotFound
	}
	return nil
}

func (r *CommentRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM comments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrCommentNotFound
	}
	return nil
}

func collectComments(rows pgx.Rows) ([]model.Comment, error) {
	comments := make([]model.Comment, 0)
	for rows.Next() {
		var c model.Comment
		if err := rows.Scan(&c.ID, &c.CommentText, &c.AuthorID, &c.UserID,
			&c.CreatedAt, &c.UpdatedAt, &c.IsEdited); err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}
