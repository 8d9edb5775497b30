package repo

import (
	"context"
	"database/sql"

	"github.com/didi/gendry/builder"

	"mblog/internal/model"
	"mblog/internal/pkg/dbutil"
	appErr "mblog/internal/pkg/errors"
)

var postColumns = []string{"id", "title", "content", "published", "owner_id", "created_at"}

type PostRepo struct {
	db *sql.DB
}

func NewPostRepo(db *sql.DB) *PostRepo {
	return &PostRepo{db: db}
}

func (r *PostRepo) Create(ctx context.Context, post *model.Post) error {
	data := map[string]interface{}{
		"title":     post.Title,
		"content":   post.Content,
		"published": post.Published,
		"owner_id":  post.OwnerID,
	}
	sqlStr, args, err := builder.BuildInsert("posts", []map[string]interface{}{data})
	if err != nil {
		return err
	}
	sqlStr, args = dbutil.Finalize(sqlStr, args)
	sqlStr += " RETURNING id, created_at"
	return r.db.QueryRowContext(ctx, sqlStr, args...).Scan(&post.ID, &post.CreatedAt)
}

func (r *PostRepo) GetByID(ctx context.Context, postID int64) (*model.Post, error) {
	where := map[string]interface{}{"id": postID}
	sqlStr, args, err := builder.BuildSelect("posts", where, postColumns)
	if err != nil {
		return nil, err
	}
	sqlStr, args = dbutil.Finalize(sqlStr, args)
	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	if !rows.Next() {
		return nil, appErr.ErrNotFound
	}
	return scanPost(rows)
}

// ListByOwner returns the owner's posts whose title contains search,
// ordered by id, bounded by limit/offset.
func (r *PostRepo) ListByOwner(ctx context.Context, ownerID int64, search string, limit, offset uint) ([]model.Post, error) {
	where := map[string]interface{}{
		"owner_id":   ownerID,
		"title like": "%" + search + "%",
		"_orderby":   "id",
		"_limit":     []uint{offset, limit},
	}
	sqlStr, args, err := builder.BuildSelect("posts", where, postColumns)
	if err != nil {
		return nil, err
	}
	sqlStr, args = dbutil.Finalize(sqlStr, args)
	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	posts := make([]model.Post, 0)
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, err
		}
		posts = append(posts, *post)
	}
	return posts, rows.Err()
}

func (r *PostRepo) Update(ctx context.Context, postID int64, title, content string, published bool) error {
	where := map[string]interface{}{"id": postID}
	update := map[string]interface{}{
		"title":     title,
		"content":   content,
		"published": published,
	}
	sqlStr, args, err := builder.BuildUpdate("posts", where, update)
	if err != nil {
		return err
	}
	sqlStr, args = dbutil.Finalize(sqlStr, args)
	result, err := r.db.ExecContext(ctx, sqlStr, args...)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return appErr.ErrNotFound
	}
	return nil
}

func (r *PostRepo) Delete(ctx context.Context, postID int64) error {
	where := map[string]interface{}{"id": postID}
	sqlStr, args, err := builder.BuildDelete("posts", where)
	if err != nil {
		return err
	}
	sqlStr, args = dbutil.Finalize(sqlStr, args)
	result, err := r.db.ExecContext(ctx, sqlStr, args...)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return appErr.ErrNotFound
	}
	return nil
}

func scanPost(rows *sql.Rows) (*model.Post, error) {
	var post model.Post
	if err := rows.Scan(&post.ID, &post.Title, &post.Content, &post.Published, &post.OwnerID, &post.CreatedAt); err != nil {
		return nil, err
	}
	return &post, nil
}
