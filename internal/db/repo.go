package db

import (
	"context"
	"fmt"

	"github.com/daniilsolovey/newshub/internal/content"
	"github.com/go-pg/pg/v10"
)

type Repository struct {
	db pg.DBI
}

func New(db pg.DBI) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Ping(ctx context.Context) error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Ping(ctx); err != nil {
			return err
		}
		return nil
	}

	return nil
}

func (r *Repository) Close() error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Close(); err != nil {
			return err
		}
		return nil
	}

	return nil
}

func (r *Repository) Categories(ctx context.Context) ([]Category, error) {
	var categories []Category
	err := r.db.ModelContext(ctx, &categories).
		OrderExpr(`"orderNumber" ASC`).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}

	return categories, nil
}

func (r *Repository) Authors(ctx context.Context) ([]Author, error) {
	var authors []Author
	err := r.db.ModelContext(ctx, &authors).
		OrderExpr(`"orderNumber" ASC`).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query authors: %w", err)
	}

	return authors, nil
}

// Articles returns every article in insertion order.
func (r *Repository) Articles(ctx context.Context) ([]Article, error) {
	var articles []Article
	err := r.db.ModelContext(ctx, &articles).
		OrderExpr(`"t"."orderNumber" ASC`).
		Select()

	if err != nil {
		return nil, fmt.Errorf("failed to query articles: %w", err)
	}

	return articles, nil
}

func (r *Repository) ArticlesCount(ctx context.Context) (int, error) {
	count, err := r.db.ModelContext(ctx, (*Article)(nil)).Count()
	if err != nil {
		return 0, fmt.Errorf("failed to get articles count: %w", err)
	}

	return count, nil
}

// Snapshot reads all content once and builds the immutable store from it.
func (r *Repository) Snapshot(ctx context.Context) (*content.Store, error) {
	categories, err := r.Categories(ctx)
	if err != nil {
		return nil, err
	}

	authors, err := r.Authors(ctx)
	if err != nil {
		return nil, err
	}

	articles, err := r.Articles(ctx)
	if err != nil {
		return nil, err
	}

	store, err := content.NewStore(
		mapRows(categories, NewContentCategory),
		mapRows(authors, NewContentAuthor),
		mapRows(articles, NewContentArticle),
	)
	if err != nil {
		return nil, fmt.Errorf("build store from database: %w", err)
	}

	return store, nil
}

// InsertContent writes the given records in one transaction, skipping rows
// whose primary key already exists. It returns the number of inserted articles.
func (r *Repository) InsertContent(ctx context.Context, categories []content.Category,
	authors []content.Author, articles []content.Article) (int, error) {

	db, ok := r.db.(*pg.DB)
	if !ok {
		return r.insertContent(ctx, r.db, categories, authors, articles)
	}

	var inserted int
	err := db.RunInTransaction(ctx, func(tx *pg.Tx) error {
		n, err := r.insertContent(ctx, tx, categories, authors, articles)
		inserted = n
		return err
	})

	return inserted, err
}

func (r *Repository) insertContent(ctx context.Context, dbi pg.DBI, categories []content.Category,
	authors []content.Author, articles []content.Article) (int, error) {

	if len(categories) > 0 {
		rows := Map(categories, NewCategory)
		if _, err := dbi.ModelContext(ctx, &rows).OnConflict("DO NOTHING").Insert(); err != nil {
			return 0, fmt.Errorf("insert categories: %w", err)
		}
	}

	if len(authors) > 0 {
		rows := Map(authors, NewAuthor)
		if _, err := dbi.ModelContext(ctx, &rows).OnConflict("DO NOTHING").Insert(); err != nil {
			return 0, fmt.Errorf("insert authors: %w", err)
		}
	}

	if len(articles) == 0 {
		return 0, nil
	}

	rows := Map(articles, NewArticle)
	res, err := dbi.ModelContext(ctx, &rows).OnConflict("DO NOTHING").Insert()
	if err != nil {
		return 0, fmt.Errorf("insert articles: %w", err)
	}

	return res.RowsAffected(), nil
}

func mapRows[From, To any](list []From, converter func(From) To) []To {
	result := make([]To, len(list))
	for i := range list {
		result[i] = converter(list[i])
	}
	return result
}
