// file: repository/security_question_repository.go

package repository

import (
	"context"
	"database/sql"
	"fmt"
	"go-auth-api/logger"
	"go-auth-api/model"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// ISecurityQuestionRepository defines the contract for security question operations.
type ISecurityQuestionRepository interface {
	GetByID(ctx context.Context, id string) (*model.SecurityQuestion, error)
	ListActive(ctx context.Context) ([]*model.SecurityQuestion, error)
	Count(ctx context.Context) (int64, error)
	CreateMany(ctx context.Context, questions []string) ([]*model.SecurityQuestion, error)
	Deactivate(ctx context.Context, id string) error
}

type SecurityQuestionRepository struct {
	DB *sql.DB
}

func NewSecurityQuestionRepository(db *sql.DB) *SecurityQuestionRepository {
	return &SecurityQuestionRepository{DB: db}
}

func (r *SecurityQuestionRepository) GetByID(ctx context.Context, id string) (*model.SecurityQuestion, error) {
	log := logger.Log.WithField("security_question_id", id)

	q := &model.SecurityQuestion{}
	query := `SELECT id, question, is_active, created_at FROM security_questions WHERE id = $1`
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&q.ID, &q.Question, &q.IsActive, &q.CreatedAt)
	if err != nil {
		err = translate(err)
		if err != ErrNotFound {
			log.WithError(err).Error("Failed to execute get security question query")
		}
		return nil, err
	}
	return q, nil
}

// ListActive returns active questions in creation order.
func (r *SecurityQuestionRepository) ListActive(ctx context.Context) ([]*model.SecurityQuestion, error) {
	log := logger.Log
	log.Info("Executing query to list active security questions")

	query := `SELECT id, question, is_active, created_at FROM security_questions WHERE is_active ORDER BY created_at, id`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		log.WithError(err).Error("Failed to execute list security questions query")
		return nil, err
	}
	defer rows.Close()

	questions := make([]*model.SecurityQuestion, 0)
	for rows.Next() {
		var q model.SecurityQuestion
		if err := rows.Scan(&q.ID, &q.Question, &q.IsActive, &q.CreatedAt); err != nil {
			log.WithError(err).Error("Failed to scan security question row")
			return nil, err
		}
		questions = append(questions, &q)
	}
	return questions, rows.Err()
}

func (r *SecurityQuestionRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM security_questions`).Scan(&n); err != nil {
		logger.Log.WithError(err).Error("Failed to count security questions")
		return 0, err
	}
	return n, nil
}

// CreateMany inserts the given prompts in one transaction. A prompt that already exists as an
// active question is skipped, so concurrent seeders never produce duplicates. Only the rows
// actually inserted are returned. created_at is staggered to keep the input order.
func (r *SecurityQuestionRepository) CreateMany(ctx context.Context, questions []string) ([]*model.SecurityQuestion, error) {
	log := logger.Log.WithField("count", len(questions))
	log.Info("Executing query to create security questions")

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("could not begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `INSERT INTO security_questions (id, question, is_active, created_at) VALUES ($1, $2, TRUE, $3)
		ON CONFLICT (question) WHERE is_active DO NOTHING RETURNING created_at`

	base := time.Now().UTC()
	created := make([]*model.SecurityQuestion, 0, len(questions))
	for i, text := range questions {
		q := &model.SecurityQuestion{ID: uuid.NewString(), Question: text, IsActive: true}
		err := tx.QueryRowContext(ctx, query, q.ID, q.Question, base.Add(time.Duration(i)*time.Millisecond)).Scan(&q.CreatedAt)
		if err == sql.ErrNoRows {
			continue
		}
		if err != nil {
			log.WithError(err).WithField("question", text).Error("Failed to insert security question")
			return nil, err
		}
		created = append(created, q)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("could not commit transaction: %w", err)
	}
	return created, nil
}

// Deactivate marks a question inactive. Questions are never deleted.
func (r *SecurityQuestionRepository) Deactivate(ctx context.Context, id string) error {
	log := logger.Log.WithFields(logrus.Fields{"security_question_id": id})
	log.Info("Executing query to deactivate security question")

	res, err := r.DB.ExecContext(ctx, `UPDATE security_questions SET is_active = FALSE WHERE id = $1`, id)
	if err != nil {
		log.WithError(err).Error("Failed to execute deactivate security question query")
		return err
	}
	return expectRow(res)
}
