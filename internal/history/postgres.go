package history

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// Postgres is the durable Store backed by a pgx connection pool. Each append
// and query is a single statement; atomicity comes from the database, not
// from this layer.
type Postgres struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database and verifies it.
func Connect(ctx context.Context, databaseURL string) (*Postgres, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, &StorageError{Op: "connect", Err: err}
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, &StorageError{Op: "connect", Err: fmt.Errorf("failed to ping database: %w", err)}
	}
	return &Postgres{pool: pool}, nil
}

// EnsureSchema creates the analysis log table and its ordering index.
func (p *Postgres) EnsureSchema(ctx context.Context) error {
	_, err := p.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS resume_analyses (
			id UUID PRIMARY KEY,
			resume_id TEXT NOT NULL UNIQUE,
			job_category TEXT NOT NULL,
			confidence DOUBLE PRECISION NOT NULL,
			skills JSONB NOT NULL DEFAULT '[]',
			experience_level TEXT NOT NULL,
			summary TEXT NOT NULL DEFAULT '',
			word_count INTEGER NOT NULL DEFAULT 0,
			character_count INTEGER NOT NULL DEFAULT 0,
			sentence_count INTEGER NOT NULL DEFAULT 0,
			avg_sentence_length DOUBLE PRECISION NOT NULL DEFAULT 0,
			readability_score DOUBLE PRECISION NOT NULL DEFAULT 0,
			sections JSONB NOT NULL DEFAULT '[]',
			keywords JSONB NOT NULL DEFAULT '[]',
			source_excerpt TEXT NOT NULL DEFAULT '',
			text_hash TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL
		);
		CREATE INDEX IF NOT EXISTS resume_analyses_order_idx
			ON resume_analyses (created_at DESC, resume_id DESC);
	`)
	if err != nil {
		return &StorageError{Op: "ensure schema", Err: err}
	}
	return nil
}

// Append inserts a copy of the result as one durable row.
func (p *Postgres) Append(ctx context.Context, result *types.AnalysisResult) error {
	skillsJSON, err := json.Marshal(result.Skills)
	if err != nil {
		return &StorageError{Op: "append", Err: err}
	}
	sectionsJSON, err := json.Marshal(result.Sections)
	if err != nil {
		return &StorageError{Op: "append", Err: err}
	}
	keywordsJSON, err := json.Marshal(result.Keywords)
	if err != nil {
		return &StorageError{Op: "append", Err: err}
	}

	_, err = p.pool.Exec(ctx,
		`INSERT INTO resume_analyses (
			id, resume_id, job_category, confidence, skills, experience_level,
			summary, word_count, character_count, sentence_count,
			avg_sentence_length, readability_score, sections, keywords,
			source_excerpt, text_hash, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`,
		uuid.New(), result.ResumeID, result.JobCategory, result.Confidence,
		skillsJSON, string(result.ExperienceLevel), result.Summary,
		result.WordCount, result.CharacterCount, result.SentenceCount,
		result.AvgSentenceLength, result.ReadabilityScore,
		sectionsJSON, keywordsJSON, result.SourceExcerpt, result.TextHash,
		result.Timestamp,
	)
	if err != nil {
		return &StorageError{Op: "append", Err: err}
	}
	return nil
}

// Query returns one page, most recent first, ties by resume_id descending.
func (p *Postgres) Query(ctx context.Context, page, pageSize int) (*types.HistoryPage, error) {
	page, pageSize = clampPaging(page, pageSize)

	var total int
	if err := p.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM resume_analyses`).Scan(&total); err != nil {
		return nil, &StorageError{Op: "query", Err: err}
	}

	rows, err := p.pool.Query(ctx,
		`SELECT resume_id, job_category, confidence, skills, experience_level,
			summary, word_count, character_count, sentence_count,
			avg_sentence_length, readability_score, sections, keywords,
			source_excerpt, text_hash, created_at
		 FROM resume_analyses
		 ORDER BY created_at DESC, resume_id DESC
		 LIMIT $1 OFFSET $2`,
		pageSize, (page-1)*pageSize,
	)
	if err != nil {
		return nil, &StorageError{Op: "query", Err: err}
	}
	defer rows.Close()

	out := &types.HistoryPage{
		Items:      []types.AnalysisResult{},
		Page:       page,
		PageSize:   pageSize,
		TotalCount: total,
	}
	for rows.Next() {
		var (
			r            types.AnalysisResult
			level        string
			skillsJSON   []byte
			sectionsJSON []byte
			keywordsJSON []byte
		)
		if err := rows.Scan(
			&r.ResumeID, &r.JobCategory, &r.Confidence, &skillsJSON, &level,
			&r.Summary, &r.WordCount, &r.CharacterCount, &r.SentenceCount,
			&r.AvgSentenceLength, &r.ReadabilityScore, &sectionsJSON,
			&keywordsJSON, &r.SourceExcerpt, &r.TextHash, &r.Timestamp,
		); err != nil {
			return nil, &StorageError{Op: "query", Err: err}
		}
		r.ExperienceLevel = types.ExperienceLevel(level)
		if err := json.Unmarshal(skillsJSON, &r.Skills); err != nil {
			return nil, &StorageError{Op: "query", Err: err}
		}
		if err := json.Unmarshal(sectionsJSON, &r.Sections); err != nil {
			return nil, &StorageError{Op: "query", Err: err}
		}
		if err := json.Unmarshal(keywordsJSON, &r.Keywords); err != nil {
			return nil, &StorageError{Op: "query", Err: err}
		}
		out.Items = append(out.Items, r)
	}
	if err := rows.Err(); err != nil {
		return nil, &StorageError{Op: "query", Err: err}
	}
	return out, nil
}

// Ping verifies the database connection.
func (p *Postgres) Ping(ctx context.Context) error {
	if err := p.pool.Ping(ctx); err != nil {
		return &StorageError{Op: "ping", Err: err}
	}
	return nil
}

// Close closes the connection pool.
func (p *Postgres) Close() {
	if p.pool != nil {
		p.pool.Close()
	}
}
