package repository

import (
	"context"

	repo "app/internal/repository"

	"gorm.io/gorm"
)

type txReposGorm struct {
	videos      repo.VideoRepository
	transcripts repo.TranscriptRepository
	ideas       repo.IdeaRepository
	activities  repo.ActivityRepository
}

func (r *txReposGorm) Videos() repo.VideoRepository           { return r.videos }
func (r *txReposGorm) Transcripts() repo.TranscriptRepository { return r.transcripts }
func (r *txReposGorm) Ideas() repo.IdeaRepository             { return r.ideas }
func (r *txReposGorm) Activities() repo.ActivityRepository    { return r.activities }

type TxManagerGorm struct {
	db *gorm.DB
}

func NewTxManagerGorm(db *gorm.DB) *TxManagerGorm {
	return &TxManagerGorm{db: db}
}

func (tm *TxManagerGorm) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		//repoはtxを持ったDBで作り直す
		r := &txReposGorm{
			videos:      NewVideoGormRepository(tx),
			transcripts: NewTranscriptGormRepository(tx),
			ideas:       NewIdeaGormRepository(tx),
			activities:  NewActivityGormRepository(tx),
		}
		return fn(r)
	})
}
