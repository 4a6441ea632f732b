package services

import (
	"context"

	"quest-tracker/internal/domain"
)

// QuestService handles quest queries and mutations.
type QuestService interface {
	// ListQuests returns quests filtered and ordered per opts. With neither sort nor
	// search given it returns every quest by ascending id and ignores opts.Important.
	ListQuests(ctx context.Context, opts domain.ListOptions) ([]*domain.Quest, error)
	CreateQuest(ctx context.Context, candidate domain.Quest) (*domain.Quest, error)
	UpdateQuest(ctx context.Context, id int64, candidate domain.Quest) (*domain.Quest, error)
	DeleteQuest(ctx context.Context, id int64) error
	GetQuest(ctx context.Context, id int64) (*domain.Quest, error)
	CompleteQuest(ctx context.Context, id int64, completed bool) (*domain.Quest, error)
}
