package api

import (
	"context"

	"quest-tracker/internal/domain"
	"quest-tracker/internal/errors"
)

// fakeQuestService records the last call and returns canned results.
type fakeQuestService struct {
	listOpts    domain.ListOptions
	listResult  []*domain.Quest
	created     domain.Quest
	updatedID   int64
	updated     domain.Quest
	deletedID   int64
	completedID int64
	completed   bool
	quest       *domain.Quest
	err         error
}

func (f *fakeQuestService) ListQuests(ctx context.Context, opts domain.ListOptions) ([]*domain.Quest, error) {
	f.listOpts = opts
	return f.listResult, f.err
}

func (f *fakeQuestService) CreateQuest(ctx context.Context, candidate domain.Quest) (*domain.Quest, error) {
	f.created = candidate
	if f.err != nil {
		return nil, f.err
	}
	out := candidate
	out.ID = 1
	return &out, nil
}

func (f *fakeQuestService) UpdateQuest(ctx context.Context, id int64, candidate domain.Quest) (*domain.Quest, error) {
	f.updatedID = id
	f.updated = candidate
	if f.err != nil {
		return nil, f.err
	}
	out := candidate
	out.ID = id
	return &out, nil
}

func (f *fakeQuestService) DeleteQuest(ctx context.Context, id int64) error {
	f.deletedID = id
	return f.err
}

func (f *fakeQuestService) GetQuest(ctx context.Context, id int64) (*domain.Quest, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.quest == nil {
		return nil, errors.NewNotFoundError("quest", "fake")
	}
	return f.quest, nil
}

func (f *fakeQuestService) CompleteQuest(ctx context.Context, id int64, completed bool) (*domain.Quest, error) {
	f.completedID = id
	f.completed = completed
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Quest{ID: id, Completed: completed}, nil
}
