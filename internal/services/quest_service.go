package services

import (
	"cmp"
	"context"
	"log/slog"
	"math"
	"slices"
	"strings"

	"quest-tracker/internal/domain"
	"quest-tracker/internal/errors"
	"quest-tracker/internal/repository"
	"quest-tracker/internal/validation"
)

// questServiceImpl implements the QuestService interface
type questServiceImpl struct {
	repo      repository.Repository
	mapper    *domain.QuestMapper
	validator *validation.QuestValidator
	logger    *slog.Logger
}

// NewQuestService creates a new QuestService instance
func NewQuestService(repo repository.Repository, logger *slog.Logger) QuestService {
	if logger == nil {
		logger = slog.Default()
	}
	return &questServiceImpl{
		repo:      repo,
		mapper:    domain.NewQuestMapper(),
		validator: validation.NewQuestValidator(),
		logger:    logger.With("component", "quest_service"),
	}
}

// ListQuests returns a fresh snapshot of the store, filtered and sorted.
func (s *questServiceImpl) ListQuests(ctx context.Context, opts domain.ListOptions) ([]*domain.Quest, error) {
	quests, err := s.loadAll(ctx)
	if err != nil {
		return nil, err
	}

	if opts.IsBrowseAll() {
		sortByID(quests, false)
		s.logger.DebugContext(ctx, "listed all quests", "count", len(quests))
		return quests, nil
	}

	importantOnly := opts.ImportantOnly()
	var needle string
	if opts.HasSearch() {
		needle = strings.ToLower(opts.Search)
	}

	result := make([]*domain.Quest, 0, len(quests))
	for _, q := range quests {
		if importantOnly && (q == nil || !q.Important) {
			continue
		}
		if opts.HasSearch() && !matchesSearch(q, needle) {
			continue
		}
		result = append(result, q)
	}

	sortByID(result, opts.Descending())

	s.logger.DebugContext(ctx, "listed quests",
		"sort", opts.Sort,
		"important_only", importantOnly,
		"search", opts.Search,
		"count", len(result))
	return result, nil
}

func matchesSearch(q *domain.Quest, lowerNeedle string) bool {
	if q == nil || q.Description == nil {
		return false
	}
	return strings.Contains(strings.ToLower(*q.Description), lowerNeedle)
}

// sortKey places quests without an identity before every persisted quest.
func sortKey(q *domain.Quest) int64 {
	if q == nil || q.ID <= 0 {
		return math.MinInt64
	}
	return q.ID
}

func sortByID(quests []*domain.Quest, descending bool) {
	slices.SortStableFunc(quests, func(a, b *domain.Quest) int {
		if descending {
			return cmp.Compare(sortKey(b), sortKey(a))
		}
		return cmp.Compare(sortKey(a), sortKey(b))
	})
}

func (s *questServiceImpl) loadAll(ctx context.Context) ([]*domain.Quest, error) {
	records, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	quests, err := s.mapper.FromRecordSlice(records)
	if err != nil {
		return nil, errors.NewDatabaseError("decode quests", err)
	}
	return quests, nil
}

func (s *questServiceImpl) load(ctx context.Context, id int64) (*domain.Quest, error) {
	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	quest, err := s.mapper.FromRecord(record)
	if err != nil {
		return nil, errors.NewDatabaseError("decode quest", err)
	}
	return &quest, nil
}

// CreateQuest validates and stores a new quest. Any id on the candidate is ignored.
func (s *questServiceImpl) CreateQuest(ctx context.Context, candidate domain.Quest) (*domain.Quest, error) {
	if err := s.validator.ValidateForCreate(candidate); err != nil {
		return nil, errors.NewValidationError("invalid quest", err)
	}

	record := s.mapper.ToRecord(candidate)
	record.ID = 0
	if err := s.repo.Save(ctx, record); err != nil {
		return nil, err
	}

	created, err := s.mapper.FromRecord(record)
	if err != nil {
		return nil, errors.NewDatabaseError("decode quest", err)
	}

	s.logger.InfoContext(ctx, "quest created", "id", created.ID)
	return &created, nil
}

// UpdateQuest replaces the mutable fields of an existing quest.
// A missing quest is reported before the candidate is validated.
func (s *questServiceImpl) UpdateQuest(ctx context.Context, id int64, candidate domain.Quest) (*domain.Quest, error) {
	existing, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.validator.ValidateForUpdate(candidate); err != nil {
		return nil, errors.NewValidationError("invalid quest", err)
	}

	existing.ApplyFrom(candidate)
	if err := s.repo.Save(ctx, s.mapper.ToRecord(*existing)); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "quest updated", "id", existing.ID)
	return existing, nil
}

// DeleteQuest removes a quest by id
func (s *questServiceImpl) DeleteQuest(ctx context.Context, id int64) error {
	record, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, record); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "quest deleted", "id", id)
	return nil
}

// GetQuest retrieves a quest by its ID
func (s *questServiceImpl) GetQuest(ctx context.Context, id int64) (*domain.Quest, error) {
	return s.load(ctx, id)
}

// CompleteQuest sets the completed flag without touching other fields.
func (s *questServiceImpl) CompleteQuest(ctx context.Context, id int64, completed bool) (*domain.Quest, error) {
	existing, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	existing.Completed = completed
	if err := s.repo.Save(ctx, s.mapper.ToRecord(*existing)); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "quest completion changed", "id", id, "completed", completed)
	return existing, nil
}
