package api

import (
	"quest-tracker/internal/domain"
)

// QuestRequest is the body for POST /api/quests and PUT /api/quests/{id}.
// Absent optional fields decode to nil.
type QuestRequest struct {
	Description *string  `json:"description"`
	Important   bool     `json:"important"`
	Completed   bool     `json:"completed"`
	ImageURL    *string  `json:"imageUrl" validate:"omitempty,max=2048"`
	Repeatable  bool     `json:"repeatable"`
	RepeatTime  *string  `json:"repeatTime" validate:"omitempty,timeofday"`
	RepeatDays  []string `json:"repeatDays" validate:"omitempty,dive,weekday"`
}

// CompleteRequest is the body for PATCH /api/quests/{id}/complete.
type CompleteRequest struct {
	Completed *bool `json:"completed" validate:"required"`
}

// QuestResponse represents the response data for a quest
type QuestResponse struct {
	ID          int64    `json:"id"`
	Description *string  `json:"description"`
	Important   bool     `json:"important"`
	Completed   bool     `json:"completed"`
	ImageURL    *string  `json:"imageUrl"`
	Repeatable  bool     `json:"repeatable"`
	RepeatTime  *string  `json:"repeatTime"`
	RepeatDays  []string `json:"repeatDays"`
}

// ToDomain converts a request already checked by the validator.
func (req QuestRequest) ToDomain() (domain.Quest, error) {
	q := domain.Quest{
		Description: req.Description,
		Important:   req.Important,
		Completed:   req.Completed,
		ImageURL:    req.ImageURL,
		Repeatable:  req.Repeatable,
	}

	if req.RepeatTime != nil {
		t, err := domain.ParseTimeOfDay(*req.RepeatTime)
		if err != nil {
			return domain.Quest{}, err
		}
		q.RepeatTime = &t
	}

	if req.RepeatDays != nil {
		q.RepeatDays = make([]domain.Weekday, 0, len(req.RepeatDays))
		for _, token := range req.RepeatDays {
			day, err := domain.ParseWeekday(token)
			if err != nil {
				return domain.Quest{}, err
			}
			q.RepeatDays = append(q.RepeatDays, day)
		}
	}

	return q, nil
}

// NewQuestResponse converts a domain quest to its JSON shape.
func NewQuestResponse(q *domain.Quest) QuestResponse {
	resp := QuestResponse{
		ID:          q.ID,
		Description: q.Description,
		Important:   q.Important,
		Completed:   q.Completed,
		ImageURL:    q.ImageURL,
		Repeatable:  q.Repeatable,
	}

	if q.RepeatTime != nil {
		s := q.RepeatTime.String()
		resp.RepeatTime = &s
	}
	if q.RepeatDays != nil {
		resp.RepeatDays = make([]string, len(q.RepeatDays))
		for i, day := range q.RepeatDays {
			resp.RepeatDays[i] = string(day)
		}
	}

	return resp
}

// NewQuestResponses converts quests, skipping nil entries. The result is never nil.
func NewQuestResponses(quests []*domain.Quest) []QuestResponse {
	resp := make([]QuestResponse, 0, len(quests))
	for _, q := range quests {
		if q == nil {
			continue
		}
		resp = append(resp, NewQuestResponse(q))
	}
	return resp
}
