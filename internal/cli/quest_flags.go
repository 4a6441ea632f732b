package cli

import (
	"github.com/spf13/cobra"

	"quest-tracker/internal/domain"
	"quest-tracker/internal/errors"
)

const (
	flagImportant  = "important"
	flagCompleted  = "completed"
	flagImageURL   = "image-url"
	flagRepeatable = "repeatable"
	flagRepeatTime = "repeat-time"
	flagRepeatDays = "repeat-days"
)

// QuestFlags holds the quest fields given on the command line. Nil pointers were not given.
type QuestFlags struct {
	Important  bool
	Completed  bool
	ImageURL   *string
	Repeatable *bool
	RepeatTime *string
	RepeatDays *string
}

// addQuestFlags registers the quest field flags on cmd.
func addQuestFlags(cmd *cobra.Command, withCompleted bool) {
	flags := cmd.Flags()
	flags.Bool(flagImportant, false, "Mark the quest as important")
	if withCompleted {
		flags.Bool(flagCompleted, false, "Mark the quest as completed")
	}
	flags.String(flagImageURL, "", "Image URL for the quest")
	flags.Bool(flagRepeatable, false, "Repeat the quest (implied by --repeat-time or --repeat-days)")
	flags.String(flagRepeatTime, "", "Time of day the quest repeats at, HH:MM or HH:MM:SS")
	flags.String(flagRepeatDays, "", "Days the quest repeats on, e.g. mon,wed,fri")
}

// questFlagsFrom reads the flags registered by addQuestFlags.
func questFlagsFrom(cmd *cobra.Command) QuestFlags {
	flags := cmd.Flags()
	var qf QuestFlags

	qf.Important, _ = flags.GetBool(flagImportant)
	if flags.Lookup(flagCompleted) != nil {
		qf.Completed, _ = flags.GetBool(flagCompleted)
	}
	if flags.Changed(flagImageURL) {
		v, _ := flags.GetString(flagImageURL)
		qf.ImageURL = &v
	}
	if flags.Changed(flagRepeatable) {
		v, _ := flags.GetBool(flagRepeatable)
		qf.Repeatable = &v
	}
	if flags.Changed(flagRepeatTime) {
		v, _ := flags.GetString(flagRepeatTime)
		qf.RepeatTime = &v
	}
	if flags.Changed(flagRepeatDays) {
		v, _ := flags.GetString(flagRepeatDays)
		qf.RepeatDays = &v
	}
	return qf
}

// ToQuest builds a candidate quest. Malformed times and days are invalid input;
// the repeatable rule itself is left to the service.
func (qf QuestFlags) ToQuest(description *string) (domain.Quest, error) {
	quest := domain.Quest{
		Description: description,
		Important:   qf.Important,
		Completed:   qf.Completed,
		ImageURL:    qf.ImageURL,
	}

	if qf.RepeatTime != nil {
		t, err := domain.ParseTimeOfDay(*qf.RepeatTime)
		if err != nil {
			return domain.Quest{}, errors.NewInvalidInputError(flagRepeatTime, *qf.RepeatTime, "expected HH:MM or HH:MM:SS")
		}
		quest.RepeatTime = &t
	}

	if qf.RepeatDays != nil {
		days, err := domain.ParseWeekdays(*qf.RepeatDays)
		if err != nil {
			return domain.Quest{}, errors.NewInvalidInputError(flagRepeatDays, *qf.RepeatDays, err.Error())
		}
		quest.RepeatDays = days
	}

	if qf.Repeatable != nil {
		quest.Repeatable = *qf.Repeatable
	} else {
		quest.Repeatable = qf.RepeatTime != nil || qf.RepeatDays != nil
	}

	return quest, nil
}
