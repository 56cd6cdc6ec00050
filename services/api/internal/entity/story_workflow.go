package entity

type StoryAction string

const (
	ActionSubmit         StoryAction = "submit"
	ActionApprove        StoryAction = "approve"
	ActionRequestChanges StoryAction = "request_changes"
	ActionPublish        StoryAction = "publish"
	ActionArchive        StoryAction = "archive"
)

// storyTransitions lists, per action, the states it may start from and the
// state it leads to. Nothing leaves ARCHIVED except archive itself.
var storyTransitions = map[StoryAction]struct {
	from []StoryStatus
	to   StoryStatus
}{
	ActionSubmit: {
		from: []StoryStatus{StoryStatusDraft, StoryStatusChangesRequested},
		to:   StoryStatusSubmitted,
	},
	ActionApprove: {
		from: []StoryStatus{StoryStatusSubmitted},
		to:   StoryStatusApproved,
	},
	ActionRequestChanges: {
		from: []StoryStatus{StoryStatusSubmitted, StoryStatusApproved},
		to:   StoryStatusChangesRequested,
	},
	ActionPublish: {
		from: []StoryStatus{StoryStatusApproved},
		to:   StoryStatusPublished,
	},
	ActionArchive: {
		from: StoryStatuses,
		to:   StoryStatusArchived,
	},
}

// Next returns the state reached by applying action, or false if the action
// is not legal from s.
func (s StoryStatus) Next(action StoryAction) (StoryStatus, bool) {
	t, ok := storyTransitions[action]
	if !ok {
		return s, false
	}
	for _, from := range t.from {
		if from == s {
			return t.to, true
		}
	}
	return s, false
}
