package contracts

import (
	"context"
	"io"
)

type ChecklistRepository interface {
	ListItems(ctx context.Context) ([]*ChecklistItem, error)
	ReviewerTasks(ctx context.Context, reviewer string) ([]*ChecklistItem, error)
	SubmitEvaluations(ctx context.Context, reviewer string, evaluations []Evaluation) ([]*ChecklistItem, error)
	AssignItems(ctx context.Context, reviewer string, ids []string) (*AssignResult, error)
	AssignByRule(ctx context.Context, reviewer string, rule string) (*AssignResult, error)
	Summary(ctx context.Context) (*Summary, error)
	Export(ctx context.Context, format string, w io.Writer) error
}
