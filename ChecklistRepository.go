package main

import (
	"context"
	"errors"
	"fmt"
	"github.com/cnuhqi5485/certification/contracts"
	"github.com/hashicorp/go-multierror"
	"go.uber.org/zap"
	"io"
	"regexp"
	"sort"
	"strings"
	"sync"
)

// reviewerSeparators split a 담당위원 cell holding several names.
var reviewerSeparators = regexp.MustCompile(`[,/;·\n]+`)

type ChecklistRepository struct {
	backend        contracts.SheetBackend
	normalizer     contracts.RowNormalizer
	canonicalizer  contracts.Canonicalizer
	rules          contracts.AssignmentRuleEvaluator
	dispatcher     contracts.EventDispatcher
	exporter       contracts.ResultExporter
	verdictOptions []string
	matching       string
	logger         *zap.Logger

	// mu serializes read-modify-write cycles against the sheet.
	mu sync.Mutex
}

func NewChecklistRepository(
	backend contracts.SheetBackend, normalizer contracts.RowNormalizer,
	canonicalizer contracts.Canonicalizer, rules contracts.AssignmentRuleEvaluator,
	dispatcher contracts.EventDispatcher, exporter contracts.ResultExporter,
	config *Config, logger *zap.Logger,
) *ChecklistRepository {
	return &ChecklistRepository{
		backend:        backend,
		normalizer:     normalizer,
		canonicalizer:  canonicalizer,
		rules:          rules,
		dispatcher:     dispatcher,
		exporter:       exporter,
		verdictOptions: config.VerdictOptions,
		matching:       config.Matching,
		logger:         logger,
	}
}

func (r *ChecklistRepository) ListItems(ctx context.Context) ([]*contracts.ChecklistItem, error) {
	table, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	return table.Items(table.Rows), nil
}

func (r *ChecklistRepository) ReviewerTasks(ctx context.Context, reviewer string) ([]*contracts.ChecklistItem, error) {
	reviewer = r.canonicalizer.Canonicalize(reviewer)
	if reviewer == "" {
		return nil, contracts.ReviewerRequiredError
	}

	table, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	rows := r.reviewerRows(table, reviewer)
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: %w", reviewer, contracts.ReviewerNotFoundError)
	}

	return table.Items(rows), nil
}

// SubmitEvaluations stores verdicts for rows assigned to reviewer. Nothing is
// written unless every evaluation is valid.
func (r *ChecklistRepository) SubmitEvaluations(
	ctx context.Context, reviewer string, evaluations []contracts.Evaluation,
) ([]*contracts.ChecklistItem, error) {
	reviewer = r.canonicalizer.Canonicalize(reviewer)
	if reviewer == "" {
		return nil, contracts.ReviewerRequiredError
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	table, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	assigned := r.reviewerRows(table, reviewer)
	if len(assigned) == 0 {
		return nil, fmt.Errorf("%s: %w", reviewer, contracts.ReviewerNotFoundError)
	}

	var validationErr *multierror.Error
	changed := make([]*contracts.Row, 0, len(evaluations))

	for _, evaluation := range evaluations {
		verdict := r.canonicalizer.Canonicalize(evaluation.Verdict)
		if !r.isVerdictAllowed(verdict) {
			validationErr = multierror.Append(validationErr,
				fmt.Errorf("row %d: %q: %w", evaluation.Row, evaluation.Verdict, contracts.InvalidVerdictError))
			continue
		}

		row := table.FindRow(evaluation.Row - 1)
		if row == nil || !r.isAssigned(table.Get(row, contracts.ColumnReviewer), reviewer) {
			validationErr = multierror.Append(validationErr,
				fmt.Errorf("row %d: %w", evaluation.Row, contracts.RowNotAssignedError))
			continue
		}

		table.Set(row, contracts.ColumnVerdict, verdict)
		if !containsRow(changed, row) {
			changed = append(changed, row)
		}
	}

	if err = validationErr.ErrorOrNil(); err != nil {
		return nil, err
	}

	if len(changed) > 0 {
		err = r.write(ctx, table, changed, contracts.ColumnVerdict)
		if err != nil {
			return nil, err
		}

		evaluationsCounter.Add(float64(len(changed)))
		r.logger.Info("Evaluations submitted", zap.String("reviewer", reviewer), zap.Int("rows", len(changed)))
		r.dispatcher.Dispatch(NewEvent(contracts.EventEvaluationsSubmitted, reviewer, table.Items(changed)))
	}

	return table.Items(assigned), nil
}

// AssignItems sets the reviewer of every row whose 문항 is in ids. An empty
// reviewer clears the assignment.
func (r *ChecklistRepository) AssignItems(ctx context.Context, reviewer string, ids []string) (*contracts.AssignResult, error) {
	reviewer = r.canonicalizer.Canonicalize(reviewer)

	requested := make([]string, 0, len(ids))
	requestedKeys := make(map[string]bool, len(ids))
	for _, id := range ids {
		id = r.canonicalizer.Canonicalize(id)
		key := r.canonicalizer.Key(id)
		if key == "" || requestedKeys[key] {
			continue
		}
		requested = append(requested, id)
		requestedKeys[key] = false
	}

	if len(requested) == 0 {
		return nil, fmt.Errorf("no item ids given: %w", contracts.ItemNotFoundError)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	table, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	changed := make([]*contracts.Row, 0)
	for _, row := range table.Rows {
		key := r.canonicalizer.Key(table.Get(row, contracts.ColumnItemId))
		if _, ok := requestedKeys[key]; ok {
			requestedKeys[key] = true
			changed = append(changed, row)
		}
	}

	if len(changed) == 0 {
		return nil, fmt.Errorf("%s: %w", strings.Join(requested, ", "), contracts.ItemNotFoundError)
	}

	result := &contracts.AssignResult{
		Reviewer:     reviewer,
		AssignedRows: len(changed),
		MatchedIds:   make([]string, 0, len(requested)),
		UnknownIds:   make([]string, 0),
	}
	for _, id := range requested {
		if requestedKeys[r.canonicalizer.Key(id)] {
			result.MatchedIds = append(result.MatchedIds, id)
		} else {
			result.UnknownIds = append(result.UnknownIds, id)
		}
	}

	err = r.assign(ctx, table, changed, reviewer)
	if err != nil {
		return nil, err
	}

	return result, nil
}

// AssignByRule sets the reviewer of every row matched by rule.
func (r *ChecklistRepository) AssignByRule(ctx context.Context, reviewer string, rule string) (*contracts.AssignResult, error) {
	reviewer = r.canonicalizer.Canonicalize(reviewer)

	program, err := r.rules.Compile(rule)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	table, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	changed := make([]*contracts.Row, 0)
	for _, row := range table.Rows {
		matched, err := program.Match(table, row)
		if err != nil {
			return nil, err
		}
		if matched {
			changed = append(changed, row)
		}
	}

	if len(changed) == 0 {
		return nil, fmt.Errorf("%s: %w", rule, contracts.ItemNotFoundError)
	}

	result := &contracts.AssignResult{
		Reviewer:     reviewer,
		AssignedRows: len(changed),
		MatchedIds:   make([]string, 0),
		UnknownIds:   make([]string, 0),
	}

	seen := make(map[string]bool)
	for _, row := range changed {
		id := table.Get(row, contracts.ColumnItemId)
		if !seen[id] {
			seen[id] = true
			result.MatchedIds = append(result.MatchedIds, id)
		}
	}

	for _, prefix := range program.Prefixes() {
		if !r.hasRowUnder(table, changed, prefix) {
			result.UnknownIds = append(result.UnknownIds, prefix)
		}
	}

	err = r.assign(ctx, table, changed, reviewer)
	if err != nil {
		return nil, err
	}

	return result, nil
}

func (r *ChecklistRepository) Summary(ctx context.Context) (*contracts.Summary, error) {
	table, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	summary := &contracts.Summary{
		TotalRows: len(table.Rows),
		Reviewers: make([]*contracts.ReviewerSummary, 0),
	}

	items := make(map[string]bool)
	reviewers := make(map[string]*contracts.ReviewerSummary)

	for _, row := range table.Rows {
		items[r.canonicalizer.Key(table.Get(row, contracts.ColumnItemId))] = true

		names := r.splitReviewers(table.Get(row, contracts.ColumnReviewer))
		if len(names) == 0 {
			summary.UnassignedRows++
			continue
		}

		verdict := table.Get(row, contracts.ColumnVerdict)
		for _, name := range names {
			reviewerSummary, ok := reviewers[name]
			if !ok {
				reviewerSummary = &contracts.ReviewerSummary{
					Reviewer: name,
					Verdicts: make(map[string]int, len(r.verdictOptions)),
				}
				for _, option := range r.verdictOptions {
					reviewerSummary.Verdicts[option] = 0
				}
				reviewers[name] = reviewerSummary
				summary.Reviewers = append(summary.Reviewers, reviewerSummary)
			}

			reviewerSummary.Assigned++
			if verdict != "" {
				reviewerSummary.Evaluated++
				reviewerSummary.Verdicts[verdict]++
			}
		}
	}

	summary.DistinctItems = len(items)
	sort.Slice(summary.Reviewers, func(i, j int) bool {
		return summary.Reviewers[i].Reviewer < summary.Reviewers[j].Reviewer
	})

	return summary, nil
}

func (r *ChecklistRepository) Export(ctx context.Context, format string, w io.Writer) error {
	if _, err := r.exporter.FileName(format); err != nil {
		return err
	}

	table, err := r.load(ctx)
	if err != nil {
		return err
	}

	return r.exporter.Export(table, format, w)
}

func (r *ChecklistRepository) load(ctx context.Context) (*contracts.Table, error) {
	grid, err := r.backend.ReadGrid(ctx)
	if err != nil {
		backendErrorsCounter.Inc()
		r.logger.Error("Sheet read failed", zap.Error(err))
		return nil, err
	}

	return r.normalizer.Normalize(grid)
}

func (r *ChecklistRepository) write(ctx context.Context, table *contracts.Table, rows []*contracts.Row, columns ...string) error {
	err := r.backend.WriteCells(ctx, r.normalizer.Patch(table, rows, columns))
	if err != nil {
		backendErrorsCounter.Inc()
		r.logger.Error("Sheet write failed", zap.Int("rows", len(rows)), zap.Error(err))
	}
	return err
}

func (r *ChecklistRepository) assign(ctx context.Context, table *contracts.Table, rows []*contracts.Row, reviewer string) error {
	for _, row := range rows {
		table.Set(row, contracts.ColumnReviewer, reviewer)
	}

	err := r.write(ctx, table, rows, contracts.ColumnReviewer)
	if err != nil {
		return err
	}

	assignmentsCounter.Add(float64(len(rows)))
	r.logger.Info("Items assigned", zap.String("reviewer", reviewer), zap.Int("rows", len(rows)))
	r.dispatcher.Dispatch(NewEvent(contracts.EventItemsAssigned, reviewer, table.Items(rows)))

	return nil
}

func (r *ChecklistRepository) reviewerRows(table *contracts.Table, reviewer string) []*contracts.Row {
	rows := make([]*contracts.Row, 0)
	for _, row := range table.Rows {
		if r.isAssigned(table.Get(row, contracts.ColumnReviewer), reviewer) {
			rows = append(rows, row)
		}
	}
	return rows
}

func (r *ChecklistRepository) isAssigned(cell string, reviewer string) bool {
	reviewerKey := r.canonicalizer.Key(reviewer)
	if reviewerKey == "" {
		return false
	}

	if r.matching == MatchingContains {
		return strings.Contains(r.canonicalizer.Key(cell), reviewerKey)
	}

	for _, name := range r.splitReviewers(cell) {
		if r.canonicalizer.Key(name) == reviewerKey {
			return true
		}
	}
	return false
}

func (r *ChecklistRepository) splitReviewers(cell string) []string {
	names := make([]string, 0, 1)
	for _, name := range reviewerSeparators.Split(cell, -1) {
		name = r.canonicalizer.Canonicalize(name)
		if name != "" {
			names = append(names, name)
		}
	}
	return names
}

func (r *ChecklistRepository) isVerdictAllowed(verdict string) bool {
	if verdict == "" {
		return true
	}
	for _, option := range r.verdictOptions {
		if option == verdict {
			return true
		}
	}
	return false
}

func (r *ChecklistRepository) hasRowUnder(table *contracts.Table, rows []*contracts.Row, prefix string) bool {
	for _, row := range rows {
		if isUnder(table.Get(row, contracts.ColumnItemId), prefix) {
			return true
		}
	}
	return false
}

func containsRow(rows []*contracts.Row, row *contracts.Row) bool {
	for _, candidate := range rows {
		if candidate == row {
			return true
		}
	}
	return false
}

// IsBackendError reports whether err came from the sheet storage rather than
// from the request.
func IsBackendError(err error) bool {
	return errors.Is(err, contracts.BackendError)
}
