package main

import (
	"bytes"
	"fmt"
	json "github.com/bytedance/sonic"
	"github.com/cenkalti/backoff/v4"
	"github.com/cnuhqi5485/certification/contracts"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"net/http"
	"sync"
	"time"
)

const webhookMaxRetries = 2

type WebhookSendCommand struct {
	Webhook string
	Event   *contracts.Event
}

// WebhookDispatcher posts checklist events to remote script endpoints.
type WebhookDispatcher struct {
	urls       []string
	workers    int
	queue      chan WebhookSendCommand
	client     *http.Client
	logger     *zap.Logger
	newBackOff func() backoff.BackOff

	mu       sync.RWMutex
	closed   bool
	workerWg sync.WaitGroup
}

func NewWebhookDispatcher(config WebhooksConfig, logger *zap.Logger) *WebhookDispatcher {
	return &WebhookDispatcher{
		urls:    config.Urls,
		workers: config.Workers,
		queue:   make(chan WebhookSendCommand, config.QueueSize),
		client: &http.Client{
			Timeout: config.Timeout,
		},
		logger: logger,
		newBackOff: func() backoff.BackOff {
			return backoff.WithMaxRetries(backoff.NewExponentialBackOff(), webhookMaxRetries)
		},
	}
}

func (d *WebhookDispatcher) Dispatch(event *contracts.Event) {
	if len(d.urls) == 0 {
		return
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		d.logger.Warn("Webhook dispatcher is closed, event dropped", zap.String("event", event.Id))
		return
	}

	// callers may hold the checklist lock, so a full queue drops the event
	for _, webhook := range d.urls {
		select {
		case d.queue <- WebhookSendCommand{Webhook: webhook, Event: event}:
		default:
			webhookFailuresCounter.Inc()
			d.logger.Warn("Webhook queue is full, event dropped",
				zap.String("webhook", webhook),
				zap.String("event", event.Id))
		}
	}
}

func (d *WebhookDispatcher) Start() {
	for i := 0; i < d.workers; i++ {
		d.workerWg.Add(1)
		go d.runWebhookSenderWorker()
	}
}

// Close stops accepting events and waits until queued ones are delivered.
func (d *WebhookDispatcher) Close() {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	d.workerWg.Wait()
	d.client.CloseIdleConnections()
}

func (d *WebhookDispatcher) runWebhookSenderWorker() {
	defer d.workerWg.Done()

	for command := range d.queue {
		err := d.send(command)
		if err != nil {
			webhookFailuresCounter.Inc()
			d.logger.Error("Webhook send error",
				zap.String("webhook", command.Webhook),
				zap.String("event", command.Event.Id),
				zap.Error(err))
		}
	}
}

func (d *WebhookDispatcher) send(command WebhookSendCommand) error {
	payload, err := json.Marshal(command.Event)
	if err != nil {
		return backoff.Permanent(err)
	}

	return backoff.Retry(func() error {
		response, err := d.client.Post(command.Webhook, "application/json", bytes.NewReader(payload))
		if err != nil {
			return err
		}
		_ = response.Body.Close()

		if response.StatusCode >= 500 || response.StatusCode == http.StatusTooManyRequests {
			return fmt.Errorf("unexpected webhook response HTTP status: %s", response.Status)
		} else if response.StatusCode >= 300 {
			return backoff.Permanent(fmt.Errorf("unexpected webhook response HTTP status: %s", response.Status))
		}
		return nil
	}, d.newBackOff())
}

// NewEvent stamps an event with a fresh id and the current time.
func NewEvent(eventType string, reviewer string, items []*contracts.ChecklistItem) *contracts.Event {
	return &contracts.Event{
		Id:       uuid.NewString(),
		Type:     eventType,
		Reviewer: reviewer,
		Items:    items,
		At:       time.Now().UTC(),
	}
}
