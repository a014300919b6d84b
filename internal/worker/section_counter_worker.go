package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"

	"campuspress/internal/cache"
	"campuspress/internal/model"
)

// SectionCounterWorker consumes published-article events and keeps the
// per-section publish counters current.
type SectionCounterWorker struct {
	conn      *amqp.Connection
	counter   *cache.SectionCounter
	queueName string

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewSectionCounterWorker(conn *amqp.Connection, counter *cache.SectionCounter, queueName string) *SectionCounterWorker {
	return &SectionCounterWorker{
		conn:      conn,
		counter:   counter,
		queueName: queueName,
	}
}

func (w *SectionCounterWorker) Start(ctx context.Context) error {
	if w.cancel != nil {
		return nil
	}

	workerCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel

	ch, err := w.conn.Channel()
	if err != nil {
		cancel()
		return fmt.Errorf("open worker channel failed: %w", err)
	}

	_, err = ch.QueueDeclare(
		w.queueName,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		_ = ch.Close()
		cancel()
		return fmt.Errorf("declare worker queue failed: %w", err)
	}

	deliveries, err := ch.Consume(
		w.queueName,
		"",
		false,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		_ = ch.Close()
		cancel()
		return fmt.Errorf("consume queue failed: %w", err)
	}

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		defer ch.Close()

		for {
			select {
			case <-workerCtx.Done():
				return
			case d, ok := <-deliveries:
				if !ok {
					return
				}

				var article model.Article
				if err := json.Unmarshal(d.Body, &article); err != nil {
					log.Printf("worker decode article event failed: %v", err)
					_ = d.Nack(false, false)
					continue
				}
				if article.Section == "" {
					_ = d.Ack(false)
					continue
				}

				if err := w.counter.Incr(workerCtx, article.Section); err != nil {
					log.Printf("worker count section failed: %v", err)
					_ = d.Nack(false, true)
					continue
				}

				_ = d.Ack(false)
			}
		}
	}()

	return nil
}

func (w *SectionCounterWorker) Close() {
	if w.cancel != nil {
		w.cancel()
	}
	w.wg.Wait()
}
