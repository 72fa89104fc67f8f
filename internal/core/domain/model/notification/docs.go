// Package notification provides the outbox record model. Status changes
// queue notifications transactionally; a background job publishes them to
// Kafka with bounded retries.
package notification
