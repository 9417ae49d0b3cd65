// Package kafka publishes committed order changes to a Kafka topic.
//
// Every event becomes one message keyed by order id, so all changes of an
// order land on the same partition in the order they were committed.
package kafka
