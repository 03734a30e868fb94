package events

import (
	"testing"
)

func TestNewKafkaPublisher_ConfigGuards(t *testing.T) {
	if _, err := NewKafkaPublisher(nil, "topic"); err == nil {
		t.Fatalf("empty broker list accepted")
	}
	if _, err := NewKafkaPublisher([]string{"k1:9092"}, ""); err == nil {
		t.Fatalf("empty topic accepted")
	}

	p, err := NewKafkaPublisher([]string{"k1:9092", "k2:9092"}, "bookease.loan-events")
	if err != nil {
		t.Fatalf("err: %v", err)
	}
	defer p.Close()
	if p.writer.Topic != "bookease.loan-events" {
		t.Fatalf("topic = %q", p.writer.Topic)
	}
}
