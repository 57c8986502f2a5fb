package eventbus

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/TheEightboys/hsehubfinal-sub002/pkg/logging"
)

type args struct {
	data interface{}
}

func TestPublisher_Subscribe(t *testing.T) {
	publisher := NewEventPublisher(logging.ConsoleLogger(logrus.WarnLevel))
	called := false
	var data interface{}
	publisher.Subscribe(func(e *args) {
		called = true
		data = e.data
	})
	publisher.Publish(&args{
		data: "test",
	})
	if !called {
		t.Error("should be called")
	}
	if data != "test" {
		t.Errorf("expected: %v, got: %v", "test", data)
	}
}

func TestPublisher_PublishSkipsMismatched(t *testing.T) {
	type other struct{}
	publisher := NewEventPublisher(logging.ConsoleLogger(logrus.WarnLevel))
	publisher.Subscribe(func(e *args) {
		t.Error("should not be called")
	})
	publisher.Publish(&other{})
}

func TestPublisher_Unsubscribe(t *testing.T) {
	publisher := NewEventPublisher(logging.ConsoleLogger(logrus.WarnLevel))
	handler := func(e *args) {
		t.Error("should not be called after unsubscribe")
	}
	publisher.Subscribe(handler)
	publisher.Unsubscribe(handler)
	if publisher.SubscribersCount() != 0 {
		t.Errorf("expected 0 subscribers, got %d", publisher.SubscribersCount())
	}
	publisher.Publish(&args{})
}

func TestPublisher_UnsubscribeKeepsOtherHandlers(t *testing.T) {
	publisher := NewEventPublisher(logging.ConsoleLogger(logrus.WarnLevel))
	removedCalled := false
	keptCalled := false
	removed := func(e *args) {
		removedCalled = true
	}
	kept := func(e *args) {
		keptCalled = true
	}
	publisher.Subscribe(removed)
	publisher.Subscribe(kept)
	publisher.Unsubscribe(removed)
	if publisher.SubscribersCount() != 1 {
		t.Errorf("expected 1 subscriber, got %d", publisher.SubscribersCount())
	}
	publisher.Publish(&args{})
	if removedCalled {
		t.Error("removed handler should not be called")
	}
	if !keptCalled {
		t.Error("kept handler should be called")
	}
}

func TestMatchSignature(t *testing.T) {
	type args2 struct{}
	if !MatchSignature(func(e *args) {}, []interface{}{&args{}}) {
		t.Error("expected true")
	}
	if MatchSignature(func(e *args) {}, []interface{}{&args2{}}) {
		t.Error("expected false")
	}
	if MatchSignature(func(e *args) {}, []interface{}{}) {
		t.Error("expected false")
	}
	if MatchSignature(func(e *args) {}, []interface{}{&args{}, &args{}}) {
		t.Error("expected false")
	}
	if !MatchSignature(func(ctx context.Context) {}, []interface{}{context.Background()}) {
		t.Error("expected true")
	}
	if !MatchSignature(func(s string, n int) {}, []interface{}{"event", 1}) {
		t.Error("expected true")
	}
}
