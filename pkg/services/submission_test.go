package services

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"recon-landing/pkg/models"
	"recon-landing/pkg/utils"
)

func TestLogSinkDeliver(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	sink := NewLogSink(zap.New(core))

	record := models.ContactFormRecord{Name: "Ana", Email: "ana@x.cl"}
	sink.Deliver(record)

	entries := logs.FilterMessage("Mensaje enviado").All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 log entry, got %d", len(entries))
	}

	fields := entries[0].ContextMap()
	got, ok := fields["record"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected record object in log fields, got %T", fields["record"])
	}
	want := map[string]string{"name": "Ana", "email": "ana@x.cl", "company": "", "message": ""}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("record[%s]: got %v, want %q", k, got[k], v)
		}
	}
	if fields["email_hash"] != utils.HashString("ana@x.cl") {
		t.Errorf("email_hash: got %v", fields["email_hash"])
	}
	if id, _ := fields["submission_id"].(string); id == "" {
		t.Error("expected a submission_id")
	}
	if entries[0].LoggerName != "contact" {
		t.Errorf("logger name: got %q, want %q", entries[0].LoggerName, "contact")
	}
}

func TestSubmissionSinkFunc(t *testing.T) {
	var received []models.ContactFormRecord
	sink := SubmissionSinkFunc(func(r models.ContactFormRecord) {
		received = append(received, r)
	})

	sink.Deliver(models.ContactFormRecord{Message: "hola"})

	if len(received) != 1 || received[0].Message != "hola" {
		t.Errorf("unexpected deliveries: %+v", received)
	}
}

func TestNewLogSinkNilLogger(t *testing.T) {
	// nil logger falls back to a no-op logger
	NewLogSink(nil).Deliver(models.ContactFormRecord{})
}
