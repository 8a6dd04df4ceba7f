package services

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"recon-landing/pkg/models"
	"recon-landing/pkg/utils"
)

// SubmissionSink defines the interface for receiving submitted contact forms
type SubmissionSink interface {
	Deliver(record models.ContactFormRecord)
}

// SubmissionSinkFunc adapts a plain function to SubmissionSink
type SubmissionSinkFunc func(record models.ContactFormRecord)

func (f SubmissionSinkFunc) Deliver(record models.ContactFormRecord) {
	f(record)
}

type logSinkImpl struct {
	logger *zap.Logger
}

// NewLogSink creates a sink that writes every submission to the logger.
// Nothing is sent anywhere else.
func NewLogSink(logger *zap.Logger) SubmissionSink {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &logSinkImpl{
		logger: logger.Named("contact"),
	}
}

// Deliver logs the submitted record
func (s *logSinkImpl) Deliver(record models.ContactFormRecord) {
	s.logger.Info("Mensaje enviado",
		zap.String("submission_id", uuid.NewString()),
		zap.String("email_hash", utils.HashString(record.Email)),
		zap.Object("record", recordMarshaler(record)),
	)
}

type recordMarshaler models.ContactFormRecord

func (r recordMarshaler) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("name", r.Name)
	enc.AddString("email", r.Email)
	enc.AddString("company", r.Company)
	enc.AddString("message", r.Message)
	return nil
}
