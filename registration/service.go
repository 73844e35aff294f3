package registration

import (
	"log"

	"gorm.io/gorm"
)

// Notifier delivers the confirmation mail for a committed registration.
// Delivery is best effort; implementations must not block the caller.
type Notifier interface {
	EnqueueConfirmation(to string, sub Submission)
}

// Service composes the validator and the registrar into the single
// submitRegistration operation.
type Service struct {
	registrar *Registrar
	notifier  Notifier
	logger    *log.Logger
}

func NewService(db *gorm.DB, notifier Notifier, logger *log.Logger) *Service {
	return &Service{
		registrar: NewRegistrar(db),
		notifier:  notifier,
		logger:    logger,
	}
}

// Submit validates the submission and, if accepted, persists it. The store
// is never touched for rejected submissions. The confirmation mail is
// queued only after a committed write.
func (s *Service) Submit(sub Submission) Outcome {
	if outcome := Validate(sub); outcome != CorrectAdding {
		return outcome
	}

	outcome, team := s.registrar.Register(sub)
	if outcome != CorrectAdding {
		return outcome
	}

	s.logger.Printf("Registered team %q (id=%d) with %d members and %d robots",
		team.Name, team.ID, len(sub.Participants)+1, len(sub.Robots))

	if s.notifier != nil {
		s.notifier.EnqueueConfirmation(sub.Captain.Email, sub)
	}
	return outcome
}
