package registration

import (
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"robocomp/models"
)

// Registrar persists accepted submissions. The whole entity graph for one
// submission is written in a single transaction: either every row lands or
// none do.
type Registrar struct {
	db *gorm.DB
}

func NewRegistrar(db *gorm.DB) *Registrar {
	return &Registrar{db: db}
}

// Register writes the team, its participants, the captain's address and the
// robots. On any store error the transaction is rolled back and the outcome
// is DatabaseFail; the underlying error is logged, never returned to the
// registrant. Register does not deduplicate team names.
func (r *Registrar) Register(sub Submission) (Outcome, *models.Team) {
	year := time.Now().Year()

	team := &models.Team{
		Name:   sub.TeamName,
		Year:   year,
		Status: models.StatusRegistered,
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(team).Error; err != nil {
			return err
		}

		captain := &models.Participant{
			FirstName: sub.Captain.Name,
			LastName:  sub.Captain.Surname,
			Year:      year,
			Size:      sub.Captain.ShirtSize,
		}
		if err := tx.Create(captain).Error; err != nil {
			return err
		}

		address := &models.ParticipantAddress{
			ParticipantID: captain.ID,
			Email:         sub.Captain.Email,
			Phone:         sub.Captain.Phone,
			StreetAddress: sub.Captain.Street,
			AdminLevel2:   sub.Captain.City,
			PostalCode:    sub.Captain.PostalCode,
			CountryCode:   sub.Captain.Country,
		}
		if err := tx.Create(address).Error; err != nil {
			return err
		}

		leader := &models.TeamParticipant{
			TeamID:        team.ID,
			ParticipantID: captain.ID,
			Role:          models.RoleLeader,
			Status:        models.StatusRegistered,
		}
		if err := tx.Create(leader).Error; err != nil {
			return err
		}

		for _, m := range sub.Participants {
			member := &models.Participant{
				FirstName: m.Name,
				LastName:  m.Surname,
				Year:      year,
				Size:      m.ShirtSize,
			}
			if err := tx.Create(member).Error; err != nil {
				return err
			}
			if err := tx.Create(&models.TeamParticipant{
				TeamID:        team.ID,
				ParticipantID: member.ID,
				Role:          models.RoleParticipant,
				Status:        models.StatusRegistered,
			}).Error; err != nil {
				return err
			}
		}

		for i, rb := range sub.Robots {
			if err := tx.Create(&models.Robot{
				Name:        rb.Name,
				RobotNo:     i + 1,
				TeamID:      team.ID,
				Competition: rb.Category,
				Year:        year,
				Status:      models.StatusRegistered,
			}).Error; err != nil {
				return err
			}
		}

		return nil
	})

	if err != nil {
		r.logWriteFailure(sub.TeamName, err)
		return DatabaseFail, nil
	}

	return CorrectAdding, team
}

func (r *Registrar) logWriteFailure(teamName string, err error) {
	logrus.WithFields(logrus.Fields{
		"team":  teamName,
		"error": err.Error(),
	}).Error("Registration write failed, transaction rolled back")

	sentry.WithScope(func(scope *sentry.Scope) {
		scope.SetTag("component", "registrar")
		scope.SetExtra("team_name", teamName)
		sentry.CaptureException(err)
	})
}
