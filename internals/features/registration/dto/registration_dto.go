package dto

import (
	"fmt"

	"github.com/google/uuid"

	"codekar_backend/internals/constants"
)

// Member is one participant on the roster. The id is only stable for list
// operations, it is not a business key.
type Member struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email" validate:"omitempty,email"`
	CollegeName string `json:"college_name"`
	Department  string `json:"department"`
	Year        string `json:"year"`
	Role        string `json:"role"`
	GitHub      string `json:"github,omitempty"`
	Phone       string `json:"phone,omitempty"`
}

// RegistrationDraft is the in-progress form state. Required-field checks run
// in a fixed order inside the flow service so the first failure wins; the
// validator tags here only guard structural shape at the HTTP boundary.
type RegistrationDraft struct {
	RegistrationType string   `json:"registration_type" validate:"required,oneof=individual team"`
	TeamName         string   `json:"team_name"`
	ProjectTrack     string   `json:"project_track"`
	ProjectTitle     string   `json:"project_title"`
	ProjectIdea      string   `json:"project_idea"`
	Members          []Member `json:"members" validate:"required,min=1,max=4,dive"`
}

// NewDraft returns an empty individual draft with one Leader member.
func NewDraft() *RegistrationDraft {
	return &RegistrationDraft{
		RegistrationType: constants.RegistrationTypeIndividual,
		Members: []Member{
			{ID: uuid.NewString(), Role: constants.RoleLeader},
		},
	}
}

// IsTeam reports whether the draft is in team mode.
func (d *RegistrationDraft) IsTeam() bool {
	return d.RegistrationType == constants.RegistrationTypeTeam
}

// Leader is the member at index 0. It always exists on a normalized draft.
func (d *RegistrationDraft) Leader() *Member {
	if len(d.Members) == 0 {
		return nil
	}
	return &d.Members[0]
}

// SetRegistrationType switches modes. Going individual keeps only the leader
// and clears the team name.
func (d *RegistrationDraft) SetRegistrationType(t string) {
	d.RegistrationType = t
	if t == constants.RegistrationTypeIndividual && len(d.Members) > 1 {
		d.Members = d.Members[:1]
		d.TeamName = ""
	}
}

// AddMember appends an empty Member. No-op in individual mode or at the cap.
func (d *RegistrationDraft) AddMember() bool {
	if !d.IsTeam() || len(d.Members) >= constants.MaxTeamMembers {
		return false
	}
	d.Members = append(d.Members, Member{
		ID:   uuid.NewString(),
		Role: constants.RoleMember,
	})
	return true
}

// RemoveMember drops a member by id. The leader (index 0) is never removable
// and the roster never shrinks below one.
func (d *RegistrationDraft) RemoveMember(id string) bool {
	if !d.IsTeam() || len(d.Members) <= constants.MinTeamMembers {
		return false
	}
	for i, m := range d.Members {
		if m.ID == id {
			if i == 0 {
				return false
			}
			d.Members = append(d.Members[:i], d.Members[i+1:]...)
			return true
		}
	}
	return false
}

// UpdateMemberField sets one field by key over a closed field set. Role is
// derived from roster position and cannot be edited.
func (d *RegistrationDraft) UpdateMemberField(id, field, value string) error {
	for i := range d.Members {
		if d.Members[i].ID != id {
			continue
		}
		m := &d.Members[i]
		switch field {
		case "name":
			m.Name = value
		case "email":
			m.Email = value
		case "college_name":
			m.CollegeName = value
		case "department":
			m.Department = value
		case "year":
			m.Year = value
		case "github":
			m.GitHub = value
		case "phone":
			m.Phone = value
		case "role":
			return fmt.Errorf("member role is derived from position and cannot be set")
		default:
			return fmt.Errorf("unknown member field: %s", field)
		}
		return nil
	}
	return fmt.Errorf("member not found: %s", id)
}

// Fee picks the registration amount from the fee table.
func (d *RegistrationDraft) Fee(individualFee, teamFee int) int {
	if d.IsTeam() {
		return teamFee
	}
	return individualFee
}

// DisplayTeamName is what goes into records and emails: the team name, or
// "Individual" for solo registrations.
func (d *RegistrationDraft) DisplayTeamName() string {
	if d.IsTeam() {
		return d.TeamName
	}
	return "Individual"
}

// Normalize enforces the roster invariants before the draft leaves the
// editing state: roles by index, individual mode truncated to the leader.
func (d *RegistrationDraft) Normalize() {
	if !d.IsTeam() && len(d.Members) > 1 {
		d.Members = d.Members[:1]
		d.TeamName = ""
	}
	for i := range d.Members {
		if d.Members[i].ID == "" {
			d.Members[i].ID = uuid.NewString()
		}
		if i == 0 {
			d.Members[i].Role = constants.RoleLeader
		} else {
			d.Members[i].Role = constants.RoleMember
		}
	}
}
