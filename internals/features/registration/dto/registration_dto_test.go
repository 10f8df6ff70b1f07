package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codekar_backend/internals/constants"
)

func TestNewDraftDefaults(t *testing.T) {
	d := NewDraft()

	assert.Equal(t, constants.RegistrationTypeIndividual, d.RegistrationType)
	require.Len(t, d.Members, 1)
	assert.Equal(t, constants.RoleLeader, d.Members[0].Role)
	assert.NotEmpty(t, d.Members[0].ID)
}

func TestAddMemberBounds(t *testing.T) {
	d := NewDraft()

	// No-op in individual mode.
	assert.False(t, d.AddMember())
	assert.Len(t, d.Members, 1)

	d.SetRegistrationType(constants.RegistrationTypeTeam)
	assert.True(t, d.AddMember())
	assert.True(t, d.AddMember())
	assert.True(t, d.AddMember())
	assert.Len(t, d.Members, 4)

	// Never past the cap.
	assert.False(t, d.AddMember())
	assert.Len(t, d.Members, 4)

	assert.Equal(t, constants.RoleMember, d.Members[3].Role)
}

func TestRemoveMemberBounds(t *testing.T) {
	d := NewDraft()
	d.SetRegistrationType(constants.RegistrationTypeTeam)
	d.AddMember()
	d.AddMember()
	require.Len(t, d.Members, 3)

	// Leader is never removable.
	assert.False(t, d.RemoveMember(d.Members[0].ID))
	assert.Len(t, d.Members, 3)

	assert.True(t, d.RemoveMember(d.Members[1].ID))
	assert.True(t, d.RemoveMember(d.Members[1].ID))
	assert.Len(t, d.Members, 1)

	// Never below one member.
	assert.False(t, d.RemoveMember(d.Members[0].ID))
	assert.Len(t, d.Members, 1)
}

func TestRemoveMemberRejectedInIndividualMode(t *testing.T) {
	d := NewDraft()
	d.SetRegistrationType(constants.RegistrationTypeTeam)
	d.AddMember()
	memberID := d.Members[1].ID

	d.SetRegistrationType(constants.RegistrationTypeIndividual)
	assert.Len(t, d.Members, 1, "switching to individual keeps only the leader")
	assert.False(t, d.RemoveMember(memberID))

	// The mode guard itself, with a removable member present.
	d = &RegistrationDraft{
		RegistrationType: constants.RegistrationTypeIndividual,
		Members: []Member{
			{ID: "lead", Role: constants.RoleLeader},
			{ID: "extra", Role: constants.RoleMember},
		},
	}
	assert.False(t, d.RemoveMember("extra"))
	assert.Len(t, d.Members, 2)
}

func TestSwitchToIndividualClearsTeamName(t *testing.T) {
	d := NewDraft()
	d.SetRegistrationType(constants.RegistrationTypeTeam)
	d.TeamName = "Null Pointers"
	d.AddMember()

	d.SetRegistrationType(constants.RegistrationTypeIndividual)
	assert.Empty(t, d.TeamName)
	assert.Len(t, d.Members, 1)
}

func TestUpdateMemberField(t *testing.T) {
	d := NewDraft()
	id := d.Members[0].ID

	require.NoError(t, d.UpdateMemberField(id, "name", "Asha Rao"))
	require.NoError(t, d.UpdateMemberField(id, "email", "asha@example.com"))
	require.NoError(t, d.UpdateMemberField(id, "college_name", "IIT Madras"))
	require.NoError(t, d.UpdateMemberField(id, "department", "CSE"))
	require.NoError(t, d.UpdateMemberField(id, "year", "3"))
	require.NoError(t, d.UpdateMemberField(id, "github", "asharao"))

	assert.Equal(t, "Asha Rao", d.Members[0].Name)
	assert.Equal(t, "IIT Madras", d.Members[0].CollegeName)

	// Role is derived, not editable; unknown keys are rejected.
	assert.Error(t, d.UpdateMemberField(id, "role", "Member"))
	assert.Error(t, d.UpdateMemberField(id, "shoe_size", "42"))
	assert.Error(t, d.UpdateMemberField("missing-id", "name", "x"))
}

func TestFeeSelection(t *testing.T) {
	d := NewDraft()
	assert.Equal(t, 1, d.Fee(1, 1000))

	d.SetRegistrationType(constants.RegistrationTypeTeam)
	assert.Equal(t, 1000, d.Fee(1, 1000))
}

func TestDisplayTeamName(t *testing.T) {
	d := NewDraft()
	assert.Equal(t, "Individual", d.DisplayTeamName())

	d.SetRegistrationType(constants.RegistrationTypeTeam)
	d.TeamName = "Null Pointers"
	assert.Equal(t, "Null Pointers", d.DisplayTeamName())
}

func TestNormalizeDerivesRoles(t *testing.T) {
	d := &RegistrationDraft{
		RegistrationType: constants.RegistrationTypeTeam,
		TeamName:         "Null Pointers",
		Members: []Member{
			{Name: "A", Role: "Member"},
			{Name: "B", Role: "Leader"},
		},
	}

	d.Normalize()

	assert.Equal(t, constants.RoleLeader, d.Members[0].Role)
	assert.Equal(t, constants.RoleMember, d.Members[1].Role)
	assert.NotEmpty(t, d.Members[0].ID)
}
